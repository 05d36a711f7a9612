package main

import (
	"log"
	"os"

	"github.com/parkerholladay/odyssey-voyage-II-server/core"
	"github.com/parkerholladay/odyssey-voyage-II-server/providers"
	"github.com/parkerholladay/odyssey-voyage-II-server/routes"
	"github.com/parkerholladay/odyssey-voyage-II-server/storage"
	"github.com/parkerholladay/odyssey-voyage-II-server/utils"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

func main() {
	godotenv.Load()
	db := storage.InitializeDB()
	storage.InitializeRedis()

	platform := core.New(
		providers.NewListingsDB(db),
		providers.NewBookingsDB(db),
		providers.NewPaymentsDB(db),
		providers.NewReviewsDB(db),
		providers.NewAccountsDB(db),
	)

	// Reference resolution is registered for every entity variant up front;
	// a missing variant aborts startup instead of failing on the first
	// matching request.
	resolver, err := core.NewEntityResolver(platform)
	if err != nil {
		log.Fatal(err)
	}

	routes.Configure(platform, resolver)

	app := iris.New()
	app.Validator = validator.New()

	app.AllowMethods(iris.MethodOptions)
	app.UseRouter(func(ctx iris.Context) {
		ctx.Header("Access-Control-Allow-Origin", ctx.GetHeader("Origin"))
		ctx.Header("Vary", "Origin")
		ctx.Header("Access-Control-Allow-Credentials", "true")
		ctx.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Requested-With")
		ctx.Header("Access-Control-Allow-Methods", "GET,POST,PATCH,PUT,DELETE,OPTIONS")
		if ctx.Method() == iris.MethodOptions {
			ctx.StatusCode(iris.StatusNoContent)
			return
		}
		ctx.Next()
	})

	app.Use(iris.Compression)

	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	accessTokenVerifier.WithDefaultBlocklist()
	accessTokenVerifierMiddleware := accessTokenVerifier.Verify(func() interface{} {
		return new(utils.AccessToken)
	})

	refreshTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("REFRESH_TOKEN_SECRET")))
	refreshTokenVerifier.WithDefaultBlocklist()
	refreshTokenVerifierMiddleware := refreshTokenVerifier.Verify(func() interface{} {
		return new(jwt.Claims)
	})

	refreshTokenVerifier.Extractors = append(refreshTokenVerifier.Extractors, func(ctx iris.Context) string {
		var tokenInput utils.RefreshTokenInput
		if err := ctx.ReadJSON(&tokenInput); err != nil {
			return ""
		}
		return tokenInput.RefreshToken
	})

	user := app.Party("/api/user")
	{
		user.Post("/register", routes.Register)
		user.Post("/login", routes.Login)
		user.Post("/refresh", refreshTokenVerifierMiddleware, utils.RefreshToken)
	}

	users := app.Party("/api/users")
	{
		users.Get("/{id:uint}", routes.GetUser)
	}

	listings := app.Party("/api/listings")
	{
		listings.Get("/search", routes.SearchListings)
		listings.Get("/featured", routes.GetFeaturedListings)
		listings.Get("/amenities", routes.GetListingAmenities)
		listings.Get("/{id:uint}", routes.GetListing)
		listings.Get("/{id:uint}/total-cost", routes.GetListingTotalCost)

		listings.Post("/", accessTokenVerifierMiddleware, utils.IdentityMiddleware, routes.CreateListing)
		listings.Patch("/{id:uint}", accessTokenVerifierMiddleware, utils.IdentityMiddleware, routes.UpdateListing)
		listings.Get("/{id:uint}/bookings", accessTokenVerifierMiddleware, utils.IdentityMiddleware, routes.GetBookingsForListing)
	}

	authenticated := app.Party("/api", accessTokenVerifierMiddleware, utils.IdentityMiddleware)
	{
		authenticated.Get("/me", routes.GetMe)
		authenticated.Patch("/me/profile", routes.UpdateProfile)

		authenticated.Get("/wallet", routes.GetWallet)
		authenticated.Post("/wallet/funds", routes.AddFundsToWallet)

		authenticated.Get("/bookings", routes.GetGuestBookings)
		authenticated.Get("/bookings/upcoming", routes.GetUpcomingGuestBookings)
		authenticated.Get("/bookings/past", routes.GetPastGuestBookings)
		authenticated.Post("/bookings", routes.CreateBooking)
		authenticated.Post("/bookings/{id:uint}/reviews/guest", routes.SubmitGuestReview)
		authenticated.Post("/bookings/{id:uint}/reviews", routes.SubmitStayReviews)

		authenticated.Get("/host/listings", routes.GetHostListings)

		authenticated.Get("/entities/{type}/{id:uint}", routes.ResolveEntity)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}

	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
