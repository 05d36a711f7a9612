package routes

import (
	"strings"

	"github.com/parkerholladay/odyssey-voyage-II-server/core"
	"github.com/parkerholladay/odyssey-voyage-II-server/models"
	"github.com/parkerholladay/odyssey-voyage-II-server/storage"
	"github.com/parkerholladay/odyssey-voyage-II-server/utils"

	"github.com/kataras/iris/v12"
	"golang.org/x/crypto/bcrypt"
)

type RegisterUserInput struct {
	Name     string `json:"name" validate:"required,max=256"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=256"`
	Role     string `json:"role" validate:"required,oneof=Guest Host"`
}

type LoginUserInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileInput struct {
	Name               *string `json:"name" validate:"omitempty,max=256"`
	ProfileDescription *string `json:"profileDescription" validate:"omitempty,max=5000"`
	ProfilePicture     *string `json:"profilePicture"`
}

func getAndHandleUserExists(user *models.User, email string) (bool, error) {
	userExistsQuery := storage.DB.Where("email = ?", strings.ToLower(email)).Limit(1).Find(&user)
	if userExistsQuery.Error != nil {
		return false, userExistsQuery.Error
	}
	return userExistsQuery.RowsAffected > 0, nil
}

func hashAndSaltPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func returnUser(user models.User, ctx iris.Context) {
	tokenPair, tokenErr := utils.CreateTokenPair(user.ID)
	if tokenErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{
		"ID":           user.ID,
		"name":         user.Name,
		"email":        user.Email,
		"role":         user.Role,
		"accessToken":  string(tokenPair.AccessToken),
		"refreshToken": string(tokenPair.RefreshToken),
	})
}

func Register(ctx iris.Context) {
	var userInput RegisterUserInput
	if err := ctx.ReadJSON(&userInput); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var newUser models.User
	userExists, userExistsErr := getAndHandleUserExists(&newUser, userInput.Email)
	if userExistsErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	if userExists {
		utils.CreateEmailAlreadyRegistered(ctx)
		return
	}

	hashedPassword, hashErr := hashAndSaltPassword(userInput.Password)
	if hashErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	newUser = models.User{
		Name:     userInput.Name,
		Email:    strings.ToLower(userInput.Email),
		Password: hashedPassword,
		Role:     userInput.Role,
	}
	if err := storage.DB.Create(&newUser).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	// Every account starts with an empty wallet owned by the payments
	// provider.
	storage.DB.Create(&models.Wallet{UserID: newUser.ID, Amount: 0})

	returnUser(newUser, ctx)
}

func Login(ctx iris.Context) {
	var userInput LoginUserInput
	if err := ctx.ReadJSON(&userInput); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var existingUser models.User
	errorMsg := "Invalid email or password."
	userExists, userExistsErr := getAndHandleUserExists(&existingUser, userInput.Email)
	if userExistsErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	if !userExists {
		utils.CreateError(iris.StatusUnauthorized, "Credentials Error", errorMsg, ctx)
		return
	}

	passwordErr := bcrypt.CompareHashAndPassword([]byte(existingUser.Password), []byte(userInput.Password))
	if passwordErr != nil {
		utils.CreateError(iris.StatusUnauthorized, "Credentials Error", errorMsg, ctx)
		return
	}

	returnUser(existingUser, ctx)
}

// GetUser is the public profile view. Hosts carry their derived overall
// rating; a guest's funds are never exposed here.
func GetUser(ctx iris.Context) {
	userID := ctx.Params().GetUintDefault("id", 0)
	if userID == 0 {
		ctx.StatusCode(iris.StatusBadRequest)
		ctx.JSON(iris.Map{"message": "Invalid user ID"})
		return
	}

	reqCtx := ctx.Request().Context()
	user, err := Core.User(reqCtx, userID)
	if err != nil {
		utils.HandleCoreError(err, ctx)
		return
	}

	response := iris.Map{"user": user}
	if user.IsHost() {
		rating, ratingErr := Core.Reviews.GetOverallRatingForHost(reqCtx, user.ID)
		if ratingErr != nil {
			utils.CreateInternalServerError(ctx)
			return
		}
		response["overallRating"] = rating
	}

	ctx.JSON(response)
}

// GetMe returns the acting user; guests additionally get their live wallet
// balance, hosts their derived rating.
func GetMe(ctx iris.Context) {
	reqCtx := ctx.Request().Context()
	identity := utils.IdentityFromContext(ctx)

	user, err := Core.Me(reqCtx, identity)
	if err != nil {
		utils.HandleCoreError(err, ctx)
		return
	}

	response := iris.Map{"user": user}
	switch {
	case user.IsGuest():
		funds, fundsErr := Core.Payments.GetUserWalletAmount(reqCtx, user.ID)
		if fundsErr != nil {
			utils.CreateInternalServerError(ctx)
			return
		}
		response["funds"] = funds
	case user.IsHost():
		rating, ratingErr := Core.Reviews.GetOverallRatingForHost(reqCtx, user.ID)
		if ratingErr != nil {
			utils.CreateInternalServerError(ctx)
			return
		}
		response["overallRating"] = rating
	}

	ctx.JSON(response)
}

func UpdateProfile(ctx iris.Context) {
	var input UpdateProfileInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	result, err := Core.UpdateProfile(ctx.Request().Context(), utils.IdentityFromContext(ctx), core.ProfileInput{
		Name:               input.Name,
		ProfileDescription: input.ProfileDescription,
		ProfilePicture:     input.ProfilePicture,
	})
	if err != nil {
		utils.HandleCoreError(err, ctx)
		return
	}

	ctx.JSON(result)
}
