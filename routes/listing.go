package routes

import (
	"fmt"

	"github.com/parkerholladay/odyssey-voyage-II-server/core"
	"github.com/parkerholladay/odyssey-voyage-II-server/models"
	"github.com/parkerholladay/odyssey-voyage-II-server/storage"
	"github.com/parkerholladay/odyssey-voyage-II-server/utils"

	"github.com/kataras/iris/v12"
)

type CreateListingInput struct {
	Title                string   `json:"title" validate:"required,max=255"`
	Description          string   `json:"description" validate:"max=5000"`
	PhotoThumbnail       string   `json:"photoThumbnail"`
	PhotoThumbnailBase64 string   `json:"photoThumbnailBase64"`
	Photos               []string `json:"photos"`
	NumOfBeds            int      `json:"numOfBeds" validate:"required,min=1"`
	CostPerNight         float64  `json:"costPerNight" validate:"required,gt=0"`
	LocationType         string   `json:"locationType" validate:"required,oneof=SPACESHIP HOUSE CAMPSITE APARTMENT ROOM"`
	AmenityIDs           []uint   `json:"amenityIds"`
}

type UpdateListingInput struct {
	Title          *string  `json:"title" validate:"omitempty,max=255"`
	Description    *string  `json:"description" validate:"omitempty,max=5000"`
	PhotoThumbnail *string  `json:"photoThumbnail"`
	Photos         []string `json:"photos"`
	NumOfBeds      *int     `json:"numOfBeds" validate:"omitempty,min=1"`
	CostPerNight   *float64 `json:"costPerNight" validate:"omitempty,gt=0"`
	LocationType   *string  `json:"locationType" validate:"omitempty,oneof=SPACESHIP HOUSE CAMPSITE APARTMENT ROOM"`
	AmenityIDs     []uint   `json:"amenityIds"`
}

// GetListing returns the public listing detail with its derived fields:
// overall rating, reviews, and currently booked date ranges.
func GetListing(ctx iris.Context) {
	listingID := ctx.Params().GetUintDefault("id", 0)
	if listingID == 0 {
		ctx.StatusCode(iris.StatusBadRequest)
		ctx.JSON(iris.Map{"message": "Invalid listing ID"})
		return
	}

	reqCtx := ctx.Request().Context()
	listing, err := Core.Listing(reqCtx, listingID)
	if err != nil {
		utils.HandleCoreError(err, ctx)
		return
	}

	rating, err := Core.Reviews.GetOverallRatingForListing(reqCtx, listingID)
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	reviews, err := Core.Reviews.GetReviewsForListing(reqCtx, listingID)
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	bookedDates, err := Core.Bookings.GetCurrentlyBookedDateRangesForListing(reqCtx, listingID)
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(iris.Map{
		"listing":              listing,
		"host":                 core.Ref{ID: listing.HostID, Type: core.EntityHost},
		"overallRating":        rating,
		"reviews":              newReviewViews(reviews),
		"currentlyBookedDates": bookedDates,
	})
}

func GetFeaturedListings(ctx iris.Context) {
	listings, err := Core.FeaturedListings(ctx.Request().Context())
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.JSON(iris.Map{"data": listings})
}

func GetListingAmenities(ctx iris.Context) {
	amenities, err := Core.ListingAmenities(ctx.Request().Context())
	if err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	ctx.JSON(iris.Map{"data": newAmenityViews(amenities)})
}

// GetHostListings lists the acting host's listings with per-listing upcoming
// booking counts for the dashboard.
func GetHostListings(ctx iris.Context) {
	reqCtx := ctx.Request().Context()
	listings, err := Core.HostListings(reqCtx, utils.IdentityFromContext(ctx))
	if err != nil {
		utils.HandleCoreError(err, ctx)
		return
	}

	type hostListing struct {
		models.Listing
		NumberOfUpcomingBookings int `json:"numberOfUpcomingBookings"`
	}
	data := make([]hostListing, 0, len(listings))
	for i := range listings {
		count, countErr := Core.NumberOfUpcomingBookings(reqCtx, listings[i].ID)
		if countErr != nil {
			utils.CreateInternalServerError(ctx)
			return
		}
		data = append(data, hostListing{Listing: listings[i], NumberOfUpcomingBookings: count})
	}

	ctx.JSON(iris.Map{"data": data})
}

func CreateListing(ctx iris.Context) {
	var input CreateListingInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	identity := utils.IdentityFromContext(ctx)

	thumbnail := input.PhotoThumbnail
	if input.PhotoThumbnailBase64 != "" {
		uploaded := storage.UploadBase64Image(
			input.PhotoThumbnailBase64,
			fmt.Sprintf("listing-thumb-%d", identity.UserID),
		)
		if uploaded != "" {
			thumbnail = uploaded
		}
	}

	result, err := Core.CreateListing(ctx.Request().Context(), identity, core.ListingFields{
		Title:          input.Title,
		Description:    input.Description,
		PhotoThumbnail: thumbnail,
		Photos:         input.Photos,
		NumOfBeds:      input.NumOfBeds,
		CostPerNight:   input.CostPerNight,
		LocationType:   input.LocationType,
		AmenityIDs:     input.AmenityIDs,
	})
	if err != nil {
		utils.HandleCoreError(err, ctx)
		return
	}

	ctx.JSON(result)
}

func UpdateListing(ctx iris.Context) {
	listingID := ctx.Params().GetUintDefault("id", 0)
	if listingID == 0 {
		ctx.StatusCode(iris.StatusBadRequest)
		ctx.JSON(iris.Map{"message": "Invalid listing ID"})
		return
	}

	var input UpdateListingInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	result, err := Core.UpdateListing(ctx.Request().Context(), utils.IdentityFromContext(ctx), listingID, core.ListingUpdate{
		Title:          input.Title,
		Description:    input.Description,
		PhotoThumbnail: input.PhotoThumbnail,
		Photos:         input.Photos,
		NumOfBeds:      input.NumOfBeds,
		CostPerNight:   input.CostPerNight,
		LocationType:   input.LocationType,
		AmenityIDs:     input.AmenityIDs,
	})
	if err != nil {
		utils.HandleCoreError(err, ctx)
		return
	}

	ctx.JSON(result)
}

// GetListingTotalCost prices a stay without booking it.
func GetListingTotalCost(ctx iris.Context) {
	listingID := ctx.Params().GetUintDefault("id", 0)
	if listingID == 0 {
		ctx.StatusCode(iris.StatusBadRequest)
		ctx.JSON(iris.Map{"message": "Invalid listing ID"})
		return
	}

	checkIn, checkOut, ok := parseStayWindow(ctx)
	if !ok {
		return
	}

	totalCost, err := Core.Listings.GetTotalCost(ctx.Request().Context(), listingID, checkIn, checkOut)
	if err != nil {
		utils.HandleCoreError(err, ctx)
		return
	}

	ctx.JSON(iris.Map{"totalCost": totalCost})
}
