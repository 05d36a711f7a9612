package routes

import (
	"github.com/parkerholladay/odyssey-voyage-II-server/core"
	"github.com/parkerholladay/odyssey-voyage-II-server/utils"

	"github.com/kataras/iris/v12"
)

type ReviewInput struct {
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
	Text   string `json:"text" validate:"max=1000"`
}

type StayReviewsInput struct {
	HostReview     ReviewInput `json:"hostReview" validate:"required"`
	LocationReview ReviewInput `json:"locationReview" validate:"required"`
}

// SubmitGuestReview lets the host of a stay review its guest.
func SubmitGuestReview(ctx iris.Context) {
	bookingID := ctx.Params().GetUintDefault("id", 0)
	if bookingID == 0 {
		ctx.StatusCode(iris.StatusBadRequest)
		ctx.JSON(iris.Map{"message": "Invalid booking ID"})
		return
	}

	var input ReviewInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	result, err := Core.SubmitGuestReview(ctx.Request().Context(), utils.IdentityFromContext(ctx), bookingID, core.ReviewInput{
		Rating: input.Rating,
		Text:   input.Text,
	})
	if err != nil {
		utils.HandleCoreError(err, ctx)
		return
	}

	ctx.JSON(result)
}

// SubmitStayReviews records the guest's review pair for a completed stay:
// one for the listing, one for its host.
func SubmitStayReviews(ctx iris.Context) {
	bookingID := ctx.Params().GetUintDefault("id", 0)
	if bookingID == 0 {
		ctx.StatusCode(iris.StatusBadRequest)
		ctx.JSON(iris.Map{"message": "Invalid booking ID"})
		return
	}

	var input StayReviewsInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	result, err := Core.SubmitHostAndLocationReviews(
		ctx.Request().Context(),
		utils.IdentityFromContext(ctx),
		bookingID,
		core.ReviewInput{Rating: input.HostReview.Rating, Text: input.HostReview.Text},
		core.ReviewInput{Rating: input.LocationReview.Rating, Text: input.LocationReview.Text},
	)
	if err != nil {
		utils.HandleCoreError(err, ctx)
		return
	}

	ctx.JSON(result)
}
