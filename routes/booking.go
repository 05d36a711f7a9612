package routes

import (
	"time"

	"github.com/parkerholladay/odyssey-voyage-II-server/core"
	"github.com/parkerholladay/odyssey-voyage-II-server/models"
	"github.com/parkerholladay/odyssey-voyage-II-server/utils"

	"github.com/kataras/iris/v12"
)

type CreateBookingInput struct {
	ListingID    uint   `json:"listingId" validate:"required"`
	CheckInDate  string `json:"checkInDate" validate:"required"`
	CheckOutDate string `json:"checkOutDate" validate:"required"`
}

// parseStayWindow reads checkInDate/checkOutDate query params and validates
// the window. Writes the error response itself when the input is bad.
func parseStayWindow(ctx iris.Context) (time.Time, time.Time, bool) {
	checkIn, err := time.Parse(dateLayout, ctx.URLParam("checkInDate"))
	if err != nil {
		ctx.StatusCode(iris.StatusBadRequest)
		ctx.JSON(iris.Map{"message": "Invalid check-in date format"})
		return time.Time{}, time.Time{}, false
	}
	checkOut, err := time.Parse(dateLayout, ctx.URLParam("checkOutDate"))
	if err != nil {
		ctx.StatusCode(iris.StatusBadRequest)
		ctx.JSON(iris.Map{"message": "Invalid check-out date format"})
		return time.Time{}, time.Time{}, false
	}
	if !checkOut.After(checkIn) {
		ctx.StatusCode(iris.StatusBadRequest)
		ctx.JSON(iris.Map{"message": "Check-out date must be after check-in date"})
		return time.Time{}, time.Time{}, false
	}
	return checkIn, checkOut, true
}

func CreateBooking(ctx iris.Context) {
	var input CreateBookingInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	checkIn, err := time.Parse(dateLayout, input.CheckInDate)
	if err != nil {
		ctx.StatusCode(iris.StatusBadRequest)
		ctx.JSON(iris.Map{"message": "Invalid check-in date format"})
		return
	}
	checkOut, err := time.Parse(dateLayout, input.CheckOutDate)
	if err != nil {
		ctx.StatusCode(iris.StatusBadRequest)
		ctx.JSON(iris.Map{"message": "Invalid check-out date format"})
		return
	}

	result, err := Core.CreateBooking(ctx.Request().Context(), utils.IdentityFromContext(ctx), core.CreateBookingInput{
		ListingID:    input.ListingID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
	})
	if err != nil {
		utils.HandleCoreError(err, ctx)
		return
	}

	if result.Booking != nil {
		ctx.JSON(iris.Map{
			"code":    result.Code,
			"success": result.Success,
			"message": result.Message,
			"booking": newBookingView(result.Booking),
		})
		return
	}
	ctx.JSON(result)
}

// GetGuestBookings returns the acting guest's trips; /upcoming and /past
// narrow by derived status.
func GetGuestBookings(ctx iris.Context) {
	guestBookings(ctx, "")
}

func GetUpcomingGuestBookings(ctx iris.Context) {
	guestBookings(ctx, models.BookingStatusUpcoming)
}

func GetPastGuestBookings(ctx iris.Context) {
	guestBookings(ctx, models.BookingStatusCompleted)
}

func guestBookings(ctx iris.Context, status string) {
	reqCtx := ctx.Request().Context()
	bookings, err := Core.GuestBookings(reqCtx, utils.IdentityFromContext(ctx), status)
	if err != nil {
		utils.HandleCoreError(err, ctx)
		return
	}
	views, err := newBookingViews(reqCtx, bookings, true)
	if err != nil {
		utils.HandleCoreError(err, ctx)
		return
	}
	ctx.JSON(iris.Map{"data": views})
}

// GetBookingsForListing is the host-facing view of a listing's bookings.
func GetBookingsForListing(ctx iris.Context) {
	listingID := ctx.Params().GetUintDefault("id", 0)
	if listingID == 0 {
		ctx.StatusCode(iris.StatusBadRequest)
		ctx.JSON(iris.Map{"message": "Invalid listing ID"})
		return
	}

	reqCtx := ctx.Request().Context()
	status := ctx.URLParam("status")
	bookings, err := Core.BookingsForListing(reqCtx, utils.IdentityFromContext(ctx), listingID, status)
	if err != nil {
		utils.HandleCoreError(err, ctx)
		return
	}

	views, err := newBookingViews(reqCtx, bookings, true)
	if err != nil {
		utils.HandleCoreError(err, ctx)
		return
	}
	ctx.JSON(iris.Map{"data": views})
}
