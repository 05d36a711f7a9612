package routes

import (
	"time"

	"github.com/parkerholladay/odyssey-voyage-II-server/core"
	"github.com/parkerholladay/odyssey-voyage-II-server/utils"

	"github.com/kataras/iris/v12"
)

const dateLayout = "2006-01-02"

// SearchListings handles availability-aware listing search. Dates are
// required; bed count, pagination and sort are optional and owned by the
// listings provider.
func SearchListings(ctx iris.Context) {
	checkInStr := ctx.URLParam("checkInDate")
	checkOutStr := ctx.URLParam("checkOutDate")

	if checkInStr == "" || checkOutStr == "" {
		ctx.StatusCode(iris.StatusBadRequest)
		ctx.JSON(iris.Map{"message": "Check-in and check-out dates are required"})
		return
	}

	checkIn, err := time.Parse(dateLayout, checkInStr)
	if err != nil {
		ctx.StatusCode(iris.StatusBadRequest)
		ctx.JSON(iris.Map{"message": "Invalid check-in date format"})
		return
	}

	checkOut, err := time.Parse(dateLayout, checkOutStr)
	if err != nil {
		ctx.StatusCode(iris.StatusBadRequest)
		ctx.JSON(iris.Map{"message": "Invalid check-out date format"})
		return
	}

	if !checkOut.After(checkIn) {
		ctx.StatusCode(iris.StatusBadRequest)
		ctx.JSON(iris.Map{"message": "Check-out date must be after check-in date"})
		return
	}

	criteria := core.SearchCriteria{
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		NumOfBeds:    ctx.URLParamIntDefault("numOfBeds", 0),
		Page:         ctx.URLParamIntDefault("page", 0),
		Limit:        ctx.URLParamIntDefault("limit", 0),
		SortBy:       ctx.URLParam("sortBy"),
	}

	listings, err := Core.SearchListings(ctx.Request().Context(), criteria)
	if err != nil {
		utils.CreateError(iris.StatusBadGateway, "Search Failed", err.Error(), ctx)
		return
	}

	ctx.JSON(iris.Map{"data": listings})
}
