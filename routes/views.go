package routes

import (
	"context"

	"github.com/parkerholladay/odyssey-voyage-II-server/core"
	"github.com/parkerholladay/odyssey-voyage-II-server/models"
)

// BookingView is the client-facing booking shape: dates rendered for humans,
// relations exposed as references to be resolved on demand.
type BookingView struct {
	ID           uint           `json:"id"`
	CheckInDate  string         `json:"checkInDate"`
	CheckOutDate string         `json:"checkOutDate"`
	TotalCost    float64        `json:"totalCost"`
	Status       string         `json:"status"`
	Listing      core.Ref       `json:"listing"`
	Guest        core.Ref       `json:"guest"`
	GuestReview  *models.Review `json:"guestReview,omitempty"`
	HostReview   *models.Review `json:"hostReview,omitempty"`
	LocationRev  *models.Review `json:"locationReview,omitempty"`
}

func newBookingView(booking *models.Booking) BookingView {
	return BookingView{
		ID:           booking.ID,
		CheckInDate:  Core.Bookings.HumanReadableDate(booking.CheckInDate),
		CheckOutDate: Core.Bookings.HumanReadableDate(booking.CheckOutDate),
		TotalCost:    booking.TotalCost,
		Status:       booking.Status(),
		Listing:      core.Ref{ID: booking.ListingID, Type: core.EntityListing},
		Guest:        core.Ref{ID: booking.GuestID, Type: core.EntityGuest},
	}
}

// withReviews attaches whichever of the three per-booking reviews exist.
// A provider failure propagates; a missing review is just a nil field.
func (v BookingView) withReviews(ctx context.Context) (BookingView, error) {
	review, err := Core.Reviews.GetReviewForBooking(ctx, models.ReviewTargetGuest, v.ID)
	if err != nil {
		return v, err
	}
	v.GuestReview = review

	review, err = Core.Reviews.GetReviewForBooking(ctx, models.ReviewTargetHost, v.ID)
	if err != nil {
		return v, err
	}
	v.HostReview = review

	review, err = Core.Reviews.GetReviewForBooking(ctx, models.ReviewTargetListing, v.ID)
	if err != nil {
		return v, err
	}
	v.LocationRev = review
	return v, nil
}

func newBookingViews(ctx context.Context, bookings []models.Booking, includeReviews bool) ([]BookingView, error) {
	views := make([]BookingView, 0, len(bookings))
	for i := range bookings {
		view := newBookingView(&bookings[i])
		if includeReviews {
			var err error
			view, err = view.withReviews(ctx)
			if err != nil {
				return nil, err
			}
		}
		views = append(views, view)
	}
	return views, nil
}

// ReviewView pairs a review with its derived author reference.
type ReviewView struct {
	models.Review
	Author core.Ref `json:"author"`
}

func newReviewViews(reviews []models.Review) []ReviewView {
	views := make([]ReviewView, 0, len(reviews))
	for i := range reviews {
		view := ReviewView{Review: reviews[i]}
		if ref, err := core.ReviewAuthorRef(&reviews[i]); err == nil {
			view.Author = ref
		}
		views = append(views, view)
	}
	return views
}

// AmenityView renders a stored amenity with its human-readable category.
type AmenityView struct {
	ID       uint   `json:"id"`
	Category string `json:"category"`
	Name     string `json:"name"`
}

func newAmenityViews(amenities []models.Amenity) []AmenityView {
	views := make([]AmenityView, 0, len(amenities))
	for i := range amenities {
		views = append(views, AmenityView{
			ID:       amenities[i].ID,
			Category: amenities[i].CategoryLabel(),
			Name:     amenities[i].Name,
		})
	}
	return views
}
