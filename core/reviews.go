package core

import (
	"context"

	"github.com/parkerholladay/odyssey-voyage-II-server/models"
)

type ReviewInput struct {
	Rating int
	Text   string
}

// SubmitGuestReview lets a host review the guest of a completed booking. The
// guest being reviewed is resolved from the booking, never supplied by the
// caller.
func (c *Core) SubmitGuestReview(ctx context.Context, id Identity, bookingID uint, review ReviewInput) (GuestReviewResult, error) {
	if err := requireIdentity(id); err != nil {
		return GuestReviewResult{}, err
	}

	guestID, err := c.Bookings.GetGuestIDForBooking(ctx, bookingID)
	if err != nil {
		return GuestReviewResult{Response: failed(err.Error())}, nil
	}

	created, err := c.Reviews.CreateReviewForGuest(ctx, ReviewFields{
		BookingID: bookingID,
		TargetID:  guestID,
		AuthorID:  id.UserID,
		Rating:    review.Rating,
		Text:      review.Text,
	})
	if err != nil {
		return GuestReviewResult{Response: failed(err.Error())}, nil
	}

	return GuestReviewResult{
		Response:    ok("Successfully submitted review for guest"),
		GuestReview: created,
	}, nil
}

// SubmitHostAndLocationReviews records a guest's pair of reviews for a stay:
// one for the listing, one for its host. The host id comes from the listing
// itself.
func (c *Core) SubmitHostAndLocationReviews(ctx context.Context, id Identity, bookingID uint, hostReview, locationReview ReviewInput) (StayReviewsResult, error) {
	if err := requireIdentity(id); err != nil {
		return StayReviewsResult{}, err
	}

	listingID, err := c.Bookings.GetListingIDForBooking(ctx, bookingID)
	if err != nil {
		return StayReviewsResult{Response: failed(err.Error())}, nil
	}

	createdLocationReview, err := c.Reviews.CreateReviewForListing(ctx, ReviewFields{
		BookingID: bookingID,
		TargetID:  listingID,
		AuthorID:  id.UserID,
		Rating:    locationReview.Rating,
		Text:      locationReview.Text,
	})
	if err != nil {
		return StayReviewsResult{Response: failed(err.Error())}, nil
	}

	listing, err := c.Listings.GetListing(ctx, listingID)
	if err != nil {
		return StayReviewsResult{Response: failed(err.Error())}, nil
	}

	createdHostReview, err := c.Reviews.CreateReviewForHost(ctx, ReviewFields{
		BookingID: bookingID,
		TargetID:  listing.HostID,
		AuthorID:  id.UserID,
		Rating:    hostReview.Rating,
		Text:      hostReview.Text,
	})
	if err != nil {
		return StayReviewsResult{Response: failed(err.Error())}, nil
	}

	return StayReviewsResult{
		Response:       ok("Successfully submitted review for host and location"),
		HostReview:     createdHostReview,
		LocationReview: createdLocationReview,
	}, nil
}

// ReviewAuthorRef derives the author reference for a review. Author role is
// a pure function of the review's target type.
func ReviewAuthorRef(review *models.Review) (Ref, error) {
	role, err := models.AuthorRoleForTarget(review.TargetType)
	if err != nil {
		return Ref{}, err
	}
	refType := EntityGuest
	if role == models.RoleHost {
		refType = EntityHost
	}
	return Ref{ID: review.AuthorID, Type: refType}, nil
}
