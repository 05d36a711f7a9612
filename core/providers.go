package core

import (
	"context"
	"time"

	"github.com/parkerholladay/odyssey-voyage-II-server/models"
)

// Each provider owns one entity family. The core composes them and never
// reaches into another provider's tables.

type ListingsFilter struct {
	NumOfBeds int
	Page      int
	Limit     int
	SortBy    string // COST_ASC, COST_DESC
}

type ListingFields struct {
	HostID         uint
	Title          string
	Description    string
	PhotoThumbnail string
	Photos         []string
	NumOfBeds      int
	CostPerNight   float64
	LocationType   string
	AmenityIDs     []uint
}

// ListingUpdate carries partial updates; nil fields are left untouched.
type ListingUpdate struct {
	Title          *string
	Description    *string
	PhotoThumbnail *string
	Photos         []string
	NumOfBeds      *int
	CostPerNight   *float64
	LocationType   *string
	AmenityIDs     []uint
}

type ListingsProvider interface {
	GetListings(ctx context.Context, filter ListingsFilter) ([]models.Listing, error)
	GetListing(ctx context.Context, id uint) (*models.Listing, error)
	GetListingsForHost(ctx context.Context, hostID uint) ([]models.Listing, error)
	GetTotalCost(ctx context.Context, id uint, checkIn, checkOut time.Time) (float64, error)
	CreateListing(ctx context.Context, fields ListingFields) (*models.Listing, error)
	UpdateListing(ctx context.Context, id uint, fields ListingUpdate) (*models.Listing, error)
	GetFeaturedListings(ctx context.Context, limit int) ([]models.Listing, error)
	GetAllAmenities(ctx context.Context) ([]models.Amenity, error)
}

type BookingFields struct {
	ListingID    uint
	GuestID      uint
	CheckInDate  time.Time
	CheckOutDate time.Time
	TotalCost    float64
}

type BookingsProvider interface {
	IsListingAvailable(ctx context.Context, listingID uint, checkIn, checkOut time.Time) (bool, error)
	GetBookingsForUser(ctx context.Context, userID uint, status string) ([]models.Booking, error)
	GetBookingsForListing(ctx context.Context, listingID uint, status string) ([]models.Booking, error)
	CreateBooking(ctx context.Context, fields BookingFields) (*models.Booking, error)
	GetBooking(ctx context.Context, id uint) (*models.Booking, error)
	GetGuestIDForBooking(ctx context.Context, id uint) (uint, error)
	GetListingIDForBooking(ctx context.Context, id uint) (uint, error)
	GetCurrentlyBookedDateRangesForListing(ctx context.Context, listingID uint) ([]models.DateRange, error)
	HumanReadableDate(t time.Time) string
}

type PaymentsProvider interface {
	// SubtractFunds returns ErrInsufficientFunds when the wallet cannot cover
	// the amount.
	SubtractFunds(ctx context.Context, userID uint, amount float64) error
	AddFunds(ctx context.Context, userID uint, amount float64) (float64, error)
	GetUserWalletAmount(ctx context.Context, userID uint) (float64, error)
}

type ReviewFields struct {
	BookingID uint
	TargetID  uint
	AuthorID  uint
	Rating    int
	Text      string
}

type ReviewsProvider interface {
	CreateReviewForGuest(ctx context.Context, fields ReviewFields) (*models.Review, error)
	CreateReviewForHost(ctx context.Context, fields ReviewFields) (*models.Review, error)
	CreateReviewForListing(ctx context.Context, fields ReviewFields) (*models.Review, error)
	// GetReviewForBooking returns (nil, nil) when no review of that target
	// type exists yet for the booking.
	GetReviewForBooking(ctx context.Context, targetType string, bookingID uint) (*models.Review, error)
	GetOverallRatingForHost(ctx context.Context, hostID uint) (float64, error)
	GetOverallRatingForListing(ctx context.Context, listingID uint) (float64, error)
	GetReviewsForListing(ctx context.Context, listingID uint) ([]models.Review, error)
}

type ProfileInput struct {
	Name               *string
	ProfileDescription *string
	ProfilePicture     *string
}

type AccountsProvider interface {
	GetUser(ctx context.Context, id uint) (*models.User, error)
	UpdateUser(ctx context.Context, id uint, info ProfileInput) (*models.User, error)
}
