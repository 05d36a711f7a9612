package providers

import (
	"context"
	"errors"
	"time"

	"github.com/parkerholladay/odyssey-voyage-II-server/core"
	"github.com/parkerholladay/odyssey-voyage-II-server/models"

	"gorm.io/gorm"
)

type BookingsDB struct {
	db  *gorm.DB
	now func() time.Time
}

func NewBookingsDB(db *gorm.DB) *BookingsDB {
	return &BookingsDB{db: db, now: time.Now}
}

// IsListingAvailable reports whether no non-cancelled booking overlaps the
// requested [checkIn, checkOut) window. Availability is a query predicate,
// never a stored flag.
func (b *BookingsDB) IsListingAvailable(ctx context.Context, listingID uint, checkIn, checkOut time.Time) (bool, error) {
	var count int64
	err := b.db.WithContext(ctx).Model(&models.Booking{}).
		Where("listing_id = ? AND cancelled = ?", listingID, false).
		Where("check_in_date < ? AND check_out_date > ?", checkOut, checkIn).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

// GetBookingsForUser returns the guest's bookings, optionally narrowed by
// derived status. Status is computed from dates, so the filter is applied
// after the rows load rather than in SQL.
func (b *BookingsDB) GetBookingsForUser(ctx context.Context, userID uint, status string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := b.db.WithContext(ctx).
		Where("guest_id = ?", userID).
		Order("check_in_date ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return b.filterByStatus(bookings, status), nil
}

func (b *BookingsDB) GetBookingsForListing(ctx context.Context, listingID uint, status string) ([]models.Booking, error) {
	var bookings []models.Booking
	err := b.db.WithContext(ctx).
		Where("listing_id = ?", listingID).
		Order("check_in_date ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return b.filterByStatus(bookings, status), nil
}

func (b *BookingsDB) filterByStatus(bookings []models.Booking, status string) []models.Booking {
	if status == "" {
		return bookings
	}
	now := b.now()
	filtered := make([]models.Booking, 0, len(bookings))
	for _, booking := range bookings {
		if booking.StatusAt(now) == status {
			filtered = append(filtered, booking)
		}
	}
	return filtered
}

func (b *BookingsDB) CreateBooking(ctx context.Context, fields core.BookingFields) (*models.Booking, error) {
	booking := models.Booking{
		ListingID:    fields.ListingID,
		GuestID:      fields.GuestID,
		CheckInDate:  fields.CheckInDate,
		CheckOutDate: fields.CheckOutDate,
		TotalCost:    fields.TotalCost,
	}
	if err := b.db.WithContext(ctx).Create(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (b *BookingsDB) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	err := b.db.WithContext(ctx).First(&booking, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	return &booking, nil
}

func (b *BookingsDB) GetGuestIDForBooking(ctx context.Context, id uint) (uint, error) {
	booking, err := b.GetBooking(ctx, id)
	if err != nil {
		return 0, err
	}
	return booking.GuestID, nil
}

func (b *BookingsDB) GetListingIDForBooking(ctx context.Context, id uint) (uint, error) {
	booking, err := b.GetBooking(ctx, id)
	if err != nil {
		return 0, err
	}
	return booking.ListingID, nil
}

// GetCurrentlyBookedDateRangesForListing lists the stay windows of all
// non-cancelled bookings so clients can grey out taken dates.
func (b *BookingsDB) GetCurrentlyBookedDateRangesForListing(ctx context.Context, listingID uint) ([]models.DateRange, error) {
	var bookings []models.Booking
	err := b.db.WithContext(ctx).
		Where("listing_id = ? AND cancelled = ?", listingID, false).
		Order("check_in_date ASC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}

	ranges := make([]models.DateRange, 0, len(bookings))
	for _, booking := range bookings {
		ranges = append(ranges, models.DateRange{
			StartDate: booking.CheckInDate,
			EndDate:   booking.CheckOutDate,
		})
	}
	return ranges, nil
}

// HumanReadableDate renders a stored date the way clients display it.
func (b *BookingsDB) HumanReadableDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}
