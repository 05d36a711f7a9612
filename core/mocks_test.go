package core

import (
	"context"
	"sync"
	"time"

	"github.com/parkerholladay/odyssey-voyage-II-server/models"
)

// Func-field stubs: each test configures only the methods it expects; an
// unexpected call panics, which the test reports as a failure. Calls are
// recorded so tests can assert on short-circuiting.

type callRecorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *callRecorder) record(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, name)
}

func (r *callRecorder) called(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.calls {
		if c == name {
			return true
		}
	}
	return false
}

type stubListings struct {
	rec                *callRecorder
	getListingsFn      func(ctx context.Context, filter ListingsFilter) ([]models.Listing, error)
	getListingFn       func(ctx context.Context, id uint) (*models.Listing, error)
	getListingsForHost func(ctx context.Context, hostID uint) ([]models.Listing, error)
	getTotalCostFn     func(ctx context.Context, id uint, checkIn, checkOut time.Time) (float64, error)
	createListingFn    func(ctx context.Context, fields ListingFields) (*models.Listing, error)
	updateListingFn    func(ctx context.Context, id uint, fields ListingUpdate) (*models.Listing, error)
}

func (s *stubListings) GetListings(ctx context.Context, filter ListingsFilter) ([]models.Listing, error) {
	s.rec.record("listings.GetListings")
	return s.getListingsFn(ctx, filter)
}

func (s *stubListings) GetListing(ctx context.Context, id uint) (*models.Listing, error) {
	s.rec.record("listings.GetListing")
	return s.getListingFn(ctx, id)
}

func (s *stubListings) GetListingsForHost(ctx context.Context, hostID uint) ([]models.Listing, error) {
	s.rec.record("listings.GetListingsForHost")
	return s.getListingsForHost(ctx, hostID)
}

func (s *stubListings) GetTotalCost(ctx context.Context, id uint, checkIn, checkOut time.Time) (float64, error) {
	s.rec.record("listings.GetTotalCost")
	return s.getTotalCostFn(ctx, id, checkIn, checkOut)
}

func (s *stubListings) CreateListing(ctx context.Context, fields ListingFields) (*models.Listing, error) {
	s.rec.record("listings.CreateListing")
	return s.createListingFn(ctx, fields)
}

func (s *stubListings) UpdateListing(ctx context.Context, id uint, fields ListingUpdate) (*models.Listing, error) {
	s.rec.record("listings.UpdateListing")
	return s.updateListingFn(ctx, id, fields)
}

func (s *stubListings) GetFeaturedListings(ctx context.Context, limit int) ([]models.Listing, error) {
	s.rec.record("listings.GetFeaturedListings")
	return nil, nil
}

func (s *stubListings) GetAllAmenities(ctx context.Context) ([]models.Amenity, error) {
	s.rec.record("listings.GetAllAmenities")
	return nil, nil
}

type stubBookings struct {
	rec                   *callRecorder
	isAvailableFn         func(ctx context.Context, listingID uint, checkIn, checkOut time.Time) (bool, error)
	getForUserFn          func(ctx context.Context, userID uint, status string) ([]models.Booking, error)
	getForListingFn       func(ctx context.Context, listingID uint, status string) ([]models.Booking, error)
	createBookingFn       func(ctx context.Context, fields BookingFields) (*models.Booking, error)
	getBookingFn          func(ctx context.Context, id uint) (*models.Booking, error)
	getGuestIDFn          func(ctx context.Context, id uint) (uint, error)
	getListingIDFn        func(ctx context.Context, id uint) (uint, error)
	getBookedDateRangesFn func(ctx context.Context, listingID uint) ([]models.DateRange, error)
}

func (s *stubBookings) IsListingAvailable(ctx context.Context, listingID uint, checkIn, checkOut time.Time) (bool, error) {
	s.rec.record("bookings.IsListingAvailable")
	return s.isAvailableFn(ctx, listingID, checkIn, checkOut)
}

func (s *stubBookings) GetBookingsForUser(ctx context.Context, userID uint, status string) ([]models.Booking, error) {
	s.rec.record("bookings.GetBookingsForUser")
	return s.getForUserFn(ctx, userID, status)
}

func (s *stubBookings) GetBookingsForListing(ctx context.Context, listingID uint, status string) ([]models.Booking, error) {
	s.rec.record("bookings.GetBookingsForListing")
	return s.getForListingFn(ctx, listingID, status)
}

func (s *stubBookings) CreateBooking(ctx context.Context, fields BookingFields) (*models.Booking, error) {
	s.rec.record("bookings.CreateBooking")
	return s.createBookingFn(ctx, fields)
}

func (s *stubBookings) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	s.rec.record("bookings.GetBooking")
	return s.getBookingFn(ctx, id)
}

func (s *stubBookings) GetGuestIDForBooking(ctx context.Context, id uint) (uint, error) {
	s.rec.record("bookings.GetGuestIDForBooking")
	return s.getGuestIDFn(ctx, id)
}

func (s *stubBookings) GetListingIDForBooking(ctx context.Context, id uint) (uint, error) {
	s.rec.record("bookings.GetListingIDForBooking")
	return s.getListingIDFn(ctx, id)
}

func (s *stubBookings) GetCurrentlyBookedDateRangesForListing(ctx context.Context, listingID uint) ([]models.DateRange, error) {
	s.rec.record("bookings.GetCurrentlyBookedDateRangesForListing")
	return s.getBookedDateRangesFn(ctx, listingID)
}

func (s *stubBookings) HumanReadableDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

type stubPayments struct {
	rec             *callRecorder
	subtractFundsFn func(ctx context.Context, userID uint, amount float64) error
	addFundsFn      func(ctx context.Context, userID uint, amount float64) (float64, error)
	walletAmountFn  func(ctx context.Context, userID uint) (float64, error)
}

func (s *stubPayments) SubtractFunds(ctx context.Context, userID uint, amount float64) error {
	s.rec.record("payments.SubtractFunds")
	return s.subtractFundsFn(ctx, userID, amount)
}

func (s *stubPayments) AddFunds(ctx context.Context, userID uint, amount float64) (float64, error) {
	s.rec.record("payments.AddFunds")
	return s.addFundsFn(ctx, userID, amount)
}

func (s *stubPayments) GetUserWalletAmount(ctx context.Context, userID uint) (float64, error) {
	s.rec.record("payments.GetUserWalletAmount")
	return s.walletAmountFn(ctx, userID)
}

type stubReviews struct {
	rec                  *callRecorder
	createForGuestFn     func(ctx context.Context, fields ReviewFields) (*models.Review, error)
	createForHostFn      func(ctx context.Context, fields ReviewFields) (*models.Review, error)
	createForListingFn   func(ctx context.Context, fields ReviewFields) (*models.Review, error)
	getForBookingFn      func(ctx context.Context, targetType string, bookingID uint) (*models.Review, error)
	hostRatingFn         func(ctx context.Context, hostID uint) (float64, error)
	listingRatingFn      func(ctx context.Context, listingID uint) (float64, error)
	getReviewsForListing func(ctx context.Context, listingID uint) ([]models.Review, error)
}

func (s *stubReviews) CreateReviewForGuest(ctx context.Context, fields ReviewFields) (*models.Review, error) {
	s.rec.record("reviews.CreateReviewForGuest")
	return s.createForGuestFn(ctx, fields)
}

func (s *stubReviews) CreateReviewForHost(ctx context.Context, fields ReviewFields) (*models.Review, error) {
	s.rec.record("reviews.CreateReviewForHost")
	return s.createForHostFn(ctx, fields)
}

func (s *stubReviews) CreateReviewForListing(ctx context.Context, fields ReviewFields) (*models.Review, error) {
	s.rec.record("reviews.CreateReviewForListing")
	return s.createForListingFn(ctx, fields)
}

func (s *stubReviews) GetReviewForBooking(ctx context.Context, targetType string, bookingID uint) (*models.Review, error) {
	s.rec.record("reviews.GetReviewForBooking")
	return s.getForBookingFn(ctx, targetType, bookingID)
}

func (s *stubReviews) GetOverallRatingForHost(ctx context.Context, hostID uint) (float64, error) {
	s.rec.record("reviews.GetOverallRatingForHost")
	return s.hostRatingFn(ctx, hostID)
}

func (s *stubReviews) GetOverallRatingForListing(ctx context.Context, listingID uint) (float64, error) {
	s.rec.record("reviews.GetOverallRatingForListing")
	return s.listingRatingFn(ctx, listingID)
}

func (s *stubReviews) GetReviewsForListing(ctx context.Context, listingID uint) ([]models.Review, error) {
	s.rec.record("reviews.GetReviewsForListing")
	return s.getReviewsForListing(ctx, listingID)
}

type stubAccounts struct {
	rec          *callRecorder
	getUserFn    func(ctx context.Context, id uint) (*models.User, error)
	updateUserFn func(ctx context.Context, id uint, info ProfileInput) (*models.User, error)
}

func (s *stubAccounts) GetUser(ctx context.Context, id uint) (*models.User, error) {
	s.rec.record("accounts.GetUser")
	return s.getUserFn(ctx, id)
}

func (s *stubAccounts) UpdateUser(ctx context.Context, id uint, info ProfileInput) (*models.User, error) {
	s.rec.record("accounts.UpdateUser")
	return s.updateUserFn(ctx, id, info)
}

// newStubCore builds a Core whose providers all panic on use; tests fill in
// the funcs they expect to be hit.
func newStubCore(rec *callRecorder) (*Core, *stubListings, *stubBookings, *stubPayments, *stubReviews, *stubAccounts) {
	listings := &stubListings{rec: rec}
	bookings := &stubBookings{rec: rec}
	payments := &stubPayments{rec: rec}
	reviews := &stubReviews{rec: rec}
	accounts := &stubAccounts{rec: rec}
	return New(listings, bookings, payments, reviews, accounts), listings, bookings, payments, reviews, accounts
}

func listingWithID(id uint) models.Listing {
	l := models.Listing{Title: "Listing"}
	l.ID = id
	return l
}
