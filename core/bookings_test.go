package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/parkerholladay/odyssey-voyage-II-server/models"
)

func createBookingInput(t *testing.T) CreateBookingInput {
	return CreateBookingInput{
		ListingID:    1,
		CheckInDate:  mustDate(t, "2024-06-01"),
		CheckOutDate: mustDate(t, "2024-06-05"),
	}
}

func TestCreateBookingRequiresIdentity(t *testing.T) {
	rec := &callRecorder{}
	c, _, _, _, _, _ := newStubCore(rec)

	_, err := c.CreateBooking(context.Background(), Identity{}, createBookingInput(t))
	if !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	if len(rec.calls) != 0 {
		t.Fatalf("no provider may be called for anonymous actors, got %v", rec.calls)
	}
}

func TestCreateBookingSuccess(t *testing.T) {
	rec := &callRecorder{}
	c, listings, bookings, payments, _, _ := newStubCore(rec)

	listings.getTotalCostFn = func(ctx context.Context, id uint, checkIn, checkOut time.Time) (float64, error) {
		return 480, nil
	}
	payments.subtractFundsFn = func(ctx context.Context, userID uint, amount float64) error {
		if amount != 480 {
			t.Fatalf("expected debit of 480, got %v", amount)
		}
		return nil
	}
	bookings.createBookingFn = func(ctx context.Context, fields BookingFields) (*models.Booking, error) {
		if fields.TotalCost != 480 || fields.GuestID != 42 || fields.ListingID != 1 {
			t.Fatalf("unexpected booking fields: %+v", fields)
		}
		booking := &models.Booking{ListingID: fields.ListingID, GuestID: fields.GuestID, TotalCost: fields.TotalCost}
		booking.ID = 7
		return booking, nil
	}

	result, err := c.CreateBooking(context.Background(), Identity{UserID: 42, Role: models.RoleGuest}, createBookingInput(t))
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	if !result.Success || result.Code != 200 {
		t.Fatalf("expected success envelope, got %+v", result.Response)
	}
	if result.Message != "Successfully booked!" {
		t.Fatalf("unexpected message %q", result.Message)
	}
	if result.Booking == nil || result.Booking.ID != 7 {
		t.Fatalf("expected created booking in payload, got %+v", result.Booking)
	}
}

func TestCreateBookingInsufficientFunds(t *testing.T) {
	rec := &callRecorder{}
	c, listings, _, payments, _, _ := newStubCore(rec)

	listings.getTotalCostFn = func(ctx context.Context, id uint, checkIn, checkOut time.Time) (float64, error) {
		return 480, nil
	}
	payments.subtractFundsFn = func(ctx context.Context, userID uint, amount float64) error {
		return ErrInsufficientFunds
	}

	result, err := c.CreateBooking(context.Background(), Identity{UserID: 42, Role: models.RoleGuest}, createBookingInput(t))
	if err != nil {
		t.Fatalf("business failures must be envelopes, not errors: %v", err)
	}
	if result.Success || result.Code != 400 {
		t.Fatalf("expected {400, false}, got %+v", result.Response)
	}

	// The debit failed, so persistence must never be attempted.
	if rec.called("bookings.CreateBooking") {
		t.Fatal("bookings provider must not be called after a failed debit")
	}
}

func TestCreateBookingPersistenceFailureAfterDebit(t *testing.T) {
	rec := &callRecorder{}
	c, listings, bookings, payments, _, _ := newStubCore(rec)

	listings.getTotalCostFn = func(ctx context.Context, id uint, checkIn, checkOut time.Time) (float64, error) {
		return 480, nil
	}
	debited := false
	payments.subtractFundsFn = func(ctx context.Context, userID uint, amount float64) error {
		debited = true
		return nil
	}
	bookings.createBookingFn = func(ctx context.Context, fields BookingFields) (*models.Booking, error) {
		return nil, errors.New("bookings store write failed")
	}

	result, err := c.CreateBooking(context.Background(), Identity{UserID: 42, Role: models.RoleGuest}, createBookingInput(t))
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}
	if result.Success {
		t.Fatal("expected a failure envelope")
	}
	// There is intentionally no compensating refund; the debit stands.
	if !debited {
		t.Fatal("expected the debit to have happened before persistence")
	}
	if rec.called("payments.AddFunds") {
		t.Fatal("no compensating refund is part of this flow")
	}
}

func TestGuestBookingsRoleGate(t *testing.T) {
	rec := &callRecorder{}
	c, _, bookings, _, _, _ := newStubCore(rec)

	bookings.getForUserFn = func(ctx context.Context, userID uint, status string) ([]models.Booking, error) {
		return []models.Booking{{GuestID: userID}}, nil
	}

	if _, err := c.GuestBookings(context.Background(), Identity{}, ""); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("anonymous: expected ErrUnauthenticated, got %v", err)
	}

	_, err := c.GuestBookings(context.Background(), Identity{UserID: 9, Role: models.RoleHost}, "")
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("host: expected ErrForbidden, got %v", err)
	}
	if reason := ForbiddenReason(err); reason != "Only guests have access to trips" {
		t.Fatalf("unexpected reason %q", reason)
	}

	if _, err := c.GuestBookings(context.Background(), Identity{UserID: 9, Role: models.RoleGuest}, ""); err != nil {
		t.Fatalf("guest: %v", err)
	}
}

func TestGuestBookingsStatusVariants(t *testing.T) {
	rec := &callRecorder{}
	c, _, bookings, _, _, _ := newStubCore(rec)

	var gotStatus string
	bookings.getForUserFn = func(ctx context.Context, userID uint, status string) ([]models.Booking, error) {
		gotStatus = status
		return nil, nil
	}

	guest := Identity{UserID: 9, Role: models.RoleGuest}

	if _, err := c.UpcomingGuestBookings(context.Background(), guest); err != nil {
		t.Fatal(err)
	}
	if gotStatus != models.BookingStatusUpcoming {
		t.Fatalf("expected UPCOMING filter, got %q", gotStatus)
	}

	if _, err := c.PastGuestBookings(context.Background(), guest); err != nil {
		t.Fatal(err)
	}
	if gotStatus != models.BookingStatusCompleted {
		t.Fatalf("expected COMPLETED filter, got %q", gotStatus)
	}
}

func TestBookingsForListingGuestForbiddenBeforeAnyDataAccess(t *testing.T) {
	rec := &callRecorder{}
	c, _, _, _, _, _ := newStubCore(rec)

	_, err := c.BookingsForListing(context.Background(), Identity{UserID: 9, Role: models.RoleGuest}, 1, "")
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if len(rec.calls) != 0 {
		t.Fatalf("authorization must short-circuit before any provider call, got %v", rec.calls)
	}
}

func TestBookingsForListingOwnershipCheck(t *testing.T) {
	rec := &callRecorder{}
	c, listings, bookings, _, _, _ := newStubCore(rec)

	listings.getListingsForHost = func(ctx context.Context, hostID uint) ([]models.Listing, error) {
		return []models.Listing{listingWithID(5)}, nil
	}
	bookings.getForListingFn = func(ctx context.Context, listingID uint, status string) ([]models.Booking, error) {
		return []models.Booking{{ListingID: listingID}}, nil
	}

	host := Identity{UserID: 3, Role: models.RoleHost}

	// Not the host's listing.
	_, err := c.BookingsForListing(context.Background(), host, 8, "")
	if !errors.Is(err, ErrNotYourResource) {
		t.Fatalf("expected ErrNotYourResource, got %v", err)
	}
	if rec.called("bookings.GetBookingsForListing") {
		t.Fatal("bookings must not be read for a listing the host does not own")
	}

	// The host's own listing.
	result, err := c.BookingsForListing(context.Background(), host, 5, "")
	if err != nil {
		t.Fatalf("BookingsForListing: %v", err)
	}
	if len(result) != 1 {
		t.Fatalf("expected 1 booking, got %d", len(result))
	}
}
