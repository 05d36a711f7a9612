package core

import (
	"context"
	"errors"
	"time"

	"github.com/parkerholladay/odyssey-voyage-II-server/models"
)

type CreateBookingInput struct {
	ListingID    uint
	CheckInDate  time.Time
	CheckOutDate time.Time
}

const insufficientFundsMessage = "We couldn't complete your request because your funds are insufficient."

// CreateBooking runs the two-phase booking sequence: price the stay, debit
// the guest's wallet, then persist the booking. The sequence is not
// transactional: a persistence failure after the debit leaves the funds
// withdrawn with no booking recorded and no compensating refund. That gap is
// inherited from the upstream design and is deliberately not papered over
// here; callers wanting stronger guarantees need a saga around both
// providers.
func (c *Core) CreateBooking(ctx context.Context, id Identity, input CreateBookingInput) (BookingResult, error) {
	if err := requireIdentity(id); err != nil {
		return BookingResult{}, err
	}

	totalCost, err := c.Listings.GetTotalCost(ctx, input.ListingID, input.CheckInDate, input.CheckOutDate)
	if err != nil {
		return BookingResult{Response: failed(err.Error())}, nil
	}

	if err := c.Payments.SubtractFunds(ctx, id.UserID, totalCost); err != nil {
		if errors.Is(err, ErrInsufficientFunds) {
			return BookingResult{Response: failed(insufficientFundsMessage)}, nil
		}
		return BookingResult{Response: failed(err.Error())}, nil
	}

	booking, err := c.Bookings.CreateBooking(ctx, BookingFields{
		ListingID:    input.ListingID,
		GuestID:      id.UserID,
		CheckInDate:  input.CheckInDate,
		CheckOutDate: input.CheckOutDate,
		TotalCost:    totalCost,
	})
	if err != nil {
		return BookingResult{Response: failed(err.Error())}, nil
	}

	return BookingResult{Response: ok("Successfully booked!"), Booking: booking}, nil
}

const guestsOnlyTripsReason = "Only guests have access to trips"

// GuestBookings returns the acting guest's bookings, optionally narrowed to
// UPCOMING or COMPLETED.
func (c *Core) GuestBookings(ctx context.Context, id Identity, status string) ([]models.Booking, error) {
	if err := requireRole(id, models.RoleGuest, guestsOnlyTripsReason); err != nil {
		return nil, err
	}
	return c.Bookings.GetBookingsForUser(ctx, id.UserID, status)
}

func (c *Core) UpcomingGuestBookings(ctx context.Context, id Identity) ([]models.Booking, error) {
	return c.GuestBookings(ctx, id, models.BookingStatusUpcoming)
}

func (c *Core) PastGuestBookings(ctx context.Context, id Identity) ([]models.Booking, error) {
	return c.GuestBookings(ctx, id, models.BookingStatusCompleted)
}

// BookingsForListing is host-only and owner-scoped: the listing must belong
// to the acting host before any booking rows are read.
func (c *Core) BookingsForListing(ctx context.Context, id Identity, listingID uint, status string) ([]models.Booking, error) {
	if err := requireRole(id, models.RoleHost, "Only hosts have access to listing bookings"); err != nil {
		return nil, err
	}
	if err := c.requireListingOwner(ctx, id, listingID); err != nil {
		return nil, err
	}
	bookings, err := c.Bookings.GetBookingsForListing(ctx, listingID, status)
	if err != nil {
		return nil, err
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	return bookings, nil
}

// NumberOfUpcomingBookings supports the listing dashboard counter.
func (c *Core) NumberOfUpcomingBookings(ctx context.Context, listingID uint) (int, error) {
	bookings, err := c.Bookings.GetBookingsForListing(ctx, listingID, models.BookingStatusUpcoming)
	if err != nil {
		return 0, err
	}
	return len(bookings), nil
}
