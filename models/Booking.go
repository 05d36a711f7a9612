package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	BookingStatusUpcoming  = "UPCOMING"
	BookingStatusCompleted = "COMPLETED"
	BookingStatusCancelled = "CANCELLED"
)

type Booking struct {
	gorm.Model
	ListingID    uint      `json:"listingID" gorm:"not null;index"`
	GuestID      uint      `json:"guestID" gorm:"not null;index"`
	CheckInDate  time.Time `json:"checkInDate"`
	CheckOutDate time.Time `json:"checkOutDate"`
	TotalCost    float64   `json:"totalCost"` // frozen at creation, never recomputed
	Cancelled    bool      `json:"cancelled" gorm:"default:false"`
}

// StatusAt derives the booking status from its dates. Status is never stored
// as enum state; a booking whose checkout has passed is COMPLETED.
func (b *Booking) StatusAt(now time.Time) string {
	if b.Cancelled {
		return BookingStatusCancelled
	}
	if b.CheckOutDate.Before(now) {
		return BookingStatusCompleted
	}
	return BookingStatusUpcoming
}

func (b *Booking) Status() string {
	return b.StatusAt(time.Now())
}

// DateRange is a closed interval of booked dates, used when a listing
// reports its currently booked spans to clients.
type DateRange struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}
