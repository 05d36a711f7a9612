// Package core orchestrates the provider boundaries: availability-aware
// listing search, entity reference resolution, the authorization gate, and
// the side-effecting booking/review/wallet flows. Providers are opaque
// collaborators; the core owns control flow, not data.
package core

type Core struct {
	Listings ListingsProvider
	Bookings BookingsProvider
	Payments PaymentsProvider
	Reviews  ReviewsProvider
	Accounts AccountsProvider
}

func New(listings ListingsProvider, bookings BookingsProvider, payments PaymentsProvider, reviews ReviewsProvider, accounts AccountsProvider) *Core {
	return &Core{
		Listings: listings,
		Bookings: bookings,
		Payments: payments,
		Reviews:  reviews,
		Accounts: accounts,
	}
}

// Identity is the per-request actor context built once by the HTTP boundary
// and passed explicitly to every operation. A zero UserID means anonymous.
type Identity struct {
	UserID uint
	Role   string
}

func (id Identity) Anonymous() bool {
	return id.UserID == 0
}
