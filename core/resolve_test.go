package core

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/parkerholladay/odyssey-voyage-II-server/models"
)

func TestNewResolverRequiresEveryVariant(t *testing.T) {
	noop := func(ctx context.Context, id uint) (any, error) { return nil, nil }

	// Complete registration constructs fine.
	if _, err := NewResolver(map[EntityType]ResolveFunc{
		EntityGuest:   noop,
		EntityHost:    noop,
		EntityListing: noop,
		EntityBooking: noop,
	}); err != nil {
		t.Fatalf("complete registration: %v", err)
	}

	// Dropping any single variant fails at construction.
	for _, missing := range []EntityType{EntityGuest, EntityHost, EntityListing, EntityBooking} {
		funcs := map[EntityType]ResolveFunc{
			EntityGuest:   noop,
			EntityHost:    noop,
			EntityListing: noop,
			EntityBooking: noop,
		}
		delete(funcs, missing)
		if _, err := NewResolver(funcs); err == nil {
			t.Fatalf("expected construction to fail with %s unregistered", missing)
		}
	}
}

func TestParseEntityType(t *testing.T) {
	for _, valid := range []string{"Guest", "Host", "Listing", "Booking"} {
		parsed, err := ParseEntityType(valid)
		if err != nil {
			t.Fatalf("ParseEntityType(%q): %v", valid, err)
		}
		if string(parsed) != valid {
			t.Fatalf("ParseEntityType(%q) = %q", valid, parsed)
		}
	}
	if _, err := ParseEntityType("Review"); err == nil {
		t.Fatal("expected an error for a tag outside the closed set")
	}
}

func TestResolveDispatchesToOwningProvider(t *testing.T) {
	rec := &callRecorder{}
	c, listings, bookings, _, _, accounts := newStubCore(rec)

	user := &models.User{Name: "Renata", Role: models.RoleHost}
	user.ID = 2
	accounts.getUserFn = func(ctx context.Context, id uint) (*models.User, error) {
		if id != 2 {
			return nil, ErrNotFound
		}
		return user, nil
	}
	listing := &models.Listing{Title: "Cozy yurt"}
	listing.ID = 11
	listings.getListingFn = func(ctx context.Context, id uint) (*models.Listing, error) {
		if id != 11 {
			return nil, ErrNotFound
		}
		return listing, nil
	}
	booking := &models.Booking{ListingID: 11, GuestID: 2}
	booking.ID = 30
	bookings.getBookingFn = func(ctx context.Context, id uint) (*models.Booking, error) {
		if id != 30 {
			return nil, ErrNotFound
		}
		return booking, nil
	}

	resolver, err := NewEntityResolver(c)
	if err != nil {
		t.Fatalf("NewEntityResolver: %v", err)
	}

	got, err := resolver.Resolve(context.Background(), Ref{ID: 2, Type: EntityHost})
	if err != nil {
		t.Fatalf("resolve host: %v", err)
	}
	if got != user {
		t.Fatalf("expected the accounts provider's user, got %#v", got)
	}

	got, err = resolver.Resolve(context.Background(), Ref{ID: 11, Type: EntityListing})
	if err != nil {
		t.Fatalf("resolve listing: %v", err)
	}
	if got != listing {
		t.Fatalf("expected the listings provider's listing, got %#v", got)
	}

	got, err = resolver.Resolve(context.Background(), Ref{ID: 30, Type: EntityBooking})
	if err != nil {
		t.Fatalf("resolve booking: %v", err)
	}
	if got != booking {
		t.Fatalf("expected the bookings provider's booking, got %#v", got)
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	rec := &callRecorder{}
	c, _, _, _, _, accounts := newStubCore(rec)

	accounts.getUserFn = func(ctx context.Context, id uint) (*models.User, error) {
		user := &models.User{Name: "Mira", Role: models.RoleGuest}
		user.ID = id
		return user, nil
	}

	resolver, err := NewEntityResolver(c)
	if err != nil {
		t.Fatalf("NewEntityResolver: %v", err)
	}

	ref := Ref{ID: 4, Type: EntityGuest}
	first, err := resolver.Resolve(context.Background(), ref)
	if err != nil {
		t.Fatal(err)
	}
	second, err := resolver.Resolve(context.Background(), ref)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("resolving the same reference twice returned unequal entities:\n%#v\n%#v", first, second)
	}
}

func TestResolveUnknownID(t *testing.T) {
	rec := &callRecorder{}
	c, _, bookings, _, _, _ := newStubCore(rec)

	bookings.getBookingFn = func(ctx context.Context, id uint) (*models.Booking, error) {
		return nil, ErrNotFound
	}

	resolver, err := NewEntityResolver(c)
	if err != nil {
		t.Fatalf("NewEntityResolver: %v", err)
	}

	_, err = resolver.Resolve(context.Background(), Ref{ID: 999, Type: EntityBooking})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for an unknown id, got %v", err)
	}
}
