package core

import (
	"context"
	"fmt"
)

// EntityType is the closed tag set for cross-service references.
type EntityType string

const (
	EntityGuest   EntityType = "Guest"
	EntityHost    EntityType = "Host"
	EntityListing EntityType = "Listing"
	EntityBooking EntityType = "Booking"
)

var entityTypes = []EntityType{EntityGuest, EntityHost, EntityListing, EntityBooking}

// ParseEntityType maps an external tag onto the closed set.
func ParseEntityType(s string) (EntityType, error) {
	for _, t := range entityTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown entity type %q", s)
}

// Ref is a minimal stand-in for an entity: an id plus a type tag. Any field
// access beyond the id goes through Resolve.
type Ref struct {
	ID   uint       `json:"id"`
	Type EntityType `json:"type"`
}

// ResolveFunc resolves one reference into the owning provider's canonical
// entity representation.
type ResolveFunc func(ctx context.Context, id uint) (any, error)

// Resolver dispatches references over the closed tag set. Construction fails
// if any variant lacks a resolve func, so a missing registration surfaces at
// startup instead of on the first matching request.
type Resolver struct {
	funcs map[EntityType]ResolveFunc
}

func NewResolver(funcs map[EntityType]ResolveFunc) (*Resolver, error) {
	for _, t := range entityTypes {
		if funcs[t] == nil {
			return nil, fmt.Errorf("resolver: no resolve func registered for %s", t)
		}
	}
	registered := make(map[EntityType]ResolveFunc, len(entityTypes))
	for _, t := range entityTypes {
		registered[t] = funcs[t]
	}
	return &Resolver{funcs: registered}, nil
}

// Resolve is idempotent and side-effect free. An unknown id yields
// ErrNotFound; an unknown tag can only mean the Ref was built outside
// ParseEntityType and is treated as a programming error.
func (r *Resolver) Resolve(ctx context.Context, ref Ref) (any, error) {
	fn, ok := r.funcs[ref.Type]
	if !ok {
		return nil, fmt.Errorf("resolver: unregistered entity type %q", ref.Type)
	}
	return fn(ctx, ref.ID)
}

// NewEntityResolver wires the standard variant set against the core's
// providers: Guest and Host resolve through accounts, Listing through
// listings, Booking through bookings.
func NewEntityResolver(c *Core) (*Resolver, error) {
	userResolve := func(ctx context.Context, id uint) (any, error) {
		return c.Accounts.GetUser(ctx, id)
	}
	return NewResolver(map[EntityType]ResolveFunc{
		EntityGuest: userResolve,
		EntityHost:  userResolve,
		EntityListing: func(ctx context.Context, id uint) (any, error) {
			return c.Listings.GetListing(ctx, id)
		},
		EntityBooking: func(ctx context.Context, id uint) (any, error) {
			return c.Bookings.GetBooking(ctx, id)
		},
	})
}
