package core

import "context"

// The authorization gate is a guard clause run at the top of every protected
// operation, before any data access: identity first, then role, then (for
// owner-scoped operations) ownership.

func requireIdentity(id Identity) error {
	if id.Anonymous() {
		return ErrUnauthenticated
	}
	return nil
}

func requireRole(id Identity, role, reason string) error {
	if err := requireIdentity(id); err != nil {
		return err
	}
	if id.Role != role {
		return Forbidden(reason)
	}
	return nil
}

// requireListingOwner verifies the listing is among the host's own listings.
// Fails with ErrNotYourResource rather than ErrForbidden so callers can tell
// a role mismatch from an ownership mismatch.
func (c *Core) requireListingOwner(ctx context.Context, id Identity, listingID uint) error {
	listings, err := c.Listings.GetListingsForHost(ctx, id.UserID)
	if err != nil {
		return err
	}
	for _, l := range listings {
		if l.ID == listingID {
			return nil
		}
	}
	return ErrNotYourResource
}
