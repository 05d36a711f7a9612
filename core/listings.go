package core

import (
	"context"
	"errors"

	"github.com/parkerholladay/odyssey-voyage-II-server/models"
)

const featuredListingsLimit = 3

// HostListings returns the acting host's own listings.
func (c *Core) HostListings(ctx context.Context, id Identity) ([]models.Listing, error) {
	if err := requireRole(id, models.RoleHost, "Only hosts have access to listings."); err != nil {
		return nil, err
	}
	return c.Listings.GetListingsForHost(ctx, id.UserID)
}

func (c *Core) Listing(ctx context.Context, listingID uint) (*models.Listing, error) {
	return c.Listings.GetListing(ctx, listingID)
}

func (c *Core) FeaturedListings(ctx context.Context) ([]models.Listing, error) {
	return c.Listings.GetFeaturedListings(ctx, featuredListingsLimit)
}

func (c *Core) ListingAmenities(ctx context.Context) ([]models.Amenity, error) {
	return c.Listings.GetAllAmenities(ctx)
}

// CreateListing is authenticated; a non-host actor gets a business failure
// envelope rather than a raised error.
func (c *Core) CreateListing(ctx context.Context, id Identity, fields ListingFields) (ListingResult, error) {
	if err := requireIdentity(id); err != nil {
		return ListingResult{}, err
	}

	if id.Role != models.RoleHost {
		return ListingResult{Response: failed("Only hosts can create new listings")}, nil
	}

	fields.HostID = id.UserID
	listing, err := c.Listings.CreateListing(ctx, fields)
	if err != nil {
		return ListingResult{Response: failed(err.Error())}, nil
	}

	return ListingResult{Response: ok("Listing successfully created!"), Listing: listing}, nil
}

// UpdateListing requires the listing to belong to the acting host.
func (c *Core) UpdateListing(ctx context.Context, id Identity, listingID uint, fields ListingUpdate) (ListingResult, error) {
	if err := requireIdentity(id); err != nil {
		return ListingResult{}, err
	}

	if err := c.requireListingOwner(ctx, id, listingID); err != nil {
		if errors.Is(err, ErrNotYourResource) {
			return ListingResult{}, err
		}
		return ListingResult{Response: failed(err.Error())}, nil
	}

	listing, err := c.Listings.UpdateListing(ctx, listingID, fields)
	if err != nil {
		return ListingResult{Response: failed(err.Error())}, nil
	}

	return ListingResult{Response: ok("Listing successfully updated!"), Listing: listing}, nil
}
