package core

import (
	"context"
	"errors"
	"time"

	"github.com/parkerholladay/odyssey-voyage-II-server/models"

	"golang.org/x/sync/errgroup"
)

type SearchCriteria struct {
	CheckInDate  time.Time
	CheckOutDate time.Time
	NumOfBeds    int
	Page         int
	Limit        int
	SortBy       string
}

var errMissingStayDates = errors.New("check-in and check-out dates are required")

// SearchListings fetches a page of candidates with the non-date filters, then
// probes the bookings provider for availability once per candidate
// concurrently and keeps candidate i iff probe i reported available. Output
// preserves the candidate order; the listings provider owns pagination and
// sort. If any probe fails the whole search fails: dropping a failed probe
// could present an unavailable listing as bookable.
func (c *Core) SearchListings(ctx context.Context, criteria SearchCriteria) ([]models.Listing, error) {
	if criteria.CheckInDate.IsZero() || criteria.CheckOutDate.IsZero() {
		return nil, errMissingStayDates
	}

	listings, err := c.Listings.GetListings(ctx, ListingsFilter{
		NumOfBeds: criteria.NumOfBeds,
		Page:      criteria.Page,
		Limit:     criteria.Limit,
		SortBy:    criteria.SortBy,
	})
	if err != nil {
		return nil, err
	}

	available := make([]bool, len(listings))
	g, gctx := errgroup.WithContext(ctx)
	for i, l := range listings {
		i, listingID := i, l.ID
		g.Go(func() error {
			ok, err := c.Bookings.IsListingAvailable(gctx, listingID, criteria.CheckInDate, criteria.CheckOutDate)
			if err != nil {
				return err
			}
			available[i] = ok
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	filtered := make([]models.Listing, 0, len(listings))
	for i, l := range listings {
		if available[i] {
			filtered = append(filtered, l)
		}
	}
	return filtered, nil
}
