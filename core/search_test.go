package core

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/parkerholladay/odyssey-voyage-II-server/models"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return parsed
}

func searchCriteria(t *testing.T) SearchCriteria {
	return SearchCriteria{
		CheckInDate:  mustDate(t, "2024-06-01"),
		CheckOutDate: mustDate(t, "2024-06-05"),
		Limit:        10,
	}
}

func TestSearchListingsFiltersUnavailable(t *testing.T) {
	rec := &callRecorder{}
	c, listings, bookings, _, _, _ := newStubCore(rec)

	candidates := []models.Listing{listingWithID(1), listingWithID(2), listingWithID(3)}
	listings.getListingsFn = func(ctx context.Context, filter ListingsFilter) ([]models.Listing, error) {
		return candidates, nil
	}

	// availability per candidate: [true, false, true]
	availability := map[uint]bool{1: true, 2: false, 3: true}
	bookings.isAvailableFn = func(ctx context.Context, listingID uint, checkIn, checkOut time.Time) (bool, error) {
		return availability[listingID], nil
	}

	result, err := c.SearchListings(context.Background(), searchCriteria(t))
	if err != nil {
		t.Fatalf("SearchListings: %v", err)
	}

	if len(result) != 2 {
		t.Fatalf("expected 2 available listings, got %d", len(result))
	}
	if result[0].ID != 1 || result[1].ID != 3 {
		t.Fatalf("expected listings [1, 3] in original order, got [%d, %d]", result[0].ID, result[1].ID)
	}
}

func TestSearchListingsPreservesProviderOrder(t *testing.T) {
	rec := &callRecorder{}
	c, listings, bookings, _, _, _ := newStubCore(rec)

	// Provider returns a deliberate non-id order; the search must not re-sort.
	candidates := []models.Listing{listingWithID(7), listingWithID(2), listingWithID(9), listingWithID(4)}
	listings.getListingsFn = func(ctx context.Context, filter ListingsFilter) ([]models.Listing, error) {
		return candidates, nil
	}
	bookings.isAvailableFn = func(ctx context.Context, listingID uint, checkIn, checkOut time.Time) (bool, error) {
		return listingID != 9, nil
	}

	result, err := c.SearchListings(context.Background(), searchCriteria(t))
	if err != nil {
		t.Fatalf("SearchListings: %v", err)
	}

	want := []uint{7, 2, 4}
	if len(result) != len(want) {
		t.Fatalf("expected %d listings, got %d", len(want), len(result))
	}
	for i, id := range want {
		if result[i].ID != id {
			t.Fatalf("position %d: expected listing %d, got %d", i, id, result[i].ID)
		}
	}
}

func TestSearchListingsProbesEveryCandidateConcurrently(t *testing.T) {
	rec := &callRecorder{}
	c, listings, bookings, _, _, _ := newStubCore(rec)

	const n = 8
	candidates := make([]models.Listing, 0, n)
	for i := 1; i <= n; i++ {
		candidates = append(candidates, listingWithID(uint(i)))
	}
	listings.getListingsFn = func(ctx context.Context, filter ListingsFilter) ([]models.Listing, error) {
		return candidates, nil
	}

	var mu sync.Mutex
	probed := make(map[uint]int)
	bookings.isAvailableFn = func(ctx context.Context, listingID uint, checkIn, checkOut time.Time) (bool, error) {
		mu.Lock()
		probed[listingID]++
		mu.Unlock()
		return true, nil
	}

	result, err := c.SearchListings(context.Background(), searchCriteria(t))
	if err != nil {
		t.Fatalf("SearchListings: %v", err)
	}
	if len(result) != n {
		t.Fatalf("expected all %d listings available, got %d", n, len(result))
	}
	for i := 1; i <= n; i++ {
		if probed[uint(i)] != 1 {
			t.Fatalf("listing %d probed %d times, expected exactly once", i, probed[uint(i)])
		}
	}
}

func TestSearchListingsFailsWholeSearchOnProbeError(t *testing.T) {
	rec := &callRecorder{}
	c, listings, bookings, _, _, _ := newStubCore(rec)

	listings.getListingsFn = func(ctx context.Context, filter ListingsFilter) ([]models.Listing, error) {
		return []models.Listing{listingWithID(1), listingWithID(2), listingWithID(3)}, nil
	}

	probeErr := errors.New("bookings provider unreachable")
	bookings.isAvailableFn = func(ctx context.Context, listingID uint, checkIn, checkOut time.Time) (bool, error) {
		if listingID == 2 {
			return false, probeErr
		}
		return true, nil
	}

	result, err := c.SearchListings(context.Background(), searchCriteria(t))
	if err == nil {
		t.Fatal("expected the whole search to fail when one probe fails")
	}
	if !errors.Is(err, probeErr) {
		t.Fatalf("expected the probe error to propagate, got %v", err)
	}
	if result != nil {
		t.Fatalf("expected no partial results, got %d listings", len(result))
	}
}

func TestSearchListingsRequiresStayDates(t *testing.T) {
	rec := &callRecorder{}
	c, _, _, _, _, _ := newStubCore(rec)

	_, err := c.SearchListings(context.Background(), SearchCriteria{Limit: 10})
	if err == nil {
		t.Fatal("expected an error for missing stay dates")
	}
	if rec.called("listings.GetListings") {
		t.Fatal("listings provider must not be called without stay dates")
	}
}

func TestSearchListingsPassesNonDateFiltersThrough(t *testing.T) {
	rec := &callRecorder{}
	c, listings, bookings, _, _, _ := newStubCore(rec)

	var gotFilter ListingsFilter
	listings.getListingsFn = func(ctx context.Context, filter ListingsFilter) ([]models.Listing, error) {
		gotFilter = filter
		return nil, nil
	}
	bookings.isAvailableFn = func(ctx context.Context, listingID uint, checkIn, checkOut time.Time) (bool, error) {
		return true, nil
	}

	criteria := searchCriteria(t)
	criteria.NumOfBeds = 3
	criteria.Page = 2
	criteria.SortBy = "COST_DESC"

	if _, err := c.SearchListings(context.Background(), criteria); err != nil {
		t.Fatalf("SearchListings: %v", err)
	}

	if gotFilter.NumOfBeds != 3 || gotFilter.Page != 2 || gotFilter.Limit != 10 || gotFilter.SortBy != "COST_DESC" {
		t.Fatalf("filter not passed through: %+v", gotFilter)
	}
}
