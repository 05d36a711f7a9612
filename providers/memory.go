package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/parkerholladay/odyssey-voyage-II-server/core"
	"github.com/parkerholladay/odyssey-voyage-II-server/models"

	"gorm.io/datatypes"
)

// In-memory implementations of every provider boundary, for tests and local
// hacking without postgres. Data is keyed by id; all maps share one lock
// since callers are request-scoped.

type Memory struct {
	mu        sync.RWMutex
	nextID    uint
	users     map[uint]*models.User
	listings  map[uint]*models.Listing
	bookings  map[uint]*models.Booking
	reviews   map[uint]*models.Review
	wallets   map[uint]*models.Wallet // keyed by user id
	amenities []models.Amenity
}

func NewMemory() *Memory {
	return &Memory{
		nextID:   1,
		users:    make(map[uint]*models.User),
		listings: make(map[uint]*models.Listing),
		bookings: make(map[uint]*models.Booking),
		reviews:  make(map[uint]*models.Review),
		wallets:  make(map[uint]*models.Wallet),
	}
}

func (m *Memory) id() uint {
	id := m.nextID
	m.nextID++
	return id
}

func (m *Memory) AddUser(user models.User) models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	if user.ID == 0 {
		user.ID = m.id()
	}
	m.users[user.ID] = &user
	m.wallets[user.ID] = &models.Wallet{UserID: user.ID}
	return user
}

func (m *Memory) AddListing(listing models.Listing) models.Listing {
	m.mu.Lock()
	defer m.mu.Unlock()
	if listing.ID == 0 {
		listing.ID = m.id()
	}
	m.listings[listing.ID] = &listing
	return listing
}

func (m *Memory) AddBooking(booking models.Booking) models.Booking {
	m.mu.Lock()
	defer m.mu.Unlock()
	if booking.ID == 0 {
		booking.ID = m.id()
	}
	m.bookings[booking.ID] = &booking
	return booking
}

func (m *Memory) AddAmenity(amenity models.Amenity) models.Amenity {
	m.mu.Lock()
	defer m.mu.Unlock()
	if amenity.ID == 0 {
		amenity.ID = m.id()
	}
	m.amenities = append(m.amenities, amenity)
	return amenity
}

func (m *Memory) SetWalletAmount(userID uint, amount float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.wallets[userID] = &models.Wallet{UserID: userID, Amount: amount}
}

// --- ListingsProvider ---

func (m *Memory) GetListings(ctx context.Context, filter core.ListingsFilter) ([]models.Listing, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListingsLimit
	}
	page := filter.Page
	if page <= 0 {
		page = defaultListingsPage
	}

	var all []models.Listing
	for _, l := range m.listings {
		if filter.NumOfBeds > 0 && l.NumOfBeds < filter.NumOfBeds {
			continue
		}
		all = append(all, *l)
	}

	descending := filter.SortBy == "COST_DESC"
	for i := 0; i < len(all); i++ {
		for j := i + 1; j < len(all); j++ {
			less := all[j].CostPerNight < all[i].CostPerNight ||
				(all[j].CostPerNight == all[i].CostPerNight && all[j].ID < all[i].ID)
			if descending {
				less = all[j].CostPerNight > all[i].CostPerNight ||
					(all[j].CostPerNight == all[i].CostPerNight && all[j].ID < all[i].ID)
			}
			if less {
				all[i], all[j] = all[j], all[i]
			}
		}
	}

	start := (page - 1) * limit
	if start >= len(all) {
		return nil, nil
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], nil
}

func (m *Memory) GetListing(ctx context.Context, id uint) (*models.Listing, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	listing, ok := m.listings[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	cp := *listing
	return &cp, nil
}

func (m *Memory) GetListingsForHost(ctx context.Context, hostID uint) ([]models.Listing, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []models.Listing
	for _, l := range m.listings {
		if l.HostID == hostID {
			result = append(result, *l)
		}
	}
	return result, nil
}

func (m *Memory) GetTotalCost(ctx context.Context, id uint, checkIn, checkOut time.Time) (float64, error) {
	nights := NightsBetween(checkIn, checkOut)
	if nights <= 0 {
		return 0, fmt.Errorf("check-out date must be after check-in date")
	}
	listing, err := m.GetListing(ctx, id)
	if err != nil {
		return 0, err
	}
	return listing.CostPerNight * float64(nights), nil
}

func (m *Memory) CreateListing(ctx context.Context, fields core.ListingFields) (*models.Listing, error) {
	photos := fields.Photos
	if photos == nil {
		photos = []string{}
	}
	photosJSON, _ := json.Marshal(photos)

	listing := m.AddListing(models.Listing{
		HostID:         fields.HostID,
		Title:          fields.Title,
		Description:    fields.Description,
		PhotoThumbnail: fields.PhotoThumbnail,
		Photos:         datatypes.JSON(photosJSON),
		NumOfBeds:      fields.NumOfBeds,
		CostPerNight:   fields.CostPerNight,
		LocationType:   fields.LocationType,
		Amenities:      m.amenitiesByID(fields.AmenityIDs),
	})
	return &listing, nil
}

func (m *Memory) amenitiesByID(ids []uint) []models.Amenity {
	if len(ids) == 0 {
		return nil
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var matched []models.Amenity
	for _, id := range ids {
		for _, a := range m.amenities {
			if a.ID == id {
				matched = append(matched, a)
			}
		}
	}
	return matched
}

func (m *Memory) UpdateListing(ctx context.Context, id uint, fields core.ListingUpdate) (*models.Listing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	listing, ok := m.listings[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	if fields.Title != nil {
		listing.Title = *fields.Title
	}
	if fields.Description != nil {
		listing.Description = *fields.Description
	}
	if fields.PhotoThumbnail != nil {
		listing.PhotoThumbnail = *fields.PhotoThumbnail
	}
	if fields.Photos != nil {
		photosJSON, _ := json.Marshal(fields.Photos)
		listing.Photos = datatypes.JSON(photosJSON)
	}
	if fields.NumOfBeds != nil {
		listing.NumOfBeds = *fields.NumOfBeds
	}
	if fields.CostPerNight != nil {
		listing.CostPerNight = *fields.CostPerNight
	}
	if fields.LocationType != nil {
		listing.LocationType = *fields.LocationType
	}
	if fields.AmenityIDs != nil {
		var matched []models.Amenity
		for _, id := range fields.AmenityIDs {
			for _, a := range m.amenities {
				if a.ID == id {
					matched = append(matched, a)
				}
			}
		}
		listing.Amenities = matched
	}
	cp := *listing
	return &cp, nil
}

func (m *Memory) GetFeaturedListings(ctx context.Context, limit int) ([]models.Listing, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []models.Listing
	for _, l := range m.listings {
		if l.IsFeatured && len(result) < limit {
			result = append(result, *l)
		}
	}
	return result, nil
}

func (m *Memory) GetAllAmenities(ctx context.Context) ([]models.Amenity, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.Amenity(nil), m.amenities...), nil
}

// --- BookingsProvider ---

func (m *Memory) IsListingAvailable(ctx context.Context, listingID uint, checkIn, checkOut time.Time) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, b := range m.bookings {
		if b.ListingID != listingID || b.Cancelled {
			continue
		}
		if b.CheckInDate.Before(checkOut) && b.CheckOutDate.After(checkIn) {
			return false, nil
		}
	}
	return true, nil
}

func (m *Memory) GetBookingsForUser(ctx context.Context, userID uint, status string) ([]models.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	now := time.Now()
	var result []models.Booking
	for _, b := range m.bookings {
		if b.GuestID != userID {
			continue
		}
		if status != "" && b.StatusAt(now) != status {
			continue
		}
		result = append(result, *b)
	}
	return result, nil
}

func (m *Memory) GetBookingsForListing(ctx context.Context, listingID uint, status string) ([]models.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	now := time.Now()
	var result []models.Booking
	for _, b := range m.bookings {
		if b.ListingID != listingID {
			continue
		}
		if status != "" && b.StatusAt(now) != status {
			continue
		}
		result = append(result, *b)
	}
	return result, nil
}

func (m *Memory) CreateBooking(ctx context.Context, fields core.BookingFields) (*models.Booking, error) {
	booking := m.AddBooking(models.Booking{
		ListingID:    fields.ListingID,
		GuestID:      fields.GuestID,
		CheckInDate:  fields.CheckInDate,
		CheckOutDate: fields.CheckOutDate,
		TotalCost:    fields.TotalCost,
	})
	return &booking, nil
}

func (m *Memory) GetBooking(ctx context.Context, id uint) (*models.Booking, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	booking, ok := m.bookings[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	cp := *booking
	return &cp, nil
}

func (m *Memory) GetGuestIDForBooking(ctx context.Context, id uint) (uint, error) {
	booking, err := m.GetBooking(ctx, id)
	if err != nil {
		return 0, err
	}
	return booking.GuestID, nil
}

func (m *Memory) GetListingIDForBooking(ctx context.Context, id uint) (uint, error) {
	booking, err := m.GetBooking(ctx, id)
	if err != nil {
		return 0, err
	}
	return booking.ListingID, nil
}

func (m *Memory) GetCurrentlyBookedDateRangesForListing(ctx context.Context, listingID uint) ([]models.DateRange, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var ranges []models.DateRange
	for _, b := range m.bookings {
		if b.ListingID == listingID && !b.Cancelled {
			ranges = append(ranges, models.DateRange{StartDate: b.CheckInDate, EndDate: b.CheckOutDate})
		}
	}
	return ranges, nil
}

func (m *Memory) HumanReadableDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// --- PaymentsProvider ---

func (m *Memory) SubtractFunds(ctx context.Context, userID uint, amount float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	wallet, ok := m.wallets[userID]
	if !ok {
		return core.ErrNotFound
	}
	if wallet.Amount < amount {
		return core.ErrInsufficientFunds
	}
	wallet.Amount -= amount
	return nil
}

func (m *Memory) AddFunds(ctx context.Context, userID uint, amount float64) (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	wallet, ok := m.wallets[userID]
	if !ok {
		return 0, core.ErrNotFound
	}
	wallet.Amount += amount
	return wallet.Amount, nil
}

func (m *Memory) GetUserWalletAmount(ctx context.Context, userID uint) (float64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	wallet, ok := m.wallets[userID]
	if !ok {
		return 0, core.ErrNotFound
	}
	return wallet.Amount, nil
}

// --- ReviewsProvider ---

func (m *Memory) createReview(targetType string, fields core.ReviewFields) (*models.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.reviews {
		if r.BookingID == fields.BookingID && r.TargetType == targetType {
			return nil, fmt.Errorf("a %s review already exists for this booking", targetType)
		}
	}
	review := &models.Review{
		BookingID:  fields.BookingID,
		TargetType: targetType,
		TargetID:   fields.TargetID,
		AuthorID:   fields.AuthorID,
		Rating:     fields.Rating,
		Text:       fields.Text,
	}
	review.ID = m.id()
	m.reviews[review.ID] = review
	cp := *review
	return &cp, nil
}

func (m *Memory) CreateReviewForGuest(ctx context.Context, fields core.ReviewFields) (*models.Review, error) {
	return m.createReview(models.ReviewTargetGuest, fields)
}

func (m *Memory) CreateReviewForHost(ctx context.Context, fields core.ReviewFields) (*models.Review, error) {
	return m.createReview(models.ReviewTargetHost, fields)
}

func (m *Memory) CreateReviewForListing(ctx context.Context, fields core.ReviewFields) (*models.Review, error) {
	return m.createReview(models.ReviewTargetListing, fields)
}

func (m *Memory) GetReviewForBooking(ctx context.Context, targetType string, bookingID uint) (*models.Review, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, r := range m.reviews {
		if r.BookingID == bookingID && r.TargetType == targetType {
			cp := *r
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *Memory) overallRating(targetType string, targetID uint) float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var total, count float64
	for _, r := range m.reviews {
		if r.TargetType == targetType && r.TargetID == targetID {
			total += float64(r.Rating)
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return total / count
}

func (m *Memory) GetOverallRatingForHost(ctx context.Context, hostID uint) (float64, error) {
	return m.overallRating(models.ReviewTargetHost, hostID), nil
}

func (m *Memory) GetOverallRatingForListing(ctx context.Context, listingID uint) (float64, error) {
	return m.overallRating(models.ReviewTargetListing, listingID), nil
}

func (m *Memory) GetReviewsForListing(ctx context.Context, listingID uint) ([]models.Review, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []models.Review
	for _, r := range m.reviews {
		if r.TargetType == models.ReviewTargetListing && r.TargetID == listingID {
			result = append(result, *r)
		}
	}
	return result, nil
}

// --- AccountsProvider ---

func (m *Memory) GetUser(ctx context.Context, id uint) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	user, ok := m.users[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	cp := *user
	return &cp, nil
}

func (m *Memory) UpdateUser(ctx context.Context, id uint, info core.ProfileInput) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return nil, core.ErrNotFound
	}
	if info.Name != nil {
		user.Name = *info.Name
	}
	if info.ProfileDescription != nil {
		user.ProfileDescription = *info.ProfileDescription
	}
	if info.ProfilePicture != nil {
		user.ProfilePicture = *info.ProfilePicture
	}
	cp := *user
	return &cp, nil
}
