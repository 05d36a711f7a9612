// Package providers holds the gorm-backed implementations of the core's
// provider boundaries. Each provider owns one entity family and its tables.
package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/parkerholladay/odyssey-voyage-II-server/core"
	"github.com/parkerholladay/odyssey-voyage-II-server/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	defaultListingsLimit = 5
	defaultListingsPage  = 1
)

type ListingsDB struct {
	db *gorm.DB
}

func NewListingsDB(db *gorm.DB) *ListingsDB {
	return &ListingsDB{db: db}
}

func (l *ListingsDB) GetListings(ctx context.Context, filter core.ListingsFilter) ([]models.Listing, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListingsLimit
	}
	page := filter.Page
	if page <= 0 {
		page = defaultListingsPage
	}

	q := l.db.WithContext(ctx).Model(&models.Listing{}).Preload("Amenities")
	if filter.NumOfBeds > 0 {
		q = q.Where("num_of_beds >= ?", filter.NumOfBeds)
	}

	switch filter.SortBy {
	case "COST_DESC":
		q = q.Order("cost_per_night DESC").Order("id ASC")
	default: // COST_ASC and unset
		q = q.Order("cost_per_night ASC").Order("id ASC")
	}

	var listings []models.Listing
	if err := q.Limit(limit).Offset((page - 1) * limit).Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}

func (l *ListingsDB) GetListing(ctx context.Context, id uint) (*models.Listing, error) {
	var listing models.Listing
	err := l.db.WithContext(ctx).Preload("Amenities").First(&listing, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, core.ErrNotFound
		}
		return nil, err
	}
	return &listing, nil
}

func (l *ListingsDB) GetListingsForHost(ctx context.Context, hostID uint) ([]models.Listing, error) {
	var listings []models.Listing
	err := l.db.WithContext(ctx).Preload("Amenities").
		Where("host_id = ?", hostID).
		Order("created_at DESC").
		Find(&listings).Error
	if err != nil {
		return nil, err
	}
	return listings, nil
}

// GetTotalCost prices a stay at nights x nightly cost. The result is what a
// booking freezes at creation time.
func (l *ListingsDB) GetTotalCost(ctx context.Context, id uint, checkIn, checkOut time.Time) (float64, error) {
	nights := NightsBetween(checkIn, checkOut)
	if nights <= 0 {
		return 0, fmt.Errorf("check-out date must be after check-in date")
	}

	listing, err := l.GetListing(ctx, id)
	if err != nil {
		return 0, err
	}
	return listing.CostPerNight * float64(nights), nil
}

// NightsBetween counts whole nights between two dates.
func NightsBetween(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn).Hours() / 24)
}

func (l *ListingsDB) CreateListing(ctx context.Context, fields core.ListingFields) (*models.Listing, error) {
	photos := fields.Photos
	if photos == nil {
		photos = []string{}
	}
	photosJSON, _ := json.Marshal(photos)

	listing := models.Listing{
		HostID:         fields.HostID,
		Title:          fields.Title,
		Description:    fields.Description,
		PhotoThumbnail: fields.PhotoThumbnail,
		Photos:         datatypes.JSON(photosJSON),
		NumOfBeds:      fields.NumOfBeds,
		CostPerNight:   fields.CostPerNight,
		LocationType:   fields.LocationType,
	}

	if len(fields.AmenityIDs) > 0 {
		var amenities []models.Amenity
		if err := l.db.WithContext(ctx).Find(&amenities, fields.AmenityIDs).Error; err != nil {
			return nil, err
		}
		listing.Amenities = amenities
	}

	if err := l.db.WithContext(ctx).Create(&listing).Error; err != nil {
		return nil, err
	}
	return &listing, nil
}

func (l *ListingsDB) UpdateListing(ctx context.Context, id uint, fields core.ListingUpdate) (*models.Listing, error) {
	var listing models.Listing
	if err := l.db.WithContext(ctx).Preload("Amenities").First(&listing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, core.ErrNotFound
		}
		return nil, err
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

	if err := l.db.WithContext(ctx).Save(&listing).Error; err != nil {
		return nil, err
	}

	if fields.AmenityIDs != nil {
		var amenities []models.Amenity
		if err := l.db.WithContext(ctx).Find(&amenities, fields.AmenityIDs).Error; err != nil {
			return nil, err
		}
		if err := l.db.WithContext(ctx).Model(&listing).Association("Amenities").Replace(amenities); err != nil {
			return nil, err
		}
		listing.Amenities = amenities
	}

	return &listing, nil
}

func (l *ListingsDB) GetFeaturedListings(ctx context.Context, limit int) ([]models.Listing, error) {
	var listings []models.Listing
	err := l.db.WithContext(ctx).Preload("Amenities").
		Where("is_featured = ?", true).
		Order("id ASC").
		Limit(limit).
		Find(&listings).Error
	if err != nil {
		return nil, err
	}
	return listings, nil
}

func (l *ListingsDB) GetAllAmenities(ctx context.Context) ([]models.Amenity, error) {
	var amenities []models.Amenity
	err := l.db.WithContext(ctx).
		Order("category ASC").Order("name ASC").
		Find(&amenities).Error
	if err != nil {
		return nil, err
	}
	return amenities, nil
}
