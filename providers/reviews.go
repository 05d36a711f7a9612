package providers

import (
	"context"
	"errors"
	"fmt"

	"github.com/parkerholladay/odyssey-voyage-II-server/core"
	"github.com/parkerholladay/odyssey-voyage-II-server/models"

	"gorm.io/gorm"
)

type ReviewsDB struct {
	db *gorm.DB
}

func NewReviewsDB(db *gorm.DB) *ReviewsDB {
	return &ReviewsDB{db: db}
}

// createReview enforces one review per (booking, target type).
func (r *ReviewsDB) createReview(ctx context.Context, targetType string, fields core.ReviewFields) (*models.Review, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Review{}).
		Where("booking_id = ? AND target_type = ?", fields.BookingID, targetType).
		Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fmt.Errorf("a %s review already exists for this booking", targetType)
	}

	review := models.Review{
		BookingID:  fields.BookingID,
		TargetType: targetType,
		TargetID:   fields.TargetID,
		AuthorID:   fields.AuthorID,
		Rating:     fields.Rating,
		Text:       fields.Text,
	}
	if err := r.db.WithContext(ctx).Create(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *ReviewsDB) CreateReviewForGuest(ctx context.Context, fields core.ReviewFields) (*models.Review, error) {
	return r.createReview(ctx, models.ReviewTargetGuest, fields)
}

func (r *ReviewsDB) CreateReviewForHost(ctx context.Context, fields core.ReviewFields) (*models.Review, error) {
	return r.createReview(ctx, models.ReviewTargetHost, fields)
}

func (r *ReviewsDB) CreateReviewForListing(ctx context.Context, fields core.ReviewFields) (*models.Review, error) {
	return r.createReview(ctx, models.ReviewTargetListing, fields)
}

func (r *ReviewsDB) GetReviewForBooking(ctx context.Context, targetType string, bookingID uint) (*models.Review, error) {
	var review models.Review
	err := r.db.WithContext(ctx).
		Where("booking_id = ? AND target_type = ?", bookingID, targetType).
		First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

func (r *ReviewsDB) overallRating(ctx context.Context, targetType string, targetID uint) (float64, error) {
	var avg *float64
	err := r.db.WithContext(ctx).Model(&models.Review{}).
		Select("AVG(rating)").
		Where("target_type = ? AND target_id = ?", targetType, targetID).
		Scan(&avg).Error
	if err != nil {
		return 0, err
	}
	if avg == nil {
		return 0, nil
	}
	return *avg, nil
}

func (r *ReviewsDB) GetOverallRatingForHost(ctx context.Context, hostID uint) (float64, error) {
	return r.overallRating(ctx, models.ReviewTargetHost, hostID)
}

func (r *ReviewsDB) GetOverallRatingForListing(ctx context.Context, listingID uint) (float64, error) {
	return r.overallRating(ctx, models.ReviewTargetListing, listingID)
}

func (r *ReviewsDB) GetReviewsForListing(ctx context.Context, listingID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.WithContext(ctx).
		Where("target_type = ? AND target_id = ?", models.ReviewTargetListing, listingID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}
