package repository

import (
	"context"

	"skillswap/internal/cache"
	"skillswap/internal/models"

	"gorm.io/gorm"
)

// RatingAggregate holds the recomputed rating stats for a user.
type RatingAggregate struct {
	Average float64
	Count   int64
}

// RatingRepository defines persistence operations for ratings.
type RatingRepository interface {
	Create(ctx context.Context, rating *models.Rating) error
	GetByRatee(ctx context.Context, rateeID uint) ([]models.Rating, error)
	AggregateForRatee(ctx context.Context, rateeID uint) (*RatingAggregate, error)
	UpdateUserAggregate(ctx context.Context, rateeID uint, agg *RatingAggregate) error
}

type ratingRepository struct {
	db *gorm.DB
}

// NewRatingRepository returns a new RatingRepository implementation.
func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) Create(ctx context.Context, rating *models.Rating) error {
	if err := r.db.WithContext(ctx).Create(rating).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *ratingRepository) GetByRatee(ctx context.Context, rateeID uint) ([]models.Rating, error) {
	var ratings []models.Rating
	if err := r.db.WithContext(ctx).
		Preload("Rater").
		Where("ratee_id = ?", rateeID).
		Order("created_at DESC").
		Find(&ratings).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return ratings, nil
}

// AggregateForRatee rescans every rating for the user. The full rescan keeps
// the stored aggregate self-healing after manual data fixes.
func (r *ratingRepository) AggregateForRatee(ctx context.Context, rateeID uint) (*RatingAggregate, error) {
	var agg RatingAggregate
	if err := r.db.WithContext(ctx).
		Model(&models.Rating{}).
		Select("COALESCE(AVG(rating), 0) AS average, COUNT(*) AS count").
		Where("ratee_id = ?", rateeID).
		Scan(&agg).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return &agg, nil
}

// UpdateUserAggregate stores the aggregate on the user row. No-op when the
// user has no ratings yet.
func (r *ratingRepository) UpdateUserAggregate(ctx context.Context, rateeID uint, agg *RatingAggregate) error {
	if agg.Count == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", rateeID).
		Updates(map[string]interface{}{
			"rating":        agg.Average,
			"total_ratings": agg.Count,
		}).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateUser(ctx, rateeID)
	return nil
}
