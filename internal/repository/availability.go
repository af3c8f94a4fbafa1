package repository

import (
	"context"
	"errors"

	"skillswap/internal/cache"
	"skillswap/internal/models"

	"gorm.io/gorm"
)

// AvailabilityRepository defines persistence operations for availability slots.
type AvailabilityRepository interface {
	Upsert(ctx context.Context, slot *models.Availability) error
	GetByUser(ctx context.Context, userID uint) ([]models.Availability, error)
}

type availabilityRepository struct {
	db *gorm.DB
}

// NewAvailabilityRepository returns a new AvailabilityRepository implementation.
func NewAvailabilityRepository(db *gorm.DB) AvailabilityRepository {
	return &availabilityRepository{db: db}
}

// Upsert updates the slot matching (user, day, time) or inserts a new one.
func (r *availabilityRepository) Upsert(ctx context.Context, slot *models.Availability) error {
	var existing models.Availability
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND day_of_week = ? AND time_slot = ?", slot.UserID, slot.DayOfWeek, slot.TimeSlot).
		First(&existing).Error

	switch {
	case err == nil:
		existing.IsAvailable = slot.IsAvailable
		if err := r.db.WithContext(ctx).Save(&existing).Error; err != nil {
			return models.NewInternalError(err)
		}
		*slot = existing
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := r.db.WithContext(ctx).Create(slot).Error; err != nil {
			return models.NewInternalError(err)
		}
	default:
		return models.NewInternalError(err)
	}

	cache.InvalidateAvailability(ctx, slot.UserID)
	return nil
}

func (r *availabilityRepository) GetByUser(ctx context.Context, userID uint) ([]models.Availability, error) {
	var slots []models.Availability
	key := cache.AvailabilityKey(userID)

	err := cache.Aside(ctx, key, &slots, cache.AvailabilityTTL, func() error {
		if err := r.db.WithContext(ctx).
			Where("user_id = ?", userID).
			Order("id ASC").
			Find(&slots).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return slots, nil
}
