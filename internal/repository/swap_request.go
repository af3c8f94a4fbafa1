package repository

import (
	"context"
	"errors"

	"skillswap/internal/models"

	"gorm.io/gorm"
)

// SwapRequestRepository defines persistence operations for swap requests.
type SwapRequestRepository interface {
	Create(ctx context.Context, req *models.SwapRequest) error
	GetByID(ctx context.Context, id uint) (*models.SwapRequest, error)
	GetByUser(ctx context.Context, userID uint) ([]models.SwapRequest, error)
	UpdateStatus(ctx context.Context, id uint, status models.SwapRequestStatus) error
	Delete(ctx context.Context, id uint) error
}

type swapRequestRepository struct {
	db *gorm.DB
}

// NewSwapRequestRepository returns a new SwapRequestRepository implementation.
func NewSwapRequestRepository(db *gorm.DB) SwapRequestRepository {
	return &swapRequestRepository{db: db}
}

func (r *swapRequestRepository) Create(ctx context.Context, req *models.SwapRequest) error {
	if err := r.db.WithContext(ctx).Create(req).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *swapRequestRepository) GetByID(ctx context.Context, id uint) (*models.SwapRequest, error) {
	var req models.SwapRequest
	if err := r.db.WithContext(ctx).
		Preload("Requester").
		Preload("Provider").
		Preload("OfferedSkill").
		Preload("RequestedSkill").
		First(&req, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("SwapRequest", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &req, nil
}

// GetByUser returns swaps where the user is either side, newest first.
func (r *swapRequestRepository) GetByUser(ctx context.Context, userID uint) ([]models.SwapRequest, error) {
	var reqs []models.SwapRequest
	if err := r.db.WithContext(ctx).
		Preload("Requester").
		Preload("Provider").
		Preload("OfferedSkill").
		Preload("RequestedSkill").
		Where("requester_id = ? OR provider_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&reqs).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return reqs, nil
}

func (r *swapRequestRepository) UpdateStatus(ctx context.Context, id uint, status models.SwapRequestStatus) error {
	result := r.db.WithContext(ctx).
		Model(&models.SwapRequest{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("SwapRequest", id)
	}
	return nil
}

func (r *swapRequestRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.SwapRequest{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
