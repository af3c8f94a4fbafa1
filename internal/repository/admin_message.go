package repository

import (
	"context"

	"skillswap/internal/cache"
	"skillswap/internal/models"
	"skillswap/internal/observability"

	"gorm.io/gorm"
)

// AdminMessageRepository defines persistence operations for admin messages.
type AdminMessageRepository interface {
	Create(ctx context.Context, msg *models.AdminMessage) error
	GetActive(ctx context.Context) ([]models.AdminMessage, error)
	Deactivate(ctx context.Context, id uint) error
}

type adminMessageRepository struct {
	db    *gorm.DB
	audit *observability.AuditLogger
}

// NewAdminMessageRepository returns a new AdminMessageRepository implementation.
func NewAdminMessageRepository(db *gorm.DB) AdminMessageRepository {
	return &adminMessageRepository{db: db, audit: observability.NewAuditLogger("admin_messages")}
}

func (r *adminMessageRepository) Create(ctx context.Context, msg *models.AdminMessage) error {
	if err := r.db.WithContext(ctx).Create(msg).Error; err != nil {
		r.audit.LogError(ctx, err, "create")
		return models.NewInternalError(err)
	}
	cache.InvalidateActiveAdminMessages(ctx)
	r.audit.LogCreate(ctx, map[string]interface{}{
		"message_id": msg.ID,
		"admin_id":   msg.AdminID,
		"type":       string(msg.Type),
	})
	return nil
}

func (r *adminMessageRepository) GetActive(ctx context.Context) ([]models.AdminMessage, error) {
	var msgs []models.AdminMessage

	err := cache.Aside(ctx, cache.AdminMessagesActiveKey, &msgs, cache.AdminMessagesTTL, func() error {
		if err := r.db.WithContext(ctx).
			Where("is_active = ?", true).
			Order("created_at DESC").
			Find(&msgs).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return msgs, nil
}

func (r *adminMessageRepository) Deactivate(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).
		Model(&models.AdminMessage{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("AdminMessage", id)
	}
	cache.InvalidateActiveAdminMessages(ctx)
	r.audit.LogUpdate(ctx, map[string]interface{}{
		"message_id": id,
		"is_active":  false,
	})
	return nil
}
