package repository

import (
	"context"
	"errors"

	"skillswap/internal/database"
	"skillswap/internal/models"
	"skillswap/internal/observability"

	"gorm.io/gorm"
)

// SkillRepository defines persistence operations for skills.
type SkillRepository interface {
	Create(ctx context.Context, skill *models.Skill) error
	GetByID(ctx context.Context, id uint) (*models.Skill, error)
	GetByUser(ctx context.Context, userID uint) ([]models.Skill, error)
	GetByType(ctx context.Context, skillType models.SkillType) ([]models.Skill, error)
	Search(ctx context.Context, query, category string) ([]models.Skill, error)
	Update(ctx context.Context, skill *models.Skill) error
	Delete(ctx context.Context, id uint) error
}

type skillRepository struct {
	db      *gorm.DB
	metrics *observability.DatabaseMetrics
}

// NewSkillRepository returns a new SkillRepository implementation.
func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &skillRepository{
		db:      db,
		metrics: observability.NewDatabaseMetrics(db),
	}
}

func (r *skillRepository) Create(ctx context.Context, skill *models.Skill) error {
	if err := r.db.WithContext(ctx).Create(skill).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *skillRepository) GetByID(ctx context.Context, id uint) (*models.Skill, error) {
	var skill models.Skill
	if err := r.db.WithContext(ctx).First(&skill, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Skill", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &skill, nil
}

// GetByUser returns a user's active skills, newest first.
func (r *skillRepository) GetByUser(ctx context.Context, userID uint) ([]models.Skill, error) {
	var skills []models.Skill
	readDB := database.GetReadDB()
	if readDB == nil {
		readDB = r.db
	}
	if err := readDB.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at DESC").
		Find(&skills).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return skills, nil
}

// GetByType returns active, approved skills of the given type.
func (r *skillRepository) GetByType(ctx context.Context, skillType models.SkillType) ([]models.Skill, error) {
	defer r.metrics.TrackQuery("list_by_type", "skills")()

	var skills []models.Skill
	readDB := database.GetReadDB()
	if readDB == nil {
		readDB = r.db
	}
	if err := readDB.WithContext(ctx).
		Where("type = ? AND is_active = ? AND is_approved = ?", skillType, true, true).
		Order("created_at DESC").
		Find(&skills).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return skills, nil
}

// Search matches active, approved skills by name or description, optionally
// narrowed to an exact category. Results carry the owning user and are
// ordered by the owner's rating.
func (r *skillRepository) Search(ctx context.Context, query, category string) ([]models.Skill, error) {
	defer r.metrics.TrackQuery("search", "skills")()

	var skills []models.Skill
	readDB := database.GetReadDB()
	if readDB == nil {
		readDB = r.db
	}

	q := readDB.WithContext(ctx).
		Preload("User").
		Joins("INNER JOIN users ON users.id = skills.user_id").
		Where("skills.is_active = ? AND skills.is_approved = ?", true, true)

	if query != "" {
		pattern := "%" + query + "%"
		q = q.Where("skills.name ILIKE ? OR skills.description ILIKE ?", pattern, pattern)
	}
	if category != "" {
		q = q.Where("skills.category = ?", category)
	}

	if err := q.Order("users.rating DESC").Find(&skills).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return skills, nil
}

func (r *skillRepository) Update(ctx context.Context, skill *models.Skill) error {
	if err := r.db.WithContext(ctx).Save(skill).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *skillRepository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Skill{}, id).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
