package service

import (
	"context"

	"skillswap/internal/models"
	"skillswap/internal/repository"
)

type SkillService struct {
	skillRepo repository.SkillRepository
}

type CreateSkillInput struct {
	UserID      uint
	Name        string
	Description string
	Category    string
	Level       models.SkillLevel
	Type        models.SkillType
	Tags        []string
}

type UpdateSkillInput struct {
	SkillID     uint
	UserID      uint
	Name        string
	Description string
	Category    string
	Level       models.SkillLevel
	Tags        []string
	IsActive    *bool
}

func NewSkillService(skillRepo repository.SkillRepository) *SkillService {
	return &SkillService{skillRepo: skillRepo}
}

func (s *SkillService) CreateSkill(ctx context.Context, in CreateSkillInput) (*models.Skill, error) {
	if in.Name == "" {
		return nil, models.NewValidationError("Skill name is required")
	}
	if !models.ValidSkillType(in.Type) {
		return nil, models.NewValidationError("Skill type must be 'offered' or 'wanted'")
	}
	if in.Level != "" && !models.ValidSkillLevel(in.Level) {
		return nil, models.NewValidationError("Invalid skill level")
	}
	if in.Level == "" {
		in.Level = models.SkillLevelBeginner
	}

	skill := &models.Skill{
		UserID:      in.UserID,
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Level:       in.Level,
		Type:        in.Type,
		Tags:        in.Tags,
		IsActive:    true,
		IsApproved:  true,
	}
	if err := s.skillRepo.Create(ctx, skill); err != nil {
		return nil, err
	}
	return skill, nil
}

func (s *SkillService) GetSkillsByUser(ctx context.Context, userID uint) ([]models.Skill, error) {
	return s.skillRepo.GetByUser(ctx, userID)
}

func (s *SkillService) GetSkillsByType(ctx context.Context, skillType models.SkillType) ([]models.Skill, error) {
	if !models.ValidSkillType(skillType) {
		return nil, models.NewValidationError("Skill type must be 'offered' or 'wanted'")
	}
	return s.skillRepo.GetByType(ctx, skillType)
}

func (s *SkillService) SearchSkills(ctx context.Context, query, category string) ([]models.Skill, error) {
	return s.skillRepo.Search(ctx, query, category)
}

// UpdateSkill applies a partial update. Only the owner may change a skill.
func (s *SkillService) UpdateSkill(ctx context.Context, in UpdateSkillInput) (*models.Skill, error) {
	skill, err := s.skillRepo.GetByID(ctx, in.SkillID)
	if err != nil {
		return nil, err
	}
	if skill.UserID != in.UserID {
		return nil, models.NewForbiddenError("You can only update your own skills")
	}

	if in.Name != "" {
		skill.Name = in.Name
	}
	if in.Description != "" {
		skill.Description = in.Description
	}
	if in.Category != "" {
		skill.Category = in.Category
	}
	if in.Level != "" {
		if !models.ValidSkillLevel(in.Level) {
			return nil, models.NewValidationError("Invalid skill level")
		}
		skill.Level = in.Level
	}
	if in.Tags != nil {
		skill.Tags = in.Tags
	}
	if in.IsActive != nil {
		skill.IsActive = *in.IsActive
	}

	if err := s.skillRepo.Update(ctx, skill); err != nil {
		return nil, err
	}
	return skill, nil
}

// DeleteSkill removes a skill. Only the owner may delete it.
func (s *SkillService) DeleteSkill(ctx context.Context, skillID, userID uint) error {
	skill, err := s.skillRepo.GetByID(ctx, skillID)
	if err != nil {
		return err
	}
	if skill.UserID != userID {
		return models.NewForbiddenError("You can only delete your own skills")
	}
	return s.skillRepo.Delete(ctx, skillID)
}
