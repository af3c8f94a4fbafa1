package service

import (
	"context"
	"testing"

	"skillswap/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkillService_CreateSkill(t *testing.T) {
	t.Parallel()

	t.Run("name required", func(t *testing.T) {
		t.Parallel()
		svc := NewSkillService(noopSkillRepo())
		_, err := svc.CreateSkill(context.Background(), CreateSkillInput{
			UserID: 1,
			Type:   models.SkillTypeOffered,
		})
		assertValidationError(t, err)
	})

	t.Run("invalid type rejected", func(t *testing.T) {
		t.Parallel()
		svc := NewSkillService(noopSkillRepo())
		_, err := svc.CreateSkill(context.Background(), CreateSkillInput{
			UserID: 1,
			Name:   "Guitar Lessons",
			Type:   models.SkillType("tradeable"),
		})
		assertValidationError(t, err)
	})

	t.Run("invalid level rejected", func(t *testing.T) {
		t.Parallel()
		svc := NewSkillService(noopSkillRepo())
		_, err := svc.CreateSkill(context.Background(), CreateSkillInput{
			UserID: 1,
			Name:   "Guitar Lessons",
			Type:   models.SkillTypeOffered,
			Level:  models.SkillLevel("wizard"),
		})
		assertValidationError(t, err)
	})

	t.Run("defaults level to beginner and marks active", func(t *testing.T) {
		t.Parallel()
		repo := noopSkillRepo()
		var created *models.Skill
		repo.createFn = func(_ context.Context, skill *models.Skill) error {
			created = skill
			return nil
		}
		svc := NewSkillService(repo)
		skill, err := svc.CreateSkill(context.Background(), CreateSkillInput{
			UserID: 1,
			Name:   "Guitar Lessons",
			Type:   models.SkillTypeOffered,
			Tags:   []string{"music", "acoustic"},
		})
		require.NoError(t, err)
		assert.Equal(t, models.SkillLevelBeginner, skill.Level)
		assert.True(t, skill.IsActive)
		assert.True(t, skill.IsApproved)
		require.NotNil(t, created)
		assert.Equal(t, []string{"music", "acoustic"}, []string(created.Tags))
	})
}

func TestSkillService_GetSkillsByType_InvalidType(t *testing.T) {
	t.Parallel()
	svc := NewSkillService(noopSkillRepo())
	_, err := svc.GetSkillsByType(context.Background(), models.SkillType("bogus"))
	assertValidationError(t, err)
}

func TestSkillService_UpdateSkill_Ownership(t *testing.T) {
	t.Parallel()

	t.Run("owner updates skill", func(t *testing.T) {
		t.Parallel()
		repo := noopSkillRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.Skill, error) {
			return &models.Skill{ID: id, UserID: 1, Name: "Guitar"}, nil
		}
		svc := NewSkillService(repo)
		skill, err := svc.UpdateSkill(context.Background(), UpdateSkillInput{
			SkillID: 10,
			UserID:  1,
			Name:    "Guitar Lessons",
		})
		require.NoError(t, err)
		assert.Equal(t, "Guitar Lessons", skill.Name)
	})

	t.Run("non-owner rejected", func(t *testing.T) {
		t.Parallel()
		repo := noopSkillRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.Skill, error) {
			return &models.Skill{ID: id, UserID: 2}, nil
		}
		svc := NewSkillService(repo)
		_, err := svc.UpdateSkill(context.Background(), UpdateSkillInput{
			SkillID: 10,
			UserID:  1,
			Name:    "Hijacked",
		})
		assertForbiddenError(t, err)
	})
}

func TestSkillService_DeleteSkill_Ownership(t *testing.T) {
	t.Parallel()

	t.Run("owner deletes skill", func(t *testing.T) {
		t.Parallel()
		repo := noopSkillRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.Skill, error) {
			return &models.Skill{ID: id, UserID: 1}, nil
		}
		deleted := false
		repo.deleteFn = func(context.Context, uint) error {
			deleted = true
			return nil
		}
		svc := NewSkillService(repo)
		require.NoError(t, svc.DeleteSkill(context.Background(), 10, 1))
		assert.True(t, deleted)
	})

	t.Run("non-owner rejected", func(t *testing.T) {
		t.Parallel()
		repo := noopSkillRepo()
		repo.getByIDFn = func(_ context.Context, id uint) (*models.Skill, error) {
			return &models.Skill{ID: id, UserID: 2}, nil
		}
		svc := NewSkillService(repo)
		assertForbiddenError(t, svc.DeleteSkill(context.Background(), 10, 1))
	})
}
