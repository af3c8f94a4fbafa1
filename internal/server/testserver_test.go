package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"skillswap/internal/config"
	"skillswap/internal/models"
	"skillswap/internal/repository"
	"skillswap/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestServer builds a Server backed by an in-memory SQLite database.
// Redis is left nil; the cache layer degrades to direct DB reads.
func setupTestServer(t *testing.T) (*Server, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Skill{},
		&models.Availability{},
		&models.SwapRequest{},
		&models.Rating{},
		&models.AdminMessage{},
		&models.Report{},
	))

	userRepo := repository.NewUserRepository(db)
	skillRepo := repository.NewSkillRepository(db)
	availabilityRepo := repository.NewAvailabilityRepository(db)
	swapRepo := repository.NewSwapRequestRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	adminMessageRepo := repository.NewAdminMessageRepository(db)
	reportRepo := repository.NewReportRepository(db)

	s := &Server{
		config:           &config.Config{JWTSecret: "test-secret-key-12345678901234567890123456789012"},
		db:               db,
		userRepo:         userRepo,
		skillRepo:        skillRepo,
		availabilityRepo: availabilityRepo,
		swapRepo:         swapRepo,
		ratingRepo:       ratingRepo,
		adminMessageRepo: adminMessageRepo,
		reportRepo:       reportRepo,
	}
	s.userService = service.NewUserService(userRepo)
	s.skillService = service.NewSkillService(skillRepo)
	s.swapService = service.NewSwapService(swapRepo, skillRepo, userRepo)
	s.ratingService = service.NewRatingService(ratingRepo, swapRepo)

	return s, db
}

// jsonDecode decodes a response body into dest without closing it.
func jsonDecode(resp *http.Response, dest interface{}) error {
	return json.NewDecoder(resp.Body).Decode(dest)
}

// getAs performs a GET request against the test app.
func getAs(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// deleteReq performs a DELETE request against the test app.
func deleteReq(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodDelete, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func uitoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// createTestUser inserts a user with a bcrypt-hashed password.
func createTestUser(t *testing.T, db *gorm.DB, username string, opts ...func(*models.User)) *models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("Password1!"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: string(hashed),
		IsPublic: true,
	}
	for _, opt := range opts {
		opt(user)
	}
	// gorm skips zero-value fields with a default tag on create (and RETURNING
	// overwrites the struct with the stored default), so persist the flag explicitly.
	isPublic := user.IsPublic
	require.NoError(t, db.Create(user).Error)
	require.NoError(t, db.Model(user).Update("is_public", isPublic).Error)
	user.IsPublic = isPublic
	return user
}

// createTestSkill inserts an active, approved skill for the given user.
func createTestSkill(t *testing.T, db *gorm.DB, userID uint, name string, skillType models.SkillType) *models.Skill {
	t.Helper()

	skill := &models.Skill{
		UserID:     userID,
		Name:       name,
		Category:   "general",
		Level:      models.SkillLevelIntermediate,
		Type:       skillType,
		IsActive:   true,
		IsApproved: true,
	}
	require.NoError(t, db.Create(skill).Error)
	return skill
}
