package server

import (
	"net/http"
	"testing"

	"skillswap/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMyProfile(t *testing.T) {
	t.Parallel()
	s, db := setupTestServer(t)
	user := createTestUser(t, db, "selfie")

	app := fiber.New()
	app.Get("/users/me", withUser(user.ID), s.GetMyProfile)

	resp := getAs(t, app, "/users/me")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "selfie", body["username"])
	assert.NotContains(t, body, "password", "password must never be serialized")
}

func TestUpdateProfile(t *testing.T) {
	t.Parallel()
	s, db := setupTestServer(t)
	user := createTestUser(t, db, "editor", func(u *models.User) {
		u.Bio = "original bio"
		u.Location = "Berlin"
	})

	app := fiber.New()
	app.Put("/users/profile", withUser(user.ID), s.UpdateProfile)

	t.Run("partial update leaves other fields alone", func(t *testing.T) {
		resp := putJSON(t, app, "/users/profile", fiber.Map{"location": "Lisbon"})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		assert.Equal(t, "Lisbon", body["location"])
		assert.Equal(t, "original bio", body["bio"])
	})

	t.Run("visibility toggle", func(t *testing.T) {
		resp := putJSON(t, app, "/users/profile", fiber.Map{"is_public": false})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp)
		assert.Equal(t, false, body["is_public"])
	})

	t.Run("overlong bio rejected", func(t *testing.T) {
		long := make([]byte, 501)
		for i := range long {
			long[i] = 'x'
		}
		resp := putJSON(t, app, "/users/profile", fiber.Map{"bio": string(long)})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		_ = resp.Body.Close()
	})
}

func TestGetUsersWithSkills_VisibilityFilters(t *testing.T) {
	t.Parallel()
	s, db := setupTestServer(t)

	visible := createTestUser(t, db, "visible", func(u *models.User) { u.Rating = 4.2 })
	createTestSkill(t, db, visible.ID, "Photography", models.SkillTypeOffered)

	private := createTestUser(t, db, "private", func(u *models.User) { u.IsPublic = false })
	createTestSkill(t, db, private.ID, "Welding", models.SkillTypeOffered)

	banned := createTestUser(t, db, "banned", func(u *models.User) { u.IsBanned = true })
	createTestSkill(t, db, banned.ID, "Spam", models.SkillTypeOffered)

	app := fiber.New()
	app.Get("/users/with-skills", withUser(visible.ID), s.GetUsersWithSkills)

	resp := getAs(t, app, "/users/with-skills")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer func() { _ = resp.Body.Close() }()

	var users []models.User
	require.NoError(t, jsonDecode(resp, &users))
	require.Len(t, users, 1, "private and banned users must be excluded")
	assert.Equal(t, "visible", users[0].Username)
	require.Len(t, users[0].Skills, 1)
	assert.Equal(t, "Photography", users[0].Skills[0].Name)
}

func TestGetUserProfile_Privacy(t *testing.T) {
	t.Parallel()
	s, db := setupTestServer(t)

	owner := createTestUser(t, db, "owner", func(u *models.User) { u.IsPublic = false })
	viewer := createTestUser(t, db, "viewer")
	admin := createTestUser(t, db, "admin", func(u *models.User) { u.IsAdmin = true })

	route := func(asUser uint) *fiber.App {
		app := fiber.New()
		app.Get("/users/:id", withUser(asUser), s.GetUserProfile)
		return app
	}

	t.Run("owner sees own private profile", func(t *testing.T) {
		resp := getAs(t, route(owner.ID), "/users/"+uitoa(owner.ID))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		_ = resp.Body.Close()
	})

	t.Run("stranger is rejected", func(t *testing.T) {
		resp := getAs(t, route(viewer.ID), "/users/"+uitoa(owner.ID))
		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		_ = resp.Body.Close()
	})

	t.Run("admin can view private profile", func(t *testing.T) {
		resp := getAs(t, route(admin.ID), "/users/"+uitoa(owner.ID))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		_ = resp.Body.Close()
	})

	t.Run("unknown user yields 404", func(t *testing.T) {
		resp := getAs(t, route(viewer.ID), "/users/99999")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		_ = resp.Body.Close()
	})
}
