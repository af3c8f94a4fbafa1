package server

import (
	"skillswap/internal/models"
	"skillswap/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/users/me
// @Summary Get own profile
// @Description Get the authenticated user's profile
// @Tags users
// @Produce json
// @Success 200 {object} models.User
// @Failure 404 {object} object{error=string}
// @Router /users/me [get]
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	user, err := s.userService.GetUserByID(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(user)
}

// UpdateProfile handles PUT /api/users/profile
// @Summary Update profile
// @Description Update the authenticated user's profile fields
// @Tags users
// @Accept json
// @Produce json
// @Param request body object{first_name=string,last_name=string,location=string,bio=string,profile_image_url=string,is_public=boolean} true "Profile fields"
// @Success 200 {object} models.User
// @Failure 400 {object} object{error=string}
// @Router /users/profile [put]
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		FirstName       string `json:"first_name"`
		LastName        string `json:"last_name"`
		Location        string `json:"location"`
		Bio             string `json:"bio"`
		ProfileImageURL string `json:"profile_image_url"`
		IsPublic        *bool  `json:"is_public"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(c.Context(), service.UpdateProfileInput{
		UserID:          userID,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Location:        req.Location,
		Bio:             req.Bio,
		ProfileImageURL: req.ProfileImageURL,
		IsPublic:        req.IsPublic,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(user)
}

// GetUsersWithSkills handles GET /api/users/with-skills
// @Summary Browse users
// @Description List public, non-banned users with their skills, best rated first
// @Tags users
// @Produce json
// @Success 200 {array} models.User
// @Router /users/with-skills [get]
func (s *Server) GetUsersWithSkills(c *fiber.Ctx) error {
	users, err := s.userService.GetUsersWithSkills(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(users)
}

// GetUserProfile handles GET /api/users/:id
// @Summary Get user profile
// @Description Get a user's profile. Private profiles are visible to the owner and admins only.
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.User
// @Failure 403 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /users/{id} [get]
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	requesterID := c.Locals("userID").(uint)

	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	user, err := s.userService.GetUserByID(c.Context(), targetID)
	if err != nil {
		return respondServiceError(c, err)
	}

	if !user.IsPublic && user.ID != requesterID {
		admin, adminErr := s.isAdmin(c, requesterID)
		if adminErr != nil {
			return models.RespondWithError(c, fiber.StatusInternalServerError, adminErr)
		}
		if !admin {
			return models.RespondWithError(c, fiber.StatusForbidden,
				models.NewForbiddenError("This profile is private"))
		}
	}

	return c.JSON(user)
}

// GetUserRatings handles GET /api/ratings/user/:userId
// @Summary Get ratings for a user
// @Description List ratings received by a user, newest first
// @Tags ratings
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {array} models.Rating
// @Router /ratings/user/{userId} [get]
func (s *Server) GetUserRatings(c *fiber.Ctx) error {
	targetID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	ratings, err := s.ratingService.GetRatingsForUser(c.Context(), targetID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(ratings)
}

