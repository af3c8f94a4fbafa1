package server

import (
	"strings"

	"skillswap/internal/models"
	"skillswap/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateSkill handles POST /api/skills
// @Summary Create skill
// @Description Create a skill the user offers or wants to learn
// @Tags skills
// @Accept json
// @Produce json
// @Param request body object{name=string,description=string,category=string,level=string,type=string,tags=[]string} true "Skill fields"
// @Success 201 {object} models.Skill
// @Failure 400 {object} object{error=string}
// @Router /skills [post]
func (s *Server) CreateSkill(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		Name        string   `json:"name"`
		Description string   `json:"description"`
		Category    string   `json:"category"`
		Level       string   `json:"level"`
		Type        string   `json:"type"`
		Tags        []string `json:"tags"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	skill, err := s.skillService.CreateSkill(c.Context(), service.CreateSkillInput{
		UserID:      userID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Category:    req.Category,
		Level:       models.SkillLevel(req.Level),
		Type:        models.SkillType(req.Type),
		Tags:        req.Tags,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(skill)
}

// SearchSkills handles GET /api/skills/search?q=...&category=...
// @Summary Search skills
// @Description Search active skills by name or description, best rated owners first
// @Tags skills
// @Produce json
// @Param q query string false "Search query"
// @Param category query string false "Category filter"
// @Success 200 {array} models.Skill
// @Router /skills/search [get]
func (s *Server) SearchSkills(c *fiber.Ctx) error {
	query := strings.TrimSpace(c.Query("q"))
	category := strings.TrimSpace(c.Query("category"))

	skills, err := s.skillService.SearchSkills(c.Context(), query, category)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(skills)
}

// GetUserSkills handles GET /api/skills/user/:userId
// @Summary Get a user's skills
// @Description List a user's active skills, newest first
// @Tags skills
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {array} models.Skill
// @Router /skills/user/{userId} [get]
func (s *Server) GetUserSkills(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	skills, err := s.skillService.GetSkillsByUser(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(skills)
}

// GetSkillsByType handles GET /api/skills/type/:type
// @Summary Get skills by type
// @Description List active approved skills that are offered or wanted
// @Tags skills
// @Produce json
// @Param type path string true "Skill type (offered or wanted)"
// @Success 200 {array} models.Skill
// @Failure 400 {object} object{error=string}
// @Router /skills/type/{type} [get]
func (s *Server) GetSkillsByType(c *fiber.Ctx) error {
	skillType := models.SkillType(c.Params("type"))

	skills, err := s.skillService.GetSkillsByType(c.Context(), skillType)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(skills)
}

// UpdateSkill handles PUT /api/skills/:id
// @Summary Update skill
// @Description Update a skill owned by the authenticated user
// @Tags skills
// @Accept json
// @Produce json
// @Param id path int true "Skill ID"
// @Param request body object{name=string,description=string,category=string,level=string,tags=[]string,is_active=boolean} true "Skill fields"
// @Success 200 {object} models.Skill
// @Failure 403 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /skills/{id} [put]
func (s *Server) UpdateSkill(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	skillID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Name        string   `json:"name"`
		Description string   `json:"description"`
		Category    string   `json:"category"`
		Level       string   `json:"level"`
		Tags        []string `json:"tags"`
		IsActive    *bool    `json:"is_active"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	skill, err := s.skillService.UpdateSkill(c.Context(), service.UpdateSkillInput{
		SkillID:     skillID,
		UserID:      userID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Category:    req.Category,
		Level:       models.SkillLevel(req.Level),
		Tags:        req.Tags,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(skill)
}

// DeleteSkill handles DELETE /api/skills/:id
// @Summary Delete skill
// @Description Delete a skill owned by the authenticated user
// @Tags skills
// @Produce json
// @Param id path int true "Skill ID"
// @Success 200 {object} object{message=string}
// @Failure 403 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /skills/{id} [delete]
func (s *Server) DeleteSkill(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	skillID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.skillService.DeleteSkill(c.Context(), skillID, userID); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Skill deleted",
	})
}
