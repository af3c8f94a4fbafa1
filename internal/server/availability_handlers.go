package server

import (
	"strings"

	"skillswap/internal/models"

	"github.com/gofiber/fiber/v2"
)

var validDaysOfWeek = map[string]bool{
	"monday":    true,
	"tuesday":   true,
	"wednesday": true,
	"thursday":  true,
	"friday":    true,
	"saturday":  true,
	"sunday":    true,
}

// SetAvailability handles POST /api/availability
// Upserts one weekly schedule cell: updates in place when the (day, time slot)
// pair already exists for the user, inserts otherwise.
// @Summary Set availability
// @Description Mark a weekly (day, time slot) cell as available or not
// @Tags availability
// @Accept json
// @Produce json
// @Param request body object{day_of_week=string,time_slot=string,is_available=boolean} true "Availability slot"
// @Success 200 {object} models.Availability
// @Failure 400 {object} object{error=string}
// @Router /availability [post]
func (s *Server) SetAvailability(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		DayOfWeek   string `json:"day_of_week"`
		TimeSlot    string `json:"time_slot"`
		IsAvailable *bool  `json:"is_available"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	day := strings.ToLower(strings.TrimSpace(req.DayOfWeek))
	if !validDaysOfWeek[day] {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid day of week"))
	}
	timeSlot := strings.TrimSpace(req.TimeSlot)
	if timeSlot == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Time slot is required"))
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	slot := &models.Availability{
		UserID:      userID,
		DayOfWeek:   day,
		TimeSlot:    timeSlot,
		IsAvailable: isAvailable,
	}
	if err := s.availabilityRepo.Upsert(c.Context(), slot); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(slot)
}

// GetUserAvailability handles GET /api/availability/:userId
// @Summary Get a user's availability
// @Description List a user's weekly availability slots
// @Tags availability
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {array} models.Availability
// @Router /availability/{userId} [get]
func (s *Server) GetUserAvailability(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	slots, err := s.availabilityRepo.GetByUser(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(slots)
}
