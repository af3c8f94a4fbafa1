package server

import (
	"skillswap/internal/models"
	"skillswap/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateRating handles POST /api/ratings
// @Summary Rate a swap partner
// @Description Rate the other participant of a swap from 1 to 5
// @Tags ratings
// @Accept json
// @Produce json
// @Param request body object{swap_request_id=int,rating=int,comment=string} true "Rating"
// @Success 201 {object} models.Rating
// @Failure 400 {object} object{error=string}
// @Failure 403 {object} object{error=string}
// @Router /ratings [post]
func (s *Server) CreateRating(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		SwapRequestID uint   `json:"swap_request_id"`
		Rating        int    `json:"rating"`
		Comment       string `json:"comment"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.SwapRequestID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Swap request ID is required"))
	}

	rating, err := s.ratingService.CreateRating(c.Context(), service.CreateRatingInput{
		RaterID:       userID,
		SwapRequestID: req.SwapRequestID,
		Rating:        req.Rating,
		Comment:       req.Comment,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	s.publishUserEvent(rating.RateeID, EventRatingReceived, map[string]interface{}{
		"rating_id":       rating.ID,
		"swap_request_id": rating.SwapRequestID,
		"rating":          rating.Rating,
	})

	return c.Status(fiber.StatusCreated).JSON(rating)
}
