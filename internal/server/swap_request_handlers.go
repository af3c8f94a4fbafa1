package server

import (
	"skillswap/internal/models"
	"skillswap/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateSwapRequest handles POST /api/swap-requests
// @Summary Create swap request
// @Description Propose exchanging one of your skills for another user's skill
// @Tags swaps
// @Accept json
// @Produce json
// @Param request body object{provider_id=int,offered_skill_id=int,requested_skill_id=int,message=string,preferred_times=[]string} true "Swap request"
// @Success 201 {object} models.SwapRequest
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /swap-requests [post]
func (s *Server) CreateSwapRequest(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		ProviderID       uint     `json:"provider_id"`
		OfferedSkillID   uint     `json:"offered_skill_id"`
		RequestedSkillID uint     `json:"requested_skill_id"`
		Message          string   `json:"message"`
		PreferredTimes   []string `json:"preferred_times"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if req.ProviderID == 0 || req.OfferedSkillID == 0 || req.RequestedSkillID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Provider, offered skill, and requested skill are required"))
	}

	swap, err := s.swapService.CreateSwapRequest(c.Context(), service.CreateSwapRequestInput{
		RequesterID:      userID,
		ProviderID:       req.ProviderID,
		OfferedSkillID:   req.OfferedSkillID,
		RequestedSkillID: req.RequestedSkillID,
		Message:          req.Message,
		PreferredTimes:   req.PreferredTimes,
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	s.publishUserEvent(swap.ProviderID, EventSwapRequestCreated, map[string]interface{}{
		"swap_request_id": swap.ID,
		"requester":       userSummaryPtr(swap.Requester),
	})

	return c.Status(fiber.StatusCreated).JSON(swap)
}

// GetMySwapRequests handles GET /api/swap-requests/user
// @Summary List own swap requests
// @Description List swaps where the user is requester or provider, newest first
// @Tags swaps
// @Produce json
// @Success 200 {array} models.SwapRequest
// @Router /swap-requests/user [get]
func (s *Server) GetMySwapRequests(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	swaps, err := s.swapService.GetSwapRequestsForUser(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(swaps)
}

// GetSwapRequest handles GET /api/swap-requests/:id
// @Summary Get swap request
// @Description Get one swap request. Only participants and admins may view it.
// @Tags swaps
// @Produce json
// @Param id path int true "Swap request ID"
// @Success 200 {object} models.SwapRequest
// @Failure 403 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /swap-requests/{id} [get]
func (s *Server) GetSwapRequest(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	swapID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	swap, err := s.swapService.GetSwapRequest(c.Context(), swapID)
	if err != nil {
		return respondServiceError(c, err)
	}

	if userID != swap.RequesterID && userID != swap.ProviderID {
		admin, adminErr := s.isAdminByUserID(c.Context(), userID)
		if adminErr != nil || !admin {
			return models.RespondWithError(c, fiber.StatusForbidden,
				models.NewForbiddenError("You are not a participant in this swap"))
		}
	}

	return c.JSON(swap)
}

// UpdateSwapRequestStatus handles PUT /api/swap-requests/:id/status
// @Summary Update swap status
// @Description Accept or reject a pending swap (provider only), or complete an accepted one (either party)
// @Tags swaps
// @Accept json
// @Produce json
// @Param id path int true "Swap request ID"
// @Param request body object{status=string} true "Target status"
// @Success 200 {object} models.SwapRequest
// @Failure 400 {object} object{error=string}
// @Failure 403 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /swap-requests/{id}/status [put]
func (s *Server) UpdateSwapRequestStatus(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	swapID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	swap, err := s.swapService.UpdateStatus(c.Context(), swapID, userID, models.SwapRequestStatus(req.Status))
	if err != nil {
		return respondServiceError(c, err)
	}

	s.notifySwapTransition(userID, swap)

	return c.JSON(swap)
}

// CancelSwapRequest handles DELETE /api/swap-requests/:id
// @Summary Cancel swap request
// @Description Delete a pending swap request (requester only)
// @Tags swaps
// @Produce json
// @Param id path int true "Swap request ID"
// @Success 200 {object} object{message=string}
// @Failure 403 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /swap-requests/{id} [delete]
func (s *Server) CancelSwapRequest(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	swapID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	swap, err := s.swapService.GetSwapRequest(c.Context(), swapID)
	if err != nil {
		return respondServiceError(c, err)
	}

	if err := s.swapService.CancelSwapRequest(c.Context(), swapID, userID); err != nil {
		return respondServiceError(c, err)
	}

	s.publishUserEvent(swap.ProviderID, EventSwapRequestCancelled, map[string]interface{}{
		"swap_request_id": swapID,
	})

	return c.JSON(fiber.Map{
		"message": "Swap request cancelled",
	})
}

// notifySwapTransition tells the counterparty about a status change.
func (s *Server) notifySwapTransition(actorID uint, swap *models.SwapRequest) {
	var eventType string
	switch swap.Status {
	case models.SwapRequestAccepted:
		eventType = EventSwapRequestAccepted
	case models.SwapRequestRejected:
		eventType = EventSwapRequestRejected
	case models.SwapRequestCompleted:
		eventType = EventSwapRequestCompleted
	default:
		return
	}

	recipient := swap.RequesterID
	if actorID == swap.RequesterID {
		recipient = swap.ProviderID
	}
	s.publishUserEvent(recipient, eventType, map[string]interface{}{
		"swap_request_id": swap.ID,
		"status":          swap.Status,
	})
}
