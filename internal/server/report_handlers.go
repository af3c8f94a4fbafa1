package server

import (
	"strings"

	"skillswap/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateReport handles POST /api/reports
// At least one target (user, skill, or swap request) must be named, and the
// named target must exist.
// @Summary Report a user, skill, or swap
// @Description File a moderation report against a user, skill, or swap request
// @Tags reports
// @Accept json
// @Produce json
// @Param request body object{reported_user_id=int,reported_skill_id=int,reported_request_id=int,reason=string,description=string} true "Report"
// @Success 201 {object} models.Report
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /reports [post]
func (s *Server) CreateReport(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var req struct {
		ReportedUserID    *uint  `json:"reported_user_id"`
		ReportedSkillID   *uint  `json:"reported_skill_id"`
		ReportedRequestID *uint  `json:"reported_request_id"`
		Reason            string `json:"reason"`
		Description       string `json:"description"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Reason is required"))
	}
	if req.ReportedUserID == nil && req.ReportedSkillID == nil && req.ReportedRequestID == nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("A reported user, skill, or swap request is required"))
	}

	// Reported targets must exist
	if req.ReportedUserID != nil {
		if _, err := s.userService.GetUserByID(c.Context(), *req.ReportedUserID); err != nil {
			return respondServiceError(c, err)
		}
	}
	if req.ReportedSkillID != nil {
		if _, err := s.skillRepo.GetByID(c.Context(), *req.ReportedSkillID); err != nil {
			return respondServiceError(c, err)
		}
	}
	if req.ReportedRequestID != nil {
		if _, err := s.swapRepo.GetByID(c.Context(), *req.ReportedRequestID); err != nil {
			return respondServiceError(c, err)
		}
	}

	report := &models.Report{
		ReporterID:        userID,
		ReportedUserID:    req.ReportedUserID,
		ReportedSkillID:   req.ReportedSkillID,
		ReportedRequestID: req.ReportedRequestID,
		Reason:            reason,
		Description:       req.Description,
		Status:            models.ReportStatusPending,
	}
	if err := s.reportRepo.Create(c.Context(), report); err != nil {
		return respondServiceError(c, err)
	}

	s.publishAdminEvent(EventReportCreated, map[string]interface{}{
		"report_id":   report.ID,
		"reporter_id": report.ReporterID,
		"reason":      report.Reason,
	})

	return c.Status(fiber.StatusCreated).JSON(report)
}
