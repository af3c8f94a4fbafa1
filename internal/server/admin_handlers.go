package server

import (
	"errors"
	"strings"

	"skillswap/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const maxAdminUserSearchLen = 64

// GetActiveAdminMessages handles GET /api/admin/messages.
// Publicly readable so that unauthenticated clients can show announcements.
// @Summary List active admin messages
// @Description List active platform announcements, newest first
// @Tags admin
// @Produce json
// @Success 200 {array} models.AdminMessage
// @Router /admin/messages [get]
func (s *Server) GetActiveAdminMessages(c *fiber.Ctx) error {
	msgs, err := s.adminMessageRepo.GetActive(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(msgs)
}

// CreateAdminMessage handles POST /api/admin/messages.
// @Summary Create admin message
// @Description Post a platform-wide announcement
// @Tags admin
// @Accept json
// @Produce json
// @Param request body object{title=string,content=string,type=string} true "Message"
// @Success 201 {object} models.AdminMessage
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /admin/messages [post]
func (s *Server) CreateAdminMessage(c *fiber.Ctx) error {
	adminID := c.Locals("userID").(uint)

	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
		Type    string `json:"type"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)
	if title == "" || content == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Title and content are required"))
	}
	msgType := models.AdminMessageType(req.Type)
	if msgType == "" {
		msgType = models.AdminMessageTypeAnnouncement
	}
	if !models.ValidAdminMessageType(msgType) {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid message type"))
	}

	msg := &models.AdminMessage{
		AdminID:  adminID,
		Title:    title,
		Content:  content,
		Type:     msgType,
		IsActive: true,
	}
	if err := s.adminMessageRepo.Create(c.Context(), msg); err != nil {
		return respondServiceError(c, err)
	}

	s.publishBroadcastEvent(EventAdminMessagePosted, map[string]interface{}{
		"id":    msg.ID,
		"title": msg.Title,
		"type":  msg.Type,
	})

	return c.Status(fiber.StatusCreated).JSON(msg)
}

// DeactivateAdminMessage handles PUT /api/admin/messages/:id/deactivate.
// @Summary Deactivate admin message
// @Description Hide an announcement without deleting it
// @Tags admin
// @Produce json
// @Param id path int true "Message ID"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /admin/messages/{id}/deactivate [put]
func (s *Server) DeactivateAdminMessage(c *fiber.Ctx) error {
	msgID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.adminMessageRepo.Deactivate(c.Context(), msgID); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Admin message deactivated"})
}

// GetAdminReports handles GET /api/reports.
// @Summary List moderation reports
// @Description List moderation reports with optional status filter
// @Tags admin
// @Produce json
// @Param status query string false "Filter by status"
// @Success 200 {array} models.Report
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /reports [get]
func (s *Server) GetAdminReports(c *fiber.Ctx) error {
	status := models.ReportStatus(strings.TrimSpace(c.Query("status")))
	if status != "" && !models.ValidReportStatus(status) {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid report status"))
	}
	page := parsePagination(c, 100)

	reports, err := s.reportRepo.List(c.Context(), status, page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(reports)
}

// UpdateReportStatus handles PUT /api/reports/:id/status.
// @Summary Update report status
// @Description Move a report to reviewed or resolved
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Report ID"
// @Param request body object{status=string} true "Target status"
// @Success 200 {object} models.Report
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /reports/{id}/status [put]
func (s *Server) UpdateReportStatus(c *fiber.Ctx) error {
	reportID, err := s.parseID(c, "id")
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
	status := models.ReportStatus(strings.TrimSpace(strings.ToLower(req.Status)))
	if !models.ValidReportStatus(status) {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Status must be pending, reviewed, or resolved"))
	}

	if err := s.reportRepo.UpdateStatus(c.Context(), reportID, status); err != nil {
		return respondServiceError(c, err)
	}

	report, err := s.reportRepo.GetByID(c.Context(), reportID)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(report)
}

// GetAdminUsers handles GET /api/admin/users.
// @Summary List users for admin
// @Description List users with search and pagination
// @Tags admin
// @Produce json
// @Param q query string false "Search query (username or email)"
// @Success 200 {array} models.User
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /admin/users [get]
func (s *Server) GetAdminUsers(c *fiber.Ctx) error {
	page := parsePagination(c, 100)
	q := strings.TrimSpace(c.Query("q"))

	if len(q) > maxAdminUserSearchLen {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Search query too long (max 64 characters)"))
	}

	users, err := s.userService.ListUsers(c.UserContext(), q, page.Limit, page.Offset)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(users)
}

// PromoteUser handles POST /api/admin/promote/:userId.
// @Summary Grant admin rights
// @Description Promote a user to admin
// @Tags admin
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /admin/promote/{userId} [post]
func (s *Server) PromoteUser(c *fiber.Ctx) error {
	adminID := c.Locals("userID").(uint)
	targetID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	user, svcErr := s.userService.SetAdmin(c.Context(), targetID, true)
	if svcErr != nil {
		return respondServiceError(c, svcErr)
	}

	s.publishAdminEvent(EventUserPromoted, map[string]interface{}{
		"user_id":  targetID,
		"admin_id": adminID,
	})

	return c.JSON(user)
}

// DemoteUser handles POST /api/admin/demote/:userId.
// @Summary Revoke admin rights
// @Description Demote an admin back to a regular user
// @Tags admin
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} models.User
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /admin/demote/{userId} [post]
func (s *Server) DemoteUser(c *fiber.Ctx) error {
	adminID := c.Locals("userID").(uint)
	targetID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}
	if adminID == targetID {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("cannot demote yourself"))
	}

	user, svcErr := s.userService.SetAdmin(c.Context(), targetID, false)
	if svcErr != nil {
		return respondServiceError(c, svcErr)
	}

	s.publishAdminEvent(EventUserDemoted, map[string]interface{}{
		"user_id":  targetID,
		"admin_id": adminID,
	})

	return c.JSON(user)
}

// BanUser handles POST /api/admin/ban/:userId.
// @Summary Ban a user
// @Description Ban a user from the platform
// @Tags admin
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /admin/ban/{userId} [post]
func (s *Server) BanUser(c *fiber.Ctx) error {
	ctx := c.UserContext()
	adminID := c.Locals("userID").(uint)
	targetID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}
	if adminID == targetID {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("cannot ban yourself"))
	}

	var target models.User
	if dbErr := s.db.WithContext(ctx).Select("id").First(&target, targetID).Error; dbErr != nil {
		if errors.Is(dbErr, gorm.ErrRecordNotFound) {
			return models.RespondWithError(c, fiber.StatusNotFound, models.NewNotFoundError("User", targetID))
		}
		return models.RespondWithError(c, fiber.StatusInternalServerError, dbErr)
	}

	if err := s.userRepo.UpdateFields(ctx, targetID, map[string]interface{}{
		"is_banned": true,
	}); err != nil {
		return respondServiceError(c, err)
	}

	s.publishAdminEvent(EventUserBanned, map[string]interface{}{
		"user_id":  targetID,
		"admin_id": adminID,
	})

	return c.JSON(fiber.Map{"message": "User banned"})
}

// UnbanUser handles POST /api/admin/unban/:userId.
// @Summary Unban a user
// @Description Remove ban from a user
// @Tags admin
// @Produce json
// @Param userId path int true "User ID"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /admin/unban/{userId} [post]
func (s *Server) UnbanUser(c *fiber.Ctx) error {
	ctx := c.UserContext()
	adminID := c.Locals("userID").(uint)
	targetID, err := s.parseID(c, "userId")
	if err != nil {
		return nil
	}

	if err := s.userRepo.UpdateFields(ctx, targetID, map[string]interface{}{
		"is_banned": false,
	}); err != nil {
		return respondServiceError(c, err)
	}

	s.publishAdminEvent(EventUserUnbanned, map[string]interface{}{
		"user_id":  targetID,
		"admin_id": adminID,
	})

	return c.JSON(fiber.Map{"message": "User unbanned"})
}
