package server

import (
	"context"
	"encoding/json"
	"log"

	"skillswap/internal/models"
)

// Event type constants prevent typos in event names.
const (
	EventSwapRequestCreated   = "swap_request_created"
	EventSwapRequestAccepted  = "swap_request_accepted"
	EventSwapRequestRejected  = "swap_request_rejected"
	EventSwapRequestCompleted = "swap_request_completed"
	EventSwapRequestCancelled = "swap_request_cancelled"
	EventRatingReceived       = "rating_received"
	EventReportCreated        = "report_created"
	EventAdminMessagePosted   = "admin_message_posted"
	EventUserBanned           = "user_banned"
	EventUserUnbanned         = "user_unbanned"
	EventUserPromoted         = "user_promoted"
	EventUserDemoted          = "user_demoted"
)

func (s *Server) publishUserEvent(userID uint, eventType string, payload map[string]interface{}) {
	event := map[string]interface{}{
		"type":    eventType,
		"payload": payload,
	}
	eventJSON, err := json.Marshal(event)
	if err != nil {
		log.Printf("failed to marshal %s event: %v", eventType, err)
		return
	}
	if s.notifier != nil {
		if err := s.notifier.PublishUser(context.Background(), userID, string(eventJSON)); err != nil {
			log.Printf("failed to publish %s event to user %d: %v", eventType, userID, err)
		}
	}
}

func (s *Server) publishBroadcastEvent(eventType string, payload map[string]interface{}) {
	event := map[string]interface{}{
		"type":    eventType,
		"payload": payload,
	}
	eventJSON, err := json.Marshal(event)
	if err != nil {
		log.Printf("failed to marshal %s event: %v", eventType, err)
		return
	}
	if s.notifier != nil {
		if err := s.notifier.PublishBroadcast(context.Background(), string(eventJSON)); err != nil {
			log.Printf("failed to publish %s broadcast event: %v", eventType, err)
		}
	}
}

func (s *Server) publishAdminEvent(eventType string, payload map[string]interface{}) {
	event := map[string]interface{}{
		"type":    eventType,
		"payload": payload,
	}
	eventJSON, err := json.Marshal(event)
	if err != nil {
		log.Printf("failed to marshal %s event: %v", eventType, err)
		return
	}
	if s.notifier != nil {
		if err := s.notifier.PublishAdmin(context.Background(), string(eventJSON)); err != nil {
			log.Printf("failed to publish %s admin event: %v", eventType, err)
		}
	}
}

func userSummary(user models.User) map[string]interface{} {
	return map[string]interface{}{
		"id":                user.ID,
		"username":          user.Username,
		"profile_image_url": user.ProfileImageURL,
	}
}

func userSummaryPtr(user *models.User) map[string]interface{} {
	if user == nil {
		return nil
	}
	return userSummary(*user)
}
