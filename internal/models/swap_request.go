package models

import "time"

// SwapRequestStatus defines lifecycle states for swap requests.
//
// Cancellation is not a stored state: a requester cancels a pending request
// by deleting it.
type SwapRequestStatus string

const (
	// SwapRequestPending indicates the request is awaiting the provider's decision.
	SwapRequestPending SwapRequestStatus = "pending"
	// SwapRequestAccepted indicates the provider agreed to the swap.
	SwapRequestAccepted SwapRequestStatus = "accepted"
	// SwapRequestRejected indicates the provider declined the swap.
	SwapRequestRejected SwapRequestStatus = "rejected"
	// SwapRequestCompleted indicates either party marked the swap as done.
	SwapRequestCompleted SwapRequestStatus = "completed"
)

// ValidSwapRequestStatus reports whether status is a known stored status.
func ValidSwapRequestStatus(status SwapRequestStatus) bool {
	switch status {
	case SwapRequestPending, SwapRequestAccepted,
		SwapRequestRejected, SwapRequestCompleted:
		return true
	}
	return false
}

// SwapRequest is a proposal exchanging the requester's offered skill for the
// provider's requested skill. The skill references are fixed at creation.
type SwapRequest struct {
	ID               uint              `gorm:"primaryKey" json:"id"`
	RequesterID      uint              `gorm:"not null;index" json:"requester_id"`
	Requester        *User             `gorm:"foreignKey:RequesterID" json:"requester,omitempty"`
	ProviderID       uint              `gorm:"not null;index" json:"provider_id"`
	Provider         *User             `gorm:"foreignKey:ProviderID" json:"provider,omitempty"`
	OfferedSkillID   uint              `gorm:"not null" json:"offered_skill_id"`
	OfferedSkill     *Skill            `gorm:"foreignKey:OfferedSkillID" json:"offered_skill,omitempty"`
	RequestedSkillID uint              `gorm:"not null" json:"requested_skill_id"`
	RequestedSkill   *Skill            `gorm:"foreignKey:RequestedSkillID" json:"requested_skill,omitempty"`
	Message          string            `gorm:"type:text" json:"message"`
	PreferredTimes   StringList        `gorm:"type:text" json:"preferred_times"`
	Status           SwapRequestStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}
