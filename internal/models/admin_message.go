package models

import "time"

// AdminMessageType categorizes platform-wide announcements.
type AdminMessageType string

const (
	AdminMessageTypeAnnouncement  AdminMessageType = "announcement"
	AdminMessageTypeMaintenance   AdminMessageType = "maintenance"
	AdminMessageTypeFeatureUpdate AdminMessageType = "feature_update"
)

// ValidAdminMessageType reports whether t is a known message type.
func ValidAdminMessageType(t AdminMessageType) bool {
	switch t {
	case AdminMessageTypeAnnouncement, AdminMessageTypeMaintenance, AdminMessageTypeFeatureUpdate:
		return true
	}
	return false
}

// AdminMessage is a broadcast announcement created by an admin. Only active
// messages are served to clients; deactivation flips IsActive instead of
// deleting the row.
type AdminMessage struct {
	ID        uint             `gorm:"primaryKey" json:"id"`
	AdminID   uint             `gorm:"not null;index" json:"admin_id"`
	Admin     *User            `gorm:"foreignKey:AdminID" json:"admin,omitempty"`
	Title     string           `gorm:"not null" json:"title"`
	Content   string           `gorm:"type:text;not null" json:"content"`
	Type      AdminMessageType `gorm:"type:varchar(20);not null" json:"type"`
	IsActive  bool             `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt time.Time        `json:"created_at"`
}
