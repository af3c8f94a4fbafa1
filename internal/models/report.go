package models

import "time"

// ReportStatus defines lifecycle states for moderation reports.
type ReportStatus string

const (
	// ReportStatusPending indicates the report has not been looked at yet.
	ReportStatusPending ReportStatus = "pending"
	// ReportStatusReviewed indicates an admin looked at the report.
	ReportStatusReviewed ReportStatus = "reviewed"
	// ReportStatusResolved indicates the report was acted on and closed.
	ReportStatusResolved ReportStatus = "resolved"
)

// ValidReportStatus reports whether status is a known report status.
func ValidReportStatus(status ReportStatus) bool {
	switch status {
	case ReportStatusPending, ReportStatusReviewed, ReportStatusResolved:
		return true
	}
	return false
}

// Report is a user-submitted moderation report. Exactly which target fields
// are set depends on what was reported; all three are optional.
type Report struct {
	ID                uint         `gorm:"primaryKey" json:"id"`
	ReporterID        uint         `gorm:"not null;index" json:"reporter_id"`
	Reporter          *User        `gorm:"foreignKey:ReporterID" json:"reporter,omitempty"`
	ReportedUserID    *uint        `gorm:"index" json:"reported_user_id"`
	ReportedUser      *User        `gorm:"foreignKey:ReportedUserID" json:"reported_user,omitempty"`
	ReportedSkillID   *uint        `json:"reported_skill_id"`
	ReportedSkill     *Skill       `gorm:"foreignKey:ReportedSkillID" json:"reported_skill,omitempty"`
	ReportedRequestID *uint        `json:"reported_request_id"`
	ReportedRequest   *SwapRequest `gorm:"foreignKey:ReportedRequestID" json:"reported_request,omitempty"`
	Reason            string       `gorm:"not null" json:"reason"`
	Description       string       `gorm:"type:text" json:"description"`
	Status            ReportStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	CreatedAt         time.Time    `json:"created_at"`
}
