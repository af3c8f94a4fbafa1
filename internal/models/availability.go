package models

import "time"

// Availability marks one (day, time slot) cell of a user's weekly schedule.
// At most one row exists per (user, day, slot); writes go through an upsert.
type Availability struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;uniqueIndex:idx_availability_slot" json:"user_id"`
	User        *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	DayOfWeek   string    `gorm:"not null;uniqueIndex:idx_availability_slot" json:"day_of_week"`
	TimeSlot    string    `gorm:"not null;uniqueIndex:idx_availability_slot" json:"time_slot"`
	IsAvailable bool      `gorm:"not null;default:true" json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
}
