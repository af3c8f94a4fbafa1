package models

import "time"

// Rating records a 1-5 score left by one party of a swap for the other.
// Creating a rating triggers a full recomputation of the ratee's aggregate.
type Rating struct {
	ID            uint         `gorm:"primaryKey" json:"id"`
	RaterID       uint         `gorm:"not null;index" json:"rater_id"`
	Rater         *User        `gorm:"foreignKey:RaterID" json:"rater,omitempty"`
	RateeID       uint         `gorm:"not null;index" json:"ratee_id"`
	Ratee         *User        `gorm:"foreignKey:RateeID" json:"ratee,omitempty"`
	SwapRequestID uint         `gorm:"not null;index" json:"swap_request_id"`
	SwapRequest   *SwapRequest `gorm:"foreignKey:SwapRequestID" json:"swap_request,omitempty"`
	Rating        int          `gorm:"not null" json:"rating"`
	Comment       string       `gorm:"type:text" json:"comment"`
	CreatedAt     time.Time    `json:"created_at"`
}
