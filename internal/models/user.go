// Package models contains data structures for the application's domain models.
package models

import "time"

// User represents a marketplace member. The Rating/TotalRatings pair is a
// denormalized aggregate recomputed whenever a new rating is recorded.
type User struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Username        string    `gorm:"unique;not null" json:"username"`
	Email           string    `gorm:"unique;not null" json:"email"`
	Password        string    `gorm:"not null" json:"-"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	ProfileImageURL string    `json:"profile_image_url"`
	Location        string    `json:"location"`
	Bio             string    `gorm:"type:text" json:"bio"`
	IsPublic        bool      `gorm:"not null;default:true" json:"is_public"`
	IsAdmin         bool      `gorm:"not null;default:false" json:"is_admin"`
	IsBanned        bool      `gorm:"not null;default:false;index" json:"is_banned"`
	Rating          float64   `gorm:"not null;default:0" json:"rating"`
	TotalRatings    int       `gorm:"not null;default:0" json:"total_ratings"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Skills []Skill `gorm:"foreignKey:UserID" json:"skills,omitempty"`
}
