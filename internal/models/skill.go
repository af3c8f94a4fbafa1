package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// StringList stores a list of strings as a JSON-encoded text column so the
// same model works on PostgreSQL and the SQLite test database.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type %T for StringList", value)
	}
}

// SkillLevel is the self-assessed proficiency of a skill.
type SkillLevel string

const (
	SkillLevelBeginner     SkillLevel = "beginner"
	SkillLevelIntermediate SkillLevel = "intermediate"
	SkillLevelAdvanced     SkillLevel = "advanced"
	SkillLevelExpert       SkillLevel = "expert"
)

// ValidSkillLevel reports whether level is one of the known proficiency values.
func ValidSkillLevel(level SkillLevel) bool {
	switch level {
	case SkillLevelBeginner, SkillLevelIntermediate, SkillLevelAdvanced, SkillLevelExpert:
		return true
	}
	return false
}

// SkillType distinguishes skills a user can teach from skills they want to learn.
type SkillType string

const (
	SkillTypeOffered SkillType = "offered"
	SkillTypeWanted  SkillType = "wanted"
)

// ValidSkillType reports whether t is a known skill type.
func ValidSkillType(t SkillType) bool {
	return t == SkillTypeOffered || t == SkillTypeWanted
}

// Skill is an offered or wanted skill advertised by a user. Only active
// skills are listed publicly; type listings and search additionally require
// the skill to be approved.
type Skill struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      uint       `gorm:"not null;index" json:"user_id"`
	User        *User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Name        string     `gorm:"not null" json:"name"`
	Description string     `gorm:"type:text" json:"description"`
	Category    string     `gorm:"not null;index" json:"category"`
	Level       SkillLevel `gorm:"type:varchar(20);not null" json:"level"`
	Type        SkillType  `gorm:"type:varchar(20);not null;index" json:"type"`
	Tags        StringList `gorm:"type:text" json:"tags"`
	IsActive    bool       `gorm:"not null;default:true" json:"is_active"`
	IsApproved  bool       `gorm:"not null;default:true" json:"is_approved"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
