package entities

import (
	"time"

	"github.com/google/uuid"
)

// UserPoints holds the running balance, one row per user.
type UserPoints struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Points      int       `gorm:"not null;default:0" json:"points"`
	Level       int       `gorm:"not null;default:1" json:"level"`
	LastUpdated time.Time `gorm:"index" json:"last_updated"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Timestamp
}

// PointsHistory is append-only. PointsEarned is negative for deductions.
type PointsHistory struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	PointsEarned int       `gorm:"not null" json:"points_earned"`
	ActivityType string    `gorm:"size:50;not null" json:"activity_type"`
	Description  string    `json:"description"`

	Timestamp
}

func (PointsHistory) TableName() string {
	return "points_history"
}
