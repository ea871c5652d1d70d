package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PostView keeps at most one row per (user, post). A repeat view overwrites
// dwell time, interaction flag and timestamp in place.
type PostView struct {
	ID          string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID      string    `gorm:"type:uuid;not null;uniqueIndex:idx_user_post_view" json:"user_id"`
	PostID      string    `gorm:"type:uuid;not null;uniqueIndex:idx_user_post_view" json:"post_id"`
	ViewedAt    time.Time `json:"viewed_at"`
	TimeSpentMs int       `gorm:"default:0" json:"time_spent_ms"`
	Interacted  bool      `gorm:"default:false" json:"interacted"`
}

func (v *PostView) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return nil
}
