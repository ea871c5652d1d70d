package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FeedPost struct {
	ID              string         `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID         string         `gorm:"type:uuid;not null;index" json:"owner_id"`
	ImageURL        string         `gorm:"not null" json:"image_url"`
	Caption         *string        `json:"caption"`
	MusicPreviewURL *string        `json:"music_preview_url"`
	LikeCount       int            `gorm:"default:0" json:"like_count"`
	CommentCount    int            `gorm:"default:0" json:"comment_count"`
	Items           []FeedPostItem `gorm:"foreignKey:FeedPostID" json:"items"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (p *FeedPost) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
