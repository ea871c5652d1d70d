package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Like/save markers are presence relations: the engine only ever asks
// "does a row exist for this key". Mutation happens elsewhere.

type LikedFeedPost struct {
	ID         string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID     string    `gorm:"type:uuid;not null;uniqueIndex:idx_user_liked_post" json:"user_id"`
	FeedPostID string    `gorm:"type:uuid;not null;uniqueIndex:idx_user_liked_post" json:"feed_post_id"`
	CreatedAt  time.Time `json:"created_at"`
}

func (l *LikedFeedPost) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}

type SavedFeedPost struct {
	ID         string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID     string    `gorm:"type:uuid;not null;uniqueIndex:idx_user_saved_post" json:"user_id"`
	FeedPostID string    `gorm:"type:uuid;not null;uniqueIndex:idx_user_saved_post" json:"feed_post_id"`
	CreatedAt  time.Time `json:"created_at"`
}

func (s *SavedFeedPost) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}

type LikedFeedPostItem struct {
	ID        string    `gorm:"type:uuid;primary_key" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_user_liked_item" json:"user_id"`
	ItemID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_user_liked_item" json:"item_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (l *LikedFeedPostItem) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}
