package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FeedPostItem struct {
	ID         string    `gorm:"type:uuid;primary_key" json:"id"`
	FeedPostID string    `gorm:"type:uuid;not null;index" json:"feed_post_id"`
	Title      string    `gorm:"not null" json:"title"`
	ImageURL   string    `gorm:"not null" json:"image_url"`
	ProductURL *string   `json:"product_url"`
	Price      *string   `json:"price"`
	Seller     *string   `json:"seller"`
	LikeCount  int       `gorm:"default:0" json:"like_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (i *FeedPostItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	return nil
}
