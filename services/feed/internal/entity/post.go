package entity

import "time"

// Owner is the profile projection joined onto a post. The store adapter
// always yields this canonical shape; an absent profile resolves to the
// zero value rather than failing assembly.
type Owner struct {
	ID         string  `json:"id"`
	Username   string  `json:"username"`
	AvatarURL  *string `json:"avatar_url"`
	IsVerified bool    `json:"is_verified"`
}

type Post struct {
	ID              string    `json:"id"`
	OwnerID         string    `json:"owner_id"`
	ImageURL        string    `json:"image_url"`
	Caption         *string   `json:"caption"`
	MusicPreviewURL *string   `json:"music_preview_url"`
	LikeCount       int       `json:"like_count"`
	CommentCount    int       `json:"comment_count"`
	CreatedAt       time.Time `json:"created_at"`
	Owner           Owner     `json:"owner"`
}

type PostItem struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	ImageURL   string  `json:"image_url"`
	ProductURL *string `json:"product_url"`
	Price      *string `json:"price"`
	Seller     *string `json:"seller"`
	LikeCount  int     `json:"like_count"`
}

// ScoredPost pairs a candidate with its engagement score for diagnostics.
type ScoredPost struct {
	Post  *Post   `json:"post"`
	Score float64 `json:"score"`
}
