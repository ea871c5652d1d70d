package entity

import "time"

// PostView is the durable record of one (viewer, post) viewing event.
// A repeat view overwrites the previous row for the pair.
type PostView struct {
	UserID      string    `json:"user_id"`
	PostID      string    `json:"post_id"`
	ViewedAt    time.Time `json:"viewed_at"`
	TimeSpentMs int       `json:"time_spent_ms"`
	Interacted  bool      `json:"interacted"`
}
