package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeedPost_BeforeCreate(t *testing.T) {
	post := &FeedPost{
		OwnerID:  "owner-123",
		ImageURL: "https://example.com/image.jpg",
	}

	// BeforeCreate should set ID if empty
	err := post.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, post.ID)
}

func TestFeedPost_BeforeCreate_WithID(t *testing.T) {
	existingID := "existing-post-id"
	post := &FeedPost{
		ID:       existingID,
		OwnerID:  "owner-123",
		ImageURL: "https://example.com/image.jpg",
	}

	err := post.BeforeCreate(nil)
	assert.NoError(t, err)
	// ID should remain unchanged if already set
	assert.Equal(t, existingID, post.ID)
}

func TestFeedPostItem_BeforeCreate(t *testing.T) {
	item := &FeedPostItem{
		FeedPostID: "post-123",
		Title:      "Vintage jacket",
		ImageURL:   "https://example.com/item.jpg",
	}

	err := item.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, item.ID)
}

func TestPostView_BeforeCreate(t *testing.T) {
	view := &PostView{
		UserID:      "user-123",
		PostID:      "post-123",
		TimeSpentMs: 4500,
		Interacted:  true,
	}

	err := view.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, view.ID)
}

func TestFollower_BeforeCreate(t *testing.T) {
	follower := &Follower{
		FollowerID:  "user-123",
		FollowingID: "creator-456",
	}

	err := follower.BeforeCreate(nil)
	assert.NoError(t, err)
	assert.NotEmpty(t, follower.ID)
}

func TestMarkers_BeforeCreate(t *testing.T) {
	like := &LikedFeedPost{UserID: "user-123", FeedPostID: "post-123"}
	save := &SavedFeedPost{UserID: "user-123", FeedPostID: "post-123"}
	itemLike := &LikedFeedPostItem{UserID: "user-123", ItemID: "item-123"}

	assert.NoError(t, like.BeforeCreate(nil))
	assert.NoError(t, save.BeforeCreate(nil))
	assert.NoError(t, itemLike.BeforeCreate(nil))

	assert.NotEmpty(t, like.ID)
	assert.NotEmpty(t, save.ID)
	assert.NotEmpty(t, itemLike.ID)
}
