package main

import (
	"fmt"
	"time"

	"sourced-feed/pkg/config"
	"sourced-feed/pkg/database"
	"sourced-feed/pkg/logger"
	"sourced-feed/pkg/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	if err := seedDatabase(db, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func strPtr(s string) *string {
	return &s
}

func seedDatabase(db *gorm.DB, log *logger.Logger) error {
	creators := []models.Profile{
		{ID: uuid.New().String(), Username: "alice_style", AvatarURL: strPtr("avatars/alice.jpg"), IsVerified: true},
		{ID: uuid.New().String(), Username: "bob_vintage", AvatarURL: strPtr("avatars/bob.jpg")},
		{ID: uuid.New().String(), Username: "charlie_fits", AvatarURL: strPtr("avatars/charlie.jpg")},
		{ID: uuid.New().String(), Username: "diana_thrifts", AvatarURL: strPtr("avatars/diana.jpg"), IsVerified: true},
		{ID: uuid.New().String(), Username: "eve_looks"},
	}

	for i := range creators {
		if err := db.Create(&creators[i]).Error; err != nil {
			return fmt.Errorf("failed to create profile %s: %w", creators[i].Username, err)
		}
		log.Info("Created profile %s", creators[i].Username)
	}

	viewer := models.Profile{ID: uuid.New().String(), Username: "test_viewer"}
	if err := db.Create(&viewer).Error; err != nil {
		return fmt.Errorf("failed to create viewer profile: %w", err)
	}

	// The viewer follows the first two creators
	for _, creator := range creators[:2] {
		follow := models.Follower{
			ID:          uuid.New().String(),
			FollowerID:  viewer.ID,
			FollowingID: creator.ID,
		}
		if err := db.Create(&follow).Error; err != nil {
			return fmt.Errorf("failed to create follow relation: %w", err)
		}
	}

	// Posts with staggered ages so recency decay is visible in scoring
	for i, creator := range creators {
		for j := 0; j < 4; j++ {
			post := models.FeedPost{
				ID:           uuid.New().String(),
				OwnerID:      creator.ID,
				ImageURL:     fmt.Sprintf("posts/%s_%d.jpg", creator.Username, j),
				Caption:      strPtr(fmt.Sprintf("Look %d by %s", j+1, creator.Username)),
				LikeCount:    i*3 + j,
				CommentCount: j,
				CreatedAt:    time.Now().UTC().Add(-time.Duration(i*12+j*6) * time.Hour),
			}
			if err := db.Create(&post).Error; err != nil {
				return fmt.Errorf("failed to create post: %w", err)
			}

			item := models.FeedPostItem{
				ID:         uuid.New().String(),
				FeedPostID: post.ID,
				Title:      fmt.Sprintf("Item %d from look %d", j+1, j+1),
				ImageURL:   fmt.Sprintf("items/%s_%d.jpg", creator.Username, j),
				ProductURL: strPtr("https://example.com/product"),
				Price:      strPtr("$49.99"),
				Seller:     strPtr("Example Seller"),
			}
			if err := db.Create(&item).Error; err != nil {
				return fmt.Errorf("failed to create post item: %w", err)
			}

			// Seed a view so the viewer has engagement history
			if j == 0 {
				view := models.PostView{
					ID:          uuid.New().String(),
					UserID:      viewer.ID,
					PostID:      post.ID,
					ViewedAt:    time.Now().UTC(),
					TimeSpentMs: 4000 + i*500,
					Interacted:  i%2 == 0,
				}
				if err := db.Create(&view).Error; err != nil {
					return fmt.Errorf("failed to create post view: %w", err)
				}
			}
		}
		log.Info("Created posts for %s", creator.Username)
	}

	log.Info("Seeded %d creators, 1 viewer, %d posts", len(creators), len(creators)*4)
	return nil
}
