package persistent

import (
	"time"

	"sourced-feed/pkg/models"
	"sourced-feed/services/feed/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CandidateQuery parameterizes one strategy-filtered candidate fetch.
// OwnerIDs and MinLikeCount are mutually exclusive in practice: followed and
// engaged_creators strategies set OwnerIDs, popular sets MinLikeCount,
// discovery sets neither.
type CandidateQuery struct {
	OwnerIDs     []string
	MinLikeCount int
	ExcludeIDs   []string
	Limit        int
}

type FeedRepository interface {
	GetFollowedCreators(userID string, limit int) ([]string, error)
	GetRecentViews(userID string, limit int) ([]entity.PostView, error)
	GetPostOwnerIDs(postIDs []string) ([]string, error)
	GetCandidates(q CandidateQuery) ([]entity.Post, error)
	IsPostLiked(userID, postID string) (bool, error)
	IsPostSaved(userID, postID string) (bool, error)
	GetPostItems(postID string) ([]entity.PostItem, error)
	GetLikedItemIDs(userID string, itemIDs []string) (map[string]bool, error)
	UpsertPostView(view *entity.PostView) error
}

type feedRepository struct {
	db *gorm.DB
}

func NewFeedRepository(db *gorm.DB) FeedRepository {
	return &feedRepository{db: db}
}

func (r *feedRepository) GetFollowedCreators(userID string, limit int) ([]string, error) {
	var ids []string
	err := r.db.Model(&models.Follower{}).
		Where("follower_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Pluck("following_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *feedRepository) GetRecentViews(userID string, limit int) ([]entity.PostView, error) {
	var viewModels []models.PostView
	err := r.db.Where("user_id = ?", userID).
		Order("viewed_at DESC").
		Limit(limit).
		Find(&viewModels).Error
	if err != nil {
		return nil, err
	}

	views := make([]entity.PostView, len(viewModels))
	for i := range viewModels {
		views[i] = ToPostViewEntity(&viewModels[i])
	}
	return views, nil
}

func (r *feedRepository) GetPostOwnerIDs(postIDs []string) ([]string, error) {
	if len(postIDs) == 0 {
		return []string{}, nil
	}

	var ownerIDs []string
	err := r.db.Model(&models.FeedPost{}).
		Where("id IN ?", postIDs).
		Pluck("owner_id", &ownerIDs).Error
	if err != nil {
		return nil, err
	}
	return ownerIDs, nil
}

func (r *feedRepository) GetCandidates(q CandidateQuery) ([]entity.Post, error) {
	query := r.db.Table("feed_posts").
		Select("feed_posts.id, feed_posts.owner_id, feed_posts.image_url, feed_posts.caption, feed_posts.music_preview_url, feed_posts.like_count, feed_posts.comment_count, feed_posts.created_at, profiles.id AS profile_id, profiles.username, profiles.avatar_url, profiles.is_verified").
		Joins("LEFT JOIN profiles ON profiles.id = feed_posts.owner_id").
		Where("feed_posts.deleted_at IS NULL")

	if len(q.OwnerIDs) > 0 {
		query = query.Where("feed_posts.owner_id IN ?", q.OwnerIDs)
	}

	if q.MinLikeCount > 0 {
		query = query.Where("feed_posts.like_count >= ?", q.MinLikeCount)
	}

	// The caller already enforced the exclusion-size rule; every id that
	// reaches here becomes its own not-equal filter.
	for _, id := range q.ExcludeIDs {
		query = query.Where("feed_posts.id <> ?", id)
	}

	query = query.Order("feed_posts.created_at DESC").Limit(q.Limit)

	rows, err := query.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCandidateRows(rows), nil
}

func (r *feedRepository) IsPostLiked(userID, postID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.LikedFeedPost{}).
		Where("user_id = ? AND feed_post_id = ?", userID, postID).
		Count(&count).Error
	return count > 0, err
}

func (r *feedRepository) IsPostSaved(userID, postID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.SavedFeedPost{}).
		Where("user_id = ? AND feed_post_id = ?", userID, postID).
		Count(&count).Error
	return count > 0, err
}

func (r *feedRepository) GetPostItems(postID string) ([]entity.PostItem, error) {
	var itemModels []models.FeedPostItem
	err := r.db.Where("feed_post_id = ?", postID).
		Order("created_at ASC").
		Find(&itemModels).Error
	if err != nil {
		return nil, err
	}

	items := make([]entity.PostItem, len(itemModels))
	for i := range itemModels {
		items[i] = ToPostItemEntity(&itemModels[i])
	}
	return items, nil
}

func (r *feedRepository) GetLikedItemIDs(userID string, itemIDs []string) (map[string]bool, error) {
	liked := make(map[string]bool)
	if len(itemIDs) == 0 {
		return liked, nil
	}

	var ids []string
	err := r.db.Model(&models.LikedFeedPostItem{}).
		Where("user_id = ? AND item_id IN ?", userID, itemIDs).
		Pluck("item_id", &ids).Error
	if err != nil {
		return nil, err
	}

	for _, id := range ids {
		liked[id] = true
	}
	return liked, nil
}

func (r *feedRepository) UpsertPostView(view *entity.PostView) error {
	viewModel := &models.PostView{
		ID:          uuid.New().String(),
		UserID:      view.UserID,
		PostID:      view.PostID,
		ViewedAt:    time.Now().UTC(),
		TimeSpentMs: view.TimeSpentMs,
		Interacted:  view.Interacted,
	}

	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "post_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"viewed_at", "time_spent_ms", "interacted"}),
	}).Create(viewModel).Error
	if err != nil {
		return err
	}

	view.ViewedAt = viewModel.ViewedAt
	return nil
}
