package usecase

import (
	"sourced-feed/services/feed/internal/entity"
	"sourced-feed/services/feed/internal/repo/persistent"

	"github.com/stretchr/testify/mock"
)

// MockFeedRepository is a mock implementation of persistent.FeedRepository
type MockFeedRepository struct {
	mock.Mock
}

func (m *MockFeedRepository) GetFollowedCreators(userID string, limit int) ([]string, error) {
	args := m.Called(userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockFeedRepository) GetRecentViews(userID string, limit int) ([]entity.PostView, error) {
	args := m.Called(userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.PostView), args.Error(1)
}

func (m *MockFeedRepository) GetPostOwnerIDs(postIDs []string) ([]string, error) {
	args := m.Called(postIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockFeedRepository) GetCandidates(q persistent.CandidateQuery) ([]entity.Post, error) {
	args := m.Called(q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Post), args.Error(1)
}

func (m *MockFeedRepository) IsPostLiked(userID, postID string) (bool, error) {
	args := m.Called(userID, postID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFeedRepository) IsPostSaved(userID, postID string) (bool, error) {
	args := m.Called(userID, postID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFeedRepository) GetPostItems(postID string) ([]entity.PostItem, error) {
	args := m.Called(postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.PostItem), args.Error(1)
}

func (m *MockFeedRepository) GetLikedItemIDs(userID string, itemIDs []string) (map[string]bool, error) {
	args := m.Called(userID, itemIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}

func (m *MockFeedRepository) UpsertPostView(view *entity.PostView) error {
	args := m.Called(view)
	return args.Error(0)
}

var _ persistent.FeedRepository = (*MockFeedRepository)(nil)
