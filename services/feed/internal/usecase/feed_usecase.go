package usecase

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"sourced-feed/pkg/logger"
	"sourced-feed/pkg/queue"
	"sourced-feed/services/feed/internal/entity"
	"sourced-feed/services/feed/internal/repo/persistent"

	"github.com/redis/go-redis/v9"
)

const (
	strategyFetchLimit  = 20
	discoveryFetchLimit = 50
	followedOwnerLimit  = 50
	engagedOwnerLimit   = 30
	popularMinLikes     = 1

	// Beyond this many seen ids, exclusion is skipped entirely: it bounds
	// query cost and lets older content recirculate for deep scrollers.
	maxExcludeIDs = 20
)

// ErrEmptyCandidateBatch reports a broken upstream contract: the fetch
// claimed success but the scorer received nothing. It must surface as a
// server error, never as a silent null post.
var ErrEmptyCandidateBatch = errors.New("candidate batch empty after successful fetch")

const noPostsMessage = "No posts available"

type FeedUseCase interface {
	NextPost(userID string, excludeIDs []string) (*entity.FeedResult, error)
	LogView(userID, postID string, timeSpentMs int, interacted bool) (*entity.PostView, error)
	GetPreferences(userID string) (*entity.PreferenceSummary, error)
}

// MediaResolver turns stored media keys into public URLs.
type MediaResolver interface {
	ResolveURL(ref string) string
}

type feedUseCase struct {
	feedRepo    persistent.FeedRepository
	redisClient *redis.Client
	queueClient *queue.Client
	media       MediaResolver
	logger      *logger.Logger

	// rand.Rand is not safe for concurrent use.
	rngMu sync.Mutex
	rng   *rand.Rand
}

func NewFeedUseCase(
	feedRepo persistent.FeedRepository,
	redisClient *redis.Client,
	queueClient *queue.Client,
	media MediaResolver,
	logger *logger.Logger,
) FeedUseCase {
	return &feedUseCase{
		feedRepo:    feedRepo,
		redisClient: redisClient,
		queueClient: queueClient,
		media:       media,
		logger:      logger,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (uc *feedUseCase) NextPost(userID string, excludeIDs []string) (*entity.FeedResult, error) {
	profile := entity.PreferenceProfile{}
	personalized := false
	if userID != "" {
		profile, personalized = uc.preferenceSignals(userID)
	}

	exclude := excludeIDs
	if len(exclude) > maxExcludeIDs {
		exclude = nil
	}

	// Recirculation is a single explicit loop iteration with the exclusion
	// list reset, never a second one.
	recirculated := false
	for {
		strategy := uc.drawStrategy(profile)

		posts, err := uc.fetchForStrategy(strategy, profile, exclude)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch candidates: %w", err)
		}

		if len(posts) == 0 && strategy != entity.StrategyDiscovery {
			uc.logger.Warn("No candidates for strategy %s, relaxing filters", strategy)
			posts, err = uc.feedRepo.GetCandidates(persistent.CandidateQuery{
				ExcludeIDs: exclude,
				Limit:      discoveryFetchLimit,
			})
			if err != nil {
				return nil, fmt.Errorf("failed to fetch relaxed candidates: %w", err)
			}
		}

		if len(posts) == 0 {
			if len(exclude) > 0 && !recirculated {
				uc.logger.Info("All content seen by user %q (%d excluded), recirculating", userID, len(exclude))
				exclude = nil
				recirculated = true
				continue
			}
			return &entity.FeedResult{Post: nil, Message: noPostsMessage}, nil
		}

		scored := scoreAndRank(posts, time.Now().UTC())
		selected := uc.pickCandidate(scored)
		if selected == nil {
			return nil, ErrEmptyCandidateBatch
		}

		payload, err := uc.assemblePost(userID, selected)
		if err != nil {
			return nil, err
		}

		return &entity.FeedResult{
			Post: payload,
			AlgorithmInfo: &entity.AlgorithmInfo{
				Strategy:            strategy,
				CandidatesEvaluated: len(scored),
				TotalFetched:        len(posts),
				Personalized:        personalized,
			},
		}, nil
	}
}

func (uc *feedUseCase) LogView(userID, postID string, timeSpentMs int, interacted bool) (*entity.PostView, error) {
	view := &entity.PostView{
		UserID:      userID,
		PostID:      postID,
		TimeSpentMs: timeSpentMs,
		Interacted:  interacted,
	}

	if err := uc.feedRepo.UpsertPostView(view); err != nil {
		return nil, fmt.Errorf("failed to log post view: %w", err)
	}

	uc.invalidateSignals(userID)

	if uc.queueClient != nil {
		go func() {
			event := map[string]interface{}{
				"type":          "post_view",
				"user_id":       userID,
				"post_id":       postID,
				"time_spent_ms": timeSpentMs,
				"interacted":    interacted,
			}
			if err := uc.queueClient.PublishViewEvent(event); err != nil {
				uc.logger.Error("Failed to publish view event: %v", err)
			}
		}()
	}

	return view, nil
}

func (uc *feedUseCase) GetPreferences(userID string) (*entity.PreferenceSummary, error) {
	profile, personalized := uc.preferenceSignals(userID)

	return &entity.PreferenceSummary{
		UserID:                  userID,
		FollowingCount:          len(profile.FollowedUsers),
		EngagedCreatorsCount:    len(profile.EngagedCreators),
		AvgViewTimeMs:           profile.AvgViewTimeMs,
		RecentInteractionsCount: len(profile.RecentInteractions),
		Personalized:            personalized,
	}, nil
}

func (uc *feedUseCase) fetchForStrategy(strategy entity.Strategy, profile entity.PreferenceProfile, exclude []string) ([]entity.Post, error) {
	q := persistent.CandidateQuery{
		ExcludeIDs: exclude,
		Limit:      strategyFetchLimit,
	}

	switch strategy {
	case entity.StrategyFollowed:
		q.OwnerIDs = capStrings(profile.FollowedUsers, followedOwnerLimit)
	case entity.StrategyEngagedCreators:
		q.OwnerIDs = capStrings(profile.EngagedCreators, engagedOwnerLimit)
	case entity.StrategyPopular:
		q.MinLikeCount = popularMinLikes
	case entity.StrategyDiscovery:
		q.Limit = discoveryFetchLimit
	}

	return uc.feedRepo.GetCandidates(q)
}

func (uc *feedUseCase) assemblePost(userID string, post *entity.Post) (*entity.FeedPostPayload, error) {
	isLiked := false
	isSaved := false
	if userID != "" {
		var err error
		isLiked, err = uc.feedRepo.IsPostLiked(userID, post.ID)
		if err != nil {
			uc.logger.Warn("Failed to check like status: %v", err)
		}
		isSaved, err = uc.feedRepo.IsPostSaved(userID, post.ID)
		if err != nil {
			uc.logger.Warn("Failed to check save status: %v", err)
		}
	}

	items, err := uc.feedRepo.GetPostItems(post.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch post items: %w", err)
	}

	likedItems := map[string]bool{}
	if userID != "" && len(items) > 0 {
		itemIDs := make([]string, len(items))
		for i, item := range items {
			itemIDs[i] = item.ID
		}
		likedItems, err = uc.feedRepo.GetLikedItemIDs(userID, itemIDs)
		if err != nil {
			uc.logger.Warn("Failed to check liked items: %v", err)
			likedItems = map[string]bool{}
		}
	}

	itemPayloads := make([]entity.FeedItemPayload, len(items))
	for i, item := range items {
		itemPayloads[i] = entity.FeedItemPayload{
			ID:         item.ID,
			Title:      item.Title,
			ImageURL:   uc.resolveMedia(item.ImageURL),
			ProductURL: item.ProductURL,
			Price:      item.Price,
			Seller:     item.Seller,
			LikeCount:  item.LikeCount,
			IsLiked:    likedItems[item.ID],
		}
	}

	owner := post.Owner
	if owner.AvatarURL != nil {
		resolved := uc.resolveMedia(*owner.AvatarURL)
		owner.AvatarURL = &resolved
	}

	return &entity.FeedPostPayload{
		ID:              post.ID,
		ImageURL:        uc.resolveMedia(post.ImageURL),
		Caption:         post.Caption,
		MusicPreviewURL: post.MusicPreviewURL,
		LikeCount:       post.LikeCount,
		IsLiked:         isLiked,
		IsSaved:         isSaved,
		CommentCount:    post.CommentCount,
		Owner:           owner,
		Items:           itemPayloads,
	}, nil
}

func (uc *feedUseCase) drawStrategy(profile entity.PreferenceProfile) entity.Strategy {
	uc.rngMu.Lock()
	defer uc.rngMu.Unlock()
	return selectStrategy(profile, uc.rng)
}

func (uc *feedUseCase) pickCandidate(scored []entity.ScoredPost) *entity.Post {
	uc.rngMu.Lock()
	defer uc.rngMu.Unlock()
	return pickFromTop(scored, uc.rng)
}

func (uc *feedUseCase) resolveMedia(ref string) string {
	if uc.media == nil {
		return ref
	}
	return uc.media.ResolveURL(ref)
}

func capStrings(values []string, limit int) []string {
	if len(values) > limit {
		return values[:limit]
	}
	return values
}
