package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"sourced-feed/services/feed/internal/entity"
)

const (
	followLimit                = 200
	viewHistoryLimit           = 100
	engagedOwnerLookupLimit    = 50
	recentInteractionsLimit    = 20
	engagementDwellThresholdMs = 3000

	signalsCacheTTL = 2 * time.Minute
)

// preferenceSignals derives the viewer's preference profile from follow
// relations and view history. The second return value reports whether the
// profile was actually computed: on any failure the profile degrades to
// empty defaults and ranking proceeds unpersonalized instead of failing
// the request.
func (uc *feedUseCase) preferenceSignals(userID string) (entity.PreferenceProfile, bool) {
	if cached, ok := uc.cachedSignals(userID); ok {
		return cached, true
	}

	profile := entity.PreferenceProfile{
		FollowedUsers:      []string{},
		EngagedCreators:    []string{},
		RecentInteractions: []string{},
	}

	followed, err := uc.feedRepo.GetFollowedCreators(userID, followLimit)
	if err != nil {
		uc.logger.Warn("Failed to fetch followed creators for %s: %v", userID, err)
		return profile, false
	}
	profile.FollowedUsers = followed

	views, err := uc.feedRepo.GetRecentViews(userID, viewHistoryLimit)
	if err != nil {
		uc.logger.Warn("Failed to fetch view history for %s: %v", userID, err)
		return entity.PreferenceProfile{
			FollowedUsers:      []string{},
			EngagedCreators:    []string{},
			RecentInteractions: []string{},
		}, false
	}

	if len(views) > 0 {
		totalMs := 0
		for _, v := range views {
			totalMs += v.TimeSpentMs
		}
		profile.AvgViewTimeMs = float64(totalMs) / float64(len(views))

		var engagedPosts []string
		for _, v := range views {
			if v.Interacted || v.TimeSpentMs > engagementDwellThresholdMs {
				engagedPosts = append(engagedPosts, v.PostID)
			}
		}

		if len(engagedPosts) > 0 {
			lookup := engagedPosts
			if len(lookup) > engagedOwnerLookupLimit {
				lookup = lookup[:engagedOwnerLookupLimit]
			}

			ownerIDs, err := uc.feedRepo.GetPostOwnerIDs(lookup)
			if err != nil {
				uc.logger.Warn("Failed to resolve engaged post owners for %s: %v", userID, err)
				return entity.PreferenceProfile{
					FollowedUsers:      []string{},
					EngagedCreators:    []string{},
					RecentInteractions: []string{},
				}, false
			}

			profile.EngagedCreators = rankByFrequency(ownerIDs)
		}

		if len(engagedPosts) > recentInteractionsLimit {
			engagedPosts = engagedPosts[:recentInteractionsLimit]
		}
		if engagedPosts != nil {
			profile.RecentInteractions = engagedPosts
		}
	}

	uc.storeSignals(userID, profile)

	return profile, true
}

// rankByFrequency orders distinct creator ids by how often they appear,
// most frequent first. Ties keep encounter order.
func rankByFrequency(ownerIDs []string) []string {
	counts := make(map[string]int)
	var order []string
	for _, id := range ownerIDs {
		if counts[id] == 0 {
			order = append(order, id)
		}
		counts[id]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if order == nil {
		return []string{}
	}
	return order
}

func signalsCacheKey(userID string) string {
	return fmt.Sprintf("feed:signals:%s", userID)
}

func (uc *feedUseCase) cachedSignals(userID string) (entity.PreferenceProfile, bool) {
	if uc.redisClient == nil {
		return entity.PreferenceProfile{}, false
	}

	ctx := context.Background()
	raw, err := uc.redisClient.Get(ctx, signalsCacheKey(userID)).Result()
	if err != nil {
		return entity.PreferenceProfile{}, false
	}

	var profile entity.PreferenceProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		return entity.PreferenceProfile{}, false
	}

	return profile, true
}

func (uc *feedUseCase) storeSignals(userID string, profile entity.PreferenceProfile) {
	if uc.redisClient == nil {
		return
	}

	raw, err := json.Marshal(profile)
	if err != nil {
		return
	}

	ctx := context.Background()
	if err := uc.redisClient.Set(ctx, signalsCacheKey(userID), raw, signalsCacheTTL).Err(); err != nil {
		uc.logger.Warn("Failed to cache signals for %s: %v", userID, err)
	}
}

func (uc *feedUseCase) invalidateSignals(userID string) {
	if uc.redisClient == nil {
		return
	}

	ctx := context.Background()
	if err := uc.redisClient.Del(ctx, signalsCacheKey(userID)).Err(); err != nil {
		uc.logger.Warn("Failed to invalidate signals cache for %s: %v", userID, err)
	}
}
