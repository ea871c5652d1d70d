package usecase

import (
	"math/rand"
	"sort"
	"time"

	"sourced-feed/services/feed/internal/entity"
)

const (
	commentWeight    = 3
	topCandidatePool = 5
)

// recencyMultiplier decays a post's weight by half every 24 hours,
// asymptotically approaching but never reaching zero.
func recencyMultiplier(createdAt, now time.Time) float64 {
	hours := now.Sub(createdAt).Hours()
	if hours < 0 {
		hours = 0
	}
	return 1.0 / (1.0 + hours/24.0)
}

// engagementScore ranks a candidate: likes count once, comments three
// times, both scaled by recency.
func engagementScore(post *entity.Post, now time.Time) float64 {
	raw := float64(post.LikeCount) + float64(post.CommentCount)*commentWeight
	return raw * recencyMultiplier(post.CreatedAt, now)
}

// scoreAndRank scores every candidate and sorts descending by score.
func scoreAndRank(posts []entity.Post, now time.Time) []entity.ScoredPost {
	scored := make([]entity.ScoredPost, len(posts))
	for i := range posts {
		scored[i] = entity.ScoredPost{
			Post:  &posts[i],
			Score: engagementScore(&posts[i], now),
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}

// pickFromTop chooses uniformly among the top five scorers so consecutive
// requests over a similar candidate set do not repeat the same post.
func pickFromTop(scored []entity.ScoredPost, rng *rand.Rand) *entity.Post {
	if len(scored) == 0 {
		return nil
	}

	pool := topCandidatePool
	if len(scored) < pool {
		pool = len(scored)
	}

	return scored[rng.Intn(pool)].Post
}
