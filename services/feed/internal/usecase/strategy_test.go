package usecase

import (
	"math/rand"
	"testing"

	"sourced-feed/services/feed/internal/entity"

	"github.com/stretchr/testify/assert"
)

func TestEligibleStrategies_EmptyProfile(t *testing.T) {
	strategies := eligibleStrategies(entity.PreferenceProfile{})

	assert.Len(t, strategies, 2)
	assert.Equal(t, entity.StrategyPopular, strategies[0].strategy)
	assert.Equal(t, entity.StrategyDiscovery, strategies[1].strategy)
}

func TestEligibleStrategies_FullProfile(t *testing.T) {
	profile := entity.PreferenceProfile{
		FollowedUsers:   []string{"creator-1"},
		EngagedCreators: []string{"creator-2"},
	}

	strategies := eligibleStrategies(profile)

	assert.Len(t, strategies, 4)
	assert.Equal(t, entity.StrategyFollowed, strategies[0].strategy)
	assert.Equal(t, entity.StrategyEngagedCreators, strategies[1].strategy)
	assert.Equal(t, entity.StrategyPopular, strategies[2].strategy)
	assert.Equal(t, entity.StrategyDiscovery, strategies[3].strategy)
}

func TestSelectStrategy_NewViewerNeverPersonalized(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	profile := entity.PreferenceProfile{}

	for i := 0; i < 10000; i++ {
		strategy := selectStrategy(profile, rng)
		if strategy != entity.StrategyPopular && strategy != entity.StrategyDiscovery {
			t.Fatalf("empty profile produced strategy %s", strategy)
		}
	}
}

func TestSelectStrategy_FollowsOnly(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	profile := entity.PreferenceProfile{FollowedUsers: []string{"creator-1"}}

	for i := 0; i < 10000; i++ {
		strategy := selectStrategy(profile, rng)
		assert.NotEqual(t, entity.StrategyEngagedCreators, strategy)
	}
}

func TestSelectStrategy_Distribution(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	profile := entity.PreferenceProfile{
		FollowedUsers:   []string{"creator-1"},
		EngagedCreators: []string{"creator-2"},
	}

	const draws = 10000
	counts := map[entity.Strategy]int{}
	for i := 0; i < draws; i++ {
		counts[selectStrategy(profile, rng)]++
	}

	// Configured weights are 40/30/20/10; allow a few percent of
	// statistical tolerance over 10k draws.
	assert.InDelta(t, 0.40, float64(counts[entity.StrategyFollowed])/draws, 0.03)
	assert.InDelta(t, 0.30, float64(counts[entity.StrategyEngagedCreators])/draws, 0.03)
	assert.InDelta(t, 0.20, float64(counts[entity.StrategyPopular])/draws, 0.03)
	assert.InDelta(t, 0.10, float64(counts[entity.StrategyDiscovery])/draws, 0.03)
}

func TestSelectStrategy_AllDrawsProduceEligibleStrategy(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	profile := entity.PreferenceProfile{EngagedCreators: []string{"creator-9"}}

	seen := map[entity.Strategy]bool{}
	for i := 0; i < 10000; i++ {
		seen[selectStrategy(profile, rng)] = true
	}

	assert.True(t, seen[entity.StrategyEngagedCreators])
	assert.True(t, seen[entity.StrategyPopular])
	assert.True(t, seen[entity.StrategyDiscovery])
	assert.False(t, seen[entity.StrategyFollowed])
}
