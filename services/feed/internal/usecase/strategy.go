package usecase

import (
	"math/rand"

	"sourced-feed/services/feed/internal/entity"
)

const (
	weightFollowed        = 40
	weightEngagedCreators = 30
	weightPopular         = 20
	weightDiscovery       = 10
)

type weightedStrategy struct {
	strategy entity.Strategy
	weight   int
}

// eligibleStrategies lists the strategies whose prerequisite signals exist.
// Popular and discovery never require signals, so the list is never empty.
func eligibleStrategies(profile entity.PreferenceProfile) []weightedStrategy {
	var strategies []weightedStrategy

	if profile.HasFollows() {
		strategies = append(strategies, weightedStrategy{entity.StrategyFollowed, weightFollowed})
	}
	if profile.HasEngagedCreators() {
		strategies = append(strategies, weightedStrategy{entity.StrategyEngagedCreators, weightEngagedCreators})
	}

	strategies = append(strategies,
		weightedStrategy{entity.StrategyPopular, weightPopular},
		weightedStrategy{entity.StrategyDiscovery, weightDiscovery},
	)

	return strategies
}

// selectStrategy draws uniformly in [0, sum of eligible weights) and walks
// the cumulative weights. Each request draws independently; there is no
// session affinity between consecutive calls.
func selectStrategy(profile entity.PreferenceProfile, rng *rand.Rand) entity.Strategy {
	strategies := eligibleStrategies(profile)

	total := 0
	for _, s := range strategies {
		total += s.weight
	}

	draw := rng.Float64() * float64(total)

	cumulative := 0
	for _, s := range strategies {
		cumulative += s.weight
		if draw <= float64(cumulative) {
			return s.strategy
		}
	}

	// Defensive fallback only; the walk above always terminates.
	return entity.StrategyDiscovery
}
