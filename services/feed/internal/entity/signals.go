package entity

// Strategy names a content-sourcing policy for the candidate fetch.
type Strategy string

const (
	StrategyFollowed        Strategy = "followed"
	StrategyEngagedCreators Strategy = "engaged_creators"
	StrategyPopular         Strategy = "popular"
	StrategyDiscovery       Strategy = "discovery"
)

// PreferenceProfile is derived fresh per request from a viewer's follow
// relations and view history. It is never persisted.
type PreferenceProfile struct {
	FollowedUsers      []string `json:"followed_users"`
	EngagedCreators    []string `json:"engaged_creators"`
	RecentInteractions []string `json:"recent_interactions"`
	AvgViewTimeMs      float64  `json:"avg_view_time_ms"`
}

func (p PreferenceProfile) HasFollows() bool {
	return len(p.FollowedUsers) > 0
}

func (p PreferenceProfile) HasEngagedCreators() bool {
	return len(p.EngagedCreators) > 0
}
