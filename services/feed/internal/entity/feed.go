package entity

// FeedItemPayload is the wire shape of a product item on a served post.
type FeedItemPayload struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	ImageURL   string  `json:"image_url"`
	ProductURL *string `json:"product_url"`
	Price      *string `json:"price"`
	Seller     *string `json:"seller"`
	LikeCount  int     `json:"like_count"`
	IsLiked    bool    `json:"is_liked"`
}

// FeedPostPayload is the fully enriched post returned by /feed/next.
type FeedPostPayload struct {
	ID              string            `json:"id"`
	ImageURL        string            `json:"image_url"`
	Caption         *string           `json:"caption"`
	MusicPreviewURL *string           `json:"music_preview_url"`
	LikeCount       int               `json:"like_count"`
	IsLiked         bool              `json:"is_liked"`
	IsSaved         bool              `json:"is_saved"`
	CommentCount    int               `json:"comment_count"`
	Owner           Owner             `json:"owner"`
	Items           []FeedItemPayload `json:"items"`
}

// AlgorithmInfo describes how a post was selected, for client diagnostics.
type AlgorithmInfo struct {
	Strategy            Strategy `json:"strategy"`
	CandidatesEvaluated int      `json:"candidates_evaluated"`
	TotalFetched        int      `json:"total_fetched"`
	Personalized        bool     `json:"personalized"`
}

// FeedResult is the outcome of one serving request. Post is nil only in
// the terminal "no content available" state, which is not an error.
type FeedResult struct {
	Post          *FeedPostPayload `json:"post"`
	Message       string           `json:"message,omitempty"`
	AlgorithmInfo *AlgorithmInfo   `json:"algorithm_info,omitempty"`
}

// PreferenceSummary is the diagnostic projection of a viewer's profile.
type PreferenceSummary struct {
	UserID                   string  `json:"user_id"`
	FollowingCount           int     `json:"following_count"`
	EngagedCreatorsCount     int     `json:"engaged_creators_count"`
	AvgViewTimeMs            float64 `json:"avg_view_time_ms"`
	RecentInteractionsCount  int     `json:"recent_interactions_count"`
	Personalized             bool    `json:"personalized"`
}
