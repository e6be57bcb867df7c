package topics

const (
	// Odds feed
	OddsFeedUpdates = "odds_feed_updates"
)
