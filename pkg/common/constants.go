package common

const (
	IntentMarket = "MARKET"
	IntentOther  = "OTHER"

	TopicMarket = "MARKET"

	PodcastUploadedBy    = "stock-ai-tool"
	PodcastStatus        = "published"
	PodcastUploadPath    = "/podcasts/upload"
	PodcastDefaultServer = "https://swd-stockintel.onrender.com"
)
