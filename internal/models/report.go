package models

// ReportMetadata describes one analysis run.
type ReportMetadata struct {
	ReportID    string   `json:"report_id"`
	Keyword     string   `json:"keyword"`
	GeneratedAt string   `json:"generated_at"`
	TotalPosts  int      `json:"total_posts"`
	Platforms   []string `json:"platforms"`
}

// TopPosts groups the highest-ranked posts per sentiment.
type TopPosts struct {
	Positive []AnalyzedPost `json:"positive"`
	Negative []AnalyzedPost `json:"negative"`
}

// Report is the full serializable output of an analysis run.
type Report struct {
	Metadata              ReportMetadata          `json:"metadata"`
	SentimentDistribution Distribution            `json:"sentiment_distribution"`
	PlatformSentiment     map[string]Distribution `json:"platform_sentiment"`
	AverageSentiment      AverageSentiment        `json:"average_sentiment"`
	TopPosts              TopPosts                `json:"top_posts"`
	AllPosts              []AnalyzedPost          `json:"all_posts"`
}
