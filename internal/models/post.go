package models

// Post is the uniform record every collector produces, regardless of
// platform. Optional fields stay zero-valued when a platform does not
// supply them.
type Post struct {
	Platform  string `json:"platform"`
	ID        string `json:"id,omitempty"`
	Title     string `json:"title,omitempty"`
	Text      string `json:"text"`
	FullText  string `json:"full_text,omitempty"`
	Author    string `json:"author,omitempty"`
	URL       string `json:"url,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`

	// Reddit metrics
	Subreddit   string  `json:"subreddit,omitempty"`
	Score       int     `json:"score,omitempty"`
	UpvoteRatio float64 `json:"upvote_ratio,omitempty"`
	NumComments int     `json:"num_comments,omitempty"`

	// Twitter metrics
	Retweets int `json:"retweets,omitempty"`
	Replies  int `json:"replies,omitempty"`
	Likes    int `json:"likes,omitempty"`
	Quotes   int `json:"quotes,omitempty"`

	// News metadata
	Source string `json:"source,omitempty"`
}

// Content returns the text the analyzer should score: the combined
// full text when present, otherwise the body text.
func (p Post) Content() string {
	if p.FullText != "" {
		return p.FullText
	}
	return p.Text
}

// PlatformTag returns the platform label, substituting "unknown" when
// the collector left it empty.
func (p Post) PlatformTag() string {
	if p.Platform == "" {
		return "unknown"
	}
	return p.Platform
}

// AnalyzedPost is a Post with its sentiment analysis attached. The
// analyzer never mutates the input Post; it returns new AnalyzedPost
// records instead.
type AnalyzedPost struct {
	Post
	SentimentAnalysis SentimentResult `json:"sentiment_analysis"`
}
