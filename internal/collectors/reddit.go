package collectors

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/aditya20-b/social-media-osint/internal/models"
)

const (
	redditPublicURL  = "https://www.reddit.com"
	redditUserAgent  = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	redditMaxPerPage = 100

	maxRetries     = 5
	initialBackoff = 1 * time.Second
	maxBackoff     = 32 * time.Second
)

// RedditSearchOptions narrow a public search. Zero values fall back to
// searching r/all by relevance over the past week.
type RedditSearchOptions struct {
	Subreddit  string
	Sort       string
	TimeFilter string
}

// RedditCollector reads Reddit's public JSON endpoints. No credentials
// are required; every public page has a .json rendition.
type RedditCollector struct {
	client    *http.Client
	userAgent string
}

// NewRedditCollector builds a collector with the given request timeout.
func NewRedditCollector(timeout time.Duration) *RedditCollector {
	return &RedditCollector{
		client:    &http.Client{Timeout: timeout},
		userAgent: redditUserAgent,
	}
}

// Search queries the public search endpoint for posts matching the
// keyword and maps them to the uniform post record.
func (rc *RedditCollector) Search(ctx context.Context, keyword string, limit int, opts RedditSearchOptions) ([]models.Post, error) {
	if opts.Subreddit == "" {
		opts.Subreddit = "all"
	}
	if opts.Sort == "" {
		opts.Sort = "relevance"
	}
	if opts.TimeFilter == "" {
		opts.TimeFilter = "week"
	}
	if limit <= 0 || limit > redditMaxPerPage {
		limit = redditMaxPerPage
	}

	endpoint := fmt.Sprintf("%s/r/%s/search.json", redditPublicURL, opts.Subreddit)
	params := url.Values{}
	params.Set("q", keyword)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("sort", opts.Sort)
	params.Set("t", opts.TimeFilter)
	params.Set("restrict_sr", strconv.FormatBool(opts.Subreddit != "all"))

	body, err := rc.fetchWithBackoff(ctx, endpoint+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	return parseRedditListing(body, limit)
}

// HotPosts fetches the current hot listing of a subreddit.
func (rc *RedditCollector) HotPosts(ctx context.Context, subreddit string, limit int) ([]models.Post, error) {
	if limit <= 0 || limit > redditMaxPerPage {
		limit = redditMaxPerPage
	}

	endpoint := fmt.Sprintf("%s/r/%s/hot.json?limit=%d", redditPublicURL, subreddit, limit)
	body, err := rc.fetchWithBackoff(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	return parseRedditListing(body, limit)
}

func (rc *RedditCollector) fetchWithBackoff(ctx context.Context, rawURL string) ([]byte, error) {
	backoff := initialBackoff

	for attempt := 1; attempt <= maxRetries; attempt++ {
		body, retryable, err := rc.fetch(ctx, rawURL)
		if err == nil {
			return body, nil
		}
		if !retryable {
			return nil, err
		}

		slog.Warn("[RedditCollector] Retrying request",
			slog.Int("attempt", attempt), slog.Duration("backoff", backoff))

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}

		backoff *= 2
		if backoff > maxBackoff {
			backoff = maxBackoff
		}
	}

	return nil, &RateLimitError{Platform: "reddit", RetryAfter: backoff}
}

func (rc *RedditCollector) fetch(ctx context.Context, rawURL string) (body []byte, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, false, err
	}
	req.Header.Set("User-Agent", rc.userAgent)

	resp, err := rc.client.Do(req)
	if err != nil {
		return nil, true, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, false, err
		}
		return body, false, nil
	case http.StatusTooManyRequests:
		return nil, true, &RateLimitError{Platform: "reddit"}
	default:
		return nil, false, &APIError{
			Platform:   "reddit",
			Message:    "unexpected response",
			StatusCode: resp.StatusCode,
		}
	}
}

type redditListing struct {
	Data struct {
		Children []struct {
			Data redditPost `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

type redditPost struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Selftext    string  `json:"selftext"`
	Author      string  `json:"author"`
	Score       int     `json:"score"`
	UpvoteRatio float64 `json:"upvote_ratio"`
	NumComments int     `json:"num_comments"`
	CreatedUTC  float64 `json:"created_utc"`
	Permalink   string  `json:"permalink"`
	Subreddit   string  `json:"subreddit"`
}

func parseRedditListing(body []byte, limit int) ([]models.Post, error) {
	var listing redditListing
	if err := json.Unmarshal(body, &listing); err != nil {
		return nil, fmt.Errorf("[RedditCollector] failed to parse listing: %w", err)
	}

	posts := make([]models.Post, 0, len(listing.Data.Children))
	for _, child := range listing.Data.Children {
		if len(posts) == limit {
			break
		}
		posts = append(posts, mapRedditPost(child.Data))
	}
	return posts, nil
}

func mapRedditPost(rp redditPost) models.Post {
	author := rp.Author
	if author == "" {
		author = "[deleted]"
	}

	return models.Post{
		Platform:    "reddit",
		ID:          rp.ID,
		Title:       rp.Title,
		Text:        rp.Selftext,
		FullText:    rp.Title + ". " + rp.Selftext,
		Author:      author,
		Score:       rp.Score,
		UpvoteRatio: rp.UpvoteRatio,
		NumComments: rp.NumComments,
		CreatedAt:   time.Unix(int64(rp.CreatedUTC), 0).UTC().Format(time.RFC3339),
		URL:         "https://reddit.com" + rp.Permalink,
		Subreddit:   rp.Subreddit,
	}
}
