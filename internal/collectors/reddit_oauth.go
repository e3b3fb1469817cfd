package collectors

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/aditya20-b/social-media-osint/internal/models"
)

const (
	redditAuthURL = "https://www.reddit.com/api/v1/access_token"
	redditAPIURL  = "https://oauth.reddit.com"
)

// RedditOAuthCollector talks to the authenticated Reddit API using
// client-credentials OAuth. It offers the same search surface as the
// public collector but with the higher authenticated rate limits.
type RedditOAuthCollector struct {
	config    *clientcredentials.Config
	client    *http.Client
	userAgent string
	mu        sync.Mutex
}

// NewRedditOAuthCollector builds the collector; it returns an AuthError
// when credentials are missing.
func NewRedditOAuthCollector(clientID, clientSecret, userAgent string) (*RedditOAuthCollector, error) {
	if clientID == "" || clientSecret == "" {
		return nil, &AuthError{Platform: "reddit", Message: "missing client credentials"}
	}

	conf := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     redditAuthURL,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}

	return &RedditOAuthCollector{
		config:    conf,
		client:    conf.Client(context.Background()),
		userAgent: userAgent,
	}, nil
}

// refreshClient rebuilds the token-bearing HTTP client after a 401.
func (rc *RedditOAuthCollector) refreshClient() {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.client = rc.config.Client(context.Background())
}

// Search queries the authenticated search endpoint for the keyword.
func (rc *RedditOAuthCollector) Search(ctx context.Context, keyword string, limit int, opts RedditSearchOptions) ([]models.Post, error) {
	if opts.Subreddit == "" {
		opts.Subreddit = "all"
	}
	if opts.Sort == "" {
		opts.Sort = "relevance"
	}
	if limit <= 0 || limit > redditMaxPerPage {
		limit = redditMaxPerPage
	}

	endpoint, err := url.Parse(fmt.Sprintf("%s/r/%s/search", redditAPIURL, opts.Subreddit))
	if err != nil {
		return nil, fmt.Errorf("[RedditOAuthCollector] failed to parse URL: %w", err)
	}
	params := endpoint.Query()
	params.Set("q", keyword)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("sort", opts.Sort)
	endpoint.RawQuery = params.Encode()

	body, err := rc.fetch(ctx, endpoint.String(), true)
	if err != nil {
		return nil, err
	}

	return parseRedditListing(body, limit)
}

func (rc *RedditOAuthCollector) fetch(ctx context.Context, rawURL string, allowRefresh bool) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", rc.userAgent)

	resp, err := rc.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return io.ReadAll(resp.Body)
	case http.StatusUnauthorized:
		if allowRefresh {
			slog.Warn("[RedditOAuthCollector] Token expired - refreshing and retrying")
			rc.refreshClient()
			return rc.fetch(ctx, rawURL, false)
		}
		return nil, &AuthError{Platform: "reddit", Message: "token rejected"}
	case http.StatusTooManyRequests:
		return nil, &RateLimitError{Platform: "reddit", RetryAfter: initialBackoff}
	default:
		return nil, &APIError{Platform: "reddit", Message: "unexpected response", StatusCode: resp.StatusCode}
	}
}
