package collectors

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/aditya20-b/social-media-osint/internal/models"
)

const (
	twitterAPIURL     = "https://api.twitter.com/2"
	twitterMaxResults = 100
	twitterMinResults = 10
)

// TwitterCollector queries the v2 recent-search endpoint with a bearer
// token.
type TwitterCollector struct {
	bearerToken string
	client      *http.Client
}

// NewTwitterCollector builds the collector; it returns an AuthError
// when no bearer token is configured.
func NewTwitterCollector(bearerToken string, timeout time.Duration) (*TwitterCollector, error) {
	if bearerToken == "" {
		return nil, &AuthError{Platform: "twitter", Message: "missing bearer token"}
	}

	return &TwitterCollector{
		bearerToken: bearerToken,
		client:      &http.Client{Timeout: timeout},
	}, nil
}

type twitterSearchResponse struct {
	Data []struct {
		ID            string `json:"id"`
		Text          string `json:"text"`
		AuthorID      string `json:"author_id"`
		CreatedAt     string `json:"created_at"`
		PublicMetrics struct {
			RetweetCount int `json:"retweet_count"`
			ReplyCount   int `json:"reply_count"`
			LikeCount    int `json:"like_count"`
			QuoteCount   int `json:"quote_count"`
		} `json:"public_metrics"`
	} `json:"data"`
}

// Search fetches recent tweets matching the keyword, excluding
// retweets, and maps them to the uniform post record.
func (tc *TwitterCollector) Search(ctx context.Context, keyword string, limit int) ([]models.Post, error) {
	if limit > twitterMaxResults {
		limit = twitterMaxResults
	}
	if limit < twitterMinResults {
		limit = twitterMinResults
	}

	params := url.Values{}
	params.Set("query", keyword+" -is:retweet lang:en")
	params.Set("max_results", strconv.Itoa(limit))
	params.Set("tweet.fields", "created_at,public_metrics,author_id")

	endpoint := fmt.Sprintf("%s/tweets/search/recent?%s", twitterAPIURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+tc.bearerToken)

	resp, err := tc.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("[TwitterCollector] request failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, &AuthError{Platform: "twitter", Message: "bearer token rejected"}
	case http.StatusTooManyRequests:
		retryAfter := parseRetryAfter(resp.Header.Get("Retry-After"))
		return nil, &RateLimitError{Platform: "twitter", RetryAfter: retryAfter}
	default:
		return nil, &APIError{Platform: "twitter", Message: "unexpected response", StatusCode: resp.StatusCode}
	}

	var searchResp twitterSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, fmt.Errorf("[TwitterCollector] failed to parse response: %w", err)
	}

	posts := make([]models.Post, 0, len(searchResp.Data))
	for _, tweet := range searchResp.Data {
		posts = append(posts, models.Post{
			Platform:  "twitter",
			ID:        tweet.ID,
			Text:      tweet.Text,
			Author:    tweet.AuthorID,
			CreatedAt: tweet.CreatedAt,
			URL:       "https://twitter.com/i/web/status/" + tweet.ID,
			Retweets:  tweet.PublicMetrics.RetweetCount,
			Replies:   tweet.PublicMetrics.ReplyCount,
			Likes:     tweet.PublicMetrics.LikeCount,
			Quotes:    tweet.PublicMetrics.QuoteCount,
		})
	}
	return posts, nil
}

func parseRetryAfter(header string) time.Duration {
	seconds, err := strconv.Atoi(header)
	if err != nil || seconds <= 0 {
		return time.Minute
	}
	return time.Duration(seconds) * time.Second
}
