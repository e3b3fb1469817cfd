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
	newsAPIURL     = "https://newsapi.org/v2"
	newsMaxPerPage = 100
)

// NewsCollector queries NewsAPI for articles.
type NewsCollector struct {
	apiKey string
	client *http.Client
}

// NewNewsCollector builds the collector; it returns an AuthError when
// no API key is configured.
func NewNewsCollector(apiKey string, timeout time.Duration) (*NewsCollector, error) {
	if apiKey == "" {
		return nil, &AuthError{Platform: "news", Message: "missing API key"}
	}

	return &NewsCollector{
		apiKey: apiKey,
		client: &http.Client{Timeout: timeout},
	}, nil
}

type newsAPIResponse struct {
	Status       string `json:"status"`
	TotalResults int    `json:"totalResults"`
	Articles     []struct {
		Source struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"source"`
		Author      string `json:"author"`
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		PublishedAt string `json:"publishedAt"`
		Content     string `json:"content"`
	} `json:"articles"`
}

// Search fetches articles matching the keyword from the everything
// endpoint, newest first.
func (nc *NewsCollector) Search(ctx context.Context, keyword string, limit int) ([]models.Post, error) {
	if limit <= 0 || limit > newsMaxPerPage {
		limit = newsMaxPerPage
	}

	params := url.Values{}
	params.Set("q", keyword)
	params.Set("pageSize", strconv.Itoa(limit))
	params.Set("sortBy", "publishedAt")
	params.Set("language", "en")

	return nc.fetch(ctx, fmt.Sprintf("%s/everything?%s", newsAPIURL, params.Encode()))
}

// TopHeadlines fetches the current US top headlines.
func (nc *NewsCollector) TopHeadlines(ctx context.Context, limit int) ([]models.Post, error) {
	if limit <= 0 || limit > newsMaxPerPage {
		limit = newsMaxPerPage
	}

	params := url.Values{}
	params.Set("country", "us")
	params.Set("pageSize", strconv.Itoa(limit))

	return nc.fetch(ctx, fmt.Sprintf("%s/top-headlines?%s", newsAPIURL, params.Encode()))
}

func (nc *NewsCollector) fetch(ctx context.Context, endpoint string) ([]models.Post, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Api-Key", nc.apiKey)

	resp, err := nc.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("[NewsCollector] request failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		return nil, &AuthError{Platform: "news", Message: "invalid API key"}
	case http.StatusTooManyRequests:
		return nil, &RateLimitError{Platform: "news", RetryAfter: time.Minute}
	default:
		return nil, &APIError{Platform: "news", Message: "unexpected response", StatusCode: resp.StatusCode}
	}

	var newsResp newsAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&newsResp); err != nil {
		return nil, fmt.Errorf("[NewsCollector] failed to parse response: %w", err)
	}

	posts := make([]models.Post, 0, len(newsResp.Articles))
	for _, article := range newsResp.Articles {
		text := article.Description
		if article.Content != "" {
			text = article.Content
		}

		posts = append(posts, models.Post{
			Platform:  "news",
			Title:     article.Title,
			Text:      text,
			FullText:  article.Title + ". " + text,
			Author:    article.Author,
			URL:       article.URL,
			CreatedAt: article.PublishedAt,
			Source:    article.Source.Name,
		})
	}
	return posts, nil
}
