package collectors

import (
	"errors"
	"testing"
	"time"
)

const sampleListing = `{
  "kind": "Listing",
  "data": {
    "children": [
      {
        "kind": "t3",
        "data": {
          "id": "abc123",
          "title": "Great release",
          "selftext": "The new version works well.",
          "author": "gopher",
          "score": 42,
          "upvote_ratio": 0.93,
          "num_comments": 7,
          "created_utc": 1700000000.0,
          "permalink": "/r/golang/comments/abc123/great_release/",
          "subreddit": "golang"
        }
      },
      {
        "kind": "t3",
        "data": {
          "id": "def456",
          "title": "Link post",
          "selftext": "",
          "author": "",
          "created_utc": 0,
          "permalink": "/r/golang/comments/def456/link_post/",
          "subreddit": "golang"
        }
      }
    ]
  }
}`

func TestParseRedditListing(t *testing.T) {
	posts, err := parseRedditListing([]byte(sampleListing), 100)
	if err != nil {
		t.Fatalf("parseRedditListing: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("got %d posts, want 2", len(posts))
	}

	first := posts[0]
	if first.Platform != "reddit" || first.ID != "abc123" {
		t.Errorf("unexpected mapping: %+v", first)
	}
	if first.FullText != "Great release. The new version works well." {
		t.Errorf("full_text = %q", first.FullText)
	}
	if first.URL != "https://reddit.com/r/golang/comments/abc123/great_release/" {
		t.Errorf("url = %q", first.URL)
	}
	if first.CreatedAt != time.Unix(1700000000, 0).UTC().Format(time.RFC3339) {
		t.Errorf("created_at = %q", first.CreatedAt)
	}
	if first.Score != 42 || first.NumComments != 7 {
		t.Errorf("metrics not mapped: %+v", first)
	}

	// missing author falls back to the deleted marker
	if posts[1].Author != "[deleted]" {
		t.Errorf("author default = %q, want [deleted]", posts[1].Author)
	}
}

func TestParseRedditListingHonorsLimit(t *testing.T) {
	posts, err := parseRedditListing([]byte(sampleListing), 1)
	if err != nil {
		t.Fatalf("parseRedditListing: %v", err)
	}
	if len(posts) != 1 {
		t.Errorf("got %d posts, want 1", len(posts))
	}
}

func TestParseRedditListingInvalidJSON(t *testing.T) {
	if _, err := parseRedditListing([]byte("not json"), 10); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestCollectorErrors(t *testing.T) {
	var err error = &APIError{Platform: "reddit", Message: "unexpected response", StatusCode: 500}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatal("errors.As should match *APIError")
	}
	if apiErr.StatusCode != 500 {
		t.Errorf("status = %d", apiErr.StatusCode)
	}

	rateErr := &RateLimitError{Platform: "twitter", RetryAfter: time.Minute}
	if rateErr.Error() == "" {
		t.Error("RateLimitError should format a message")
	}

	authErr := &AuthError{Platform: "news", Message: "missing API key"}
	if authErr.Error() == "" {
		t.Error("AuthError should format a message")
	}
}

func TestParseRetryAfter(t *testing.T) {
	tests := []struct {
		header string
		want   time.Duration
	}{
		{"30", 30 * time.Second},
		{"", time.Minute},
		{"garbage", time.Minute},
		{"-5", time.Minute},
	}

	for _, tt := range tests {
		if got := parseRetryAfter(tt.header); got != tt.want {
			t.Errorf("parseRetryAfter(%q) = %v, want %v", tt.header, got, tt.want)
		}
	}
}
