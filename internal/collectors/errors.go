package collectors

import (
	"fmt"
	"time"
)

// APIError reports a failed platform API request.
type APIError struct {
	Platform   string
	Message    string
	StatusCode int
}

func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] API error: %s (status %d)", e.Platform, e.Message, e.StatusCode)
}

// RateLimitError reports an exhausted rate limit after retries.
type RateLimitError struct {
	Platform   string
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("[%s] rate limit exceeded, retry after %s", e.Platform, e.RetryAfter)
}

// AuthError reports missing or rejected credentials for a platform.
type AuthError struct {
	Platform string
	Message  string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("[%s] authentication failed: %s", e.Platform, e.Message)
}
