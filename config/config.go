package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/subosito/gotenv"
)

// LoadEnv loads environment variables from the env file for the given
// environment, falling back to the OS environment when no file exists.
func LoadEnv(env string) {
	envFile := "config/envs/.env." + env
	if err := gotenv.Load(envFile); err != nil {
		slog.Warn("No .env file found, using OS environment")
	}
}

// Settings holds every knob the application reads from the environment,
// with documented defaults for the optional ones.
type Settings struct {
	// Reddit API
	RedditClientID     string
	RedditClientSecret string
	RedditUserAgent    string

	// Twitter/X API
	TwitterBearerToken string

	// News API
	NewsAPIKey string

	// Collection
	MaxPostsPerPlatform int
	RequestTimeout      time.Duration

	// Cache
	CacheEnabled   bool
	CacheExpiry    time.Duration
	ValkeyAddress  string
	ValkeyPassword string
	ValkeyTLS      bool

	// Output
	OutputDirectory string
}

// FromEnv builds Settings from the current environment.
func FromEnv() Settings {
	return Settings{
		RedditClientID:      os.Getenv("REDDIT_CLIENT_ID"),
		RedditClientSecret:  os.Getenv("REDDIT_CLIENT_SECRET"),
		RedditUserAgent:     envString("REDDIT_USER_AGENT", "go:osint-analyzer:v1.0"),
		TwitterBearerToken:  os.Getenv("TWITTER_BEARER_TOKEN"),
		NewsAPIKey:          os.Getenv("NEWS_API_KEY"),
		MaxPostsPerPlatform: envInt("MAX_POSTS_PER_PLATFORM", 100),
		RequestTimeout:      time.Duration(envInt("REQUEST_TIMEOUT", 30)) * time.Second,
		CacheEnabled:        envBool("CACHE_ENABLED", true),
		CacheExpiry:         time.Duration(envInt("CACHE_EXPIRY_HOURS", 24)) * time.Hour,
		ValkeyAddress:       os.Getenv("VALKEY_INIT_ADDRESS"),
		ValkeyPassword:      os.Getenv("VALKEY_PASSWORD"),
		ValkeyTLS:           envBool("VALKEY_TLS", false),
		OutputDirectory:     envString("OUTPUT_DIRECTORY", "./output/reports"),
	}
}

// HasRedditAuth reports whether OAuth credentials for Reddit are set.
// The public JSON collector works without them.
func (s Settings) HasRedditAuth() bool {
	return s.RedditClientID != "" && s.RedditClientSecret != ""
}

// HasTwitterAuth reports whether a Twitter bearer token is set.
func (s Settings) HasTwitterAuth() bool {
	return s.TwitterBearerToken != ""
}

// HasNewsAuth reports whether a NewsAPI key is set.
func (s Settings) HasNewsAuth() bool {
	return s.NewsAPIKey != ""
}

// EnabledPlatforms lists the platforms usable with the current
// credentials. Reddit is always available through the public endpoints.
func (s Settings) EnabledPlatforms() []string {
	platforms := []string{"reddit"}
	if s.HasTwitterAuth() {
		platforms = append(platforms, "twitter")
	}
	if s.HasNewsAuth() {
		platforms = append(platforms, "news")
	}
	return platforms
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v == "true" || v == "1"
}
