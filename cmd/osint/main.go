package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/aditya20-b/social-media-osint/config"
	"github.com/aditya20-b/social-media-osint/internal/cache"
	"github.com/aditya20-b/social-media-osint/internal/collectors"
	"github.com/aditya20-b/social-media-osint/internal/logging"
	"github.com/aditya20-b/social-media-osint/internal/models"
	"github.com/aditya20-b/social-media-osint/internal/report"
	"github.com/aditya20-b/social-media-osint/internal/sentiment"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	var (
		keyword   = flag.String("keyword", "", "search keyword (required)")
		platforms = flag.String("platforms", "", "comma-separated platforms (default: all enabled)")
		limit     = flag.Int("limit", 0, "max posts per platform (default: MAX_POSTS_PER_PLATFORM)")
		mode      = flag.String("mode", "enhanced", "analysis mode: simple or enhanced")
		topN      = flag.Int("top", 5, "number of top posts per sentiment in the report")
		outDir    = flag.String("out", "", "report output directory (default: OUTPUT_DIRECTORY)")
	)
	flag.Parse()

	if *keyword == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *mode != string(sentiment.ModeSimple) && *mode != string(sentiment.ModeEnhanced) {
		slog.Error("Invalid mode", slog.String("mode", *mode))
		os.Exit(2)
	}

	settings := config.FromEnv()
	if *limit <= 0 {
		*limit = settings.MaxPostsPerPlatform
	}
	if *outDir == "" {
		*outDir = settings.OutputDirectory
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gen := report.NewGenerator(*outDir)
	if err := gen.EnsureOutputDir(); err != nil {
		slog.Error("Failed to prepare output directory", slog.String("error", err.Error()))
		os.Exit(1)
	}

	postCache, err := cache.New(settings)
	if err != nil {
		slog.Warn("Cache unavailable, collecting without it", slog.String("error", err.Error()))
	}
	defer postCache.Close()

	enabled := settings.EnabledPlatforms()
	if *platforms != "" {
		enabled = strings.Split(*platforms, ",")
	}

	posts := collect(ctx, settings, postCache, enabled, *keyword, *limit)
	if len(posts) == 0 {
		slog.Warn("No posts collected", slog.String("keyword", *keyword))
	}

	analyzer := sentiment.New(sentiment.Mode(*mode))
	analyzed := analyzer.AnalyzePosts(posts)

	dist := sentiment.Distribution(analyzed)
	platformSentiment := sentiment.PlatformBreakdown(analyzed)
	average := analyzer.Average(analyzed)
	topPositive := analyzer.TopBySentiment(analyzed, models.SentimentPositive, *topN)
	topNegative := analyzer.TopBySentiment(analyzed, models.SentimentNegative, *topN)

	r := report.Build(*keyword, analyzed, dist, platformSentiment, average, topPositive, topNegative)
	path, err := gen.WriteJSON(r)
	if err != nil {
		slog.Error("Failed to write report", slog.String("error", err.Error()))
		os.Exit(1)
	}

	htmlPath, err := gen.WriteHTML(r)
	if err != nil {
		slog.Error("Failed to write HTML report", slog.String("error", err.Error()))
		os.Exit(1)
	}

	fmt.Println(report.Summary(dist, average))
	slog.Info("Report written",
		slog.String("json", path), slog.String("html", htmlPath), slog.Int("posts", len(analyzed)))
}

// collect gathers posts platform by platform. A failing platform logs a
// warning and contributes nothing; it never aborts the run.
func collect(ctx context.Context, settings config.Settings, postCache *cache.Cache,
	platforms []string, keyword string, limit int,
) []models.Post {
	var posts []models.Post

	for _, platform := range platforms {
		platform = strings.TrimSpace(platform)

		if cached, ok := postCache.GetPosts(ctx, platform, keyword); ok {
			slog.Info("Using cached posts", slog.String("platform", platform), slog.Int("count", len(cached)))
			posts = append(posts, cached...)
			continue
		}

		collected, err := collectPlatform(ctx, settings, platform, keyword, limit)
		if err != nil {
			slog.Warn("Platform collection failed",
				slog.String("platform", platform), slog.String("error", err.Error()))
			continue
		}

		slog.Info("Collected posts", slog.String("platform", platform), slog.Int("count", len(collected)))
		collected = postCache.FilterNew(ctx, collected)
		postCache.StorePosts(ctx, platform, keyword, collected)
		posts = append(posts, collected...)
	}

	return prepare(posts)
}

func collectPlatform(ctx context.Context, settings config.Settings, platform, keyword string, limit int) ([]models.Post, error) {
	switch platform {
	case "reddit":
		if settings.HasRedditAuth() {
			rc, err := collectors.NewRedditOAuthCollector(
				settings.RedditClientID, settings.RedditClientSecret, settings.RedditUserAgent)
			if err != nil {
				return nil, err
			}
			return rc.Search(ctx, keyword, limit, collectors.RedditSearchOptions{})
		}
		rc := collectors.NewRedditCollector(settings.RequestTimeout)
		return rc.Search(ctx, keyword, limit, collectors.RedditSearchOptions{})

	case "twitter":
		tc, err := collectors.NewTwitterCollector(settings.TwitterBearerToken, settings.RequestTimeout)
		if err != nil {
			return nil, err
		}
		return tc.Search(ctx, keyword, limit)

	case "news":
		nc, err := collectors.NewNewsCollector(settings.NewsAPIKey, settings.RequestTimeout)
		if err != nil {
			return nil, err
		}
		return nc.Search(ctx, keyword, limit)

	default:
		return nil, fmt.Errorf("unknown platform %q", platform)
	}
}

// prepare normalizes collected text before analysis. Reddit self-text
// is markdown, so it is rendered down to plain text first.
func prepare(posts []models.Post) []models.Post {
	for i, p := range posts {
		if p.Platform == "reddit" {
			posts[i].Text = sentiment.MarkdownToText(p.Text)
			posts[i].FullText = sentiment.MarkdownToText(p.FullText)
		}
	}
	return posts
}
