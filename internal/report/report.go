package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aditya20-b/social-media-osint/internal/models"
)

// Generator writes analysis reports to the output directory. The host
// must call EnsureOutputDir once before writing; directory creation is
// never an import-time side effect.
type Generator struct {
	outputDir string
}

func NewGenerator(outputDir string) *Generator {
	return &Generator{outputDir: outputDir}
}

// EnsureOutputDir creates the output directory if needed.
func (g *Generator) EnsureOutputDir() error {
	if err := os.MkdirAll(g.outputDir, 0o755); err != nil {
		return fmt.Errorf("[Report] failed to create output directory: %w", err)
	}
	return nil
}

// Build assembles the full report record for one analysis run.
func Build(keyword string, posts []models.AnalyzedPost, dist models.Distribution,
	platformSentiment map[string]models.Distribution, average models.AverageSentiment,
	topPositive, topNegative []models.AnalyzedPost,
) models.Report {
	platforms := make([]string, 0, len(platformSentiment))
	for platform := range platformSentiment {
		platforms = append(platforms, platform)
	}

	return models.Report{
		Metadata: models.ReportMetadata{
			ReportID:    uuid.NewString(),
			Keyword:     keyword,
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
			TotalPosts:  len(posts),
			Platforms:   platforms,
		},
		SentimentDistribution: dist,
		PlatformSentiment:     platformSentiment,
		AverageSentiment:      average,
		TopPosts: models.TopPosts{
			Positive: topPositive,
			Negative: topNegative,
		},
		AllPosts: posts,
	}
}

// WriteJSON writes the report as indented JSON and returns the file
// path. File names follow osint_report_<keyword>_<timestamp>.json.
func (g *Generator) WriteJSON(r models.Report) (string, error) {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("osint_report_%s_%s.json",
		strings.ReplaceAll(r.Metadata.Keyword, " ", "_"), timestamp)
	path := filepath.Join(g.outputDir, filename)

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("[Report] failed to encode report: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("[Report] failed to write report: %w", err)
	}
	return path, nil
}

// Summary renders the human-readable run summary.
func Summary(dist models.Distribution, average models.AverageSentiment) string {
	if dist.Total == 0 {
		return "No posts to analyze."
	}

	var b strings.Builder
	b.WriteString("Sentiment Analysis Summary\n")
	b.WriteString("==========================\n")
	fmt.Fprintf(&b, "Total Posts Analyzed: %d\n\n", dist.Total)
	b.WriteString("Sentiment Distribution:\n")
	fmt.Fprintf(&b, "- Positive: %d (%.2f%%)\n", dist.Positive, dist.PositivePct)
	fmt.Fprintf(&b, "- Negative: %d (%.2f%%)\n", dist.Negative, dist.NegativePct)
	fmt.Fprintf(&b, "- Neutral: %d (%.2f%%)\n\n", dist.Neutral, dist.NeutralPct)
	b.WriteString("Average Sentiment:\n")
	fmt.Fprintf(&b, "- Polarity: %.3f (range: -1 to 1)\n", average.AvgPolarity)
	fmt.Fprintf(&b, "- Subjectivity: %.3f (range: 0 to 1)\n", average.AvgSubjectivity)
	fmt.Fprintf(&b, "- Overall: %s\n", strings.ToUpper(average.OverallSentiment))

	return b.String()
}
