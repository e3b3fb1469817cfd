package sentiment

import (
	"math"
	"reflect"
	"testing"

	"github.com/aditya20-b/social-media-osint/internal/models"
)

func analyzedPost(id, platform, sentiment string, compound, polarity float64) models.AnalyzedPost {
	return models.AnalyzedPost{
		Post: models.Post{ID: id, Platform: platform},
		SentimentAnalysis: models.SentimentResult{
			Sentiment:       sentiment,
			Compound:        compound,
			Polarity:        polarity,
			ConfidenceScore: math.Abs(polarity),
			Subjectivity:    0.5,
		},
	}
}

func TestDistributionEmpty(t *testing.T) {
	got := Distribution(nil)
	want := models.Distribution{}
	if got != want {
		t.Errorf("Distribution(nil) = %+v, want all-zero summary", got)
	}
}

func TestDistributionPercentages(t *testing.T) {
	posts := []models.AnalyzedPost{
		analyzedPost("1", "reddit", models.SentimentPositive, 0.6, 0.5),
		analyzedPost("2", "reddit", models.SentimentPositive, 0.4, 0.3),
		analyzedPost("3", "reddit", models.SentimentNegative, -0.7, -0.6),
	}

	dist := Distribution(posts)

	if dist.Total != 3 || dist.Positive != 2 || dist.Negative != 1 || dist.Neutral != 0 {
		t.Fatalf("unexpected counts: %+v", dist)
	}
	if dist.PositivePct != 66.67 || dist.NegativePct != 33.33 {
		t.Errorf("percentages = %.2f / %.2f, want 66.67 / 33.33",
			dist.PositivePct, dist.NegativePct)
	}

	sum := dist.PositivePct + dist.NegativePct + dist.NeutralPct
	if math.Abs(sum-100.0) > 0.01 {
		t.Errorf("percentages sum to %.2f, want 100.0", sum)
	}
}

func TestDistributionMissingSentimentDefaultsNeutral(t *testing.T) {
	posts := []models.AnalyzedPost{{Post: models.Post{ID: "1"}}}

	dist := Distribution(posts)
	if dist.Neutral != 1 {
		t.Errorf("post without sentiment should count as neutral: %+v", dist)
	}
}

func TestPlatformBreakdown(t *testing.T) {
	posts := []models.AnalyzedPost{
		analyzedPost("1", "reddit", models.SentimentPositive, 0.5, 0.4),
		analyzedPost("2", "twitter", models.SentimentNegative, -0.5, -0.4),
		analyzedPost("3", "", models.SentimentNeutral, 0.0, 0.0),
	}

	breakdown := PlatformBreakdown(posts)

	if len(breakdown) != 3 {
		t.Fatalf("got %d platforms, want 3: %v", len(breakdown), breakdown)
	}
	if breakdown["reddit"].Positive != 1 {
		t.Errorf("reddit breakdown = %+v", breakdown["reddit"])
	}
	if breakdown["unknown"].Total != 1 {
		t.Errorf("post without platform should group under unknown: %v", breakdown)
	}
}

func TestAverageEmpty(t *testing.T) {
	a := New(ModeEnhanced)
	got := a.Average(nil)
	want := models.AverageSentiment{OverallSentiment: models.SentimentNeutral}
	if got != want {
		t.Errorf("Average(nil) = %+v, want zeroed neutral summary", got)
	}
}

func TestAverageEnhancedUsesCompound(t *testing.T) {
	a := New(ModeEnhanced)
	posts := []models.AnalyzedPost{
		analyzedPost("1", "reddit", models.SentimentPositive, 0.8, 0.0),
		analyzedPost("2", "reddit", models.SentimentNegative, -0.2, 0.0),
	}

	avg := a.Average(posts)
	if math.Abs(avg.AvgPolarity-0.3) > 0.001 {
		t.Errorf("avg = %f, want 0.3 (mean compound)", avg.AvgPolarity)
	}
	if avg.OverallSentiment != models.SentimentPositive {
		t.Errorf("overall = %q, want positive", avg.OverallSentiment)
	}
}

func TestAverageSimpleUsesPolarity(t *testing.T) {
	a := New(ModeSimple)
	posts := []models.AnalyzedPost{
		analyzedPost("1", "reddit", models.SentimentPositive, 0.0, 0.06),
		analyzedPost("2", "reddit", models.SentimentPositive, 0.0, 0.1),
	}

	avg := a.Average(posts)
	if math.Abs(avg.AvgPolarity-0.08) > 0.001 {
		t.Errorf("avg = %f, want 0.08 (mean polarity)", avg.AvgPolarity)
	}
	// 0.08 is under the ±0.1 polarity threshold
	if avg.OverallSentiment != models.SentimentNeutral {
		t.Errorf("overall = %q, want neutral", avg.OverallSentiment)
	}
}

func TestTopBySentimentEnhanced(t *testing.T) {
	a := New(ModeEnhanced)
	posts := []models.AnalyzedPost{
		analyzedPost("low", "reddit", models.SentimentPositive, 0.2, 0.0),
		analyzedPost("high", "reddit", models.SentimentPositive, 0.9, 0.0),
		analyzedPost("neg", "reddit", models.SentimentNegative, -0.8, 0.0),
		analyzedPost("mid", "reddit", models.SentimentPositive, 0.5, 0.0),
	}

	top := a.TopBySentiment(posts, models.SentimentPositive, 2)
	if len(top) != 2 {
		t.Fatalf("got %d posts, want 2", len(top))
	}
	if top[0].ID != "high" || top[1].ID != "mid" {
		t.Errorf("order = [%s %s], want [high mid]", top[0].ID, top[1].ID)
	}

	for _, p := range top {
		if p.SentimentAnalysis.Sentiment != models.SentimentPositive {
			t.Errorf("non-positive post in results: %s", p.ID)
		}
	}
}

func TestTopBySentimentNegativeOrdering(t *testing.T) {
	a := New(ModeEnhanced)
	posts := []models.AnalyzedPost{
		analyzedPost("mild", "reddit", models.SentimentNegative, -0.2, 0.0),
		analyzedPost("worst", "reddit", models.SentimentNegative, -0.95, 0.0),
		analyzedPost("bad", "reddit", models.SentimentNegative, -0.6, 0.0),
	}

	top := a.TopBySentiment(posts, models.SentimentNegative, 3)
	if top[0].ID != "worst" || top[1].ID != "bad" || top[2].ID != "mild" {
		t.Errorf("order = [%s %s %s], want most negative first",
			top[0].ID, top[1].ID, top[2].ID)
	}
}

func TestTopBySentimentSimpleOrdersByConfidence(t *testing.T) {
	a := New(ModeSimple)
	posts := []models.AnalyzedPost{
		analyzedPost("weak", "reddit", models.SentimentPositive, 0.0, 0.2),
		analyzedPost("strong", "reddit", models.SentimentPositive, 0.0, 0.9),
	}

	top := a.TopBySentiment(posts, models.SentimentPositive, 5)
	if len(top) != 2 || top[0].ID != "strong" {
		t.Errorf("simple mode should order by confidence descending: %v", top)
	}
}

func TestTopBySentimentStableAndIdempotent(t *testing.T) {
	a := New(ModeEnhanced)
	posts := []models.AnalyzedPost{
		analyzedPost("first", "reddit", models.SentimentPositive, 0.5, 0.0),
		analyzedPost("second", "reddit", models.SentimentPositive, 0.5, 0.0),
		analyzedPost("third", "reddit", models.SentimentPositive, 0.5, 0.0),
	}

	once := a.TopBySentiment(posts, models.SentimentPositive, 3)
	twice := a.TopBySentiment(posts, models.SentimentPositive, 3)

	if once[0].ID != "first" || once[1].ID != "second" || once[2].ID != "third" {
		t.Errorf("ties should preserve input order: %v", once)
	}
	if !reflect.DeepEqual(once, twice) {
		t.Error("TopBySentiment should be idempotent")
	}
}

func TestTopBySentimentEmptyAndOversized(t *testing.T) {
	a := New(ModeEnhanced)

	if got := a.TopBySentiment(nil, models.SentimentPositive, 5); len(got) != 0 {
		t.Errorf("empty input should yield empty output, got %v", got)
	}

	posts := []models.AnalyzedPost{
		analyzedPost("1", "reddit", models.SentimentPositive, 0.5, 0.0),
	}
	if got := a.TopBySentiment(posts, models.SentimentPositive, 10); len(got) != 1 {
		t.Errorf("n beyond len should return all matches, got %d", len(got))
	}
}
