package sentiment

import (
	"math"
	"sort"

	"github.com/aditya20-b/social-media-osint/internal/models"
)

// Distribution counts posts by sentiment label. Percentages are
// computed only when at least one post is present; an empty batch
// yields the all-zero summary.
func Distribution(posts []models.AnalyzedPost) models.Distribution {
	dist := models.Distribution{Total: len(posts)}
	if dist.Total == 0 {
		return dist
	}

	for _, p := range posts {
		switch p.SentimentAnalysis.Sentiment {
		case models.SentimentPositive:
			dist.Positive++
		case models.SentimentNegative:
			dist.Negative++
		default:
			dist.Neutral++
		}
	}

	total := float64(dist.Total)
	dist.PositivePct = round2(float64(dist.Positive) / total * 100)
	dist.NegativePct = round2(float64(dist.Negative) / total * 100)
	dist.NeutralPct = round2(float64(dist.Neutral) / total * 100)

	return dist
}

// PlatformBreakdown groups posts by platform (defaulting to "unknown")
// and computes the distribution per group.
func PlatformBreakdown(posts []models.AnalyzedPost) map[string]models.Distribution {
	grouped := make(map[string][]models.AnalyzedPost)
	for _, p := range posts {
		platform := p.PlatformTag()
		grouped[platform] = append(grouped[platform], p)
	}

	breakdown := make(map[string]models.Distribution, len(grouped))
	for platform, group := range grouped {
		breakdown[platform] = Distribution(group)
	}
	return breakdown
}

// Average computes arithmetic mean scores over the batch and classifies
// the mean with the analyzer's thresholds. Enhanced mode averages the
// compound score; simple mode averages the secondary polarity. Empty
// input returns the zeroed neutral summary.
func (a *Analyzer) Average(posts []models.AnalyzedPost) models.AverageSentiment {
	if len(posts) == 0 {
		return models.AverageSentiment{OverallSentiment: models.SentimentNeutral}
	}

	var sumScore, sumSubjectivity float64
	for _, p := range posts {
		if a.mode == ModeEnhanced {
			sumScore += p.SentimentAnalysis.Compound
		} else {
			sumScore += p.SentimentAnalysis.Polarity
		}
		sumSubjectivity += p.SentimentAnalysis.Subjectivity
	}

	n := float64(len(posts))
	avg := sumScore / n

	overall := classifyPolarity(avg)
	if a.mode == ModeEnhanced {
		overall = classifyCompound(avg)
	}

	return models.AverageSentiment{
		AvgPolarity:      round3(avg),
		AvgSubjectivity:  round3(sumSubjectivity / n),
		OverallSentiment: overall,
	}
}

// TopBySentiment filters posts by exact sentiment match and returns the
// n highest-ranked. Enhanced mode orders by raw compound score
// (ascending for negative, so the most negative lead); simple mode
// orders by numeric confidence descending. Ties preserve the original
// relative order.
func (a *Analyzer) TopBySentiment(posts []models.AnalyzedPost, sentiment string, n int) []models.AnalyzedPost {
	filtered := make([]models.AnalyzedPost, 0)
	for _, p := range posts {
		if p.SentimentAnalysis.Sentiment == sentiment {
			filtered = append(filtered, p)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		ri, rj := filtered[i].SentimentAnalysis, filtered[j].SentimentAnalysis
		if a.mode == ModeEnhanced {
			if sentiment == models.SentimentNegative {
				return ri.Compound < rj.Compound
			}
			return ri.Compound > rj.Compound
		}
		return ri.ConfidenceScore > rj.ConfidenceScore
	})

	if n < 0 {
		n = 0
	}
	if n < len(filtered) {
		filtered = filtered[:n]
	}
	return filtered
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
