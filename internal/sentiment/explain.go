package sentiment

import (
	"fmt"
	"strings"

	"github.com/aditya20-b/social-media-osint/internal/models"
)

// buildExplanation composes the human-readable explanation paragraph.
// Each clause is appended only when its trigger holds; clauses join
// with single spaces. Word lists are deduplicated in first-occurrence
// order so repeated mentions collapse to one.
func (a *Analyzer) buildExplanation(r models.SentimentResult) string {
	parts := []string{fmt.Sprintf("This text is **%s** (score: %.3f).",
		strings.ToUpper(r.Sentiment), r.Compound)}

	strongPos, moderatePos := splitByStrength(r.PositiveWords)
	if len(strongPos) > 0 {
		parts = append(parts, fmt.Sprintf("Strong positive words found: %s.",
			strings.Join(dedupe(strongPos), ", ")))
	}
	if len(moderatePos) > 0 {
		parts = append(parts, fmt.Sprintf("Positive words: %s.",
			strings.Join(dedupe(moderatePos), ", ")))
	}

	strongNeg, moderateNeg := splitByStrength(r.NegativeWords)
	if len(strongNeg) > 0 {
		parts = append(parts, fmt.Sprintf("Strong negative words found: %s.",
			strings.Join(dedupe(strongNeg), ", ")))
	}
	if len(moderateNeg) > 0 {
		parts = append(parts, fmt.Sprintf("Negative words: %s.",
			strings.Join(dedupe(moderateNeg), ", ")))
	}

	if len(r.Negations) > 0 {
		parts = append(parts, fmt.Sprintf("Negations detected (%s) which may flip sentiment.",
			strings.Join(dedupe(r.Negations), ", ")))
	}
	if len(r.Intensifiers) > 0 {
		parts = append(parts, fmt.Sprintf("Intensifiers found (%s) which amplify sentiment.",
			strings.Join(dedupe(r.Intensifiers), ", ")))
	}

	if len(r.SentenceBreakdown) > 1 {
		var pos, neg int
		for _, s := range r.SentenceBreakdown {
			switch s.Sentiment {
			case models.SentimentPositive:
				pos++
			case models.SentimentNegative:
				neg++
			}
		}

		if pos > neg {
			parts = append(parts, fmt.Sprintf("Most sentences (%d/%d) are positive.",
				pos, len(r.SentenceBreakdown)))
		} else if neg > pos {
			parts = append(parts, fmt.Sprintf("Most sentences (%d/%d) are negative.",
				neg, len(r.SentenceBreakdown)))
		}
	}

	return strings.Join(parts, " ")
}

// buildReasoning produces the bullet-point reasoning list keyed off the
// final sentiment label. Negation detection is informational only; it
// never feeds back into the scores.
func (a *Analyzer) buildReasoning(r models.SentimentResult) []string {
	reasons := make([]string, 0, 4)

	switch r.Sentiment {
	case models.SentimentPositive:
		if len(r.PositiveWords) > 0 {
			reasons = append(reasons, fmt.Sprintf("Contains %d positive indicators", len(r.PositiveWords)))
		}
		if len(r.Intensifiers) > 0 {
			reasons = append(reasons, fmt.Sprintf("Uses %d intensifiers to strengthen tone", len(r.Intensifiers)))
		}
		if len(r.NegativeWords) == 0 {
			reasons = append(reasons, "No significant negative language detected")
		}

	case models.SentimentNegative:
		if len(r.NegativeWords) > 0 {
			reasons = append(reasons, fmt.Sprintf("Contains %d negative indicators", len(r.NegativeWords)))
		}
		if len(r.Intensifiers) > 0 {
			reasons = append(reasons, fmt.Sprintf("Uses %d intensifiers to strengthen criticism", len(r.Intensifiers)))
		}
		if len(r.PositiveWords) == 0 {
			reasons = append(reasons, "No significant positive language detected")
		}

	default:
		reasons = append(reasons, "Balanced or factual language")
		if len(r.PositiveWords) == 0 && len(r.NegativeWords) == 0 {
			reasons = append(reasons, "Lacks strong emotional indicators")
		}
	}

	if len(r.Negations) > 0 {
		reasons = append(reasons, fmt.Sprintf("Contains %d negations that may affect meaning", len(r.Negations)))
	}

	return reasons
}

func splitByStrength(indicators []models.WordIndicator) (strong, moderate []string) {
	for _, ind := range indicators {
		if ind.Strength == models.StrengthStrong {
			strong = append(strong, ind.Word)
		} else {
			moderate = append(moderate, ind.Word)
		}
	}
	return strong, moderate
}

// dedupe removes duplicates preserving first-occurrence order.
func dedupe(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}
