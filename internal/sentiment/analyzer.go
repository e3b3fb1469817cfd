package sentiment

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonreiter/govader"
	prose "github.com/tsawler/prose/v3"

	"github.com/aditya20-b/social-media-osint/internal/models"
)

// Mode selects the classification strategy. Enhanced mode classifies on
// the compound score with ±0.05 thresholds and produces a confidence
// label; simple mode classifies on the secondary polarity with ±0.1
// thresholds and a numeric confidence.
type Mode string

const (
	ModeSimple   Mode = "simple"
	ModeEnhanced Mode = "enhanced"
)

// Classification thresholds.
const (
	compoundThreshold = 0.05
	polarityThreshold = 0.1
)

const maxSentences = 5

// Analyzer scores text with two independent models and explains the
// result. It holds no mutable state; the lexicon and model instances
// are fixed at construction and safe to reuse across calls.
type Analyzer struct {
	mode    Mode
	lexicon *Lexicon
	vader   *govader.SentimentIntensityAnalyzer
	prose   *prose.SentimentAnalyzer
}

// New builds an Analyzer for the given mode with the default lexicon.
func New(mode Mode) *Analyzer {
	proseCfg := prose.DefaultSentimentConfig()
	proseCfg.UseML = false // lexicon-only scoring keeps results deterministic

	return &Analyzer{
		mode:    mode,
		lexicon: DefaultLexicon(),
		vader:   govader.NewSentimentIntensityAnalyzer(),
		prose:   prose.NewSentimentAnalyzer(prose.English, proseCfg),
	}
}

// Mode returns the analyzer's classification mode.
func (a *Analyzer) Mode() Mode {
	return a.mode
}

// AnalyzeText scores a single text and assembles the full result
// record. Blank input short-circuits to a fixed neutral result without
// invoking either model.
func (a *Analyzer) AnalyzeText(text string) models.SentimentResult {
	if strings.TrimSpace(text) == "" {
		return a.emptyResult()
	}

	scores := a.vader.PolarityScores(text)
	compound := scores.Compound

	polarity, subjectivity, diagnostic := a.secondaryScores(text)

	words := Tokenize(text)
	sentences := SplitSentences(text)

	positiveWords := a.findIndicators(words, a.lexicon.StrongPositive, a.lexicon.ModeratePositive)
	negativeWords := a.findIndicators(words, a.lexicon.StrongNegative, a.lexicon.ModerateNegative)
	negations := a.findMatches(words, a.lexicon.Negations)
	intensifiers := a.findMatches(words, a.lexicon.Intensifiers)

	breakdown := a.analyzeSentences(sentences)

	result := models.SentimentResult{
		Compound:          round3(compound),
		Positive:          round3(scores.Positive),
		Negative:          round3(scores.Negative),
		Neutral:           round3(scores.Neutral),
		Polarity:          round3(polarity),
		Subjectivity:      round3(subjectivity),
		PositiveWords:     positiveWords,
		NegativeWords:     negativeWords,
		Negations:         negations,
		Intensifiers:      intensifiers,
		SentenceBreakdown: breakdown,
		Diagnostic:        diagnostic,
	}

	if a.mode == ModeSimple {
		result.Sentiment = classifyPolarity(polarity)
		result.ConfidenceScore = round3(math.Abs(polarity))
	} else {
		result.Sentiment = classifyCompound(compound)
		result.Confidence = confidenceLabel(result.Sentiment, compound)
	}

	result.Explanation = a.buildExplanation(result)
	result.Reasoning = a.buildReasoning(result)

	return result
}

// AnalyzePosts scores each post and returns new records; the input
// posts are never mutated.
func (a *Analyzer) AnalyzePosts(posts []models.Post) []models.AnalyzedPost {
	analyzed := make([]models.AnalyzedPost, 0, len(posts))
	for _, post := range posts {
		analyzed = append(analyzed, models.AnalyzedPost{
			Post:              post,
			SentimentAnalysis: a.AnalyzeText(post.Content()),
		})
	}
	return analyzed
}

// secondaryScores runs the polarity/subjectivity model. A model failure
// degrades to zeroed scores with a diagnostic instead of propagating.
func (a *Analyzer) secondaryScores(text string) (polarity, subjectivity float64, diagnostic string) {
	doc, err := prose.NewDocument(text, prose.WithExtraction(false))
	if err != nil {
		return 0, 0, fmt.Sprintf("secondary model failed: %v", err)
	}

	score := a.prose.AnalyzeDocument(doc)
	return score.Polarity, score.Subjectivity, ""
}

// findIndicators scans tokens against a strength-tiered word pair of
// sets, preserving token order. The strong tier wins when a word is
// listed in both.
func (a *Analyzer) findIndicators(words []string, strong, moderate map[string]struct{}) []models.WordIndicator {
	indicators := make([]models.WordIndicator, 0)
	for _, w := range words {
		if _, ok := strong[w]; ok {
			indicators = append(indicators, models.WordIndicator{Word: w, Strength: models.StrengthStrong})
		} else if _, ok := moderate[w]; ok {
			indicators = append(indicators, models.WordIndicator{Word: w, Strength: models.StrengthModerate})
		}
	}
	return indicators
}

// findMatches returns tokens present in the set, duplicates preserved
// in token order.
func (a *Analyzer) findMatches(words []string, set map[string]struct{}) []string {
	matches := make([]string, 0)
	for _, w := range words {
		if _, ok := set[w]; ok {
			matches = append(matches, w)
		}
	}
	return matches
}

// analyzeSentences scores each of the first 5 sentences with the
// compound model. Display text is truncated to 100 characters; scoring
// uses the full sentence.
func (a *Analyzer) analyzeSentences(sentences []string) []models.SentenceSentiment {
	breakdown := make([]models.SentenceSentiment, 0, maxSentences)
	for _, sentence := range sentences {
		if len(breakdown) == maxSentences {
			break
		}

		compound := a.vader.PolarityScores(sentence).Compound
		breakdown = append(breakdown, models.SentenceSentiment{
			Text:      truncate(sentence, 100),
			Sentiment: classifyCompound(compound),
			Score:     round3(compound),
		})
	}
	return breakdown
}

func (a *Analyzer) emptyResult() models.SentimentResult {
	result := models.SentimentResult{
		Neutral:           1.0,
		Sentiment:         models.SentimentNeutral,
		PositiveWords:     []models.WordIndicator{},
		NegativeWords:     []models.WordIndicator{},
		Negations:         []string{},
		Intensifiers:      []string{},
		SentenceBreakdown: []models.SentenceSentiment{},
		Explanation:       "Empty or invalid text.",
		Reasoning:         []string{"No content to analyze"},
	}
	if a.mode == ModeEnhanced {
		result.Confidence = models.ConfidenceLow
	}
	return result
}

// classifyCompound maps a compound score onto a label. Scores at the
// thresholds are classified as positive/negative, not neutral.
func classifyCompound(compound float64) string {
	switch {
	case compound >= compoundThreshold:
		return models.SentimentPositive
	case compound <= -compoundThreshold:
		return models.SentimentNegative
	default:
		return models.SentimentNeutral
	}
}

// classifyPolarity maps a secondary-model polarity onto a label using
// strict ±0.1 bounds.
func classifyPolarity(polarity float64) string {
	switch {
	case polarity > polarityThreshold:
		return models.SentimentPositive
	case polarity < -polarityThreshold:
		return models.SentimentNegative
	default:
		return models.SentimentNeutral
	}
}

// confidenceLabel derives the low/moderate/high label from |compound|.
// Neutral classifications always carry moderate confidence.
func confidenceLabel(sentiment string, compound float64) string {
	if sentiment == models.SentimentNeutral {
		return models.ConfidenceModerate
	}

	abs := math.Abs(compound)
	switch {
	case abs >= 0.5:
		return models.ConfidenceHigh
	case abs >= 0.25:
		return models.ConfidenceModerate
	default:
		return models.ConfidenceLow
	}
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
