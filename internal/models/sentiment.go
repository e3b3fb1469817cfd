package models

// Sentiment labels and word strength tiers used throughout the
// analysis pipeline.
const (
	SentimentPositive = "positive"
	SentimentNegative = "negative"
	SentimentNeutral  = "neutral"

	StrengthStrong   = "strong"
	StrengthModerate = "moderate"

	ConfidenceLow      = "low"
	ConfidenceModerate = "moderate"
	ConfidenceHigh     = "high"
)

// WordIndicator is a sentiment-bearing word found in the text together
// with its lexicon strength tier.
type WordIndicator struct {
	Word     string `json:"word"`
	Strength string `json:"strength"`
}

// SentenceSentiment is the per-sentence entry of the breakdown. Text is
// truncated for display; scoring always uses the full sentence.
type SentenceSentiment struct {
	Text      string  `json:"text"`
	Sentiment string  `json:"sentiment"`
	Score     float64 `json:"score"`
}

// SentimentResult holds everything the analyzer derives from one text:
// scores from both models, the classification, the matched indicators
// and the generated explanation.
type SentimentResult struct {
	// Compound model scores (primary)
	Compound float64 `json:"compound"`
	Positive float64 `json:"pos"`
	Negative float64 `json:"neg"`
	Neutral  float64 `json:"neu"`

	// Secondary model scores
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`

	Sentiment string `json:"sentiment"`

	// Confidence is the low/moderate/high label used in enhanced mode;
	// ConfidenceScore is the numeric |polarity| used in simple mode.
	Confidence      string  `json:"confidence,omitempty"`
	ConfidenceScore float64 `json:"confidence_score"`

	PositiveWords []WordIndicator `json:"positive_words"`
	NegativeWords []WordIndicator `json:"negative_words"`
	Negations     []string        `json:"negations"`
	Intensifiers  []string        `json:"intensifiers"`

	SentenceBreakdown []SentenceSentiment `json:"sentence_breakdown"`

	Explanation string   `json:"explanation"`
	Reasoning   []string `json:"reasoning"`

	// Diagnostic is set when the secondary scoring model failed and the
	// result degraded to zeroed polarity/subjectivity.
	Diagnostic string `json:"diagnostic,omitempty"`
}

// Distribution counts posts by sentiment label with percentages.
// All fields are zero when Total is zero.
type Distribution struct {
	Total       int     `json:"total"`
	Positive    int     `json:"positive"`
	Negative    int     `json:"negative"`
	Neutral     int     `json:"neutral"`
	PositivePct float64 `json:"positive_pct"`
	NegativePct float64 `json:"negative_pct"`
	NeutralPct  float64 `json:"neutral_pct"`
}

// AverageSentiment holds corpus-level mean scores and the overall label
// derived from the mean.
type AverageSentiment struct {
	AvgPolarity      float64 `json:"avg_polarity"`
	AvgSubjectivity  float64 `json:"avg_subjectivity"`
	OverallSentiment string  `json:"overall_sentiment"`
}
