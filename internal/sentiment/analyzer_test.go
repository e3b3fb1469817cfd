package sentiment

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/aditya20-b/social-media-osint/internal/models"
)

func TestAnalyzeTextPositive(t *testing.T) {
	a := New(ModeEnhanced)
	result := a.AnalyzeText("I absolutely love this amazing product!")

	if result.Sentiment != models.SentimentPositive {
		t.Fatalf("sentiment = %q, want positive", result.Sentiment)
	}

	var foundStrong bool
	for _, ind := range result.PositiveWords {
		if (ind.Word == "love" || ind.Word == "amazing") && ind.Strength == models.StrengthStrong {
			foundStrong = true
		}
	}
	if !foundStrong {
		t.Errorf("positive_words missing strong entry for love/amazing: %v", result.PositiveWords)
	}

	if len(result.Intensifiers) == 0 || result.Intensifiers[0] != "absolutely" {
		t.Errorf("intensifiers = %v, want [absolutely ...]", result.Intensifiers)
	}
	if result.Confidence == "" {
		t.Error("enhanced mode should set a confidence label")
	}
}

func TestAnalyzeTextNegative(t *testing.T) {
	a := New(ModeEnhanced)
	result := a.AnalyzeText("This is the worst, most disgusting thing ever.")

	if result.Sentiment != models.SentimentNegative {
		t.Fatalf("sentiment = %q, want negative", result.Sentiment)
	}

	var foundStrong bool
	for _, ind := range result.NegativeWords {
		if ind.Strength == models.StrengthStrong {
			foundStrong = true
		}
	}
	if !foundStrong {
		t.Errorf("negative_words missing a strong-tier entry: %v", result.NegativeWords)
	}
}

func TestAnalyzeTextNeutral(t *testing.T) {
	a := New(ModeEnhanced)
	result := a.AnalyzeText("The meeting is scheduled for 3pm.")

	if result.Sentiment != models.SentimentNeutral {
		t.Fatalf("sentiment = %q, want neutral", result.Sentiment)
	}
	if len(result.PositiveWords) != 0 || len(result.NegativeWords) != 0 {
		t.Errorf("expected empty indicator lists, got %v / %v",
			result.PositiveWords, result.NegativeWords)
	}
}

func TestAnalyzeTextEmptyInput(t *testing.T) {
	a := New(ModeEnhanced)

	empty := a.AnalyzeText("")
	whitespace := a.AnalyzeText("   \t\n  ")

	if !reflect.DeepEqual(empty, whitespace) {
		t.Error("empty and whitespace-only input should produce identical results")
	}

	if empty.Sentiment != models.SentimentNeutral {
		t.Errorf("sentiment = %q, want neutral", empty.Sentiment)
	}
	if empty.Compound != 0 || empty.Positive != 0 || empty.Negative != 0 || empty.Neutral != 1 {
		t.Errorf("expected zeroed scores with neu=1, got %+v", empty)
	}
	if empty.Explanation != "Empty or invalid text." {
		t.Errorf("explanation = %q", empty.Explanation)
	}
	if len(empty.Reasoning) != 1 || empty.Reasoning[0] != "No content to analyze" {
		t.Errorf("reasoning = %v", empty.Reasoning)
	}
}

func TestAnalyzeTextDeterministic(t *testing.T) {
	a := New(ModeEnhanced)
	text := "The update is great, but the installer is broken. Not happy."

	first := a.AnalyzeText(text)
	second := a.AnalyzeText(text)

	if !reflect.DeepEqual(first, second) {
		t.Error("analyzing the same text twice should yield identical results")
	}
}

func TestProportionsSumToOne(t *testing.T) {
	a := New(ModeEnhanced)

	texts := []string{
		"I love this!",
		"This is awful and broken.",
		"The train departs at noon.",
	}
	for _, text := range texts {
		r := a.AnalyzeText(text)
		sum := r.Positive + r.Negative + r.Neutral
		if math.Abs(sum-1.0) > 0.01 {
			t.Errorf("pos+neg+neu = %f for %q, want 1.0", sum, text)
		}
	}
}

func TestClassifyCompoundBoundaries(t *testing.T) {
	tests := []struct {
		compound float64
		want     string
	}{
		{0.05, models.SentimentPositive},
		{-0.05, models.SentimentNegative},
		{0.049, models.SentimentNeutral},
		{-0.049, models.SentimentNeutral},
		{0.0, models.SentimentNeutral},
		{0.9, models.SentimentPositive},
		{-0.9, models.SentimentNegative},
	}

	for _, tt := range tests {
		if got := classifyCompound(tt.compound); got != tt.want {
			t.Errorf("classifyCompound(%f) = %q, want %q", tt.compound, got, tt.want)
		}
	}
}

func TestClassifyPolarityBoundaries(t *testing.T) {
	tests := []struct {
		polarity float64
		want     string
	}{
		{0.1, models.SentimentNeutral},
		{-0.1, models.SentimentNeutral},
		{0.101, models.SentimentPositive},
		{-0.101, models.SentimentNegative},
		{0.0, models.SentimentNeutral},
	}

	for _, tt := range tests {
		if got := classifyPolarity(tt.polarity); got != tt.want {
			t.Errorf("classifyPolarity(%f) = %q, want %q", tt.polarity, got, tt.want)
		}
	}
}

func TestConfidenceLabel(t *testing.T) {
	tests := []struct {
		sentiment string
		compound  float64
		want      string
	}{
		{models.SentimentPositive, 0.7, models.ConfidenceHigh},
		{models.SentimentPositive, 0.3, models.ConfidenceModerate},
		{models.SentimentPositive, 0.1, models.ConfidenceLow},
		{models.SentimentNegative, -0.6, models.ConfidenceHigh},
		{models.SentimentNegative, -0.3, models.ConfidenceModerate},
		{models.SentimentNeutral, 0.0, models.ConfidenceModerate},
	}

	for _, tt := range tests {
		if got := confidenceLabel(tt.sentiment, tt.compound); got != tt.want {
			t.Errorf("confidenceLabel(%q, %f) = %q, want %q",
				tt.sentiment, tt.compound, got, tt.want)
		}
	}
}

func TestSentenceBreakdownCap(t *testing.T) {
	a := New(ModeEnhanced)
	text := "One. Two. Three. Four. Five. Six. Seven."

	result := a.AnalyzeText(text)
	if len(result.SentenceBreakdown) != 5 {
		t.Errorf("sentence_breakdown has %d entries, want 5", len(result.SentenceBreakdown))
	}
}

func TestSentenceBreakdownTruncation(t *testing.T) {
	a := New(ModeEnhanced)
	long := strings.Repeat("word ", 40) // well over 100 chars, no delimiters

	result := a.AnalyzeText(long)
	if len(result.SentenceBreakdown) != 1 {
		t.Fatalf("expected one sentence, got %d", len(result.SentenceBreakdown))
	}

	display := result.SentenceBreakdown[0].Text
	if !strings.HasSuffix(display, "...") {
		t.Errorf("long sentence display text should end with ellipsis: %q", display)
	}
	if len(display) != 103 {
		t.Errorf("display text length = %d, want 103", len(display))
	}
}

func TestSimpleModeConfidence(t *testing.T) {
	a := New(ModeSimple)
	result := a.AnalyzeText("I love this product!")

	if result.Sentiment != models.SentimentPositive {
		t.Fatalf("sentiment = %q, want positive", result.Sentiment)
	}
	if result.Confidence != "" {
		t.Errorf("simple mode should not set a confidence label, got %q", result.Confidence)
	}
	if math.Abs(result.ConfidenceScore-math.Abs(result.Polarity)) > 0.001 {
		t.Errorf("confidence_score = %f, want |polarity| = %f",
			result.ConfidenceScore, math.Abs(result.Polarity))
	}
	if result.Subjectivity < 0 || result.Subjectivity > 1 {
		t.Errorf("subjectivity = %f, want [0,1]", result.Subjectivity)
	}
}

func TestNegationDetectionIsInformational(t *testing.T) {
	a := New(ModeEnhanced)
	result := a.AnalyzeText("This is not good.")

	if len(result.Negations) == 0 || result.Negations[0] != "not" {
		t.Fatalf("negations = %v, want [not]", result.Negations)
	}

	var found bool
	for _, reason := range result.Reasoning {
		if strings.Contains(reason, "negations that may affect meaning") {
			found = true
		}
	}
	if !found {
		t.Errorf("reasoning missing negation bullet: %v", result.Reasoning)
	}
}

func TestIndicatorOrderAndDuplicates(t *testing.T) {
	a := New(ModeEnhanced)
	result := a.AnalyzeText("good bad good")

	want := []models.WordIndicator{
		{Word: "good", Strength: models.StrengthModerate},
		{Word: "good", Strength: models.StrengthModerate},
	}
	if !reflect.DeepEqual(result.PositiveWords, want) {
		t.Errorf("positive_words = %v, want duplicates in token order %v",
			result.PositiveWords, want)
	}
	if len(result.NegativeWords) != 1 || result.NegativeWords[0].Word != "bad" {
		t.Errorf("negative_words = %v, want [bad]", result.NegativeWords)
	}
}

func TestAnalyzePostsDoesNotMutateInput(t *testing.T) {
	a := New(ModeEnhanced)
	posts := []models.Post{
		{Platform: "reddit", Text: "I love this."},
		{Platform: "twitter", FullText: "This is terrible."},
	}
	original := make([]models.Post, len(posts))
	copy(original, posts)

	analyzed := a.AnalyzePosts(posts)

	if !reflect.DeepEqual(posts, original) {
		t.Error("input posts were mutated")
	}
	if len(analyzed) != 2 {
		t.Fatalf("got %d analyzed posts, want 2", len(analyzed))
	}
	if analyzed[0].SentimentAnalysis.Sentiment != models.SentimentPositive {
		t.Errorf("first post sentiment = %q", analyzed[0].SentimentAnalysis.Sentiment)
	}
	if analyzed[1].SentimentAnalysis.Sentiment != models.SentimentNegative {
		t.Errorf("second post sentiment = %q", analyzed[1].SentimentAnalysis.Sentiment)
	}
}
