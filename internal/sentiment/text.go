package sentiment

import (
	"regexp"
	"strings"

	"github.com/russross/blackfriday/v2"
)

var (
	wordPattern    = regexp.MustCompile(`\b\w+\b`)
	sentenceSplit  = regexp.MustCompile(`[.!?]+`)
	mdLinkPattern  = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	bareURLPattern = regexp.MustCompile(`https?://\S+|www\.\S+`)
	htmlTagPattern = regexp.MustCompile(`<[^>]+>`)
)

// Tokenize lowercases the text and extracts maximal runs of word
// characters. Punctuation-only input yields no tokens.
func Tokenize(text string) []string {
	return wordPattern.FindAllString(strings.ToLower(text), -1)
}

// SplitSentences splits text on runs of '.', '!' and '?', trims
// whitespace and drops empty fragments. Splitting is purely
// delimiter-based; abbreviations and decimals are not special-cased.
func SplitSentences(text string) []string {
	parts := sentenceSplit.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// RemoveLinks strips markdown links (keeping the link text) and bare
// URLs from the input.
func RemoveLinks(input string) string {
	input = mdLinkPattern.ReplaceAllString(input, "$1")
	return bareURLPattern.ReplaceAllString(input, "")
}

// MarkdownToText renders markdown (Reddit self-text is markdown) and
// strips tags and links, leaving whitespace-normalized plain text.
func MarkdownToText(input string) string {
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plain := htmlTagPattern.ReplaceAllString(string(output), " ")
	plain = strings.Join(strings.Fields(plain), " ")

	return RemoveLinks(plain)
}

// truncate shortens display text to max runes plus an ellipsis. The
// cut is rune-aligned so multibyte text stays valid UTF-8.
func truncate(text string, max int) string {
	runes := []rune(text)
	if len(runes) > max {
		return string(runes[:max]) + "..."
	}
	return text
}
