package sentiment

// Lexicon holds the word sets driving indicator extraction. The four
// strength tiers are disjoint by construction; matching is exact
// lowercase equality with no stemming or multi-word phrases.
type Lexicon struct {
	StrongPositive   map[string]struct{}
	ModeratePositive map[string]struct{}
	StrongNegative   map[string]struct{}
	ModerateNegative map[string]struct{}
	Negations        map[string]struct{}
	Intensifiers     map[string]struct{}
}

// DefaultLexicon returns the built-in emotion lexicon.
func DefaultLexicon() *Lexicon {
	return &Lexicon{
		StrongPositive: wordSet(
			"love", "amazing", "excellent", "fantastic", "wonderful", "brilliant",
			"awesome", "great", "perfect", "outstanding", "superb", "incredible",
			"magnificent", "spectacular", "phenomenal", "exceptional", "fabulous",
		),
		StrongNegative: wordSet(
			"hate", "terrible", "awful", "horrible", "worst", "disgusting",
			"pathetic", "useless", "garbage", "trash", "disappointing",
			"disaster", "nightmare", "dreadful", "appalling", "atrocious",
		),
		ModeratePositive: wordSet(
			"good", "nice", "fine", "ok", "decent", "solid", "happy", "pleased",
			"satisfied", "enjoyable", "fun", "interesting", "cool", "helpful",
			"useful", "effective", "efficient", "reliable", "quality",
		),
		ModerateNegative: wordSet(
			"bad", "poor", "weak", "disappointing", "frustrating", "annoying",
			"sad", "unhappy", "difficult", "hard", "confusing", "complicated",
			"slow", "expensive", "broken", "buggy", "error", "issue", "problem",
		),
		Negations: wordSet(
			"not", "no", "never", "nothing", "neither", "nobody", "nowhere",
			"none", "don't", "doesn't", "didn't", "won't", "wouldn't", "shouldn't",
			"can't", "cannot", "couldn't",
		),
		Intensifiers: wordSet(
			"very", "extremely", "incredibly", "absolutely", "completely",
			"totally", "really", "quite", "fairly", "pretty", "highly",
			"exceptionally", "remarkably", "extraordinarily",
		),
	}
}

func wordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
