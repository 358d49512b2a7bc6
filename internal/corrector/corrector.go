package corrector

import "strings"

// Pair maps a commonly misrecognized phrase to its correction.
type Pair struct {
	Wrong   string
	Correct string
}

// Corrector applies an ordered list of phrase corrections to a transcript.
// Replacements are literal substrings with no word-boundary check, applied
// against the running text, so earlier pairs can feed later ones.
type Corrector struct {
	pairs []Pair
}

// defaultPairs is the fixed set of misrecognitions observed in meeting audio.
// Order matters: the multi-word "subdate" variants must run before the single
// context-dependent entries at the end.
var defaultPairs = []Pair{
	{"subdate", "update"},
	{"sub date", "update"},
	{"sub-date", "update"},
	{"updater", "update"},
	{"up date", "update"},
	{"what's subdate", "what's the update"},
	{"whats subdate", "what's the update"},
	{"the subdate", "the update"},
	{"an update", "the update"},
	// Context-dependent, known false-positive sources. Kept as observed.
	{"there", "their"},
	{"your", "you're"},
	{"its", "it's"},
}

// New returns a Corrector with the default correction table.
func New() *Corrector {
	return &Corrector{pairs: defaultPairs}
}

// NewWithPairs returns a Corrector using a custom ordered table.
func NewWithPairs(pairs []Pair) *Corrector {
	return &Corrector{pairs: pairs}
}

// Correct rewrites text by applying every pair in order, once per casing:
// lowercase, Capitalized, and UPPERCASE. It always returns a string, possibly
// unchanged.
func (c *Corrector) Correct(text string) string {
	corrected := text
	for _, p := range c.pairs {
		corrected = strings.ReplaceAll(corrected, strings.ToLower(p.Wrong), strings.ToLower(p.Correct))
		corrected = strings.ReplaceAll(corrected, capitalize(p.Wrong), capitalize(p.Correct))
		corrected = strings.ReplaceAll(corrected, strings.ToUpper(p.Wrong), strings.ToUpper(p.Correct))
	}
	return corrected
}

// capitalize matches the capitalization used by the correction table: first
// byte upper, rest lower.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
