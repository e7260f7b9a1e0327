package textscore

import (
	"unicode/utf8"

	"github.com/antzucaro/matchr"
)

// EditDistance is the unit-cost Levenshtein distance between a and b counted
// in runes. Transpositions cost two edits.
func EditDistance(a, b string) int {
	return matchr.Levenshtein(a, b)
}

// WordSimilarity returns 1 - EditDistance(a, b)/max(len(a), len(b)).
func WordSimilarity(a, b string) float64 {
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if longest == 0 {
		return 1
	}
	return 1 - float64(EditDistance(a, b))/float64(longest)
}

// WordPair is one aligned position of a target/spoken comparison. A side
// without a word at this position has its Has flag unset.
type WordPair struct {
	Index     int
	Target    string
	Spoken    string
	HasTarget bool
	HasSpoken bool
}

// Align pairs words by position, padding the shorter list.
func Align(target, spoken []string) []WordPair {
	n := max(len(target), len(spoken))
	pairs := make([]WordPair, n)
	for i := 0; i < n; i++ {
		p := WordPair{Index: i}
		if i < len(target) {
			p.Target, p.HasTarget = target[i], true
		}
		if i < len(spoken) {
			p.Spoken, p.HasSpoken = spoken[i], true
		}
		pairs[i] = p
	}
	return pairs
}
