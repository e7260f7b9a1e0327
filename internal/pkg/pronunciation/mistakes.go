package pronunciation

import (
	"fmt"

	"github.com/antzucaro/matchr"

	"github.com/evandrarf/lingua-level-be/internal/pkg/textscore"
)

// findMistakes walks the aligned words left to right and stops at limit.
func findMistakes(target, spoken []string, threshold float64, limit int) []Mistake {
	mistakes := make([]Mistake, 0, limit)
	for _, p := range textscore.Align(target, spoken) {
		if len(mistakes) >= limit {
			break
		}
		switch {
		case p.HasTarget && p.HasSpoken:
			if textscore.WordSimilarity(p.Target, p.Spoken) >= threshold {
				continue
			}
			mistakes = append(mistakes, Mistake{
				Word:       p.Spoken,
				Expected:   p.Target,
				Actual:     p.Spoken,
				Suggestion: substitutionHint(p.Target, p.Spoken),
				Kind:       MistakeSubstitution,
			})
		case p.HasTarget:
			mistakes = append(mistakes, Mistake{
				Word:       p.Target,
				Expected:   p.Target,
				Suggestion: fmt.Sprintf("Don't skip %q.", p.Target),
				Kind:       MistakeMissing,
			})
		case p.HasSpoken:
			mistakes = append(mistakes, Mistake{
				Word:       p.Spoken,
				Actual:     p.Spoken,
				Suggestion: fmt.Sprintf("Leave out %q; it is not in the phrase.", p.Spoken),
				Kind:       MistakeExtra,
			})
		}
	}
	return mistakes
}

// substitutionHint distinguishes a near miss (same Double Metaphone code)
// from a different word.
func substitutionHint(expected, actual string) string {
	if soundsAlike(expected, actual) {
		return fmt.Sprintf("Close: %q sounds like %q. Articulate every sound of %q.", actual, expected, expected)
	}
	return fmt.Sprintf("Say %q instead of %q.", expected, actual)
}

func soundsAlike(a, b string) bool {
	ap, as := matchr.DoubleMetaphone(a)
	bp, bs := matchr.DoubleMetaphone(b)
	if ap == "" || bp == "" {
		return false
	}
	return ap == bp || ap == bs || as == bp || (as != "" && as == bs)
}
