// Package textscore compares a target utterance with a recognized one word by
// word and reduces the comparison to a 0-100 similarity number.
package textscore

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

var stripPunctuation = runes.Remove(runes.In(unicode.P))

// Normalize lowercases s, removes punctuation and splits it on whitespace.
func Normalize(s string) []string {
	return tokenize(s, true)
}

func tokenize(s string, lower bool) []string {
	if lower {
		s = cases.Lower(language.Und).String(s)
	}
	stripped, _, err := transform.String(stripPunctuation, s)
	if err != nil {
		stripped = s
	}
	return strings.Fields(stripped)
}
