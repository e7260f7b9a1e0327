package pronunciation

import (
	"fmt"
	"strings"
)

// PronunciationRule selects how PronunciationScore is derived.
type PronunciationRule string

const (
	// PronunciationFromAccuracy reports the accuracy score unchanged.
	PronunciationFromAccuracy PronunciationRule = "accuracy"
	// PronunciationFromOverall reports 90% of the accuracy/fluency mean.
	PronunciationFromOverall PronunciationRule = "overall"
)

const (
	DefaultMaxMistakes       = 5
	DefaultMatchThreshold    = 0.7
	DefaultHesitationPenalty = 10
	overallPronunciationRate = 0.9
)

// Config holds the tunable constants of an Evaluator.
type Config struct {
	Rule PronunciationRule
	// MaxMistakes caps the itemized mistake list.
	MaxMistakes int
	// MatchThreshold is the word similarity (0.0–1.0) at or above which an
	// aligned word is not reported as a mistake.
	MatchThreshold float64
	// HesitationPenalty is subtracted from accuracy to estimate fluency when
	// no recognizer confidence is available. Zero or negative takes the default.
	HesitationPenalty int
}

// DefaultConfig returns the configuration used by New when none is given.
func DefaultConfig() Config {
	return Config{
		Rule:              PronunciationFromAccuracy,
		MaxMistakes:       DefaultMaxMistakes,
		MatchThreshold:    DefaultMatchThreshold,
		HesitationPenalty: DefaultHesitationPenalty,
	}
}

// ParseRule converts a config string into a PronunciationRule.
func ParseRule(s string) (PronunciationRule, error) {
	switch PronunciationRule(strings.ToLower(strings.TrimSpace(s))) {
	case "", PronunciationFromAccuracy:
		return PronunciationFromAccuracy, nil
	case PronunciationFromOverall:
		return PronunciationFromOverall, nil
	}
	return "", fmt.Errorf("unknown pronunciation rule %q (allowed: accuracy, overall)", s)
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.Rule == "" {
		c.Rule = d.Rule
	}
	if c.MaxMistakes <= 0 {
		c.MaxMistakes = d.MaxMistakes
	}
	if c.MatchThreshold <= 0 || c.MatchThreshold > 1 {
		c.MatchThreshold = d.MatchThreshold
	}
	if c.HesitationPenalty <= 0 {
		c.HesitationPenalty = d.HesitationPenalty
	}
	return c
}
