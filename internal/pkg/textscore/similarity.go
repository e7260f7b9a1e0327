package textscore

import (
	"math"
	"strings"
)

const (
	exactCredit     = 1.0
	caseOnlyCredit  = 0.8
	partialCredit   = 0.6
	mismatchPenalty = 0.3
)

// Option configures a Scorer.
type Option func(*Scorer)

// WithPreserveCase keeps the original casing of both strings so that words
// differing only in case earn reduced credit instead of full credit.
func WithPreserveCase() Option {
	return func(s *Scorer) {
		s.preserveCase = true
	}
}

// Scorer computes position-aligned similarity between two utterances.
// A Scorer is immutable and safe for concurrent use.
type Scorer struct {
	preserveCase bool
}

// NewScorer returns a Scorer configured with opts.
func NewScorer(opts ...Option) *Scorer {
	s := &Scorer{}
	for _, o := range opts {
		o(s)
	}
	return s
}

var defaultScorer = NewScorer()

// Similarity scores spoken against target with the default lowercasing scorer.
func Similarity(target, spoken string) float64 {
	return defaultScorer.Similarity(target, spoken)
}

// Tokens splits s the way this scorer compares words.
func (s *Scorer) Tokens(text string) []string {
	return tokenize(text, !s.preserveCase)
}

// Similarity returns a whole number in [0, 100]. Two empty utterances are
// equal (100); one empty side scores 0.
func (s *Scorer) Similarity(target, spoken string) float64 {
	t := s.Tokens(target)
	sp := s.Tokens(spoken)

	if len(t) == 0 || len(sp) == 0 {
		if len(t) == 0 && len(sp) == 0 {
			return 100
		}
		return 0
	}

	longest := max(len(t), len(sp))
	var sum float64
	for _, p := range Align(t, sp) {
		sum += wordCredit(p)
	}

	base := sum / float64(longest)
	penalty := math.Abs(float64(len(t)-len(sp))) / float64(longest)
	final := clamp(base*(1-mismatchPenalty*penalty), 0, 1)

	return math.Round(final * 100)
}

func wordCredit(p WordPair) float64 {
	if !p.HasTarget || !p.HasSpoken {
		return 0
	}
	switch {
	case p.Target == p.Spoken:
		return exactCredit
	case strings.EqualFold(p.Target, p.Spoken):
		return caseOnlyCredit
	}
	return partialCredit * WordSimilarity(p.Target, p.Spoken)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
