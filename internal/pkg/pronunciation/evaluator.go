package pronunciation

import (
	"math"

	"github.com/evandrarf/lingua-level-be/internal/pkg/textscore"
)

// Evaluator scores attempts. It is immutable and safe for concurrent use.
type Evaluator struct {
	cfg    Config
	scorer *textscore.Scorer
}

// New creates an Evaluator. Zero-valued fields of cfg take their defaults.
func New(cfg Config) *Evaluator {
	return &Evaluator{
		cfg:    cfg.withDefaults(),
		scorer: textscore.NewScorer(),
	}
}

// Config returns the effective configuration.
func (e *Evaluator) Config() Config {
	return e.cfg
}

// Evaluate scores spoken against target without recognizer confidence.
// Fluency is estimated from accuracy minus the hesitation penalty; a perfect
// match keeps full fluency.
func (e *Evaluator) Evaluate(target, spoken string) Score {
	return e.evaluate(target, spoken, func(accuracy int) int {
		if accuracy >= 100 {
			return 100
		}
		return max(accuracy-e.cfg.HesitationPenalty, 0)
	})
}

// EvaluateAttempt scores an attempt using its recognizer confidence as the
// fluency estimate. Confidence outside [0, 1] is clamped; NaN counts as 0.
func (e *Evaluator) EvaluateAttempt(a Attempt) Score {
	confidence := a.Confidence
	if math.IsNaN(confidence) {
		confidence = 0
	}
	confidence = math.Min(math.Max(confidence, 0), 1)
	return e.evaluate(a.TargetText, a.SpokenText, func(int) int {
		return roundInt(confidence * 100)
	})
}

func (e *Evaluator) evaluate(target, spoken string, fluencyFor func(accuracy int) int) Score {
	t := e.scorer.Tokens(target)
	s := e.scorer.Tokens(spoken)
	if len(t) == 0 || len(s) == 0 {
		return Score{
			Feedback: EmptyAttemptFeedback,
			Mistakes: []Mistake{},
		}
	}

	accuracy := roundInt(e.scorer.Similarity(target, spoken))
	fluency := clampScore(fluencyFor(accuracy))

	var pron int
	switch e.cfg.Rule {
	case PronunciationFromOverall:
		pron = roundInt(float64(roundInt(mean(accuracy, fluency))) * overallPronunciationRate)
	default:
		pron = accuracy
	}
	pron = clampScore(pron)

	overall := clampScore(roundInt(mean(accuracy, fluency, pron)))

	return Score{
		OverallScore:       overall,
		AccuracyScore:      accuracy,
		FluencyScore:       fluency,
		PronunciationScore: pron,
		Feedback:           FeedbackFor(overall),
		Mistakes:           findMistakes(t, s, e.cfg.MatchThreshold, e.cfg.MaxMistakes),
	}
}

func mean(vals ...int) float64 {
	var sum int
	for _, v := range vals {
		sum += v
	}
	return float64(sum) / float64(len(vals))
}

func roundInt(v float64) int {
	return int(math.Round(v))
}

func clampScore(v int) int {
	return min(max(v, 0), 100)
}
