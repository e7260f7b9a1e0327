package proficiency

import (
	"fmt"
	"math"

	"github.com/evandrarf/lingua-level-be/internal/pkg/cefr"
)

const (
	maxPriorityAreas = 3

	TimeMet         = "met"
	TimeOneTwoWeeks = "1-2 weeks"
	TimeThreeFour   = "3-4 weeks"
	TimeOneTwoMonth = "1-2 months"
	TimeTwoThree    = "2-3 months"
	TimeLonger      = "3+ months"

	TerminalMessage = "You have reached C2, the highest CEFR level. Keep practicing to stay there."
)

var timeBuckets = []struct {
	max   float64
	label string
}{
	{0, TimeMet},
	{2, TimeOneTwoWeeks},
	{4, TimeThreeFour},
	{6, TimeOneTwoMonth},
	{10, TimeTwoThree},
}

var genericAdvice = map[cefr.Module]string{
	cefr.ModuleVocabulary:    "Review your wordbook every day to grow your mastered vocabulary.",
	cefr.ModulePronunciation: "Repeat short phrases aloud and compare them with the model audio.",
	cefr.ModuleReading:       "Read one graded text a day and answer its comprehension questions.",
	cefr.ModuleListening:     "Listen to short dialogues and check your answers right after.",
	cefr.ModuleWriting:       "Write a short paragraph every few days and review the corrections.",
}

type Option func(*Recommender)

// WithRequirements replaces the default requirement table.
func WithRequirements(t RequirementTable) Option {
	return func(r *Recommender) {
		r.requirements = t
	}
}

type Recommender struct {
	requirements RequirementTable
}

func NewRecommender(opts ...Option) *Recommender {
	r := &Recommender{requirements: DefaultRequirements()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Recommend compares every module with the requirements of the level above
// the overall one. A nil assessment is treated as a learner with no history.
func (r *Recommender) Recommend(a *OverallAssessment) UpgradeRecommendation {
	if a == nil {
		a = Summarize(nil)
	}

	next, ok := a.OverallLevel.Next()
	if !ok {
		return UpgradeRecommendation{
			CanUpgrade:      false,
			NextLevel:       nil,
			OverallProgress: 100,
			Requirements:    []LevelRequirement{},
			EstimatedTime:   TimeMet,
			PriorityAreas:   []string{},
			Message:         TerminalMessage,
		}
	}

	var (
		reqs    = make([]LevelRequirement, 0, len(cefr.AllModules))
		metN    int
		gapSum  float64
		focus   cefr.Module
		focusBy float64
	)
	for _, m := range cefr.AllModules {
		req := r.requirements.Lookup(next, m)
		lr := requirementFor(a.Module(m), req)
		reqs = append(reqs, lr)
		if lr.Met {
			metN++
			continue
		}

		accuracyGap := math.Max(0, lr.RequiredAccuracy-lr.CurrentAccuracy) / req.GapUnit
		attemptGap := math.Max(0, float64(lr.MinimumAttempts-lr.CurrentAttempts)) / attemptGapUnit
		gapSum += accuracyGap + attemptGap

		if accuracyGap > focusBy || (accuracyGap > 0 && accuracyGap == focusBy && cefr.TieBreakRank(m) < cefr.TieBreakRank(focus)) {
			focus, focusBy = m, accuracyGap
		}
	}

	canUpgrade := metN == len(reqs)
	rec := UpgradeRecommendation{
		CanUpgrade:      canUpgrade,
		NextLevel:       &next,
		OverallProgress: math.Round(float64(metN) / float64(len(reqs)) * 100),
		Requirements:    reqs,
		EstimatedTime:   EstimateTime(gapSum),
		PriorityAreas:   priorityAreas(reqs, focus),
	}
	if canUpgrade {
		rec.Message = fmt.Sprintf("You meet every requirement for %s.", next)
	} else {
		rec.Message = fmt.Sprintf("%d of %d requirements met for %s.", metN, len(reqs), next)
	}
	return rec
}

func requirementFor(ma cefr.ModuleAssessment, req Requirement) LevelRequirement {
	attempts := 0
	if ma.Raw != nil {
		attempts = ma.Raw.AttemptCount()
	}
	current := ma.LevelScore
	if math.IsNaN(current) || current < 0 {
		current = 0
	}
	return LevelRequirement{
		Module:           ma.Module,
		RequiredAccuracy: req.RequiredAccuracy,
		CurrentAccuracy:  current,
		MinimumAttempts:  req.MinimumAttempts,
		CurrentAttempts:  attempts,
		Met:              current >= req.RequiredAccuracy && attempts >= req.MinimumAttempts,
	}
}

// EstimateTime maps the summed gap score to a coarse time bucket.
func EstimateTime(gap float64) string {
	for _, b := range timeBuckets {
		if gap <= b.max {
			return b.label
		}
	}
	return TimeLonger
}

func priorityAreas(reqs []LevelRequirement, focus cefr.Module) []string {
	areas := make([]string, 0, maxPriorityAreas)
	for _, lr := range reqs {
		if lr.Module == focus {
			areas = append(areas, targetedAdvice(lr))
			break
		}
	}
	for _, lr := range reqs {
		if len(areas) == maxPriorityAreas {
			break
		}
		if lr.Met || lr.Module == focus {
			continue
		}
		areas = append(areas, genericAdvice[lr.Module])
	}
	return areas
}

func targetedAdvice(lr LevelRequirement) string {
	if lr.Module == cefr.ModuleVocabulary {
		need := int(math.Ceil(lr.RequiredAccuracy - lr.CurrentAccuracy))
		return fmt.Sprintf("Vocabulary is your biggest gap: master %d more words (%d of %d).",
			need, int(lr.CurrentAccuracy), int(lr.RequiredAccuracy))
	}
	return fmt.Sprintf("Focus on %s: raise it from %.0f%% to %.0f%%.",
		lr.Module, lr.CurrentAccuracy, lr.RequiredAccuracy)
}
