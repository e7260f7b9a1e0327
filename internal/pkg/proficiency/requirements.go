package proficiency

import (
	"fmt"

	"github.com/evandrarf/lingua-level-be/internal/pkg/cefr"
)

// Requirement is what one module must show before a learner moves up to a level.
type Requirement struct {
	// RequiredAccuracy is in the unit of the module's level metric: percent
	// for most modules, mastered words for vocabulary.
	RequiredAccuracy float64
	MinimumAttempts  int
	// GapUnit is how much of the metric counts as one unit of remaining work.
	GapUnit float64
}

// RequirementTable maps a target level to the requirement of every module.
type RequirementTable map[cefr.Level]map[cefr.Module]Requirement

const (
	accuracyGapUnit   = 10
	vocabularyGapUnit = 250
	attemptGapUnit    = 5
)

var minimumAttempts = map[cefr.Level]int{
	cefr.A2: 20,
	cefr.B1: 40,
	cefr.B2: 60,
	cefr.C1: 80,
	cefr.C2: 100,
}

// DefaultRequirements derives the table from the module level ladders, so a
// requirement is met exactly when the module itself reaches the level.
func DefaultRequirements() RequirementTable {
	table := make(RequirementTable, len(minimumAttempts))
	for _, level := range cefr.Levels[1:] {
		row := make(map[cefr.Module]Requirement, len(cefr.AllModules))
		for _, m := range cefr.AllModules {
			ladder, _ := cefr.LadderFor(m)
			threshold, _ := ladder.Min(level)
			req := Requirement{
				RequiredAccuracy: threshold,
				MinimumAttempts:  minimumAttempts[level],
				GapUnit:          accuracyGapUnit,
			}
			if m == cefr.ModuleVocabulary {
				req.MinimumAttempts = 0
				req.GapUnit = vocabularyGapUnit
			}
			row[m] = req
		}
		table[level] = row
	}
	return table
}

// Lookup returns the requirement for module m at level. The table is static
// data, so a missing entry panics.
func (t RequirementTable) Lookup(level cefr.Level, m cefr.Module) Requirement {
	req, ok := t[level][m]
	if !ok {
		panic(fmt.Sprintf("proficiency: no requirement for %s at %s", m, level))
	}
	if req.GapUnit <= 0 {
		req.GapUnit = accuracyGapUnit
	}
	return req
}
