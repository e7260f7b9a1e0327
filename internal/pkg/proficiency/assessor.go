package proficiency

import (
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/evandrarf/lingua-level-be/internal/pkg/cefr"
)

// Assessor runs the module calculators and combines their results.
type Assessor struct{}

func NewAssessor() *Assessor {
	return &Assessor{}
}

// Assess computes every module concurrently. The only error is ctx being
// done before the calculators finish.
func (a *Assessor) Assess(ctx context.Context, p Profile) (*OverallAssessment, error) {
	results := make([]cefr.ModuleAssessment, len(cefr.AllModules))

	g, gctx := errgroup.WithContext(ctx)
	for i, m := range cefr.AllModules {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = cefr.Calculate(m, p[m])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("assess proficiency: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("assess proficiency: %w", err)
	}

	return Summarize(results), nil
}

// Summarize builds the overall assessment from module results. Modules
// missing from results are filled with their empty assessment.
func Summarize(results []cefr.ModuleAssessment) *OverallAssessment {
	modules := make(map[cefr.Module]cefr.ModuleAssessment, len(cefr.AllModules))
	for _, r := range results {
		modules[r.Module] = r
	}
	for _, m := range cefr.AllModules {
		if _, ok := modules[m]; !ok {
			modules[m] = cefr.Empty(m)
		}
	}

	levels := make([]cefr.Level, 0, len(cefr.AllModules))
	for _, m := range cefr.AllModules {
		levels = append(levels, modules[m].Level)
	}

	return &OverallAssessment{
		OverallLevel:    MedianLevel(levels),
		Modules:         modules,
		StrongestModule: pick(modules, func(a, b float64) bool { return a > b }),
		WeakestModule:   pick(modules, func(a, b float64) bool { return a < b }),
	}
}

// MedianLevel returns the median level, taking the lower of the two middle
// values when len(levels) is even. An empty slice yields A1.
func MedianLevel(levels []cefr.Level) cefr.Level {
	if len(levels) == 0 {
		return cefr.A1
	}
	sorted := slices.Clone(levels)
	slices.Sort(sorted)
	return sorted[(len(sorted)-1)/2]
}

// pick walks modules in tie-break order so the first module to satisfy
// better wins on equal scores.
func pick(modules map[cefr.Module]cefr.ModuleAssessment, better func(a, b float64) bool) cefr.Module {
	var (
		best  cefr.Module
		score float64
	)
	for _, m := range cefr.TieBreakOrder {
		ma, ok := modules[m]
		if !ok {
			continue
		}
		if best == "" || better(ma.Score, score) {
			best, score = m, ma.Score
		}
	}
	return best
}
