package proficiency

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evandrarf/lingua-level-be/internal/pkg/cefr"
)

func assessmentAt(level cefr.Level, modules ...cefr.ModuleAssessment) *OverallAssessment {
	a := Summarize(modules)
	a.OverallLevel = level
	return a
}

func TestRecommend_ReadingBelowNextLevel(t *testing.T) {
	a := assessmentAt(cefr.B1,
		cefr.CalculateVocabulary(cefr.VocabularyStats{MasteredWords: 5000}),
		cefr.CalculatePronunciation(cefr.PronunciationStats{AverageAccuracy: 88, Attempts: 70}),
		// 60*0.7 + (100-2400/60)*0.3 = 60
		cefr.CalculateReading(cefr.ReadingStats{ComprehensionAccuracy: 60, AverageReadingTimeSeconds: 2400, Attempts: 70}),
		cefr.CalculateListening(cefr.ListeningStats{AverageAccuracy: 90, Attempts: 60}),
		cefr.CalculateWriting(cefr.WritingStats{AverageScore: 86, Attempts: 61}),
	)

	got := NewRecommender().Recommend(a)

	assert.False(t, got.CanUpgrade)
	require.NotNil(t, got.NextLevel)
	assert.Equal(t, cefr.B2, *got.NextLevel)
	assert.Equal(t, 80.0, got.OverallProgress)
	assert.Equal(t, TimeOneTwoWeeks, got.EstimatedTime)

	require.Len(t, got.Requirements, len(cefr.AllModules))
	for _, lr := range got.Requirements {
		if lr.Module == cefr.ModuleReading {
			assert.False(t, lr.Met)
			assert.Equal(t, 70.0, lr.RequiredAccuracy)
			assert.InDelta(t, 60.0, lr.CurrentAccuracy, 1e-9)
			continue
		}
		assert.True(t, lr.Met, lr.Module)
	}

	require.Len(t, got.PriorityAreas, 1)
	assert.Contains(t, got.PriorityAreas[0], "reading")
}

func TestRecommend_AllMet(t *testing.T) {
	a := assessmentAt(cefr.A1,
		cefr.CalculateVocabulary(cefr.VocabularyStats{MasteredWords: 1500}),
		cefr.CalculatePronunciation(cefr.PronunciationStats{AverageAccuracy: 70, Attempts: 20}),
		cefr.CalculateReading(cefr.ReadingStats{ComprehensionAccuracy: 60, AverageReadingTimeSeconds: 60, Attempts: 20}),
		cefr.CalculateListening(cefr.ListeningStats{AverageAccuracy: 65, Attempts: 25}),
		cefr.CalculateWriting(cefr.WritingStats{AverageScore: 66, Attempts: 20}),
	)

	got := NewRecommender().Recommend(a)

	assert.True(t, got.CanUpgrade)
	assert.Equal(t, cefr.A2, *got.NextLevel)
	assert.Equal(t, 100.0, got.OverallProgress)
	assert.Equal(t, TimeMet, got.EstimatedTime)
	assert.Empty(t, got.PriorityAreas)
}

func TestRecommend_NoHistory(t *testing.T) {
	got := NewRecommender().Recommend(nil)

	assert.False(t, got.CanUpgrade)
	assert.Equal(t, cefr.A2, *got.NextLevel)
	assert.Zero(t, got.OverallProgress)
	assert.Equal(t, TimeLonger, got.EstimatedTime)

	require.Len(t, got.PriorityAreas, maxPriorityAreas)
	// pronunciation, listening and writing each need 6.5 units; listening
	// ranks first among them.
	assert.Contains(t, got.PriorityAreas[0], "listening")
	assert.Equal(t, genericAdvice[cefr.ModuleVocabulary], got.PriorityAreas[1])
	assert.Equal(t, genericAdvice[cefr.ModulePronunciation], got.PriorityAreas[2])
}

func TestRecommend_AttemptsOnlyGap(t *testing.T) {
	a := assessmentAt(cefr.A1,
		cefr.CalculateVocabulary(cefr.VocabularyStats{MasteredWords: 2000}),
		cefr.CalculatePronunciation(cefr.PronunciationStats{AverageAccuracy: 80, Attempts: 10}),
		cefr.CalculateReading(cefr.ReadingStats{ComprehensionAccuracy: 60, AverageReadingTimeSeconds: 60, Attempts: 20}),
		cefr.CalculateListening(cefr.ListeningStats{AverageAccuracy: 65, Attempts: 25}),
		cefr.CalculateWriting(cefr.WritingStats{AverageScore: 66, Attempts: 20}),
	)

	got := NewRecommender().Recommend(a)

	assert.False(t, got.CanUpgrade)
	assert.Equal(t, TimeOneTwoWeeks, got.EstimatedTime)
	assert.Equal(t, []string{genericAdvice[cefr.ModulePronunciation]}, got.PriorityAreas)
}

func TestRecommend_TerminalAtC2(t *testing.T) {
	got := NewRecommender().Recommend(assessmentAt(cefr.C2))

	assert.False(t, got.CanUpgrade)
	assert.Nil(t, got.NextLevel)
	assert.Equal(t, TerminalMessage, got.Message)
	assert.Equal(t, 100.0, got.OverallProgress)
	assert.NotNil(t, got.Requirements)
	assert.NotNil(t, got.PriorityAreas)
}

func TestRecommend_MissingRequirementPanics(t *testing.T) {
	r := NewRecommender(WithRequirements(RequirementTable{}))
	assert.Panics(t, func() { r.Recommend(assessmentAt(cefr.A1)) })

	partial := DefaultRequirements()
	delete(partial[cefr.B1], cefr.ModuleWriting)
	assert.PanicsWithValue(t, "proficiency: no requirement for writing at B1", func() {
		partial.Lookup(cefr.B1, cefr.ModuleWriting)
	})
}

func TestDefaultRequirements(t *testing.T) {
	table := DefaultRequirements()
	for _, level := range cefr.Levels[1:] {
		for _, m := range cefr.AllModules {
			req := table.Lookup(level, m)
			ladder, _ := cefr.LadderFor(m)
			want, _ := ladder.Min(level)
			assert.Equal(t, want, req.RequiredAccuracy, "%s %s", level, m)
		}
	}
	assert.Equal(t, 0, table.Lookup(cefr.C2, cefr.ModuleVocabulary).MinimumAttempts)
	assert.Equal(t, 60, table.Lookup(cefr.B2, cefr.ModuleReading).MinimumAttempts)
}

func TestEstimateTime(t *testing.T) {
	tests := []struct {
		gap  float64
		want string
	}{
		{0, TimeMet},
		{0.5, TimeOneTwoWeeks},
		{2, TimeOneTwoWeeks},
		{3, TimeThreeFour},
		{4, TimeThreeFour},
		{5.5, TimeOneTwoMonth},
		{10, TimeTwoThree},
		{10.1, TimeLonger},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, EstimateTime(tt.gap), "gap=%v", tt.gap)
	}
}
