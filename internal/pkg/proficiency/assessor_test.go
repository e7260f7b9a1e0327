package proficiency

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evandrarf/lingua-level-be/internal/pkg/cefr"
)

func TestAssessor_EmptyProfile(t *testing.T) {
	got, err := NewAssessor().Assess(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, cefr.A1, got.OverallLevel)
	assert.Len(t, got.Modules, len(cefr.AllModules))
	for _, m := range cefr.AllModules {
		assert.Equal(t, cefr.Empty(m), got.Modules[m], m)
	}
	assert.Equal(t, cefr.ModuleReading, got.StrongestModule)
	assert.Equal(t, cefr.ModuleReading, got.WeakestModule)
}

func TestAssessor_MixedProfile(t *testing.T) {
	profile := Profile{
		cefr.ModuleVocabulary:    cefr.VocabularyStats{MasteredWords: 4200},
		cefr.ModulePronunciation: cefr.PronunciationStats{AverageAccuracy: 92, Attempts: 30},
		cefr.ModuleReading:       cefr.ReadingStats{ComprehensionAccuracy: 80, AverageReadingTimeSeconds: 600, Attempts: 12},
		cefr.ModuleListening:     cefr.ListeningStats{AverageAccuracy: 92, Attempts: 8},
		cefr.ModuleWriting:       cefr.WritingStats{AverageScore: 50, Attempts: 4},
	}

	got, err := NewAssessor().Assess(context.Background(), profile)
	require.NoError(t, err)

	assert.Equal(t, cefr.B2, got.Modules[cefr.ModuleVocabulary].Level)
	assert.Equal(t, cefr.C1, got.Modules[cefr.ModulePronunciation].Level)
	assert.Equal(t, cefr.C1, got.Modules[cefr.ModuleReading].Level)
	assert.Equal(t, cefr.C1, got.Modules[cefr.ModuleListening].Level)
	assert.Equal(t, cefr.A1, got.Modules[cefr.ModuleWriting].Level)

	// A1 B2 C1 C1 C1
	assert.Equal(t, cefr.C1, got.OverallLevel)
	// pronunciation and listening tie on 92; listening ranks first.
	assert.Equal(t, cefr.ModuleListening, got.StrongestModule)
	assert.Equal(t, cefr.ModuleWriting, got.WeakestModule)
}

func TestAssessor_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := NewAssessor().Assess(ctx, Profile{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, got)
}

func TestMedianLevel(t *testing.T) {
	tests := []struct {
		name   string
		levels []cefr.Level
		want   cefr.Level
	}{
		{"empty", nil, cefr.A1},
		{"single", []cefr.Level{cefr.B2}, cefr.B2},
		{"odd", []cefr.Level{cefr.C2, cefr.A1, cefr.B1, cefr.B2, cefr.A2}, cefr.B1},
		{"even takes lower", []cefr.Level{cefr.A1, cefr.B2}, cefr.A1},
		{"even four", []cefr.Level{cefr.C2, cefr.A2, cefr.C1, cefr.B1}, cefr.B1},
		{"outlier ignored", []cefr.Level{cefr.C1, cefr.C1, cefr.C1, cefr.C1, cefr.A1}, cefr.C1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := append([]cefr.Level(nil), tt.levels...)
			assert.Equal(t, tt.want, MedianLevel(in))
			assert.Equal(t, tt.levels, in, "input must not be reordered")
		})
	}
}

func TestSummarize_FillsMissingModules(t *testing.T) {
	got := Summarize([]cefr.ModuleAssessment{
		cefr.CalculateWriting(cefr.WritingStats{AverageScore: 96, Attempts: 3}),
	})
	assert.Len(t, got.Modules, len(cefr.AllModules))
	assert.Equal(t, cefr.ModuleWriting, got.StrongestModule)
	assert.Equal(t, cefr.A1, got.OverallLevel)
}

func TestProfile_UnmarshalJSON(t *testing.T) {
	var p Profile
	err := json.Unmarshal([]byte(`{
		"vocabulary": {"masteredWords": 4200},
		"speaking": {"averageAccuracy": 92, "attempts": 3}
	}`), &p)
	require.NoError(t, err)

	assert.Equal(t, cefr.VocabularyStats{MasteredWords: 4200}, p[cefr.ModuleVocabulary])
	assert.Equal(t, cefr.PronunciationStats{AverageAccuracy: 92, Attempts: 3}, p[cefr.ModulePronunciation])

	assert.Error(t, json.Unmarshal([]byte(`{"grammar": {}}`), &p))
}

func TestOverallAssessment_JSON(t *testing.T) {
	in, err := NewAssessor().Assess(context.Background(), Profile{
		cefr.ModuleReading: cefr.ReadingStats{ComprehensionAccuracy: 70, AverageReadingTimeSeconds: 300, Attempts: 9},
	})
	require.NoError(t, err)

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"overallLevel":"A1"`)

	var out OverallAssessment
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, *in, out)
}

func TestOverallAssessment_UnmarshalNormalizesKeys(t *testing.T) {
	var a OverallAssessment
	require.NoError(t, json.Unmarshal([]byte(`{
		"overallLevel": "B1",
		"modules": {
			"speaking": {
				"module": "pronunciation", "level": "B2", "score": 88, "levelScore": 88,
				"raw": {"averageAccuracy": 88, "attempts": 70}
			}
		},
		"strongestModule": "speaking",
		"weakestModule": "reading"
	}`), &a))

	pron := a.Module(cefr.ModulePronunciation)
	assert.Equal(t, cefr.ModulePronunciation, pron.Module)
	assert.Equal(t, 88.0, pron.LevelScore)
	assert.Equal(t, cefr.ModulePronunciation, a.StrongestModule)

	rec := NewRecommender().Recommend(&a)
	for _, lr := range rec.Requirements {
		if lr.Module == cefr.ModulePronunciation {
			assert.Equal(t, 88.0, lr.CurrentAccuracy)
			assert.Equal(t, 70, lr.CurrentAttempts)
		}
	}
}

func TestOverallAssessment_UnmarshalRejectsBadKeys(t *testing.T) {
	var a OverallAssessment
	assert.Error(t, json.Unmarshal([]byte(`{"overallLevel":"A1","modules":{"grammar":{"module":"writing"}}}`), &a))
	assert.Error(t, json.Unmarshal([]byte(`{"overallLevel":"A1","modules":{"reading":{"module":"writing"}}}`), &a))
}
