package mapper

import (
	"time"

	httpEntity "github.com/evandrarf/lingua-level-be/internal/delivery/http/entity"
	dbEntity "github.com/evandrarf/lingua-level-be/internal/entity"
	"github.com/evandrarf/lingua-level-be/internal/pkg/cefr"
	"github.com/evandrarf/lingua-level-be/internal/pkg/proficiency"
)

// ToActivityResponse converts a stored activity record to its API shape.
func ToActivityResponse(record *dbEntity.ActivityRecord) httpEntity.ActivityResponse {
	return httpEntity.ActivityResponse{
		ID:              record.RecordID,
		LearnerID:       record.LearnerID,
		Module:          record.Module,
		Accuracy:        record.Accuracy,
		DurationSeconds: record.DurationSeconds,
		RecordedAt:      record.RecordedAt.Format(time.RFC3339),
	}
}

// ToProfile builds calculator input from activity aggregates and the
// learner's mastered word count. Rows of unknown modules are ignored and
// vocabulary always comes from the wordbook.
func ToProfile(rows []dbEntity.ModuleAggregate, masteredWords int64) proficiency.Profile {
	profile := proficiency.Profile{
		cefr.ModuleVocabulary: cefr.VocabularyStats{MasteredWords: int(masteredWords)},
	}
	for _, row := range rows {
		m, err := cefr.ParseModule(row.Module)
		if err != nil {
			continue
		}
		switch m {
		case cefr.ModulePronunciation:
			profile[m] = cefr.PronunciationStats{AverageAccuracy: row.AverageAccuracy, Attempts: row.Attempts}
		case cefr.ModuleReading:
			profile[m] = cefr.ReadingStats{
				ComprehensionAccuracy:     row.AverageAccuracy,
				AverageReadingTimeSeconds: row.AverageDurationSeconds,
				Attempts:                  row.Attempts,
			}
		case cefr.ModuleListening:
			profile[m] = cefr.ListeningStats{AverageAccuracy: row.AverageAccuracy, Attempts: row.Attempts}
		case cefr.ModuleWriting:
			profile[m] = cefr.WritingStats{AverageScore: row.AverageAccuracy, Attempts: row.Attempts}
		}
	}
	return profile
}
