package entity

import (
	"time"

	"gorm.io/gorm"
)

// ActivityRecord is one scored practice attempt of a learner.
type ActivityRecord struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	RecordID        string         `gorm:"uniqueIndex;size:64;not null" json:"record_id"`
	LearnerID       string         `gorm:"size:100;not null;index:idx_activity_learner_time" json:"learner_id"`
	Module          string         `gorm:"size:20;not null;index" json:"module"`            // pronunciation, reading, listening, writing
	Accuracy        float64        `gorm:"not null" json:"accuracy"`                        // 0-100
	DurationSeconds float64        `gorm:"not null;default:0" json:"duration_seconds"`      // reading time for reading records
	TargetText      string         `gorm:"type:text" json:"target_text"`                    // pronunciation only
	SpokenText      string         `gorm:"type:text" json:"spoken_text"`                    // pronunciation only
	RecordedAt      time.Time      `gorm:"not null;index:idx_activity_learner_time" json:"recorded_at"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (ActivityRecord) TableName() string {
	return "activity_records"
}

// WordbookEntry tracks whether a learner has mastered a word.
type WordbookEntry struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	LearnerID string         `gorm:"size:100;not null;uniqueIndex:idx_wordbook_learner_word" json:"learner_id"`
	Word      string         `gorm:"size:100;not null;uniqueIndex:idx_wordbook_learner_word" json:"word"`
	Mastered  bool           `gorm:"not null;default:false" json:"mastered"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (WordbookEntry) TableName() string {
	return "wordbook_entries"
}

// ProficiencySnapshot caches the last assessment of a learner together with
// the hash of the statistics it was computed from.
type ProficiencySnapshot struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	LearnerID      string         `gorm:"uniqueIndex;size:100;not null" json:"learner_id"`
	StatsHash      string         `gorm:"size:64;not null" json:"stats_hash"`
	OverallLevel   string         `gorm:"size:5;not null" json:"overall_level"`
	Assessment     string         `gorm:"type:text;not null" json:"assessment"`     // JSON OverallAssessment
	Recommendation string         `gorm:"type:text;not null" json:"recommendation"` // JSON UpgradeRecommendation
	Coaching       string         `gorm:"type:text" json:"coaching"`
	CoachingSource string         `gorm:"size:20" json:"coaching_source"` // llm, fallback
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (ProficiencySnapshot) TableName() string {
	return "proficiency_snapshots"
}

// ModuleAggregate is one row of the per-module activity aggregation.
type ModuleAggregate struct {
	Module                 string
	Attempts               int
	AverageAccuracy        float64
	AverageDurationSeconds float64
}
