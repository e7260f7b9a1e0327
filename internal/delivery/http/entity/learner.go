package entity

import (
	"github.com/evandrarf/lingua-level-be/internal/pkg/pronunciation"
	"github.com/evandrarf/lingua-level-be/internal/pkg/proficiency"
)

// Request to score one spoken attempt. Empty texts are scored as 0, not rejected.
type EvaluatePronunciationRequest struct {
	TargetText string   `json:"targetText" validate:"max=1000"`
	SpokenText string   `json:"spokenText" validate:"max=1000"`
	Confidence *float64 `json:"confidence"`
	LearnerID  string   `json:"learnerId" validate:"max=100"`
}

type PronunciationEvaluationResponse struct {
	Score pronunciation.Score `json:"score"`
	// Prompts are the lines a client reads aloud: the target, then the feedback.
	Prompts    []string `json:"prompts"`
	ActivityID string   `json:"activityId,omitempty"`
}

type RecordActivityRequest struct {
	LearnerID       string   `json:"learnerId" validate:"required,max=100"`
	Module          string   `json:"module" validate:"required,cefr_module"`
	Accuracy        *float64 `json:"accuracy" validate:"required"`
	DurationSeconds float64  `json:"durationSeconds"`
}

type ActivityResponse struct {
	ID              string  `json:"id"`
	LearnerID       string  `json:"learnerId"`
	Module          string  `json:"module"`
	Accuracy        float64 `json:"accuracy"`
	DurationSeconds float64 `json:"durationSeconds"`
	RecordedAt      string  `json:"recordedAt"`
}

type WordbookRequest struct {
	LearnerID string `json:"learnerId" validate:"required,max=100"`
	Word      string `json:"word" validate:"required,max=100"`
	Mastered  bool   `json:"mastered"`
}

type WordbookResponse struct {
	LearnerID     string `json:"learnerId"`
	Word          string `json:"word"`
	Mastered      bool   `json:"mastered"`
	MasteredWords int64  `json:"masteredWords"`
}

// Stateless assessment of caller-supplied statistics.
type AssessRequest struct {
	Modules proficiency.Profile `json:"modules"`
}

type RecommendRequest struct {
	Assessment *proficiency.OverallAssessment `json:"assessment" validate:"required"`
}

type LearnerProficiencyResponse struct {
	LearnerID      string                            `json:"learnerId"`
	WindowDays     int                               `json:"windowDays"`
	Assessment     *proficiency.OverallAssessment    `json:"assessment"`
	Recommendation proficiency.UpgradeRecommendation `json:"recommendation"`
	Coaching       string                            `json:"coaching"`
	CoachingSource string                            `json:"coachingSource"`
	Cached         bool                              `json:"cached"`
	GeneratedAt    string                            `json:"generatedAt"`
}
