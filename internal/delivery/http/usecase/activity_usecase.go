package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/evandrarf/lingua-level-be/internal/delivery/http/entity"
	"github.com/evandrarf/lingua-level-be/internal/delivery/http/repository"
	internalEntity "github.com/evandrarf/lingua-level-be/internal/entity"
	"github.com/evandrarf/lingua-level-be/internal/pkg/cefr"
	"github.com/evandrarf/lingua-level-be/internal/pkg/mapper"
	"github.com/evandrarf/lingua-level-be/internal/pkg/practice"
	"github.com/evandrarf/lingua-level-be/internal/pkg/pronunciation"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ErrInvalidInput marks errors caused by the request rather than the backend.
var ErrInvalidInput = errors.New("invalid input")

type ActivityUsecase interface {
	EvaluatePronunciation(ctx context.Context, req entity.EvaluatePronunciationRequest) (*entity.PronunciationEvaluationResponse, error)
	RecordActivity(ctx context.Context, req entity.RecordActivityRequest) (*entity.ActivityResponse, error)
	UpdateWordbook(ctx context.Context, req entity.WordbookRequest) (*entity.WordbookResponse, error)
}

type ActivityConfig struct {
	DB         *gorm.DB
	Log        *logrus.Logger
	Evaluator  *pronunciation.Evaluator
	Repository repository.LearnerRepository
	Now        func() time.Time
}

type activityUsecase struct {
	cfg ActivityConfig
}

func NewActivityUsecase(cfg ActivityConfig) ActivityUsecase {
	if cfg.Evaluator == nil {
		cfg.Evaluator = pronunciation.New(pronunciation.DefaultConfig())
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Log == nil {
		cfg.Log = logrus.StandardLogger()
	}
	return &activityUsecase{cfg: cfg}
}

// EvaluatePronunciation scores a transcript recognized on the client. With a
// learner id the attempt is also stored as a pronunciation activity.
func (u *activityUsecase) EvaluatePronunciation(ctx context.Context, req entity.EvaluatePronunciationRequest) (*entity.PronunciationEvaluationResponse, error) {
	transcript := practice.Transcript{Text: req.SpokenText}
	if req.Confidence != nil {
		transcript.Confidence = *req.Confidence
		transcript.HasConfidence = true
	}

	voice := &practice.Recorder{}
	runner := practice.NewRunner(u.cfg.Evaluator, practice.StaticCapture{Transcript: transcript}, voice)
	result, err := runner.Run(ctx, req.TargetText)
	if err != nil {
		return nil, fmt.Errorf("failed to run attempt: %w", err)
	}

	resp := &entity.PronunciationEvaluationResponse{
		Score:   result.Score,
		Prompts: voice.Lines(),
	}

	learnerID := strings.TrimSpace(req.LearnerID)
	if learnerID == "" || strings.TrimSpace(req.TargetText) == "" {
		return resp, nil
	}

	record := &internalEntity.ActivityRecord{
		RecordID:   uuid.NewString(),
		LearnerID:  learnerID,
		Module:     string(cefr.ModulePronunciation),
		Accuracy:   float64(result.Score.OverallScore),
		TargetText: req.TargetText,
		SpokenText: req.SpokenText,
		RecordedAt: u.cfg.Now(),
	}
	if err := u.cfg.Repository.CreateActivity(u.cfg.DB, record); err != nil {
		return nil, fmt.Errorf("failed to save attempt: %w", err)
	}
	resp.ActivityID = record.RecordID

	u.cfg.Log.WithFields(logrus.Fields{
		"learner_id": learnerID,
		"overall":    result.Score.OverallScore,
		"mistakes":   len(result.Score.Mistakes),
	}).Debug("pronunciation attempt stored")

	return resp, nil
}

func (u *activityUsecase) RecordActivity(ctx context.Context, req entity.RecordActivityRequest) (*entity.ActivityResponse, error) {
	module, err := cefr.ParseModule(strings.ToLower(strings.TrimSpace(req.Module)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if module == cefr.ModuleVocabulary {
		return nil, fmt.Errorf("%w: vocabulary progress is recorded through the wordbook", ErrInvalidInput)
	}

	accuracy := 0.0
	if req.Accuracy != nil {
		accuracy = cefr.Percent(*req.Accuracy)
	}

	record := &internalEntity.ActivityRecord{
		RecordID:        uuid.NewString(),
		LearnerID:       strings.TrimSpace(req.LearnerID),
		Module:          string(module),
		Accuracy:        accuracy,
		DurationSeconds: cefr.NonNegative(req.DurationSeconds),
		RecordedAt:      u.cfg.Now(),
	}
	if err := u.cfg.Repository.CreateActivity(u.cfg.DB, record); err != nil {
		return nil, fmt.Errorf("failed to save activity: %w", err)
	}

	resp := mapper.ToActivityResponse(record)
	return &resp, nil
}

func (u *activityUsecase) UpdateWordbook(ctx context.Context, req entity.WordbookRequest) (*entity.WordbookResponse, error) {
	word := strings.ToLower(strings.TrimSpace(req.Word))
	if word == "" {
		return nil, fmt.Errorf("%w: word cannot be empty", ErrInvalidInput)
	}

	entry := &internalEntity.WordbookEntry{
		LearnerID: strings.TrimSpace(req.LearnerID),
		Word:      word,
		Mastered:  req.Mastered,
	}
	if err := u.cfg.Repository.UpsertWordbookEntry(u.cfg.DB, entry); err != nil {
		return nil, fmt.Errorf("failed to save wordbook entry: %w", err)
	}

	mastered, err := u.cfg.Repository.CountMasteredWords(u.cfg.DB, entry.LearnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count mastered words: %w", err)
	}

	return &entity.WordbookResponse{
		LearnerID:     entry.LearnerID,
		Word:          entry.Word,
		Mastered:      req.Mastered,
		MasteredWords: mastered,
	}, nil
}
