package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/evandrarf/lingua-level-be/internal/delivery/http/entity"
	"github.com/evandrarf/lingua-level-be/internal/delivery/http/repository"
	internalEntity "github.com/evandrarf/lingua-level-be/internal/entity"
	"github.com/evandrarf/lingua-level-be/internal/pkg/cefr"
	"github.com/evandrarf/lingua-level-be/internal/pkg/llm"
	"github.com/evandrarf/lingua-level-be/internal/pkg/mapper"
	"github.com/evandrarf/lingua-level-be/internal/pkg/proficiency"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	CoachingSourceLLM      = "llm"
	CoachingSourceFallback = "fallback"

	defaultWindowDays = 30
	coachingTimeout   = 15 * time.Second
)

type ProficiencyUsecase interface {
	Assess(ctx context.Context, profile proficiency.Profile) (*proficiency.OverallAssessment, error)
	Recommend(ctx context.Context, assessment *proficiency.OverallAssessment) (*proficiency.UpgradeRecommendation, error)
	GetLearnerProficiency(ctx context.Context, learnerID string) (*entity.LearnerProficiencyResponse, error)
}

type ProficiencyConfig struct {
	DB          *gorm.DB
	Log         *logrus.Logger
	Repository  repository.LearnerRepository
	Assessor    *proficiency.Assessor
	Recommender *proficiency.Recommender
	// Coach is optional; without it coaching falls back to a fixed text.
	Coach      llm.TextGenerator
	WindowDays int
	Now        func() time.Time
}

type proficiencyUsecase struct {
	cfg ProficiencyConfig
}

func NewProficiencyUsecase(cfg ProficiencyConfig) ProficiencyUsecase {
	if cfg.Assessor == nil {
		cfg.Assessor = proficiency.NewAssessor()
	}
	if cfg.Recommender == nil {
		cfg.Recommender = proficiency.NewRecommender()
	}
	if cfg.WindowDays <= 0 {
		cfg.WindowDays = defaultWindowDays
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Log == nil {
		cfg.Log = logrus.StandardLogger()
	}
	return &proficiencyUsecase{cfg: cfg}
}

func (u *proficiencyUsecase) Assess(ctx context.Context, profile proficiency.Profile) (*proficiency.OverallAssessment, error) {
	return u.cfg.Assessor.Assess(ctx, profile)
}

func (u *proficiencyUsecase) Recommend(_ context.Context, assessment *proficiency.OverallAssessment) (*proficiency.UpgradeRecommendation, error) {
	rec := u.cfg.Recommender.Recommend(assessment)
	return &rec, nil
}

// GetLearnerProficiency assesses the learner's trailing window. The result is
// cached per learner and reused while the underlying statistics are unchanged,
// unless it holds fallback coaching and a coach is configured.
func (u *proficiencyUsecase) GetLearnerProficiency(ctx context.Context, learnerID string) (*entity.LearnerProficiencyResponse, error) {
	learnerID = strings.TrimSpace(learnerID)
	if learnerID == "" {
		return nil, fmt.Errorf("%w: learner id is required", ErrInvalidInput)
	}

	now := u.cfg.Now()
	since := now.AddDate(0, 0, -u.cfg.WindowDays)

	rows, err := u.cfg.Repository.AggregateActivities(u.cfg.DB, learnerID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate activities: %w", err)
	}
	mastered, err := u.cfg.Repository.CountMasteredWords(u.cfg.DB, learnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count mastered words: %w", err)
	}

	profile := mapper.ToProfile(rows, mastered)
	hash, err := statsHash(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to hash statistics: %w", err)
	}

	log := u.cfg.Log.WithFields(logrus.Fields{"learner_id": learnerID, "stats_hash": hash[:12]})

	if cached := u.cachedSnapshot(learnerID, hash, log); cached != nil {
		cached.WindowDays = u.cfg.WindowDays
		return cached, nil
	}

	assessment, err := u.cfg.Assessor.Assess(ctx, profile)
	if err != nil {
		return nil, err
	}
	rec := u.cfg.Recommender.Recommend(assessment)
	coaching, source := u.generateCoaching(ctx, assessment, rec, log)

	resp := &entity.LearnerProficiencyResponse{
		LearnerID:      learnerID,
		WindowDays:     u.cfg.WindowDays,
		Assessment:     assessment,
		Recommendation: rec,
		Coaching:       coaching,
		CoachingSource: source,
		GeneratedAt:    now.UTC().Format(time.RFC3339),
	}

	if err := u.saveSnapshot(resp, hash); err != nil {
		log.WithError(err).Warn("failed to save proficiency snapshot")
	}

	return resp, nil
}

func (u *proficiencyUsecase) cachedSnapshot(learnerID, hash string, log *logrus.Entry) *entity.LearnerProficiencyResponse {
	snapshot, err := u.cfg.Repository.FindSnapshotByLearnerID(u.cfg.DB, learnerID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.WithError(err).Warn("failed to load proficiency snapshot")
		}
		return nil
	}
	if snapshot.StatsHash != hash {
		return nil
	}
	if snapshot.CoachingSource == CoachingSourceFallback && u.cfg.Coach != nil {
		log.Debug("retrying coaching for snapshot built with fallback text")
		return nil
	}

	var assessment proficiency.OverallAssessment
	if err := json.Unmarshal([]byte(snapshot.Assessment), &assessment); err != nil {
		log.WithError(err).Warn("discarding unreadable snapshot assessment")
		return nil
	}
	var rec proficiency.UpgradeRecommendation
	if err := json.Unmarshal([]byte(snapshot.Recommendation), &rec); err != nil {
		log.WithError(err).Warn("discarding unreadable snapshot recommendation")
		return nil
	}

	log.Debug("serving cached proficiency snapshot")
	return &entity.LearnerProficiencyResponse{
		LearnerID:      learnerID,
		Assessment:     &assessment,
		Recommendation: rec,
		Coaching:       snapshot.Coaching,
		CoachingSource: snapshot.CoachingSource,
		Cached:         true,
		GeneratedAt:    snapshot.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func (u *proficiencyUsecase) saveSnapshot(resp *entity.LearnerProficiencyResponse, hash string) error {
	assessmentJSON, err := json.Marshal(resp.Assessment)
	if err != nil {
		return err
	}
	recJSON, err := json.Marshal(resp.Recommendation)
	if err != nil {
		return err
	}

	snapshot := &internalEntity.ProficiencySnapshot{
		LearnerID:      resp.LearnerID,
		StatsHash:      hash,
		OverallLevel:   resp.Assessment.OverallLevel.String(),
		Assessment:     string(assessmentJSON),
		Recommendation: string(recJSON),
		Coaching:       resp.Coaching,
		CoachingSource: resp.CoachingSource,
	}
	return u.cfg.Repository.CreateOrUpdateSnapshot(u.cfg.DB, snapshot)
}

// statsHash identifies a statistics snapshot. encoding/json sorts map keys,
// so equal profiles hash equally.
func statsHash(profile proficiency.Profile) (string, error) {
	data, err := json.Marshal(profile)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

func (u *proficiencyUsecase) generateCoaching(ctx context.Context, a *proficiency.OverallAssessment, rec proficiency.UpgradeRecommendation, log *logrus.Entry) (string, string) {
	fallback := fallbackCoaching(rec)
	if u.cfg.Coach == nil {
		return fallback, CoachingSourceFallback
	}

	ctx, cancel := context.WithTimeout(ctx, coachingTimeout)
	defer cancel()

	text, err := u.cfg.Coach.GenerateText(ctx, coachingPrompt(a, rec))
	if err != nil {
		log.WithError(err).Warn("coaching generation failed, using fallback")
		return fallback, CoachingSourceFallback
	}

	var result struct {
		Coaching string `json:"coaching"`
	}
	if err := json.Unmarshal([]byte(llm.CleanJSON(text)), &result); err != nil || strings.TrimSpace(result.Coaching) == "" {
		log.WithField("model", u.cfg.Coach.Model()).Warn("coaching output not usable, using fallback")
		return fallback, CoachingSourceFallback
	}

	return strings.TrimSpace(result.Coaching), CoachingSourceLLM
}

func fallbackCoaching(rec proficiency.UpgradeRecommendation) string {
	if rec.NextLevel == nil || len(rec.PriorityAreas) == 0 {
		return rec.Message
	}
	return rec.Message + " " + rec.PriorityAreas[0]
}

func coachingPrompt(a *proficiency.OverallAssessment, rec proficiency.UpgradeRecommendation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "An English learner is at CEFR level %s.\n\nModules:\n", a.OverallLevel)
	for _, m := range cefr.AllModules {
		ma := a.Module(m)
		fmt.Fprintf(&b, "- %s: level %s, score %.0f\n", m, ma.Level, ma.Score)
	}
	fmt.Fprintf(&b, "\nStrongest module: %s\nWeakest module: %s\n", a.StrongestModule, a.WeakestModule)

	if rec.NextLevel != nil {
		fmt.Fprintf(&b, "\nNext level: %s (%.0f%% of requirements met, estimated time %s)\nUnmet requirements:\n",
			*rec.NextLevel, rec.OverallProgress, rec.EstimatedTime)
		for _, r := range rec.Requirements {
			if r.Met {
				continue
			}
			fmt.Fprintf(&b, "- %s: %.0f of %.0f required, %d of %d attempts\n",
				r.Module, r.CurrentAccuracy, r.RequiredAccuracy, r.CurrentAttempts, r.MinimumAttempts)
		}
	} else {
		b.WriteString("\nThe learner already holds the highest level.\n")
	}

	b.WriteString(`
Task: write two or three short, encouraging sentences telling the learner what to practice next.
Return JSON: {"coaching":"..."}`)
	return b.String()
}
