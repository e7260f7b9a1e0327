package config

import (
	"context"
	"errors"

	"github.com/evandrarf/lingua-level-be/internal/delivery/http/handler"
	"github.com/evandrarf/lingua-level-be/internal/delivery/http/middleware"
	"github.com/evandrarf/lingua-level-be/internal/delivery/http/repository"
	"github.com/evandrarf/lingua-level-be/internal/delivery/http/route"
	"github.com/evandrarf/lingua-level-be/internal/delivery/http/usecase"
	"github.com/evandrarf/lingua-level-be/internal/pkg/llm"
	"github.com/evandrarf/lingua-level-be/internal/pkg/pronunciation"
	"github.com/evandrarf/lingua-level-be/internal/pkg/proficiency"
	"github.com/evandrarf/lingua-level-be/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

type BootstrapConfig struct {
	Api       *fiber.App
	Config    *viper.Viper
	DB        *gorm.DB
	Log       *logrus.Logger
	Validator *validate.Validator
}

func Bootstrap(ctx context.Context, config *BootstrapConfig) {
	mid := middleware.NewMiddleware(&middleware.MiddlewareConfig{
		Log:    config.Log,
		Config: config.Config,
	})

	evaluator := pronunciation.New(PronunciationConfig(config.Config, config.Log))
	coach := NewCoach(ctx, config.Config, config.Log)

	learnerRepo := repository.NewLearnerRepository(config.DB)

	activityUsecase := usecase.NewActivityUsecase(usecase.ActivityConfig{
		DB:         config.DB,
		Log:        config.Log,
		Evaluator:  evaluator,
		Repository: learnerRepo,
	})
	proficiencyUsecase := usecase.NewProficiencyUsecase(usecase.ProficiencyConfig{
		DB:          config.DB,
		Log:         config.Log,
		Repository:  learnerRepo,
		Assessor:    proficiency.NewAssessor(),
		Recommender: proficiency.NewRecommender(),
		Coach:       coach,
		WindowDays:  config.Config.GetInt("proficiency.window_days"),
	})

	route.Setup(&route.RouteConfig{
		Api:                config.Api,
		Middleware:         mid,
		ActivityHandler:    handler.NewActivityHandler(config.Validator, config.Log, activityUsecase),
		ProficiencyHandler: handler.NewProficiencyHandler(config.Validator, config.Log, proficiencyUsecase),
	})
}

// PronunciationConfig reads the pronunciation.* keys. An unknown rule falls
// back to the default with a warning.
func PronunciationConfig(config *viper.Viper, log *logrus.Logger) pronunciation.Config {
	cfg := pronunciation.DefaultConfig()
	if v := config.GetInt("pronunciation.max_mistakes"); v > 0 {
		cfg.MaxMistakes = v
	}
	if v := config.GetFloat64("pronunciation.match_threshold"); v > 0 && v <= 1 {
		cfg.MatchThreshold = v
	}
	rule, err := pronunciation.ParseRule(config.GetString("pronunciation.rule"))
	if err != nil {
		log.WithError(err).Warn("unknown pronunciation rule, using default")
	} else {
		cfg.Rule = rule
	}
	return cfg
}

// NewCoach returns nil when coaching is disabled or misconfigured; callers
// then use fixed coaching texts.
func NewCoach(ctx context.Context, config *viper.Viper, log *logrus.Logger) llm.TextGenerator {
	coach, err := llm.New(ctx, llm.Config{
		Provider: config.GetString("llm.provider"),
		APIKey:   config.GetString("llm.api_key"),
		Model:    config.GetString("llm.model"),
		BaseURL:  config.GetString("llm.base_url"),
	})
	switch {
	case errors.Is(err, llm.ErrDisabled):
		log.Info("llm coaching disabled")
		return nil
	case err != nil:
		log.WithError(err).Warn("llm coaching unavailable")
		return nil
	}
	log.WithField("model", coach.Model()).Info("llm coaching enabled")
	return coach
}
