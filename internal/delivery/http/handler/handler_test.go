package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evandrarf/lingua-level-be/internal/delivery/http/entity"
	"github.com/evandrarf/lingua-level-be/internal/delivery/http/usecase"
	"github.com/evandrarf/lingua-level-be/internal/pkg/cefr"
	"github.com/evandrarf/lingua-level-be/internal/pkg/pronunciation"
	"github.com/evandrarf/lingua-level-be/internal/pkg/proficiency"
	"github.com/evandrarf/lingua-level-be/internal/pkg/validate"
)

type stubActivity struct {
	err      error
	lastWord entity.WordbookRequest
}

func (s *stubActivity) EvaluatePronunciation(_ context.Context, req entity.EvaluatePronunciationRequest) (*entity.PronunciationEvaluationResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	score := pronunciation.New(pronunciation.DefaultConfig()).Evaluate(req.TargetText, req.SpokenText)
	return &entity.PronunciationEvaluationResponse{Score: score, Prompts: []string{req.TargetText, score.Feedback}}, nil
}

func (s *stubActivity) RecordActivity(_ context.Context, req entity.RecordActivityRequest) (*entity.ActivityResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &entity.ActivityResponse{ID: "rec-1", LearnerID: req.LearnerID, Module: req.Module, Accuracy: *req.Accuracy}, nil
}

func (s *stubActivity) UpdateWordbook(_ context.Context, req entity.WordbookRequest) (*entity.WordbookResponse, error) {
	s.lastWord = req
	if s.err != nil {
		return nil, s.err
	}
	return &entity.WordbookResponse{LearnerID: req.LearnerID, Word: req.Word, Mastered: req.Mastered, MasteredWords: 1}, nil
}

// stubProficiency keeps the real stateless operations and fakes the
// repository-backed one.
type stubProficiency struct {
	usecase.ProficiencyUsecase
	learner *entity.LearnerProficiencyResponse
	err     error
}

func (s *stubProficiency) GetLearnerProficiency(_ context.Context, learnerID string) (*entity.LearnerProficiencyResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	resp := *s.learner
	resp.LearnerID = learnerID
	return &resp, nil
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Error   json.RawMessage `json:"error"`
	Data    json.RawMessage `json:"data"`
	Meta    json.RawMessage `json:"meta"`
}

func newTestApp(activity usecase.ActivityUsecase, prof usecase.ProficiencyUsecase) *fiber.App {
	logger, _ := test.NewNullLogger()
	v := validate.NewValidator()
	ah := NewActivityHandler(v, logger, activity)
	ph := NewProficiencyHandler(v, logger, prof)

	app := fiber.New()
	app.Post("/pronunciation/evaluate", ah.EvaluatePronunciation)
	app.Post("/activities", ah.RecordActivity)
	app.Post("/wordbook", ah.UpdateWordbook)
	app.Post("/proficiency/assess", ph.Assess)
	app.Post("/proficiency/recommend", ph.Recommend)
	app.Get("/proficiency/learners/:learner_id", ph.GetLearnerProficiency)
	return app
}

func do(t *testing.T, app *fiber.App, method, path, body string) (int, envelope) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp.StatusCode, env
}

func TestEvaluatePronunciation(t *testing.T) {
	app := newTestApp(&stubActivity{}, nil)

	status, env := do(t, app, fiber.MethodPost, "/pronunciation/evaluate",
		`{"targetText":"I am going to the market","spokenText":"I am go to market"}`)
	require.Equal(t, fiber.StatusOK, status)
	assert.True(t, env.Success)

	var data entity.PronunciationEvaluationResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Greater(t, data.Score.OverallScore, 40)
	assert.Less(t, data.Score.OverallScore, 80)
	assert.NotEmpty(t, data.Score.Mistakes)

	status, env = do(t, app, fiber.MethodPost, "/pronunciation/evaluate", `{"targetText":`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.False(t, env.Success)
}

func TestRecordActivity(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		app := newTestApp(&stubActivity{}, nil)
		status, env := do(t, app, fiber.MethodPost, "/activities",
			`{"learnerId":"l1","module":"reading","accuracy":72}`)
		assert.Equal(t, fiber.StatusCreated, status)
		assert.True(t, env.Success)
	})

	t.Run("validation", func(t *testing.T) {
		app := newTestApp(&stubActivity{}, nil)
		status, env := do(t, app, fiber.MethodPost, "/activities", `{"module":"grammar"}`)
		assert.Equal(t, fiber.StatusBadRequest, status)

		var fields map[string]string
		require.NoError(t, json.Unmarshal(env.Error, &fields))
		assert.Contains(t, fields, "learnerId")
		assert.Contains(t, fields, "module")
		assert.Contains(t, fields, "accuracy")
	})

	t.Run("invalid input from usecase", func(t *testing.T) {
		app := newTestApp(&stubActivity{err: fmt.Errorf("%w: nope", usecase.ErrInvalidInput)}, nil)
		status, _ := do(t, app, fiber.MethodPost, "/activities",
			`{"learnerId":"l1","module":"reading","accuracy":72}`)
		assert.Equal(t, fiber.StatusBadRequest, status)
	})

	t.Run("backend failure", func(t *testing.T) {
		app := newTestApp(&stubActivity{err: errors.New("database down")}, nil)
		status, env := do(t, app, fiber.MethodPost, "/activities",
			`{"learnerId":"l1","module":"reading","accuracy":72}`)
		assert.Equal(t, fiber.StatusInternalServerError, status)
		assert.False(t, env.Success)
	})
}

func TestUpdateWordbook(t *testing.T) {
	stub := &stubActivity{}
	app := newTestApp(stub, nil)

	status, _ := do(t, app, fiber.MethodPost, "/wordbook", `{"learnerId":"l1","word":"harbor","mastered":true}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "harbor", stub.lastWord.Word)
	assert.True(t, stub.lastWord.Mastered)
}

func TestAssessAndRecommend(t *testing.T) {
	prof := &stubProficiency{ProficiencyUsecase: usecase.NewProficiencyUsecase(usecase.ProficiencyConfig{})}
	app := newTestApp(&stubActivity{}, prof)

	status, env := do(t, app, fiber.MethodPost, "/proficiency/assess", `{"modules":{
		"vocabulary":{"masteredWords":4200},
		"pronunciation":{"averageAccuracy":92,"attempts":10}
	}}`)
	require.Equal(t, fiber.StatusOK, status)

	var assessment proficiency.OverallAssessment
	require.NoError(t, json.Unmarshal(env.Data, &assessment))
	assert.Equal(t, cefr.B2, assessment.Modules[cefr.ModuleVocabulary].Level)
	assert.InDelta(t, 70.0, assessment.Modules[cefr.ModuleVocabulary].Score, 1e-9)
	assert.Equal(t, cefr.C1, assessment.Modules[cefr.ModulePronunciation].Level)

	status, _ = do(t, app, fiber.MethodPost, "/proficiency/assess", `{"modules":{"grammar":{}}}`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, env = do(t, app, fiber.MethodPost, "/proficiency/recommend", `{"assessment":{"overallLevel":"C2","modules":{}}}`)
	require.Equal(t, fiber.StatusOK, status)
	var rec proficiency.UpgradeRecommendation
	require.NoError(t, json.Unmarshal(env.Data, &rec))
	assert.False(t, rec.CanUpgrade)
	assert.Nil(t, rec.NextLevel)
	assert.Contains(t, string(env.Data), `"nextLevel":null`)

	status, _ = do(t, app, fiber.MethodPost, "/proficiency/recommend", `{}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestGetLearnerProficiency(t *testing.T) {
	a := proficiency.Summarize(nil)
	prof := &stubProficiency{learner: &entity.LearnerProficiencyResponse{
		WindowDays:     30,
		Assessment:     a,
		Recommendation: proficiency.NewRecommender().Recommend(a),
		Cached:         true,
	}}
	app := newTestApp(&stubActivity{}, prof)

	status, env := do(t, app, fiber.MethodGet, "/proficiency/learners/l-42", "")
	require.Equal(t, fiber.StatusOK, status)

	var data entity.LearnerProficiencyResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "l-42", data.LearnerID)
	assert.Equal(t, cefr.A1, data.Assessment.OverallLevel)
	assert.JSONEq(t, `{"cached":true,"windowDays":30}`, string(env.Meta))

	prof.err = errors.New("database down")
	status, _ = do(t, app, fiber.MethodGet, "/proficiency/learners/l-42", "")
	assert.Equal(t, fiber.StatusInternalServerError, status)
}
