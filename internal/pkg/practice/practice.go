// Package practice runs one speaking attempt: say the target phrase, capture
// what the learner said, score it and read the feedback back.
//
// Speech recognition and synthesis are injected. The server uses StaticCapture
// to replay a transcript submitted by the client and Recorder to collect the
// lines that would have been spoken.
package practice

import (
	"context"
	"errors"
	"fmt"

	"github.com/evandrarf/lingua-level-be/internal/pkg/pronunciation"
)

// Transcript is one recognized utterance.
type Transcript struct {
	Text string
	// Confidence is the recognizer's confidence in [0, 1]. It is only used when
	// HasConfidence is set; some recognizers do not report one.
	Confidence    float64
	HasConfidence bool
}

// SpeechCapture listens for a single utterance.
type SpeechCapture interface {
	Listen(ctx context.Context) (Transcript, error)
}

// SpeechOutput reads text aloud.
type SpeechOutput interface {
	Speak(ctx context.Context, text string) error
}

// ErrNoSpeech is returned by a capture that heard nothing.
var ErrNoSpeech = errors.New("no speech captured")

type Result struct {
	Target     string
	Transcript Transcript
	Score      pronunciation.Score
}

type Runner struct {
	evaluator *pronunciation.Evaluator
	capture   SpeechCapture
	output    SpeechOutput
}

// NewRunner wires the collaborators of an attempt. output may be nil when
// nothing should be read aloud.
func NewRunner(evaluator *pronunciation.Evaluator, capture SpeechCapture, output SpeechOutput) *Runner {
	return &Runner{evaluator: evaluator, capture: capture, output: output}
}

// Run performs one attempt against target. A capture that reports
// ErrNoSpeech is scored as an empty attempt instead of failing.
func (r *Runner) Run(ctx context.Context, target string) (*Result, error) {
	if err := r.speak(ctx, target); err != nil {
		return nil, fmt.Errorf("speak target: %w", err)
	}

	transcript, err := r.capture.Listen(ctx)
	if err != nil && !errors.Is(err, ErrNoSpeech) {
		return nil, fmt.Errorf("listen: %w", err)
	}

	var score pronunciation.Score
	if transcript.HasConfidence {
		score = r.evaluator.EvaluateAttempt(pronunciation.Attempt{
			TargetText: target,
			SpokenText: transcript.Text,
			Confidence: transcript.Confidence,
		})
	} else {
		score = r.evaluator.Evaluate(target, transcript.Text)
	}

	if err := r.speak(ctx, score.Feedback); err != nil {
		return nil, fmt.Errorf("speak feedback: %w", err)
	}

	return &Result{Target: target, Transcript: transcript, Score: score}, nil
}

func (r *Runner) speak(ctx context.Context, text string) error {
	if r.output == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.output.Speak(ctx, text)
}
