package practice

import (
	"context"
	"strings"
	"sync"
)

// StaticCapture returns a transcript that was recognized elsewhere, such as
// on the client device.
type StaticCapture struct {
	Transcript Transcript
}

func (c StaticCapture) Listen(ctx context.Context) (Transcript, error) {
	if err := ctx.Err(); err != nil {
		return Transcript{}, err
	}
	if strings.TrimSpace(c.Transcript.Text) == "" {
		return c.Transcript, ErrNoSpeech
	}
	return c.Transcript, nil
}

// Recorder keeps every line passed to Speak. It is safe for concurrent use.
type Recorder struct {
	mu    sync.Mutex
	lines []string
}

func (r *Recorder) Speak(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, text)
	return nil
}

// Lines returns a copy of what was spoken so far.
func (r *Recorder) Lines() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.lines...)
}
