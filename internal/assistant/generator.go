package assistant

import (
	"context"
	"time"

	"github.com/kalambet/clerk/internal/format"
	"github.com/kalambet/clerk/internal/intent"
	"github.com/kalambet/clerk/internal/tools"
)

const defaultDelay = 500 * time.Millisecond

// GenContext carries the tool outcome into the generation step.
type GenContext struct {
	Intent intent.Intent
	Result tools.Result
}

// Generator produces the reply text from the prompt and tool context. A real
// model backend substitutes behind this contract without touching the rest
// of the pipeline.
type Generator interface {
	Generate(ctx context.Context, prompt string, gen GenContext) (string, error)
}

// Simulated stands in for a hosted model: it waits a fixed latency, then
// renders the tool result deterministically. The wait is cooperative — it
// holds no locks and honors context cancellation.
type Simulated struct {
	Model string
	Delay time.Duration
}

// NewSimulated creates a Simulated generator. A negative delay means the
// default (500ms); zero disables the artificial latency, which tests rely on.
func NewSimulated(delay time.Duration) *Simulated {
	if delay < 0 {
		delay = defaultDelay
	}
	return &Simulated{
		Model: "llama-3.2-3b (simulated)",
		Delay: delay,
	}
}

func (s *Simulated) Generate(ctx context.Context, prompt string, gen GenContext) (string, error) {
	if s.Delay > 0 {
		timer := time.NewTimer(s.Delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return format.Render(gen.Result, gen.Intent), nil
}
