// Package assistant orchestrates the query pipeline: classify the message,
// extract entities and dispatch a tool, then hand the tagged result to the
// generation step for rendering. ProcessQuery always returns a string; no
// failure inside the pipeline escapes to the caller.
package assistant

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/kalambet/clerk/internal/intent"
	"github.com/kalambet/clerk/internal/storage"
	"github.com/kalambet/clerk/internal/tools"
)

// Apology is the fixed reply for any internal failure.
const Apology = "I'm sorry, I encountered an error processing your request. Please try again."

// InteractionStore records completed queries. Optional; a nil store disables
// recording.
type InteractionStore interface {
	SaveInteraction(storage.Interaction) error
}

// Assistant runs the intent → extraction → dispatch → generation pipeline.
// It holds no mutable state, so one instance serves concurrent queries.
type Assistant struct {
	classifier *intent.Classifier
	dispatcher *tools.Dispatcher
	generator  Generator
	store      InteractionStore
}

// New wires an Assistant. store may be nil.
func New(classifier *intent.Classifier, dispatcher *tools.Dispatcher, generator Generator, store InteractionStore) *Assistant {
	return &Assistant{
		classifier: classifier,
		dispatcher: dispatcher,
		generator:  generator,
		store:      store,
	}
}

// ProcessQuery answers a single user message. Panics and generation errors
// are logged and converted into the fixed apology string.
func (a *Assistant) ProcessQuery(ctx context.Context, message string) (reply string) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			slog.Error("panic processing query", "panic", r, "message", message)
			reply = Apology
		}
	}()

	in := a.classifier.Classify(message)
	res := a.dispatcher.Dispatch(in, message)

	reply, err := a.generator.Generate(ctx, message, GenContext{Intent: in, Result: res})
	if err != nil {
		slog.Error("generation failed", "error", err, "intent", in)
		return Apology
	}

	slog.Debug("query processed", "intent", in, "result_kind", res.Kind, "duration_ms", time.Since(start).Milliseconds())
	a.record(message, in, res, reply, time.Since(start))
	return reply
}

// record persists the interaction when a store is wired. Failures are logged
// and swallowed; telemetry must never break the reply path.
func (a *Assistant) record(message string, in intent.Intent, res tools.Result, reply string, elapsed time.Duration) {
	if a.store == nil {
		return
	}
	ix := storage.Interaction{
		ID:         uuid.New().String(),
		CreatedAt:  time.Now().UTC(),
		Message:    message,
		Intent:     string(in),
		ResultKind: string(res.Kind),
		Response:   reply,
		DurationMs: elapsed.Milliseconds(),
	}
	if err := a.store.SaveInteraction(ix); err != nil {
		slog.Warn("failed to record interaction", "error", err)
	}
}
