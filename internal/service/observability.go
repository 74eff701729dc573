package service

import (
	"context"
	"io"
	"log/slog"
	"time"

	"planboard/internal/domain"
)

// MutationEvent captures lightweight telemetry for one mutating
// operation against the shared state.
type MutationEvent struct {
	Op        string
	Actor     domain.Actor
	ProjectID string
	Success   bool
	Err       error
	At        time.Time
}

// Observer receives mutation events.
type Observer interface {
	ObserveMutation(ctx context.Context, event MutationEvent)
}

// NoopObserver ignores all events.
type NoopObserver struct{}

func (NoopObserver) ObserveMutation(context.Context, MutationEvent) {}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver writes mutation events to the provided writer.
func NewLogObserver(w io.Writer) Observer {
	if w == nil {
		return NoopObserver{}
	}
	return &logObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logObserver) ObserveMutation(ctx context.Context, event MutationEvent) {
	attrs := []any{
		"op", event.Op,
		"actor", event.Actor.String(),
		"project_id", event.ProjectID,
		"success", event.Success,
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.ErrorContext(ctx, "mutation", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "mutation", attrs...)
}

func emit(ctx context.Context, obs Observer, op string, actor domain.Actor, projectID string, err error) {
	if obs == nil {
		return
	}
	obs.ObserveMutation(ctx, MutationEvent{
		Op:        op,
		Actor:     actor,
		ProjectID: projectID,
		Success:   err == nil,
		Err:       err,
		At:        time.Now().UTC(),
	})
}
