package service

import (
	"context"
	"time"

	"github.com/alexanderramin/planboard/internal/logger"
)

// UseCaseEvent captures lightweight execution telemetry for a service use case.
type UseCaseEvent struct {
	Name      string
	Duration  time.Duration
	Success   bool
	Err       error
	Fields    map[string]any
	Warnings  []string
	StartedAt time.Time
}

// UseCaseObserver receives use-case execution events.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver ignores all events.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

type logUseCaseObserver struct {
	log *logger.Logger
}

// NewLogUseCaseObserver writes service use-case events to log. Failed use
// cases are logged at error level, degraded ones at warn.
func NewLogUseCaseObserver(log *logger.Logger) UseCaseObserver {
	if log == nil {
		return NoopUseCaseObserver{}
	}
	return &logUseCaseObserver{log: log}
}

func (o *logUseCaseObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	kv := make([]any, 0, 8+len(event.Fields)*2)
	kv = append(kv,
		"use_case", event.Name,
		"duration_ms", event.Duration.Milliseconds(),
		"success", event.Success,
	)
	for k, v := range event.Fields {
		kv = append(kv, k, v)
	}
	switch {
	case event.Err != nil:
		o.log.Error("service_use_case", append(kv, "error", event.Err.Error())...)
	case len(event.Warnings) > 0:
		o.log.Warn("service_use_case", append(kv, "warnings", event.Warnings)...)
	default:
		o.log.Info("service_use_case", kv...)
	}
}

func useCaseObserverOrNoop(observers []UseCaseObserver) UseCaseObserver {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopUseCaseObserver{}
}

// useCaseRun accumulates one event while a use case executes.
type useCaseRun struct {
	observer UseCaseObserver
	event    UseCaseEvent
}

func startUseCase(observer UseCaseObserver, name string) *useCaseRun {
	return &useCaseRun{
		observer: observer,
		event: UseCaseEvent{
			Name:      name,
			StartedAt: time.Now(),
			Fields:    map[string]any{},
		},
	}
}

func (r *useCaseRun) set(key string, v any) {
	r.event.Fields[key] = v
}

func (r *useCaseRun) warn(msg string) {
	r.event.Warnings = append(r.event.Warnings, msg)
}

func (r *useCaseRun) finish(ctx context.Context, err error) {
	r.event.Duration = time.Since(r.event.StartedAt)
	r.event.Success = err == nil
	r.event.Err = err
	r.observer.ObserveUseCase(ctx, r.event)
}
