package service

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/alexanderramin/planboard/internal/repository"
)

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recordingObserver) last() UseCaseEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.events[len(r.events)-1]
}

func newJSONPlanStore(t *testing.T) *repository.JSONPlanStore {
	t.Helper()
	return repository.NewJSONPlanStore(filepath.Join(t.TempDir(), "data.json"))
}
