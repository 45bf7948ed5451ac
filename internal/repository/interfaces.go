package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/planboard/internal/domain"
)

var (
	// ErrNotFound is returned when a referenced plan does not exist.
	ErrNotFound = errors.New("not found")

	// ErrCorrupt is returned by Load when the stored collection cannot be
	// decoded. Callers may treat it as an empty collection.
	ErrCorrupt = errors.New("store content unreadable")
)

// PlanStore holds the ordered plan collection. Load and Save always move the
// whole collection; there are no partial updates.
type PlanStore interface {
	// Init creates an empty store if none exists yet.
	Init(ctx context.Context) error
	Load(ctx context.Context) ([]domain.Record, error)
	Save(ctx context.Context, plans []domain.Record) error
}

// GoalStore holds the per-year goal sets.
type GoalStore interface {
	// Init seeds the store with its default goals if none exists yet.
	Init(ctx context.Context) error
	Load(ctx context.Context) (domain.Goals, error)
	Save(ctx context.Context, goals domain.Goals) error
}
