package service

import (
	"context"
	"errors"

	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/alexanderramin/planboard/internal/importer"
)

// ErrInvalidBody is returned when a request payload is missing, empty or
// has the wrong shape.
var ErrInvalidBody = errors.New("invalid request body")

// PlanService performs every plan mutation as a load, one change and a
// rewrite of the whole collection.
type PlanService interface {
	List(ctx context.Context) ([]domain.Record, error)
	Create(ctx context.Context, body domain.Record) (domain.Record, error)
	ReplaceAll(ctx context.Context, plans []domain.Record) (int, error)
	Update(ctx context.Context, id string, patch domain.Record) (domain.Record, error)
	Toggle(ctx context.Context, id string) (domain.Record, error)
	Delete(ctx context.Context, id string) error
	Import(ctx context.Context, plans []domain.Plan, mode importer.Mode) (*ImportResult, error)
}

type GoalService interface {
	Get(ctx context.Context) (domain.Goals, error)
	SetYear(ctx context.Context, year string, set domain.GoalSet) error
}

// ImportResult summarises one import run.
type ImportResult struct {
	Mode     importer.Mode
	Existing int
	Imported int
	Total    int
	Written  bool
}
