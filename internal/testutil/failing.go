package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"

	"github.com/alexanderramin/planboard/internal/db"
	"github.com/alexanderramin/planboard/internal/domain"
)

// FailOnNthExecUoW is a test UoW that injects an error on the Nth ExecContext
// call within a transaction, so store rewrites can be interrupted midway.
//
// ExecContext calls are counted starting at 1. Reads pass through.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int32
	Err    error
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	wrapped := &failOnNthExec{DBTX: tx, failOn: u.FailOn, err: u.Err}
	if fnErr := fn(ctx, wrapped); fnErr != nil {
		_ = tx.Rollback()
		return fnErr
	}
	return tx.Commit()
}

type failOnNthExec struct {
	db.DBTX
	count  atomic.Int32
	failOn int32
	err    error
}

func (f *failOnNthExec) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	n := f.count.Add(1)
	if n == f.failOn {
		return nil, f.err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}

// MemPlanStore is an in-memory plan store. LoadErr and SaveErr, when set,
// are returned by the matching call; a failed Load still yields Plans.
type MemPlanStore struct {
	Plans   []domain.Record
	Saves   int
	LoadErr error
	SaveErr error
}

func (m *MemPlanStore) Init(context.Context) error { return nil }

func (m *MemPlanStore) Load(context.Context) ([]domain.Record, error) {
	out := make([]domain.Record, len(m.Plans))
	for i, r := range m.Plans {
		out[i] = r.Clone()
	}
	return out, m.LoadErr
}

func (m *MemPlanStore) Save(_ context.Context, plans []domain.Record) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Saves++
	m.Plans = plans
	return nil
}

// MemGoalStore is the goal-store counterpart of MemPlanStore.
type MemGoalStore struct {
	Goals   domain.Goals
	LoadErr error
	SaveErr error
}

func (m *MemGoalStore) Init(context.Context) error { return nil }

func (m *MemGoalStore) Load(context.Context) (domain.Goals, error) {
	return m.Goals.Clone(), m.LoadErr
}

func (m *MemGoalStore) Save(_ context.Context, goals domain.Goals) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Goals = goals
	return nil
}
