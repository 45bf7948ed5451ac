package repository

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/planboard/internal/db"
	"github.com/alexanderramin/planboard/internal/domain"
)

// SQLitePlanStore implements PlanStore on the plans table. Each plan is one
// row holding the JSON document; position preserves collection order.
type SQLitePlanStore struct {
	db  *sql.DB
	uow db.UnitOfWork
}

// NewSQLitePlanStore creates a store whose saves run inside uow.
func NewSQLitePlanStore(database *sql.DB, uow db.UnitOfWork) *SQLitePlanStore {
	return &SQLitePlanStore{db: database, uow: uow}
}

// Init is a no-op: the schema is created when the database is opened.
func (s *SQLitePlanStore) Init(context.Context) error { return nil }

func (s *SQLitePlanStore) Load(ctx context.Context) ([]domain.Record, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT position, body FROM plans ORDER BY position`)
	if err != nil {
		return []domain.Record{}, fmt.Errorf("listing plans: %w", err)
	}
	defer rows.Close()

	plans := []domain.Record{}
	for rows.Next() {
		var pos int
		var body string
		if err := rows.Scan(&pos, &body); err != nil {
			return []domain.Record{}, fmt.Errorf("scanning plan row: %w", err)
		}
		var r domain.Record
		if err := json.Unmarshal([]byte(body), &r); err != nil {
			return []domain.Record{}, fmt.Errorf("plan at position %d: %w: %v", pos, ErrCorrupt, err)
		}
		if r != nil {
			plans = append(plans, r)
		}
	}
	if err := rows.Err(); err != nil {
		return []domain.Record{}, fmt.Errorf("iterating plans: %w", err)
	}
	return plans, nil
}

// Save replaces the whole table inside one transaction.
func (s *SQLitePlanStore) Save(ctx context.Context, plans []domain.Record) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM plans`); err != nil {
			return fmt.Errorf("clearing plans: %w", err)
		}
		for i, r := range plans {
			body, err := json.Marshal(r)
			if err != nil {
				return fmt.Errorf("encoding plan %d: %w", i, err)
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO plans (position, id, body) VALUES (?, ?, ?)`,
				i, r.ID(), string(body),
			); err != nil {
				return fmt.Errorf("inserting plan %d: %w", i, err)
			}
		}
		return nil
	})
}

// SQLiteGoalStore implements GoalStore on the goals table, one row per year.
type SQLiteGoalStore struct {
	db   *sql.DB
	uow  db.UnitOfWork
	seed domain.Goals
}

func NewSQLiteGoalStore(database *sql.DB, uow db.UnitOfWork, seed domain.Goals) *SQLiteGoalStore {
	return &SQLiteGoalStore{db: database, uow: uow, seed: seed}
}

// Init seeds the table when it holds no year at all.
func (s *SQLiteGoalStore) Init(ctx context.Context) error {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM goals`).Scan(&n); err != nil {
		return fmt.Errorf("counting goals: %w", err)
	}
	if n > 0 || len(s.seed) == 0 {
		return nil
	}
	return s.Save(ctx, s.seed)
}

func (s *SQLiteGoalStore) Load(ctx context.Context) (domain.Goals, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT year, body FROM goals ORDER BY year`)
	if err != nil {
		return domain.Goals{}, fmt.Errorf("listing goals: %w", err)
	}
	defer rows.Close()

	goals := domain.Goals{}
	for rows.Next() {
		var year, body string
		if err := rows.Scan(&year, &body); err != nil {
			return domain.Goals{}, fmt.Errorf("scanning goal row: %w", err)
		}
		if !json.Valid([]byte(body)) {
			return domain.Goals{}, fmt.Errorf("goals for %s: %w", year, ErrCorrupt)
		}
		goals[year] = json.RawMessage(body)
	}
	if err := rows.Err(); err != nil {
		return domain.Goals{}, fmt.Errorf("iterating goals: %w", err)
	}
	return goals, nil
}

func (s *SQLiteGoalStore) Save(ctx context.Context, goals domain.Goals) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM goals`); err != nil {
			return fmt.Errorf("clearing goals: %w", err)
		}
		for _, year := range sortedYears(goals) {
			var body bytes.Buffer
			if err := json.Compact(&body, goals[year]); err != nil {
				return fmt.Errorf("encoding goals for %s: %w", year, err)
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO goals (year, body) VALUES (?, ?)`, year, body.String(),
			); err != nil {
				return fmt.Errorf("inserting goals for %s: %w", year, err)
			}
		}
		return nil
	})
}

var (
	_ PlanStore = (*SQLitePlanStore)(nil)
	_ GoalStore = (*SQLiteGoalStore)(nil)
)
