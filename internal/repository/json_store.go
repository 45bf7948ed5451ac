package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/planboard/internal/domain"
)

// JSONPlanStore keeps plans as a pretty-printed JSON array in one file.
type JSONPlanStore struct {
	path string
}

func NewJSONPlanStore(path string) *JSONPlanStore {
	return &JSONPlanStore{path: path}
}

func (s *JSONPlanStore) Path() string { return s.path }

func (s *JSONPlanStore) Init(ctx context.Context) error {
	exists, err := fileExists(s.path)
	if err != nil {
		return fmt.Errorf("checking plan store: %w", err)
	}
	if exists {
		return nil
	}
	return s.Save(ctx, []domain.Record{})
}

// Load returns an empty collection when the file does not exist.
func (s *JSONPlanStore) Load(_ context.Context) ([]domain.Record, error) {
	var plans []domain.Record
	if _, err := readJSONFile(s.path, &plans); err != nil {
		return []domain.Record{}, err
	}
	return compactRecords(plans), nil
}

func (s *JSONPlanStore) Save(_ context.Context, plans []domain.Record) error {
	if plans == nil {
		plans = []domain.Record{}
	}
	if err := writeJSONFile(s.path, plans); err != nil {
		return fmt.Errorf("saving plans: %w", err)
	}
	return nil
}

// JSONGoalStore keeps goals as a pretty-printed JSON object in one file.
type JSONGoalStore struct {
	path string
	seed domain.Goals
}

// NewJSONGoalStore creates a store that writes seed on Init when the file
// is absent. A nil seed creates an empty object.
func NewJSONGoalStore(path string, seed domain.Goals) *JSONGoalStore {
	return &JSONGoalStore{path: path, seed: seed}
}

func (s *JSONGoalStore) Path() string { return s.path }

func (s *JSONGoalStore) Init(ctx context.Context) error {
	exists, err := fileExists(s.path)
	if err != nil {
		return fmt.Errorf("checking goal store: %w", err)
	}
	if exists {
		return nil
	}
	seed := s.seed
	if seed == nil {
		seed = domain.Goals{}
	}
	return s.Save(ctx, seed)
}

// Load returns an empty map when the file does not exist.
func (s *JSONGoalStore) Load(_ context.Context) (domain.Goals, error) {
	var goals domain.Goals
	if _, err := readJSONFile(s.path, &goals); err != nil {
		return domain.Goals{}, err
	}
	return compactGoals(goals)
}

func (s *JSONGoalStore) Save(_ context.Context, goals domain.Goals) error {
	if goals == nil {
		goals = domain.Goals{}
	}
	if err := writeJSONFile(s.path, goals); err != nil {
		return fmt.Errorf("saving goals: %w", err)
	}
	return nil
}

var (
	_ PlanStore = (*JSONPlanStore)(nil)
	_ GoalStore = (*JSONGoalStore)(nil)
)
