package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/alexanderramin/planboard/internal/domain"
)

// PlanOption customises a test plan.
type PlanOption func(*domain.Plan)

func WithDate(date string) PlanOption {
	return func(p *domain.Plan) { p.Date = date }
}

func WithType(c domain.Category) PlanOption {
	return func(p *domain.Plan) { p.Type = c }
}

func WithCompleted(done bool) PlanOption {
	return func(p *domain.Plan) { p.Completed = done }
}

func WithSummary(s string) PlanOption {
	return func(p *domain.Plan) { p.Summary = s }
}

func WithID(id string) PlanOption {
	return func(p *domain.Plan) { p.ID = id }
}

var testPlanCounter atomic.Int64

// NewTestPlan returns a plan dated 2025-01-01 with a unique test id.
func NewTestPlan(title string, opts ...PlanOption) domain.Plan {
	n := testPlanCounter.Add(1)
	p := domain.Plan{
		ID:    fmt.Sprintf("test-%04d", n),
		Title: title,
		Date:  "2025-01-01",
		Month: "1月",
		Type:  domain.CategoryLearning,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// NewTestRecord converts NewTestPlan's result to its stored form.
func NewTestRecord(t *testing.T, title string, opts ...PlanOption) domain.Record {
	t.Helper()
	r, err := NewTestPlan(title, opts...).ToRecord()
	if err != nil {
		t.Fatalf("building test record: %v", err)
	}
	return r
}

// NewTestGoals encodes one goal set per year.
func NewTestGoals(t *testing.T, sets map[string]domain.GoalSet) domain.Goals {
	t.Helper()
	goals := domain.Goals{}
	for year, set := range sets {
		if err := goals.SetYear(year, set); err != nil {
			t.Fatalf("building test goals: %v", err)
		}
	}
	return goals
}

// SequentialIDs hands out "id-1", "id-2", ... for deterministic tests.
type SequentialIDs struct {
	n atomic.Int64
}

func (s *SequentialIDs) NewID() string {
	return fmt.Sprintf("id-%d", s.n.Add(1))
}
