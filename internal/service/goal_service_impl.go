package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/alexanderramin/planboard/internal/repository"
)

type goalService struct {
	store    repository.GoalStore
	observer UseCaseObserver
}

func NewGoalService(store repository.GoalStore, observers ...UseCaseObserver) GoalService {
	return &goalService{store: store, observer: useCaseObserverOrNoop(observers)}
}

func (s *goalService) Get(ctx context.Context) (goals domain.Goals, err error) {
	run := startUseCase(s.observer, "get-goals")
	defer func() { run.finish(ctx, err) }()

	goals = s.load(ctx, run)
	run.set("years", len(goals))
	return goals, nil
}

// SetYear replaces the whole goal set for year.
func (s *goalService) SetYear(ctx context.Context, year string, set domain.GoalSet) (err error) {
	run := startUseCase(s.observer, "set-goals")
	run.set("year", year)
	defer func() { run.finish(ctx, err) }()

	if strings.TrimSpace(year) == "" {
		return fmt.Errorf("year is empty: %w", ErrInvalidBody)
	}
	if len(set) == 0 {
		return fmt.Errorf("goal set is empty: %w", ErrInvalidBody)
	}

	goals := s.load(ctx, run)
	if err = goals.SetYear(year, set); err != nil {
		return err
	}
	if err = s.store.Save(ctx, goals); err != nil {
		return fmt.Errorf("saving goals for %s: %w", year, err)
	}
	return nil
}

func (s *goalService) load(ctx context.Context, run *useCaseRun) domain.Goals {
	goals, err := s.store.Load(ctx)
	if err != nil {
		run.warn(fmt.Sprintf("goal store unreadable, using empty map: %v", err))
		return domain.Goals{}
	}
	if goals == nil {
		goals = domain.Goals{}
	}
	return goals
}
