package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/alexanderramin/planboard/internal/importer"
	"github.com/alexanderramin/planboard/internal/repository"
)

type planService struct {
	store    repository.PlanStore
	ids      domain.IDSource
	observer UseCaseObserver
}

func NewPlanService(
	store repository.PlanStore,
	ids domain.IDSource,
	observers ...UseCaseObserver,
) PlanService {
	if ids == nil {
		ids = domain.NewIDGenerator()
	}
	return &planService{
		store:    store,
		ids:      ids,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *planService) List(ctx context.Context) (plans []domain.Record, err error) {
	run := startUseCase(s.observer, "list-plans")
	defer func() { run.finish(ctx, err) }()

	plans = s.load(ctx, run)
	run.set("count", len(plans))
	return plans, nil
}

func (s *planService) Create(ctx context.Context, body domain.Record) (created domain.Record, err error) {
	run := startUseCase(s.observer, "create-plan")
	defer func() { run.finish(ctx, err) }()

	if len(body) == 0 {
		return nil, fmt.Errorf("plan body is empty: %w", ErrInvalidBody)
	}

	created = body.Clone()
	if err = created.Set(domain.FieldID, s.ids.NewID()); err != nil {
		return nil, err
	}
	if err = created.Set(domain.FieldCompleted, false); err != nil {
		return nil, err
	}
	run.set("plan_id", created.ID())

	plans := s.load(ctx, run)
	plans = append(plans, created)
	if err = s.store.Save(ctx, plans); err != nil {
		return nil, fmt.Errorf("creating plan: %w", err)
	}
	return created, nil
}

func (s *planService) ReplaceAll(ctx context.Context, plans []domain.Record) (count int, err error) {
	run := startUseCase(s.observer, "replace-plans")
	defer func() { run.finish(ctx, err) }()

	if plans == nil {
		return 0, fmt.Errorf("plan list is missing: %w", ErrInvalidBody)
	}
	for i, p := range plans {
		if p == nil {
			return 0, fmt.Errorf("plan %d is not an object: %w", i, ErrInvalidBody)
		}
	}
	run.set("count", len(plans))

	if err = s.store.Save(ctx, plans); err != nil {
		return 0, fmt.Errorf("replacing plans: %w", err)
	}
	return len(plans), nil
}

func (s *planService) Update(ctx context.Context, id string, patch domain.Record) (updated domain.Record, err error) {
	run := startUseCase(s.observer, "update-plan")
	run.set("plan_id", id)
	defer func() { run.finish(ctx, err) }()

	if len(patch) == 0 {
		return nil, fmt.Errorf("plan body is empty: %w", ErrInvalidBody)
	}

	plans := s.load(ctx, run)
	i := indexOf(plans, id)
	if i < 0 {
		return nil, fmt.Errorf("plan %s: %w", id, repository.ErrNotFound)
	}

	// A merge never changes identity.
	patch = patch.Clone()
	delete(patch, domain.FieldID)

	plans[i] = domain.Merge(plans[i], patch)
	if err = s.store.Save(ctx, plans); err != nil {
		return nil, fmt.Errorf("updating plan %s: %w", id, err)
	}
	return plans[i], nil
}

func (s *planService) Toggle(ctx context.Context, id string) (toggled domain.Record, err error) {
	run := startUseCase(s.observer, "toggle-plan")
	run.set("plan_id", id)
	defer func() { run.finish(ctx, err) }()

	plans := s.load(ctx, run)
	i := indexOf(plans, id)
	if i < 0 {
		return nil, fmt.Errorf("plan %s: %w", id, repository.ErrNotFound)
	}

	done := !plans[i].Completed()
	if err = plans[i].Set(domain.FieldCompleted, done); err != nil {
		return nil, err
	}
	run.set("completed", done)

	if err = s.store.Save(ctx, plans); err != nil {
		return nil, fmt.Errorf("toggling plan %s: %w", id, err)
	}
	return plans[i], nil
}

func (s *planService) Delete(ctx context.Context, id string) (err error) {
	run := startUseCase(s.observer, "delete-plan")
	run.set("plan_id", id)
	defer func() { run.finish(ctx, err) }()

	plans := s.load(ctx, run)
	i := indexOf(plans, id)
	if i < 0 {
		return fmt.Errorf("plan %s: %w", id, repository.ErrNotFound)
	}

	plans = append(plans[:i], plans[i+1:]...)
	if err = s.store.Save(ctx, plans); err != nil {
		return fmt.Errorf("deleting plan %s: %w", id, err)
	}
	return nil
}

func (s *planService) Import(ctx context.Context, incoming []domain.Plan, mode importer.Mode) (result *ImportResult, err error) {
	run := startUseCase(s.observer, "import-plans")
	run.set("mode", string(mode))
	run.set("incoming", len(incoming))
	defer func() { run.finish(ctx, err) }()

	existing := s.load(ctx, run)
	result = &ImportResult{
		Mode:     mode,
		Existing: len(existing),
		Imported: len(incoming),
		Total:    len(existing),
	}
	if mode == importer.ModeCancel {
		return result, nil
	}

	merged, err := importer.Merge(existing, incoming, mode)
	if err != nil {
		return nil, err
	}
	if err = s.store.Save(ctx, merged); err != nil {
		return nil, fmt.Errorf("writing imported plans: %w", err)
	}
	result.Total = len(merged)
	result.Written = true
	run.set("total", result.Total)
	return result, nil
}

// load reads the collection. An unreadable or missing store yields an empty
// collection and a warning on the running use case.
func (s *planService) load(ctx context.Context, run *useCaseRun) []domain.Record {
	plans, err := s.store.Load(ctx)
	if err != nil {
		run.warn(fmt.Sprintf("plan store unreadable, using empty collection: %v", err))
		return []domain.Record{}
	}
	if plans == nil {
		plans = []domain.Record{}
	}
	return plans
}

func indexOf(plans []domain.Record, id string) int {
	for i, p := range plans {
		if p.ID() == id {
			return i
		}
	}
	return -1
}
