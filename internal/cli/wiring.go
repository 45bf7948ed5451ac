package cli

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/planboard/internal/config"
	"github.com/alexanderramin/planboard/internal/db"
	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/alexanderramin/planboard/internal/logger"
	"github.com/alexanderramin/planboard/internal/repository"
	"github.com/alexanderramin/planboard/internal/service"
)

// Stores is an initialised pair of stores plus whatever must be closed
// when the process ends.
type Stores struct {
	Plans repository.PlanStore
	Goals repository.GoalStore
	db    *sql.DB
}

func (s *Stores) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// OpenStores opens the configured backend and runs Init on both stores.
// The goal store is seeded with the default goals when empty.
func OpenStores(ctx context.Context, cfg config.Config) (*Stores, error) {
	var s *Stores
	switch cfg.Store {
	case config.StoreSQLite:
		database, err := db.OpenDB(cfg.SQLitePath())
		if err != nil {
			return nil, fmt.Errorf("opening database: %w", err)
		}
		uow := db.NewSQLiteUnitOfWork(database)
		s = &Stores{
			Plans: repository.NewSQLitePlanStore(database, uow),
			Goals: repository.NewSQLiteGoalStore(database, uow, domain.DefaultGoals()),
			db:    database,
		}
	case config.StoreJSON, "":
		s = &Stores{
			Plans: repository.NewJSONPlanStore(cfg.PlansPath()),
			Goals: repository.NewJSONGoalStore(cfg.GoalsPath(), domain.DefaultGoals()),
		}
	default:
		return nil, fmt.Errorf("unknown store %q", cfg.Store)
	}

	if err := s.Plans.Init(ctx); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("initialising plan store: %w", err)
	}
	if err := s.Goals.Init(ctx); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("initialising goal store: %w", err)
	}
	return s, nil
}

// NewApp wires services over stores. Use cases are logged through log.
func NewApp(cfg config.Config, log *logger.Logger, stores *Stores) *App {
	observer := service.NewLogUseCaseObserver(log)
	ids := domain.NewIDGenerator()
	return &App{
		Config:     cfg,
		Log:        log,
		Plans:      service.NewPlanService(stores.Plans, ids, observer),
		Goals:      service.NewGoalService(stores.Goals, observer),
		IDs:        ids,
		PromptMode: promptImportMode,
	}
}
