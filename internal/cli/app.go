package cli

import (
	"github.com/alexanderramin/planboard/internal/config"
	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/alexanderramin/planboard/internal/importer"
	"github.com/alexanderramin/planboard/internal/logger"
	"github.com/alexanderramin/planboard/internal/service"
)

// App holds the configuration and services used by both commands.
type App struct {
	Config config.Config
	Log    *logger.Logger

	Plans service.PlanService
	Goals service.GoalService
	IDs   domain.IDSource

	// IsInteractive reports whether the user can answer prompts.
	IsInteractive func() bool
	// PromptMode asks how imported plans combine with the existing store.
	PromptMode func(existing, incoming int) (importer.Mode, error)
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) logger() *logger.Logger {
	if a.Log == nil {
		return logger.NewNop()
	}
	return a.Log
}
