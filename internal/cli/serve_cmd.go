package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/planboard/internal/server"
	"github.com/alexanderramin/planboard/internal/server/handlers"
)

// NewServeCmd creates the "planboard" command, which runs the HTTP service
// until interrupted.
func NewServeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:           "planboard",
		Short:         "Serve the plan board and its JSON API",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := app.logger()
			srv := server.NewServer(RouterConfig(app))

			addr := app.Config.Addr()
			log.Info("planboard listening",
				"addr", addr,
				"store", app.Config.Store,
				"data_dir", app.Config.DataDir,
				"static_dir", app.Config.StaticDir,
			)
			fmt.Fprintf(cmd.OutOrStdout(), "Plan board running at http://localhost:%d\n", app.Config.Port)

			if err := srv.Run(cmd.Context(), addr); err != nil {
				return fmt.Errorf("serving on %s: %w", addr, err)
			}
			log.Info("planboard stopped")
			return nil
		},
	}
}

// RouterConfig builds the HTTP handlers for app.
func RouterConfig(app *App) server.RouterConfig {
	log := app.logger()
	return server.RouterConfig{
		Log:           log,
		PlanHandler:   handlers.NewPlanHandler(log, app.Plans),
		GoalHandler:   handlers.NewGoalHandler(log, app.Goals),
		HealthHandler: handlers.NewHealthHandler(),
		StaticHandler: handlers.NewStaticHandler(app.Config.StaticDir),
	}
}
