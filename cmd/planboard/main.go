package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/alexanderramin/planboard/internal/cli"
	"github.com/alexanderramin/planboard/internal/config"
	"github.com/alexanderramin/planboard/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	baseDir, err := config.InstallDir()
	if err != nil {
		return fmt.Errorf("finding install directory: %w", err)
	}
	cfg, err := config.Load(baseDir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer log.Sync()

	if logger.IsProduction(cfg.LogMode) {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Stores that cannot be initialised are fatal.
	stores, err := cli.OpenStores(ctx, cfg)
	if err != nil {
		return err
	}
	defer stores.Close()

	app := cli.NewApp(cfg, log, stores)
	return cli.NewServeCmd(app).ExecuteContext(ctx)
}
