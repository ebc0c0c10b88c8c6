package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/felixgeelhaar/rolodex/adapter/cli"
	"github.com/felixgeelhaar/rolodex/adapter/cli/contact"
	"github.com/felixgeelhaar/rolodex/adapter/cli/meeting"
	"github.com/felixgeelhaar/rolodex/internal/app"
	"github.com/felixgeelhaar/rolodex/pkg/config"
	"github.com/felixgeelhaar/rolodex/pkg/observability"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}

	logger := observability.NewLogger(logConfig(cfg))
	cli.SetLogger(logger)

	container, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize container", observability.ErrorKey, err)
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	defer func() {
		if err := container.Close(); err != nil {
			logger.Warn("failed to close container", observability.ErrorKey, err)
		}
	}()

	cli.SetApp(cli.NewApp(container.ContactManager, container.Health))

	cli.AddCommand(contact.Cmd)
	cli.AddCommand(meeting.Cmd)

	if err := cli.Execute(ctx); err != nil {
		return 1
	}
	return 0
}

func logConfig(cfg *config.Config) observability.LogConfig {
	logCfg := observability.DefaultLogConfig()
	if cfg.IsProduction() {
		logCfg = observability.ProductionLogConfig()
	}
	if cfg.LogLevel != "" {
		logCfg.Level = observability.LogLevel(cfg.LogLevel)
	}
	if cfg.LogFormat != "" {
		logCfg.Format = observability.LogFormat(cfg.LogFormat)
	}
	logCfg.ServiceVersion = cli.Version
	return logCfg
}
