package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/player-scout/internal/app"
	"github.com/riskibarqy/player-scout/internal/config"
	"github.com/riskibarqy/player-scout/internal/platform/logging"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <players.csv>\n", filepath.Base(os.Args[0]))
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	logger := logging.NewJSON(cfg.LogLevel).Named("importer")
	logging.SetDefault(logger)

	if err := run(cfg, logger, os.Args[1]); err != nil {
		logger.Error("import failed", "error", err, "path", os.Args[1])
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

func run(cfg config.Config, logger *logging.Logger, path string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.StorageDriver != config.StoragePostgres {
		logger.Warn("storage driver is not postgres, imported rows are discarded on exit", "storage_driver", cfg.StorageDriver)
	}

	file, err := os.Open(path)
	if err != nil {
		return crerr.Wrapf(err, "open csv %s", path)
	}
	defer file.Close()

	container, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		return crerr.Wrap(err, "build container")
	}
	defer container.Close()

	result, err := container.Import.Import(ctx, file)
	if err != nil {
		return crerr.Wrap(err, "import players")
	}

	out, err := sonic.ConfigDefault.MarshalIndent(result, "", "  ")
	if err != nil {
		return crerr.Wrap(err, "encode import summary")
	}
	fmt.Println(string(out))

	return nil
}
