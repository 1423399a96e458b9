package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/player-scout/internal/app"
	"github.com/riskibarqy/player-scout/internal/config"
	"github.com/riskibarqy/player-scout/internal/platform/logging"
	"github.com/riskibarqy/player-scout/internal/usecase"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	logger := logging.NewJSON(cfg.LogLevel).Named("images")
	logging.SetDefault(logger)

	if err := run(cfg, logger, os.Args[1], os.Args[2:]); err != nil {
		logger.Error("image command failed", "command", os.Args[1], "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

func run(cfg config.Config, logger *logging.Logger, cmd string, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	container, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		return crerr.Wrap(err, "build container")
	}
	defer container.Close()

	var result any
	switch strings.ToLower(strings.TrimSpace(cmd)) {
	case "download":
		flags := flag.NewFlagSet("download", flag.ContinueOnError)
		workers := flags.Int("workers", cfg.ImageSyncWorkers, "concurrent downloads")
		overwrite := flags.Bool("overwrite", false, "re-download photos that already exist")
		if err := flags.Parse(args); err != nil {
			return err
		}
		result, err = container.ImageSync.DownloadAll(ctx, usecase.DownloadInput{Workers: *workers, Overwrite: *overwrite})
	case "normalize":
		result, err = container.ImageSync.Normalize(ctx)
	case "clean":
		result, err = container.ImageSync.CleanLegacy(ctx, args)
	default:
		printUsage()
		return crerr.Newf("unknown command %q", cmd)
	}
	if err != nil {
		return crerr.Wrapf(err, "%s images", cmd)
	}

	out, err := sonic.ConfigDefault.MarshalIndent(result, "", "  ")
	if err != nil {
		return crerr.Wrap(err, "encode summary")
	}
	fmt.Println(string(out))

	return nil
}

func printUsage() {
	name := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "usage: %s <download|normalize|clean> [args]\n", name)
	fmt.Fprintln(os.Stderr, "examples:")
	fmt.Fprintf(os.Stderr, "  %s download -workers 10\n", name)
	fmt.Fprintf(os.Stderr, "  %s download -overwrite\n", name)
	fmt.Fprintf(os.Stderr, "  %s normalize\n", name)
	fmt.Fprintf(os.Stderr, "  %s clean player_images\n", name)
}
