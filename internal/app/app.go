package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/player-scout/external/sofifa"
	"github.com/riskibarqy/player-scout/internal/config"
	"github.com/riskibarqy/player-scout/internal/domain/player"
	cacherepo "github.com/riskibarqy/player-scout/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/player-scout/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/player-scout/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/player-scout/internal/interfaces/httpapi"
	"github.com/riskibarqy/player-scout/internal/platform/cache"
	"github.com/riskibarqy/player-scout/internal/platform/id"
	"github.com/riskibarqy/player-scout/internal/platform/logging"
	"github.com/riskibarqy/player-scout/internal/platform/media"
	"github.com/riskibarqy/player-scout/internal/platform/resilience"
	"github.com/riskibarqy/player-scout/internal/usecase"
)

// Container holds the services shared by the API and the maintenance CLIs.
type Container struct {
	Players   player.Store
	Player    *usecase.PlayerService
	Photo     *usecase.PhotoService
	ImageSync *usecase.ImageSyncService
	Import    *usecase.ImportService

	db *sqlx.DB
}

func NewContainer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Container, error) {
	if logger == nil {
		logger = logging.Default()
	}

	c := &Container{}
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		db, err := OpenDB(ctx, cfg)
		if err != nil {
			return nil, err
		}
		c.db = db
		c.Players = postgres.NewPlayerRepository(db)
	case config.StorageMemory, "":
		c.Players = memory.NewPlayerRepository(memory.SeedPlayers())
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}

	var reader player.Repository = c.Players
	if cfg.CacheEnabled {
		reader = cacherepo.NewPlayerRepository(c.Players, cache.NewStore(cfg.CacheTTL))
	}

	breaker := resilience.NormalizeCircuitBreakerConfig(resilience.CircuitBreakerConfig{
		Enabled:          cfg.SofifaCircuitEnabled,
		FailureThreshold: cfg.SofifaCircuitFailures,
		OpenTimeout:      cfg.SofifaCircuitOpenFor,
		HalfOpenMaxReq:   cfg.SofifaCircuitHalfOpen,
	})
	cdn := sofifa.NewClient(sofifa.ClientConfig{
		BaseURL:        cfg.SofifaCDNBaseURL,
		PhotoVersion:   cfg.SofifaPhotoVersion,
		Timeout:        cfg.SofifaTimeout,
		Logger:         logger.Named("sofifa"),
		CircuitBreaker: breaker,
	})
	mediaStore := media.NewStore(cfg.MediaRoot)

	c.Player = usecase.NewPlayerService(reader, usecase.PaginationConfig{
		DefaultPageSize: cfg.PageSizeDefault,
		MaxPageSize:     cfg.PageSizeMax,
	}, logger.Named("player"))
	c.Photo = usecase.NewPhotoService(reader, mediaStore, cdn, logger.Named("photo"))
	c.ImageSync = usecase.NewImageSyncService(c.Players, mediaStore, cdn, cfg.ImageSyncWorkers, logger.Named("images"))
	c.Import = usecase.NewImportService(c.Players, cdn, usecase.ImportConfig{
		BatchSize: cfg.ImportBatchSize,
		Workers:   cfg.ImportWorkers,
	}, logger.Named("import"))

	logger.Info("container ready",
		"storage_driver", cfg.StorageDriver,
		"cache_enabled", cfg.CacheEnabled,
		"media_root", mediaStore.Root(),
	)

	return c, nil
}

func (c *Container) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}

func NewHTTPServer(cfg config.Config, c *Container, logger *logging.Logger) (*http.Server, error) {
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	handler := httpapi.NewHandler(c.Player, c.Photo, logger.Named("http"))
	router := httpapi.NewRouter(handler, logger, httpapi.RouterConfig{
		ServiceName:        cfg.ServiceName,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RequestIDs:         id.NewUUIDGenerator(),
	})

	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, nil
}
