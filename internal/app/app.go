package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/yungbote/commissioning-backend/internal/data/db"
	"github.com/yungbote/commissioning-backend/internal/http"
	"github.com/yungbote/commissioning-backend/internal/observability"
	"github.com/yungbote/commissioning-backend/internal/platform/logger"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Cfg      Config
	Repos    Repos
	Services Services
	Server   *http.Server
	Metrics  *observability.Metrics

	database     *db.DatabaseService
	otelShutdown func(context.Context) error
}

// New opens the database, migrates it and wires every layer. The caller owns
// the returned App and must Close it.
func New(ctx context.Context, cfg Config) (*App, error) {
	log, err := logger.NewWithOptions(logger.Options{Mode: cfg.LogMode, File: cfg.LogFile})
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	otelShutdown := observability.InitOTel(ctx, log, observability.OtelConfig{
		Enabled:     cfg.Otel.Enabled,
		ServiceName: cfg.Otel.ServiceName,
		Environment: cfg.Otel.Environment,
		Endpoint:    cfg.Otel.Endpoint,
		Headers:     observability.ParseHeaders(cfg.Otel.Headers),
		Insecure:    cfg.Otel.Insecure,
		SampleRatio: cfg.Otel.SampleRatio,
	})

	database, err := db.NewDatabaseService(log, db.Options{Driver: cfg.DBDriver, DSN: cfg.DSN()})
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init database: %w", err)
	}
	if err := database.AutoMigrateAll(); err != nil {
		_ = database.Close()
		log.Sync()
		return nil, fmt.Errorf("automigrate: %w", err)
	}
	theDB := database.DB()
	sqlDB, err := theDB.DB()
	if err != nil {
		_ = database.Close()
		log.Sync()
		return nil, fmt.Errorf("database handle: %w", err)
	}

	metrics := observability.NewMetrics(cfg.MetricsEnabled)
	reposet := wireRepos(theDB, log)
	serviceset := wireServices(theDB, log, cfg, reposet, metrics)
	handlerset := wireHandlers(log, cfg, serviceset, sqlDB)
	server := wireServer(log, cfg, handlerset, metrics)

	return &App{
		Log:          log,
		DB:           theDB,
		Cfg:          cfg,
		Repos:        reposet,
		Services:     serviceset,
		Server:       server,
		Metrics:      metrics,
		database:     database,
		otelShutdown: otelShutdown,
	}, nil
}

// Serve runs the HTTP server until ctx is cancelled, then drains in-flight
// requests for at most Cfg.ShutdownTimeout.
func (a *App) Serve(ctx context.Context) error {
	if a == nil || a.Server == nil {
		return errors.New("app not initialized")
	}
	g, gctx := errgroup.WithContext(ctx)

	a.Metrics.StartDBCollector(gctx, a.Log, a.DB, a.Cfg.MetricsInterval)

	g.Go(func() error {
		a.Log.Info("Server listening", "addr", a.Cfg.Addr(), "driver", a.Cfg.DBDriver, "import_atomic", a.Cfg.ImportAtomic)
		return a.Server.Run(a.Cfg.Addr())
	})
	g.Go(func() error {
		<-gctx.Done()
		a.Log.Info("Shutting down server", "timeout", a.Cfg.ShutdownTimeout.String())
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.Cfg.ShutdownTimeout)
		defer cancel()
		return a.Server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// ImportFile runs the punch list import against the workbook at path.
func (a *App) ImportFile(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	res, err := a.Services.PunchImport.Import(ctx, f)
	if err != nil {
		return err
	}
	a.Log.Info(res.Message, "file", path, "deleted", res.Deleted, "inserted", res.Inserted, "skipped", res.Skipped)
	return nil
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.otelShutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := a.otelShutdown(ctx); err != nil {
			a.Log.Warn("otel shutdown failed", "error", err)
		}
		cancel()
	}
	if a.database != nil {
		if err := a.database.Close(); err != nil {
			a.Log.Warn("database close failed", "error", err)
		}
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
