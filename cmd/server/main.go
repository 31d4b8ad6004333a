package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "investapi/internal/adapters/http"
	pg "investapi/internal/adapters/postgres"
	"investapi/internal/config"
	"investapi/internal/pkg/logger"
	"investapi/internal/ports"
	compsvc "investapi/internal/services/companies"
)

func main() {
	cfg, err := config.Load()

	log := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		ServiceName: cfg.ServiceName,
		Pretty:      cfg.Env == "development",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := pg.Connect(ctx, pg.Options{
		URL:            cfg.DatabaseURL,
		MinConns:       cfg.PoolMinSize,
		MaxConns:       cfg.PoolMaxSize,
		ConnectTimeout: cfg.PoolTimeout,
		CommandTimeout: cfg.CommandTimeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()

	if cfg.MigrateOnStart {
		if err := db.Migrate(ctx); err != nil {
			log.Fatal().Err(err).Msg("Failed to run migrations")
		}
		log.Info().Msg("Migrations applied")
	}

	// Lookups go through a bounded read-through cache unless disabled.
	var repo ports.CompanyRepository = db
	if cfg.LookupCacheSize > 0 {
		repo, err = pg.NewCachingRepository(db, cfg.LookupCacheSize)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to build lookup cache")
		}
	}

	srv := httpadapter.New(compsvc.New(repo), db, log)

	httpServer := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpServer.ListenAndServe() }()
	log.Info().Str("addr", cfg.ListenAddr).Msg("Listening")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		log.Info().Str("signal", sig.String()).Msg("Shutting down")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Shutdown error")
		}
	case err := <-errCh:
		log.Fatal().Err(err).Msg("Server error")
	}
}
