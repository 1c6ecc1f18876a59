package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/BrandishRewards_Go/internal/catalog"
	"github.com/osse101/BrandishRewards_Go/internal/config"
	"github.com/osse101/BrandishRewards_Go/internal/engine"
	"github.com/osse101/BrandishRewards_Go/internal/handler"
	"github.com/osse101/BrandishRewards_Go/internal/presentation"
	"github.com/osse101/BrandishRewards_Go/internal/server"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Reward service failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load reads .env, so it runs before the env schema check
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		return err
	}

	closer, err := initLogger(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	for _, w := range warnings {
		slog.Warn("Configuration warning", "warning", w)
	}

	rules, err := catalog.Load(cfg.RulesPath, catalog.Options{
		DefaultMaxStack:  cfg.DefaultMaxStack,
		EscalationCap:    cfg.EscalationCap,
		ProgramCacheSize: cfg.ProgramCacheSize,
	})
	if err != nil {
		return err
	}
	slog.Info("Reward rules loaded",
		"path", cfg.RulesPath,
		"version", rules.Version,
		"tables", len(rules.Tables()))

	opts := []engine.Option{engine.WithPresenter(presentation.NewLogPresenter())}
	if cfg.IsDeterministic() {
		slog.Warn("Deterministic generation enabled", "seed", cfg.RNGSeed)
		opts = append(opts, engine.WithSeedSource(engine.FixedSeed(cfg.RNGSeed)))
	}
	eng := engine.New(rules, opts...)

	srv := server.NewServer(server.Config{
		Port:         cfg.Port,
		APIKey:       cfg.APIKey,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, handler.NewRewardHandler(eng), rules.Version)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Stop(shutdownCtx)
	})

	return g.Wait()
}
