package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"secondbrain/internal/ai"
	"secondbrain/internal/api"
	"secondbrain/internal/config"
	"secondbrain/internal/linker"
	"secondbrain/internal/repository"
	"secondbrain/internal/seed"
	chatuc "secondbrain/internal/usecase/chat"
	graphuc "secondbrain/internal/usecase/graph"
	notesuc "secondbrain/internal/usecase/notes"
	"secondbrain/migrations"
	"secondbrain/pkg/database"
	"secondbrain/pkg/httpserver"
	"secondbrain/pkg/logger/slogx"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("run app: %v", err)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Parse()
	if err != nil {
		return fmt.Errorf("parse cfg: %v", err)
	}

	if err := slogx.InitGlobal(
		os.Stdout,
		cfg.App.LogLevel,
		cfg.App.Pretty,
		slogx.WithRequestID,
	); err != nil {
		return fmt.Errorf("init logger: %v", err)
	}

	pool, err := database.NewPGX(ctx, database.NewOptions(
		net.JoinHostPort(cfg.Database.Host, cfg.Database.Port),
		cfg.Database.User,
		cfg.Database.Name,
		database.WithPassword(cfg.Database.Password),
		database.WithLogger(slogx.Default()),
	))
	if err != nil {
		return fmt.Errorf("connect to database: %v", err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool, migrations.FS); err != nil {
		return fmt.Errorf("migrate database: %v", err)
	}

	db := database.NewDatabase(pool)
	repo := repository.New(db)

	notesUsecase, err := notesuc.New(notesuc.NewOptions(repo, repo, db, linker.New()))
	if err != nil {
		return fmt.Errorf("init notes usecase: %v", err)
	}

	generator, err := ai.New(ai.NewOptions(
		cfg.AI.APIKey,
		cfg.AI.Model,
		ai.WithBaseURL(cfg.AI.BaseURL),
		ai.WithTimeout(cfg.AI.Timeout),
	))
	if err != nil {
		return fmt.Errorf("init ai client: %v", err)
	}

	chatUsecase, err := chatuc.New(chatuc.NewOptions(chatuc.NewKeywordSelector(repo), generator))
	if err != nil {
		return fmt.Errorf("init chat usecase: %v", err)
	}

	graphUsecase, err := graphuc.New(graphuc.NewOptions(repo, repo))
	if err != nil {
		return fmt.Errorf("init graph usecase: %v", err)
	}

	if cfg.App.Seed {
		if err := seed.Run(ctx, repo, repo); err != nil {
			return fmt.Errorf("seed store: %v", err)
		}
	}

	router := api.NewRouter(
		api.NewNotesHandler(notesUsecase),
		api.NewGraphHandler(graphUsecase),
		api.NewChatHandler(chatUsecase),
	)

	srv, err := httpserver.New(httpserver.NewOptions(
		cfg.HTTP.Addr,
		router,
		httpserver.WithLogger(slogx.Default()),
	))
	if err != nil {
		return fmt.Errorf("init http server: %v", err)
	}

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error { return srv.Run(ctx) })

	if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("wait app stop: %v", err)
	}

	return nil
}
