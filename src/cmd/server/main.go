package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/api-sage/bank-service/src/internal/adapter/http/controller"
	"github.com/api-sage/bank-service/src/internal/adapter/http/middleware"
	"github.com/api-sage/bank-service/src/internal/adapter/http/router"
	"github.com/api-sage/bank-service/src/internal/adapter/repository/implementations"
	"github.com/api-sage/bank-service/src/internal/config"
	"github.com/api-sage/bank-service/src/internal/logger"
	"github.com/api-sage/bank-service/src/internal/scheduler"
	"github.com/api-sage/bank-service/src/internal/usecase/services"
	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	migrateCtx, cancelMigrate := context.WithTimeout(ctx, 30*time.Second)
	defer cancelMigrate()
	if err := implementations.RunMigrations(migrateCtx, cfg.DatabaseDSN, cfg.MigrationsDir); err != nil {
		log.Fatalf("run migrations: %v", err)
	}

	db, err := implementations.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	userRepo := implementations.NewUserRepository(db)
	accountRepo := implementations.NewAccountRepository(db)
	savingsRepo := implementations.NewSavingsRepository(db)

	userService := services.NewUserService(userRepo)
	accountService := services.NewAccountService(accountRepo, nil)
	savingsService := services.NewSavingsService(savingsRepo, nil, nil)

	mux := router.New(
		controller.NewUserController(userService),
		controller.NewAccountController(accountService),
		controller.NewSavingsController(savingsService),
		middleware.BasicAuth(cfg.ChannelID, cfg.ChannelKey),
	)

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	checkingJob := scheduler.NewCheckingInterestJob(accountRepo)
	savingsJob := scheduler.NewSavingsInterestJob(savingsRepo)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		logger.Info("http server listening", logger.Fields{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		return checkingJob.Start(groupCtx, cfg.CheckingInterestInterval)
	})

	group.Go(func() error {
		return savingsJob.Start(groupCtx)
	})

	group.Go(func() error {
		<-groupCtx.Done()
		logger.Info("shutting down http server", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		log.Fatalf("server exited: %v", err)
	}

	logger.Info("server stopped", nil)
}
