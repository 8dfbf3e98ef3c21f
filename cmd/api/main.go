package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sales-dashboard-api/internal/auth"
	"github.com/sales-dashboard-api/internal/config"
	"github.com/sales-dashboard-api/internal/database"
	"github.com/sales-dashboard-api/internal/handler"
	"github.com/sales-dashboard-api/internal/repository"
	"github.com/sales-dashboard-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := config.NewLogger(cfg.Log)
	slog.SetDefault(logger)

	if cfg.Auth.UsesDefaultSecret() {
		logger.Warn("JWT_SECRET is not set, using the development signing key")
	}

	db, err := database.Open(cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("failed to get sql.DB", slog.Any("error", err))
		os.Exit(1)
	}
	defer sqlDB.Close()

	if err := database.Migrate(db, cfg.Database.Driver); err != nil {
		logger.Error("failed to run migrations", slog.Any("error", err))
		os.Exit(1)
	}

	branchRepo := repository.NewBranchRepository(db)
	empRepo := repository.NewEmployeeRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	userRepo := repository.NewUserRepository(db)
	targetRepo, err := repository.NewTargetRepository(db, cfg.Dashboard.TargetMode)
	if err != nil {
		logger.Error("failed to set up target storage", slog.Any("error", err))
		os.Exit(1)
	}

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	authService := service.NewAuthService(userRepo, tokens)
	branchService := service.NewBranchService(branchRepo)
	empService := service.NewEmployeeService(empRepo, branchRepo)
	entryService := service.NewEntryService(empRepo, saleRepo, expenseRepo, targetRepo)
	dashboardService := service.NewDashboardService(branchRepo, empRepo, saleRepo, expenseRepo, targetRepo)

	created, err := authService.EnsureAdmin(context.Background(), cfg.Auth.AdminUsername, cfg.Auth.AdminPassword, cfg.Auth.AdminName)
	if err != nil {
		logger.Error("failed to bootstrap administrator", slog.Any("error", err))
		os.Exit(1)
	}
	if created {
		logger.Info("administrator account created", slog.String("username", cfg.Auth.AdminUsername))
	}

	handlers := handler.Handlers{
		Health:    handler.NewHealthHandler(logger),
		Auth:      handler.NewAuthHandler(authService, logger),
		Branch:    handler.NewBranchHandler(branchService, logger),
		Employee:  handler.NewEmployeeHandler(empService, logger),
		Entry:     handler.NewEntryHandler(entryService, logger),
		Dashboard: handler.NewDashboardHandler(dashboardService, logger),
	}
	router := handler.NewRouter(handlers, tokens, handler.RouterOptions{
		CORSOrigins:    cfg.Server.CORSOrigins,
		LoginRateLimit: cfg.Server.LoginRateLimit,
	}, logger)

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	done := make(chan bool)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info("server is shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("could not gracefully shutdown the server", slog.Any("error", err))
		}
		close(done)
	}()

	logger.Info("server is starting",
		slog.String("port", cfg.Server.Port),
		slog.String("db_driver", cfg.Database.Driver),
		slog.String("target_mode", cfg.Dashboard.TargetMode),
	)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("could not listen on port", slog.String("port", cfg.Server.Port), slog.Any("error", err))
		os.Exit(1)
	}

	<-done
	logger.Info("server stopped")
}
