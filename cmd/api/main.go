package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/Shazil-Web3/Hanzala-agnecy/internal/auth"
	"github.com/Shazil-Web3/Hanzala-agnecy/internal/cache"
	"github.com/Shazil-Web3/Hanzala-agnecy/internal/config"
	"github.com/Shazil-Web3/Hanzala-agnecy/internal/database"
	"github.com/Shazil-Web3/Hanzala-agnecy/internal/handler"
	"github.com/Shazil-Web3/Hanzala-agnecy/internal/logging"
	"github.com/Shazil-Web3/Hanzala-agnecy/internal/metrics"
	middlewarepkg "github.com/Shazil-Web3/Hanzala-agnecy/internal/middleware"
	"github.com/Shazil-Web3/Hanzala-agnecy/internal/notify"
	"github.com/Shazil-Web3/Hanzala-agnecy/internal/repository"
	"github.com/Shazil-Web3/Hanzala-agnecy/internal/router"
	"github.com/Shazil-Web3/Hanzala-agnecy/internal/service"
)

// store bundles the repositories of the selected backend.
type store struct {
	leads   repository.LeadsRepository
	reviews repository.ReviewsRepository
	close   func()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := logging.New(logging.Options{
		Level:       cfg.LogLevel,
		Development: cfg.IsDevelopment(),
		File:        cfg.LogFile,
	})
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	st, err := openStore(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to connect database", zap.Error(err))
	}
	defer st.close()

	// Typed nil must not reach the service.
	var reviewsCache service.ReviewsCache
	if cfg.RedisURL != "" {
		client, err := cache.Connect(ctx, cfg.RedisURL)
		if err != nil {
			logger.Fatal("failed to connect redis", zap.Error(err))
		}
		defer client.Close()
		reviewsCache = cache.NewReviewsCache(client, cfg.ReviewsCacheTTL)
	}

	sender, err := notify.NewSender(ctx, cfg.Mail, logger)
	if err != nil {
		logger.Fatal("failed to configure mail provider", zap.Error(err))
	}
	notifier := notify.NewLeadNotifier(sender, notify.LeadNotifierConfig{
		AdminEmail: cfg.Mail.AdminEmail,
		Signature:  cfg.Mail.FromName,
		Timeout:    cfg.Mail.Timeout,
	}, logger)

	m := metrics.New(nil)

	leadsService := service.NewLeadsService(st.leads, notifier, service.LeadsConfig{
		Services:       cfg.LeadServices,
		DefaultService: cfg.LeadDefaultService,
		PhoneRegion:    cfg.PhoneDefaultRegion,
	}, m, logger)
	reviewsService := service.NewReviewsService(st.reviews, reviewsCache, cfg.ReviewDefaultStatus, m, logger)

	handlers := router.Handlers{
		Contact: handler.NewContactHandler(leadsService, cfg, logger),
		Reviews: handler.NewReviewsHandler(reviewsService, cfg, logger),
	}

	var jwtManager *auth.JWTManager
	if cfg.Admin.Enabled() {
		jwtManager = auth.NewJWTManager(cfg.Admin.JWTSecret, cfg.Admin.TokenTTL)
		handlers.Auth = handler.NewAuthHandler(service.NewAuthService(cfg.Admin.Email, cfg.Admin.PasswordHash, jwtManager))
	} else {
		logger.Warn("admin authentication disabled, lead and moderation routes are open")
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = handler.HTTPErrorHandler(cfg, logger)

	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Secure())
	e.Use(echoMiddleware.BodyLimit("100K"))
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization, middlewarepkg.HeaderRequestID},
	}))
	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging(logger))
	e.Use(middlewarepkg.Metrics(m))

	router.Register(e, cfg, jwtManager, handlers, prometheus.DefaultGatherer)

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
		serverErr <- e.Start(":" + cfg.Port)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

func openStore(ctx context.Context, cfg *config.Config) (*store, error) {
	driver, err := cfg.StoreDriver()
	if err != nil {
		return nil, err
	}

	switch driver {
	case config.StorePostgres:
		pool, err := database.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return &store{
			leads:   repository.NewPGXLeadsRepository(pool),
			reviews: repository.NewPGXReviewsRepository(pool),
			close:   pool.Close,
		}, nil
	case config.StoreMongo:
		client, err := database.ConnectMongo(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		db := client.Database(cfg.MongoDatabase)
		if err := repository.EnsureMongoIndexes(ctx, db); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}
		return &store{
			leads:   repository.NewMongoLeadsRepository(db),
			reviews: repository.NewMongoReviewsRepository(db),
			close:   func() { _ = client.Disconnect(context.Background()) },
		}, nil
	default:
		return nil, fmt.Errorf("unsupported store driver %q", driver)
	}
}
