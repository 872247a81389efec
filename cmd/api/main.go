package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/crewcal/internal/api/http"
	"github.com/spec-kit/crewcal/internal/api/http/handlers"
	"github.com/spec-kit/crewcal/internal/auth"
	"github.com/spec-kit/crewcal/internal/catalog"
	"github.com/spec-kit/crewcal/internal/config"
	"github.com/spec-kit/crewcal/internal/domain"
	"github.com/spec-kit/crewcal/internal/observability"
	"github.com/spec-kit/crewcal/internal/persistence"
	"github.com/spec-kit/crewcal/internal/repository"
	"github.com/spec-kit/crewcal/internal/service"
	"github.com/spec-kit/crewcal/internal/session"
	"github.com/spec-kit/crewcal/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cat, err := catalog.Load(cfg.Calendar.CatalogDir)
	if err != nil {
		logger.Fatal("failed to load catalog", zap.Error(err))
	}

	partition := domain.Partition{Region: cfg.Calendar.Region, Department: cfg.Calendar.Department}
	department, err := cat.Department(partition.Department)
	if err != nil {
		logger.Fatal("unknown department", zap.String("department", partition.Department), zap.Error(err))
	}
	region, err := cat.Region(partition.Region)
	if err != nil {
		logger.Fatal("unknown region", zap.String("region", partition.Region), zap.Error(err))
	}
	if region.AdminPassword != "" && !strings.HasPrefix(region.AdminPassword, "$2") {
		logger.Warn("region admin passphrase is stored in plaintext; use a bcrypt hash",
			zap.String("region", region.ID))
	}

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	eventRepo := repository.NewEventRepository(pool)
	employeeRepo := repository.NewEmployeeRepository(pool)

	metrics := observability.NewMetrics()

	bus := store.NewRedisBus(redis.Client)
	docStore := store.New(eventRepo, employeeRepo, bus, logger, metrics)

	sess := session.New(docStore, partition, logger)
	if err := sess.Start(ctx); err != nil {
		logger.Fatal("failed to start session", zap.Error(err))
	}
	defer sess.Close()

	scheduleService := service.NewScheduleService(service.Dependencies{
		Store:      docStore,
		Partition:  partition,
		Department: department,
	})
	rosterService := service.NewRosterService(docStore, partition)
	layoutService := service.NewLayoutService(sess, cat, partition)

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AdminTokenTTLMinutes)
	adminMiddleware := auth.NewAdminMiddleware(tokens, partition.Region)

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:          handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:            handlers.NewAuthHandler(tokens, region),
		Events:          handlers.NewEventsHandler(scheduleService),
		Employees:       handlers.NewEmployeesHandler(rosterService),
		Layout:          handlers.NewLayoutHandler(layoutService),
		Config:          handlers.NewConfigHandler(cat, partition),
		AdminMiddleware: adminMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	logger.Info("crewcal started",
		zap.String("addr", cfg.App.Addr()),
		zap.String("partition", partition.String()),
	)

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
