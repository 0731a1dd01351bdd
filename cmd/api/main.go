package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/prephub-api/internal/api/http"
	"github.com/spec-kit/prephub-api/internal/api/http/handlers"
	"github.com/spec-kit/prephub-api/internal/auth"
	"github.com/spec-kit/prephub-api/internal/cache"
	"github.com/spec-kit/prephub-api/internal/config"
	"github.com/spec-kit/prephub-api/internal/observability"
	"github.com/spec-kit/prephub-api/internal/persistence"
	"github.com/spec-kit/prephub-api/internal/repository"
	"github.com/spec-kit/prephub-api/internal/service"
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

	pg, err := persistence.NewPostgres(ctx, cfg.Database, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Database.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	courseRepo := repository.NewCourseRepository(pool)
	jobRepo := repository.NewMemoryJobRepository()

	authService := service.NewAuthService(cfg.Auth, userRepo)
	courseService := service.NewCourseService(courseRepo)
	jobService := service.NewJobService(jobRepo)
	chatService := service.NewChatService()

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo)
	courseCache := cache.NewCourseCache(redis.Client, cfg.Cache.CacheTTL())
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, cfg, logger, metrics)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis, courseService, jobService),
		Auth:           handlers.NewAuthHandler(authService),
		Courses:        handlers.NewCoursesHandler(courseService, courseCache),
		Jobs:           handlers.NewJobsHandler(jobService),
		Chat:           handlers.NewChatHandler(chatService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
