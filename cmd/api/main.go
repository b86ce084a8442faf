package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"

	"github.com/sportshoplabs/sportshop-backend/api/controllers"
	"github.com/sportshoplabs/sportshop-backend/api/responses"
	"github.com/sportshoplabs/sportshop-backend/api/routes"
	"github.com/sportshoplabs/sportshop-backend/internal/analytics"
	"github.com/sportshoplabs/sportshop-backend/internal/cart"
	"github.com/sportshoplabs/sportshop-backend/internal/catalog"
	"github.com/sportshoplabs/sportshop-backend/internal/orders"
	"github.com/sportshoplabs/sportshop-backend/internal/recommendations"
	"github.com/sportshoplabs/sportshop-backend/pkg/config"
	"github.com/sportshoplabs/sportshop-backend/pkg/db"
	"github.com/sportshoplabs/sportshop-backend/pkg/env"
	"github.com/sportshoplabs/sportshop-backend/pkg/logger"
	"github.com/sportshoplabs/sportshop-backend/pkg/metrics"
	"github.com/sportshoplabs/sportshop-backend/pkg/redis"
	"github.com/sportshoplabs/sportshop-backend/pkg/seed"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	responses.ExposeInternalErrors(!cfg.App.IsProd())

	var closers []func() error
	readiness := map[string]controllers.Pinger{}

	products, err := seed.Load[[]catalog.Product](cfg.Data.Dir, "products.json")
	if err != nil {
		logg.Error(context.Background(), "failed to load product seed", err)
		os.Exit(1)
	}

	var catalogRepo catalog.Repository
	if cfg.DB.Enabled() {
		dbClient, err := db.New(context.Background(), cfg.DB)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap database", err)
			os.Exit(1)
		}
		closers = append(closers, dbClient.Close)
		readiness["database"] = dbClient

		if err := dbClient.DB().AutoMigrate(&catalog.Product{}); err != nil {
			logg.Error(context.Background(), "failed to migrate catalog schema", err)
			os.Exit(1)
		}
		repo := catalog.NewGormRepository(dbClient.DB())
		if count, err := repo.Count(context.Background()); err == nil && count == 0 {
			if err := repo.ReplaceAll(context.Background(), products); err != nil {
				logg.Error(context.Background(), "failed to seed catalog", err)
				os.Exit(1)
			}
		}
		catalogRepo = repo
	} else {
		repo := catalog.NewMemoryRepository()
		if err := repo.ReplaceAll(context.Background(), products); err != nil {
			logg.Error(context.Background(), "failed to seed catalog", err)
			os.Exit(1)
		}
		catalogRepo = repo
	}

	catalogService, err := catalog.NewService(catalogRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}

	var cartRepo cart.Repository = cart.NewMemoryRepository()
	if cfg.Redis.Enabled() {
		redisClient, err := redis.New(context.Background(), cfg.Redis)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		closers = append(closers, redisClient.Close)
		readiness["redis"] = redisClient

		repo, err := cart.NewRedisRepository(redisClient)
		if err != nil {
			logg.Error(context.Background(), "failed to create redis cart repository", err)
			os.Exit(1)
		}
		cartRepo = repo
	}

	cartService, err := cart.NewService(cartRepo, catalogService)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	orderService, err := orders.NewService(orders.NewMemoryRepository())
	if err != nil {
		logg.Error(context.Background(), "failed to create order service", err)
		os.Exit(1)
	}

	relations, err := seed.Load[recommendations.Relations](cfg.Data.Dir, "recommendations.json")
	if err != nil {
		logg.Warn(context.Background(), "recommendation seed unavailable, relation lookups will be empty")
		relations = recommendations.Relations{}
	}
	recommendationService, err := recommendations.NewService(catalogService, relations, cfg.Recommendation)
	if err != nil {
		logg.Error(context.Background(), "failed to create recommendation service", err)
		os.Exit(1)
	}

	report, err := seed.Load[analytics.Report](cfg.Data.Dir, "analytics.json")
	if err != nil {
		logg.Warn(context.Background(), "analytics seed unavailable, reports will be empty")
		report = analytics.Report{}
	}
	analyticsService, err := analytics.NewService(report)
	if err != nil {
		logg.Error(context.Background(), "failed to create analytics service", err)
		os.Exit(1)
	}

	httpMetrics := metrics.NewHTTPMetrics(prometheus.DefaultRegisterer)

	addr := ":" + env.Get("PORT", cfg.App.Port)

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(cfg, logg, httpMetrics, readiness,
			catalogService, cartService, orderService, recommendationService, analyticsService),
	}

	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-shutdownCtx.Done():
		logg.Info(ctx, "shutting down api server")
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		err := server.Shutdown(timeoutCtx)
		for _, closeFn := range closers {
			err = multierr.Append(err, closeFn())
		}
		if err != nil {
			logg.Error(ctx, "shutdown completed with errors", err)
			os.Exit(1)
		}
		logg.Info(ctx, "shutdown complete")
	}
}
