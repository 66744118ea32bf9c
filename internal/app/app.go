package app

import (
	"context"
	"embed"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"restopos/config"
	controller "restopos/internal/controller/http"
	"restopos/internal/controller/http/handlers"
	"restopos/internal/domain/catalog"
	"restopos/internal/domain/order"
	"restopos/internal/domain/table"
	"restopos/internal/domain/user"
	catalog_repo "restopos/internal/repo/catalog"
	order_repo "restopos/internal/repo/order"
	table_repo "restopos/internal/repo/table"
	user_repo "restopos/internal/repo/user"
	"restopos/pkg/health"
	"restopos/pkg/logger"
	"restopos/pkg/metrics"
	"restopos/pkg/postgres"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
)

//go:embed migrations/*.sql
var MIGRATION_FS embed.FS

func Run(cfg config.Config) {
	logger.Setup(logger.Options{
		Level:   cfg.LogLevel,
		Console: cfg.LogFormat == "console",
	})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	taxRate, err := decimal.NewFromString(cfg.TaxRate)
	if err != nil {
		fatal(fmt.Errorf("app - Run - parse tax rate: %w", err))
	}

	pool, err := postgres.New(cfg.PgURL, postgres.MaxPoolSize(cfg.PgPoolMax))
	if err != nil {
		fatal(fmt.Errorf("app - Run - postgres.New: %w", err))
	}
	defer pool.Close()

	if err := ApplyMigrations(cfg.PgURL, MIGRATION_FS); err != nil {
		fatal(fmt.Errorf("app - Run - ApplyMigrations: %w", err))
	}

	orderRepo := order_repo.NewPgOrderRepo(pool)
	catalogRepo := catalog_repo.NewPgCatalogRepo(pool)
	tableRepo := table_repo.NewPgTableRepo(pool)
	userRepo := user_repo.NewPgUserRepo(pool)

	catalogService := catalog.NewService(catalogRepo)
	tableService := table.NewService(tableRepo)
	userService := user.NewService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	orderService := order.NewService(
		orderRepo,
		catalogService,
		order.NewPricer(taxRate),
		order.DefaultTransitions(),
	)

	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	categoryHandler := handlers.NewCategoryHandler(catalogService)
	productHandler := handlers.NewProductHandler(catalogService)
	tableHandler := handlers.NewTableHandler(tableService)
	orderHandler := handlers.NewOrderHandler(orderService)
	orderItemHandler := handlers.NewOrderItemHandler(orderService)

	engine := NewGinEngine()

	router := controller.NewRouter(
		authHandler,
		userHandler,
		categoryHandler,
		productHandler,
		tableHandler,
		orderHandler,
		orderItemHandler,
	)
	router.SetUp(engine)

	healthRegistry := health.NewRegistry(health.NewPostgresChecker(pool.Pool))
	engine.GET("/health/live", health.LivenessHandler())
	engine.GET("/health/ready", health.ReadinessHandler(healthRegistry, cfg.HealthCheckTimeout))
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	go func() {
		slog.Info("starting http server", slog.Int("port", cfg.Port))
		if err := engine.Run(fmt.Sprintf(":%d", cfg.Port)); err != nil {
			slog.Error("http server error", slog.Any("error", err))
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")
}

func fatal(err error) {
	slog.Error(err.Error())
	os.Exit(1)
}
