package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/transports-api/internal/application/usecase"
	"github.com/jhoicas/transports-api/internal/domain/pricing"
	"github.com/jhoicas/transports-api/internal/domain/workers"
	"github.com/jhoicas/transports-api/internal/infrastructure/excel"
	"github.com/jhoicas/transports-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/transports-api/internal/interfaces/http"
	"github.com/jhoicas/transports-api/pkg/config"
	"github.com/jhoicas/transports-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}
	log.Info().Msg("migraciones aplicadas")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Tablas estáticas: inmutables después de este punto
	prices := pricing.Default()
	registry := workers.Default()

	transportRepo := postgres.NewTransportRepository(pool)
	summaryRepo := postgres.NewSummaryRepository(pool)

	transportUC := usecase.NewTransportUseCase(transportRepo, prices, registry)
	summaryUC := usecase.NewSummaryUseCase(summaryRepo, registry)
	reportUC := usecase.NewReportUseCase(transportUC, excel.NewReportGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Transports API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	if cfg.Metrics.Enabled {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		TransportUC: transportUC,
		SummaryUC:   summaryUC,
		ReportUC:    reportUC,
		Registry:    registry,
	})

	// El frontend embebido va al final: el fallback a index.html captura el resto
	if err := httpRouter.Static(app); err != nil {
		log.Fatal().Err(err).Msg("montar frontend embebido")
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
