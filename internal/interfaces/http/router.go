package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/transports-api/internal/application/usecase"
	"github.com/jhoicas/transports-api/internal/domain/workers"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	TransportUC *usecase.TransportUseCase
	SummaryUC   *usecase.SummaryUseCase
	ReportUC    *usecase.ReportUseCase
	Registry    workers.Registry
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Transports
	transports := api.Group("/transports")
	transportHandler := NewTransportHandler(deps.TransportUC)
	transports.Post("/", transportHandler.Create)
	transports.Get("/", transportHandler.List)
	// "/all" antes que "/:id": si no, "all" se capturaría como id
	transports.Delete("/all", transportHandler.DeleteAll)
	transports.Delete("/:id", transportHandler.Delete)

	// Summaries
	summary := api.Group("/summary")
	summaryHandler := NewSummaryHandler(deps.SummaryUC)
	summary.Get("/", summaryHandler.Global)
	summary.Get("/by-worker", summaryHandler.ByWorker)

	// Workers (registro estático, solo lectura)
	workerHandler := NewWorkerHandler(deps.Registry)
	api.Get("/workers", workerHandler.List)

	// Reports
	reportHandler := NewReportHandler(deps.ReportUC)
	api.Get("/reports/transports.xlsx", reportHandler.TransportsXLSX)
}
