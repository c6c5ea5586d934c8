package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// GlobalSummaryResult totales globales sobre los registros persistidos.
// TotalAmount suma los montos almacenados al momento del insert; no se
// recalcula con la tabla de precios vigente.
type GlobalSummaryResult struct {
	TotalAmount decimal.Decimal
	TotalSacs   int
	TotalBals   int
}

// WorkerSummaryResult totales de un transportista (sin nombre; se resuelve en la capa de aplicación).
type WorkerSummaryResult struct {
	WorkerID    int
	TotalAmount decimal.Decimal
	TotalSacs   int
	TotalBals   int
}

// SummaryRepository consultas de agregación de solo lectura.
// Cada llamada calcula en fresco sobre el estado actual de la tabla: sin caché
// ni mantenimiento incremental, son scans O(tamaño de tabla).
type SummaryRepository interface {
	// Global devuelve monto total y cantidades sumadas por tipo (cero en tabla vacía).
	Global(ctx context.Context) (GlobalSummaryResult, error)
	// ByWorker devuelve una entrada por worker_id presente, ordenadas por worker_id ascendente.
	ByWorker(ctx context.Context) ([]WorkerSummaryResult, error)
}
