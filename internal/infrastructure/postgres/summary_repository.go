package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/transports-api/internal/domain/repository"
)

var _ repository.SummaryRepository = (*SummaryRepo)(nil)

// SummaryRepo consultas de agregación de solo lectura sobre transports.
type SummaryRepo struct {
	pool *pgxpool.Pool
}

// NewSummaryRepository construye el adaptador de resúmenes.
func NewSummaryRepository(pool *pgxpool.Pool) *SummaryRepo {
	return &SummaryRepo{pool: pool}
}

// Global suma montos almacenados y cantidades por tipo.
// COALESCE garantiza ceros (no NULL) con la tabla vacía; el total se escanea
// como decimal vía el codec registrado en el pool.
func (r *SummaryRepo) Global(ctx context.Context) (repository.GlobalSummaryResult, error) {
	const query = `
		SELECT
		    COALESCE(SUM(amount), 0)::numeric                                          AS total_amount,
		    COALESCE(SUM(CASE WHEN type = 'sac' THEN quantity ELSE 0 END), 0)::int     AS total_sacs,
		    COALESCE(SUM(CASE WHEN type = 'bal' THEN quantity ELSE 0 END), 0)::int     AS total_bals
		FROM transports`

	var res repository.GlobalSummaryResult
	err := r.pool.QueryRow(ctx, query).Scan(&res.TotalAmount, &res.TotalSacs, &res.TotalBals)
	if err != nil {
		return repository.GlobalSummaryResult{}, fmt.Errorf("summary.Global: %w", err)
	}
	return res, nil
}

// ByWorker agrupa por worker_id, ordenado ascendente. Una fila por id presente
// en los registros; los nombres se resuelven fuera, en la capa de aplicación.
func (r *SummaryRepo) ByWorker(ctx context.Context) ([]repository.WorkerSummaryResult, error) {
	const query = `
		SELECT
		    worker_id,
		    COALESCE(SUM(amount), 0)::numeric                                          AS total_amount,
		    COALESCE(SUM(CASE WHEN type = 'sac' THEN quantity ELSE 0 END), 0)::int     AS total_sacs,
		    COALESCE(SUM(CASE WHEN type = 'bal' THEN quantity ELSE 0 END), 0)::int     AS total_bals
		FROM transports
		GROUP BY worker_id
		ORDER BY worker_id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("summary.ByWorker: %w", err)
	}
	defer rows.Close()

	var results []repository.WorkerSummaryResult
	for rows.Next() {
		var row repository.WorkerSummaryResult
		if err := rows.Scan(&row.WorkerID, &row.TotalAmount, &row.TotalSacs, &row.TotalBals); err != nil {
			return nil, fmt.Errorf("summary.ByWorker scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
