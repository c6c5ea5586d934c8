package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/transports-api/internal/application/dto"
	"github.com/jhoicas/transports-api/internal/domain/repository"
	"github.com/jhoicas/transports-api/internal/domain/workers"
)

// SummaryUseCase expone los resúmenes agregados. Solo lectura: delega las
// agregaciones a SQL y resuelve nombres desde el registro estático.
type SummaryUseCase struct {
	repo     repository.SummaryRepository
	registry workers.Registry
}

// NewSummaryUseCase construye el caso de uso.
func NewSummaryUseCase(repo repository.SummaryRepository, registry workers.Registry) *SummaryUseCase {
	return &SummaryUseCase{repo: repo, registry: registry}
}

// Global devuelve el resumen global: total de montos almacenados y cantidades por tipo.
func (uc *SummaryUseCase) Global(ctx context.Context) (dto.SummaryResponse, error) {
	res, err := uc.repo.Global(ctx)
	if err != nil {
		return dto.SummaryResponse{}, fmt.Errorf("resumen global: %w", err)
	}
	return dto.SummaryResponse{
		TotalAmount: res.TotalAmount.InexactFloat64(),
		Counts: dto.SummaryCounts{
			Sac: res.TotalSacs,
			Bal: res.TotalBals,
		},
	}, nil
}

// ByWorker devuelve el resumen por transportista, ordenado por worker_id ascendente,
// con el nombre resuelto desde el registro ("Inconnu" si el id ya no existe).
func (uc *SummaryUseCase) ByWorker(ctx context.Context) ([]dto.WorkerSummaryResponse, error) {
	rows, err := uc.repo.ByWorker(ctx)
	if err != nil {
		return nil, fmt.Errorf("resumen por transportista: %w", err)
	}
	out := make([]dto.WorkerSummaryResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.WorkerSummaryResponse{
			WorkerID:    r.WorkerID,
			WorkerName:  uc.registry.NameOf(r.WorkerID),
			TotalAmount: r.TotalAmount.InexactFloat64(),
			TotalSacs:   r.TotalSacs,
			TotalBals:   r.TotalBals,
		})
	}
	return out, nil
}
