package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/transports-api/internal/application/dto"
	"github.com/jhoicas/transports-api/internal/domain"
	"github.com/jhoicas/transports-api/internal/domain/entity"
	"github.com/jhoicas/transports-api/internal/domain/pricing"
	"github.com/jhoicas/transports-api/internal/domain/repository"
	"github.com/jhoicas/transports-api/internal/domain/workers"
)

// TransportUseCase registra, lista y elimina transportes. La tabla de precios
// y el registro de transportistas se inyectan al construirlo y no cambian.
type TransportUseCase struct {
	repo     repository.TransportRepository
	prices   pricing.Table
	registry workers.Registry
}

// NewTransportUseCase construye el caso de uso.
func NewTransportUseCase(repo repository.TransportRepository, prices pricing.Table, registry workers.Registry) *TransportUseCase {
	return &TransportUseCase{repo: repo, prices: prices, registry: registry}
}

// Create valida la petición, calcula el monto del lado del servidor y persiste.
// El monto es siempre quantity × precio unitario vigente al momento del insert.
func (uc *TransportUseCase) Create(ctx context.Context, in dto.CreateTransportRequest) (*entity.Transport, error) {
	if !uc.prices.Known(in.Type) {
		return nil, domain.ErrUnknownType
	}
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if !uc.registry.Known(in.WorkerID) {
		return nil, domain.ErrUnknownWorker
	}

	amount, err := uc.prices.AmountFor(in.Type, in.Quantity)
	if err != nil {
		return nil, err
	}

	t := &entity.Transport{
		WorkerID:  in.WorkerID,
		Type:      in.Type,
		Quantity:  in.Quantity,
		Amount:    amount,
		Timestamp: time.Now(),
	}
	if err := uc.repo.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("crear transporte: %w", err)
	}
	return t, nil
}

// List devuelve el historial completo (más reciente primero) con el nombre
// del transportista resuelto desde el registro estático.
func (uc *TransportUseCase) List(ctx context.Context) ([]dto.TransportResponse, error) {
	list, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar transportes: %w", err)
	}
	out := make([]dto.TransportResponse, 0, len(list))
	for _, t := range list {
		out = append(out, dto.TransportResponse{
			ID:         t.ID,
			WorkerID:   t.WorkerID,
			WorkerName: uc.registry.NameOf(t.WorkerID),
			Type:       t.Type,
			Quantity:   t.Quantity,
			Amount:     t.Amount,
			Timestamp:  t.Timestamp,
		})
	}
	return out, nil
}

// Delete elimina un transporte por id; ErrNotFound si no existe.
// Un borrado concurrente del mismo id resuelve igual: cero filas afectadas → ErrNotFound.
func (uc *TransportUseCase) Delete(ctx context.Context, id int64) error {
	removed, err := uc.repo.DeleteByID(ctx, id)
	if err != nil {
		return fmt.Errorf("eliminar transporte %d: %w", id, err)
	}
	if !removed {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteAll vacía el historial sin condiciones y devuelve cuántas filas eliminó.
func (uc *TransportUseCase) DeleteAll(ctx context.Context) (int64, error) {
	removed, err := uc.repo.DeleteAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("eliminar historial: %w", err)
	}
	return removed, nil
}
