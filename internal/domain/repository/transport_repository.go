package repository

import (
	"context"

	"github.com/jhoicas/transports-api/internal/domain/entity"
)

// TransportRepository define el puerto de persistencia para transportes.
// Solo alta, lectura y borrado: el recurso no tiene operación de update.
type TransportRepository interface {
	// Create inserta el transporte y completa ID y Timestamp asignados por la base.
	Create(ctx context.Context, t *entity.Transport) error
	// ListAll devuelve el historial completo, más reciente primero.
	// Sin paginación: aceptable a esta escala, límite conocido de escalabilidad.
	ListAll(ctx context.Context) ([]entity.Transport, error)
	// DeleteByID elimina un transporte; false (sin error) cuando el id no existe.
	DeleteByID(ctx context.Context, id int64) (bool, error)
	// DeleteAll vacía la tabla y devuelve cuántas filas eliminó.
	DeleteAll(ctx context.Context) (int64, error)
}
