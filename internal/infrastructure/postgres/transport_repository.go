package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/transports-api/internal/domain/entity"
	"github.com/jhoicas/transports-api/internal/domain/repository"
)

var _ repository.TransportRepository = (*TransportRepo)(nil)

// TransportRepo implementación sobre PostgreSQL (usable con pool o tx).
type TransportRepo struct {
	q Querier
}

// NewTransportRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransportRepository(q Querier) *TransportRepo {
	return &TransportRepo{q: q}
}

// Create inserta el transporte; la base asigna id y timestamp y se devuelven en t.
func (r *TransportRepo) Create(ctx context.Context, t *entity.Transport) error {
	const query = `
		INSERT INTO transports (worker_id, type, quantity, amount)
		VALUES ($1, $2, $3, $4)
		RETURNING id, timestamp`
	err := r.q.QueryRow(ctx, query, t.WorkerID, t.Type, t.Quantity, t.Amount).
		Scan(&t.ID, &t.Timestamp)
	if err != nil {
		return fmt.Errorf("insert transport: %w", err)
	}
	return nil
}

// ListAll devuelve el historial completo, más reciente primero.
// Sin paginación: el contrato de la API devuelve siempre todo el historial.
func (r *TransportRepo) ListAll(ctx context.Context) ([]entity.Transport, error) {
	const query = `
		SELECT id, worker_id, type, quantity, amount, timestamp
		FROM transports
		ORDER BY timestamp DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list transports: %w", err)
	}
	defer rows.Close()

	var list []entity.Transport
	for rows.Next() {
		var t entity.Transport
		if err := rows.Scan(&t.ID, &t.WorkerID, &t.Type, &t.Quantity, &t.Amount, &t.Timestamp); err != nil {
			return nil, fmt.Errorf("scan transport: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// DeleteByID elimina un transporte. Cero filas afectadas significa id ausente
// (también en borrados concurrentes): false, sin error.
func (r *TransportRepo) DeleteByID(ctx context.Context, id int64) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM transports WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete transport: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteAll vacía la tabla y devuelve el número de filas eliminadas.
func (r *TransportRepo) DeleteAll(ctx context.Context) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM transports`)
	if err != nil {
		return 0, fmt.Errorf("delete all transports: %w", err)
	}
	return tag.RowsAffected(), nil
}
