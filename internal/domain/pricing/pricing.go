package pricing

import (
	"github.com/jhoicas/transports-api/internal/domain"
	"github.com/jhoicas/transports-api/internal/domain/entity"
)

// Table tabla de precios unitarios por tipo de transporte (FCFA).
// Se construye una vez al arranque y no se modifica después: el mapa interno
// no se expone, solo lecturas.
type Table struct {
	prices map[string]int64
}

// NewTable construye la tabla a partir de un mapa tipo → precio unitario.
func NewTable(prices map[string]int64) Table {
	cp := make(map[string]int64, len(prices))
	for k, v := range prices {
		cp[k] = v
	}
	return Table{prices: cp}
}

// Default devuelve la tabla de precios vigente: 500 FCFA por saco, 2500 por fardo.
func Default() Table {
	return NewTable(map[string]int64{
		entity.TransportTypeSac: 500,
		entity.TransportTypeBal: 2500,
	})
}

// Known indica si el tipo existe en la tabla.
func (t Table) Known(transportType string) bool {
	_, ok := t.prices[transportType]
	return ok
}

// UnitPrice devuelve el precio unitario del tipo, o ErrUnknownType si no existe.
func (t Table) UnitPrice(transportType string) (int64, error) {
	p, ok := t.prices[transportType]
	if !ok {
		return 0, domain.ErrUnknownType
	}
	return p, nil
}

// AmountFor calcula el monto de un transporte: quantity × precio unitario.
// Falla con ErrUnknownType si el tipo no existe y con ErrInvalidQuantity si quantity <= 0.
func (t Table) AmountFor(transportType string, quantity int) (int64, error) {
	price, err := t.UnitPrice(transportType)
	if err != nil {
		return 0, err
	}
	if quantity <= 0 {
		return 0, domain.ErrInvalidQuantity
	}
	return int64(quantity) * price, nil
}

// Types devuelve los tipos conocidos (para mensajes de validación).
func (t Table) Types() []string {
	out := make([]string, 0, len(t.prices))
	for k := range t.prices {
		out = append(out, k)
	}
	return out
}
