package workers

import "github.com/jhoicas/transports-api/internal/domain/entity"

// UnknownName nombre mostrado cuando un worker_id no existe en el registro.
// En francés porque es texto visible en el frontend.
const UnknownName = "Inconnu"

// Registry registro estático de transportistas, inmutable después de construirse.
// No hay operaciones de alta/baja: la lista se fija al arranque.
type Registry struct {
	list []entity.Worker
	byID map[int]entity.Worker
}

// NewRegistry construye el registro a partir de la lista dada.
func NewRegistry(list []entity.Worker) Registry {
	byID := make(map[int]entity.Worker, len(list))
	cp := make([]entity.Worker, len(list))
	copy(cp, list)
	for _, w := range cp {
		byID[w.ID] = w
	}
	return Registry{list: cp, byID: byID}
}

// Default devuelve el registro vigente de seis transportistas.
func Default() Registry {
	return NewRegistry([]entity.Worker{
		{ID: 1, Name: "Bill"},
		{ID: 2, Name: "Petit"},
		{ID: 3, Name: "Charles"},
		{ID: 4, Name: "PetFre"},
		{ID: 5, Name: "GoodMan"},
		{ID: 6, Name: "Nani"},
	})
}

// All devuelve una copia de la lista completa.
func (r Registry) All() []entity.Worker {
	out := make([]entity.Worker, len(r.list))
	copy(out, r.list)
	return out
}

// Known indica si el id existe en el registro.
func (r Registry) Known(id int) bool {
	_, ok := r.byID[id]
	return ok
}

// NameOf devuelve el nombre del transportista, o UnknownName si el id no existe.
// Los registros históricos pueden referenciar ids retirados; se resuelven en lectura, no hay FK.
func (r Registry) NameOf(id int) string {
	if w, ok := r.byID[id]; ok {
		return w.Name
	}
	return UnknownName
}
