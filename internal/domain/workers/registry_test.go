package workers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/transports-api/internal/domain/entity"
	"github.com/jhoicas/transports-api/internal/domain/workers"
)

// El registro por defecto contiene los seis transportistas con ids 1 a 6.
func TestDefault_SeisTransportistas(t *testing.T) {
	reg := workers.Default()

	all := reg.All()
	assert.Len(t, all, 6)
	for i, w := range all {
		assert.Equal(t, i+1, w.ID)
	}
	assert.Equal(t, "Bill", reg.NameOf(1))
	assert.Equal(t, "Nani", reg.NameOf(6))
}

// Un id fuera del registro resuelve al nombre "Inconnu", nunca a error.
func TestNameOf_IdDesconocido(t *testing.T) {
	reg := workers.Default()

	assert.False(t, reg.Known(99))
	assert.Equal(t, workers.UnknownName, reg.NameOf(99))
}

// All devuelve una copia: mutarla no debe afectar el registro.
func TestAll_DevuelveCopia(t *testing.T) {
	reg := workers.NewRegistry([]entity.Worker{{ID: 1, Name: "Bill"}})

	all := reg.All()
	all[0].Name = "Autre"

	assert.Equal(t, "Bill", reg.NameOf(1))
}
