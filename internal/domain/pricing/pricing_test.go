package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/transports-api/internal/domain"
	"github.com/jhoicas/transports-api/internal/domain/pricing"
)

// El monto debe ser exactamente quantity × precio unitario para ambos tipos.
func TestAmountFor_CalculaMontoExacto(t *testing.T) {
	table := pricing.Default()

	amount, err := table.AmountFor("sac", 3)
	require.NoError(t, err)
	assert.Equal(t, int64(1500), amount, "3 sacos a 500 FCFA")

	amount, err = table.AmountFor("bal", 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), amount, "2 fardos a 2500 FCFA")
}

// Un tipo fuera de la tabla debe rechazarse con ErrUnknownType.
func TestAmountFor_TipoDesconocido(t *testing.T) {
	table := pricing.Default()

	_, err := table.AmountFor("box", 3)
	assert.ErrorIs(t, err, domain.ErrUnknownType)
	assert.False(t, table.Known("box"))
}

// Cantidad cero o negativa debe rechazarse con ErrInvalidQuantity.
func TestAmountFor_CantidadNoPositiva(t *testing.T) {
	table := pricing.Default()

	_, err := table.AmountFor("sac", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = table.AmountFor("bal", -5)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

// NewTable copia el mapa de entrada: mutar el original no afecta la tabla.
func TestNewTable_CopiaDefensiva(t *testing.T) {
	src := map[string]int64{"sac": 500}
	table := pricing.NewTable(src)
	src["sac"] = 999

	price, err := table.UnitPrice("sac")
	require.NoError(t, err)
	assert.Equal(t, int64(500), price)
}

// Una tabla con precios distintos solo afecta cálculos nuevos, no valida nada histórico.
func TestNewTable_PreciosAlternativos(t *testing.T) {
	table := pricing.NewTable(map[string]int64{"sac": 500, "bal": 2000})

	amount, err := table.AmountFor("bal", 2)
	require.NoError(t, err)
	assert.Equal(t, int64(4000), amount)
}
