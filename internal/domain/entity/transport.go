package entity

import "time"

// Tipos de transporte. Las claves coinciden con la tabla de precios.
const (
	TransportTypeSac = "sac" // saco
	TransportTypeBal = "bal" // fardo
)

// Transport representa un movimiento registrado (saco o fardo) con su monto calculado.
// Amount se fija en el momento del insert (quantity × precio vigente) y nunca se recalcula:
// cambios posteriores en la tabla de precios no afectan registros históricos.
type Transport struct {
	ID        int64
	WorkerID  int
	Type      string
	Quantity  int
	Amount    int64 // FCFA, sin subunidades
	Timestamp time.Time
}
