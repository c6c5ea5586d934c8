package dto

import "time"

// CreateTransportRequest cuerpo de POST /api/transports.
// El cliente nunca envía el monto: cualquier campo amount en el body se ignora
// y el servidor lo calcula con su propia tabla de precios.
type CreateTransportRequest struct {
	Type     string `json:"type"`
	Quantity int    `json:"quantity"`
	WorkerID int    `json:"worker_id"`
}

// CreateTransportResponse respuesta 201 con los datos asignados por el servidor.
type CreateTransportResponse struct {
	ID        int64     `json:"id"`
	Amount    int64     `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
}

// TransportResponse un transporte del historial, enriquecido con el nombre del transportista.
type TransportResponse struct {
	ID         int64     `json:"id"`
	WorkerID   int       `json:"worker_id"`
	WorkerName string    `json:"worker_name"`
	Type       string    `json:"type"`
	Quantity   int       `json:"quantity"`
	Amount     int64     `json:"amount"`
	Timestamp  time.Time `json:"timestamp"`
}

// DeleteAllResponse respuesta de DELETE /api/transports/all.
type DeleteAllResponse struct {
	Removed int64  `json:"removed"`
	Message string `json:"message"`
}
