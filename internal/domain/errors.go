package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrUnknownType     = errors.New("tipo de transporte desconocido")
	ErrInvalidQuantity = errors.New("cantidad inválida")
	ErrUnknownWorker   = errors.New("transportista desconocido")
)
