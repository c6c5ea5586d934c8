package dto

// ErrorResponse cuerpo de error HTTP. Message es texto visible para el
// usuario (en francés, idioma del frontend); Code es estable para clientes.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse respuesta simple con mensaje.
type MessageResponse struct {
	Message string `json:"message"`
}
