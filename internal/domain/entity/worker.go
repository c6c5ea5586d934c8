package entity

// Worker transportista estático del registro en memoria. No se persiste ni se administra vía API.
type Worker struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
