package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/transports-api/internal/domain/workers"
)

// WorkerHandler expone el registro estático de transportistas.
type WorkerHandler struct {
	registry workers.Registry
}

// NewWorkerHandler construye el handler.
func NewWorkerHandler(registry workers.Registry) *WorkerHandler {
	return &WorkerHandler{registry: registry}
}

// List godoc
// @Summary      Lista de transportistas
// @Description  Registro estático; no hay alta ni baja vía API.
// @Tags         workers
// @Produce      json
// @Success      200  {array}  entity.Worker
// @Router       /api/workers [get]
func (h *WorkerHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.registry.All())
}
