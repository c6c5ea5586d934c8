package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/transports-api/internal/application/dto"
	"github.com/jhoicas/transports-api/internal/application/usecase"
)

// SummaryHandler maneja las peticiones de los resúmenes agregados.
type SummaryHandler struct {
	uc *usecase.SummaryUseCase
}

// NewSummaryHandler construye el handler.
func NewSummaryHandler(uc *usecase.SummaryUseCase) *SummaryHandler {
	return &SummaryHandler{uc: uc}
}

// Global godoc
// @Summary      Resumen global
// @Description  Suma de los montos almacenados (precio al momento del registro) y cantidades por tipo.
// @Tags         summary
// @Produce      json
// @Success      200  {object}  dto.SummaryResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/summary [get]
func (h *SummaryHandler) Global(c *fiber.Ctx) error {
	sum, err := h.uc.Global(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(sum)
}

// ByWorker godoc
// @Summary      Resumen por transportista
// @Tags         summary
// @Produce      json
// @Success      200  {array}   dto.WorkerSummaryResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/summary/by-worker [get]
func (h *SummaryHandler) ByWorker(c *fiber.Ctx) error {
	rows, err := h.uc.ByWorker(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(rows)
}
