package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/transports-api/internal/application/dto"
	"github.com/jhoicas/transports-api/internal/application/usecase"
)

// ReportHandler descarga del historial como hoja de cálculo.
type ReportHandler struct {
	uc *usecase.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *usecase.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// TransportsXLSX godoc
// @Summary      Exportar historial en xlsx
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/transports.xlsx [get]
func (h *ReportHandler) TransportsXLSX(c *fiber.Ctx) error {
	data, err := h.uc.TransportsXLSX(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="transports.xlsx"`)
	return c.Send(data)
}
