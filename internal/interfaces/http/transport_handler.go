package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/transports-api/internal/application/dto"
	"github.com/jhoicas/transports-api/internal/application/usecase"
	"github.com/jhoicas/transports-api/internal/domain"
	"github.com/jhoicas/transports-api/pkg/metrics"
)

// TransportHandler maneja las peticiones HTTP del recurso Transport.
// Los mensajes de error van en francés: el frontend los muestra tal cual.
type TransportHandler struct {
	uc *usecase.TransportUseCase
}

// NewTransportHandler construye el handler inyectando el caso de uso.
func NewTransportHandler(uc *usecase.TransportUseCase) *TransportHandler {
	return &TransportHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar un transporte
// @Description  Calcula el monto del lado del servidor (quantity × precio del tipo); cualquier monto enviado por el cliente se ignora.
// @Tags         transports
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransportRequest  true  "type (sac|bal), quantity > 0, worker_id del registro estático"
// @Success      201   {object}  dto.CreateTransportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/transports [post]
func (h *TransportHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTransportRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "Corps de requête invalide."})
	}
	if in.Type == "" || in.Quantity == 0 || in.WorkerID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "Le type, la quantité et l'ID du transporteur sont requis."})
	}

	created, err := h.uc.Create(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownType):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_TYPE", Message: "Type de transport inconnu : seuls 'sac' et 'bal' sont acceptés."})
		case errors.Is(err, domain.ErrInvalidQuantity):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUANTITY", Message: "La quantité doit être un entier strictement positif."})
		case errors.Is(err, domain.ErrUnknownWorker):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "UNKNOWN_WORKER", Message: "Transporteur inconnu."})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	metrics.TransportsCreated.WithLabelValues(created.Type).Inc()
	return c.Status(fiber.StatusCreated).JSON(dto.CreateTransportResponse{
		ID:        created.ID,
		Amount:    created.Amount,
		Timestamp: created.Timestamp,
		Message:   "Transport enregistré avec succès",
	})
}

// List godoc
// @Summary      Historial de transportes
// @Description  Devuelve todos los registros, más reciente primero, con worker_name resuelto.
// @Tags         transports
// @Produce      json
// @Success      200  {array}   dto.TransportResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/transports [get]
func (h *TransportHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// Delete godoc
// @Summary      Eliminar un transporte
// @Tags         transports
// @Produce      json
// @Param        id   path  int  true  "ID del transporte"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/transports/{id} [delete]
func (h *TransportHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "Identifiant invalide."})
	}

	if err := h.uc.Delete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Transport non trouvé."})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	metrics.TransportsDeleted.Inc()
	return c.JSON(dto.MessageResponse{Message: "Transport supprimé avec succès."})
}

// DeleteAll godoc
// @Summary      Vaciar el historial completo
// @Tags         transports
// @Produce      json
// @Success      200  {object}  dto.DeleteAllResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/transports/all [delete]
func (h *TransportHandler) DeleteAll(c *fiber.Ctx) error {
	removed, err := h.uc.DeleteAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	metrics.TransportsDeleted.Add(float64(removed))
	return c.JSON(dto.DeleteAllResponse{
		Removed: removed,
		Message: "Historique complet supprimé avec succès.",
	})
}
