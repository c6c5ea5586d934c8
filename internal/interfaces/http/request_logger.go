package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/transports-api/pkg/logger"
	"github.com/jhoicas/transports-api/pkg/metrics"
)

// RequestLogger middleware de logging estructurado por petición.
// Asigna un request id (uuid), lo devuelve en X-Request-Id y registra
// método, ruta, estado y duración al terminar.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqID := uuid.New().String()
		c.Set("X-Request-Id", reqID)

		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		evt := log.Info()
		if status >= fiber.StatusInternalServerError {
			evt = log.Error()
		}
		evt.
			Str("request_id", reqID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("duration", time.Since(start)).
			Msg("petición atendida")

		metrics.RequestsTotal.WithLabelValues(c.Route().Path, strconv.Itoa(status)).Inc()
		return err
	}
}
