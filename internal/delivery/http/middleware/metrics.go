package middleware

import (
	"errors"
	"strconv"

	"github.com/geo-gateway/internal/pkg/metrics"
	"github.com/gofiber/fiber/v2"
)

// Metrics - счетчик входящих запросов по шаблону маршрута
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()

		status := c.Response().StatusCode()
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		metrics.HTTPRequests.WithLabelValues(c.Method(), c.Route().Path, strconv.Itoa(status)).Inc()
		return err
	}
}
