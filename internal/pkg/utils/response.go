package utils

import (
	stderrors "errors"

	"github.com/geo-gateway/internal/pkg/errors"
	"github.com/gofiber/fiber/v2"
)

// ErrorResponse - единственный формат ошибки, который видит клиент
type ErrorResponse struct {
	Error string `json:"error"`
}

func SendSuccess(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

// SendRawJSON отдает уже валидный JSON как есть, без повторной сериализации
func SendRawJSON(c *fiber.Ctx, body []byte) error {
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(fiber.StatusOK).Send(body)
}

func SendError(c *fiber.Ctx, err error) error {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Error: appErr.Message,
		})
	}

	// Unknown error - return 500
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error: errors.ErrInternalServer.Message,
	})
}
