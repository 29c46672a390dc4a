package handler

import (
	"github.com/geo-gateway/internal/pkg/errors"
	"github.com/geo-gateway/internal/pkg/utils"
	"github.com/geo-gateway/internal/pkg/validator"
	"github.com/geo-gateway/internal/usecase"
	"github.com/geo-gateway/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GeocodeHandler - обработчик геокодирования
type GeocodeHandler struct {
	geocodeUC *usecase.GeocodeUseCase
	logger    *zap.Logger
}

// NewGeocodeHandler - создание нового GeocodeHandler
func NewGeocodeHandler(geocodeUC *usecase.GeocodeUseCase, logger *zap.Logger) *GeocodeHandler {
	return &GeocodeHandler{
		geocodeUC: geocodeUC,
		logger:    logger,
	}
}

// Geocode godoc
// @Summary Геокодирование адреса
// @Description Возвращает координату (WGS-84) лучшего кандидата для адреса одной строкой
// @Tags Geocode
// @Accept json
// @Produce json
// @Param request body dto.GeocodeRequest true "Адрес"
// @Success 200 {object} dto.GeocodeResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/geocode [post]
func (h *GeocodeHandler) Geocode(c *fiber.Ctx) error {
	var req dto.GeocodeRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Debug("Invalid geocode body", zap.Error(err))
		return utils.SendError(c, errors.ErrAddressRequired)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrAddressRequired)
	}

	result, err := h.geocodeUC.Geocode(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result)
}
