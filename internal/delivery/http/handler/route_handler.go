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

// RouteHandler - обработчик построения маршрута
type RouteHandler struct {
	routeUC *usecase.RouteUseCase
	logger  *zap.Logger
}

// NewRouteHandler - создание нового RouteHandler
func NewRouteHandler(routeUC *usecase.RouteUseCase, logger *zap.Logger) *RouteHandler {
	return &RouteHandler{
		routeUC: routeUC,
		logger:  logger,
	}
}

// Route godoc
// @Summary Маршрут между двумя точками
// @Description Строит маршрут через ArcGIS Route_World/solve с учетом полигональных барьеров. Ответ сервиса возвращается без изменений.
// @Tags Route
// @Accept json
// @Produce json
// @Param request body dto.RouteRequest true "Две остановки и необязательные барьеры"
// @Success 200 {object} map[string]interface{} "Ответ route solver как есть"
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/route [post]
func (h *RouteHandler) Route(c *fiber.Ctx) error {
	var req dto.RouteRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Debug("Invalid route body", zap.Error(err))
		return utils.SendError(c, errors.ErrTwoStopsRequired)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrTwoStopsRequired)
	}

	doc, err := h.routeUC.Solve(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendRawJSON(c, doc)
}
