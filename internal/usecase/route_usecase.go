package usecase

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/geo-gateway/internal/domain"
	"github.com/geo-gateway/internal/domain/repository"
	"github.com/geo-gateway/internal/pkg/errors"
	"github.com/geo-gateway/internal/pkg/utils"
	"github.com/geo-gateway/internal/usecase/dto"
)

const (
	stopsPerRoute = 2
	rawSnippetLen = 500
)

// RouteUseCase - use case для построения маршрута между двумя точками
type RouteUseCase struct {
	solver repository.RouteSolverRepository
	logger *zap.Logger
}

// NewRouteUseCase - создание нового RouteUseCase
func NewRouteUseCase(solver repository.RouteSolverRepository, logger *zap.Logger) *RouteUseCase {
	return &RouteUseCase{
		solver: solver,
		logger: logger,
	}
}

// Solve возвращает JSON ответа сервиса без изменений. Поля ошибки внутри этого JSON
// не интерпретируются.
func (uc *RouteUseCase) Solve(ctx context.Context, req dto.RouteRequest) (json.RawMessage, error) {
	if len(req.Stops) != stopsPerRoute {
		return nil, errors.ErrTwoStopsRequired
	}

	barriers, err := domain.ParseBarriers(req.Barriers)
	if err != nil {
		return nil, errors.ErrInvalidBarriers.WithCause(err)
	}

	result, err := uc.solver.Solve(ctx, domain.RouteQuery{
		Stops:    req.Stops,
		Barriers: barriers,
	})
	if err != nil {
		uc.logger.Error("Route request failed", zap.Error(err))
		return nil, errors.ErrRouteRequestFailed.WithCause(err)
	}

	doc, ok := result.JSON()
	if !ok {
		uc.logger.Error("Routing service returned non-JSON body",
			zap.String("body", utils.Truncate(result.Raw(), rawSnippetLen)))
		return nil, errors.ErrInvalidRouteFormat
	}

	return doc, nil
}
