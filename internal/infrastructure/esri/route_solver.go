package esri

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/geo-gateway/internal/config"
	"github.com/geo-gateway/internal/domain"
	"github.com/geo-gateway/internal/domain/repository"
	"github.com/geo-gateway/internal/pkg/utils"
	"go.uber.org/zap"
)

// logSnippetLen - сколько символов ответа solve пишется в лог
const logSnippetLen = 500

type routeSolver struct {
	client *Client
	url    string
	logger *zap.Logger
}

// NewRouteSolver создает адаптер Route_World/solve
func NewRouteSolver(client *Client, cfg *config.EsriConfig, logger *zap.Logger) repository.RouteSolverRepository {
	return &routeSolver{
		client: client,
		url:    cfg.RouteURL,
		logger: logger,
	}
}

func (s *routeSolver) Solve(ctx context.Context, query domain.RouteQuery) (*domain.RouteResult, error) {
	form, err := newRoutePayload(query).Form()
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(ctx, Request{
		Operation: "route",
		Method:    http.MethodPost,
		URL:       s.url,
		Params:    form,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Route solver response",
		zap.Int("status_code", resp.StatusCode),
		zap.String("body", utils.Truncate(string(resp.Body), logSnippetLen)))

	// тело сначала читается как текст: при сбое сервис отдает HTML со статусом 200
	if !json.Valid(resp.Body) {
		return domain.NewRawRouteResult(string(resp.Body)), nil
	}

	return domain.NewJSONRouteResult(resp.Body), nil
}
