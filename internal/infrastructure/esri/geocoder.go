package esri

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/geo-gateway/internal/config"
	"github.com/geo-gateway/internal/domain"
	"github.com/geo-gateway/internal/domain/repository"
	"go.uber.org/zap"
)

// apiError - конверт ошибки ArcGIS ({"error":{"code":498,"message":"Invalid Token"}}),
// приходит со статусом 200
type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type geocodeResponse struct {
	domain.GeocodeResult
	Error *apiError `json:"error,omitempty"`
}

type geocoder struct {
	client *Client
	url    string
	logger *zap.Logger
}

// NewGeocoder создает адаптер findAddressCandidates
func NewGeocoder(client *Client, cfg *config.EsriConfig, logger *zap.Logger) repository.GeocoderRepository {
	return &geocoder{
		client: client,
		url:    cfg.GeocodeURL,
		logger: logger,
	}
}

func (g *geocoder) FindAddressCandidates(ctx context.Context, address string, maxLocations int) (*domain.GeocodeResult, error) {
	params := url.Values{}
	params.Set("f", "json")
	params.Set("singleLine", address)
	params.Set("maxLocations", strconv.Itoa(maxLocations))

	resp, err := g.client.Do(ctx, Request{
		Operation: "geocode",
		Method:    http.MethodGet,
		URL:       g.url,
		Params:    params,
	})
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		g.logger.Error("Geocoding service returned error status",
			zap.Int("status_code", resp.StatusCode))
		return nil, fmt.Errorf("geocoding service error: status %d", resp.StatusCode)
	}

	var decoded geocodeResponse
	if err := json.Unmarshal(resp.Body, &decoded); err != nil {
		g.logger.Error("Failed to decode geocoding response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if decoded.Error != nil {
		g.logger.Error("Geocoding service returned error",
			zap.Int("code", decoded.Error.Code),
			zap.String("message", decoded.Error.Message))
		return nil, fmt.Errorf("geocoding service error: code %d", decoded.Error.Code)
	}

	g.logger.Debug("Geocoding call successful", zap.Int("candidates", len(decoded.Candidates)))

	return &decoded.GeocodeResult, nil
}
