package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/geo-gateway/internal/domain/repository"
	"github.com/geo-gateway/internal/pkg/errors"
	"github.com/geo-gateway/internal/usecase/dto"
)

// maxLocations - ранжированию сервиса доверяем, нужен только лучший кандидат
const maxLocations = 1

// GeocodeUseCase - use case для геокодирования адреса
type GeocodeUseCase struct {
	geocoder repository.GeocoderRepository
	logger   *zap.Logger
}

// NewGeocodeUseCase - создание нового GeocodeUseCase
func NewGeocodeUseCase(geocoder repository.GeocoderRepository, logger *zap.Logger) *GeocodeUseCase {
	return &GeocodeUseCase{
		geocoder: geocoder,
		logger:   logger,
	}
}

// Geocode - координата первого кандидата для адреса
func (uc *GeocodeUseCase) Geocode(ctx context.Context, req dto.GeocodeRequest) (*dto.GeocodeResponse, error) {
	address := strings.TrimSpace(req.Address)
	if address == "" {
		return nil, errors.ErrAddressRequired
	}

	result, err := uc.geocoder.FindAddressCandidates(ctx, address, maxLocations)
	if err != nil {
		uc.logger.Error("Geocoding failed", zap.Error(err))
		return nil, errors.ErrGeocodingFailed.WithCause(err)
	}

	best, ok := result.Best()
	if !ok {
		uc.logger.Info("No geocoding candidates", zap.Int("address_len", len(address)))
		return nil, errors.ErrLocationNotFound
	}

	return &dto.GeocodeResponse{Location: best.Location}, nil
}
