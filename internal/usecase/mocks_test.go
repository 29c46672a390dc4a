package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/geo-gateway/internal/domain"
)

// MockGeocoderRepository is a mock of GeocoderRepository
type MockGeocoderRepository struct {
	mock.Mock
}

func (m *MockGeocoderRepository) FindAddressCandidates(ctx context.Context, address string, maxLocations int) (*domain.GeocodeResult, error) {
	args := m.Called(ctx, address, maxLocations)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeocodeResult), args.Error(1)
}

// MockRouteSolverRepository is a mock of RouteSolverRepository
type MockRouteSolverRepository struct {
	mock.Mock
}

func (m *MockRouteSolverRepository) Solve(ctx context.Context, query domain.RouteQuery) (*domain.RouteResult, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RouteResult), args.Error(1)
}
