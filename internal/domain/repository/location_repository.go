package repository

import (
	"context"

	"github.com/geo-gateway/internal/domain"
)

// GeocoderRepository определяет методы для работы с сервисом геокодирования
type GeocoderRepository interface {
	// FindAddressCandidates ищет не более maxLocations кандидатов для адреса одной строкой
	FindAddressCandidates(ctx context.Context, address string, maxLocations int) (*domain.GeocodeResult, error)
}

// RouteSolverRepository определяет методы для работы с сервисом построения маршрутов
type RouteSolverRepository interface {
	// Solve возвращает ответ сервиса как есть: JSON или сырой текст.
	// Ошибка только если ответ не получен вовсе.
	Solve(ctx context.Context, query domain.RouteQuery) (*domain.RouteResult, error)
}
