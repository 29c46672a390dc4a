package dto

import (
	"encoding/json"

	"github.com/geo-gateway/internal/domain"
)

// GeocodeRequest - запрос на геокодирование адреса одной строкой
type GeocodeRequest struct {
	Address string `json:"address" validate:"required,notblank"`
}

// RouteRequest - запрос маршрута ровно между двумя точками.
// Barriers - необязательные полигоны, которые маршрут должен обходить; элементы
// не валидируются и уходят в ArcGIS как прислал клиент.
type RouteRequest struct {
	Stops    []domain.Coordinate `json:"stops" validate:"len=2"`
	Barriers json.RawMessage     `json:"barriers,omitempty" swaggertype:"array,object"`
}
