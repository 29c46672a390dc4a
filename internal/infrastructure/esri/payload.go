package esri

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/geo-gateway/internal/domain"
)

type spatialReference struct {
	WKID int `json:"wkid"`
}

var wgs84 = spatialReference{WKID: domain.WGS84}

type pointGeometry struct {
	X                float64          `json:"x"`
	Y                float64          `json:"y"`
	SpatialReference spatialReference `json:"spatialReference"`
}

type polygonGeometry struct {
	Rings            []domain.Barrier `json:"rings"`
	SpatialReference spatialReference `json:"spatialReference"`
}

type featureAttributes struct {
	Name string `json:"Name"`
}

type feature struct {
	Geometry   interface{}       `json:"geometry"`
	Attributes featureAttributes `json:"attributes"`
}

type featureCollection struct {
	Features         []feature         `json:"features"`
	SpatialReference *spatialReference `json:"spatialReference,omitempty"`
}

// routePayload - тело запроса solve. PolygonBarriers == nil: поле не отправляется вовсе.
type routePayload struct {
	Stops           featureCollection
	PolygonBarriers *featureCollection
	ReturnRoutes    bool
	Format          string
}

func newRoutePayload(q domain.RouteQuery) routePayload {
	stops := featureCollection{
		Features:         make([]feature, 0, len(q.Stops)),
		SpatialReference: &wgs84,
	}
	for i, p := range q.Stops {
		stops.Features = append(stops.Features, feature{
			Geometry:   pointGeometry{X: p.X, Y: p.Y, SpatialReference: wgs84},
			Attributes: featureAttributes{Name: fmt.Sprintf("P%d", i)},
		})
	}

	payload := routePayload{
		Stops:        stops,
		ReturnRoutes: true,
		Format:       "json",
	}

	if q.HasBarriers() {
		barriers := featureCollection{Features: make([]feature, 0, len(q.Barriers))}
		for i, b := range q.Barriers {
			barriers.Features = append(barriers.Features, feature{
				Geometry:   polygonGeometry{Rings: []domain.Barrier{b}, SpatialReference: wgs84},
				Attributes: featureAttributes{Name: fmt.Sprintf("B%d", i)},
			})
		}
		payload.PolygonBarriers = &barriers
	}

	return payload
}

// Form сериализует payload в form-поля: структуры как JSON-строки, скаляры как есть.
// Токен добавляет Client.
func (p routePayload) Form() (url.Values, error) {
	form := url.Values{}

	stops, err := json.Marshal(p.Stops)
	if err != nil {
		return nil, fmt.Errorf("marshal stops: %w", err)
	}
	form.Set("stops", string(stops))

	if p.PolygonBarriers != nil {
		barriers, err := json.Marshal(p.PolygonBarriers)
		if err != nil {
			return nil, fmt.Errorf("marshal polygonBarriers: %w", err)
		}
		form.Set("polygonBarriers", string(barriers))
	}

	form.Set("returnRoutes", strconv.FormatBool(p.ReturnRoutes))
	form.Set("f", p.Format)

	return form, nil
}
