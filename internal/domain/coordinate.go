package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// WGS84 - wkid системы координат, в которой работают все запросы
const WGS84 = 4326

// ErrIncompleteCoordinate - в точке нет x или y; нули вместо них не подставляются
var ErrIncompleteCoordinate = errors.New("coordinate requires both x and y")

// Coordinate - точка в WGS-84: X долгота, Y широта
type Coordinate struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// UnmarshalJSON принимает как {"x":..,"y":..}, так и пару [x, y]
func (c *Coordinate) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return ErrIncompleteCoordinate
	}

	if len(data) > 0 && data[0] == '[' {
		var pair []float64
		if err := json.Unmarshal(data, &pair); err != nil {
			return fmt.Errorf("coordinate pair: %w", err)
		}
		if len(pair) < 2 {
			return fmt.Errorf("coordinate pair needs 2 values, got %d", len(pair))
		}
		c.X, c.Y = pair[0], pair[1]
		return nil
	}

	var p struct {
		X *float64 `json:"x"`
		Y *float64 `json:"y"`
	}
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	if p.X == nil || p.Y == nil {
		return ErrIncompleteCoordinate
	}
	c.X, c.Y = *p.X, *p.Y
	return nil
}

// Ring - замкнутый контур полигона. В ArcGIS контур передается как [[x,y],...].
type Ring []Coordinate

func (r Ring) MarshalJSON() ([]byte, error) {
	pairs := make([][2]float64, len(r))
	for i, c := range r {
		pairs[i] = [2]float64{c.X, c.Y}
	}
	return json.Marshal(pairs)
}
