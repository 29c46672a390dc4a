package dto

import "encoding/json"

// GeocodeResponse - location лучшего кандидата в том виде, в каком его вернул сервис
type GeocodeResponse struct {
	Location json.RawMessage `json:"location" swaggertype:"object"`
}
