package domain

import "encoding/json"

// RouteQuery - маршрут между двумя остановками с необязательными полигональными барьерами.
// Barriers == nil означает "барьеры не переданы"; пустой не-nil срез считается переданным.
type RouteQuery struct {
	Stops    []Coordinate
	Barriers []Barrier
}

func (q RouteQuery) HasBarriers() bool {
	return q.Barriers != nil
}

// RouteResult - ответ route solver. Сервис при внутренней ошибке может вернуть
// HTML со статусом 200, поэтому результат либо JSON, либо сырой текст.
type RouteResult struct {
	json json.RawMessage
	raw  string
}

func NewJSONRouteResult(body []byte) *RouteResult {
	return &RouteResult{json: json.RawMessage(body)}
}

func NewRawRouteResult(text string) *RouteResult {
	return &RouteResult{raw: text}
}

// JSON возвращает документ и true, если ответ разобрался как JSON
func (r *RouteResult) JSON() (json.RawMessage, bool) {
	if r.json == nil {
		return nil, false
	}
	return r.json, true
}

// Raw - текст ответа, который не удалось разобрать
func (r *RouteResult) Raw() string {
	return r.raw
}
