package domain

import (
	"bytes"
	"encoding/json"
)

// Candidate - кандидат геокодирования; сервис сортирует их по убыванию score.
// Location хранится как пришел от сервиса и отдается клиенту без пересериализации.
type Candidate struct {
	Address  string          `json:"address"`
	Location json.RawMessage `json:"location"`
	Score    float64         `json:"score"`
}

// GeocodeResult - ответ findAddressCandidates
type GeocodeResult struct {
	Candidates []Candidate `json:"candidates"`
}

// Best возвращает первого (лучшего) кандидата. Пустой список - штатный исход, не ошибка.
// Кандидат без location за результат не считается.
func (r *GeocodeResult) Best() (Candidate, bool) {
	if r == nil || len(r.Candidates) == 0 {
		return Candidate{}, false
	}
	best := r.Candidates[0]
	loc := bytes.TrimSpace(best.Location)
	if len(loc) == 0 || bytes.Equal(loc, []byte("null")) {
		return Candidate{}, false
	}
	return best, true
}
