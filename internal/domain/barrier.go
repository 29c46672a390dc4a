package domain

import (
	"bytes"
	"encoding/json"
	"errors"
)

// ErrBarriersNotArray - barriers передан, но это не JSON-массив
var ErrBarriersNotArray = errors.New("barriers must be an array")

// Barrier - полигон-барьер в том виде, в каком его прислал клиент.
// Содержимое не валидируется: что не удалось привести к Ring, уходит в ArcGIS как есть.
type Barrier json.RawMessage

func (b *Barrier) UnmarshalJSON(data []byte) error {
	*b = append((*b)[:0], data...)
	return nil
}

// MarshalJSON отдает контур как [[x,y],...], если элемент разбирается как Ring,
// иначе исходный JSON без изменений
func (b Barrier) MarshalJSON() ([]byte, error) {
	if len(b) == 0 {
		return []byte("null"), nil
	}
	var ring Ring
	if err := json.Unmarshal(b, &ring); err == nil && ring != nil {
		return json.Marshal(ring)
	}
	return b, nil
}

// ParseBarriers разбирает поле barriers. Отсутствие поля и null означают "барьеров нет" (nil);
// любой массив, в том числе пустой, означает "барьеры переданы".
func ParseBarriers(raw json.RawMessage) ([]Barrier, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}
	if raw[0] != '[' {
		return nil, ErrBarriersNotArray
	}

	barriers := []Barrier{}
	if err := json.Unmarshal(raw, &barriers); err != nil {
		return nil, err
	}
	return barriers, nil
}
