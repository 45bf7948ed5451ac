package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// GoalSet maps a category name to a free-text goal description.
type GoalSet map[string]string

// Goals maps a year ("2025") to that year's goal set. Each year is kept as
// raw JSON, so a year holding values other than strings survives rewrites
// of the other years untouched.
type Goals map[string]json.RawMessage

// SetYear encodes set and stores it under year, replacing any previous entry.
func (g Goals) SetYear(year string, set GoalSet) error {
	data, err := encodeRaw(set)
	if err != nil {
		return fmt.Errorf("encoding goals for %s: %w", year, err)
	}
	g[year] = data
	return nil
}

// Clone returns a copy of g that shares no storage with it.
func (g Goals) Clone() Goals {
	out := make(Goals, len(g))
	for y, v := range g {
		out[y] = append(json.RawMessage(nil), v...)
	}
	return out
}

// DefaultGoals is written when the goals store is created for the first time.
func DefaultGoals() Goals {
	return Goals{
		"2025": json.RawMessage(`{"learning":"web3(每周2h)、英语(每周0.5h*2)、读书(每周3h)、写作一篇(1h)",` +
			`"exercise":"每周运动 0.5h * 2 次","hobby":"每周练习2h，录歌一首"}`),
	}
}

// encodeRaw encodes v compactly without escaping HTML characters.
func encodeRaw(v any) (json.RawMessage, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return json.RawMessage(bytes.TrimRight(buf.Bytes(), "\n")), nil
}
