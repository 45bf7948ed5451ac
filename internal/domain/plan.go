package domain

import (
	"encoding/json"
	"fmt"
)

// Plan is one trackable activity instance.
type Plan struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Date      string   `json:"date"`
	Month     string   `json:"month"`
	Week      string   `json:"week"`
	Type      Category `json:"type"`
	Completed bool     `json:"completed"`
	Summary   string   `json:"summary"`
}

// Record is a plan as it is stored: field name to raw JSON value.
//
// The service layer works on records rather than Plan so that fields a
// client sent but Plan does not model survive every rewrite of the store.
type Record map[string]json.RawMessage

// Record field names with special meaning.
const (
	FieldID        = "id"
	FieldTitle     = "title"
	FieldCompleted = "completed"
)

// ToRecord converts p into its stored form.
func (p Plan) ToRecord() (Record, error) {
	data, err := encodeRaw(p)
	if err != nil {
		return nil, fmt.Errorf("encoding plan: %w", err)
	}
	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("decoding plan fields: %w", err)
	}
	return r, nil
}

// ID returns the record's id, or "" when absent or not a string.
func (r Record) ID() string {
	return r.stringField(FieldID)
}

// Title returns the record's title, or "" when absent or not a string.
func (r Record) Title() string {
	return r.stringField(FieldTitle)
}

// Completed reports the record's completion flag. Anything that is not a
// JSON boolean counts as false.
func (r Record) Completed() bool {
	raw, ok := r[FieldCompleted]
	if !ok {
		return false
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		return false
	}
	return b
}

// Set encodes v and stores it under key.
func (r Record) Set(key string, v any) error {
	data, err := encodeRaw(v)
	if err != nil {
		return fmt.Errorf("encoding field %q: %w", key, err)
	}
	r[key] = data
	return nil
}

// Clone returns a copy of r that shares no map storage with it.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = append(json.RawMessage(nil), v...)
	}
	return out
}

// Merge returns base with every top-level field of patch written over it.
// Nested values are replaced, never merged. Neither input is modified.
func Merge(base, patch Record) Record {
	out := base.Clone()
	for k, v := range patch {
		out[k] = append(json.RawMessage(nil), v...)
	}
	return out
}

func (r Record) stringField(key string) string {
	raw, ok := r[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}
