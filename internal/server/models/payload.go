package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"maps"
)

// Payload is a caller-supplied profile document. Its contents are opaque to
// the service; only top-level presence is checked.
type Payload map[string]any

// Value stores the payload as JSON (jsonb column).
func (p Payload) Value() (driver.Value, error) {
	if p == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(p)
}

// Scan reads a jsonb column back into the payload.
func (p *Payload) Scan(src any) error {
	var b []byte
	switch v := src.(type) {
	case nil:
		*p = Payload{}
		return nil
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return errors.New("payload: unsupported source type")
	}
	out := Payload{}
	if err := json.Unmarshal(b, &out); err != nil {
		return err
	}
	*p = out
	return nil
}

// merge copies p and overlays system fields on top of it.
func (p Payload) merge(system map[string]any) map[string]any {
	doc := make(map[string]any, len(p)+len(system))
	maps.Copy(doc, p)
	maps.Copy(doc, system)
	return doc
}
