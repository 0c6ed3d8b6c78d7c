package handlers

import "encoding/json"

// Optional is a JSON field that distinguishes an explicit null from an
// omitted key. UnmarshalJSON only runs when the key is present, so Present
// stays false for omitted fields; Value is nil when the payload carried
// null.
type Optional[T any] struct {
	Present bool
	Value   *T
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Present = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}
