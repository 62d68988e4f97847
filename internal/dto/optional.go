package dto

import (
	"bytes"
	"encoding/json"
)

// OptionalString distinguishes an omitted JSON field (Set == false) from an
// explicit null (Set == true, Value == nil) and from a string value.
type OptionalString struct {
	Set   bool
	Value *string
}

// UnmarshalJSON is only invoked when the field is present in the payload.
func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

// MarshalJSON renders the value, or null when unset or cleared.
func (o OptionalString) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}

// Some returns a present OptionalString holding s.
func Some(s string) OptionalString {
	return OptionalString{Set: true, Value: &s}
}

// Null returns a present OptionalString holding an explicit null.
func Null() OptionalString {
	return OptionalString{Set: true}
}
