package data

import (
	"encoding/json"
	"strings"
)

// Optional is a string attribute that is either absent or present with a value.
// The zero value is absent.
type Optional struct {
	value   string
	present bool
}

// Some returns a present Optional holding value, even when value is empty.
func Some(value string) Optional {
	return Optional{value: value, present: true}
}

// OptionalFrom trims value and returns an absent Optional when nothing is left.
func OptionalFrom(value string) Optional {
	value = strings.TrimSpace(value)
	if value == "" {
		return Optional{}
	}
	return Some(value)
}

// Get returns the value and whether it is present.
func (o Optional) Get() (string, bool) {
	return o.value, o.present
}

// Present reports whether the attribute is set.
func (o Optional) Present() bool {
	return o.present
}

// String returns the value, or the empty string when absent.
func (o Optional) String() string {
	return o.value
}

// IsZero reports whether the attribute is absent. It lets `omitzero` drop absent
// attributes from JSON payloads.
func (o Optional) IsZero() bool {
	return !o.present
}

// MarshalJSON encodes an absent attribute as null.
func (o Optional) MarshalJSON() ([]byte, error) {
	if !o.present {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

// UnmarshalJSON decodes null as absent and any string as present.
func (o *Optional) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*o = Optional{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*o = Some(s)
	return nil
}
