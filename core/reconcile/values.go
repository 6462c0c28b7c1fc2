package reconcile

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ModeValue is the value of a variable in one mode.
type ModeValue struct {
	Mode  string
	Value any
}

// ModeValues is an ordered mode → value mapping. JSON decoding keeps the
// object key order of the source document.
type ModeValues []ModeValue

// Get returns the value for mode.
func (m ModeValues) Get(mode string) (any, bool) {
	for _, mv := range m {
		if mv.Mode == mode {
			return mv.Value, true
		}
	}
	return nil, false
}

// Modes returns the mode names in order.
func (m ModeValues) Modes() []string {
	out := make([]string, 0, len(m))
	for _, mv := range m {
		out = append(out, mv.Mode)
	}
	return out
}

// Set replaces the value of an existing mode or appends a new one.
func (m ModeValues) Set(mode string, value any) ModeValues {
	for i := range m {
		if m[i].Mode == mode {
			m[i].Value = value
			return m
		}
	}
	return append(m, ModeValue{Mode: mode, Value: value})
}

// MarshalJSON encodes the modes as an object in order.
func (m ModeValues) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, mv := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(mv.Mode)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(mv.Value)
		if err != nil {
			return nil, fmt.Errorf("mode %q: %w", mv.Mode, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an object while keeping its key order.
func (m *ModeValues) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*m = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("valuesByMode: expected object, got %v", tok)
	}

	out := make(ModeValues, 0)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("valuesByMode: expected string key, got %v", keyTok)
		}

		var value any
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("valuesByMode %q: %w", key, err)
		}
		out = out.Set(key, value)
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*m = out
	return nil
}
