package triple

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
)

// MarshalJSON encodes t as the array [first, second, third].
func (t Triple[L, M, R]) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]any{t.first, t.second, t.third})
}

// UnmarshalJSON decodes a three-element JSON array into t. A JSON null
// leaves t unchanged.
func (t *Triple[L, M, R]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("triple: %w", err)
	}
	if len(raw) != 3 {
		return fmt.Errorf("%w: got %d", ErrArity, len(raw))
	}
	var out Triple[L, M, R]
	if err := json.Unmarshal(raw[0], &out.first); err != nil {
		return fmt.Errorf("triple: first element: %w", err)
	}
	if err := json.Unmarshal(raw[1], &out.second); err != nil {
		return fmt.Errorf("triple: second element: %w", err)
	}
	if err := json.Unmarshal(raw[2], &out.third); err != nil {
		return fmt.Errorf("triple: third element: %w", err)
	}
	*t = out
	return nil
}
