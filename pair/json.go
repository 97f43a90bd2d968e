package pair

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
)

// MarshalJSON encodes p as the two-element array [first, second].
func (p Pair[L, R]) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{p.first, p.second})
}

// UnmarshalJSON decodes a two-element JSON array into p. A JSON null leaves
// p unchanged; an array of any other length yields [ErrArity].
func (p *Pair[L, R]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("pair: %w", err)
	}
	if len(raw) != 2 {
		return fmt.Errorf("%w: got %d", ErrArity, len(raw))
	}
	var out Pair[L, R]
	if err := json.Unmarshal(raw[0], &out.first); err != nil {
		return fmt.Errorf("pair: first element: %w", err)
	}
	if err := json.Unmarshal(raw[1], &out.second); err != nil {
		return fmt.Errorf("pair: second element: %w", err)
	}
	*p = out
	return nil
}
