package triple_test

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-tuple-utils/triple"
)

func TestJSONRoundTrip(t *testing.T) {
	in := triple.New("/api/users", 200, int64(150))
	b, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `["/api/users",200,150]`, string(b))

	var out triple.Triple[string, int, int64]
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, in, out)
}

func TestUnmarshalJSONArity(t *testing.T) {
	for _, input := range []string{`[]`, `[1,2]`, `[1,2,3,4]`} {
		var tr triple.Triple[int, int, int]
		assert.ErrorIs(t, json.Unmarshal([]byte(input), &tr), triple.ErrArity, "input %s", input)
	}
}

func TestUnmarshalJSONElementType(t *testing.T) {
	var tr triple.Triple[int, int, int]
	assert.Error(t, json.Unmarshal([]byte(`[1,2,"x"]`), &tr))
}
