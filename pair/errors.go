package pair

import "errors"

// ErrArity is returned when decoding a JSON array whose length is not 2.
var ErrArity = errors.New("pair: JSON array must have exactly 2 elements")
