package triple

import "errors"

// ErrArity is returned when decoding a JSON array whose length is not 3.
var ErrArity = errors.New("triple: JSON array must have exactly 3 elements")
