package pair

import (
	"fmt"

	"github.com/hasbyte1/go-tuple-utils/internal/equal"
)

// Pair holds two values of possibly different types.
//
// The zero value is a valid pair of zero values. Pairs are values: copying
// one copies both elements and no method modifies its receiver.
type Pair[L, R any] struct {
	first  L
	second R
}

// New returns a Pair holding first and second. Either value may be nil.
func New[L, R any](first L, second R) Pair[L, R] {
	return Pair[L, R]{first: first, second: second}
}

// First returns the first element.
func (p Pair[L, R]) First() L { return p.first }

// Second returns the second element.
func (p Pair[L, R]) Second() R { return p.second }

// Values returns both elements, for use in multi-value assignment:
//
//	lo, hi := minMax.Values()
func (p Pair[L, R]) Values() (L, R) { return p.first, p.second }

// Swap returns a new Pair with the positions exchanged.
func (p Pair[L, R]) Swap() Pair[R, L] {
	return Pair[R, L]{first: p.second, second: p.first}
}

// MapFirst returns a new Pair with fn applied to the first element.
// Use the package-level [MapFirst] when fn changes the element type.
func (p Pair[L, R]) MapFirst(fn func(L) L) Pair[L, R] {
	return Pair[L, R]{first: fn(p.first), second: p.second}
}

// MapSecond returns a new Pair with fn applied to the second element.
// Use the package-level [MapSecond] when fn changes the element type.
func (p Pair[L, R]) MapSecond(fn func(R) R) Pair[L, R] {
	return Pair[L, R]{first: p.first, second: fn(p.second)}
}

// ToList returns the elements as a new slice of length 2.
func (p Pair[L, R]) ToList() []any {
	return []any{p.first, p.second}
}

// ToArray returns the elements as a fixed-size array.
func (p Pair[L, R]) ToArray() [2]any {
	return [2]any{p.first, p.second}
}

// Equal reports whether p and other hold equal elements in the same
// positions. Two nil elements are equal and a nil element never equals a
// non-nil one. Elements with an Equal method are compared through it, also
// when the slot type is an interface such as any; all others are compared
// deeply.
func (p Pair[L, R]) Equal(other Pair[L, R]) bool {
	return equal.Values(p.first, other.first) && equal.Values(p.second, other.second)
}

// String returns "Pair[first=<first>, second=<second>]".
func (p Pair[L, R]) String() string {
	return fmt.Sprintf("Pair[first=%v, second=%v]", p.first, p.second)
}
