package triple

import (
	"fmt"

	"github.com/hasbyte1/go-tuple-utils/internal/equal"
	"github.com/hasbyte1/go-tuple-utils/pair"
)

// Triple holds three values of possibly different types.
//
// The zero value is a valid triple of zero values. No method modifies its
// receiver.
type Triple[L, M, R any] struct {
	first  L
	second M
	third  R
}

// New returns a Triple holding first, second and third.
func New[L, M, R any](first L, second M, third R) Triple[L, M, R] {
	return Triple[L, M, R]{first: first, second: second, third: third}
}

// FromPair extends p with a third element.
func FromPair[L, M, R any](p pair.Pair[L, M], third R) Triple[L, M, R] {
	return Triple[L, M, R]{first: p.First(), second: p.Second(), third: third}
}

// First returns the first element.
func (t Triple[L, M, R]) First() L { return t.first }

// Second returns the second element.
func (t Triple[L, M, R]) Second() M { return t.second }

// Third returns the third element.
func (t Triple[L, M, R]) Third() R { return t.third }

// Values returns all three elements.
func (t Triple[L, M, R]) Values() (L, M, R) { return t.first, t.second, t.third }

// Rotate shifts every element one position to the left, wrapping the first
// element around to the end: (a, b, c) → (b, c, a).
func (t Triple[L, M, R]) Rotate() Triple[M, R, L] {
	return Triple[M, R, L]{first: t.second, second: t.third, third: t.first}
}

// RotateBackward is the inverse of [Triple.Rotate]: (a, b, c) → (c, a, b).
func (t Triple[L, M, R]) RotateBackward() Triple[R, L, M] {
	return Triple[R, L, M]{first: t.third, second: t.first, third: t.second}
}

// MapFirst returns a new Triple with fn applied to the first element.
func (t Triple[L, M, R]) MapFirst(fn func(L) L) Triple[L, M, R] {
	return Triple[L, M, R]{first: fn(t.first), second: t.second, third: t.third}
}

// MapSecond returns a new Triple with fn applied to the second element.
func (t Triple[L, M, R]) MapSecond(fn func(M) M) Triple[L, M, R] {
	return Triple[L, M, R]{first: t.first, second: fn(t.second), third: t.third}
}

// MapThird returns a new Triple with fn applied to the third element.
func (t Triple[L, M, R]) MapThird(fn func(R) R) Triple[L, M, R] {
	return Triple[L, M, R]{first: t.first, second: t.second, third: fn(t.third)}
}

// ToFirstSecondPair drops the third element.
func (t Triple[L, M, R]) ToFirstSecondPair() pair.Pair[L, M] {
	return pair.New(t.first, t.second)
}

// ToFirstThirdPair drops the second element.
func (t Triple[L, M, R]) ToFirstThirdPair() pair.Pair[L, R] {
	return pair.New(t.first, t.third)
}

// ToSecondThirdPair drops the first element.
func (t Triple[L, M, R]) ToSecondThirdPair() pair.Pair[M, R] {
	return pair.New(t.second, t.third)
}

// ToList returns the elements as a new slice of length 3.
func (t Triple[L, M, R]) ToList() []any {
	return []any{t.first, t.second, t.third}
}

// ToArray returns the elements as a fixed-size array.
func (t Triple[L, M, R]) ToArray() [3]any {
	return [3]any{t.first, t.second, t.third}
}

// Equal reports whether t and other hold equal elements in the same
// positions, using each non-nil element's Equal method when it has one.
func (t Triple[L, M, R]) Equal(other Triple[L, M, R]) bool {
	return equal.Values(t.first, other.first) &&
		equal.Values(t.second, other.second) &&
		equal.Values(t.third, other.third)
}

// String returns "Triple[first=<first>, second=<second>, third=<third>]".
func (t Triple[L, M, R]) String() string {
	return fmt.Sprintf("Triple[first=%v, second=%v, third=%v]", t.first, t.second, t.third)
}
