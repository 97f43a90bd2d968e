package pair

import "hash/maphash"

// This file holds the operations that change a Pair's element types, or that
// need constraints the Pair type itself does not carry. Methods cannot
// introduce type parameters, so they are package-level functions.

// MapFirst applies fn to the first element and returns a Pair[L2, R].
//
//	lengths := pair.MapFirst(pair.New("hello", 1), func(s string) int { return len(s) })
//	// → Pair[first=5, second=1]
func MapFirst[L, R, L2 any](p Pair[L, R], fn func(L) L2) Pair[L2, R] {
	return Pair[L2, R]{first: fn(p.first), second: p.second}
}

// MapSecond applies fn to the second element and returns a Pair[L, R2].
func MapSecond[L, R, R2 any](p Pair[L, R], fn func(R) R2) Pair[L, R2] {
	return Pair[L, R2]{first: p.first, second: fn(p.second)}
}

// Map combines both elements into a single value of any type.
//
//	s := pair.Map(pair.New("ab", 3), strings.Repeat) // → "ababab"
func Map[L, R, T any](p Pair[L, R], fn func(L, R) T) T {
	return fn(p.first, p.second)
}

// TryMapFirst is the fallible form of [MapFirst]. An error from fn is
// returned unchanged together with the zero Pair.
//
//	n, err := pair.TryMapFirst(pair.New("42", "x"), strconv.Atoi)
func TryMapFirst[L, R, L2 any](p Pair[L, R], fn func(L) (L2, error)) (Pair[L2, R], error) {
	first, err := fn(p.first)
	if err != nil {
		return Pair[L2, R]{}, err
	}
	return Pair[L2, R]{first: first, second: p.second}, nil
}

// TryMapSecond is the fallible form of [MapSecond].
func TryMapSecond[L, R, R2 any](p Pair[L, R], fn func(R) (R2, error)) (Pair[L, R2], error) {
	second, err := fn(p.second)
	if err != nil {
		return Pair[L, R2]{}, err
	}
	return Pair[L, R2]{first: p.first, second: second}, nil
}

// Hash returns a hash of p that is consistent with ==: pairs that compare
// equal produce the same hash for the same seed.
func Hash[L, R comparable](seed maphash.Seed, p Pair[L, R]) uint64 {
	return maphash.Comparable(seed, p)
}

// Zip combines two slices element-by-element into Pairs.
// Stops at the shorter of the two slices.
//
//	pair.Zip([]string{"a", "b", "c"}, []int{1, 2}) // → [(a,1) (b,2)]
func Zip[L, R any](firsts []L, seconds []R) []Pair[L, R] {
	n := min(len(firsts), len(seconds))
	out := make([]Pair[L, R], n)
	for i := 0; i < n; i++ {
		out[i] = Pair[L, R]{first: firsts[i], second: seconds[i]}
	}
	return out
}

// Unzip splits pairs into a slice of first elements and a slice of second
// elements. It is the inverse of [Zip] for equal-length inputs.
func Unzip[L, R any](pairs []Pair[L, R]) ([]L, []R) {
	firsts := make([]L, len(pairs))
	seconds := make([]R, len(pairs))
	for i, p := range pairs {
		firsts[i], seconds[i] = p.first, p.second
	}
	return firsts, seconds
}

// FromMap returns one Pair per map entry, key first. The order follows map
// iteration and is therefore unspecified.
func FromMap[K comparable, V any](m map[K]V) []Pair[K, V] {
	out := make([]Pair[K, V], 0, len(m))
	for k, v := range m {
		out = append(out, Pair[K, V]{first: k, second: v})
	}
	return out
}

// ToMap builds a map keyed by each pair's first element.
// When several pairs share a key, the last one wins.
func ToMap[K comparable, V any](pairs []Pair[K, V]) map[K]V {
	out := make(map[K]V, len(pairs))
	for _, p := range pairs {
		out[p.first] = p.second
	}
	return out
}
