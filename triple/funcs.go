package triple

import "hash/maphash"

// MapFirst applies fn to the first element and returns a Triple[L2, M, R].
func MapFirst[L, M, R, L2 any](t Triple[L, M, R], fn func(L) L2) Triple[L2, M, R] {
	return Triple[L2, M, R]{first: fn(t.first), second: t.second, third: t.third}
}

// MapSecond applies fn to the second element and returns a Triple[L, M2, R].
func MapSecond[L, M, R, M2 any](t Triple[L, M, R], fn func(M) M2) Triple[L, M2, R] {
	return Triple[L, M2, R]{first: t.first, second: fn(t.second), third: t.third}
}

// MapThird applies fn to the third element and returns a Triple[L, M, R2].
//
//	rounded := triple.MapThird(triple.New("hello", 3, 2.5), math.Round)
func MapThird[L, M, R, R2 any](t Triple[L, M, R], fn func(R) R2) Triple[L, M, R2] {
	return Triple[L, M, R2]{first: t.first, second: t.second, third: fn(t.third)}
}

// TryMapFirst is the fallible form of [MapFirst]. An error from fn is
// returned unchanged together with the zero Triple.
func TryMapFirst[L, M, R, L2 any](t Triple[L, M, R], fn func(L) (L2, error)) (Triple[L2, M, R], error) {
	first, err := fn(t.first)
	if err != nil {
		return Triple[L2, M, R]{}, err
	}
	return Triple[L2, M, R]{first: first, second: t.second, third: t.third}, nil
}

// TryMapSecond is the fallible form of [MapSecond].
func TryMapSecond[L, M, R, M2 any](t Triple[L, M, R], fn func(M) (M2, error)) (Triple[L, M2, R], error) {
	second, err := fn(t.second)
	if err != nil {
		return Triple[L, M2, R]{}, err
	}
	return Triple[L, M2, R]{first: t.first, second: second, third: t.third}, nil
}

// TryMapThird is the fallible form of [MapThird].
func TryMapThird[L, M, R, R2 any](t Triple[L, M, R], fn func(R) (R2, error)) (Triple[L, M, R2], error) {
	third, err := fn(t.third)
	if err != nil {
		return Triple[L, M, R2]{}, err
	}
	return Triple[L, M, R2]{first: t.first, second: t.second, third: third}, nil
}

// Hash returns a hash of t that is consistent with ==.
func Hash[L, M, R comparable](seed maphash.Seed, t Triple[L, M, R]) uint64 {
	return maphash.Comparable(seed, t)
}

// Zip combines three slices element-by-element into Triples.
// Stops at the shortest slice.
func Zip[L, M, R any](firsts []L, seconds []M, thirds []R) []Triple[L, M, R] {
	n := min(len(firsts), len(seconds), len(thirds))
	out := make([]Triple[L, M, R], n)
	for i := 0; i < n; i++ {
		out[i] = Triple[L, M, R]{first: firsts[i], second: seconds[i], third: thirds[i]}
	}
	return out
}

// Unzip splits triples into one slice per position.
func Unzip[L, M, R any](triples []Triple[L, M, R]) ([]L, []M, []R) {
	firsts := make([]L, len(triples))
	seconds := make([]M, len(triples))
	thirds := make([]R, len(triples))
	for i, t := range triples {
		firsts[i], seconds[i], thirds[i] = t.first, t.second, t.third
	}
	return firsts, seconds, thirds
}
