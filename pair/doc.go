// Package pair provides Pair, an immutable, generic two-element tuple.
//
// # Overview
//
// A [Pair][L, R] holds two values of independently chosen types in a fixed
// order. Its fields are unexported: read them through [Pair.First],
// [Pair.Second] or [Pair.Values], and derive new pairs through the
// transformation helpers. No operation mutates its receiver.
//
//	p := pair.New("hello", 3)
//	p.Swap()                                       // → Pair[first=3, second=hello]
//	p.MapSecond(func(n int) int { return n * n })  // → Pair[first=hello, second=9]
//	pair.Map(p, strings.Repeat)                    // → "hellohellohello"
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// transformations that change an element type are package-level functions:
//
//	// Method-based (element type preserved):
//	p.MapFirst(strings.ToUpper)
//
//	// Package-level (element type changes):
//	pair.MapFirst(p, func(s string) int { return len(s) })
//
// Caller-supplied functions are invoked directly. A panic raised inside one
// reaches the caller untouched, and the TryMap variants return the function's
// error exactly as it was produced.
//
// # Equality and hashing
//
// A Pair of comparable element types is itself comparable, so == and map
// keys work as expected. [Pair.Equal] extends structural equality to any
// element type, and [Hash] produces a hash consistent with ==.
//
// # Encoding
//
// Pairs encode to and decode from a two-element JSON array:
//
//	b, _ := json.Marshal(pair.New("id", 7)) // → ["id",7]
package pair
