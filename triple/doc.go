// Package triple provides Triple, an immutable, generic three-element tuple
// with rotation and projection down to [pair.Pair].
//
//	t := triple.New("hello", 123, true)
//	t.Rotate()            // → Triple[first=123, second=true, third=hello]
//	t.RotateBackward()    // → Triple[first=true, second=hello, third=123]
//	t.ToFirstThirdPair()  // → Pair[first=hello, second=true]
//
// Rotate and RotateBackward are mutually inverse 3-cycles: three Rotate calls,
// or a Rotate followed by a RotateBackward, give back the original triple.
//
// As in package pair, type-preserving transforms are methods and
// type-changing transforms are package-level functions ([MapFirst],
// [MapSecond], [MapThird] and their TryMap forms).
package triple
