package triple_test

import (
	"fmt"
	"math"

	"github.com/hasbyte1/go-tuple-utils/triple"
)

func ExampleNew() {
	fmt.Println(triple.New("hello", 123, true))
	// Output: Triple[first=hello, second=123, third=true]
}

func ExampleTriple_Rotate() {
	t := triple.New("a", "b", "c")
	fmt.Println(t.Rotate())
	fmt.Println(t.RotateBackward())
	// Output:
	// Triple[first=b, second=c, third=a]
	// Triple[first=c, second=a, third=b]
}

func ExampleTriple_ToFirstThirdPair() {
	fmt.Println(triple.New("hello", 123, true).ToFirstThirdPair())
	// Output: Pair[first=hello, second=true]
}

func ExampleMapThird() {
	t := triple.MapThird(triple.New("hello", 3, 2.5), func(f float64) int64 {
		return int64(math.Round(f))
	})
	fmt.Println(t)
	// Output: Triple[first=hello, second=3, third=3]
}
