package pair_test

import (
	"errors"
	"hash/maphash"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-tuple-utils/pair"
)

// ─── Construction & access ───────────────────────────────────────────────────

func TestNew(t *testing.T) {
	p := pair.New("hello", 123)
	assert.Equal(t, "hello", p.First())
	assert.Equal(t, 123, p.Second())

	first, second := p.Values()
	assert.Equal(t, "hello", first)
	assert.Equal(t, 123, second)
}

func TestZeroValue(t *testing.T) {
	var p pair.Pair[string, int]
	assert.Equal(t, "", p.First())
	assert.Equal(t, 0, p.Second())
	assert.Equal(t, pair.New("", 0), p)
}

func TestNilElements(t *testing.T) {
	p := pair.New[*int, error](nil, nil)
	assert.Nil(t, p.First())
	assert.Nil(t, p.Second())
	assert.Equal(t, "Pair[first=<nil>, second=<nil>]", p.String())
}

// ─── Swap ────────────────────────────────────────────────────────────────────

func TestSwap(t *testing.T) {
	swapped := pair.New("hello", 123).Swap()
	assert.Equal(t, 123, swapped.First())
	assert.Equal(t, "hello", swapped.Second())
}

func TestSwapIsInvolution(t *testing.T) {
	p := pair.New(3.5, []string{"a"})
	assert.True(t, p.Swap().Swap().Equal(p))
}

func TestSwapLeavesReceiverUntouched(t *testing.T) {
	p := pair.New("a", 1)
	_ = p.Swap()
	assert.Equal(t, "a", p.First())
	assert.Equal(t, 1, p.Second())
}

// ─── Mapping ─────────────────────────────────────────────────────────────────

func TestMapFirstMethod(t *testing.T) {
	p := pair.New("hello", 123)
	upper := p.MapFirst(strings.ToUpper)
	assert.Equal(t, pair.New("HELLO", 123), upper)
	assert.Equal(t, "hello", p.First(), "receiver must not change")
}

func TestMapSecondMethod(t *testing.T) {
	squared := pair.New("hello", 123).MapSecond(func(n int) int { return n * n })
	assert.Equal(t, pair.New("hello", 15129), squared)
}

func TestMapFirstFunc(t *testing.T) {
	p := pair.MapFirst(pair.New("hello", true), func(s string) int { return len(s) })
	assert.Equal(t, pair.New(5, true), p)
}

func TestMapSecondFunc(t *testing.T) {
	p := pair.MapSecond(pair.New("id", 42), strconv.Itoa)
	assert.Equal(t, pair.New("id", "42"), p)
}

func TestMapCombinesBothElements(t *testing.T) {
	assert.Equal(t, "hellohellohello", pair.Map(pair.New("hello", 3), strings.Repeat))
}

func TestTryMapFirst(t *testing.T) {
	p, err := pair.TryMapFirst(pair.New("42", "x"), strconv.Atoi)
	require.NoError(t, err)
	assert.Equal(t, pair.New(42, "x"), p)
}

func TestTryMapErrorIsReturnedUnchanged(t *testing.T) {
	errBoom := errors.New("boom")
	fail := func(int) (string, error) { return "", errBoom }

	p, err := pair.TryMapFirst(pair.New(1, 2), fail)
	assert.Same(t, errBoom, err)
	assert.Equal(t, pair.Pair[string, int]{}, p)

	q, err := pair.TryMapSecond(pair.New(1, 2), fail)
	assert.Same(t, errBoom, err)
	assert.Equal(t, pair.Pair[int, string]{}, q)
}

func TestTryMapSecond(t *testing.T) {
	p, err := pair.TryMapSecond(pair.New("n", "3.5"), func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	})
	require.NoError(t, err)
	assert.Equal(t, pair.New("n", 3.5), p)
}

func TestMapPanicPropagates(t *testing.T) {
	p := pair.New(1, 2)
	assert.PanicsWithValue(t, "mapper failed", func() {
		p.MapFirst(func(int) int { panic("mapper failed") })
	})
	assert.PanicsWithValue(t, "mapper failed", func() {
		pair.MapSecond(p, func(int) string { panic("mapper failed") })
	})
}

// ─── Conversion ──────────────────────────────────────────────────────────────

func TestToList(t *testing.T) {
	list := pair.New("hello", 123).ToList()
	require.Len(t, list, 2)
	assert.Equal(t, "hello", list[0])
	assert.Equal(t, 123, list[1])
}

func TestToArray(t *testing.T) {
	arr := pair.New("hello", 123).ToArray()
	assert.Len(t, arr, 2)
	assert.Equal(t, [2]any{"hello", 123}, arr)
}

// ─── Equality, hashing, string form ──────────────────────────────────────────

func TestEquality(t *testing.T) {
	p1 := pair.New("hello", 123)
	p2 := pair.New("hello", 123)
	p3 := pair.New("world", 123)
	p4 := pair.New("hello", 124)

	assert.True(t, p1 == p2)
	assert.True(t, p1.Equal(p2))
	assert.False(t, p1 == p3)
	assert.False(t, p1.Equal(p3))
	assert.False(t, p1.Equal(p4))
}

func TestEqualNonComparableElements(t *testing.T) {
	p1 := pair.New([]int{1, 2}, map[string]int{"a": 1})
	p2 := pair.New([]int{1, 2}, map[string]int{"a": 1})
	p3 := pair.New([]int{2, 1}, map[string]int{"a": 1})

	assert.True(t, p1.Equal(p2))
	assert.False(t, p1.Equal(p3))
}

func TestEqualUsesElementEqualMethod(t *testing.T) {
	instant := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	p1 := pair.New("deadline", instant)
	p2 := pair.New("deadline", instant.In(time.FixedZone("KST", 9*60*60)))
	assert.True(t, p1.Equal(p2))
}

type version struct{ major int }

func (v *version) Equal(o *version) bool { return v.major == o.major }

func TestEqualNilSlotWithPointerEqual(t *testing.T) {
	none := pair.New[*version, int](nil, 1)
	some := pair.New(&version{1}, 1)

	assert.True(t, none.Equal(pair.New[*version, int](nil, 1)))
	assert.False(t, some.Equal(none))
	assert.False(t, none.Equal(some))
	assert.True(t, some.Equal(pair.New(&version{1}, 1)))
}

func TestEqualAnySlotUsesDynamicEqualMethod(t *testing.T) {
	instant := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	shifted := instant.In(time.FixedZone("KST", 9*60*60))

	typed := pair.New("deadline", instant).Equal(pair.New("deadline", shifted))
	untyped := pair.New[any, any]("deadline", instant).Equal(pair.New[any, any]("deadline", shifted))
	assert.True(t, typed)
	assert.Equal(t, typed, untyped)
}

func TestHash(t *testing.T) {
	seed := maphash.MakeSeed()
	p1 := pair.New("hello", 123)
	p2 := pair.New("hello", 123)
	p3 := pair.New("world", 123)

	assert.Equal(t, pair.Hash(seed, p1), pair.Hash(seed, p2))
	assert.NotEqual(t, pair.Hash(seed, p1), pair.Hash(seed, p3))
}

func TestPairAsMapKey(t *testing.T) {
	seen := map[pair.Pair[string, int]]int{}
	seen[pair.New("a", 1)]++
	seen[pair.New("a", 1)]++
	seen[pair.New("a", 2)]++
	assert.Equal(t, 2, seen[pair.New("a", 1)])
	assert.Len(t, seen, 2)
}

func TestString(t *testing.T) {
	assert.Equal(t, "Pair[first=hello, second=123]", pair.New("hello", 123).String())
	assert.Equal(t, "Pair[first=1, second=x]", pair.New(1, "x").String())
}

// ─── Slice helpers ───────────────────────────────────────────────────────────

func TestZip(t *testing.T) {
	pairs := pair.Zip([]string{"x", "y", "z"}, []int{1, 2, 3})
	require.Len(t, pairs, 3)
	assert.Equal(t, pair.New("x", 1), pairs[0])
	assert.Equal(t, pair.New("z", 3), pairs[2])
}

func TestZipUnequalLengths(t *testing.T) {
	assert.Len(t, pair.Zip([]string{"a", "b", "c"}, []int{1, 2}), 2)
	assert.Empty(t, pair.Zip([]string{}, []int{1}))
}

func TestUnzip(t *testing.T) {
	names, ages := pair.Unzip([]pair.Pair[string, int]{
		pair.New("Alice", 28),
		pair.New("Bob", 35),
	})
	assert.Equal(t, []string{"Alice", "Bob"}, names)
	assert.Equal(t, []int{28, 35}, ages)
}

func TestFromMapToMap(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2}
	pairs := pair.FromMap(m)
	assert.Len(t, pairs, 2)
	assert.ElementsMatch(t, []pair.Pair[string, int]{pair.New("a", 1), pair.New("b", 2)}, pairs)
	assert.Equal(t, m, pair.ToMap(pairs))
}

func TestToMapLastWins(t *testing.T) {
	m := pair.ToMap([]pair.Pair[string, int]{pair.New("k", 1), pair.New("k", 2)})
	assert.Equal(t, map[string]int{"k": 2}, m)
}
