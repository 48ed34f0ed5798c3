package brand

import (
	"cmp"
	"hash/maphash"
)

// Equal reports whether a and b wrap equal raw values. It is the same as a == b.
func Equal[T Tag, R comparable](a, b Brand[T, R]) bool {
	return a.raw == b.raw
}

// EqualFunc compares the raw values of a and b with eq. Use it for raw types
// that are not comparable, such as slices.
func EqualFunc[T Tag, R any](a, b Brand[T, R], eq func(R, R) bool) bool {
	return eq(a.raw, b.raw)
}

// Compare orders a and b by their raw values, with cmp.Compare semantics:
// a NaN is less than any other value and equal to another NaN.
func Compare[T Tag, R cmp.Ordered](a, b Brand[T, R]) int {
	return cmp.Compare(a.raw, b.raw)
}

// Less reports whether a's raw value is less than b's.
func Less[T Tag, R cmp.Ordered](a, b Brand[T, R]) bool {
	return cmp.Less(a.raw, b.raw)
}

// PartialCompare orders a and b like the < and == operators on their raw
// values do. ok is false when the raw values are unordered (a NaN operand).
func PartialCompare[T Tag, R cmp.Ordered](a, b Brand[T, R]) (c int, ok bool) {
	switch {
	case isNaN(a.raw) || isNaN(b.raw):
		return 0, false
	case a.raw < b.raw:
		return -1, true
	case a.raw > b.raw:
		return 1, true
	}
	return 0, true
}

// CompareFunc orders a and b by applying compare to their raw values, for raw
// types that define their own order (time.Time.Compare, bytes.Compare).
func CompareFunc[T Tag, R any](a, b Brand[T, R], compare func(R, R) int) int {
	return compare(a.raw, b.raw)
}

// Min returns the brand with the smallest raw value.
func Min[T Tag, R cmp.Ordered](first Brand[T, R], rest ...Brand[T, R]) Brand[T, R] {
	m := first
	for _, b := range rest {
		if cmp.Less(b.raw, m.raw) {
			m = b
		}
	}
	return m
}

// Max returns the brand with the largest raw value.
func Max[T Tag, R cmp.Ordered](first Brand[T, R], rest ...Brand[T, R]) Brand[T, R] {
	m := first
	for _, b := range rest {
		if cmp.Less(m.raw, b.raw) {
			m = b
		}
	}
	return m
}

// Hash returns the hash of b's raw value. It is exactly
// maphash.Comparable(seed, b.IntoRaw()).
func Hash[T Tag, R comparable](seed maphash.Seed, b Brand[T, R]) uint64 {
	return maphash.Comparable(seed, b.raw)
}

func isNaN[R cmp.Ordered](x R) bool {
	return x != x
}
