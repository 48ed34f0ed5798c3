package brand

import "log/slog"

// Brand is a raw value of type R carrying the compile-time identity T.
//
// The zero value wraps the zero value of R. Brands with different
// discriminants have different underlying types, so Go rejects assignment and
// conversion between them.
type Brand[T Tag, R any] struct {
	// Kept first: a trailing zero-size field would be padded.
	_   [0]T
	raw R
}

// Unwrapper is satisfied by every Brand. It lets code that only sees values
// as any, such as database driver plans, reach the raw payload.
type Unwrapper interface {
	UnwrapRaw() any
}

// UncheckedFromRaw brands raw as T without validating it.
//
// Whatever the brand is meant to guarantee ("this really is a user id") is
// the caller's responsibility.
func UncheckedFromRaw[T Tag, R any](raw R) Brand[T, R] {
	return Brand[T, R]{raw: raw}
}

// IntoRaw returns the raw value.
func (b Brand[T, R]) IntoRaw() R {
	return b.raw
}

// AsRaw returns a pointer to the raw value held by b, for reading large raw
// values without a copy and for decoders that fill the raw value in place.
// Writing through it rebrands the new value unchecked, exactly like
// UncheckedFromRaw; treat the pointer as read-only otherwise.
func (b *Brand[T, R]) AsRaw() *R {
	return &b.raw
}

// UnwrapRaw returns the raw value as an any.
func (b Brand[T, R]) UnwrapRaw() any {
	return b.raw
}

// LogValue implements slog.LogValuer; brands are logged as their raw value.
func (b Brand[T, R]) LogValue() slog.Value {
	return slog.AnyValue(b.raw)
}
