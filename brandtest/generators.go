// Package brandtest provides tags and rapid generators for testing code that
// uses brands.
package brandtest

import (
	"go/token"
	"go/types"

	"github.com/authcorp/libs/go/brand"
	"github.com/google/uuid"
	"pgregory.net/rapid"
)

// Gen generates brands of T wrapping values drawn from rawGen.
func Gen[T brand.Tag, R any](rawGen *rapid.Generator[R]) *rapid.Generator[brand.Brand[T, R]] {
	return rapid.Map(rawGen, brand.UncheckedFromRaw[T, R])
}

// PairGen generates two brands of T whose raw values are drawn independently.
func PairGen[T brand.Tag, R any](rawGen *rapid.Generator[R]) *rapid.Generator[[2]brand.Brand[T, R]] {
	return rapid.Custom(func(t *rapid.T) [2]brand.Brand[T, R] {
		return [2]brand.Brand[T, R]{
			brand.UncheckedFromRaw[T](rawGen.Draw(t, "first")),
			brand.UncheckedFromRaw[T](rawGen.Draw(t, "second")),
		}
	})
}

// UUIDGen generates arbitrary 128-bit UUID values, including ones that are
// not valid v4 identifiers.
func UUIDGen() *rapid.Generator[uuid.UUID] {
	return rapid.Custom(func(t *rapid.T) uuid.UUID {
		var u uuid.UUID
		copy(u[:], rapid.SliceOfN(rapid.Byte(), 16, 16).Draw(t, "bytes"))
		return u
	})
}

// UUIDv4Gen generates UUIDs with the version 4 and RFC 4122 variant bits set.
func UUIDv4Gen() *rapid.Generator[uuid.UUID] {
	return rapid.Map(UUIDGen(), func(u uuid.UUID) uuid.UUID {
		u[6] = (u[6] & 0x0f) | 0x40
		u[8] = (u[8] & 0x3f) | 0x80
		return u
	})
}

// IdentifierGen generates Go identifiers, exported or not, that are neither
// keywords nor predeclared names.
func IdentifierGen() *rapid.Generator[string] {
	return rapid.StringMatching(`[A-Za-z][A-Za-z0-9]{0,12}`).Filter(func(s string) bool {
		return token.IsIdentifier(s) && types.Universe.Lookup(s) == nil
	})
}
