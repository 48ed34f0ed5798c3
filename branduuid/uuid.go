package branduuid

import (
	"fmt"

	"github.com/authcorp/libs/go/brand"
	"github.com/google/uuid"
)

// NewRandom returns a brand of T wrapping a fresh version 4 UUID.
// It panics if the system random source fails, as uuid.New does.
func NewRandom[T brand.Tag]() brand.Brand[T, uuid.UUID] {
	return brand.UncheckedFromRaw[T](uuid.New())
}

// NewV7 returns a brand of T wrapping a time-ordered version 7 UUID.
func NewV7[T brand.Tag]() (brand.Brand[T, uuid.UUID], error) {
	u, err := uuid.NewV7()
	if err != nil {
		return brand.Brand[T, uuid.UUID]{}, fmt.Errorf("new %s: %w", brand.Name[T](), err)
	}
	return brand.UncheckedFromRaw[T](u), nil
}

// Parse decodes s in any form uuid.Parse accepts and brands the result as T.
func Parse[T brand.Tag](s string) (brand.Brand[T, uuid.UUID], error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return brand.Brand[T, uuid.UUID]{}, fmt.Errorf("parse %s: %w", brand.Name[T](), err)
	}
	return brand.UncheckedFromRaw[T](u), nil
}

// MustParse is like Parse but panics on error.
// Use only for constants and tests.
func MustParse[T brand.Tag](s string) brand.Brand[T, uuid.UUID] {
	b, err := Parse[T](s)
	if err != nil {
		panic(err)
	}
	return b
}

// Nil returns the brand of T wrapping uuid.Nil.
func Nil[T brand.Tag]() brand.Brand[T, uuid.UUID] {
	return brand.Brand[T, uuid.UUID]{}
}

// IsNil reports whether b wraps uuid.Nil.
func IsNil[T brand.Tag](b brand.Brand[T, uuid.UUID]) bool {
	return b.IntoRaw() == uuid.Nil
}
