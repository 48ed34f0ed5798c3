// Package brand provides nominal branding for plain values.
//
// A brand wraps a raw value (an integer, a UUID, a string) in a distinct type so
// that two identifiers backed by the same raw type cannot be mixed up:
//
//   - UserID and OrderID may both wrap an int32, yet neither is assignable nor
//     convertible to the other.
//   - A brand behaves like its raw value for ==, ordering, hashing, the zero
//     value, formatting and encoding.
//   - The discriminant is a zero-size struct; a Brand has the size and layout of
//     its raw value.
//
// Brands are normally declared with the brandgen generator, which emits the
// discriminant type, its name and the alias from one line per brand:
//
//	//go:build brandgen
//
//	package ids
//
//	// UserID identifies a user.
//	type UserID = int32
//
// produces
//
//	type BrandedUserIDTag struct{}
//
//	func (BrandedUserIDTag) BrandName() string { return "UserID" }
//
//	// UserID identifies a user.
//	type UserID = brand.Brand[BrandedUserIDTag, int32]
//
// Construction is always unchecked:
//
//	id := brand.UncheckedFromRaw[ids.BrandedUserIDTag](int32(10))
//	fmt.Println(id)           // UserID(10)
//	fmt.Println(id.IntoRaw()) // 10
//
// Capabilities that only some raw types have (ordering, hashing) are free
// functions with generic constraints, so using them on an unsuitable raw type is
// a compile error rather than a runtime check.
//
// JSON, text, YAML and database/sql encodings are transparent: a brand encodes
// exactly like its raw value. The YAML and database/sql methods can be compiled
// out with the brand_noyaml and brand_nosql build tags.
package brand
