// Package branduuid constructs brands whose raw type is uuid.UUID.
//
// Random and time-ordered constructors never yield the nil UUID, so a brand
// made here can be told apart from an unset one with IsNil:
//
//	type UserID = brand.Brand[ids.BrandedUserIDTag, uuid.UUID]
//
//	id := branduuid.NewRandom[ids.BrandedUserIDTag]()
//	ordered, err := branduuid.NewV7[ids.BrandedUserIDTag]()
//	parsed, err := branduuid.Parse[ids.BrandedUserIDTag]("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
package branduuid
