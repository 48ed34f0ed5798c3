// Package gen turns brand declarations into Go source.
//
// A declaration file is either a Go file excluded from normal builds by a
// "brandgen" build constraint:
//
//	//go:build brandgen
//
//	package ids
//
//	import "github.com/google/uuid"
//
//	// UserID identifies a user account.
//	type UserID = int32
//
//	type SessionID = uuid.UUID
//
// or a YAML or JSON manifest listing the same information. For each
// declaration Generate emits a zero-size discriminant, its BrandName method
// and an alias of brand.Brand named like the declaration.
package gen
