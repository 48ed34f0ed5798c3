// Package ids declares the identifiers shared by the brand packages' tests
// and examples. The brands are generated from ids.go.
package ids

//go:generate go run github.com/authcorp/libs/go/brand/cmd/brandgen ids.go
