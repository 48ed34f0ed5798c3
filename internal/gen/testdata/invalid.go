//go:build brandgen

package ids

// AccountID is a defined type, not an alias.
type AccountID int64

var defaultID = 1

func helper() {}
