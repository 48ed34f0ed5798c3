//go:build brandgen

package ids

import (
	"time"

	"github.com/google/uuid"
)

// UserID identifies a user account.
type UserID = int32

type (
	// OrderID identifies an order.
	OrderID = int64

	// SessionToken is handed to clients after login.
	SessionToken = uuid.UUID

	email = string
)

// Deadline is the point in time a job must finish by.
//
// It is compared with time.Time.Compare.
type Deadline = time.Time
