//go:build brandgen

package ids

import "github.com/google/uuid"

// UserID identifies a user account.
type UserID = int32

// OrderID identifies an order placed by a user.
type OrderID = int32

// RequestID correlates the log lines of one request.
type RequestID = uuid.UUID

// Email is an address that passed signup validation.
type Email = string
