package store

import (
	"context"
	"errors"

	"chicken-road-backend/internal/models"
)

// ErrUserNotFound is returned when an operation references a userId with no
// live record.
var ErrUserNotFound = errors.New("user not found")

// SessionStore owns the authoritative user/balance records. All balance
// mutation goes through OpenOrCreate, AdjustBalance and Delete; nothing else
// in the process touches a stored record's fields. Implementations must keep
// concurrent AdjustBalance calls on the same userId from interleaving.
type SessionStore interface {
	// OpenOrCreate returns the existing record for userID, or creates one
	// with the default balance. An empty userID gets a generated id.
	OpenOrCreate(ctx context.Context, userID string) (*models.User, error)

	// Find returns the record for userID, or ErrUserNotFound.
	Find(ctx context.Context, userID string) (*models.User, error)

	// Delete removes the record, reporting whether one existed. Deleting an
	// absent id is not an error.
	Delete(ctx context.Context, userID string) (bool, error)

	// AdjustBalance atomically applies balance += delta and refreshes
	// updated_at, returning the updated record or ErrUserNotFound.
	AdjustBalance(ctx context.Context, userID string, delta float64) (*models.User, error)

	Close() error
}
