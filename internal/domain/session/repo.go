package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound indicates the requested session does not exist in the store.
	ErrNotFound = errors.New("session not found")

	// ErrUnknownSection indicates a section key the catalog does not declare,
	// or one not eligible for the session's sex.
	ErrUnknownSection = errors.New("unknown section")

	// ErrUnknownSubfinding indicates a sub-finding key outside the section's
	// catalog-declared set.
	ErrUnknownSubfinding = errors.New("unknown subfinding")

	// ErrInvalidSex indicates a sex value other than "male" or "female".
	ErrInvalidSex = errors.New("invalid sex")
)

// Repository defines the contract for storing sessions. The service always
// works on clones, so implementations only need to keep snapshots.
type Repository interface {
	Create(ctx context.Context, s *Session) error
	Get(ctx context.Context, id uuid.UUID) (*Session, error)
	Update(ctx context.Context, s *Session) error
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteExpired removes sessions not touched since the cutoff and
	// returns how many were removed.
	DeleteExpired(ctx context.Context, cutoff time.Time) int
}
