package store

import (
	"context"
	"time"

	"github.com/MKhiriev/cipher-notes/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the persistence contract for user accounts.
type UserRepository interface {
	// CreateUser persists a new account and returns it with server-assigned
	// fields (UserID, CreatedAt). Returns [ErrLoginAlreadyExists] when the
	// login is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByLogin returns the account matching user.Login or
	// [ErrNoUserWasFound].
	FindUserByLogin(ctx context.Context, user models.User) (models.User, error)
}

// NoteRepository is the persistence contract for notes and share copies.
// All payload columns hold opaque ciphertext; no method interprets them.
type NoteRepository interface {
	// SaveNote inserts exactly one row and writes the server-assigned ID and
	// CreatedAt back into note. Returns [ErrPublicIDAlreadyExists] when the
	// note is a share copy whose public identifier is already active.
	SaveNote(ctx context.Context, note *models.Note) error

	// ListNotes returns every durable (non-share-copy) note owned by userID,
	// ordered by creation time, most recent first, image fields included.
	ListNotes(ctx context.Context, userID int64) ([]models.Note, error)

	// BurnSharedNote atomically removes the share-copy row matching publicID
	// and returns its captured fields. The delete and the read are a single
	// statement, so at most one caller ever receives the payload; every
	// other caller gets [ErrShareNotFound].
	BurnSharedNote(ctx context.Context, publicID string) (models.Note, error)

	// DeleteNote removes the note with the given id owned by userID,
	// including all image columns. Idempotent: deleting a nonexistent id is
	// not an error.
	DeleteNote(ctx context.Context, userID, noteID int64) error

	// PurgeExpiredShares removes share-copy rows created before the cutoff
	// and reports how many were deleted.
	PurgeExpiredShares(ctx context.Context, cutoff time.Time) (int64, error)
}
