package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/cipher-notes/models"
)

// NoteService is the business layer behind the note endpoints. Payloads are
// opaque ciphertext end to end; the service validates shape and limits,
// never content.
type NoteService interface {
	// SaveNote validates and persists a note for userID. When the request
	// marks a share copy without a public identifier, the service assigns
	// one; the returned note carries every server-assigned field.
	SaveNote(ctx context.Context, userID int64, request models.SaveNoteRequest) (models.Note, error)

	// ListNotes returns the durable notes owned by userID, newest first.
	ListNotes(ctx context.Context, userID int64) ([]models.Note, error)

	// ReadSharedNote consumes the share copy behind publicID: the first
	// caller gets the payload, everyone after gets not-found.
	ReadSharedNote(ctx context.Context, publicID string) (models.Note, error)

	// DeleteNote removes one of userID's notes. Missing notes are a no-op.
	DeleteNote(ctx context.Context, userID int64, request models.DeleteNoteRequest) error

	// PurgeExpiredShares deletes share copies created before cutoff and
	// reports how many rows were removed.
	PurgeExpiredShares(ctx context.Context, cutoff time.Time) (int64, error)
}

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService exposes build metadata to the version endpoint.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
