// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client-side transport layer for talking to a
// cipher-notes server.
//
// The primary abstraction is [ServerAdapter], which decouples client code
// from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/cipher-notes/models"
)

// ServerAdapter defines transport-agnostic communication with the
// cipher-notes server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to
// the sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called immediately
	// after a successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or
	// an empty string if no token has been set yet.
	Token() string

	// Register creates an account with the provided credentials. On
	// success it stores the returned bearer token via SetToken. Returns an
	// error if the request fails or the server responds with a non-2xx
	// status.
	Register(ctx context.Context, user models.User) error

	// Login authenticates the user. On success it stores the returned
	// bearer token via SetToken. Returns an error if the request fails or
	// the server responds with a non-2xx status.
	Login(ctx context.Context, user models.User) error

	// SaveNote stores an encrypted note on the server. For a share copy
	// without a client-chosen public ID, the response carries the
	// server-assigned identifier. Requires a valid bearer token.
	SaveNote(ctx context.Context, req models.SaveNoteRequest) (models.SaveNoteResponse, error)

	// ListNotes fetches every durable note of the authenticated user,
	// newest first. Requires a valid bearer token.
	ListNotes(ctx context.Context) ([]models.Note, error)

	// ReadSharedNote claims a one-time share by its public identifier.
	// No token is required; share links work for recipients without an
	// account. A second read of the same identifier returns [ErrNotFound].
	ReadSharedNote(ctx context.Context, publicID string) (models.SharedNoteResponse, error)

	// DeleteNote removes a note by ID. The operation is idempotent: a
	// missing note is not an error. Requires a valid bearer token.
	DeleteNote(ctx context.Context, req models.DeleteNoteRequest) error

	// GetServerVersion fetches the server's version string.
	GetServerVersion(ctx context.Context) (string, error)
}
