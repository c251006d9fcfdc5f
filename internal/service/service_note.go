package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/cipher-notes/internal/config"
	"github.com/MKhiriev/cipher-notes/internal/logger"
	"github.com/MKhiriev/cipher-notes/internal/store"
	"github.com/MKhiriev/cipher-notes/internal/utils"
	"github.com/MKhiriev/cipher-notes/internal/validators"
	"github.com/MKhiriev/cipher-notes/models"
)

// noteService is the concrete implementation of NoteService. It validates
// incoming payload shape, assigns share identifiers where the client left
// them out, and delegates persistence to a NoteRepository.
type noteService struct {
	noteRepository store.NoteRepository
	validator      validators.Validator
	uuidGenerator  *utils.UUIDGenerator

	logger *logger.Logger
}

// NewNoteService constructs a NoteService wired to the given NoteRepository.
// Validation limits (image size ceiling, MIME allow-list) come from cfg.
func NewNoteService(noteRepository store.NoteRepository, cfg config.Notes, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		validator:      validators.NewNoteValidator(cfg),
		uuidGenerator:  utils.NewUUIDGenerator(),
		logger:         logger,
	}
}

// SaveNote validates the request and persists a note owned by userID.
//
// A share copy that arrives without a public identifier gets a generated
// UUID; a client-chosen identifier is kept as-is and may fail with
// [store.ErrPublicIDAlreadyExists] when it is already taken.
//
// Validation failures are wrapped with ErrInvalidDataProvided so transport
// layers can map them to a client error without importing the validators
// package.
func (n *noteService) SaveNote(ctx context.Context, userID int64, request models.SaveNoteRequest) (models.Note, error) {
	log := logger.FromContext(ctx)

	if err := n.validator.Validate(ctx, request); err != nil {
		log.Warn().Err(err).Int64("user_id", userID).Msg("note failed validation")
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	note := request.Note(userID)
	if note.IsShareCopy && note.PublicID == "" {
		note.PublicID = n.uuidGenerator.Generate()
	}

	if err := n.noteRepository.SaveNote(ctx, &note); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("note save failed")
		return models.Note{}, fmt.Errorf("note save failed: %w", err)
	}

	return note, nil
}

// ListNotes returns the durable notes owned by userID, newest first.
func (n *noteService) ListNotes(ctx context.Context, userID int64) ([]models.Note, error) {
	notes, err := n.noteRepository.ListNotes(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("note listing failed: %w", err)
	}

	return notes, nil
}

// ReadSharedNote consumes the share copy behind publicID.
//
// The repository deletes and returns the row in one statement, so the
// payload this method hands back no longer exists anywhere on the server.
// [store.ErrShareNotFound] covers both never-existed and already-burned.
func (n *noteService) ReadSharedNote(ctx context.Context, publicID string) (models.Note, error) {
	log := logger.FromContext(ctx)

	if publicID == "" {
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidPublicID)
	}

	note, err := n.noteRepository.BurnSharedNote(ctx, publicID)
	if err != nil {
		log.Warn().Err(err).Str("public_id", publicID).Msg("shared note read failed")
		return models.Note{}, fmt.Errorf("shared note read failed: %w", err)
	}

	return note, nil
}

// DeleteNote validates the request and removes the note owned by userID.
// Deleting a note that is already gone succeeds.
func (n *noteService) DeleteNote(ctx context.Context, userID int64, request models.DeleteNoteRequest) error {
	log := logger.FromContext(ctx)

	if err := n.validator.Validate(ctx, request); err != nil {
		log.Warn().Err(err).Int64("user_id", userID).Msg("delete request failed validation")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := n.noteRepository.DeleteNote(ctx, userID, request.ID); err != nil {
		log.Err(err).Int64("user_id", userID).Int64("id", request.ID).Msg("note delete failed")
		return fmt.Errorf("note delete failed: %w", err)
	}

	return nil
}

// PurgeExpiredShares deletes share copies created before cutoff and reports
// how many rows were removed.
func (n *noteService) PurgeExpiredShares(ctx context.Context, cutoff time.Time) (int64, error) {
	purged, err := n.noteRepository.PurgeExpiredShares(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("share purge failed: %w", err)
	}

	if purged > 0 {
		n.logger.Info().Int64("purged", purged).Time("cutoff", cutoff).Msg("expired shares purged")
	}

	return purged, nil
}
