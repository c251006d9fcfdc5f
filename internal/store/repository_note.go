package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/cipher-notes/internal/logger"
	"github.com/MKhiriev/cipher-notes/models"
)

// noteRepository is the SQL-backed implementation of [NoteRepository].
// It executes all note CRUD operations directly against the "notes" table
// using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced
// with structured fields (user_id, note id, public_id, etc.).
type noteRepository struct {
	*DB
	logger *logger.Logger
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
//
// The logger parameter is stored for fallback logging; most methods prefer
// the context-scoped logger obtained via [logger.FromContext].
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	return &noteRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveNote inserts a single note row. The server-assigned ID and CreatedAt
// are written back into note via the INSERT … RETURNING clause.
//
// Every payload field is bound as an opaque string parameter; nothing is
// inspected or rewritten on the way to the database.
//
// Error handling:
//   - unique-constraint violation on the partial share index (either
//     dialect) → [ErrPublicIDAlreadyExists].
//   - Any other execution failure → wrapped [ErrExecutingQuery].
func (p *noteRepository) SaveNote(ctx context.Context, note *models.Note) error {
	log := logger.FromContext(ctx)

	log.Debug().
		Int64("user_id", note.UserID).
		Bool("is_share_copy", note.IsShareCopy).
		Bool("has_image", note.HasImage).
		Msg("saving note record")

	err := p.DB.QueryRowContext(ctx, saveNote,
		note.UserID,
		note.Content,
		nullableString(note.PublicID),
		note.IsShareCopy,
		note.HasImage,
		nullableString(note.ImageData),
		nullableString(note.ImageType),
		nullableString(note.ImageIV),
	).Scan(&note.ID, &note.CreatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			log.Warn().
				Str("func", "noteRepository.SaveNote").
				Str("public_id", note.PublicID).
				Msg("share public id collision")
			return ErrPublicIDAlreadyExists
		}

		log.Err(err).
			Str("func", "noteRepository.SaveNote").
			Int64("user_id", note.UserID).
			Msg("failed to save note")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// ListNotes retrieves every durable note owned by the given user, newest
// first. Share copies never appear in listings; they are reachable only
// through their public identifier.
//
// Returns an empty slice when no records are found.
func (p *noteRepository) ListNotes(ctx context.Context, userID int64) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListNotesQuery(userID)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.ListNotes").
			Int64("user_id", userID).
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, queryErr := p.DB.QueryContext(ctx, query, args...)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "noteRepository.ListNotes").
			Int64("user_id", userID).
			Msg("failed to execute query for listing notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	notes := make([]models.Note, 0, 50)

	for rows.Next() {
		var note models.Note
		var publicID, imageData, imageType, imageIV sql.NullString

		scanErr := rows.Scan(
			&note.ID,
			&note.UserID,
			&note.Content,
			&publicID,
			&note.IsShareCopy,
			&note.HasImage,
			&imageData,
			&imageType,
			&imageIV,
			&note.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "noteRepository.ListNotes").
				Int64("user_id", userID).
				Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		note.PublicID = publicID.String
		note.ImageData = imageData.String
		note.ImageType = imageType.String
		note.ImageIV = imageIV.String

		notes = append(notes, note)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "noteRepository.ListNotes").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return notes, nil
}

// BurnSharedNote consumes the share copy matching publicID.
//
// The lookup and the removal are one conditional DELETE … RETURNING
// statement executed at the storage layer, so the burn-after-read guarantee
// holds across any number of concurrent callers and server instances: the
// database hands the deleted row to exactly one of them.
//
// Returns [ErrShareNotFound] when no active share matches, whether it
// never existed or was already consumed is deliberately indistinguishable.
func (p *noteRepository) BurnSharedNote(ctx context.Context, publicID string) (models.Note, error) {
	log := logger.FromContext(ctx)

	var note models.Note
	var imageData, imageType, imageIV sql.NullString

	err := p.DB.QueryRowContext(ctx, burnSharedNote, publicID).Scan(
		&note.ID,
		&note.Content,
		&note.HasImage,
		&imageData,
		&imageType,
		&imageIV,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Absent and already-burned produce the same outcome on purpose.
			log.Warn().
				Str("func", "noteRepository.BurnSharedNote").
				Str("public_id", publicID).
				Msg("no active share matched")
			return models.Note{}, ErrShareNotFound
		}

		log.Err(err).
			Str("func", "noteRepository.BurnSharedNote").
			Str("public_id", publicID).
			Msg("failed to execute burn query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	note.PublicID = publicID
	note.IsShareCopy = true
	note.ImageData = imageData.String
	note.ImageType = imageType.String
	note.ImageIV = imageIV.String

	log.Info().
		Str("func", "noteRepository.BurnSharedNote").
		Str("public_id", publicID).
		Int64("id", note.ID).
		Msg("share consumed and deleted")

	return note, nil
}

// DeleteNote removes the note with the given id owned by userID. The row is
// deleted with every column it has, image payload included, so no orphaned
// blobs survive.
//
// Deleting an id that does not exist (or belongs to another user) is a
// no-op, keeping the operation safe to retry unconditionally.
func (p *noteRepository) DeleteNote(ctx context.Context, userID, noteID int64) error {
	log := logger.FromContext(ctx)

	result, err := p.DB.ExecContext(ctx, deleteNote, noteID, userID)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.DeleteNote").
			Int64("user_id", userID).
			Int64("id", noteID).
			Msg("failed to execute delete statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.DeleteNote").
			Int64("id", noteID).
			Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		log.Debug().
			Str("func", "noteRepository.DeleteNote").
			Int64("user_id", userID).
			Int64("id", noteID).
			Msg("delete matched no rows")
	}

	return nil
}

// PurgeExpiredShares removes every share-copy row created before cutoff and
// reports how many were deleted. Used by the retention worker; safe to run
// from multiple instances since the DELETE itself is the only coordination.
func (p *noteRepository) PurgeExpiredShares(ctx context.Context, cutoff time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := p.DB.ExecContext(ctx, purgeExpiredShares, cutoff)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.PurgeExpiredShares").
			Time("cutoff", cutoff).
			Msg("failed to execute purge statement")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	purged, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.PurgeExpiredShares").
			Msg("failed to read affected rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return purged, nil
}

// nullableString maps an empty Go string to SQL NULL so that optional
// columns (public_id, image fields) stay NULL instead of storing ''.
func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
