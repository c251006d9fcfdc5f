package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (login, password_hash, name)
    VALUES ($1, $2, $3)
    RETURNING user_id, login, password_hash, name, created_at;`

	findUserByLogin = `SELECT user_id, login, password_hash, name, created_at
    FROM users
    WHERE login = $1;`

	saveNote = `INSERT INTO notes (
			user_id,
			content,
			public_id,
			is_share_copy,
			has_image,
			image_data,
			image_type,
			image_iv
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at;`

	// The read and the delete are one statement: the row is gone before any
	// caller sees its fields, so two concurrent reads of the same public_id
	// cannot both succeed.
	burnSharedNote = `DELETE FROM notes
		WHERE public_id = $1 AND is_share_copy
		RETURNING id, content, has_image, image_data, image_type, image_iv;`

	deleteNote = `DELETE FROM notes
		WHERE id = $1 AND user_id = $2;`

	purgeExpiredShares = `DELETE FROM notes
		WHERE is_share_copy AND created_at < $1;`
)

// noteColumns is the canonical column order used by list queries and their
// row scans.
var noteColumns = []string{
	"id",
	"user_id",
	"content",
	"public_id",
	"is_share_copy",
	"has_image",
	"image_data",
	"image_type",
	"image_iv",
	"created_at",
}

// buildListNotesQuery composes the durable-notes listing for one owner:
// share copies are excluded, newest first.
func buildListNotesQuery(userID int64) (string, []any, error) {
	return sq.Select(noteColumns...).
		From("notes").
		Where(sq.Eq{"user_id": userID, "is_share_copy": false}).
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
}
