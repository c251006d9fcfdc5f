package models

import "time"

// Note is a single stored note. Content and every image field hold opaque
// ciphertext produced on the client; the server persists and returns them
// without ever interpreting or transforming the values.
type Note struct {
	// ID is the server-assigned monotonic identifier (primary key).
	ID int64 `json:"id"`

	// UserID is the owner of the note. Not exposed via JSON; it is derived
	// from the authenticated request context, never from the request body.
	UserID int64 `json:"-"`

	// Content is the encrypted note body. Always required and non-empty,
	// regardless of whether an image is attached.
	Content string `json:"content"`

	// PublicID is the opaque share identifier. Only meaningful for
	// share-copy notes; unique among active shares.
	PublicID string `json:"public_id,omitempty"`

	// IsShareCopy distinguishes an ephemeral share snapshot (deleted on
	// first read) from a durable note.
	IsShareCopy bool `json:"is_share_copy"`

	// HasImage indicates that ImageData, ImageType and ImageIV are all set.
	HasImage bool `json:"has_image"`

	// ImageData is the encrypted image payload, base64-expanded on the
	// client before transit.
	ImageData string `json:"image_data,omitempty"`

	// ImageType is the declared MIME type of the decrypted image.
	// Validated against the configured allow-list on save.
	ImageType string `json:"image_type,omitempty"`

	// ImageIV is the initialization vector the client used for the image
	// payload, serialized as a JSON array of integers (e.g. "[1,2,3]").
	ImageIV string `json:"image_iv,omitempty"`

	// CreatedAt is the server-side creation timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}
