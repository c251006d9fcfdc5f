package models

// SaveNoteRequest is the body of POST /api/notes/save. All payload fields are
// opaque ciphertext; the server only checks presence, size and the declared
// image MIME type.
type SaveNoteRequest struct {
	// Content is the encrypted note body. Required.
	Content string `json:"content"`

	// PublicID is an optional client-chosen share identifier. When empty on
	// a share copy, the server assigns a random one.
	PublicID string `json:"public_id,omitempty"`

	// IsShareCopy marks the note as an ephemeral burn-after-read snapshot.
	IsShareCopy bool `json:"is_share_copy,omitempty"`

	// HasImage signals that ImageData, ImageType and ImageIV accompany the
	// note. When true, all three are required.
	HasImage bool `json:"has_image,omitempty"`

	// ImageData is the encrypted image payload.
	ImageData string `json:"image_data,omitempty"`

	// ImageType is the declared MIME type of the decrypted image.
	ImageType string `json:"image_type,omitempty"`

	// ImageIV is the image initialization vector as a JSON integer array.
	ImageIV string `json:"image_iv,omitempty"`
}

// Note converts the request into a [Note] owned by userID.
func (r SaveNoteRequest) Note(userID int64) Note {
	return Note{
		UserID:      userID,
		Content:     r.Content,
		PublicID:    r.PublicID,
		IsShareCopy: r.IsShareCopy,
		HasImage:    r.HasImage,
		ImageData:   r.ImageData,
		ImageType:   r.ImageType,
		ImageIV:     r.ImageIV,
	}
}

// DeleteNoteRequest is the body of POST /api/notes/delete.
type DeleteNoteRequest struct {
	// ID is the server-assigned identifier of the note to remove.
	ID int64 `json:"id"`
}
