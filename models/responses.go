package models

// SaveNoteResponse acknowledges a successful save. The stored content is
// never echoed back; PublicID is populated only when the server assigned a
// share identifier on behalf of the client.
type SaveNoteResponse struct {
	Success  bool   `json:"success"`
	PublicID string `json:"public_id,omitempty"`
}

// DeleteNoteResponse acknowledges a delete. Delete is idempotent, so Success
// is true even when no row matched the given identifier.
type DeleteNoteResponse struct {
	Success bool `json:"success"`
}

// ListNotesResponse carries every durable note of the owner, newest first,
// image fields included so the client can decrypt and render without a
// second round trip.
type ListNotesResponse struct {
	// Notes is the list of durable notes ordered by creation time,
	// most recent first.
	Notes []Note `json:"notes"`

	// Length is the total number of entries in Notes. Provided for
	// convenience so the client can pre-allocate or validate the response
	// without iterating the slice.
	Length int `json:"length"`
}

// SharedNoteResponse is the payload of a successful burn-after-read fetch.
// By the time the client receives it, the share row no longer exists.
type SharedNoteResponse struct {
	Content   string `json:"content"`
	HasImage  bool   `json:"has_image"`
	ImageData string `json:"image_data,omitempty"`
	ImageType string `json:"image_type,omitempty"`
	ImageIV   string `json:"image_iv,omitempty"`
}
