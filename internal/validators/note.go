package validators

import (
	"context"
	"slices"

	"github.com/MKhiriev/cipher-notes/internal/config"
	"github.com/MKhiriev/cipher-notes/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate or internal validation methods
// to restrict validation to a subset of fields (field-level scoping).
const (
	// FieldUserID targets the owner identifier of a note.
	FieldUserID = "user_id"

	// FieldContent targets the encrypted note body.
	FieldContent = "content"

	// FieldImage targets the image bundle as a whole: the has_image flag
	// together with image_data, image_type and image_iv.
	FieldImage = "image"

	// FieldPublicID targets the client-chosen share identifier.
	FieldPublicID = "public_id"

	// FieldNoteID targets the server-assigned note identifier in delete requests.
	FieldNoteID = "note_id"
)

// NoteValidator implements the Validator interface for note-related
// domain models: Note, SaveNoteRequest and DeleteNoteRequest.
//
// The image payload ceiling and the MIME type allow-list come from
// [config.Notes], so deployments can tune the limits without code changes.
//
// It supports both value and pointer receivers for every model type
// and allows optional field-level scoping via variadic field name arguments.
type NoteValidator struct {
	cfg config.Notes
}

// NewNoteValidator constructs a new NoteValidator with the provided limits
// and returns it as the Validator interface.
func NewNoteValidator(cfg config.Notes) Validator {
	return &NoteValidator{cfg: cfg}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.Note / *models.Note
//   - models.SaveNoteRequest / *models.SaveNoteRequest
//   - models.DeleteNoteRequest / *models.DeleteNoteRequest
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// a sensible default set of fields is validated.
func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Note:
		return v.validateNote(ctx, value, fields...)
	case *models.Note:
		return v.validateNote(ctx, *value, fields...)

	case models.SaveNoteRequest:
		return v.validateSaveNoteRequest(ctx, value, fields...)
	case *models.SaveNoteRequest:
		return v.validateSaveNoteRequest(ctx, *value, fields...)

	case models.DeleteNoteRequest:
		return v.validateDeleteNoteRequest(ctx, value, fields...)
	case *models.DeleteNoteRequest:
		return v.validateDeleteNoteRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateNote validates a single Note model.
//
// Default validated fields (when none specified):
// UserID, Content, Image, PublicID.
//
// The image bundle is all-or-nothing: HasImage set means image_data,
// image_type and image_iv must all be present; HasImage unset means all
// three must be absent. The payload itself is never decoded; only its
// length and the declared MIME type are checked.
//
// Returns the first encountered validation error or nil.
func (v *NoteValidator) validateNote(ctx context.Context, note models.Note, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldContent, FieldImage, FieldPublicID}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if note.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldContent:
			if note.Content == "" {
				return ErrEmptyContent
			}
		case FieldImage:
			if err := v.validateImageBundle(note); err != nil {
				return err
			}
		case FieldPublicID:
			// A client-chosen share identifier is only meaningful on a
			// share copy; durable notes are never publicly addressable.
			if note.PublicID != "" && !note.IsShareCopy {
				return ErrInvalidPublicID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateImageBundle enforces the all-or-nothing rule on the image fields
// plus the size ceiling and the MIME allow-list.
func (v *NoteValidator) validateImageBundle(note models.Note) error {
	if !note.HasImage {
		if note.ImageData != "" || note.ImageType != "" || note.ImageIV != "" {
			return ErrIncompleteImageBundle
		}
		return nil
	}

	if note.ImageData == "" || note.ImageType == "" || note.ImageIV == "" {
		return ErrIncompleteImageBundle
	}

	if len(note.ImageData) > v.cfg.ImageMaxChars {
		return ErrImageTooLarge
	}

	if !slices.Contains(v.cfg.ImageTypes, note.ImageType) {
		return ErrUnsupportedImageType
	}

	return nil
}

// validateSaveNoteRequest validates a SaveNoteRequest. The request carries
// no owner yet, so the default field set omits UserID.
//
// Default validated fields: Content, Image, PublicID.
func (v *NoteValidator) validateSaveNoteRequest(ctx context.Context, request models.SaveNoteRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldContent, FieldImage, FieldPublicID}
	}

	return v.validateNote(ctx, request.Note(0), fields...)
}

// validateDeleteNoteRequest validates a DeleteNoteRequest.
//
// Default validated fields: NoteID.
func (v *NoteValidator) validateDeleteNoteRequest(ctx context.Context, request models.DeleteNoteRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNoteID}
	}

	for _, f := range fields {
		switch f {
		case FieldNoteID:
			if request.ID <= 0 {
				return ErrInvalidNoteID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
