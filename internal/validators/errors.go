package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID         = errors.New("invalid user ID")
	ErrEmptyContent          = errors.New("content is required")
	ErrIncompleteImageBundle = errors.New("image fields must be provided together")
	ErrImageTooLarge         = errors.New("image data exceeds the maximum allowed size")
	ErrUnsupportedImageType  = errors.New("unsupported image type")
	ErrInvalidNoteID         = errors.New("invalid note ID")
	ErrInvalidPublicID       = errors.New("invalid public id")
)
