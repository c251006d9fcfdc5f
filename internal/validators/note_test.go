// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/cipher-notes/internal/config"
	"github.com/MKhiriev/cipher-notes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func testNotesConfig() config.Notes {
	return config.Notes{
		ImageMaxChars: 100,
		ImageTypes:    []string{"image/png", "image/jpeg", "image/jpg", "image/gif", "image/webp"},
	}
}

func validNote() models.Note {
	return models.Note{
		UserID:  1,
		Content: "encrypted-note-body",
	}
}

func validNoteWithImage() models.Note {
	note := validNote()
	note.HasImage = true
	note.ImageData = "encrypted-image-payload"
	note.ImageType = "image/png"
	note.ImageIV = "[1,2,3,4,5,6,7,8,9,10,11,12]"
	return note
}

// ---------------------------------------------------------------------------
// Note validation
// ---------------------------------------------------------------------------

func TestNoteValidator_ValidNote(t *testing.T) {
	v := NewNoteValidator(testNotesConfig())

	require.NoError(t, v.Validate(context.Background(), validNote()))
	require.NoError(t, v.Validate(context.Background(), validNoteWithImage()))
}

func TestNoteValidator_PointerForms(t *testing.T) {
	v := NewNoteValidator(testNotesConfig())

	note := validNote()
	assert.NoError(t, v.Validate(context.Background(), &note))

	request := models.SaveNoteRequest{Content: "encrypted"}
	assert.NoError(t, v.Validate(context.Background(), &request))

	deleteRequest := models.DeleteNoteRequest{ID: 1}
	assert.NoError(t, v.Validate(context.Background(), &deleteRequest))
}

func TestNoteValidator_Note(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.Note)
		wantErr error
	}{
		{
			name:    "missing user id",
			mutate:  func(n *models.Note) { n.UserID = 0 },
			wantErr: ErrInvalidUserID,
		},
		{
			name:    "empty content",
			mutate:  func(n *models.Note) { n.Content = "" },
			wantErr: ErrEmptyContent,
		},
		{
			name:    "public id on a durable note",
			mutate:  func(n *models.Note) { n.PublicID = "share-abc" },
			wantErr: ErrInvalidPublicID,
		},
		{
			name: "public id on a share copy is allowed",
			mutate: func(n *models.Note) {
				n.PublicID = "share-abc"
				n.IsShareCopy = true
			},
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewNoteValidator(testNotesConfig())

			note := validNote()
			tt.mutate(&note)

			err := v.Validate(context.Background(), note)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestNoteValidator_ImageBundle(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.Note)
		wantErr error
	}{
		{
			name:    "complete bundle",
			mutate:  func(n *models.Note) {},
			wantErr: nil,
		},
		{
			name:    "missing image data",
			mutate:  func(n *models.Note) { n.ImageData = "" },
			wantErr: ErrIncompleteImageBundle,
		},
		{
			name:    "missing image type",
			mutate:  func(n *models.Note) { n.ImageType = "" },
			wantErr: ErrIncompleteImageBundle,
		},
		{
			name:    "missing image iv",
			mutate:  func(n *models.Note) { n.ImageIV = "" },
			wantErr: ErrIncompleteImageBundle,
		},
		{
			name: "image fields without has_image flag",
			mutate: func(n *models.Note) {
				n.HasImage = false
			},
			wantErr: ErrIncompleteImageBundle,
		},
		{
			name: "image data at the ceiling",
			mutate: func(n *models.Note) {
				n.ImageData = strings.Repeat("a", 100)
			},
			wantErr: nil,
		},
		{
			name: "image data above the ceiling",
			mutate: func(n *models.Note) {
				n.ImageData = strings.Repeat("a", 101)
			},
			wantErr: ErrImageTooLarge,
		},
		{
			name:    "unsupported mime type",
			mutate:  func(n *models.Note) { n.ImageType = "image/svg+xml" },
			wantErr: ErrUnsupportedImageType,
		},
		{
			name:    "mime type is case sensitive",
			mutate:  func(n *models.Note) { n.ImageType = "IMAGE/PNG" },
			wantErr: ErrUnsupportedImageType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewNoteValidator(testNotesConfig())

			note := validNoteWithImage()
			tt.mutate(&note)

			err := v.Validate(context.Background(), note)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestNoteValidator_NoImageMeansNoImageFields(t *testing.T) {
	v := NewNoteValidator(testNotesConfig())

	note := validNote()
	note.ImageIV = "[1,2,3]"

	err := v.Validate(context.Background(), note)
	assert.ErrorIs(t, err, ErrIncompleteImageBundle)
}

// ---------------------------------------------------------------------------
// SaveNoteRequest validation
// ---------------------------------------------------------------------------

func TestNoteValidator_SaveNoteRequest(t *testing.T) {
	v := NewNoteValidator(testNotesConfig())

	// UserID is not known yet at request time, so its absence must not fail.
	request := models.SaveNoteRequest{Content: "encrypted"}
	assert.NoError(t, v.Validate(context.Background(), request))

	request.Content = ""
	assert.ErrorIs(t, v.Validate(context.Background(), request), ErrEmptyContent)

	request = models.SaveNoteRequest{
		Content:  "encrypted",
		HasImage: true,
	}
	assert.ErrorIs(t, v.Validate(context.Background(), request), ErrIncompleteImageBundle)
}

// ---------------------------------------------------------------------------
// DeleteNoteRequest validation
// ---------------------------------------------------------------------------

func TestNoteValidator_DeleteNoteRequest(t *testing.T) {
	v := NewNoteValidator(testNotesConfig())

	assert.NoError(t, v.Validate(context.Background(), models.DeleteNoteRequest{ID: 42}))
	assert.ErrorIs(t, v.Validate(context.Background(), models.DeleteNoteRequest{ID: 0}), ErrInvalidNoteID)
	assert.ErrorIs(t, v.Validate(context.Background(), models.DeleteNoteRequest{ID: -1}), ErrInvalidNoteID)
}

// ---------------------------------------------------------------------------
// Dispatch
// ---------------------------------------------------------------------------

func TestNoteValidator_UnsupportedType(t *testing.T) {
	v := NewNoteValidator(testNotesConfig())

	assert.ErrorIs(t, v.Validate(context.Background(), "not a model"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
}

func TestNoteValidator_UnknownField(t *testing.T) {
	v := NewNoteValidator(testNotesConfig())

	err := v.Validate(context.Background(), validNote(), "no_such_field")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestNoteValidator_FieldScoping(t *testing.T) {
	v := NewNoteValidator(testNotesConfig())

	// Only the content field is checked, so the zero UserID passes.
	note := models.Note{Content: "encrypted"}
	assert.NoError(t, v.Validate(context.Background(), note, FieldContent))
}
