// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/cipher-notes/internal/config"
	"github.com/MKhiriev/cipher-notes/internal/logger"
	"github.com/MKhiriev/cipher-notes/internal/mock"
	"github.com/MKhiriev/cipher-notes/internal/store"
	"github.com/MKhiriev/cipher-notes/internal/validators"
	"github.com/MKhiriev/cipher-notes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testNoteConfig() config.Notes {
	return config.Notes{
		ImageMaxChars: 1000,
		ImageTypes:    []string{"image/png", "image/jpeg"},
	}
}

func newTestNoteSvc(t *testing.T, ctrl *gomock.Controller) (NoteService, *mock.MockNoteRepository) {
	t.Helper()
	mockNotes := mock.NewMockNoteRepository(ctrl)
	svc := NewNoteService(mockNotes, testNoteConfig(), logger.Nop())
	return svc, mockNotes
}

// ── SaveNote ─────────────────────────────────────────────────────────────────

func TestNoteService_SaveNote_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockNotes := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	mockNotes.EXPECT().
		SaveNote(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, note *models.Note) error {
			assert.Equal(t, int64(42), note.UserID)
			assert.Equal(t, "encrypted", note.Content)
			note.ID = 1
			note.CreatedAt = time.Now()
			return nil
		})

	saved, err := svc.SaveNote(ctx, 42, models.SaveNoteRequest{Content: "encrypted"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), saved.ID)
	assert.False(t, saved.CreatedAt.IsZero())
}

func TestNoteService_SaveNote_AssignsPublicIDForShareCopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockNotes := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	mockNotes.EXPECT().
		SaveNote(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, note *models.Note) error {
			assert.True(t, note.IsShareCopy)
			assert.NotEmpty(t, note.PublicID, "share copy without public id must get one assigned")
			return nil
		})

	saved, err := svc.SaveNote(ctx, 42, models.SaveNoteRequest{
		Content:     "encrypted",
		IsShareCopy: true,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, saved.PublicID)
}

func TestNoteService_SaveNote_KeepsClientChosenPublicID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockNotes := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	mockNotes.EXPECT().
		SaveNote(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, note *models.Note) error {
			assert.Equal(t, "my-share-id", note.PublicID)
			return nil
		})

	_, err := svc.SaveNote(ctx, 42, models.SaveNoteRequest{
		Content:     "encrypted",
		IsShareCopy: true,
		PublicID:    "my-share-id",
	})

	require.NoError(t, err)
}

func TestNoteService_SaveNote_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		request models.SaveNoteRequest
		wantErr error
	}{
		{
			name:    "empty content",
			request: models.SaveNoteRequest{Content: ""},
			wantErr: validators.ErrEmptyContent,
		},
		{
			name: "incomplete image bundle",
			request: models.SaveNoteRequest{
				Content:  "encrypted",
				HasImage: true,
				ImageData: "payload",
			},
			wantErr: validators.ErrIncompleteImageBundle,
		},
		{
			name: "unsupported image type",
			request: models.SaveNoteRequest{
				Content:   "encrypted",
				HasImage:  true,
				ImageData: "payload",
				ImageType: "image/tiff",
				ImageIV:   "[1,2,3]",
			},
			wantErr: validators.ErrUnsupportedImageType,
		},
		{
			name: "public id on durable note",
			request: models.SaveNoteRequest{
				Content:  "encrypted",
				PublicID: "share-abc",
			},
			wantErr: validators.ErrInvalidPublicID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, _ := newTestNoteSvc(t, ctrl)

			_, err := svc.SaveNote(context.Background(), 42, tt.request)

			assert.ErrorIs(t, err, ErrInvalidDataProvided)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNoteService_SaveNote_PublicIDCollision(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockNotes := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	mockNotes.EXPECT().
		SaveNote(ctx, gomock.Any()).
		Return(store.ErrPublicIDAlreadyExists)

	_, err := svc.SaveNote(ctx, 42, models.SaveNoteRequest{
		Content:     "encrypted",
		IsShareCopy: true,
		PublicID:    "taken",
	})

	assert.ErrorIs(t, err, store.ErrPublicIDAlreadyExists)
}

// ── ListNotes ────────────────────────────────────────────────────────────────

func TestNoteService_ListNotes_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockNotes := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	expected := []models.Note{
		{ID: 2, UserID: 42, Content: "newer"},
		{ID: 1, UserID: 42, Content: "older"},
	}

	mockNotes.EXPECT().
		ListNotes(ctx, int64(42)).
		Return(expected, nil)

	notes, err := svc.ListNotes(ctx, 42)

	require.NoError(t, err)
	assert.Equal(t, expected, notes)
}

func TestNoteService_ListNotes_RepositoryFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockNotes := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	mockNotes.EXPECT().
		ListNotes(ctx, int64(42)).
		Return(nil, errors.New("db unavailable"))

	_, err := svc.ListNotes(ctx, 42)
	assert.Error(t, err)
}

// ── ReadSharedNote ───────────────────────────────────────────────────────────

func TestNoteService_ReadSharedNote_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockNotes := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	burned := models.Note{
		ID:          9,
		Content:     "shared-ciphertext",
		PublicID:    "share-abc",
		IsShareCopy: true,
	}

	mockNotes.EXPECT().
		BurnSharedNote(ctx, "share-abc").
		Return(burned, nil)

	note, err := svc.ReadSharedNote(ctx, "share-abc")

	require.NoError(t, err)
	assert.Equal(t, burned, note)
}

func TestNoteService_ReadSharedNote_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockNotes := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	mockNotes.EXPECT().
		BurnSharedNote(ctx, "ghost").
		Return(models.Note{}, store.ErrShareNotFound)

	_, err := svc.ReadSharedNote(ctx, "ghost")
	assert.ErrorIs(t, err, store.ErrShareNotFound)
}

func TestNoteService_ReadSharedNote_EmptyPublicID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestNoteSvc(t, ctrl)

	_, err := svc.ReadSharedNote(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ── DeleteNote ───────────────────────────────────────────────────────────────

func TestNoteService_DeleteNote_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockNotes := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	mockNotes.EXPECT().
		DeleteNote(ctx, int64(42), int64(5)).
		Return(nil)

	err := svc.DeleteNote(ctx, 42, models.DeleteNoteRequest{ID: 5})
	assert.NoError(t, err)
}

func TestNoteService_DeleteNote_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestNoteSvc(t, ctrl)

	err := svc.DeleteNote(context.Background(), 42, models.DeleteNoteRequest{ID: 0})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestNoteService_DeleteNote_RepositoryFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockNotes := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	mockNotes.EXPECT().
		DeleteNote(ctx, int64(42), int64(5)).
		Return(errors.New("db unavailable"))

	err := svc.DeleteNote(ctx, 42, models.DeleteNoteRequest{ID: 5})
	assert.Error(t, err)
}

// ── PurgeExpiredShares ───────────────────────────────────────────────────────

func TestNoteService_PurgeExpiredShares(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockNotes := newTestNoteSvc(t, ctrl)
	ctx := context.Background()
	cutoff := time.Now().Add(-7 * 24 * time.Hour)

	mockNotes.EXPECT().
		PurgeExpiredShares(ctx, cutoff).
		Return(int64(4), nil)

	purged, err := svc.PurgeExpiredShares(ctx, cutoff)

	require.NoError(t, err)
	assert.Equal(t, int64(4), purged)
}

func TestNoteService_PurgeExpiredShares_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockNotes := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	mockNotes.EXPECT().
		PurgeExpiredShares(ctx, gomock.Any()).
		Return(int64(0), errors.New("db unavailable"))

	_, err := svc.PurgeExpiredShares(ctx, time.Now())
	assert.Error(t, err)
}
