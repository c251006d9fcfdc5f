package http

import (
	"net/http"

	"github.com/MKhiriev/cipher-notes/internal/logger"
	"github.com/MKhiriev/cipher-notes/internal/utils"
	"github.com/MKhiriev/cipher-notes/models"
	"github.com/go-chi/chi/v5"
)

// readSharedNote serves GET /api/share/{publicID}: the burn-after-read
// fetch. A successful response is also the share's destruction: the row is
// already gone when the payload leaves the server. Never-existed and
// already-burned identifiers are both answered with 404 so the URL alone
// reveals nothing.
func (h *Handler) readSharedNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	publicID := chi.URLParam(r, "publicID")

	note, err := h.services.NoteService.ReadSharedNote(ctx, publicID)
	if err != nil {
		log.Warn().Err(err).Str("func", "*Handler.readSharedNote").Msg("shared note not available")
		http.Error(w, "shared note not found", statusFromError(err))
		return
	}

	response := models.SharedNoteResponse{
		Content:   note.Content,
		HasImage:  note.HasImage,
		ImageData: note.ImageData,
		ImageType: note.ImageType,
		ImageIV:   note.ImageIV,
	}

	utils.WriteJSON(w, response, http.StatusOK)
}
