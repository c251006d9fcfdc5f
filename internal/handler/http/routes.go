package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization: registration, login, version check, and
	// the public share link. Share recipients do not have accounts, so the
	// burn-after-read endpoint must stay reachable without a token.
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/version/", h.getServerVersion)
		r.Get("/api/share/{publicID}", h.readSharedNote)
	})

	// routes that operate on the caller's own notes require a valid JWT
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/notes/save", h.saveNote)
		r.Get("/api/notes/list", h.listNotes)
		r.Post("/api/notes/delete", h.deleteNote)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
