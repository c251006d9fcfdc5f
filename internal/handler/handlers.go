package handler

import (
	"github.com/MKhiriev/cipher-notes/internal/config"
	"github.com/MKhiriev/cipher-notes/internal/handler/http"
	"github.com/MKhiriev/cipher-notes/internal/logger"
	"github.com/MKhiriev/cipher-notes/internal/service"
)

// Handlers aggregates the transport handlers of the application. Only HTTP
// is served; the container form is kept so additional transports can be
// added without touching the wiring in main.
type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}, nil
}
