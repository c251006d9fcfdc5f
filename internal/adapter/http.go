package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/cipher-notes/internal/logger"
	"github.com/MKhiriev/cipher-notes/internal/utils"
	"github.com/MKhiriev/cipher-notes/models"
	"github.com/go-resty/resty/v2"
)

// Config holds the settings of the HTTP server adapter.
type Config struct {
	// HTTPAddress is the base address of the cipher-notes server, with or
	// without a scheme (e.g. "localhost:8080" or "https://notes.example.com").
	HTTPAddress string

	// RequestTimeout bounds every request issued through the adapter.
	RequestTimeout time.Duration
}

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// cfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(cfg Config, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the user credentials to
// POST /api/auth/register. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken. Returns an error if
// the request fails, the server returns a non-2xx status, or the token
// cannot be parsed.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/auth/register")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return fmt.Errorf("register parse bearer token: %w", err)
	}

	h.SetToken(token)
	return nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/login. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/auth/login")
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	return nil
}

// SaveNote implements [ServerAdapter]. It POSTs the encrypted note to
// POST /api/notes/save and returns the decoded acknowledgement. Requires a
// valid bearer token. Returns [ErrConflict] (wrapped) if the chosen public
// ID is already taken.
func (h *httpServerAdapter) SaveNote(ctx context.Context, req models.SaveNoteRequest) (models.SaveNoteResponse, error) {
	var response models.SaveNoteResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&response).
		Post("/api/notes/save")
	if err != nil {
		return models.SaveNoteResponse{}, fmt.Errorf("save note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SaveNoteResponse{}, err
	}

	return response, nil
}

// ListNotes implements [ServerAdapter]. It GETs /api/notes/list and returns
// the decoded note slice. Requires a valid bearer token.
func (h *httpServerAdapter) ListNotes(ctx context.Context) ([]models.Note, error) {
	resp, err := h.authedRequest(ctx).Get("/api/notes/list")
	if err != nil {
		return nil, fmt.Errorf("list notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var response models.ListNotesResponse
	if err = json.Unmarshal(resp.Body(), &response); err != nil {
		return nil, fmt.Errorf("decode list notes response: %w", err)
	}

	return response.Notes, nil
}

// ReadSharedNote implements [ServerAdapter]. It GETs /api/share/{publicID}
// without authentication. The call consumes the share: a repeat returns
// [ErrNotFound], indistinguishable from an identifier that never existed.
func (h *httpServerAdapter) ReadSharedNote(ctx context.Context, publicID string) (models.SharedNoteResponse, error) {
	var response models.SharedNoteResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&response).
		Get("/api/share/" + url.PathEscape(publicID))
	if err != nil {
		return models.SharedNoteResponse{}, fmt.Errorf("read shared note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SharedNoteResponse{}, err
	}

	return response, nil
}

// DeleteNote implements [ServerAdapter]. It POSTs the note ID to
// POST /api/notes/delete. Requires a valid bearer token.
func (h *httpServerAdapter) DeleteNote(ctx context.Context, req models.DeleteNoteRequest) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/notes/delete")
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}

	return mapHTTPError(resp)
}

// GetServerVersion implements [ServerAdapter]. It GETs /api/version/ and
// returns the plain-text version string.
func (h *httpServerAdapter) GetServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("get server version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
