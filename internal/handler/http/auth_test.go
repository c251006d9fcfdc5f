package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/cipher-notes/internal/service"
	"github.com/MKhiriev/cipher-notes/internal/store"
	"github.com/MKhiriev/cipher-notes/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── register ────────────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockAuth, _, _ := newTestHandler(t, ctrl)

	registered := models.User{UserID: 1, Login: "john"}

	mockAuth.EXPECT().
		RegisterUser(gomock.Any(), gomock.Any()).
		Return(registered, nil)
	mockAuth.EXPECT().
		CreateToken(gomock.Any(), registered).
		Return(models.Token{SignedString: "signed-jwt"}, nil)

	r := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(`{"login":"john","password":"secret"}`))
	w := httptest.NewRecorder()

	h.register(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Bearer signed-jwt", w.Header().Get("Authorization"))
}

func TestRegister_InvalidJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _ := newTestHandler(t, ctrl)

	r := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(`{not json`))
	w := httptest.NewRecorder()

	h.register(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegister_LoginTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockAuth, _, _ := newTestHandler(t, ctrl)

	mockAuth.EXPECT().
		RegisterUser(gomock.Any(), gomock.Any()).
		Return(models.User{}, store.ErrLoginAlreadyExists)

	r := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(`{"login":"john","password":"secret"}`))
	w := httptest.NewRecorder()

	h.register(w, r)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegister_InvalidData(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockAuth, _, _ := newTestHandler(t, ctrl)

	mockAuth.EXPECT().
		RegisterUser(gomock.Any(), gomock.Any()).
		Return(models.User{}, service.ErrInvalidDataProvided)

	r := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(`{"login":""}`))
	w := httptest.NewRecorder()

	h.register(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// ── login ───────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, mockAuth, _, _ := newTestHandler(t, ctrl)

	found := models.User{UserID: 7, Login: "john"}

	mockAuth.EXPECT().
		Login(gomock.Any(), gomock.Any()).
		Return(found, nil)
	mockAuth.EXPECT().
		CreateToken(gomock.Any(), found).
		Return(models.Token{SignedString: "signed-jwt"}, nil)

	r := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"login":"john","password":"secret"}`))
	w := httptest.NewRecorder()

	h.login(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Bearer signed-jwt", w.Header().Get("Authorization"))
}

func TestLogin_WrongCredentials(t *testing.T) {
	tests := []struct {
		name     string
		loginErr error
	}{
		{"wrong password", service.ErrWrongPassword},
		{"unknown login", store.ErrNoUserWasFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			h, mockAuth, _, _ := newTestHandler(t, ctrl)

			mockAuth.EXPECT().
				Login(gomock.Any(), gomock.Any()).
				Return(models.User{}, tt.loginErr)

			r := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"login":"john","password":"bad"}`))
			w := httptest.NewRecorder()

			h.login(w, r)

			// both cases must look identical to the caller
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), "invalid login/password")
		})
	}
}

func TestLogin_InvalidJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, _ := newTestHandler(t, ctrl)

	r := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`not json`))
	w := httptest.NewRecorder()

	h.login(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
