package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestGetServerVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _, _, mockAppInfo := newTestHandler(t, ctrl)

	mockAppInfo.EXPECT().
		GetAppVersion(gomock.Any()).
		Return("1.2.3")

	r := httptest.NewRequest(http.MethodGet, "/api/version/", nil)
	w := httptest.NewRecorder()

	h.getServerVersion(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/plain", w.Header().Get("Content-Type"))
	assert.Equal(t, "1.2.3", w.Body.String())
}
