package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-progress-keeper/internal/service"
	"github.com/MKhiriev/go-progress-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newHandlerWithAppInfo builds a Handler whose AppInfoService is replaced
// with the provided mock.
func newHandlerWithAppInfo(t *testing.T, svc service.AppInfoService) *Handler {
	t.Helper()
	return newTestHandlerWith(t, &service.Services{AppInfoService: svc})
}

func TestGetServerVersion_WritesVersion(t *testing.T) {
	h := newHandlerWithAppInfo(t, &mockAppInfoService{
		version:   "1.2.3",
		buildInfo: models.NewAppBuildInfo("1.2.3", "2026-10-01", "abc123"),
	})

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()

	h.getServerVersion(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp versionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, versionResponse{Version: "1.2.3", BuildDate: "2026-10-01", BuildCommit: "abc123"}, resp)
}

func TestGetServerVersion_OmitsEmptyBuildInfo(t *testing.T) {
	h := newHandlerWithAppInfo(t, &mockAppInfoService{version: "0.1.0"})

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()

	h.getServerVersion(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"version":"0.1.0"}`, rec.Body.String())
}

func TestGetServerVersion_OmitsPlaceholderBuildInfo(t *testing.T) {
	h := newHandlerWithAppInfo(t, &mockAppInfoService{
		version:   "0.1.0",
		buildInfo: models.NewAppBuildInfo("", "", ""),
	})

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()

	h.getServerVersion(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"version":"0.1.0"}`, rec.Body.String())
}
