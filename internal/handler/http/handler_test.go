package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-progress-keeper/internal/config"
	"github.com/MKhiriev/go-progress-keeper/internal/logger"
	"github.com/MKhiriev/go-progress-keeper/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_ReturnsNonNil(t *testing.T) {
	h := NewHandler(&service.Services{}, newTestCalculator(), config.Server{}, logger.Nop())

	require.NotNil(t, h)
	assert.NotNil(t, h.newTraceID)
}

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	calc := newTestCalculator()
	log := logger.Nop()

	h := NewHandler(svc, calc, config.Server{RequestTimeout: 5 * time.Second}, log)

	assert.Equal(t, svc, h.services)
	assert.Equal(t, calc, h.calc)
	assert.Equal(t, log, h.logger)
	assert.Equal(t, 5*time.Second, h.requestTimeout)
}

func TestNewHandler_IndependentInstances(t *testing.T) {
	h1 := NewHandler(&service.Services{}, newTestCalculator(), config.Server{}, logger.Nop())
	h2 := NewHandler(&service.Services{}, newTestCalculator(), config.Server{}, logger.Nop())

	assert.NotSame(t, h1, h2)
}

// ─────────────────────────────────────────────
// Init: route registration
// ─────────────────────────────────────────────

func TestInit_ReturnsRouter(t *testing.T) {
	router := newTestHandlerWith(t, &service.Services{}).Init()

	require.NotNil(t, router)
}

// routeCase describes a single expected route.
type routeCase struct {
	method string
	path   string
}

// protectedRoutes lists every route behind the auth middleware.
var protectedRoutes = []routeCase{
	{http.MethodGet, "/api/user/profile"},
	{http.MethodPut, "/api/user/profile"},
	{http.MethodGet, "/api/todos"},
	{http.MethodPost, "/api/todos"},
	{http.MethodPut, "/api/todos/t1"},
	{http.MethodDelete, "/api/todos/t1"},
	{http.MethodPatch, "/api/todos/t1/completion"},
	{http.MethodGet, "/api/journal"},
	{http.MethodGet, "/api/journal/2026-10-15"},
	{http.MethodPut, "/api/journal/2026-10-15"},
	{http.MethodDelete, "/api/journal/2026-10-15"},
	{http.MethodGet, "/api/planner"},
	{http.MethodPost, "/api/planner"},
	{http.MethodGet, "/api/planner/p1"},
	{http.MethodPut, "/api/planner/p1"},
	{http.MethodDelete, "/api/planner/p1"},
	{http.MethodGet, "/api/progress"},
	{http.MethodGet, "/api/progress/streak"},
	{http.MethodGet, "/api/progress/history"},
	{http.MethodPost, "/api/progress/history"},
}

func TestInit_ProtectedRoutesRequireAuth(t *testing.T) {
	router := newTestHandlerWith(t, &service.Services{}).Init()

	for _, tc := range protectedRoutes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			// 401 proves the route exists and sits behind auth.
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	router := newTestHandlerWith(t, &service.Services{}).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/nonexistent", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	router := newTestHandlerWith(t, &service.Services{}).Init()

	// POST /api/version is not registered, only GET is.
	req := httptest.NewRequest(http.MethodPost, "/api/version", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
