package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-progress-keeper/internal/clock"
	"github.com/MKhiriev/go-progress-keeper/internal/config"
	"github.com/MKhiriev/go-progress-keeper/internal/logger"
	"github.com/MKhiriev/go-progress-keeper/internal/service"
	"github.com/MKhiriev/go-progress-keeper/internal/streak"
	"github.com/MKhiriev/go-progress-keeper/models"
)

// Hand-written service stubs. The generated mocks cannot be used here
// without an import cycle through the service package.

const testUserID = "user-1"

// testNow is 12:00 UTC, so "today" is 2026-10-15.
var testNow = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

type mockAuthService struct {
	parseTokenFn func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

type mockAppInfoService struct {
	version   string
	buildInfo models.AppBuildInfo
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

func (m *mockAppInfoService) GetBuildInfo(_ context.Context) models.AppBuildInfo {
	return m.buildInfo
}

type mockUserService struct {
	ensureUserFn    func(ctx context.Context, userID string) (models.User, error)
	getProfileFn    func(ctx context.Context, userID string) (models.User, error)
	updateProfileFn func(ctx context.Context, user models.User) (models.User, error)
	setStartDateFn  func(ctx context.Context, userID string, start time.Time) (models.User, error)
}

func (m *mockUserService) EnsureUser(ctx context.Context, userID string) (models.User, error) {
	if m.ensureUserFn == nil {
		return models.User{UserID: userID}, nil
	}
	return m.ensureUserFn(ctx, userID)
}

func (m *mockUserService) GetProfile(ctx context.Context, userID string) (models.User, error) {
	return m.getProfileFn(ctx, userID)
}

func (m *mockUserService) UpdateProfile(ctx context.Context, user models.User) (models.User, error) {
	return m.updateProfileFn(ctx, user)
}

func (m *mockUserService) SetStartDate(ctx context.Context, userID string, start time.Time) (models.User, error) {
	return m.setStartDateFn(ctx, userID, start)
}

type mockTodoService struct {
	createFn       func(ctx context.Context, todo models.Todo) (models.Todo, error)
	listFn         func(ctx context.Context, userID string, day time.Time) ([]models.Todo, error)
	updateFn       func(ctx context.Context, todo models.Todo) (models.Todo, error)
	setCompletedFn func(ctx context.Context, userID, id string, completed bool) (models.Todo, error)
	deleteFn       func(ctx context.Context, userID, id string) error
}

func (m *mockTodoService) CreateTodo(ctx context.Context, todo models.Todo) (models.Todo, error) {
	return m.createFn(ctx, todo)
}

func (m *mockTodoService) ListTodos(ctx context.Context, userID string, day time.Time) ([]models.Todo, error) {
	return m.listFn(ctx, userID, day)
}

func (m *mockTodoService) UpdateTodo(ctx context.Context, todo models.Todo) (models.Todo, error) {
	return m.updateFn(ctx, todo)
}

func (m *mockTodoService) SetCompleted(ctx context.Context, userID, id string, completed bool) (models.Todo, error) {
	return m.setCompletedFn(ctx, userID, id, completed)
}

func (m *mockTodoService) DeleteTodo(ctx context.Context, userID, id string) error {
	return m.deleteFn(ctx, userID, id)
}

type mockJournalService struct {
	saveFn   func(ctx context.Context, entry models.JournalEntry) (models.JournalEntry, error)
	getFn    func(ctx context.Context, userID string, day time.Time) (models.JournalEntry, error)
	listFn   func(ctx context.Context, userID string, from, to *time.Time) ([]models.JournalEntry, error)
	deleteFn func(ctx context.Context, userID string, day time.Time) error
}

func (m *mockJournalService) SaveEntry(ctx context.Context, entry models.JournalEntry) (models.JournalEntry, error) {
	return m.saveFn(ctx, entry)
}

func (m *mockJournalService) GetEntry(ctx context.Context, userID string, day time.Time) (models.JournalEntry, error) {
	return m.getFn(ctx, userID, day)
}

func (m *mockJournalService) ListEntries(ctx context.Context, userID string, from, to *time.Time) ([]models.JournalEntry, error) {
	return m.listFn(ctx, userID, from, to)
}

func (m *mockJournalService) DeleteEntry(ctx context.Context, userID string, day time.Time) error {
	return m.deleteFn(ctx, userID, day)
}

type mockPlannerService struct {
	createFn func(ctx context.Context, page models.PlannerPage) (models.PlannerPage, error)
	getFn    func(ctx context.Context, userID, id string) (models.PlannerPage, error)
	listFn   func(ctx context.Context, userID string, parentID *string) ([]models.PlannerPage, error)
	updateFn func(ctx context.Context, page models.PlannerPage) (models.PlannerPage, error)
	deleteFn func(ctx context.Context, userID, id string) error
}

func (m *mockPlannerService) CreatePage(ctx context.Context, page models.PlannerPage) (models.PlannerPage, error) {
	return m.createFn(ctx, page)
}

func (m *mockPlannerService) GetPage(ctx context.Context, userID, id string) (models.PlannerPage, error) {
	return m.getFn(ctx, userID, id)
}

func (m *mockPlannerService) ListPages(ctx context.Context, userID string, parentID *string) ([]models.PlannerPage, error) {
	return m.listFn(ctx, userID, parentID)
}

func (m *mockPlannerService) UpdatePage(ctx context.Context, page models.PlannerPage) (models.PlannerPage, error) {
	return m.updateFn(ctx, page)
}

func (m *mockPlannerService) DeletePage(ctx context.Context, userID, id string) error {
	return m.deleteFn(ctx, userID, id)
}

type mockProgressService struct {
	refreshDayFn func(ctx context.Context, userID string, day time.Time) (models.CompletionHistoryEntry, error)
	recordDayFn  func(ctx context.Context, entry models.CompletionHistoryEntry) (models.CompletionHistoryEntry, error)
	historyFn    func(ctx context.Context, userID string, from, to *time.Time) ([]models.CompletionHistoryEntry, error)
	streakFn     func(ctx context.Context, userID string) (models.StreakResult, error)
	progressFn   func(ctx context.Context, userID string) (models.Progress, error)
	closeDayFn   func(ctx context.Context, day time.Time) (int64, error)
}

func (m *mockProgressService) RefreshDay(ctx context.Context, userID string, day time.Time) (models.CompletionHistoryEntry, error) {
	return m.refreshDayFn(ctx, userID, day)
}

func (m *mockProgressService) RecordDay(ctx context.Context, entry models.CompletionHistoryEntry) (models.CompletionHistoryEntry, error) {
	return m.recordDayFn(ctx, entry)
}

func (m *mockProgressService) History(ctx context.Context, userID string, from, to *time.Time) ([]models.CompletionHistoryEntry, error) {
	return m.historyFn(ctx, userID, from, to)
}

func (m *mockProgressService) Streak(ctx context.Context, userID string) (models.StreakResult, error) {
	return m.streakFn(ctx, userID)
}

func (m *mockProgressService) Progress(ctx context.Context, userID string) (models.Progress, error) {
	return m.progressFn(ctx, userID)
}

func (m *mockProgressService) CloseDay(ctx context.Context, day time.Time) (int64, error) {
	return m.closeDayFn(ctx, day)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestCalculator() *streak.Calculator {
	return streak.NewCalculator(clock.NewMock(testNow), time.UTC)
}

// newTestHandlerWith builds a Handler over svcs. Missing app info and user
// services are filled with permissive stubs.
func newTestHandlerWith(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()
	if svcs.AppInfoService == nil {
		svcs.AppInfoService = &mockAppInfoService{version: "test-version"}
	}
	if svcs.UserService == nil {
		svcs.UserService = &mockUserService{}
	}
	if svcs.AuthService == nil {
		svcs.AuthService = &mockAuthService{parseTokenFn: acceptToken}
	}
	return NewHandler(svcs, newTestCalculator(), config.Server{}, logger.Nop())
}

// acceptToken treats every token as belonging to testUserID.
func acceptToken(_ context.Context, _ string) (models.Token, error) {
	return models.Token{UserID: testUserID}, nil
}

// serve sends an authorized request through the full router.
func serve(t *testing.T, h *Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer valid-token")

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	return rec
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 4, 0, 0, 0, time.UTC)
}
