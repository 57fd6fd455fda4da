package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"itemdesk/internal/flash"
	"itemdesk/internal/models"
	"itemdesk/internal/service"
	"itemdesk/internal/session"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID  int
	signUpErr error
	authUser  *models.User
	authErr   error

	lastSignUpUsername string
	lastSignUpPassword string
	lastAuthUsername   string
	lastAuthPassword   string
}

func (m *mockAuth) SignUp(_ context.Context, username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}

func (m *mockAuth) Authenticate(_ context.Context, username, password string) (*models.User, error) {
	m.lastAuthUsername = username
	m.lastAuthPassword = password
	return m.authUser, m.authErr
}

type mockItems struct {
	items     []models.Item
	listErr   error
	getErr    error
	createErr error
	updateErr error
	search    service.SearchResult
	searchErr error

	lastCreate  service.ItemInput
	lastUpdate  service.ItemInput
	lastQuery   string
	createCalls int
	updateCalls int
}

func (m *mockItems) List(context.Context) ([]models.Item, error) {
	return m.items, m.listErr
}

func (m *mockItems) Get(_ context.Context, id int) (models.Item, error) {
	if m.getErr != nil {
		return models.Item{}, m.getErr
	}
	for _, it := range m.items {
		if it.ID == id {
			return it, nil
		}
	}
	return models.Item{}, service.ErrItemNotFound
}

func (m *mockItems) Create(_ context.Context, in service.ItemInput) (models.Item, error) {
	m.createCalls++
	m.lastCreate = in
	return models.Item{ID: 1, Name: in.Name, Description: in.Description}, m.createErr
}

func (m *mockItems) Update(_ context.Context, id int, in service.ItemInput) error {
	m.updateCalls++
	m.lastUpdate = in
	return m.updateErr
}

func (m *mockItems) Search(_ context.Context, query string) (service.SearchResult, error) {
	m.lastQuery = query
	return m.search, m.searchErr
}

// ---- Shared Test Helpers ----

var testSecret = strings.Repeat("t", 32)

func newTestSessions(t *testing.T) *session.Manager {
	t.Helper()
	m, err := session.NewManager(session.Options{Secret: testSecret, TTL: time.Hour, CookieName: "sid"})
	if err != nil {
		t.Fatalf("session.NewManager: %v", err)
	}
	return m
}

func newTestRouter(t *testing.T, s *service.Service) (*gin.Engine, *session.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	sessions := newTestSessions(t)
	h := NewHandler(s, sessions, nil)
	return h.InitRoutes(), sessions
}

// sessionCookie returns a valid session cookie for the given user.
func sessionCookie(t *testing.T, m *session.Manager, id session.Identity) *http.Cookie {
	t.Helper()
	token, err := m.Issue(id)
	if err != nil {
		t.Fatalf("issue session: %v", err)
	}
	return &http.Cookie{Name: m.CookieName(), Value: token}
}

func formRequest(method, target string, form url.Values, cookies ...*http.Cookie) *http.Request {
	var req *http.Request
	if form == nil {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return req
}

// flashFrom decodes the flash notice set by a response, if any.
func flashFrom(t *testing.T, w *httptest.ResponseRecorder) (flash.Notice, bool) {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name != flash.CookieName || c.MaxAge < 0 {
			continue
		}
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(c)
		return flash.ReadAndClear(httptest.NewRecorder(), req)
	}
	return flash.Notice{}, false
}

func expectRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	if w.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d body=%s", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Location"); got != location {
		t.Fatalf("expected redirect to %q, got %q", location, got)
	}
}

func expectNotice(t *testing.T, w *httptest.ResponseRecorder, want string) {
	t.Helper()
	n, ok := flashFrom(t, w)
	if !ok {
		t.Fatalf("expected notice %q, got none", want)
	}
	if n.Message != want {
		t.Fatalf("expected notice %q, got %q", want, n.Message)
	}
}
