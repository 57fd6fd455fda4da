package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"itemdesk/internal/models"
	"itemdesk/internal/service"
	"itemdesk/internal/session"
)

func TestLoginForm_Renders(t *testing.T) {
	r, _ := newTestRouter(t, &service.Service{Authorization: &mockAuth{}, Items: &mockItems{}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, formRequest(http.MethodGet, "/", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `action="/login"`) {
		t.Fatalf("login form missing: %s", w.Body.String())
	}
}

func TestLogin_Success(t *testing.T) {
	auth := &mockAuth{authUser: &models.User{ID: 5, Username: "alice"}}
	r, sessions := newTestRouter(t, &service.Service{Authorization: auth, Items: &mockItems{}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, formRequest(http.MethodPost, "/login", url.Values{"username": {"alice"}, "password": {"pw"}}))
	expectRedirect(t, w, "/dashboard")

	if auth.lastAuthUsername != "alice" || auth.lastAuthPassword != "pw" {
		t.Fatalf("service got %q/%q", auth.lastAuthUsername, auth.lastAuthPassword)
	}

	var found bool
	for _, c := range w.Result().Cookies() {
		if c.Name != sessions.CookieName() {
			continue
		}
		found = true
		id, err := sessions.Parse(c.Value)
		if err != nil {
			t.Fatalf("session cookie does not parse: %v", err)
		}
		if id != (session.Identity{UserID: 5, Username: "alice"}) {
			t.Fatalf("unexpected identity %+v", id)
		}
		if !c.HttpOnly {
			t.Fatalf("session cookie must be HttpOnly")
		}
	}
	if !found {
		t.Fatalf("no session cookie set")
	}
}

func TestLogin_Failures(t *testing.T) {
	cases := []struct {
		name       string
		form       url.Values
		authErr    error
		wantNotice string
	}{
		{
			name:       "invalid credentials",
			form:       url.Values{"username": {"a"}, "password": {"b"}},
			authErr:    service.ErrInvalidCredentials,
			wantNotice: noticeLoginFailed,
		},
		{
			name:       "missing password field",
			form:       url.Values{"username": {"a"}},
			wantNotice: noticeCredentialsMissing,
		},
		{
			name:       "blank username",
			form:       url.Values{"username": {"  "}, "password": {"b"}},
			authErr:    service.ErrMissingCredentials,
			wantNotice: noticeCredentialsMissing,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			auth := &mockAuth{authErr: tc.authErr}
			r, sessions := newTestRouter(t, &service.Service{Authorization: auth, Items: &mockItems{}})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, formRequest(http.MethodPost, "/login", tc.form))
			expectRedirect(t, w, "/")
			expectNotice(t, w, tc.wantNotice)

			for _, c := range w.Result().Cookies() {
				if c.Name == sessions.CookieName() {
					t.Fatalf("no session cookie expected on failure")
				}
			}
		})
	}
}

func TestLogin_StoreErrorIs500(t *testing.T) {
	auth := &mockAuth{authErr: errors.New("db down")}
	r, _ := newTestRouter(t, &service.Service{Authorization: auth, Items: &mockItems{}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, formRequest(http.MethodPost, "/login", url.Values{"username": {"a"}, "password": {"b"}}))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestRegister(t *testing.T) {
	cases := []struct {
		name         string
		form         url.Values
		signUpErr    error
		wantLocation string
		wantNotice   string
	}{
		{"ok", url.Values{"username": {"bob"}, "password": {"pw"}}, nil, "/", noticeRegistered},
		{"duplicate", url.Values{"username": {"bob"}, "password": {"pw"}}, service.ErrUsernameTaken, "/register", noticeUsernameTaken},
		{"missing fields", url.Values{}, nil, "/register", noticeCredentialsMissing},
		{"blank username", url.Values{"username": {" "}, "password": {"pw"}}, service.ErrMissingCredentials, "/register", noticeCredentialsMissing},
		{"too long", url.Values{"username": {"bob"}, "password": {"x"}}, service.ErrPasswordTooLong, "/register", noticePasswordTooLong},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			auth := &mockAuth{signUpID: 1, signUpErr: tc.signUpErr}
			r, _ := newTestRouter(t, &service.Service{Authorization: auth, Items: &mockItems{}})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, formRequest(http.MethodPost, "/register", tc.form))
			expectRedirect(t, w, tc.wantLocation)
			expectNotice(t, w, tc.wantNotice)
		})
	}
}

func TestRegisterForm_ShowsPendingNotice(t *testing.T) {
	r, _ := newTestRouter(t, &service.Service{Authorization: &mockAuth{signUpErr: service.ErrUsernameTaken}, Items: &mockItems{}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, formRequest(http.MethodPost, "/register", url.Values{"username": {"bob"}, "password": {"pw"}}))
	var flashCookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		flashCookie = c
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, formRequest(http.MethodGet, "/register", nil, flashCookie))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	if !strings.Contains(w.Body.String(), noticeUsernameTaken) {
		t.Fatalf("notice not rendered: %s", w.Body.String())
	}
}

func TestLogout_WithAndWithoutSession(t *testing.T) {
	r, sessions := newTestRouter(t, &service.Service{Authorization: &mockAuth{}, Items: &mockItems{}})

	for name, cookies := range map[string][]*http.Cookie{
		"anonymous": nil,
		"logged in": {sessionCookie(t, sessions, session.Identity{UserID: 1, Username: "a"})},
	} {
		t.Run(name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, formRequest(http.MethodGet, "/logout", nil, cookies...))
			expectRedirect(t, w, "/")
			expectNotice(t, w, noticeLoggedOut)

			var cleared bool
			for _, c := range w.Result().Cookies() {
				if c.Name == sessions.CookieName() && c.MaxAge < 0 {
					cleared = true
				}
			}
			if !cleared {
				t.Fatalf("session cookie not cleared")
			}
		})
	}
}
