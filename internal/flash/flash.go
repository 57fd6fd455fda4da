// Package flash carries one-time notices across a single redirect.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
)

// CookieName is the cookie holding the pending notice.
const CookieName = "itemdesk_flash"

// Kind selects how a notice is styled.
type Kind string

const (
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
	KindDanger  Kind = "danger"
)

// Notice is one message shown on the next rendered page.
type Notice struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

func Success(msg string) Notice { return Notice{Kind: KindSuccess, Message: msg} }
func Info(msg string) Notice    { return Notice{Kind: KindInfo, Message: msg} }
func Danger(msg string) Notice  { return Notice{Kind: KindDanger, Message: msg} }

// Write stores notice for the next page render. Invalid notices are dropped.
func Write(w http.ResponseWriter, notice Notice) {
	if w == nil {
		return
	}
	normalized, ok := normalizeNotice(notice)
	if !ok {
		return
	}
	payload, err := json.Marshal(normalized)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    base64.RawURLEncoding.EncodeToString(payload),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ReadAndClear returns the pending notice, if any, and expires its cookie.
func ReadAndClear(w http.ResponseWriter, r *http.Request) (Notice, bool) {
	if r == nil {
		return Notice{}, false
	}
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie == nil {
		return Notice{}, false
	}
	Clear(w)
	return decodeNotice(cookie.Value)
}

// Clear expires any flash cookie.
func Clear(w http.ResponseWriter) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

func decodeNotice(raw string) (Notice, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return Notice{}, false
	}
	decoded, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return Notice{}, false
	}
	var notice Notice
	if err := json.Unmarshal(decoded, &notice); err != nil {
		return Notice{}, false
	}
	return normalizeNotice(notice)
}

func normalizeNotice(notice Notice) (Notice, bool) {
	notice.Message = strings.TrimSpace(notice.Message)
	if notice.Message == "" {
		return Notice{}, false
	}
	notice.Kind = Kind(strings.ToLower(strings.TrimSpace(string(notice.Kind))))
	switch notice.Kind {
	case KindSuccess, KindInfo, KindDanger:
		return notice, true
	default:
		return Notice{}, false
	}
}
