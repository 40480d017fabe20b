package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestSessionIDReusesValidCookie(t *testing.T) {
	h := &Handler{Cookie: CookieConfig{Name: "event_form_session"}}
	existing := uuid.New().String()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "event_form_session", Value: existing})
	rec := httptest.NewRecorder()

	if got := h.sessionID(rec, req); got != existing {
		t.Fatalf("session = %s, want %s", got, existing)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Fatal("cookie reissued for a valid session")
	}
}

func TestSessionIDReplacesMalformedCookie(t *testing.T) {
	h := &Handler{Cookie: CookieConfig{Name: "event_form_session", Secure: true}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "event_form_session", Value: "../../etc"})
	rec := httptest.NewRecorder()

	id := h.sessionID(rec, req)
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("session id %q is not a uuid", id)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("cookies = %v", cookies)
	}
	c := cookies[0]
	if c.Value != id || !c.HttpOnly || !c.Secure || c.SameSite != http.SameSiteLaxMode {
		t.Fatalf("cookie = %+v", c)
	}
}
