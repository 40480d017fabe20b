package handler

import (
	"encoding/json"
	"html/template"
	"log"
	"net/http"

	"github.com/google/uuid"

	"go-event-form/internal/export"
	"go-event-form/internal/geo"
	"go-event-form/internal/query"
	"go-event-form/internal/store"
)

// CookieConfig controls the session cookie
type CookieConfig struct {
	Name   string
	Secure bool
}

// Handler serves the event form pages and fragments for one lookup table
type Handler struct {
	Lookup    geo.Lookup
	Sessions  *store.Store
	Submitter *query.Submitter
	Exporter  *export.Exporter
	Downloads *export.Pending
	Cookie    CookieConfig
}

// sessionID returns the caller's session id, issuing a new cookie when the
// request carries none or a malformed one.
func (h *Handler) sessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(h.Cookie.Name); err == nil {
		if _, err := uuid.Parse(c.Value); err == nil {
			return c.Value
		}
	}

	id := uuid.New().String()
	http.SetCookie(w, &http.Cookie{
		Name:     h.Cookie.Name,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.Cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

func writeHTML(w http.ResponseWriter, status int, parts ...template.HTML) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	for _, p := range parts {
		w.Write([]byte(p))
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func serverError(w http.ResponseWriter, what string, err error) {
	log.Printf("❌ %s: %v", what, err)
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}
