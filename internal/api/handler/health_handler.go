package handler

import (
	"net/http"
	"time"
)

// Health reports whether the session store is reachable
// @Summary Health check
// @Description Check the session database and report the number of stored sessions
// @Tags system
// @Produce json
// @Success 200 {object} map[string]interface{} "Service healthy"
// @Failure 503 {object} map[string]interface{} "Session store unavailable"
// @Router /api/health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.Sessions.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status": "unavailable",
			"error":  err.Error(),
		})
		return
	}

	sessions, err := h.Sessions.Count(ctx)
	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status": "unavailable",
			"error":  err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"sessions":    sessions,
		"departments": len(h.Lookup),
		"checkedAt":   time.Now().UTC(),
	})
}
