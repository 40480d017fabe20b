package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"go-event-form/internal/export"
	"go-event-form/internal/render"
	"go-event-form/pkg/router"
)

// Export routes are wildcards so the handlers can read the trailing segment
const (
	ExportRoute   = "/export/*"
	DownloadRoute = "/download/*"
)

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// Export downloads the last rendered dataset as CSV or XLSX
// @Summary Export last result
// @Description Send the session's last table or annual report to the backend exporter. Plain posts stream the file back; htmx posts get an alert fragment on failure or an HX-Redirect to the download on success.
// @Tags export
// @Produce octet-stream
// @Param format path string true "Export format" Enums(csv, xlsx)
// @Success 200 {file} file "Exported file"
// @Failure 400 {string} string "No event data to export"
// @Failure 404 {string} string "Unknown export format"
// @Failure 502 {string} string "Backend export failed"
// @Router /export/{format} [post]
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	id := h.sessionID(w, r)
	format := router.WildcardTail(r.URL.Path, ExportRoute)

	st, err := h.Sessions.Load(r.Context(), id)
	if err != nil {
		serverError(w, "load session", err)
		return
	}

	dl, err := h.Exporter.Export(r.Context(), id, format, st.LastQuery)
	if err != nil {
		h.exportFailed(w, r, format, err)
		return
	}

	if isHTMX(r) {
		// htmx cannot save a response body as a file; hand the browser a
		// one-shot link instead so the page stays as it is
		token := h.Downloads.Put(id, dl)
		w.Header().Set("HX-Redirect", "/download/"+token)
		w.WriteHeader(http.StatusOK)
		return
	}
	writeDownload(w, dl)
}

// exportFailed shows the export error as a banner in the page for htmx
// requests, or as a standalone alert page for plain form posts.
func (h *Handler) exportFailed(w http.ResponseWriter, r *http.Request, format string, err error) {
	status, msg := export.Failure(format, err)
	level := render.LevelDanger
	if errors.Is(err, export.ErrEmptyDataset) {
		level = render.LevelWarning
	}

	if isHTMX(r) {
		banner, rerr := render.Alert(level, "", msg)
		if rerr != nil {
			serverError(w, "render export alert", rerr)
			return
		}
		// htmx only swaps 2xx responses
		writeHTML(w, http.StatusOK, banner)
		return
	}

	page, rerr := render.AlertPage(level, "", msg)
	if rerr != nil {
		serverError(w, "render export alert", rerr)
		return
	}
	writeHTML(w, status, page)
}

// Download serves an export prepared by an htmx export request
// @Summary Fetch prepared export
// @Description Return a file prepared by a previous export call. Tokens are single use and bound to the session.
// @Tags export
// @Produce octet-stream
// @Param token path string true "Download token"
// @Success 200 {file} file "Exported file"
// @Failure 404 {string} string "Unknown or expired download"
// @Router /download/{token} [get]
func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	id := h.sessionID(w, r)
	token := router.WildcardTail(r.URL.Path, DownloadRoute)

	dl, ok := h.Downloads.Take(id, token)
	if !ok {
		page, err := render.AlertPage(render.LevelWarning, "", "This download has expired. Please export again.")
		if err != nil {
			serverError(w, "render download alert", err)
			return
		}
		writeHTML(w, http.StatusNotFound, page)
		return
	}
	writeDownload(w, dl)
}

func writeDownload(w http.ResponseWriter, dl *export.Download) {
	w.Header().Set("Content-Type", dl.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, dl.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(dl.Body)))
	w.WriteHeader(http.StatusOK)
	w.Write(dl.Body)
}
