package export

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"go-event-form/internal/metrics"
	"go-event-form/internal/model"
	"go-event-form/internal/upstream"
	"go-event-form/pkg/utils"
)

// Backend produces export files from rows
type Backend interface {
	Export(ctx context.Context, format string, rows []model.ExportRow) (*upstream.ExportFile, error)
}

// Archiver keeps a copy of a downloaded export and returns where it went
type Archiver interface {
	Archive(ctx context.Context, sessionID, filename string, body []byte) (string, error)
}

// Download is a file ready to stream back to the browser
type Download struct {
	Filename    string
	ContentType string
	Body        []byte
}

// Exporter turns the session's cached dataset into a downloadable file
type Exporter struct {
	Backend Backend
	Archive Archiver // optional
}

// DefaultFilename is used when the backend does not suggest one
func DefaultFilename(format string) string {
	return "analisis_eventos." + format
}

func defaultContentType(format string) string {
	if format == FormatXLSX {
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	return "text/csv; charset=utf-8"
}

// Export builds the dataset from cache and asks the backend for a file.
// An empty dataset fails with ErrEmptyDataset before any backend call.
func (e *Exporter) Export(ctx context.Context, sessionID, format string, cache *model.LastQuery) (*Download, error) {
	if !ValidFormat(format) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	rows := Dataset(cache)
	if len(rows) == 0 {
		metrics.ObserveExport(format, "empty")
		return nil, ErrEmptyDataset
	}

	file, err := e.Backend.Export(ctx, format, rows)
	if err != nil {
		var exportErr *upstream.ExportError
		if errors.As(err, &exportErr) {
			metrics.ObserveExport(format, "upstream_error")
		} else {
			metrics.ObserveExport(format, "transport_error")
		}
		log.Printf("❌ Export %s failed: %v", format, err)
		return nil, err
	}
	metrics.ObserveExport(format, "ok")

	fallback := DefaultFilename(format)
	dl := &Download{
		Filename:    utils.SafeFilename(file.Filename, fallback),
		ContentType: file.ContentType,
		Body:        file.Body,
	}
	if dl.ContentType == "" {
		dl.ContentType = defaultContentType(format)
	}
	log.Printf("💾 Exported %d rows to %s (%d bytes)", len(rows), dl.Filename, len(dl.Body))

	if e.Archive != nil {
		where, err := e.Archive.Archive(ctx, sessionID, dl.Filename, dl.Body)
		if err != nil {
			log.Printf("⚠️ Archiving %s failed: %v", dl.Filename, err)
		} else {
			log.Printf("📦 Archived %s to %s", dl.Filename, where)
		}
	}
	return dl, nil
}

// Failure maps an Export error to the HTTP status and the alert text
// shown to the user.
func Failure(format string, err error) (int, string) {
	var exportErr *upstream.ExportError
	switch {
	case errors.Is(err, ErrEmptyDataset):
		return http.StatusBadRequest, "No event data to export. Please run a query first."
	case errors.Is(err, ErrUnknownFormat):
		return http.StatusNotFound, "Unknown export format."
	case errors.As(err, &exportErr):
		if !exportErr.JSON {
			return http.StatusBadGateway, "Network error while exporting."
		}
		msg := exportErr.Message
		if msg == "" {
			msg = "Unknown error"
		}
		return http.StatusBadGateway, fmt.Sprintf("Error exporting to %s: %s", strings.ToUpper(format), msg)
	default:
		return http.StatusBadGateway, "There was a network or server error while trying to export."
	}
}
