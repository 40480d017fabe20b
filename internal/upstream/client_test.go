package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-event-form/internal/model"
)

func TestAnalyzeDecodesErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/analyze" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var req model.AnalyzeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode: %v", err)
		}
		if req.Ciudad != "Medellín" {
			t.Errorf("ciudad = %q", req.Ciudad)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"Error 503: model overloaded","type":"error","result":null}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", "test", 5*time.Second)
	resp, err := c.Analyze(context.Background(), model.AnalyzeRequest{Ciudad: "Medellín"})
	if err != nil {
		t.Fatal(err)
	}
	if resp.Error != "Error 503: model overloaded" {
		t.Fatalf("error = %q", resp.Error)
	}
}

func TestAnalyzeNonJSONIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "", time.Second).Analyze(context.Background(), model.AnalyzeRequest{})
	var terr *TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("err = %v, want TransportError", err)
	}
}

func TestAnalyzeUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, "", time.Second).Analyze(context.Background(), model.AnalyzeRequest{})
	var terr *TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("err = %v, want TransportError", err)
	}
}

func TestExportSuccess(t *testing.T) {
	var got model.ExportRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/export/csv" {
			t.Errorf("path = %s", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="eventos_2024.csv"`)
		w.Write([]byte("date,name\n2024-03-01,E1\n"))
	}))
	defer srv.Close()

	rows := []model.ExportRow{{Date: "2024-03-01", Name: "E1", Mes: "March"}}
	f, err := NewClient(srv.URL, "", time.Second).Export(context.Background(), "csv", rows)
	if err != nil {
		t.Fatal(err)
	}
	if f.Filename != "eventos_2024.csv" || f.ContentType != "text/csv" {
		t.Fatalf("file = %+v", f)
	}
	if string(f.Body) != "date,name\n2024-03-01,E1\n" {
		t.Fatalf("body = %q", f.Body)
	}
	if len(got.Events) != 1 || got.Events[0].Mes != "March" {
		t.Fatalf("sent = %+v", got)
	}
}

func TestExportErrors(t *testing.T) {
	cases := []struct {
		name     string
		body     string
		wantJSON bool
		wantMsg  string
	}{
		{"json error", `{"error":"No hay datos de eventos para exportar."}`, true, "No hay datos de eventos para exportar."},
		{"json without error", `{}`, true, ""},
		{"html", `<h1>500</h1>`, false, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			_, err := NewClient(srv.URL, "", time.Second).Export(context.Background(), "xlsx", nil)
			var eerr *ExportError
			if !errors.As(err, &eerr) {
				t.Fatalf("err = %v, want ExportError", err)
			}
			if eerr.Status != http.StatusBadRequest || eerr.JSON != tc.wantJSON || eerr.Message != tc.wantMsg {
				t.Fatalf("export error = %+v", eerr)
			}
		})
	}
}

func TestFilenameFromDisposition(t *testing.T) {
	cases := []struct{ header, want string }{
		{"", ""},
		{`attachment; filename="analisis.xlsx"`, "analisis.xlsx"},
		{"attachment; filename=analisis_eventos.csv", "analisis_eventos.csv"},
		{"attachment", ""},
		{"garbage;;;", ""},
	}
	for _, tc := range cases {
		if got := FilenameFromDisposition(tc.header); got != tc.want {
			t.Errorf("FilenameFromDisposition(%q) = %q, want %q", tc.header, got, tc.want)
		}
	}
}
