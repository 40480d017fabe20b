package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net"
	"net/http"
	"strings"
	"time"

	"go-event-form/internal/metrics"
	"go-event-form/internal/model"
)

// Client talks to the analysis backend
type Client struct {
	baseURL   string
	userAgent string
	client    *http.Client
}

// ExportFile is a downloaded export
type ExportFile struct {
	Filename    string // from content-disposition, empty if absent
	ContentType string
	Body        []byte
}

// TransportError wraps network and decoding failures
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }
func (e *TransportError) Unwrap() error { return e.Err }

// ExportError is a non-2xx answer from the export endpoint.
// JSON is false when the body could not be decoded as an error object.
type ExportError struct {
	Status  int
	Message string
	JSON    bool
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export: http %d: %s", e.Status, e.Message)
}

// NewClient builds a client with a tuned transport
func NewClient(baseURL, userAgent string, timeout time.Duration) *Client {
	tr := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 60 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		client: &http.Client{
			Timeout:   timeout,
			Transport: tr,
		},
	}
}

func (c *Client) post(ctx context.Context, endpoint, path string, body interface{}) (*http.Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode %s body: %w", endpoint, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	metrics.ObserveUpstream(endpoint, time.Since(start))
	if err != nil {
		return nil, &TransportError{Op: endpoint, Err: err}
	}
	return resp, nil
}

// Analyze posts the query. The backend reports application errors with a
// non-2xx status and a JSON body, so the body is decoded whatever the status.
func (c *Client) Analyze(ctx context.Context, req model.AnalyzeRequest) (model.AnalyzeResponse, error) {
	resp, err := c.post(ctx, "analyze", "/api/analyze", req)
	if err != nil {
		return model.AnalyzeResponse{}, err
	}
	defer resp.Body.Close()

	var out model.AnalyzeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return model.AnalyzeResponse{}, &TransportError{
			Op:  "analyze",
			Err: fmt.Errorf("decode response (http %d): %w", resp.StatusCode, err),
		}
	}
	return out, nil
}

// Export posts rows to /export/{format} and returns the file on success
func (c *Client) Export(ctx context.Context, format string, rows []model.ExportRow) (*ExportFile, error) {
	resp, err := c.post(ctx, "export_"+format, "/export/"+format, model.ExportRequest{Events: rows})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: "export_" + format, Err: fmt.Errorf("read body: %w", err)}
	}

	if resp.StatusCode/100 != 2 {
		var eb model.ErrorBody
		if err := json.Unmarshal(body, &eb); err != nil {
			return nil, &ExportError{Status: resp.StatusCode}
		}
		return nil, &ExportError{Status: resp.StatusCode, Message: eb.Error, JSON: true}
	}

	return &ExportFile{
		Filename:    FilenameFromDisposition(resp.Header.Get("Content-Disposition")),
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}

// FilenameFromDisposition extracts the suggested filename from a
// content-disposition header, or returns "" when there is none.
func FilenameFromDisposition(header string) string {
	if header == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(header)
	if err != nil {
		return ""
	}
	return params["filename"]
}
