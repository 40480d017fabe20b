package router

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"
)

// --- ANSI color codes ---
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorCyan   = "\033[36m"
)

type HandlerFunc func(http.ResponseWriter, *http.Request)

// Timeouts configures the underlying http.Server
type Timeouts struct {
	Read  time.Duration
	Write time.Duration
	Idle  time.Duration
}

type Router struct {
	mux       *http.ServeMux
	routes    map[string]http.Handler // key = METHOD:PATH
	paths     map[string]bool         // track registered paths
	wildcards []string                // wildcard paths in registration order
	server    *http.Server

	// OnRequest, when set, is called once per served request
	OnRequest func(method string, status int)
}

func New() *Router {
	r := &Router{
		mux:    http.NewServeMux(),
		routes: make(map[string]http.Handler),
		paths:  make(map[string]bool),
	}

	// Catch-all handler dispatching on METHOD:PATH
	r.mux.HandleFunc("/", func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		lrw := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		r.dispatch(lrw, req)

		if r.OnRequest != nil {
			r.OnRequest(req.Method, lrw.statusCode)
		}

		duration := time.Since(start)
		color := statusColor(lrw.statusCode)
		methodColor := methodColor(req.Method)

		log.Printf("%s[%s]%s %s%s%s %s %s%d%s %s(%v)%s",
			colorCyan, start.Format("2006-01-02 15:04:05"), colorReset,
			methodColor, req.Method, colorReset,
			req.URL.Path,
			color, lrw.statusCode, colorReset,
			colorBlue, duration, colorReset,
		)
	})

	return r
}

func (r *Router) dispatch(w http.ResponseWriter, req *http.Request) {
	if h, ok := r.routes[req.Method+":"+req.URL.Path]; ok {
		h.ServeHTTP(w, req)
		return
	}

	pathMatched := r.paths[req.URL.Path]
	for _, routePath := range r.wildcards {
		if !matchWildcardRoute(req.URL.Path, routePath) {
			continue
		}
		if h, ok := r.routes[req.Method+":"+routePath]; ok {
			h.ServeHTTP(w, req)
			return
		}
		pathMatched = true
	}

	if pathMatched {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	http.Error(w, "Not Found", http.StatusNotFound)
}

// matchWildcardRoute checks if a request path matches a wildcard route pattern
func matchWildcardRoute(requestPath, routePattern string) bool {
	requestSegments := strings.Split(strings.Trim(requestPath, "/"), "/")
	routeSegments := strings.Split(strings.Trim(routePattern, "/"), "/")

	// A trailing wildcard matches any number of remaining segments
	if len(routeSegments) > 0 && routeSegments[len(routeSegments)-1] == "*" {
		if len(requestSegments) < len(routeSegments)-1 {
			return false
		}
		for i := 0; i < len(routeSegments)-1; i++ {
			if requestSegments[i] != routeSegments[i] {
				return false
			}
		}
		return true
	}

	if len(requestSegments) != len(routeSegments) {
		return false
	}
	for i, routeSegment := range routeSegments {
		if routeSegment == "*" {
			continue
		}
		if requestSegments[i] != routeSegment {
			return false
		}
	}
	return true
}

// WildcardTail returns the part of requestPath covered by the trailing
// wildcard of routePattern, e.g. "csv" for /export/csv against /export/*.
func WildcardTail(requestPath, routePattern string) string {
	prefix := strings.TrimSuffix(routePattern, "*")
	if !strings.HasPrefix(requestPath, prefix) {
		return ""
	}
	return strings.TrimPrefix(requestPath, prefix)
}

// --- Register paths ---
func (r *Router) register(method, path string, handler http.Handler) {
	key := method + ":" + path
	r.routes[key] = handler
	if !r.paths[path] && strings.Contains(path, "*") {
		r.wildcards = append(r.wildcards, path)
	}
	r.paths[path] = true
}

func (r *Router) GET(path string, handler HandlerFunc) {
	r.register(http.MethodGet, path, http.HandlerFunc(handler))
}

func (r *Router) POST(path string, handler HandlerFunc) {
	r.register(http.MethodPost, path, http.HandlerFunc(handler))
}

// Handle mounts an http.Handler, e.g. the metrics or swagger handlers
func (r *Router) Handle(method, path string, handler http.Handler) {
	r.register(method, path, handler)
}

// Routes returns the registered handlers keyed by METHOD:PATH
func (r *Router) Routes() map[string]http.Handler {
	return r.routes
}

// Paths returns every registered path
func (r *Router) Paths() map[string]bool {
	return r.paths
}

// Handler exposes the router for httptest and custom servers
func (r *Router) Handler() http.Handler {
	return r.mux
}

// --- Start server ---

// Start serves on addr until Shutdown is called
func (r *Router) Start(addr string, t Timeouts) error {
	r.server = &http.Server{
		Addr:         addr,
		Handler:      r.mux,
		ReadTimeout:  t.Read,
		WriteTimeout: t.Write,
		IdleTimeout:  t.Idle,
	}
	log.Printf("🚀 Server started on %shttp://localhost%s%s", colorGreen, addr, colorReset)
	if err := r.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops a started server
func (r *Router) Shutdown(ctx context.Context) error {
	if r.server == nil {
		return nil
	}
	return r.server.Shutdown(ctx)
}

// --- Logging response writer to capture status codes ---
type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

// --- Color helpers ---
func statusColor(code int) string {
	switch {
	case code >= 200 && code < 300:
		return colorGreen
	case code >= 300 && code < 400:
		return colorCyan
	case code >= 400 && code < 500:
		return colorYellow
	default:
		return colorRed
	}
}

func methodColor(method string) string {
	switch method {
	case http.MethodGet:
		return colorGreen
	case http.MethodPost:
		return colorBlue
	default:
		return colorCyan
	}
}
