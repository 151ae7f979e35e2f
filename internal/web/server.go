package web

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"pacenote/internal/domain"
)

const defaultHealthPath = "/healthz"
const defaultHealthBody = "ok"

// Config configures the front handler.
type Config struct {
	API     http.Handler   // mounted under /api/
	Fetcher domain.Fetcher // used by the edit view to load stages

	HealthPath string
	HealthBody string
}

type server struct {
	fetcher    domain.Fetcher
	healthBody string
}

// New builds the front handler. API and Fetcher are required.
func New(cfg Config) (http.Handler, error) {
	if cfg.API == nil {
		return nil, errors.New("api handler is required")
	}
	if cfg.Fetcher == nil {
		return nil, errors.New("fetcher is required")
	}
	healthBody := strings.TrimSpace(cfg.HealthBody)
	if healthBody == "" {
		healthBody = defaultHealthBody
	}

	srv := &server{fetcher: cfg.Fetcher, healthBody: healthBody}

	mux := http.NewServeMux()
	mux.Handle("/api/", http.StripPrefix("/api", cfg.API))
	mux.HandleFunc("GET "+normalizeHealthPath(cfg.HealthPath), srv.handleHealth)
	mux.HandleFunc("GET /edit", srv.handleEdit)
	return accessLog(mux), nil
}

func (s *server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(s.healthBody))
}

func normalizeHealthPath(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return defaultHealthPath
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(b)
	r.bytes += n
	return n, err
}

func (r *statusRecorder) Unwrap() http.ResponseWriter { return r.ResponseWriter }

func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)
		status := rec.status
		if status == 0 {
			status = http.StatusOK
		}
		log.Printf("%s %s %s %d %dB %s", r.Method, r.URL.Path, r.RemoteAddr, status, rec.bytes, time.Since(start).Round(time.Microsecond))
	})
}
