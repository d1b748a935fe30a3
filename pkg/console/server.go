// Package console serves a demo page that runs the WASM wait widget around a
// simulated slow generation request.
package console

import (
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/Snider/rswait/pkg/logger"
	"github.com/Snider/rswait/pkg/markup"
)

const (
	// ServiceName is reported by the health endpoint.
	ServiceName = "rswait-console"
	// Version is reported by the health endpoint.
	Version = "1.0.0"

	defaultDelay = 6 * time.Second
	maxDelay     = 30 * time.Second
)

//go:embed index.html
var indexHTML string

var indexTemplate = template.Must(template.New("index").Parse(indexHTML))

// Server serves the demo page, the WASM assets and the slow endpoint.
type Server struct {
	assetsDir  string
	port       string
	contextKey string
	delay      time.Duration
	log        *slog.Logger
	mux        *http.ServeMux
}

// Option configures a Server.
type Option func(*Server)

// WithContext selects the context catalog the page starts the widget with.
func WithContext(key string) Option {
	return func(s *Server) { s.contextKey = key }
}

// WithDelay sets how long the simulated generation takes by default.
func WithDelay(d time.Duration) Option {
	return func(s *Server) { s.delay = clampDelay(d) }
}

// WithLogger sets the request logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Server) {
		if log != nil {
			s.log = log
		}
	}
}

// NewServer creates a new console server. assetsDir holds rswait.wasm and
// wasm_exec.js; it may be empty, in which case /assets/ is not served.
func NewServer(assetsDir, port string, opts ...Option) (*Server, error) {
	if assetsDir != "" {
		info, err := os.Stat(assetsDir)
		if err != nil {
			return nil, fmt.Errorf("reading assets directory: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("assets path %s is not a directory", assetsDir)
		}
	}

	s := &Server{
		assetsDir: assetsDir,
		port:      port,
		delay:     defaultDelay,
		log:       logger.Discard(),
		mux:       http.NewServeMux(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.mux.HandleFunc("/", s.handleRoot)
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/api/v1/generate", s.handleGenerate)
	if assetsDir != "" {
		s.mux.Handle("/assets/", http.StripPrefix("/assets/", http.FileServer(http.Dir(assetsDir))))
	}
	return s, nil
}

// Handler returns the server's routes.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start serves HTTP until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + s.port,
		Handler:           s.mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down: %w", err)
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// handleRoot serves the demo page with the wait fragment inlined.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := indexTemplate.Execute(w, map[string]interface{}{
		"Context":  s.contextKey,
		"Delay":    s.delay.String(),
		"Fragment": template.HTML(markup.FragmentHTML),
	})
	if err != nil {
		s.log.Error("rendering index", "err", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": ServiceName,
		"version": Version,
	})
}

// handleGenerate stands in for the slow AI request the widget decorates. It
// waits for the requested delay, or until the client goes away.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	delay := s.delay
	if raw := r.URL.Query().Get("delay"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid delay"})
			return
		}
		delay = clampDelay(d)
	}

	start := time.Now()
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-r.Context().Done():
		s.log.Debug("generate cancelled", "after", time.Since(start))
		return
	case <-timer.C:
	}

	s.log.Info("generate done", "delay", delay)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"description": "Uw productbeschrijving is klaar.",
		"duration_ms": time.Since(start).Milliseconds(),
	})
}

func clampDelay(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	if d > maxDelay {
		return maxDelay
	}
	return d
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Port returns the server's port.
func (s *Server) Port() string {
	return s.port
}

// URL returns the full server URL.
func (s *Server) URL() string {
	return fmt.Sprintf("http://localhost:%s", s.port)
}
