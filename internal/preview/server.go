package preview

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dictmark-dev/dictmark/pkg/profile"
	"github.com/dictmark-dev/dictmark/pkg/render"
)

// Server is the preview harness around the renderer: one render endpoint, a
// live-preview socket, media file serving and metrics. Entry browsing,
// authentication and profile storage stay with the surrounding application.
type Server struct {
	renderer   *render.Renderer
	defaults   *profile.Profile
	mediaDir   string
	addr       string
	logger     *slog.Logger
	httpServer *http.Server
}

// Options configures a preview Server.
type Options struct {
	// Address is the host:port to listen on.
	Address string

	// Renderer performs the rendering. Required.
	Renderer *render.Renderer

	// DefaultProfile applies when a request carries no profile of its own.
	DefaultProfile *profile.Profile

	// MediaDir, when set, is served under /media/.
	MediaDir string
}

// New creates a preview Server.
func New(opts Options) *Server {
	return &Server{
		renderer: opts.Renderer,
		defaults: opts.DefaultProfile,
		mediaDir: opts.MediaDir,
		addr:     opts.Address,
		logger:   slog.Default().With("component", "preview"),
	}
}

// SetLogger replaces the server's logger.
func (s *Server) SetLogger(logger *slog.Logger) {
	if logger != nil {
		s.logger = logger
	}
}

// Handler builds the route tree.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Post("/render", s.handleRender)
	r.Get("/live", s.handleLive)

	if s.mediaDir != "" {
		fs := http.StripPrefix("/media/", http.FileServer(http.Dir(s.mediaDir)))
		r.Get("/media/*", fs.ServeHTTP)
	}

	return r
}

// Start runs the server until an error or an interrupt, then shuts down
// gracefully.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()
	s.logger.Info("preview server listening", "addr", s.addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		s.logger.Info("shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(ctx)
	}
}

type renderRequest struct {
	XML      string          `json:"xml"`
	Profile  json.RawMessage `json:"profile,omitempty"`
	Category string          `json:"category,omitempty"`
}

type renderResponse struct {
	HTML  string `json:"html,omitempty"`
	Error string `json:"error,omitempty"`
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, renderResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	prof, err := s.requestProfile(req.Profile)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, renderResponse{Error: err.Error()})
		return
	}

	html := s.renderer.Render(r.Context(), req.XML, prof, req.Category)
	writeJSON(w, http.StatusOK, renderResponse{HTML: html})
}

// requestProfile decodes the request's profile, falling back to the server
// default.
func (s *Server) requestProfile(raw json.RawMessage) (*profile.Profile, error) {
	if len(raw) == 0 {
		return s.defaults, nil
	}
	return profile.Decode(raw)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
