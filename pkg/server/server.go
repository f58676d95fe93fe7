package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/techstack/pkg/analyze"
	"github.com/matzehuels/techstack/pkg/buildinfo"
	"github.com/matzehuels/techstack/pkg/categorize"
	"github.com/matzehuels/techstack/pkg/errors"
	"github.com/matzehuels/techstack/pkg/render"
)

const maxBodyBytes = 1 << 20

// Server serves the HTTP API.
type Server struct {
	analyzer *analyze.Analyzer
	renderer *render.Renderer
	logger   *log.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request and error logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// New returns a Server backed by a and r.
func New(a *analyze.Analyzer, r *render.Renderer, opts ...Option) *Server {
	s := &Server{analyzer: a, renderer: r, logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the routed handler with middleware applied.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger(s.logger))
	r.Use(chimiddleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": buildinfo.Version})
	})
	r.Route("/v1", func(r chi.Router) {
		r.Post("/analyze", s.handleAnalyze)
		r.Post("/render", s.handleRender)
		r.Post("/render/categories", s.handleRenderCategories)
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.logger.Info("Listening", "addr", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

type analyzeRequest struct {
	Path string `json:"path"`
}

type analyzeResponse struct {
	*analyze.Snapshot
	Type    string `json:"type"`
	Summary string `json:"summary"`
}

type renderRequest struct {
	Content string         `json:"content"`
	Format  string         `json:"format"`
	Options render.Options `json:"options"`
}

type renderCategoriesRequest struct {
	Categories categorize.Map `json:"categories"`
	Format     string         `json:"format"`
	Options    render.Options `json:"options"`
}

type renderResponse struct {
	Output string `json:"output"`
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if !s.decode(w, r, &req) {
		return
	}
	if req.Path == "" {
		s.fail(w, r, errors.New(errors.ErrCodeInvalidInput, "path is required"))
		return
	}
	snap, err := s.analyzer.Analyze(r.Context(), req.Path)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, analyzeResponse{
		Snapshot: snap,
		Type:     snap.Type(),
		Summary:  analyze.Summary(snap),
	})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	if !s.decode(w, r, &req) {
		return
	}
	format, err := parseRender(req.Format, req.Options)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	out, err := s.renderer.Render(r.Context(), req.Content, format, req.Options)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, renderResponse{Output: out})
}

func (s *Server) handleRenderCategories(w http.ResponseWriter, r *http.Request) {
	var req renderCategoriesRequest
	if !s.decode(w, r, &req) {
		return
	}
	format, err := parseRender(req.Format, req.Options)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	out, err := s.renderer.RenderCategories(r.Context(), req.Categories, format, req.Options)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, renderResponse{Output: out})
}

func parseRender(format string, opts render.Options) (render.Format, error) {
	if err := errors.ValidateTechFocus(opts.TechFocus); err != nil {
		return "", err
	}
	return render.ParseFormat(format)
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		s.fail(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body"))
		return false
	}
	return true
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("Request failed", "path", r.URL.Path, "err", err, "id", chimiddleware.GetReqID(r.Context()))
	}
	writeJSON(w, status, errorResponse{
		Error: errors.UserMessage(err),
		Code:  string(errors.GetCode(err)),
	})
}

func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidPath,
		errors.ErrCodeInvalidRules, errors.ErrCodeInvalidManifest:
		return http.StatusBadRequest
	case errors.ErrCodeManifestMissing:
		return http.StatusNotFound
	case errors.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case errors.ErrCodeCompletionTransport, errors.ErrCodeCompletionParse:
		return http.StatusBadGateway
	}
	if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
