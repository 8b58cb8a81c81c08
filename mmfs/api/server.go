// Package api provides the HTTP server and handlers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/mymemory/mmfs/metrics"
	"github.com/ZanzyTHEbar/mymemory/mmfs/trees"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// RequestIDHeader carries the request ID in both directions.
const RequestIDHeader = "X-Request-ID"

// Store is the read side of the memory filesystem served over HTTP.
type Store interface {
	BuildCombinedTree(ctx context.Context) ([]*trees.FileNode, error)
	RecordsUnder(ctx context.Context, folder string) ([]*trees.FileRecord, error)
	Resolve(ctx context.Context, userPath string) (*trees.FileRecord, bool, error)
}

// Server is the HTTP server.
type Server struct {
	store  Store
	logger zerolog.Logger
}

// NewServer creates a new server.
func NewServer(store Store, logger zerolog.Logger) *Server {
	return &Server{store: store, logger: logger}
}

// Handler returns the HTTP handler with request ID, logging and metrics
// middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /api/v1/tree", s.handleTree)
	mux.HandleFunc("GET /api/v1/tree/{path...}", s.handleSubtree)
	mux.HandleFunc("GET /api/v1/files", s.handleFiles)
	mux.HandleFunc("GET /api/v1/files/{path...}", s.handleFile)

	// the mux sets r.Pattern on the request it receives, so nothing between
	// it and the metrics middleware may replace the request
	return s.requestIDMiddleware(metrics.Middleware(s.loggingMiddleware(mux)))
}

// Run serves Handler on addr until ctx is cancelled.
func (s *Server) Run(ctx context.Context, addr string) error {
	return serve(ctx, addr, s.Handler(), s.logger)
}

// RunMetrics serves the Prometheus endpoint on addr until ctx is cancelled.
func RunMetrics(ctx context.Context, addr string, logger zerolog.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("GET /metrics", metrics.Handler())
	return serve(ctx, addr, mux, logger)
}

func serve(ctx context.Context, addr string, handler http.Handler, logger zerolog.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", addr).Msg("HTTP server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		logger.Info().Str("addr", addr).Msg("HTTP server shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

func (s *Server) handleTree(w http.ResponseWriter, r *http.Request) {
	nodes, err := s.store.BuildCombinedTree(r.Context())
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, newTreeResponse(nodes))
}

func (s *Server) handleSubtree(w http.ResponseWriter, r *http.Request) {
	path := strings.Trim(r.PathValue("path"), "/")
	if path == "" {
		s.handleTree(w, r)
		return
	}

	nodes, err := s.store.BuildCombinedTree(r.Context())
	if err != nil {
		s.internalError(w, r, err)
		return
	}

	node := trees.FindByPath(nodes, path)
	if node == nil {
		s.sendError(w, http.StatusNotFound, "path not found: "+path)
		return
	}
	s.writeJSON(w, http.StatusOK, newTreeResponse([]*trees.FileNode{node}))
}

func newTreeResponse(nodes []*trees.FileNode) TreeResponse {
	return TreeResponse{
		Nodes:   nodes,
		Count:   trees.CountNodes(nodes),
		Metrics: trees.ComputeTreeMetrics(nodes),
	}
}

func (s *Server) handleFiles(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	limit := 0
	if raw := query.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			s.sendError(w, http.StatusBadRequest, "invalid limit: "+raw)
			return
		}
		limit = n
	}

	records, err := s.store.RecordsUnder(r.Context(), strings.Trim(query.Get("prefix"), "/"))
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}

	summaries := make([]*trees.FileRecord, 0, len(records))
	for _, rec := range records {
		summary := *rec
		summary.Content = ""
		summaries = append(summaries, &summary)
	}
	s.writeJSON(w, http.StatusOK, FilesResponse{Files: summaries, Count: len(summaries)})
}

func (s *Server) handleFile(w http.ResponseWriter, r *http.Request) {
	rec, ok, err := s.store.Resolve(r.Context(), r.PathValue("path"))
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	if !ok {
		s.sendError(w, http.StatusNotFound, "document not found")
		return
	}
	s.writeJSON(w, http.StatusOK, rec)
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error().Err(err).Msg("Failed to encode response")
	}
}

func (s *Server) sendError(w http.ResponseWriter, code int, message string) {
	s.writeJSON(w, code, ErrorResponse{Error: message, Code: code})
}

func (s *Server) internalError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, context.Canceled) {
		// client went away
		return
	}
	zerolog.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("Request failed")
	s.sendError(w, http.StatusInternalServerError, "internal error")
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Unwrap() http.ResponseWriter {
	return sr.ResponseWriter
}

// requestIDMiddleware tags every request with an ID, reusing one sent by the
// client, and attaches a logger carrying it to the request context.
func (s *Server) requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)

		logger := s.logger.With().Str("request_id", id).Logger()
		next.ServeHTTP(w, r.WithContext(logger.WithContext(r.Context())))
	})
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		zerolog.Ctx(r.Context()).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("route", r.Pattern).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Msg("HTTP request")
	})
}
