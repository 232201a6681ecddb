package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/aretw0/riveting"
	"github.com/aretw0/riveting/internal/logging"
	"github.com/aretw0/riveting/internal/search"
	"github.com/aretw0/riveting/pkg/ports"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// maxActionBytes bounds a POST /actions body.
const maxActionBytes = 4 << 10

// Feature is the part of a search feature the server drives.
type Feature interface {
	ViewState() search.ViewState
	Send(action search.Action)
	Interactor() ports.Interactor[search.Action, search.Domain]
	Reducer() ports.Reducer[search.Domain, search.ViewState]
}

// Server exposes one search feature over HTTP.
type Server struct {
	Feature  Feature
	logger   *slog.Logger
	gatherer prometheus.Gatherer
}

// Option configures the handler.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithGatherer serves the gatherer's metrics on GET /metrics.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.gatherer = g
	}
}

// NewHandler creates a new HTTP handler for the feature.
func NewHandler(feature Feature, opts ...Option) http.Handler {
	s := &Server{
		Feature: feature,
		logger:  logging.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(enableCORS)

	r.Get("/healthz", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Get("/state", s.GetState)
	r.Post("/actions", s.PostAction)
	r.Get("/events", s.SubscribeEvents)
	if s.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetHealth handles the GET /healthz request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"app":     "riveting-http",
		"version": riveting.Version,
		"actions": search.ActionTypes,
	})
}

// GetState handles the GET /state request with the published view state.
func (s *Server) GetState(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.Feature.ViewState())
}

// PostAction handles the POST /actions request.
func (s *Server) PostAction(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxActionBytes))
	if err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	action, err := search.DecodeAction(body)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, search.ErrUnknownAction) || errors.Is(err, search.ErrTextTooLarge) {
			status = http.StatusUnprocessableEntity
		}
		http.Error(w, err.Error(), status)
		s.logger.Warn("action rejected", "err", err)
		return
	}

	s.Feature.Send(action)
	s.logger.Debug("action accepted", "action", fmt.Sprintf("%T", action))
	s.writeJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}

// SubscribeEvents handles the GET /events request (SSE). Every connection
// gets its own domain subscription; each emission is reduced and sent as
// one JSON view state.
func (s *Server) SubscribeEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		s.logger.Error("SubscribeEvents: Streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	sub := s.Feature.Interactor().Subscribe()
	defer sub.Close()
	reducer := s.Feature.Reducer()

	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	for {
		d, err := sub.Next(r.Context())
		if err != nil {
			s.logger.Debug("SSE stream finished", "err", err)
			return
		}
		data, err := json.Marshal(reducer.Reduce(d))
		if err != nil {
			s.logger.Error("SSE encode failed", "err", err)
			return
		}
		fmt.Fprintf(w, "data: %s\n\n", data)
		flusher.Flush()
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "err", err)
	}
}
