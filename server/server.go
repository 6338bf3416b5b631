// Package server exposes the resolver over HTTP: a room path either
// redirects to its stream or describes it as JSON.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/livelink-cli/livelink/inline"
	"github.com/livelink-cli/livelink/log"
	"github.com/livelink-cli/livelink/metrics"
	"github.com/livelink-cli/livelink/resolver"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
)

// RoomLookup turns a room reference into a room.
type RoomLookup interface {
	Room(ctx context.Context, reference string) (resolver.Room, error)
}

// Server answers resolution requests over HTTP.
type Server struct {
	engine  inline.Resolver
	rooms   RoomLookup
	gateway bool
	rps     float64
	burst   int
}

// Option configures a Server.
type Option func(*Server)

// WithGateway sets whether the gateway is asked unless a request says otherwise.
func WithGateway(enabled bool) Option {
	return func(s *Server) {
		s.gateway = enabled
	}
}

// WithRateLimit limits requests to rps per second with the given burst. A
// non-positive rps disables limiting.
func WithRateLimit(rps float64, burst int) Option {
	return func(s *Server) {
		s.rps = rps
		s.burst = burst
	}
}

// New returns a server resolving through engine. The gateway is asked by default.
func New(engine inline.Resolver, rooms RoomLookup, options ...Option) *Server {
	server := &Server{engine: engine, rooms: rooms, gateway: true}
	for _, option := range options {
		if option != nil {
			option(server)
		}
	}
	return server
}

// Handler returns the routes wrapped in the middleware stack.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /rooms/{room}", s.handleResolve)
	mux.HandleFunc("GET /rooms/{room}/candidates", s.handleCandidates)

	return recoveryMiddleware(requestIDMiddleware(loggingMiddleware(rateLimitMiddleware(s.rps, s.burst, metricsMiddleware(mux)))))
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	room, ok := s.room(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	request := resolver.Request{Room: room, UseGateway: s.gateway}

	var err error
	if request.Tier, err = inline.ParseTier(query.Get("qn")); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_qn", err.Error())
		return
	}
	if request.Format, err = inline.ParseFormat(query.Get("format")); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_format", err.Error())
		return
	}
	if raw := query.Get("gateway"); raw != "" {
		if request.UseGateway, err = strconv.ParseBool(raw); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_gateway", "gateway must be a boolean")
			return
		}
	}

	start := time.Now()
	result, err := s.engine.Resolve(r.Context(), request)
	metrics.ResolutionDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ResolutionsTotal.WithLabelValues(outcome(err)).Inc()
		s.writeResolveError(w, err)
		return
	}

	metrics.ResolutionsTotal.WithLabelValues(result.Strategy).Inc()
	if result.Fallback {
		metrics.GatewayFallbacksTotal.Inc()
	}

	if query.Has("redirect") {
		http.Redirect(w, r, result.URL, http.StatusFound)
		return
	}

	writeJSON(w, http.StatusOK, inline.NewOutput(room.ID, result, query.Has("candidates")))
}

func (s *Server) handleCandidates(w http.ResponseWriter, r *http.Request) {
	room, ok := s.room(w, r)
	if !ok {
		return
	}

	listing, err := s.engine.List(r.Context(), room)
	if err != nil {
		s.writeResolveError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, inline.NewListing(room.ID, listing))
}

func (s *Server) room(w http.ResponseWriter, r *http.Request) (resolver.Room, bool) {
	room, err := s.rooms.Room(r.Context(), r.PathValue("room"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_room", err.Error())
		return resolver.Room{}, false
	}
	return room, true
}

func (s *Server) writeResolveError(w http.ResponseWriter, err error) {
	var transport *resolver.TransportError
	switch {
	case errors.Is(err, resolver.ErrNoCandidateFound):
		writeError(w, http.StatusNotFound, "no_candidate", err.Error())
	case errors.As(err, &transport):
		writeError(w, http.StatusBadGateway, "upstream_error", err.Error())
	default:
		log.Errorf("resolve: %s", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func outcome(err error) string {
	var transport *resolver.TransportError
	switch {
	case errors.Is(err, resolver.ErrNoCandidateFound):
		return "not_found"
	case errors.As(err, &transport):
		return "transport_error"
	default:
		return "error"
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	_ = encoder.Encode(payload)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}

// Serve listens on addr until ctx is done, then shuts down gracefully.
func Serve(ctx context.Context, addr string, handler http.Handler) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		log.Infof("listening on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Info("shutting down")
		return server.Shutdown(shutdownCtx)
	})

	return group.Wait()
}
