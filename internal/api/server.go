// Package api exposes the HTTP interface for the scraper service.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"lolscout/internal/config"
	"lolscout/internal/lolalytics"
	"lolscout/internal/metrics"
)

// StatsProvider is the slice of the scraping client the server depends on.
type StatsProvider interface {
	Tierlist(ctx context.Context, n int, lane, rank string) ([]lolalytics.TierlistEntry, error)
	Counters(ctx context.Context, n int, champion, rank string) ([]lolalytics.CounterEntry, error)
	ChampionData(ctx context.Context, champion, lane, rank string) (lolalytics.ChampionStats, error)
	Matchup(ctx context.Context, champion, opponent, lane, rank string) (lolalytics.MatchupStats, error)
	PatchNotes(ctx context.Context, category, rank string) (lolalytics.PatchNotes, error)
}

// Server wires HTTP handlers to the scraping client.
type Server struct {
	router chi.Router
	stats  StatsProvider
	cfg    config.Config
	logger *zap.Logger
}

// NewServer constructs a Server with middleware and routes.
func NewServer(stats StatsProvider, cfg config.Config, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	metrics.Init()

	s := &Server{stats: stats, cfg: cfg, logger: logger}

	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(s.recoverMiddleware)
	r.Use(metrics.Middleware)
	r.Use(timeoutMiddleware(60 * time.Second))

	r.Get("/healthz", s.healthz)
	r.Get("/readyz", s.readyz)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/v1", func(r chi.Router) {
		if cfg.Auth.Enabled {
			r.Use(apiKeyMiddleware(cfg.Auth.APIKey))
		}
		r.Get("/tierlist", s.getTierlist)
		r.Get("/patch-notes", s.getPatchNotes)
		r.Route("/champions/{champion}", func(r chi.Router) {
			r.Get("/counters", s.getCounters)
			r.Get("/build", s.getChampionData)
			r.Get("/vs/{opponent}", s.getMatchup)
		})
		r.Route("/meta", func(r chi.Router) {
			r.Get("/lanes", s.getLanes)
			r.Get("/ranks", s.getRanks)
		})
	})

	s.router = r
	return s
}

// Handler returns the Router for use with http.Server.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) readyz(w http.ResponseWriter, _ *http.Request) {
	// The service holds no downstream connections to probe.
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func (s *Server) getTierlist(w http.ResponseWriter, r *http.Request) {
	limit, err := s.limitParam(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	entries, err := s.stats.Tierlist(r.Context(), limit, s.laneParam(r), s.rankParam(r))
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"entries": entries})
}

func (s *Server) getCounters(w http.ResponseWriter, r *http.Request) {
	limit, err := s.limitParam(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	champion := chi.URLParam(r, "champion")
	entries, err := s.stats.Counters(r.Context(), limit, champion, s.rankParam(r))
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"champion": champion, "counters": entries})
}

func (s *Server) getChampionData(w http.ResponseWriter, r *http.Request) {
	champion := chi.URLParam(r, "champion")
	stats, err := s.stats.ChampionData(r.Context(), champion, s.laneParam(r), s.rankParam(r))
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, stats)
}

func (s *Server) getMatchup(w http.ResponseWriter, r *http.Request) {
	champion := chi.URLParam(r, "champion")
	opponent := chi.URLParam(r, "opponent")
	stats, err := s.stats.Matchup(r.Context(), champion, opponent, s.laneParam(r), s.rankParam(r))
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, stats)
}

func (s *Server) getPatchNotes(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		category = string(lolalytics.CategoryAll)
	}
	notes, err := s.stats.PatchNotes(r.Context(), category, s.rankParam(r))
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, notes)
}

func (s *Server) getLanes(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, lolalytics.LaneAliases())
}

func (s *Server) getRanks(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, lolalytics.RankAliases())
}

func (s *Server) laneParam(r *http.Request) string {
	if lane := r.URL.Query().Get("lane"); lane != "" {
		return lane
	}
	return s.cfg.Defaults.Lane
}

func (s *Server) rankParam(r *http.Request) string {
	if rank := r.URL.Query().Get("rank"); rank != "" {
		return rank
	}
	return s.cfg.Defaults.Rank
}

func (s *Server) limitParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return s.cfg.Defaults.Limit, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("limit must be an integer")
	}
	return limit, nil
}

// writeFailure maps the pipeline error taxonomy onto HTTP statuses:
// request-shaping failures are the caller's fault, upstream transport and
// extraction failures are bad-gateway conditions.
func (s *Server) writeFailure(w http.ResponseWriter, r *http.Request, err error) {
	var (
		invalidLane *lolalytics.InvalidLaneError
		invalidRank *lolalytics.InvalidRankError
		transport   *lolalytics.TransportError
		extraction  *lolalytics.ExtractionError
	)
	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &invalidLane),
		errors.As(err, &invalidRank),
		errors.Is(err, lolalytics.ErrEmptyChampion),
		errors.Is(err, lolalytics.ErrSameChampion),
		errors.Is(err, lolalytics.ErrNonPositiveLimit),
		errors.Is(err, lolalytics.ErrUnknownCategory):
		status = http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		status = http.StatusGatewayTimeout
	case errors.As(err, &transport), errors.As(err, &extraction):
		status = http.StatusBadGateway
	}

	s.logger.Warn("request failed",
		zap.String("path", r.URL.Path),
		zap.Int("status", status),
		zap.Error(err),
	)
	s.writeError(w, status, err.Error())
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("write JSON failed", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}

func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.NewString()
		ctx := context.WithValue(r.Context(), requestIDKey{}, reqID)
		w.Header().Set("X-Request-ID", reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(ww, r)
		s.logger.Info("request completed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.status),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
	})
}

func (s *Server) recoverMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error("panic recovered", zap.Any("error", rec))
				s.writeError(w, http.StatusInternalServerError, "internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func timeoutMiddleware(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.TimeoutHandler(next, d, "request timed out")
	}
}

func apiKeyMiddleware(expected string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get("X-API-Key")
			if key == "" {
				key = r.URL.Query().Get("api_key")
			}
			if key != expected {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				_, _ = w.Write([]byte(`{"error":"unauthorized"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

type responseWriter struct {
	http.ResponseWriter
	status int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

type requestIDKey struct{}
