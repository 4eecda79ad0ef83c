// Package server exposes the lipsync engine over HTTP: JSON request
// endpoints for text and audio generation, a websocket stream for live
// avatar driving, plus health and metrics.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/raspverry/desktop-partner/internal/config"
	"github.com/raspverry/desktop-partner/internal/lipsync"
	"github.com/raspverry/desktop-partner/internal/metrics"
	"github.com/raspverry/desktop-partner/internal/phoneme"
)

// Request/response defaults mirror the service's original contract.
const (
	defaultLanguage = "ko"
	defaultDuration = 3.0
	defaultUserID   = "default"
)

// GenerateRequest is a text-path lipsync request. UserID is an opaque
// passthrough tag; the engine ignores it.
type GenerateRequest struct {
	Text     string  `json:"text"`
	Language string  `json:"language"`
	Duration float64 `json:"duration"`
	UserID   string  `json:"user_id"`
}

// AnalyzeAudioRequest is an audio-path lipsync request. AudioData is
// base64 in the JSON wire format; SampleRate is passthrough metadata.
type AnalyzeAudioRequest struct {
	AudioData  []byte `json:"audio_data"`
	SampleRate int    `json:"sample_rate"`
	UserID     string `json:"user_id"`
}

// HealthResponse is the health check payload.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// Server is the lipsync HTTP server.
type Server struct {
	cfg        *config.Config
	engine     *lipsync.Engine
	httpServer *http.Server
	logger     zerolog.Logger
	startTime  time.Time
}

// New creates the HTTP server and wires up all routes.
func New(cfg *config.Config, engine *lipsync.Engine, logger zerolog.Logger) *Server {
	s := &Server{
		cfg:       cfg,
		engine:    engine,
		logger:    logger.With().Str("component", "server").Logger(),
		startTime: time.Now(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/lipsync/generate", s.instrument("/lipsync/generate", s.generateHandler))
	mux.HandleFunc("/lipsync/analyze-audio", s.instrument("/lipsync/analyze-audio", s.analyzeAudioHandler))
	mux.HandleFunc("/lipsync/stream", s.streamHandler)
	mux.HandleFunc("/health", s.healthHandler)
	mux.Handle("/metrics", promhttp.Handler())

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      mux,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info().Str("addr", s.httpServer.Addr).Msg("Lipsync service listening")
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// instrument wraps a handler with request logging and Prometheus
// counters. Each request gets a uuid so log lines across the pipeline
// correlate.
func (s *Server) instrument(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		reqID := uuid.NewString()

		rw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(rw, r)

		elapsed := time.Since(start)
		metrics.RequestCount.WithLabelValues(r.Method, endpoint, fmt.Sprintf("%d", rw.status)).Inc()
		metrics.RequestDuration.WithLabelValues(r.Method, endpoint).Observe(elapsed.Seconds())

		s.logger.Debug().
			Str("requestId", reqID).
			Str("method", r.Method).
			Str("endpoint", endpoint).
			Int("status", rw.status).
			Dur("elapsed", elapsed).
			Msg("Request handled")
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// generateHandler handles text-path requests
func (s *Server) generateHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	applyGenerateDefaults(&req)

	result := s.engine.FromText(r.Context(), req.Text, phoneme.Language(req.Language), req.Duration)
	s.writeJSON(w, http.StatusOK, result)
}

// analyzeAudioHandler handles audio-path requests
func (s *Server) analyzeAudioHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req AnalyzeAudioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if len(req.AudioData) == 0 {
		http.Error(w, "audio_data must not be empty", http.StatusBadRequest)
		return
	}

	result := s.engine.FromAudio(r.Context(), req.AudioData)
	s.writeJSON(w, http.StatusOK, result)
}

// healthHandler handles health check requests
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, HealthResponse{Status: "healthy", Service: "lipsync"})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error().Err(err).Msg("Failed to encode response")
	}
}

func applyGenerateDefaults(req *GenerateRequest) {
	if req.Language == "" {
		req.Language = defaultLanguage
	}
	if req.Duration == 0 {
		req.Duration = defaultDuration
	}
	if req.UserID == "" {
		req.UserID = defaultUserID
	}
}
