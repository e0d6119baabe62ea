// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	service "github.com/pitchkit/pitchkit/internal/app"
	"github.com/pitchkit/pitchkit/pkg/metrics"
)

// Renderer is the dependency HTTP handlers need: turn a job into a PNG.
type Renderer interface {
	Render(ctx context.Context, job service.Job) ([]byte, error)
}

// Server wires HTTP routes for the render API.
type Server struct {
	healthHandler *HealthHandler
	statsHandler  *StatsHandler
	renderHandler *RenderHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(renderer Renderer, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler: NewHealthHandler(),
		statsHandler:  NewStatsHandler(statsProvider),
		renderHandler: NewRenderHandler(renderer),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.Handle("/metrics", metrics.Handler())

	mux.HandleFunc("/render/pitch", MetricsMiddleware(s.renderHandler.HandlePitch, "render_pitch"))
	mux.HandleFunc("/render/passes", MetricsMiddleware(s.renderHandler.HandlePasses, "render_passes"))
	mux.HandleFunc("/render/frame", MetricsMiddleware(s.renderHandler.HandleFrame, "render_frame"))
	mux.HandleFunc("/render/surface", MetricsMiddleware(s.renderHandler.HandleSurface, "render_surface"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

func writePNG(w http.ResponseWriter, renderID string, img []byte) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("X-Render-ID", renderID)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(img)
}
