package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/pitchkit/pitchkit/internal/adapters/render"
	service "github.com/pitchkit/pitchkit/internal/app"
)

// Tracking frame rendering defaults: providers ship meter positions on a
// 105x68 field, and frame plots use a tight margin.
const (
	frameLength  = 105
	frameWidth   = 68
	framePadding = 2
)

// RenderHandler handles the POST /render/* endpoints. Each endpoint decodes
// the same job shape, pins the job kind and applies its own pitch defaults.
type RenderHandler struct {
	renderer Renderer
}

// NewRenderHandler creates a new render handler.
func NewRenderHandler(renderer Renderer) *RenderHandler {
	return &RenderHandler{renderer: renderer}
}

// HandlePitch handles POST /render/pitch requests.
func (h *RenderHandler) HandlePitch(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "api.render_pitch", service.KindPitch, nil)
}

// HandlePasses handles POST /render/passes requests.
func (h *RenderHandler) HandlePasses(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "api.render_passes", service.KindPasses, nil)
}

// HandleFrame handles POST /render/frame requests.
func (h *RenderHandler) HandleFrame(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "api.render_frame", service.KindFrame, func(job *service.Job) {
		if job.Pitch.Length == 0 {
			job.Pitch.Length = frameLength
		}
		if job.Pitch.Width == 0 {
			job.Pitch.Width = frameWidth
		}
		if job.Pitch.Markings == "" {
			job.Pitch.Markings = "metric"
		}
		if job.Pitch.Scale == "" {
			job.Pitch.Scale = "metric"
		}
		if job.Pitch.Padding == 0 {
			job.Pitch.Padding = framePadding
		}
	})
}

// HandleSurface handles POST /render/surface requests.
func (h *RenderHandler) HandleSurface(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "api.render_surface", service.KindSurface, nil)
}

func (h *RenderHandler) handle(w http.ResponseWriter, r *http.Request, op, kind string, defaults func(*service.Job)) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var job service.Job
	if err := json.NewDecoder(r.Body).Decode(&job); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", wrapKind(op, ErrBadRequest, err))
		return
	}
	job.Kind = kind
	if defaults != nil {
		defaults(&job)
	}
	if err := requireContent(kind, job); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", wrapKind(op, ErrBadRequest, err))
		return
	}

	img, err := h.renderer.Render(r.Context(), job)
	if err != nil {
		status, code := renderStatus(err)
		writeError(w, status, code, wrapKind(op, ErrRender, err))
		return
	}
	writePNG(w, uuid.NewString(), img)
}

// requireContent checks the overlay the endpoint is named after is present.
func requireContent(kind string, job service.Job) error {
	switch kind {
	case service.KindPasses:
		if len(job.Passes) == 0 && len(job.Points) == 0 {
			return errors.New("missing passes or points")
		}
	case service.KindFrame:
		if job.Frame == nil {
			return errors.New("missing frame")
		}
	case service.KindSurface:
		if job.Surface == nil {
			return errors.New("missing surface")
		}
	}
	return nil
}

// renderStatus maps render errors onto HTTP status codes: input problems are
// the client's, pixel-budget overruns are a payload issue, the rest is ours.
func renderStatus(err error) (status int, code string) {
	switch {
	case errors.Is(err, render.ErrImageTooLarge):
		return http.StatusRequestEntityTooLarge, "too_large"
	case errors.Is(err, service.ErrBadJob),
		errors.Is(err, render.ErrBadViewport):
		return http.StatusBadRequest, "bad_request"
	default:
		// Overlay and pitch validation errors wrap their own sentinels; any
		// of them reaching here is still client input.
		if isInputError(err) {
			return http.StatusBadRequest, "bad_request"
		}
		return http.StatusInternalServerError, "internal"
	}
}

func isInputError(err error) bool {
	for _, kind := range inputErrorKinds() {
		if errors.Is(err, kind) {
			return true
		}
	}
	return false
}
