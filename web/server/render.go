package server

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/disintegration/imaging"

	"github.com/hhhizzz/ray-tracing-one-week/pkg/geometry"
	"github.com/hhhizzz/ray-tracing-one-week/pkg/output"
	"github.com/hhhizzz/ray-tracing-one-week/pkg/renderer"
	"github.com/hhhizzz/ray-tracing-one-week/pkg/scene"
)

// RenderRequest represents a render request from the client
type RenderRequest struct {
	SceneRequest
	SamplesPerPixel int // spp
	MaxDepth        int // depth
}

// parseRenderRequest parses and validates render parameters
func parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	values := r.URL.Query()
	common, err := parseSceneRequest(values)
	if err != nil {
		return nil, err
	}

	req := &RenderRequest{SceneRequest: *common}
	if req.SamplesPerPixel, err = parseIntParam(values, "spp", 50, 1, 10000); err != nil {
		return nil, err
	}
	if req.MaxDepth, err = parseIntParam(values, "depth", 50, 1, 200); err != nil {
		return nil, err
	}

	// Performance warning
	if req.Width > 800 && req.SamplesPerPixel > 100 {
		log.Printf("Render warning: Large image with high samples may render slowly")
	}
	return req, nil
}

// handleRender renders a scene and responds with a PNG.
// The render stops when the client disconnects.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	sc, err := s.buildScene(&req.SceneRequest)
	if errors.Is(err, scene.ErrUnknownScene) {
		writeError(w, http.StatusBadRequest, "Unknown scene: "+req.Scene)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	config := renderer.RenderConfig{
		Width:           req.Width,
		Height:          imageHeight(req.Width, sc),
		SamplesPerPixel: req.SamplesPerPixel,
		MaxDepth:        req.MaxDepth,
		Seed:            req.Seed,
	}
	rt := renderer.NewRaytracer(sc.World, geometry.NewCamera(sc.Camera), sc.Background, config, NewWebLogger(req.Scene))

	fb, stats, err := rt.Render(r.Context())
	if err != nil {
		if r.Context().Err() != nil {
			log.Printf("Render of %s cancelled: %v", req.Scene, err)
			return
		}
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Render error: %v", err))
		return
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, output.ToImage(fb), imaging.PNG); err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode image: %v", err))
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Render-Time", stats.Duration.String())
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
