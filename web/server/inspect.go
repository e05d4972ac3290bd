package server

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/hhhizzz/ray-tracing-one-week/pkg/core"
	"github.com/hhhizzz/ray-tracing-one-week/pkg/geometry"
	"github.com/hhhizzz/ray-tracing-one-week/pkg/integrator"
	"github.com/hhhizzz/ray-tracing-one-week/pkg/material"
	"github.com/hhhizzz/ray-tracing-one-week/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	MaterialType string                 `json:"materialType,omitempty"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	FrontFace    bool                   `json:"frontFace"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

func vec(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// extractMaterialInfo extracts detailed material information with type assertions
func extractMaterialInfo(mat material.Material) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch m := mat.(type) {
	case *material.Lambertian:
		properties["albedo"] = extractTextureInfo(m.Albedo)
		return "lambertian", properties
	case *material.Metal:
		properties["albedo"] = vec(m.Albedo)
		properties["fuzzness"] = m.Fuzzness
		return "metal", properties
	case *material.Dielectric:
		properties["refractiveIndex"] = m.RefractiveIndex
		return "dielectric", properties
	case *material.DiffuseLight:
		properties["emit"] = extractTextureInfo(m.Emit)
		return "diffuse_light", properties
	case *material.Isotropic:
		properties["albedo"] = extractTextureInfo(m.Albedo)
		return "isotropic", properties
	default:
		return "unknown", properties
	}
}

func extractTextureInfo(tex material.Texture) map[string]interface{} {
	switch t := tex.(type) {
	case *material.SolidColor:
		return map[string]interface{}{
			"type":  "solid",
			"color": fmt.Sprintf("#%02x%02x%02x", channel(t.Color.X), channel(t.Color.Y), channel(t.Color.Z)),
			"value": vec(t.Color),
		}
	case *material.CheckerTexture:
		return map[string]interface{}{"type": "checker"}
	case *material.NoiseTexture:
		return map[string]interface{}{"type": "noise", "scale": t.Scale}
	case *material.ImageTexture:
		return map[string]interface{}{"type": "image", "width": t.Width, "height": t.Height}
	default:
		return map[string]interface{}{"type": "unknown"}
	}
}

// channel maps a linear value to a display byte, clamping emitters
func channel(c float64) int {
	return int(math.Min(math.Max(c, 0), 1) * 255)
}

// inspectPixel casts a ray through the centre of framebuffer pixel (x, y), top row first
func inspectPixel(sc *scene.Scene, width, height, x, y int) (*material.HitRecord, bool) {
	camera := geometry.NewCamera(sc.Camera)

	// A fixed sampler keeps the lens and shutter sample stable between requests
	sampler := core.NewSeededSampler(1)
	row := height - 1 - y
	u := (float64(x) + 0.5) / float64(max(width-1, 1))
	v := (float64(row) + 0.5) / float64(max(height-1, 1))
	ray := camera.GetRay(u, v, sampler)

	return sc.World.Hit(ray, integrator.ShadowAcneEpsilon, math.Inf(1), sampler)
}

// handleInspect reports what the camera sees through one pixel
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	req, err := parseSceneRequest(values)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	pixelX, err := strconv.Atoi(values.Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(values.Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}

	sc, err := s.buildScene(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	height := imageHeight(req.Width, sc)
	if pixelX < 0 || pixelX >= req.Width || pixelY < 0 || pixelY >= height {
		writeError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	hit, ok := inspectPixel(sc, req.Width, height, pixelX, pixelY)
	if !ok {
		writeJSON(w, http.StatusOK, InspectResponse{Hit: false})
		return
	}

	materialType, properties := extractMaterialInfo(hit.Material)
	writeJSON(w, http.StatusOK, InspectResponse{
		Hit:          true,
		MaterialType: materialType,
		Point:        vec(hit.Point),
		Normal:       vec(hit.Normal),
		Distance:     hit.T,
		FrontFace:    hit.FrontFace,
		Properties:   properties,
	})
}
