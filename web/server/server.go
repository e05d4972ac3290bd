package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/hhhizzz/ray-tracing-one-week/pkg/scene"
)

// Server handles web requests for the raytracer
type Server struct {
	port       int
	textureDir string
	mux        *http.ServeMux
}

// NewServer creates a new web server; textureDir is where image textures are loaded from
func NewServer(port int, textureDir string) *Server {
	s := &Server{port: port, textureDir: textureDir, mux: http.NewServeMux()}

	s.mux.HandleFunc("/api/health", s.handleHealth)
	s.mux.HandleFunc("/api/scenes", s.handleScenes)
	s.mux.HandleFunc("/api/render", s.handleRender)
	s.mux.HandleFunc("/api/inspect", s.handleInspect)
	return s
}

// Handler returns the request router
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.mux)
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the scenes that can be rendered
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"scenes": scene.List()})
}

// SceneRequest holds the parameters shared by render and inspect requests
type SceneRequest struct {
	Scene string
	Width int
	Seed  int64
}

// parseSceneRequest parses the scene, width and seed parameters
func parseSceneRequest(values url.Values) (*SceneRequest, error) {
	req := &SceneRequest{Scene: values.Get("scene")}
	if req.Scene == "" {
		req.Scene = "Random" // Default scene
	}

	var err error
	if req.Width, err = parseIntParam(values, "width", 400, 16, 2000); err != nil {
		return nil, err
	}
	if value := values.Get("seed"); value != "" {
		if req.Seed, err = strconv.ParseInt(value, 10, 64); err != nil {
			return nil, fmt.Errorf("invalid seed: %s", value)
		}
	}
	return req, nil
}

// buildScene builds the requested scene
func (s *Server) buildScene(req *SceneRequest) (*scene.Scene, error) {
	return scene.Build(req.Scene, scene.Options{
		Aperture:   0.1,
		TextureDir: s.textureDir,
		Seed:       req.Seed,
		Logger:     NewWebLogger(req.Scene),
	})
}

// imageHeight derives the row count from the scene camera's aspect ratio
func imageHeight(width int, sc *scene.Scene) int {
	return max(int(float64(width)/sc.Camera.AspectRatio), 1)
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
