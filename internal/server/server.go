// Package server is the local preview server: it re-runs the generation
// pipeline on every request so descriptor edits show up on refresh.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/rs/cors"

	"github.com/natenatters/manchester-gis/pkg/descriptor"
	"github.com/natenatters/manchester-gis/pkg/fort"
	"github.com/natenatters/manchester-gis/pkg/scene"
	"github.com/natenatters/manchester-gis/pkg/shapes"
	"github.com/natenatters/manchester-gis/pkg/temporal"
	"github.com/natenatters/manchester-gis/pkg/validation"
)

// fortsFile is the conventional fort definition file inside a project
// directory.
const fortsFile = "forts.yaml"

// Server is the local development server for the map viewer.
type Server struct {
	projectPath string
	port        int
	log         *slog.Logger
}

// New creates a server for the given project path.
func New(projectPath string, port int) *Server {
	return &Server{
		projectPath: projectPath,
		port:        port,
		log:         slog.New(newLogHandler()),
	}
}

// newLogHandler selects the log format from LOG_FORMAT ("json" or
// "text", default text).
func newLogHandler() slog.Handler {
	if os.Getenv("LOG_FORMAT") == "json" {
		return slog.NewJSONHandler(os.Stderr, nil)
	}
	return slog.NewTextHandler(os.Stderr, nil)
}

// Start launches the HTTP server.
func (s *Server) Start() error {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/entities", s.handleEntities)
	mux.HandleFunc("GET /api/forts", s.handleForts)
	mux.HandleFunc("GET /api/periods", s.handlePeriods)
	mux.HandleFunc("GET /api/validation", s.handleValidation)
	mux.HandleFunc("GET /", s.handleIndex)

	addr := fmt.Sprintf(":%d", s.port)
	s.log.Info("preview server starting", "addr", "http://localhost"+addr, "project", s.projectPath)

	return http.ListenAndServe(addr, cors.Default().Handler(mux))
}

func (s *Server) loadProject() (*descriptor.Project, error) {
	info, err := os.Stat(s.projectPath)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return descriptor.LoadProject(s.projectPath)
	}
	return descriptor.Load(s.projectPath)
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, `<!DOCTYPE html>
<html><head><title>Manchester GIS</title></head>
<body style="margin:0;background:#111;color:#fff;font-family:system-ui;display:flex;align-items:center;justify-content:center;height:100vh">
<div style="text-align:center">
<h1>Manchester GIS</h1>
<p>Viewer not embedded. Fetch <code>/api/entities</code>, <code>/api/forts</code>, or <code>/api/periods</code>.</p>
</div>
</body></html>`)
}

func (s *Server) handleEntities(w http.ResponseWriter, _ *http.Request) {
	project, err := s.loadProject()
	if err != nil {
		s.fail(w, "loading project", err)
		return
	}

	var entities []scene.Positioned
	for _, st := range project.Structures {
		base := shapes.Generate(st)
		entities = append(entities, temporal.Expand(st, base, project.Periods)...)
	}

	s.writeJSON(w, scene.Assemble(project.Description, project.Materials, entities))
}

func (s *Server) handleForts(w http.ResponseWriter, _ *http.Request) {
	path := s.fortsPath()
	fp, err := descriptor.LoadForts(path)
	if errors.Is(err, os.ErrNotExist) {
		s.writeJSON(w, scene.AssembleForts("", nil, nil))
		return
	}
	if err != nil {
		s.fail(w, "loading forts", err)
		return
	}

	s.writeJSON(w, scene.AssembleForts(fp.Description, fp.Materials, fort.GenerateAll(fp)))
}

func (s *Server) handlePeriods(w http.ResponseWriter, _ *http.Request) {
	project, err := s.loadProject()
	if err != nil {
		s.fail(w, "loading project", err)
		return
	}
	s.writeJSON(w, project.Periods)
}

func (s *Server) handleValidation(w http.ResponseWriter, _ *http.Request) {
	project, err := s.loadProject()
	if err != nil {
		s.fail(w, "loading project", err)
		return
	}
	report := validation.ValidateProject(project)

	if fp, err := descriptor.LoadForts(s.fortsPath()); err == nil {
		report.Merge(validation.ValidateForts(fp))
	}

	s.writeJSON(w, report)
}

func (s *Server) fortsPath() string {
	if info, err := os.Stat(s.projectPath); err == nil && info.IsDir() {
		return filepath.Join(s.projectPath, fortsFile)
	}
	return filepath.Join(filepath.Dir(s.projectPath), fortsFile)
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("encoding response", "error", err)
	}
}

func (s *Server) fail(w http.ResponseWriter, context string, err error) {
	s.log.Error(context, "error", err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(map[string]string{"error": fmt.Sprintf("%s: %v", context, err)})
}
