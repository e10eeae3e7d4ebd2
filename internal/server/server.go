// Package server exposes the generation pipeline and run history over a
// small HTTP API for the local dashboard.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"protoforge/internal/archive"
	"protoforge/internal/config"
	"protoforge/internal/history"
	"protoforge/internal/materialize"
	"protoforge/internal/pipeline"
)

// Server holds the dependencies shared by all handlers.
type Server struct {
	cfg *config.Configuration
	log *zap.Logger
}

// New creates a server bound to the given configuration.
func New(cfg *config.Configuration, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{cfg: cfg, log: log}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	api := r.Group("/api")
	{
		api.POST("/generate", s.generateHandler)
		api.GET("/projects", s.projectsHandler)
		api.GET("/projects/:name/manifest", s.manifestHandler)
		api.POST("/projects/:name/archive", s.archiveHandler)
	}

	return r
}

// Run starts the HTTP server on the configured address.
func (s *Server) Run() error {
	return s.Router().Run(s.cfg.ServeAddr)
}

// generateRequest is the body for POST /api/generate. Text is a raw model
// completion; the server does not call providers itself.
type generateRequest struct {
	Text        string `json:"text" binding:"required"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (s *Server) generateHandler(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	name := req.Name
	if name == "" {
		name = "prototype"
	}
	targetDir := filepath.Join(s.cfg.OutputDir, materialize.Slug(name))

	result, err := pipeline.Run(req.Text, pipeline.Options{
		TargetDir:   targetDir,
		Description: req.Description,
		Logger:      s.log,
	})
	if err != nil {
		s.log.Warn("generation failed", zap.String("dir", targetDir), zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": err.Error(),
			"dir":   targetDir,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"dir": targetDir, "result": result})
}

func (s *Server) projectsHandler(c *gin.Context) {
	hist, err := history.Load(s.cfg.StateDir)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load history: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": hist.Entries})
}

func (s *Server) manifestHandler(c *gin.Context) {
	name := c.Param("name")
	dir, ok := s.projectDir(name)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid project name %q", name)})
		return
	}

	data, err := os.ReadFile(filepath.Join(dir, "prototype.json"))
	if err != nil {
		if os.IsNotExist(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("no manifest for project %q", name)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var spec map[string]any
	if err := json.Unmarshal(data, &spec); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "stored manifest is not valid JSON: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, spec)
}

func (s *Server) archiveHandler(c *gin.Context) {
	name := c.Param("name")
	dir, ok := s.projectDir(name)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid project name %q", name)})
		return
	}
	if _, err := os.Stat(dir); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("project %q not found", name)})
		return
	}

	zipPath, err := archive.Build(dir)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build archive: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"archive": zipPath})
}

// projectDir resolves a project name to its directory under the output
// root, rejecting names that would escape it.
func (s *Server) projectDir(name string) (string, bool) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", false
	}
	return filepath.Join(s.cfg.OutputDir, name), true
}
