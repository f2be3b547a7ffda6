// Package ui serves a small read-only dashboard of the current counts and
// the recorded history.
package ui

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/prittamravi/clines/internal/config"
	"github.com/prittamravi/clines/internal/core"
	"github.com/prittamravi/clines/internal/logging"
)

//go:embed templates/*.html
var templateFS embed.FS

type Options struct {
	Root       string
	ConfigPath string
	Variant    config.Variant
}

type Server struct {
	svc    *core.Service
	opts   Options
	engine *gin.Engine
}

func NewServer(svc *core.Service, opts Options) (*Server, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(requestLogger(), recovery())
	engine.SetHTMLTemplate(tmpl)

	s := &Server{svc: svc, opts: opts, engine: engine}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	s.engine.GET("/", s.handleIndex)
	s.engine.GET("/api/report", s.handleAPIReport)
	s.engine.GET("/api/history", s.handleAPIHistory)
	s.engine.GET("/api/history/:id", s.handleAPIRun)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.engine.ServeHTTP(w, r)
}

func (s *Server) ListenAndServe(addr string) error {
	fmt.Printf("clines dashboard running at http://%s\n", addr)
	return http.ListenAndServe(addr, s)
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logging.L().Info("HTTP Request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

func recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logging.L().Error("panic recovered",
					zap.Any("error", err),
					zap.ByteString("stack", debug.Stack()),
					zap.String("path", c.Request.URL.Path),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			}
		}()
		c.Next()
	}
}
