package server

import (
	"embed"
	"errors"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"ai_blog_assistant/generator"
)

//go:embed web/templates/*.html web/static/*
var embeddedWeb embed.FS

// Options carries the values the server reports or needs besides its
// collaborators.
type Options struct {
	Provider    string
	Model       string
	CORSOrigins []string
}

type Server struct {
	agent  *generator.Agent
	store  SessionStore
	opts   Options
	engine *gin.Engine
}

func New(agent *generator.Agent, store SessionStore, opts Options) (*Server, error) {
	if agent == nil {
		return nil, errors.New("generator agent required")
	}
	if store == nil {
		return nil, errors.New("session store required")
	}

	tmpl, err := template.ParseFS(embeddedWeb, "web/templates/*.html")
	if err != nil {
		return nil, err
	}
	static, err := fs.Sub(embeddedWeb, "web/static")
	if err != nil {
		return nil, err
	}

	s := &Server{agent: agent, store: store, opts: opts}

	engine := gin.New()
	engine.Use(gin.Recovery(), logMiddleware(), securityMiddleware(), corsMiddleware(opts.CORSOrigins))
	engine.SetHTMLTemplate(tmpl)
	engine.StaticFS("/static", http.FS(static))
	s.engine = engine
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	r := s.engine

	r.GET("/health", s.handleHealth)

	r.GET("/", s.handleIndex)
	r.POST("/titles", s.handleSubmitTopic)
	r.POST("/title", s.handlePickTitle)
	r.POST("/keywords", s.handleAddKeyword)
	r.POST("/keywords/clear", s.handleClearKeywords)
	r.POST("/blog", s.handleGenerateBlog)

	api := r.Group("/api/v1")
	api.POST("/titles", s.apiSuggestTitles)
	api.POST("/blog", s.apiWriteBlog)
	api.POST("/sessions", s.apiCreateSession)
	api.GET("/sessions/:id", s.apiGetSession)
	api.POST("/sessions/:id/keywords", s.apiAddKeyword)
	api.DELETE("/sessions/:id/keywords", s.apiClearKeywords)
}

// Handler exposes the router for http.Server and tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"provider": s.opts.Provider,
		"model":    s.opts.Model,
	})
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	cfg.AllowOrigins = origins
	cfg.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type"}
	return cors.New(cfg)
}

// logMiddleware logs one line per request. Bodies are never logged since
// they carry prompts and generated posts.
func logMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.Request.URL.Path
		if path == "" {
			path = "/"
		}
		entry := log.WithFields(log.Fields{
			"method":  c.Request.Method,
			"path":    path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
			"client":  c.ClientIP(),
		})
		if len(c.Errors) > 0 {
			entry = entry.WithField("errors", c.Errors.String())
		}
		switch {
		case c.Writer.Status() >= http.StatusInternalServerError:
			entry.Warn("[Server] request")
		default:
			entry.Info("[Server] request")
		}
	}
}
