// Package api exposes the practice service as a JSON HTTP API for the chat
// and dashboard front-ends.
package api

import (
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/abhisek/bandwise/internal/session"
)

// RequestIDHeader carries the per-request identifier.
const RequestIDHeader = "X-Request-ID"

// Options configures the router.
type Options struct {
	// CORSOrigins lists allowed browser origins. "*" allows any origin.
	CORSOrigins []string

	Logger *slog.Logger
}

type handler struct {
	svc    *session.Service
	logger *slog.Logger
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(svc *session.Service, opts Options) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	h := &handler{svc: svc, logger: logger}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestID())
	r.Use(accessLog(logger))
	r.Use(cors.New(corsConfig(opts.CORSOrigins)))

	r.GET("/health", h.health)

	v1 := r.Group("/v1")
	{
		v1.GET("/syllabus", h.syllabus)
		v1.GET("/vocabulary/:level", h.vocabulary)
		v1.POST("/translate", h.translate)

		u := v1.Group("/users/:user")
		u.Use(h.loadSession)
		{
			u.POST("/practice", h.startPractice)
			u.POST("/questions/archived", h.archivedQuestion)
			u.POST("/questions/generated", h.generatedQuestion)
			u.POST("/skip", h.skip)
			u.GET("/question", h.currentQuestion)
			u.POST("/answer", h.submitAnswer)
			u.GET("/history", h.history)
			u.GET("/scores", h.scores)
			u.GET("/dashboard", h.dashboard)
			u.GET("/projection", h.projection)
			u.GET("/plan", h.plan)
			u.PUT("/language", h.setLanguage)
		}
	}
	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", RequestIDHeader},
		ExposeHeaders: []string{RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}

// requestID reuses a caller-supplied request ID or assigns a new one.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

func accessLog(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("http_request",
			"request_id", c.GetString("request_id"),
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}

func (h *handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"sessions": h.svc.Store().Len(),
	})
}
