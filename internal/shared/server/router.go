package server

import (
	"fmt"
	"github.com/gin-gonic/gin"

	"resume-tailor/internal/documents"
	"resume-tailor/internal/generate"
	"resume-tailor/internal/profiles"
	"resume-tailor/internal/shared/config"
	"resume-tailor/internal/shared/metrics"
	"resume-tailor/internal/shared/server/middleware"
	"resume-tailor/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router mounts.
type RouterDeps struct {
	Config           config.Config
	GenerateHandler  *generate.Handler
	DocumentsHandler *documents.Handler
	ProfilesHandler  *profiles.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/api/v1/health", func(c *gin.Context) {
		respond.OK(c, gin.H{"status": "ok"})
	})
	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.Use(middleware.Identity())
	if deps.GenerateHandler != nil {
		deps.GenerateHandler.RegisterRoutes(api)
	}
	if deps.DocumentsHandler != nil {
		deps.DocumentsHandler.RegisterRoutes(api)
	}
	if deps.ProfilesHandler != nil {
		deps.ProfilesHandler.RegisterRoutes(api)
	}

	return r
}

// Addr formats the listen address for a port.
func Addr(port string) string {
	if port == "" {
		port = "8080"
	}
	return fmt.Sprintf(":%s", port)
}
