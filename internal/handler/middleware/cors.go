package middleware

import (
	"log/slog"
	"slices"

	"lounge-scheduler/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware always exposes the request id and the Location header of
// created resources to browser clients.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	expose := slices.Clone(cfg.ExposeHeaders)
	for _, h := range []string{RequestIDHeader, "Location"} {
		if !slices.Contains(expose, h) {
			expose = append(expose, h)
		}
	}

	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    expose,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	if slices.Contains(cfg.AllowOrigins, "*") {
		corsCfg.AllowOrigins = nil
		corsCfg.AllowAllOrigins = true
		// gin-contrib/cors rejects wildcard origins with credentials
		corsCfg.AllowCredentials = false
	}
	slog.Info("CORS middleware initialized",
		"allow_origins", cfg.AllowOrigins,
		"expose_headers", expose,
		"allow_credentials", corsCfg.AllowCredentials)
	return cors.New(corsCfg)
}
