package middleware

import (
	"log/slog"
	"slices"
	"strings"

	"travel-booking/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Browser clients read these after POST /api/bookings, whatever CORS_EXPOSE_HEADERS says.
var bookingExposeHeaders = []string{"Location", "Idempotent-Replayed", RequestIDHeader}

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    withHeaders(cfg.ExposeHeaders, bookingExposeHeaders...),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	// Browsers reject credentialed responses for a wildcard origin.
	if slices.Contains(cfg.AllowOrigins, "*") {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		corsCfg.AllowOrigins = cfg.AllowOrigins
	}
	slog.Info("CORS middleware initialized",
		"AllowOrigins", cfg.AllowOrigins,
		"ExposeHeaders", corsCfg.ExposeHeaders,
		"AllowCredentials", corsCfg.AllowCredentials)
	return cors.New(corsCfg)
}

// withHeaders appends extra to base, skipping names already present in any case.
func withHeaders(base []string, extra ...string) []string {
	out := slices.Clone(base)
	for _, h := range extra {
		if !slices.ContainsFunc(out, func(have string) bool { return strings.EqualFold(have, h) }) {
			out = append(out, h)
		}
	}
	return out
}
