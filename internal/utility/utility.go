package utility

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// GetRealIP returns the client IP, preferring proxy headers.
func GetRealIP(c echo.Context) string {
	// X-Forwarded-For can be a list: "client, proxy1, proxy2"
	xForwardedFor := c.Request().Header.Get("X-Forwarded-For")
	if xForwardedFor != "" {
		ips := strings.Split(xForwardedFor, ",")
		if firstIP := strings.TrimSpace(ips[0]); firstIP != "" {
			return firstIP
		}
	}

	xRealIP := strings.TrimSpace(c.Request().Header.Get("X-Real-IP"))
	if xRealIP != "" {
		return xRealIP
	}

	return c.RealIP()
}

// LoggerFromContext returns the request-scoped logger installed by the
// server's LoggerMiddleware, or the global logger outside a request.
func LoggerFromContext(c echo.Context) *zerolog.Logger {
	if logger, ok := c.Get("logger").(*zerolog.Logger); ok && logger != nil {
		return logger
	}
	return &log.Logger
}
