// Package http provides the gin middleware protecting guarded routes.
package http

import (
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"

	authService "github.com/allisson/signup/internal/auth/service"
	apperrors "github.com/allisson/signup/internal/errors"
	"github.com/allisson/signup/internal/httputil"
)

// AccessGuardMiddleware enforces the access policy on a route group.
//
// The client address comes from c.ClientIP(), which only honours forwarding
// headers from the engine's trusted proxies. Denials are answered with:
//   - 403 "Access denied" when the address is not allow-listed
//   - 401 "Unauthorized" when the bearer credential is missing or wrong
//   - 500 with a generic body on any internal fault
func AccessGuardMiddleware(guard authService.Guard, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				httputil.HandleInternalErrorGin(c, "Security check failed", fmt.Errorf("panic: %v", r), logger)
				c.Abort()
			}
		}()

		clientIP := c.ClientIP()
		err := guard.Check(c.Request.Context(), authService.Request{
			ClientIP:      clientIP,
			Authorization: c.GetHeader("Authorization"),
		})
		if err != nil {
			if apperrors.Is(err, apperrors.ErrForbidden) || apperrors.Is(err, apperrors.ErrUnauthorized) {
				logger.Debug("access denied",
					slog.String("client_ip", clientIP),
					slog.String("path", c.Request.URL.Path),
					slog.Any("reason", err))
				httputil.HandleErrorGin(c, err, logger)
			} else {
				httputil.HandleInternalErrorGin(c, "Security check failed", err, logger)
			}
			c.Abort()
			return
		}

		c.Next()
	}
}
