package middleware

import (
	"fmt"
	"net/http"

	domainerr "github.com/amirhossein-jamali/rewards-portal/internal/domain/error"
	coreport "github.com/amirhossein-jamali/rewards-portal/internal/domain/port/core"
	"github.com/gin-gonic/gin"
)

// ErrorRenderer writes the generic failure page
type ErrorRenderer interface {
	RenderError(c *gin.Context, status int)
}

// ErrorHandler middleware recovers from panics and renders the failure page
// for requests aborted through AbortWithFailure
func ErrorHandler(logger coreport.Logger, renderer ErrorRenderer) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Panic recovered in request", map[string]any{
					"error":      fmt.Sprint(err),
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
					"client_ip":  c.ClientIP(),
					"request_id": c.GetHeader("X-Request-ID"),
					"user_agent": c.Request.UserAgent(),
				})

				c.Abort()
				renderer.RenderError(c, http.StatusInternalServerError)
			}
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status := c.Writer.Status()
		if status < http.StatusBadRequest {
			status = http.StatusInternalServerError
		}

		logger.Error("Request failed", map[string]any{
			"error":      err.Error(),
			"error_code": domainerr.ErrorCode(err),
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"status":     status,
		})

		renderer.RenderError(c, status)
	}
}
