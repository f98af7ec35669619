package middleware

import (
	"time"

	coreport "github.com/amirhossein-jamali/rewards-portal/internal/domain/port/core"
	"github.com/gin-gonic/gin"
)

// RequestObserver records per-request HTTP metrics
type RequestObserver interface {
	ObserveRequest(method, route string, status int, duration time.Duration)
}

// Metrics middleware reports every request except scrapes of metricsPath
func Metrics(observer RequestObserver, timeProvider coreport.TimeProvider, metricsPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == metricsPath {
			c.Next()
			return
		}

		start := timeProvider.Now()
		c.Next()

		observer.ObserveRequest(c.Request.Method, c.FullPath(), c.Writer.Status(), timeProvider.Since(start))
	}
}
