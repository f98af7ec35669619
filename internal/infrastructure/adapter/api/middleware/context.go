package middleware

import (
	"net/http"

	"github.com/amirhossein-jamali/rewards-portal/internal/domain/entity"
	"github.com/amirhossein-jamali/rewards-portal/internal/infrastructure/adapter/locale"
	"github.com/gin-gonic/gin"
)

// Gin context keys
const (
	ContextUserKey     = "currentUser"
	ContextLanguageKey = "language"
)

// CurrentUser returns the user loaded from the session, nil for anonymous requests
func CurrentUser(c *gin.Context) *entity.User {
	if value, ok := c.Get(ContextUserKey); ok {
		if user, ok := value.(*entity.User); ok {
			return user
		}
	}
	return nil
}

// CurrentLanguage returns the language selected for the request
func CurrentLanguage(c *gin.Context) string {
	if lang := c.GetString(ContextLanguageKey); lang != "" {
		return lang
	}
	return locale.DefaultLanguage
}

// AbortWithFailure records err and stops the chain without writing a response.
// ErrorHandler renders the failure page once the chain unwinds.
func AbortWithFailure(c *gin.Context, status int, err error) {
	if status < http.StatusBadRequest {
		status = http.StatusInternalServerError
	}
	_ = c.Error(err)
	c.Status(status)
	c.Abort()
}
