package middleware

import (
	"context"
	"net/http"

	domainerr "github.com/amirhossein-jamali/rewards-portal/internal/domain/error"
	coreport "github.com/amirhossein-jamali/rewards-portal/internal/domain/port/core"
	"github.com/amirhossein-jamali/rewards-portal/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/rewards-portal/internal/infrastructure/adapter/session"
	"github.com/gin-gonic/gin"
)

// SessionResolver maps a session cookie value to a user identifier
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (uint64, bool, error)
}

// LoadSession attaches the session's user to the request. Requests without a
// valid session, or whose user no longer exists, continue anonymously.
func LoadSession(sessions SessionResolver, users usecase.UserUseCase, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(session.CookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		userID, ok, err := sessions.Resolve(ctx, token)
		if err != nil {
			AbortWithFailure(c, http.StatusInternalServerError, err)
			return
		}
		if !ok {
			c.Next()
			return
		}

		user, err := users.GetUser(ctx, userID)
		if err != nil {
			if domainerr.IsUserNotFoundError(err) {
				logger.Warn("Session refers to missing user", map[string]any{"userId": userID})
				c.Next()
				return
			}
			AbortWithFailure(c, http.StatusInternalServerError, err)
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}
