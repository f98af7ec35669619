package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// LoginPath is where unauthenticated requests are sent
const LoginPath = "/login"

// RequireLogin redirects anonymous requests to the login page
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin redirects requests from anyone but an administrator to the login page
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || !user.IsAdmin {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}
