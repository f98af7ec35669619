package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// SessionManager issues and ends browser sessions
type SessionManager interface {
	Start(ctx context.Context, userID uint64) (string, error)
	End(ctx context.Context, token string) error
	TTL() time.Duration
}

// CookieConfig controls attributes shared by every cookie the handlers set
type CookieConfig struct {
	SessionName string
	Secure      bool
}

func setCookie(c *gin.Context, cfg CookieConfig, name, value string, maxAge time.Duration) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, int(maxAge.Seconds()), "/", "", cfg.Secure, true)
}

func clearCookie(c *gin.Context, cfg CookieConfig, name string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, "", -1, "/", "", cfg.Secure, true)
}
