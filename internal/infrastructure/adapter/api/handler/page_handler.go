package handler

import (
	"net/http"
	"net/url"
	"time"

	"github.com/amirhossein-jamali/rewards-portal/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/rewards-portal/internal/infrastructure/adapter/api/view"
	"github.com/amirhossein-jamali/rewards-portal/internal/infrastructure/adapter/locale"
	"github.com/gin-gonic/gin"
)

const languageCookieMaxAge = 365 * 24 * time.Hour

// PageHandler serves public pages and the language switch
type PageHandler struct {
	view    *view.Renderer
	cookies CookieConfig
}

// NewPageHandler creates a new page handler instance
func NewPageHandler(renderer *view.Renderer, cookies CookieConfig) *PageHandler {
	return &PageHandler{view: renderer, cookies: cookies}
}

// Home handles GET /
func (h *PageHandler) Home(c *gin.Context) {
	c.Redirect(http.StatusFound, middleware.LoginPath)
}

// SetLanguage handles GET /set-lang/:code. Unsupported codes leave the
// current preference alone.
func (h *PageHandler) SetLanguage(c *gin.Context) {
	if code := c.Param("code"); locale.IsSupported(code) {
		setCookie(c, h.cookies, middleware.LanguageCookie, code, languageCookieMaxAge)
	}

	c.Redirect(http.StatusFound, backTarget(c))
}

// Static returns a handler rendering an informational page
func (h *PageHandler) Static(titleKey, bodyKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.view.Render(c, http.StatusOK, "page.html", gin.H{
			"TitleKey": titleKey,
			"BodyKey":  bodyKey,
		})
	}
}

// backTarget returns the referring page when it belongs to this site, "/" otherwise
func backTarget(c *gin.Context) string {
	referer := c.Request.Referer()
	if referer == "" {
		return "/"
	}

	u, err := url.Parse(referer)
	if err != nil || (u.Host != "" && u.Host != c.Request.Host) {
		return "/"
	}

	target := u.RequestURI()
	if target == "" || target[0] != '/' {
		return "/"
	}
	return target
}
