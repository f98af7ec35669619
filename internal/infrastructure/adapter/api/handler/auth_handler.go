package handler

import (
	"errors"
	"net/http"

	"github.com/amirhossein-jamali/rewards-portal/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/rewards-portal/internal/domain/error"
	coreport "github.com/amirhossein-jamali/rewards-portal/internal/domain/port/core"
	"github.com/amirhossein-jamali/rewards-portal/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/rewards-portal/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/rewards-portal/internal/infrastructure/adapter/api/view"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles login, registration and logout
type AuthHandler struct {
	userUseCase usecase.UserUseCase
	sessions    SessionManager
	view        *view.Renderer
	cookies     CookieConfig
	logger      coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(
	userUseCase usecase.UserUseCase,
	sessions SessionManager,
	renderer *view.Renderer,
	cookies CookieConfig,
	logger coreport.Logger,
) *AuthHandler {
	return &AuthHandler{
		userUseCase: userUseCase,
		sessions:    sessions,
		view:        renderer,
		cookies:     cookies,
		logger:      logger,
	}
}

// LoginPage handles GET /login
func (h *AuthHandler) LoginPage(c *gin.Context) {
	h.view.Render(c, http.StatusOK, "login.html", gin.H{})
}

// Login handles POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	username := c.PostForm("username")

	user, err := h.userUseCase.Authenticate(c.Request.Context(), username, c.PostForm("password"))
	if err != nil {
		if errors.Is(err, domainerr.ErrInvalidCredentials) || domainerr.IsValidationError(err) {
			h.view.Render(c, http.StatusOK, "login.html", gin.H{
				"Username": username,
				"Error":    h.view.Message(c, "login.invalid"),
			})
			return
		}
		middleware.AbortWithFailure(c, http.StatusInternalServerError, err)
		return
	}

	if !h.startSession(c, user) {
		return
	}

	if user.IsAdmin {
		c.Redirect(http.StatusFound, "/admin")
		return
	}
	c.Redirect(http.StatusFound, "/dashboard")
}

// RegisterPage handles GET /register
func (h *AuthHandler) RegisterPage(c *gin.Context) {
	h.view.Render(c, http.StatusOK, "register.html", gin.H{})
}

// Register handles POST /register. A successful registration logs the new user in.
func (h *AuthHandler) Register(c *gin.Context) {
	username := c.PostForm("username")

	user, err := h.userUseCase.Register(c.Request.Context(), username, c.PostForm("password"))
	if err != nil {
		var key string
		switch {
		case domainerr.IsDuplicateUserError(err):
			key = "register.taken"
		case domainerr.IsValidationError(err):
			key = "register.required"
		default:
			middleware.AbortWithFailure(c, http.StatusInternalServerError, err)
			return
		}

		h.view.Render(c, http.StatusOK, "register.html", gin.H{
			"Username": username,
			"Error":    h.view.Message(c, key),
		})
		return
	}

	if !h.startSession(c, user) {
		return
	}

	c.Redirect(http.StatusFound, "/dashboard")
}

// Logout handles GET /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(h.cookies.SessionName); err == nil {
		if err := h.sessions.End(c.Request.Context(), token); err != nil {
			h.logger.Warn("Failed to destroy session", map[string]any{"error": err.Error()})
		}
	}

	clearCookie(c, h.cookies, h.cookies.SessionName)
	c.Redirect(http.StatusFound, middleware.LoginPath)
}

func (h *AuthHandler) startSession(c *gin.Context, user *entity.User) bool {
	token, err := h.sessions.Start(c.Request.Context(), user.ID)
	if err != nil {
		middleware.AbortWithFailure(c, http.StatusInternalServerError, err)
		return false
	}

	setCookie(c, h.cookies, h.cookies.SessionName, token, h.sessions.TTL())
	return true
}
