package routes

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/rewards-portal/internal/domain/port/core"
	"github.com/amirhossein-jamali/rewards-portal/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/rewards-portal/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/rewards-portal/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// MetricsPath is where Prometheus scrapes the application
const MetricsPath = "/metrics"

// Handlers groups the request handlers served by the router
type Handlers struct {
	Auth    *handler.AuthHandler
	Account *handler.AccountHandler
	Admin   *handler.AdminHandler
	Page    *handler.PageHandler
	Metrics http.Handler
}

// MiddlewareDeps holds what the global middlewares need
type MiddlewareDeps struct {
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
	Errors       middleware.ErrorRenderer
	Observer     middleware.RequestObserver
	Sessions     middleware.SessionResolver
	Users        usecase.UserUseCase
}

// SetupRoutes configures all the routes of the portal
func SetupRoutes(router *gin.Engine, h Handlers) {
	router.GET("/", h.Page.Home)
	router.GET("/login", h.Auth.LoginPage)
	router.POST("/login", h.Auth.Login)
	router.GET("/register", h.Auth.RegisterPage)
	router.POST("/register", h.Auth.Register)
	router.GET("/logout", h.Auth.Logout)
	router.GET("/set-lang/:code", h.Page.SetLanguage)

	router.GET("/rewards", h.Page.Static("pages.rewards.title", "pages.rewards.body"))
	router.GET("/invest", h.Page.Static("pages.invest.title", "pages.invest.body"))
	router.GET("/about-us", h.Page.Static("pages.aboutUs.title", "pages.aboutUs.body"))

	if h.Metrics != nil {
		router.GET(MetricsPath, gin.WrapH(h.Metrics))
	}

	account := router.Group("/", middleware.RequireLogin())
	{
		account.GET("/dashboard", h.Account.Dashboard)
		account.GET("/withdraw", h.Account.WithdrawPage)
		account.POST("/withdraw/confirm", h.Account.ConfirmWithdrawal)
		account.GET("/invoice/:id", h.Account.Invoice)
	}

	admin := router.Group("/admin", middleware.RequireAdmin())
	{
		admin.GET("", h.Admin.Dashboard)
		admin.POST("/balance", h.Admin.SetBalance)
		admin.POST("/approve", h.Admin.Review)
	}
}

// SetupMiddlewares configures global middlewares in request order:
// recovery, logging, metrics, language, session
func SetupMiddlewares(router *gin.Engine, deps MiddlewareDeps) {
	router.Use(middleware.ErrorHandler(deps.Logger, deps.Errors))
	router.Use(middleware.Logger(deps.Logger, deps.TimeProvider))
	router.Use(middleware.Metrics(deps.Observer, deps.TimeProvider, MetricsPath))
	router.Use(middleware.Language())
	router.Use(middleware.LoadSession(deps.Sessions, deps.Users, deps.Logger))
}
