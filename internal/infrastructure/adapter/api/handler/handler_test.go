package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/amirhossein-jamali/rewards-portal/internal/domain/entity"
	"github.com/amirhossein-jamali/rewards-portal/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/rewards-portal/internal/infrastructure/adapter/api/view"
	"github.com/amirhossein-jamali/rewards-portal/internal/infrastructure/adapter/locale"
	"github.com/amirhossein-jamali/rewards-portal/internal/infrastructure/adapter/logger"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var created = time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)

var testCookies = CookieConfig{SessionName: "rp_session"}

func customer(balance string) *entity.User {
	return entity.RestoreUser(7, "alice", "hash", decimal.RequireFromString(balance), false, created, created)
}

func administrator() *entity.User {
	return entity.RestoreUser(1, "admin", "hash", decimal.Zero, true, created, created)
}

func withdrawal(id uint64, owner *entity.User, amount string, status entity.TransactionStatus) *entity.Transaction {
	value := decimal.RequireFromString(amount)
	return &entity.Transaction{
		ID:      id,
		UserID:  owner.ID,
		Type:    entity.TypeWithdrawal,
		Amount:  value,
		VATFee:  entity.ComputeVATFee(value),
		Method:  "bank",
		Details: "IBAN",
		Status:  status,
		Date:    created,
		User:    owner,
	}
}

func newRenderer(t *testing.T) *view.Renderer {
	t.Helper()
	store, err := locale.NewStore()
	require.NoError(t, err)
	renderer, err := view.NewRenderer(store, "support@example.com")
	require.NoError(t, err)
	return renderer
}

// newRouter builds an engine with the failure page, language selection and
// a fixed current user in place of the session middleware
func newRouter(renderer *view.Renderer, user *entity.User) *gin.Engine {
	router := gin.New()
	router.SetHTMLTemplate(renderer.Template())
	router.Use(middleware.ErrorHandler(logger.NewNoopLogger(), renderer))
	router.Use(middleware.Language())
	router.Use(func(c *gin.Context) {
		if user != nil {
			c.Set(middleware.ContextUserKey, user)
		}
		c.Next()
	})
	return router
}

func get(router *gin.Engine, target string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func postForm(router *gin.Engine, target string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}
