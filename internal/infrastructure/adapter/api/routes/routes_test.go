package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirhossein-jamali/rewards-portal/internal/domain/entity"
	"github.com/amirhossein-jamali/rewards-portal/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/rewards-portal/internal/infrastructure/adapter/api/view"
	"github.com/amirhossein-jamali/rewards-portal/internal/infrastructure/adapter/locale"
	"github.com/amirhossein-jamali/rewards-portal/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/rewards-portal/internal/infrastructure/adapter/metrics"
	"github.com/amirhossein-jamali/rewards-portal/internal/infrastructure/adapter/session"
	timeadapter "github.com/amirhossein-jamali/rewards-portal/internal/infrastructure/adapter/time"
	usecasemocks "github.com/amirhossein-jamali/rewards-portal/mocks/port/usecase"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type portal struct {
	router      *gin.Engine
	users       *usecasemocks.MockUserUseCase
	withdrawals *usecasemocks.MockWithdrawalUseCase
	sessions    *session.Manager
}

func newPortal(t *testing.T) *portal {
	gin.SetMode(gin.TestMode)

	log := logger.NewNoopLogger()
	clock := timeadapter.NewRealTimeProvider()
	users := usecasemocks.NewMockUserUseCase(t)
	withdrawals := usecasemocks.NewMockWithdrawalUseCase(t)
	sessions := session.NewManager(
		session.NewMemoryStore(time.Hour, clock),
		session.NewTokenSigner("secret", time.Hour, clock),
		time.Hour,
		log,
	)

	store, err := locale.NewStore()
	require.NoError(t, err)
	renderer, err := view.NewRenderer(store, "")
	require.NoError(t, err)
	prom := metrics.NewPrometheus()
	cookies := handler.CookieConfig{SessionName: session.CookieName}

	router := gin.New()
	router.SetHTMLTemplate(renderer.Template())
	SetupMiddlewares(router, MiddlewareDeps{
		Logger:       log,
		TimeProvider: clock,
		Errors:       renderer,
		Observer:     prom,
		Sessions:     sessions,
		Users:        users,
	})
	SetupRoutes(router, Handlers{
		Auth:    handler.NewAuthHandler(users, sessions, renderer, cookies, log),
		Account: handler.NewAccountHandler(withdrawals, renderer, log),
		Admin:   handler.NewAdminHandler(users, withdrawals, renderer, log),
		Page:    handler.NewPageHandler(renderer, cookies),
		Metrics: prom.Handler(),
	})

	return &portal{router: router, users: users, withdrawals: withdrawals, sessions: sessions}
}

func (p *portal) get(t *testing.T, target string, userID uint64) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if userID != 0 {
		token, err := p.sessions.Start(context.Background(), userID)
		require.NoError(t, err)
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	}
	rec := httptest.NewRecorder()
	p.router.ServeHTTP(rec, req)
	return rec
}

func user(id uint64, isAdmin bool) *entity.User {
	now := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	return entity.RestoreUser(id, "user", "hash", decimal.RequireFromString("100"), isAdmin, now, now)
}

func TestPublicRoutes(t *testing.T) {
	p := newPortal(t)

	rec := p.get(t, "/", 0)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	for _, path := range []string{"/login", "/register", "/rewards", "/invest", "/about-us"} {
		assert.Equal(t, http.StatusOK, p.get(t, path, 0).Code, path)
	}
}

func TestGuards(t *testing.T) {
	testCases := []struct {
		name   string
		path   string
		user   *entity.User
		status int
	}{
		{"anonymous dashboard", "/dashboard", nil, http.StatusFound},
		{"anonymous withdraw", "/withdraw", nil, http.StatusFound},
		{"anonymous invoice", "/invoice/1", nil, http.StatusFound},
		{"anonymous admin", "/admin", nil, http.StatusFound},
		{"customer admin", "/admin", user(7, false), http.StatusFound},
		{"customer withdraw", "/withdraw", user(7, false), http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := newPortal(t)
			var userID uint64
			if tc.user != nil {
				userID = tc.user.ID
				p.users.EXPECT().GetUser(mock.Anything, userID).Return(tc.user, nil)
			}

			rec := p.get(t, tc.path, userID)

			assert.Equal(t, tc.status, rec.Code)
			if tc.status == http.StatusFound {
				assert.Equal(t, "/login", rec.Header().Get("Location"))
			}
		})
	}
}

func TestAdminRouteForAdministrator(t *testing.T) {
	p := newPortal(t)
	p.users.EXPECT().GetUser(mock.Anything, uint64(1)).Return(user(1, true), nil)
	p.users.EXPECT().ListCustomers(mock.Anything).Return(nil, nil)
	p.withdrawals.EXPECT().ListAll(mock.Anything).Return(nil, nil)

	rec := p.get(t, "/admin", 1)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	p := newPortal(t)
	p.get(t, "/rewards", 0)

	rec := p.get(t, MetricsPath, 0)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `http_requests_total{method="GET",route="/rewards",status="200"} 1`)
}
