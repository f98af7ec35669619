package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPageRouter(t *testing.T) *gin.Engine {
	renderer := newRenderer(t)
	h := NewPageHandler(renderer, testCookies)

	router := newRouter(renderer, nil)
	router.GET("/", h.Home)
	router.GET("/set-lang/:code", h.SetLanguage)
	router.GET("/about-us", h.Static("pages.aboutUs.title", "pages.aboutUs.body"))
	return router
}

func TestHomeRedirectsToLogin(t *testing.T) {
	rec := get(newPageRouter(t), "/")

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestSetLanguage(t *testing.T) {
	testCases := []struct {
		name             string
		code             string
		referer          string
		expectedCookie   string
		expectedLocation string
	}{
		{"supported with referer", "hr", "http://example.com/rewards?x=1", "hr", "/rewards?x=1"},
		{"supported without referer", "cs", "", "cs", "/"},
		{"unsupported", "de", "http://example.com/invest", "", "/invest"},
		{"foreign referer", "hu", "http://evil.test/phish", "hu", "/"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router := newPageRouter(t)
			req := httptest.NewRequest(http.MethodGet, "/set-lang/"+tc.code, nil)
			if tc.referer != "" {
				req.Header.Set("Referer", tc.referer)
			}
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, tc.expectedLocation, rec.Header().Get("Location"))

			cookie := findCookie(rec, "lang")
			if tc.expectedCookie == "" {
				assert.Nil(t, cookie)
				return
			}
			require.NotNil(t, cookie)
			assert.Equal(t, tc.expectedCookie, cookie.Value)
		})
	}
}

func TestStaticPage(t *testing.T) {
	router := newPageRouter(t)

	rec := get(router, "/about-us", &http.Cookie{Name: "lang", Value: "hu"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Rólunk")
	assert.Contains(t, rec.Body.String(), "support@example.com")
}
