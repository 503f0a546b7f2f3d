package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"legali_app_go/config"
	"legali_app_go/db"
	"legali_app_go/models"
	"legali_app_go/services"
	"legali_app_go/services/datasource"
	"legali_app_go/services/session"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	testDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, testDB.AutoMigrate(&models.Session{}))

	// Set the global DB variable used by middleware
	db.DB = testDB
	return testDB
}

func requestWithCookie(name, value string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	if value != "" {
		req.AddCookie(&http.Cookie{Name: name, Value: value})
	}
	return req
}

func TestRequireAuth(t *testing.T) {
	testDB := setupTestDB(t)
	e := echo.New()
	sessions := session.NewManager()

	persisted, err := services.CreateSession(testDB, services.SessionParams{UserID: "user-1", UpstreamToken: "upstream-jwt"})
	require.NoError(t, err)

	handler := RequireAuth(sessions)(func(c echo.Context) error {
		token := datasource.TokenFrom(c.Request().Context())
		return c.String(http.StatusOK, token)
	})

	t.Run("ValidSession", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(requestWithCookie(AccessTokenCookie, persisted.Token), rec)

		require.NoError(t, handler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "upstream-jwt", rec.Body.String())
		assert.Equal(t, persisted.ID, GetCurrentSession(c).ID)

		store := GetSessionStore(c)
		require.NotNil(t, store)
		assert.Equal(t, "user-1", store.UserID)
		assert.Equal(t, 1, sessions.Len())
	})

	t.Run("NoCookie", func(t *testing.T) {
		c := e.NewContext(requestWithCookie(AccessTokenCookie, ""), httptest.NewRecorder())
		err := handler(c)
		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		assert.Equal(t, http.StatusUnauthorized, he.Code)
	})

	t.Run("UnknownToken clears cookies", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(requestWithCookie(AccessTokenCookie, "bogus"), rec)
		err := handler(c)
		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		assert.Equal(t, http.StatusUnauthorized, he.Code)
		assert.Len(t, rec.Result().Cookies(), 2)
	})

	t.Run("ExpiredButRefreshable", func(t *testing.T) {
		expired, err := services.CreateSession(testDB, services.SessionParams{UserID: "user-2"})
		require.NoError(t, err)
		require.NoError(t, testDB.Model(expired).Update("expires_at", time.Now().Add(-time.Minute)).Error)

		rec := httptest.NewRecorder()
		c := e.NewContext(requestWithCookie(AccessTokenCookie, expired.Token), rec)
		err = handler(c)
		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		assert.Equal(t, "Session expired", he.Message)
		assert.Empty(t, rec.Result().Cookies())
	})
}

func TestSetAuthCookies(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/auth/login", nil), rec)
	c.Set(ContextKeyConfig, &config.Config{Environment: "production"})

	SetAuthCookies(c, &models.Session{
		Token:            "access",
		RefreshToken:     "refresh",
		ExpiresAt:        time.Now().Add(services.DefaultSessionDuration),
		RefreshExpiresAt: time.Now().Add(services.RefreshSessionDuration),
	})

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 2)
	assert.Equal(t, AccessTokenCookie, cookies[0].Name)
	assert.Equal(t, 7*24*3600, cookies[0].MaxAge)
	assert.Equal(t, RefreshTokenCookie, cookies[1].Name)
	assert.Equal(t, 30*24*3600, cookies[1].MaxAge)
	for _, ck := range cookies {
		assert.True(t, ck.HttpOnly)
		assert.True(t, ck.Secure)
		assert.Equal(t, http.SameSiteLaxMode, ck.SameSite)
	}
}
