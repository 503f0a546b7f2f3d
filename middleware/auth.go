package middleware

import (
	"errors"
	"net/http"

	"legali_app_go/config"
	"legali_app_go/db"
	"legali_app_go/models"
	"legali_app_go/services"
	"legali_app_go/services/datasource"
	"legali_app_go/services/session"

	"github.com/labstack/echo/v4"
)

const (
	// AccessTokenCookie holds the opaque access token (7 days)
	AccessTokenCookie = "access_token"
	// RefreshTokenCookie holds the opaque refresh token (30 days)
	RefreshTokenCookie = "refresh_token"
	// ContextKeySession is the context key for the persisted session row
	ContextKeySession = "session"
	// ContextKeyStore is the context key for the per-session store
	ContextKeyStore = "session_store"
	// ContextKeyConfig is the context key for the app configuration
	ContextKeyConfig = "config"
)

// WithConfig makes the configuration available to handlers
func WithConfig(cfg *config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(ContextKeyConfig, cfg)
			return next(c)
		}
	}
}

// RequireAuth validates the access_token cookie, attaches the session store
// and forwards the upstream bearer token on the request context
func RequireAuth(sessions *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(AccessTokenCookie)
			if err != nil || cookie.Value == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
			}

			persisted, err := services.ValidateSession(db.DB, cookie.Value)
			if err != nil {
				if errors.Is(err, services.ErrSessionExpired) {
					// the client may still exchange its refresh_token
					return echo.NewHTTPError(http.StatusUnauthorized, "Session expired")
				}
				ClearAuthCookies(c)
				return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
			}

			store := sessions.GetOrOpen(persisted.ID, persisted.UserID, persisted.UpstreamToken)
			if store.UpstreamToken() != persisted.UpstreamToken {
				store.SetUpstreamToken(persisted.UpstreamToken)
			}

			c.Set(ContextKeySession, persisted)
			c.Set(ContextKeyStore, store)

			req := c.Request()
			c.SetRequest(req.WithContext(datasource.WithToken(req.Context(), persisted.UpstreamToken)))

			return next(c)
		}
	}
}

// GetCurrentSession retrieves the persisted session from context
func GetCurrentSession(c echo.Context) *models.Session {
	s, ok := c.Get(ContextKeySession).(*models.Session)
	if !ok {
		return nil
	}
	return s
}

// GetSessionStore retrieves the per-session store from context
func GetSessionStore(c echo.Context) *session.Session {
	s, ok := c.Get(ContextKeyStore).(*session.Session)
	if !ok {
		return nil
	}
	return s
}

// GetConfig retrieves the configuration from context
func GetConfig(c echo.Context) *config.Config {
	cfg, ok := c.Get(ContextKeyConfig).(*config.Config)
	if !ok {
		return &config.Config{}
	}
	return cfg
}

// SetAuthCookies writes the access/refresh token pair
func SetAuthCookies(c echo.Context, s *models.Session) {
	secure := GetConfig(c).IsProduction()

	c.SetCookie(&http.Cookie{
		Name:     AccessTokenCookie,
		Value:    s.Token,
		Path:     "/",
		Expires:  s.ExpiresAt,
		MaxAge:   int(services.DefaultSessionDuration.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
	c.SetCookie(&http.Cookie{
		Name:     RefreshTokenCookie,
		Value:    s.RefreshToken,
		Path:     "/",
		Expires:  s.RefreshExpiresAt,
		MaxAge:   int(services.RefreshSessionDuration.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearAuthCookies expires both token cookies
func ClearAuthCookies(c echo.Context) {
	secure := GetConfig(c).IsProduction()
	for _, name := range []string{AccessTokenCookie, RefreshTokenCookie} {
		c.SetCookie(&http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   secure,
			SameSite: http.SameSiteLaxMode,
		})
	}
}
