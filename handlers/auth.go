package handlers

import (
	"errors"
	"net/http"
	"strings"

	"legali_app_go/db"
	"legali_app_go/logger"
	"legali_app_go/middleware"
	"legali_app_go/services"
	"legali_app_go/services/datasource"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// LoginRequest is the login form
type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// LoginHandler authenticates against the data source and issues the token cookies
func LoginHandler(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request")
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Email and password are required")
	}

	user, tokens, err := DataSource.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, datasource.ErrInvalidCredentials) {
			services.LogSecurityEvent("LOGIN_FAILED", "", "email="+req.Email+" ip="+c.RealIP())
			services.Monitor.TrackFailedLogin(c.RealIP())
		}
		return respondError(c, err)
	}

	persisted, err := services.CreateSession(db.DB, services.SessionParams{
		UserID:               user.ID,
		UpstreamToken:        tokens.AccessToken,
		UpstreamRefreshToken: tokens.RefreshToken,
		IPAddress:            c.RealIP(),
		UserAgent:            c.Request().UserAgent(),
	})
	if err != nil {
		return respondError(c, err)
	}

	store := Sessions.Open(persisted.ID, user.ID, tokens.AccessToken)
	store.CacheProfile(*user)

	middleware.SetAuthCookies(c, persisted)
	logger.L().Info("user logged in", zap.String("user_id", user.ID))

	return c.JSON(http.StatusOK, map[string]interface{}{"user": user})
}

// RefreshHandler exchanges the refresh_token cookie for a new token pair
func RefreshHandler(c echo.Context) error {
	cookie, err := c.Cookie(middleware.RefreshTokenCookie)
	if err != nil || cookie.Value == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
	}

	persisted, err := services.FindRefreshableSession(db.DB, cookie.Value)
	if err != nil {
		middleware.ClearAuthCookies(c)
		if errors.Is(err, services.ErrSessionNotFound) || errors.Is(err, services.ErrRefreshExpired) {
			return echo.NewHTTPError(http.StatusUnauthorized, "Session expired")
		}
		return respondError(c, err)
	}

	var upstreamAccess, upstreamRefresh string
	if persisted.UpstreamRefreshToken != "" {
		tokens, err := DataSource.Refresh(c.Request().Context(), persisted.UpstreamRefreshToken)
		if err != nil {
			if errors.Is(err, datasource.ErrUnauthorized) {
				if _, err := services.DeleteSession(db.DB, persisted.Token); err != nil {
					logger.L().Error("failed to delete session", zap.Error(err))
				}
				Sessions.Close(persisted.ID)
				middleware.ClearAuthCookies(c)
			}
			return respondError(c, err)
		}
		upstreamAccess, upstreamRefresh = tokens.AccessToken, tokens.RefreshToken
	}

	rotated, err := services.RotateSession(db.DB, persisted, upstreamAccess, upstreamRefresh)
	if err != nil {
		return respondError(c, err)
	}

	store := Sessions.GetOrOpen(rotated.ID, rotated.UserID, rotated.UpstreamToken)
	store.SetUpstreamToken(rotated.UpstreamToken)

	middleware.SetAuthCookies(c, rotated)
	return c.JSON(http.StatusOK, map[string]interface{}{"expiresAt": rotated.ExpiresAt})
}

// LogoutHandler deletes the session and clears everything it held
func LogoutHandler(c echo.Context) error {
	if cookie, err := c.Cookie(middleware.AccessTokenCookie); err == nil && cookie.Value != "" {
		id, err := services.DeleteSession(db.DB, cookie.Value)
		if err != nil {
			logger.L().Error("failed to delete session", zap.Error(err))
		}
		if id != "" {
			Sessions.Close(id)
		}
	}

	middleware.ClearAuthCookies(c)
	return c.JSON(http.StatusOK, map[string]string{"message": "Logged out"})
}
