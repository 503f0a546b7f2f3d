package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"legali_app_go/logger"
	"legali_app_go/services/datasource"
	"legali_app_go/services/session"
	"legali_app_go/services/wizard"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// DataSource is the data access implementation selected at startup
var DataSource datasource.DataSource

// Sessions holds the per-login in-memory state
var Sessions *session.Manager

// Clock is the time source for the booking wizard
var Clock = time.Now

// respondError maps domain errors to HTTP responses
func respondError(c echo.Context, err error) error {
	if fields, ok := wizard.AsValidationErrors(err); ok {
		return c.JSON(http.StatusUnprocessableEntity, map[string]interface{}{
			"error":  "Validation failed",
			"fields": fields,
		})
	}

	var apiErr *datasource.APIError
	switch {
	case errors.Is(err, wizard.ErrSubmissionRejected):
		logger.L().Warn("submission rejected", zap.Error(err), zap.String("path", c.Path()))
		return echo.NewHTTPError(http.StatusBadGateway, "We could not complete your request. Please try again.")
	case errors.Is(err, wizard.ErrSubmissionInProgress):
		return echo.NewHTTPError(http.StatusConflict, "A submission is already in progress")
	case errors.Is(err, wizard.ErrInvalidTransition):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, datasource.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Not found")
	case errors.Is(err, datasource.ErrInvalidCredentials):
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, datasource.ErrUnauthorized):
		return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
	case errors.Is(err, datasource.ErrNotCancellable):
		return echo.NewHTTPError(http.StatusConflict, "Booking cannot be cancelled")
	case errors.Is(err, context.DeadlineExceeded):
		return echo.NewHTTPError(http.StatusGatewayTimeout, "Upstream request timed out")
	case errors.As(err, &apiErr):
		logger.L().Error("upstream API error", zap.Error(err), zap.String("path", c.Path()))
		return echo.NewHTTPError(http.StatusBadGateway, "Upstream service error")
	}

	logger.L().Error("request failed", zap.Error(err), zap.String("path", c.Path()))
	return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
}
