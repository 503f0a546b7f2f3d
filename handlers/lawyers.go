package handlers

import (
	"math"
	"net/http"

	"legali_app_go/middleware"
	"legali_app_go/models"
	"legali_app_go/services/pipeline"
	"legali_app_go/services/wizard"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"
)

// bindSearchParams reads the lawyer search criteria from the query string
func bindSearchParams(c echo.Context) (pipeline.SearchParams, error) {
	var params pipeline.SearchParams
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &params); err != nil {
		return params, err
	}

	var minPrice, maxPrice float64
	if err := echo.QueryParamsBinder(c).
		Float64("minPrice", &minPrice).
		Float64("maxPrice", &maxPrice).
		BindError(); err != nil {
		return params, err
	}
	if c.QueryParam("minPrice") != "" || c.QueryParam("maxPrice") != "" {
		if c.QueryParam("maxPrice") == "" {
			maxPrice = math.MaxFloat64
		}
		params.Budget = &pipeline.PriceRange{Min: minPrice, Max: maxPrice}
	}

	cfg := middleware.GetConfig(c)
	if params.Limit <= 0 && cfg.DefaultPageSize > 0 {
		params.Limit = cfg.DefaultPageSize
	}
	if cfg.MaxPageSize > 0 && params.Limit > cfg.MaxPageSize {
		params.Limit = cfg.MaxPageSize
	}
	return params, nil
}

// SearchLawyersHandler runs the lawyer filter/sort/paginate pipeline
func SearchLawyersHandler(c echo.Context) error {
	params, err := bindSearchParams(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid search parameters")
	}
	if params.SortBy != "" && !pipeline.IsValidLawyerSort(params.SortBy) {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid sort key")
	}

	page, err := DataSource.SearchLawyers(c.Request().Context(), params)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, page)
}

// FeaturedLawyersHandler returns the top-rated lawyers
func FeaturedLawyersHandler(c echo.Context) error {
	lawyers, err := DataSource.FeaturedLawyers(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"lawyers": lawyers})
}

// GetLawyerHandler returns a lawyer profile together with its reviews
func GetLawyerHandler(c echo.Context) error {
	id := c.Param("id")

	var (
		lawyer  *models.Lawyer
		reviews []models.Review
	)
	g, ctx := errgroup.WithContext(c.Request().Context())
	g.Go(func() error {
		var err error
		lawyer, err = DataSource.GetLawyer(ctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		reviews, err = DataSource.GetLawyerReviews(ctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"lawyer":  lawyer,
		"reviews": reviews,
	})
}

// GetLawyerReviewsHandler returns the reviews of a lawyer
func GetLawyerReviewsHandler(c echo.Context) error {
	reviews, err := DataSource.GetLawyerReviews(c.Request().Context(), c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"reviews": reviews})
}

// GetLawyerSlotsHandler lists the bookable time slots of a lawyer on a date
func GetLawyerSlotsHandler(c echo.Context) error {
	date := c.QueryParam("date")
	if date == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "date is required")
	}

	if _, err := DataSource.GetLawyer(c.Request().Context(), c.Param("id")); err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"date":  date,
		"slots": wizard.AvailableTimeSlots(date),
	})
}
