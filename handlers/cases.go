package handlers

import (
	"net/http"

	"legali_app_go/services/pipeline"

	"github.com/labstack/echo/v4"
)

// ListCasesHandler runs the case filter/sort pipeline over approved cases
func ListCasesHandler(c echo.Context) error {
	var filters pipeline.CaseFilters
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &filters); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid filters")
	}

	cases, err := DataSource.ListCases(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, pipeline.FilterCases(cases, filters))
}

// CaseStatsHandler returns the listing banner totals
func CaseStatsHandler(c echo.Context) error {
	cases, err := DataSource.ListCases(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, pipeline.Stats(cases))
}

// CaseOptionsHandler returns the filter option tables
func CaseOptionsHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"practiceAreas": pipeline.PracticeAreas,
		"fundingStages": pipeline.FundingStages,
		"riskLevels":    pipeline.RiskLevels,
		"returnRanges":  pipeline.ReturnRanges,
		"sorts":         pipeline.CaseSorts,
	})
}

// GetCaseHandler returns an approved case
func GetCaseHandler(c echo.Context) error {
	cases, err := DataSource.ListCases(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}

	lawsuit, ok := pipeline.FindPublicCase(cases, c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Case not found")
	}
	return c.JSON(http.StatusOK, lawsuit)
}
