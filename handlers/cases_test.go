package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"legali_app_go/services/pipeline"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCasesHandler(t *testing.T) {
	setupHandlers(t)

	t.Run("Only approved cases are listed", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/api/cases", nil)
		require.NoError(t, ListCasesHandler(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var page pipeline.CasePage
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
		assert.Equal(t, 4, page.Total)
		for _, lc := range page.Cases {
			assert.True(t, lc.IsPublic(), "case %s should be approved", lc.ID)
		}
	})

	t.Run("Practice area filter", func(t *testing.T) {
		q := url.Values{"practiceArea": {"Employment Law"}}
		_, c, rec := setupEcho(http.MethodGet, "/api/cases?"+q.Encode(), nil)
		require.NoError(t, ListCasesHandler(c))

		var page pipeline.CasePage
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
		require.NotEmpty(t, page.Cases)
		for _, lc := range page.Cases {
			assert.Equal(t, "Employment Law", lc.PracticeArea)
		}
	})

	t.Run("Unknown return range matches nothing", func(t *testing.T) {
		q := url.Values{"returnRange": {"10x - 20x"}}
		_, c, rec := setupEcho(http.MethodGet, "/api/cases?"+q.Encode(), nil)
		require.NoError(t, ListCasesHandler(c))

		var page pipeline.CasePage
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
		assert.Empty(t, page.Cases)
	})

	t.Run("Pagination", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/api/cases?page=2&limit=3", nil)
		require.NoError(t, ListCasesHandler(c))

		var page pipeline.CasePage
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
		assert.Equal(t, 2, page.Page)
		assert.Equal(t, 2, page.TotalPages)
		assert.Len(t, page.Cases, 1)
	})

	t.Run("Page far past the end", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/api/cases?page=200000000000000000&limit=50", nil)
		require.NoError(t, ListCasesHandler(c))

		var page pipeline.CasePage
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
		assert.Empty(t, page.Cases)
		assert.Equal(t, 200000000000000000, page.Page)
	})

	t.Run("Malformed page", func(t *testing.T) {
		_, c, _ := setupEcho(http.MethodGet, "/api/cases?page=two", nil)
		assert.Equal(t, http.StatusBadRequest, httpCode(t, ListCasesHandler(c)))
	})
}

func TestCaseStatsHandler(t *testing.T) {
	setupHandlers(t)

	_, c, rec := setupEcho(http.MethodGet, "/api/cases/stats", nil)
	require.NoError(t, CaseStatsHandler(c))

	var stats pipeline.CaseStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 4, stats.TotalCases)
	assert.LessOrEqual(t, stats.ActiveCases+stats.FundedCases, stats.TotalCases)
	assert.Positive(t, stats.TotalRaised)
}

func TestCaseOptionsHandler(t *testing.T) {
	setupHandlers(t)

	_, c, rec := setupEcho(http.MethodGet, "/api/cases/options", nil)
	require.NoError(t, CaseOptionsHandler(c))

	var body struct {
		PracticeAreas []string `json:"practiceAreas"`
		RiskLevels    []string `json:"riskLevels"`
		ReturnRanges  []struct {
			Label string `json:"label"`
		} `json:"returnRanges"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, pipeline.AllPracticeAreas, body.PracticeAreas[0])
	assert.Equal(t, pipeline.AllRiskLevels, body.RiskLevels[0])
	assert.Len(t, body.ReturnRanges, len(pipeline.ReturnRanges))
}

func TestGetCaseHandler(t *testing.T) {
	setupHandlers(t)

	tests := []struct {
		name     string
		id       string
		wantCode int
	}{
		{"Approved", "1", http.StatusOK},
		{"Pending review", "4", http.StatusNotFound},
		{"Rejected", "5", http.StatusNotFound},
		{"Unknown", "404", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, c, rec := setupEcho(http.MethodGet, "/api/cases/"+tt.id, nil)
			c.SetParamNames("id")
			c.SetParamValues(tt.id)

			err := GetCaseHandler(c)
			if tt.wantCode != http.StatusOK {
				assert.Equal(t, tt.wantCode, httpCode(t, err))
				return
			}
			require.NoError(t, err)
			assert.Contains(t, rec.Body.String(), `"id":"1"`)
		})
	}
}
