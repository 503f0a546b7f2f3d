package handlers

import (
	"encoding/xml"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSitemapHandler(t *testing.T) {
	setupHandlers(t)

	_, c, rec := setupEcho(http.MethodGet, "/sitemap.xml", nil)
	require.NoError(t, GetSitemapHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, echo.MIMEApplicationXML, rec.Header().Get(echo.HeaderContentType))
	assert.True(t, strings.HasPrefix(rec.Body.String(), xml.Header))

	var set struct {
		URLs []SitemapURL `xml:"url"`
	}
	require.NoError(t, xml.Unmarshal(rec.Body.Bytes(), &set))

	locs := make([]string, 0, len(set.URLs))
	for _, u := range set.URLs {
		locs = append(locs, u.Loc)
	}
	assert.Contains(t, locs, "https://legali.test/")
	assert.Contains(t, locs, "https://legali.test/attorney")
	assert.Contains(t, locs, "https://legali.test/lawyers/1")
	for _, loc := range locs {
		assert.NotContains(t, loc, "/dashboard")
	}
}

func TestGetRobotsHandler(t *testing.T) {
	setupHandlers(t)

	_, c, rec := setupEcho(http.MethodGet, "/robots.txt", nil)
	require.NoError(t, GetRobotsHandler(c))

	body := rec.Body.String()
	assert.Contains(t, body, "User-agent: *\n")
	assert.Contains(t, body, "User-agent: Googlebot\n")
	assert.Contains(t, body, "Disallow: /api/*\n")
	assert.Contains(t, body, "Disallow: /dashboard/*\n")
	assert.Contains(t, body, "Sitemap: https://legali.test/sitemap.xml\n")
	assert.Equal(t, 2, strings.Count(body, "Disallow: /profile/*"))
}
