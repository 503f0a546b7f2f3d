package handlers

import (
	"encoding/xml"
	"net/http"
	"strings"

	"legali_app_go/logger"
	"legali_app_go/middleware"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type SitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod,omitempty"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float32 `xml:"priority,omitempty"`
}

type SitemapURLSet struct {
	XMLName string       `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// Paths kept out of search indexes
var robotsDisallow = []string{
	"/dashboard/*",
	"/profile/*",
	"/attorneys/*",
	"/documents/*",
	"/appointments/*",
	"/messages/*",
	"/api/*",
	"/auth/*",
	"/admin/*",
	"/private/*",
}

// GetSitemapHandler generates the XML sitemap of public pages
func GetSitemapHandler(c echo.Context) error {
	baseURL := strings.TrimRight(middleware.GetConfig(c).AppURL, "/")
	lastMod := Clock().UTC().Format("2006-01-02")

	urls := []SitemapURL{
		{Loc: baseURL + "/", LastMod: lastMod, ChangeFreq: "weekly", Priority: 1.0},
		{Loc: baseURL + "/login", LastMod: lastMod, ChangeFreq: "monthly", Priority: 0.8},
		{Loc: baseURL + "/welcome", LastMod: lastMod, ChangeFreq: "monthly", Priority: 0.8},
		{Loc: baseURL + "/onboard", LastMod: lastMod, ChangeFreq: "monthly", Priority: 0.8},
		{Loc: baseURL + "/attorney", LastMod: lastMod, ChangeFreq: "weekly", Priority: 0.9},
	}

	// Featured lawyer profiles are public. Keep the static pages if the source fails.
	lawyers, err := DataSource.FeaturedLawyers(c.Request().Context())
	if err != nil {
		logger.L().Warn("Failed to fetch lawyers for sitemap", zap.Error(err))
	}
	for _, l := range lawyers {
		urls = append(urls, SitemapURL{
			Loc:        baseURL + "/lawyers/" + l.ID,
			ChangeFreq: "weekly",
			Priority:   0.7,
		})
	}

	urlSet := SitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}

	c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationXML)
	c.Response().WriteHeader(http.StatusOK)
	if _, err := c.Response().Write([]byte(xml.Header)); err != nil {
		return err
	}

	encoder := xml.NewEncoder(c.Response().Writer)
	encoder.Indent("", "  ")
	return encoder.Encode(urlSet)
}

// GetRobotsHandler serves robots.txt with the same rules for every crawler
func GetRobotsHandler(c echo.Context) error {
	baseURL := strings.TrimRight(middleware.GetConfig(c).AppURL, "/")

	var b strings.Builder
	for _, agent := range []string{"*", "Googlebot"} {
		b.WriteString("User-agent: " + agent + "\n")
		b.WriteString("Allow: /\n")
		for _, path := range robotsDisallow {
			b.WriteString("Disallow: " + path + "\n")
		}
		b.WriteString("\n")
	}
	b.WriteString("Host: " + baseURL + "\n")
	b.WriteString("Sitemap: " + baseURL + "/sitemap.xml\n")

	return c.String(http.StatusOK, b.String())
}
