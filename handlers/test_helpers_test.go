package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"legali_app_go/config"
	"legali_app_go/db"
	"legali_app_go/middleware"
	"legali_app_go/models"
	"legali_app_go/services"
	"legali_app_go/services/datasource"
	"legali_app_go/services/session"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Wednesday, so the following days have open slots
var testNow = time.Date(2025, 6, 4, 10, 0, 0, 0, time.UTC)

func setupTestDB(t *testing.T) *gorm.DB {
	// Use unique shared memory name to isolate tests while allowing shared cache for async tasks
	dbName := "mem_" + uuid.New().String()
	testDB, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared&_busy_timeout=5000"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, testDB.AutoMigrate(&models.Session{}))

	// Set global DB
	db.DB = testDB
	return testDB
}

// setupHandlers wires the package globals to a latency-free mock
func setupHandlers(t *testing.T) *datasource.Mock {
	t.Helper()
	setupTestDB(t)

	mock := datasource.NewMock(datasource.MockOptions{Now: func() time.Time { return testNow }})
	DataSource = mock
	Sessions = session.NewManager()
	Clock = func() time.Time { return testNow }
	services.Storage = services.NewLocalStorage(t.TempDir())

	t.Cleanup(func() {
		Clock = time.Now
	})
	return mock
}

func testConfig() *config.Config {
	return &config.Config{
		Environment:     "test",
		AppURL:          "https://legali.test",
		DefaultPageSize: 10,
		MaxPageSize:     50,
		EmailTestMode:   true,
		EmailFrom:       "noreply@legali.test",
		EmailFromName:   "Legali",
	}
}

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Add config to context
	c.Set(middleware.ContextKeyConfig, testConfig())

	return e, c, rec
}

// setupJSON is setupEcho with a JSON body
func setupJSON(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	_, c, rec := setupEcho(method, path, strings.NewReader(body))
	c.Request().Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return c, rec
}

// withStore attaches the per-session store of userID, as RequireAuth would
func withStore(c echo.Context, store *session.Session) {
	c.Set(middleware.ContextKeyStore, store)
}

func openStore(userID string) *session.Session {
	return Sessions.Open(uuid.New().String(), userID, "upstream-"+userID)
}

func httpCode(t *testing.T, err error) int {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	if !assert.True(t, ok, "expected *echo.HTTPError, got %v", err) {
		return 0
	}
	return he.Code
}

func cookieByName(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
