package wire

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"resort-admin/pkg/utils"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig(t *testing.T, authEnabled bool) *utils.Config {
	t.Helper()
	return &utils.Config{
		App:    utils.AppConfig{Name: "resort-admin", Port: "0"},
		Auth:   utils.AuthConfig{Enabled: authEnabled, SessionExpiryHours: 24},
		Upload: utils.UploadConfig{Dir: t.TempDir(), MaxUploadMB: 1, PublicPrefix: "/uploads"},
		CORS:   utils.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
	}
}

func newTestApp(t *testing.T, config *utils.Config) (*App, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return Wiring(mock, config, zap.NewNop()), mock
}

func serve(app *App, method, target string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

func message(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Message
}

func TestRouter_PublicRoutes(t *testing.T) {
	app, mock := newTestApp(t, testConfig(t, true))

	rec := serve(app, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))

	mock.ExpectPing()
	rec = serve(app, http.MethodGet, "/admin/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Service is healthy", message(t, rec))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRouter_HealthDegradedWhenDatabaseDown(t *testing.T) {
	app, mock := newTestApp(t, testConfig(t, true))

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	rec := serve(app, http.MethodGet, "/admin/health", nil)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "Service degraded", message(t, rec))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRouter_AdminRoutesRequireSession(t *testing.T) {
	app, _ := newTestApp(t, testConfig(t, true))

	rec := serve(app, http.MethodGet, "/admin/bookings", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Missing authorization token", message(t, rec))

	rec = serve(app, http.MethodGet, "/admin/dashboard/stats", map[string]string{"Authorization": "Token abc"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid token format. Use: Bearer <token>", message(t, rec))
}

func TestRouter_AuthDisabled(t *testing.T) {
	app, _ := newTestApp(t, testConfig(t, false))

	rec := serve(app, http.MethodGet, "/admin/bookings/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid booking ID format", message(t, rec))
}

func TestRouter_ServesUploads(t *testing.T) {
	config := testConfig(t, true)
	dir := filepath.Join(config.Upload.Dir, "gallery")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sunset.txt"), []byte("sunset"), 0o644))

	app, _ := newTestApp(t, config)

	rec := serve(app, http.MethodGet, "/uploads/gallery/sunset.txt", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "sunset", rec.Body.String())

	rec = serve(app, http.MethodGet, "/uploads/gallery/missing.jpg", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_CORSPreflight(t *testing.T) {
	app, _ := newTestApp(t, testConfig(t, true))

	rec := serve(app, http.MethodOptions, "/admin/bookings", map[string]string{
		"Origin":                        "http://localhost:3000",
		"Access-Control-Request-Method": http.MethodPost,
	})

	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
}
