package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"resort-admin/internal/usecase"
	"resort-admin/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type stubSessions map[string]uuid.UUID

func (s stubSessions) ValidateSession(_ context.Context, token string) (uuid.UUID, error) {
	if token == "boom" {
		return uuid.Nil, errors.New("db down")
	}
	id, ok := s[token]
	if !ok {
		return uuid.Nil, fmt.Errorf("%w: invalid or expired session", usecase.ErrUnauthorized)
	}
	return id, nil
}

// echoAdmin writes the admin id found in the context.
var echoAdmin = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	id, ok := utils.GetAdminIDFromContext(r.Context())
	if !ok {
		w.Write([]byte("anonymous"))
		return
	}
	token, _ := utils.GetTokenFromContext(r.Context())
	w.Write([]byte(id.String() + " " + token))
})

func TestAuthSession(t *testing.T) {
	adminID := uuid.New()
	sessions := stubSessions{"good-token": adminID}
	handler := AuthSession(sessions, true, zap.NewNop())(echoAdmin)

	tests := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{"missing header", "", http.StatusUnauthorized, ""},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized, ""},
		{"empty token", "Bearer ", http.StatusUnauthorized, ""},
		{"unknown token", "Bearer nope", http.StatusUnauthorized, ""},
		{"lookup failure", "Bearer boom", http.StatusInternalServerError, ""},
		{"valid token", "Bearer good-token", http.StatusOK, adminID.String() + " good-token"},
		{"lower-case scheme", "bearer good-token", http.StatusOK, adminID.String() + " good-token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin/bookings", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.body != "" {
				assert.Equal(t, tt.body, rec.Body.String())
			}
		})
	}
}

func TestAuthSessionDisabled(t *testing.T) {
	handler := AuthSession(stubSessions{}, false, zap.NewNop())(echoAdmin)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/bookings", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "anonymous", rec.Body.String())
}

func TestRecover(t *testing.T) {
	handler := Recover(zap.NewNop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("nil map write")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/admin/bookings", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Status)
	assert.Equal(t, "Internal server error", body.Message)
}

func TestNoStoreAndCORS(t *testing.T) {
	handler := CORS([]string{"https://admin.example.com"})(NoStore(echoAdmin))

	req := httptest.NewRequest(http.MethodGet, "/admin/coupons", nil)
	req.Header.Set("Origin", "https://admin.example.com")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "https://admin.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))

	req = httptest.NewRequest(http.MethodGet, "/admin/coupons", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestLoggerPassesStatusThrough(t *testing.T) {
	handler := Logger(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin/dashboard/stats", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "short and stout", rec.Body.String())
}

func TestAccessLevel(t *testing.T) {
	assert.Equal(t, zapcore.ErrorLevel, accessLevel("/admin/bookings", 500))
	assert.Equal(t, zapcore.WarnLevel, accessLevel("/admin/bookings", 404))
	assert.Equal(t, zapcore.DebugLevel, accessLevel("/health", 200))
	assert.Equal(t, zapcore.InfoLevel, accessLevel("/admin/bookings", 201))
}
