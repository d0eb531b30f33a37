package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CraftPanel_Go/internal/database"
)

type mockPinger struct {
	mock.Mock
}

func (m *mockPinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockPinger) Close() {
	m.Called()
}

func decodeHealth(t *testing.T, rec *httptest.ResponseRecorder) HealthResponse {
	t.Helper()
	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHandleHealthz(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleHealthz().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeHealth(t, rec).Status)
}

func TestHandleReadyz(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
		wantBody   HealthResponse
	}{
		{"reachable", nil, http.StatusOK, HealthResponse{Status: "ok"}},
		{"unreachable", assert.AnError, http.StatusServiceUnavailable,
			HealthResponse{Status: "unavailable", Message: "database connection failed"}},
		{"deadline", context.DeadlineExceeded, http.StatusServiceUnavailable,
			HealthResponse{Status: "unavailable", Message: "database connection failed"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := &mockPinger{}
			pool.On("Ping", mock.MatchedBy(func(ctx context.Context) bool {
				_, ok := ctx.Deadline()
				return ok
			})).Return(tt.pingErr)

			rec := httptest.NewRecorder()
			HandleReadyz(pool).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, decodeHealth(t, rec))
			pool.AssertExpectations(t)
		})
	}

	t.Run("memory store", func(t *testing.T) {
		rec := httptest.NewRecorder()
		HandleReadyz(nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, HealthResponse{Status: "ok", Message: "memory store"}, decodeHealth(t, rec))
	})
}

func TestHandleVersion(t *testing.T) {
	loaded := 4
	rec := httptest.NewRecorder()
	HandleVersion("1.2.3", func() int { return loaded }).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/version", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var info VersionInfo
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "1.2.3", info.Version)
	assert.Equal(t, 4, info.Panels)
	assert.NotEmpty(t, info.GoVersion)
}

var _ database.Pool = (*mockPinger)(nil)
