package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingTransport(t *testing.T) {
	tests := []struct {
		name          string
		path          string
		expectedLevel string
		status        int
	}{
		{name: "200 OK", path: "/ads", status: http.StatusOK, expectedLevel: "DEBUG"},
		{name: "403 Forbidden", path: "/auth/isAuth", status: http.StatusForbidden, expectedLevel: "WARN"},
		{name: "500 Internal Server Error", path: "/subscription", status: http.StatusInternalServerError, expectedLevel: "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var requestID string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				requestID = r.Header.Get(HeaderRequestID)
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			// Создаем logger с буфером для проверки логов
			var logBuf strings.Builder
			logger := slog.New(slog.NewTextHandler(&logBuf, &slog.HandlerOptions{Level: slog.LevelDebug}))

			client := &http.Client{Transport: newLoggingTransport(nil, logger)}
			req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, server.URL+tt.path, nil)
			require.NoError(t, err)

			resp, err := client.Do(req)
			require.NoError(t, err)
			_ = resp.Body.Close()

			assert.Equal(t, tt.status, resp.StatusCode)
			assert.NotEmpty(t, requestID)
			// Исходный запрос не изменяется
			assert.Empty(t, req.Header.Get(HeaderRequestID))

			logOutput := logBuf.String()
			assert.Contains(t, logOutput, "api request")
			assert.Contains(t, logOutput, "level="+tt.expectedLevel)
			assert.Contains(t, logOutput, tt.path)
			assert.Contains(t, logOutput, "request_id="+requestID)
		})
	}
}

func TestLoggingTransport_KeepsRequestID(t *testing.T) {
	var got string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get(HeaderRequestID)
	}))
	defer server.Close()

	var logBuf strings.Builder
	logger := slog.New(slog.NewTextHandler(&logBuf, nil))
	client := &http.Client{Transport: newLoggingTransport(nil, logger)}

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, server.URL, nil)
	require.NoError(t, err)
	req.Header.Set(HeaderRequestID, "fixed-id")

	resp, err := client.Do(req)
	require.NoError(t, err)
	_ = resp.Body.Close()

	assert.Equal(t, "fixed-id", got)
}

type failingTransport struct{}

func (failingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, errors.New("connection refused")
}

func TestLoggingTransport_Error(t *testing.T) {
	var logBuf strings.Builder
	logger := slog.New(slog.NewTextHandler(&logBuf, nil))
	transport := newLoggingTransport(failingTransport{}, logger)

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://example.invalid/ads", nil)
	require.NoError(t, err)

	resp, err := transport.RoundTrip(req)
	assert.Nil(t, resp)
	require.Error(t, err)

	logOutput := logBuf.String()
	assert.Contains(t, logOutput, "api request failed")
	assert.Contains(t, logOutput, "connection refused")
	assert.Contains(t, logOutput, "level=WARN")
}
