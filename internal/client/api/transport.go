package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// HeaderRequestID заголовок для сопоставления запроса с логами сервера
const HeaderRequestID = "X-Request-ID"

// loggingTransport логирует запросы к серверу: метод, путь, статус, время.
// Тела запросов и cookie не логируются.
type loggingTransport struct {
	next   http.RoundTripper
	logger *slog.Logger
}

func newLoggingTransport(next http.RoundTripper, logger *slog.Logger) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return &loggingTransport{next: next, logger: logger}
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	requestID := req.Header.Get(HeaderRequestID)
	if requestID == "" {
		// RoundTripper не должен менять исходный запрос
		requestID = uuid.NewString()
		req = req.Clone(req.Context())
		req.Header.Set(HeaderRequestID, requestID)
	}

	resp, err := t.next.RoundTrip(req)
	duration := time.Since(start)
	if err != nil {
		t.logger.Warn("api request failed",
			"method", req.Method,
			"path", req.URL.Path,
			"request_id", requestID,
			"duration_ms", duration.Milliseconds(),
			"error", err,
		)
		return nil, err
	}

	// Уровень логирования зависит от статуса
	level := slog.LevelDebug
	if resp.StatusCode >= 500 {
		level = slog.LevelError
	} else if resp.StatusCode >= 400 {
		level = slog.LevelWarn
	}

	t.logger.Log(req.Context(), level, "api request",
		"method", req.Method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"request_id", requestID,
		"duration_ms", duration.Milliseconds(),
		"bytes", resp.ContentLength,
	)
	return resp, nil
}
