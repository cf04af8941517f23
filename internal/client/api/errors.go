package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrSessionExpired сервер ответил 403: сессия недействительна или истекла
var ErrSessionExpired = errors.New("session is invalid or expired")

// Error ответ сервера со статусом вне 2xx
type Error struct {
	Message    string // поле message из тела ответа, если есть
	Body       []byte
	StatusCode int
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, string(e.Body))
}

// Is позволяет проверять 403 через errors.Is(err, ErrSessionExpired)
func (e *Error) Is(target error) bool {
	return target == ErrSessionExpired && e.StatusCode == http.StatusForbidden
}

// ServerMessage возвращает сообщение сервера из ошибки, если оно есть
func ServerMessage(err error) (string, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message, true
	}
	return "", false
}
