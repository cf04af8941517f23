package storage

import (
	"context"
	"net/http"
	"time"
)

//go:generate moq -out session_mock.go . SessionStorage

// SessionStorage defines interface for storing the company session on client.
// The CLI runs one command per process, so the session cookie has to survive between runs.
type SessionStorage interface {
	// SaveSession stores session data, replacing the previous one
	SaveSession(ctx context.Context, session *Session) error

	// GetSession retrieves stored session data
	// Returns ErrSessionNotFound if no session exists
	GetSession(ctx context.Context) (*Session, error)

	// DeleteSession removes stored session data (logout)
	DeleteSession(ctx context.Context) error
}

// Cookie cookie сессии в сохраняемом виде
type Cookie struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Session represents the current company session in storage
type Session struct {
	Email       string   `json:"email"`
	CompanyName string   `json:"company_name"`
	Cookies     []Cookie `json:"cookies"`
	ExpiresAt   int64    `json:"expires_at"` // 0 - срок неизвестен
	IsAdmin     bool     `json:"is_admin"`
}

// HTTPCookies конвертирует сохраненные cookie для cookie jar
func (s *Session) HTTPCookies() []*http.Cookie {
	out := make([]*http.Cookie, 0, len(s.Cookies))
	for _, c := range s.Cookies {
		out = append(out, &http.Cookie{Name: c.Name, Value: c.Value})
	}
	return out
}

// Cookie возвращает значение cookie по имени
func (s *Session) Cookie(name string) (string, bool) {
	for _, c := range s.Cookies {
		if c.Name == name {
			return c.Value, true
		}
	}
	return "", false
}

// Expired сообщает, что известный срок действия сессии истек
func (s *Session) Expired(now time.Time) bool {
	return s.ExpiresAt > 0 && now.Unix() >= s.ExpiresAt
}

// CookiesFromHTTP конвертирует cookie из cookie jar в сохраняемый вид
func CookiesFromHTTP(cookies []*http.Cookie) []Cookie {
	out := make([]Cookie, 0, len(cookies))
	for _, c := range cookies {
		out = append(out, Cookie{Name: c.Name, Value: c.Value})
	}
	return out
}
