package session

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AdminCookie cookie с признаком администратора
const AdminCookie = "isAdmin"

// expiresAt определяет срок действия сессии.
// Подпись токена проверяет сервер, клиенту нужен только exp.
func expiresAt(cookies []*http.Cookie) int64 {
	parser := jwt.NewParser()
	for _, c := range cookies {
		if c.Value == "" || c.Name == AdminCookie {
			continue
		}
		claims := jwt.MapClaims{}
		if _, _, err := parser.ParseUnverified(c.Value, claims); err != nil {
			continue
		}
		exp, err := claims.GetExpirationTime()
		if err != nil || exp == nil {
			continue
		}
		return exp.Unix()
	}
	// cookie jar не отдает атрибут Expires, без JWT срок неизвестен
	return 0
}

// isAdmin читает признак администратора из cookie
func isAdmin(cookies []*http.Cookie) bool {
	for _, c := range cookies {
		if c.Name == AdminCookie {
			return c.Value == "true"
		}
	}
	return false
}

// untilExpiry время до окончания сессии, 0 если срок неизвестен
func untilExpiry(exp int64, now time.Time) time.Duration {
	if exp == 0 {
		return 0
	}
	return time.Unix(exp, 0).Sub(now)
}
