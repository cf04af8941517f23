package api

// LoginRequest представляет запрос на аутентификацию компании
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest представляет запрос на регистрацию новой компании
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// CompanyProfile краткие данные компании текущей сессии
type CompanyProfile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// IsAuthResponse представляет ответ на GET /auth/isAuth
type IsAuthResponse struct {
	Company CompanyProfile `json:"company"`
}

// MessageResponse представляет ответ сервера с сообщением для пользователя
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error,omitempty"`   // описание ошибки
	Message string `json:"message,omitempty"` // сообщение для пользователя
}
