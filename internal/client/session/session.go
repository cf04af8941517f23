// Package session управляет сессией компании: вход, регистрация, выход
// и восстановление cookie между запусками клиента.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/adpanel/internal/client/api"
	"github.com/iudanet/adpanel/internal/client/storage"
	"github.com/iudanet/adpanel/internal/client/submit"
	"github.com/iudanet/adpanel/internal/validation"
	pkgapi "github.com/iudanet/adpanel/pkg/api"
)

// Сообщения об успешных операциях
const (
	MsgLoggedIn   = "You have successfully logged in!"
	MsgRegistered = "You have successfully registered!"
	MsgLoggedOut  = "You have logged out!"
)

// ErrNotLoggedIn локальной сессии нет
var ErrNotLoggedIn = errors.New("not logged in")

// Info состояние текущей сессии
type Info struct {
	Email       string
	CompanyName string
	ExpiresIn   time.Duration // 0 - срок неизвестен
	IsAdmin     bool
}

// Service управляет сессией компании
type Service struct {
	client    api.ClientAPI
	store     storage.SessionStorage
	cache     storage.CacheStorage
	flow      *submit.Orchestrator
	navigator submit.Navigator
	notifier  submit.Notifier
	now       func() time.Time
}

// NewService создает сервис сессии
func NewService(
	client api.ClientAPI,
	store storage.SessionStorage,
	cache storage.CacheStorage,
	flow *submit.Orchestrator,
	notifier submit.Notifier,
	navigator submit.Navigator,
) *Service {
	return &Service{
		client:    client,
		store:     store,
		cache:     cache,
		flow:      flow,
		notifier:  notifier,
		navigator: navigator,
		now:       time.Now,
	}
}

// Login выполняет вход и сохраняет cookie сессии
func (s *Service) Login(ctx context.Context, email, password string) error {
	return s.flow.Run(ctx, submit.Submission{
		Name: "login",
		Form: validation.Form{
			validation.FieldEmail:    email,
			validation.FieldPassword: password,
		},
		Call: func(ctx context.Context) (string, error) {
			if _, err := s.client.Login(ctx, pkgapi.LoginRequest{Email: email, Password: password}); err != nil {
				return "", err
			}
			return "", s.persist(ctx, email, "")
		},
		SuccessMessage: MsgLoggedIn,
		SuccessRoute:   submit.RouteCompany,
	})
}

// Register регистрирует компанию, сервер сразу открывает сессию
func (s *Service) Register(ctx context.Context, name, email, password string) error {
	return s.flow.Run(ctx, submit.Submission{
		Name: "register",
		Form: validation.Form{
			validation.FieldName:     name,
			validation.FieldEmail:    email,
			validation.FieldPassword: password,
		},
		Call: func(ctx context.Context) (string, error) {
			req := pkgapi.RegisterRequest{Name: name, Email: email, Password: password}
			if _, err := s.client.Register(ctx, req); err != nil {
				return "", err
			}
			return "", s.persist(ctx, email, name)
		},
		SuccessMessage: MsgRegistered,
		SuccessRoute:   submit.RouteDashboard,
	})
}

// Logout завершает сессию.
// Локальные данные удаляются всегда, даже если сервер недоступен.
func (s *Service) Logout(ctx context.Context) error {
	if _, err := s.Restore(ctx); err == nil {
		// Уведомляем сервер (best effort)
		if err := s.client.Logout(ctx); err != nil {
			slog.Warn("failed to logout on server", "error", err)
		}
	}

	if err := s.store.DeleteSession(ctx); err != nil && !errors.Is(err, storage.ErrSessionNotFound) {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if err := s.cache.ClearCache(ctx); err != nil {
		slog.Warn("failed to clear cache", "error", err)
	}
	s.client.ResetSession()

	s.notifier.Success(MsgLoggedOut)
	s.navigator.Navigate(submit.RouteLogin)
	return nil
}

// Restore загружает сохраненную сессию и передает cookie клиенту
func (s *Service) Restore(ctx context.Context) (*storage.Session, error) {
	sess, err := s.store.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return nil, ErrNotLoggedIn
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	if sess.Expired(s.now()) {
		slog.Debug("stored session expired", "email", sess.Email)
		if err := s.store.DeleteSession(ctx); err != nil {
			slog.Warn("failed to delete expired session", "error", err)
		}
		return nil, api.ErrSessionExpired
	}

	s.client.SetCookies(sess.HTTPCookies())
	return sess, nil
}

// Check проверяет сессию на сервере и обновляет профиль компании.
// Недействительная сессия ведет на экран входа.
func (s *Service) Check(ctx context.Context) (*Info, error) {
	sess, err := s.Restore(ctx)
	if err != nil {
		s.navigator.Navigate(submit.RouteLogin)
		return nil, err
	}

	resp, err := s.client.IsAuth(ctx)
	if err != nil {
		if errors.Is(err, api.ErrSessionExpired) {
			if delErr := s.store.DeleteSession(ctx); delErr != nil {
				slog.Warn("failed to delete session", "error", delErr)
			}
		}
		s.navigator.Navigate(submit.RouteLogin)
		return nil, err
	}

	sess.CompanyName = resp.Company.Name
	if resp.Company.Email != "" {
		sess.Email = resp.Company.Email
	}
	// Сервер мог обновить cookie
	s.update(sess)
	if err := s.store.SaveSession(ctx, sess); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return s.info(sess), nil
}

// Current возвращает локальную сессию без запроса к серверу
func (s *Service) Current(ctx context.Context) (*Info, error) {
	sess, err := s.Restore(ctx)
	if err != nil {
		return nil, err
	}
	return s.info(sess), nil
}

// IsAdmin сообщает, что текущая компания - администратор
func (s *Service) IsAdmin(ctx context.Context) bool {
	info, err := s.Current(ctx)
	if err != nil {
		return false
	}
	return info.IsAdmin
}

// persist сохраняет cookie, полученные при входе
func (s *Service) persist(ctx context.Context, email, name string) error {
	sess := &storage.Session{Email: email, CompanyName: name}
	s.update(sess)
	if len(sess.Cookies) == 0 {
		slog.Warn("server did not set session cookie", "email", email)
	}
	if err := s.store.SaveSession(ctx, sess); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// update переносит cookie клиента в сессию
func (s *Service) update(sess *storage.Session) {
	cookies := s.client.Cookies()
	sess.Cookies = storage.CookiesFromHTTP(cookies)
	sess.IsAdmin = isAdmin(cookies)
	sess.ExpiresAt = expiresAt(cookies)
}

func (s *Service) info(sess *storage.Session) *Info {
	return &Info{
		Email:       sess.Email,
		CompanyName: sess.CompanyName,
		IsAdmin:     sess.IsAdmin,
		ExpiresIn:   untilExpiry(sess.ExpiresAt, s.now()),
	}
}
