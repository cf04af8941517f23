// Package submit выполняет отправку форм на сервер по единым правилам:
// валидация, блокировка повторной отправки, один запрос, уведомление и переход.
package submit

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"

	"github.com/iudanet/adpanel/internal/client/api"
	"github.com/iudanet/adpanel/internal/validation"
)

// Сообщения для ошибок без текста от сервера
const (
	MsgSessionExpired = "Your token is invalid or expired"
	MsgServerError    = "Server error!"
)

// ErrBusy предыдущая отправка еще не завершена
var ErrBusy = errors.New("submission is already in progress")

// Submission описывает одну отправку формы
type Submission struct {
	// Form поля, проверяемые validation.ValidateForm
	Form validation.Form
	// Validate дополнительные проверки (например, расположение баннера), может быть nil
	Validate func() validation.Errors
	// Call выполняет единственный запрос к серверу и возвращает сообщение сервера
	Call func(ctx context.Context) (string, error)
	// OnSuccess обновляет локальное состояние после успешного ответа
	OnSuccess func()

	Name string
	// SuccessMessage показывается вместо сообщения сервера
	SuccessMessage string
	SuccessRoute   string
	// FailureMessage заменяет "Server error!", если сервер не прислал сообщение
	FailureMessage string
}

// Transition изменение, примененное до ответа сервера
type Transition interface {
	Commit()
	Revert()
}

// Tentative описывает оптимистичное изменение
type Tentative struct {
	// Begin применяет изменение локально
	Begin func() (Transition, error)
	// Call выполняет единственный запрос к серверу
	Call func(ctx context.Context) error

	Name           string
	SuccessMessage string
	FailureMessage string
}

// Orchestrator выполняет отправки, не более одной одновременно
type Orchestrator struct {
	notifier  Notifier
	navigator Navigator
	logger    *slog.Logger
	busy      atomic.Bool
}

// New создает Orchestrator
func New(notifier Notifier, navigator Navigator, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		notifier:  notifier,
		navigator: navigator,
		logger:    logger,
	}
}

// Busy сообщает, что отправка выполняется
func (o *Orchestrator) Busy() bool {
	return o.busy.Load()
}

// Run проверяет форму и выполняет отправку.
// При ошибках валидации возвращает validation.Errors без запроса к серверу.
func (o *Orchestrator) Run(ctx context.Context, s Submission) error {
	errs := validation.ValidateForm(s.Form)
	if s.Validate != nil {
		for field, msg := range s.Validate() {
			errs.Add(field, msg)
		}
	}
	if !errs.Empty() {
		o.logger.Debug("submission rejected by validation", "submission", s.Name, "errors", errs.Error())
		return errs
	}

	if !o.busy.CompareAndSwap(false, true) {
		return ErrBusy
	}
	defer o.busy.Store(false)

	o.logger.Debug("submitting", "submission", s.Name)
	serverMsg, err := s.Call(ctx)
	if err != nil {
		o.fail(s.Name, s.FailureMessage, err)
		return err
	}

	if msg := s.SuccessMessage; msg != "" {
		o.notifier.Success(msg)
	} else if serverMsg != "" {
		o.notifier.Success(serverMsg)
	}
	if s.OnSuccess != nil {
		s.OnSuccess()
	}
	if s.SuccessRoute != "" {
		o.navigator.Navigate(s.SuccessRoute)
	}
	o.logger.Info("submission succeeded", "submission", s.Name)
	return nil
}

// Optimistic применяет изменение сразу, затем выполняет запрос.
// При ошибке изменение откатывается.
func (o *Orchestrator) Optimistic(ctx context.Context, t Tentative) error {
	if !o.busy.CompareAndSwap(false, true) {
		return ErrBusy
	}
	defer o.busy.Store(false)

	tr, err := t.Begin()
	if err != nil {
		return err
	}

	if err := t.Call(ctx); err != nil {
		tr.Revert()
		o.fail(t.Name, t.FailureMessage, err)
		return err
	}

	tr.Commit()
	if t.SuccessMessage != "" {
		o.notifier.Success(t.SuccessMessage)
	}
	o.logger.Info("submission succeeded", "submission", t.Name)
	return nil
}

// Fail сообщает об ошибке запроса, выполненного вне Run
func (o *Orchestrator) Fail(name string, err error) {
	o.fail(name, "", err)
}

// fail показывает ошибку: 403 ведет на вход, сообщение сервера показывается как есть
func (o *Orchestrator) fail(name, fallback string, err error) {
	switch {
	case errors.Is(err, api.ErrSessionExpired):
		o.logger.Warn("session expired", "submission", name)
		o.notifier.Error(MsgSessionExpired)
		o.navigator.Navigate(RouteLogin)
		return
	case errors.Is(err, context.Canceled):
		o.logger.Debug("submission canceled", "submission", name)
		return
	}

	msg, ok := api.ServerMessage(err)
	if !ok {
		msg = MsgServerError
		if fallback != "" {
			msg = fallback
		}
	}
	o.logger.Error("submission failed", "submission", name, "error", err)
	o.notifier.Error(msg)
}
