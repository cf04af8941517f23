// Package cli реализует команды adpanel поверх сервисов клиента.
package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/iudanet/adpanel/internal/client/ads"
	"github.com/iudanet/adpanel/internal/client/api"
	"github.com/iudanet/adpanel/internal/client/company"
	"github.com/iudanet/adpanel/internal/client/iocli"
	"github.com/iudanet/adpanel/internal/client/session"
	"github.com/iudanet/adpanel/internal/client/submit"
	"github.com/iudanet/adpanel/internal/client/subscription"
	"github.com/iudanet/adpanel/internal/validation"
)

var (
	// ErrReported ошибка уже показана пользователю
	ErrReported = errors.New("command failed")
	// ErrUsage команда вызвана с неверными аргументами
	ErrUsage = errors.New("invalid usage")
)

// Services сервисы, с которыми работают команды
type Services struct {
	Sessions  *session.Service
	Ads       *ads.Service
	Companies *company.Service
	Plans     *subscription.Service
}

type Cli struct {
	io        iocli.IO
	console   *Console
	sessions  *session.Service
	ads       *ads.Service
	companies *company.Service
	plans     *subscription.Service
}

func New(io iocli.IO, console *Console, svc Services) *Cli {
	return &Cli{
		io:        io,
		console:   console,
		sessions:  svc.Sessions,
		ads:       svc.Ads,
		companies: svc.Companies,
		plans:     svc.Plans,
	}
}

// Run выполняет команду. Ошибки, уже показанные пользователю,
// оборачиваются в ErrReported.
func (c *Cli) Run(ctx context.Context, args []string) error {
	c.console.reset()
	if len(args) == 0 {
		c.PrintUsage()
		return ErrUsage
	}

	command, rest := args[0], args[1:]
	var err error
	switch command {
	case "register":
		err = c.runRegister(ctx)
	case "login":
		err = c.runLogin(ctx)
	case "logout":
		err = c.runLogout(ctx)
	case "status":
		err = c.runStatus(ctx)
	case "ads":
		err = c.withSession(ctx, func() error { return c.runAds(ctx, rest) })
	case "draft", "drafts":
		err = c.runDraft(ctx, rest)
	case "companies", "company":
		err = c.withSession(ctx, func() error { return c.runCompanies(ctx, rest) })
	case "plans", "plan":
		err = c.withSession(ctx, func() error { return c.runPlans(ctx, rest) })
	case "help", "-h", "--help":
		c.PrintUsage()
	default:
		c.PrintUsage()
		err = fmt.Errorf("%w: unknown command %q", ErrUsage, command)
	}
	return c.report(err)
}

// PrintUsage печатает справку
func (c *Cli) PrintUsage() {
	if err := views.ExecuteTemplate(c.io, "usage", nil); err != nil {
		c.io.Printf("failed to render usage: %v\n", err)
	}
}

func (c *Cli) render(name string, data any) error {
	if err := views.ExecuteTemplate(c.io, name, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	return nil
}

// withSession восстанавливает cookie сессии перед запросами к серверу
func (c *Cli) withSession(ctx context.Context, fn func() error) error {
	if _, err := c.sessions.Restore(ctx); err != nil {
		switch {
		case errors.Is(err, session.ErrNotLoggedIn):
			return fmt.Errorf("not authenticated. Please run 'adpanel login' first")
		case errors.Is(err, api.ErrSessionExpired):
			c.console.Error(submit.MsgSessionExpired)
			c.console.Navigate(submit.RouteLogin)
			return err
		default:
			return fmt.Errorf("failed to restore session: %w", err)
		}
	}
	return fn()
}

func (c *Cli) report(err error) error {
	if err == nil {
		return nil
	}
	var errs validation.Errors
	if errors.As(err, &errs) {
		c.printFieldErrors(errs)
		return fmt.Errorf("%w: %w", ErrReported, err)
	}
	if c.console.Reported() {
		return fmt.Errorf("%w: %w", ErrReported, err)
	}
	return err
}

// printFieldErrors печатает ошибки формы в порядке полей
func (c *Cli) printFieldErrors(errs validation.Errors) {
	c.io.Println("Please fix the following fields:")
	for _, field := range validation.Fields() {
		if msg, ok := errs[field]; ok {
			c.io.Printf("  %s: %s\n", field.Label(), msg)
		}
	}
}

// arg возвращает обязательный позиционный аргумент
func arg(args []string, i int, usage string) (string, error) {
	if len(args) <= i || strings.TrimSpace(args[i]) == "" {
		return "", fmt.Errorf("%w: %s", ErrUsage, usage)
	}
	return strings.TrimSpace(args[i]), nil
}

// subcommand разбирает подкоманду, по умолчанию list
func subcommand(args []string) (string, []string) {
	if len(args) == 0 {
		return "list", nil
	}
	return args[0], args[1:]
}
