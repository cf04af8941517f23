package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/adpanel/internal/client/api"
	"github.com/iudanet/adpanel/internal/client/session"
	"github.com/iudanet/adpanel/internal/client/submit"
	"github.com/iudanet/adpanel/internal/validation"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	email, err := c.askField(validation.FieldEmail, "")
	if err != nil {
		return err
	}
	password, err := c.askPassword()
	if err != nil {
		return err
	}

	return c.sessions.Login(ctx, email, password)
}

func (c *Cli) runRegister(ctx context.Context) error {
	c.io.Println("=== Register ===")
	c.io.Println()

	name, err := c.askField(validation.FieldName, "")
	if err != nil {
		return err
	}
	email, err := c.askField(validation.FieldEmail, "")
	if err != nil {
		return err
	}
	password, err := c.askPassword()
	if err != nil {
		return err
	}

	return c.sessions.Register(ctx, name, email, password)
}

func (c *Cli) runLogout(ctx context.Context) error {
	return c.sessions.Logout(ctx)
}

func (c *Cli) runStatus(ctx context.Context) error {
	if _, err := c.sessions.Current(ctx); err != nil {
		if errors.Is(err, session.ErrNotLoggedIn) || errors.Is(err, api.ErrSessionExpired) {
			c.io.Println("Status: Not authenticated")
			c.io.Println()
			c.io.Println(routeHint(submit.RouteLogin))
			return nil
		}
		return fmt.Errorf("failed to read session: %w", err)
	}

	// Профиль компании обновляем с сервера
	info, err := c.sessions.Check(ctx)
	if err != nil {
		return fmt.Errorf("failed to check session: %w", err)
	}

	view := *info
	view.ExpiresIn = view.ExpiresIn.Round(time.Second)
	return c.render("status", view)
}
