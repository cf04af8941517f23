package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/adpanel/internal/client/reconcile"
	"github.com/iudanet/adpanel/internal/client/subscription"
	"github.com/iudanet/adpanel/internal/validation"
	pkgapi "github.com/iudanet/adpanel/pkg/api"
)

type plansView struct {
	Plans   []pkgapi.Plan
	IsAdmin bool
}

func (c *Cli) runPlans(ctx context.Context, args []string) error {
	sub, rest := subcommand(args)
	switch sub {
	case "list":
		plans, err := c.plans.Plans(ctx)
		if err != nil {
			return err
		}
		return c.render("plans", plansView{Plans: plans, IsAdmin: c.sessions.IsAdmin(ctx)})
	case "edit":
		id, err := arg(rest, 0, "adpanel plans edit <id>")
		if err != nil {
			return err
		}
		return c.runPlanEdit(ctx, id)
	case "cancel", "close":
		ok, err := c.confirm("Close your current plan?")
		if err != nil || !ok {
			return err
		}
		return c.plans.Cancel(ctx)
	case "checkout", "select":
		id, err := arg(rest, 0, "adpanel plans checkout <id>")
		if err != nil {
			return err
		}
		return c.runCheckout(ctx, id)
	default:
		return fmt.Errorf("%w: unknown plans command %q", ErrUsage, sub)
	}
}

func (c *Cli) runPlanEdit(ctx context.Context, id string) error {
	if !c.sessions.IsAdmin(ctx) {
		return subscription.ErrNotAdmin
	}

	plans, err := c.plans.Plans(ctx)
	if err != nil {
		return err
	}
	var plan *pkgapi.Plan
	for i := range plans {
		if plans[i].ID == id {
			plan = &plans[i]
			break
		}
	}
	if plan == nil {
		return fmt.Errorf("plan %q: %w", id, reconcile.ErrNotFound)
	}

	c.io.Printf("=== Edit Plan %s ===\n\n", plan.Title)
	req := pkgapi.ProductUpdateRequest{}
	if req.Title, err = c.ask("Title", plan.Title); err != nil {
		return err
	}
	if req.Price, err = c.ask("Price", string(plan.Price)); err != nil {
		return err
	}
	if req.Description, err = c.ask("Description", plan.Description); err != nil {
		return err
	}

	return c.plans.EditPlan(ctx, id, req)
}

// runCheckout запрашивает платежные данные.
// Пустой ввод оставляет сохраненное значение.
func (c *Cli) runCheckout(ctx context.Context, productID string) error {
	co, err := c.plans.PrepareCheckout(ctx, productID)
	if err != nil {
		return err
	}

	c.io.Println("=== Checkout ===")
	c.io.Println()

	form := co.Initial
	fields := []struct {
		value  *string
		format func(string) (string, bool)
		field  validation.Field
	}{
		{field: validation.FieldFirstName, value: &form.FirstName},
		{field: validation.FieldLastName, value: &form.LastName},
		{field: validation.FieldCardNumber, value: &form.CardNumber, format: validation.FormatCardNumberStrict},
		{field: validation.FieldExpiryDate, value: &form.ExpiryDate, format: validation.FormatExpiryDateStrict},
		{field: validation.FieldAddress, value: &form.Address},
		{field: validation.FieldCity, value: &form.City},
		{field: validation.FieldState, value: &form.State},
		{field: validation.FieldZipCode, value: &form.ZipCode},
		{field: validation.FieldCountry, value: &form.Country},
	}
	for _, f := range fields {
		current := *f.value
		value, err := c.askField(f.field, current)
		if err != nil {
			return err
		}
		if value != current && f.format != nil {
			formatted, ok := f.format(value)
			if !ok {
				c.io.Printf("%s is too long, keeping the previous value\n", f.field.Label())
				formatted = current
			}
			value = formatted
		}
		*f.value = value
	}

	return c.plans.Submit(ctx, co, form)
}
