package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runCompanies(ctx context.Context, args []string) error {
	sub, rest := subcommand(args)
	switch sub {
	case "list":
		companies, err := c.companies.List(ctx)
		if err != nil {
			return err
		}
		return c.render("companies", companies)
	case "remove", "delete":
		id, err := arg(rest, 0, "adpanel companies remove <id>")
		if err != nil {
			return err
		}
		ok, err := c.confirm(fmt.Sprintf("Remove company %s and all its ads?", id))
		if err != nil || !ok {
			return err
		}
		return c.companies.Remove(ctx, id)
	case "block", "unblock":
		id, err := arg(rest, 0, fmt.Sprintf("adpanel companies %s <id>", sub))
		if err != nil {
			return err
		}
		if err := c.companies.SetBlocked(ctx, id, sub == "block"); err != nil {
			return err
		}
		c.io.Printf("Company %s is %sed\n", id, sub)
		return nil
	case "toggle":
		id, err := arg(rest, 0, "adpanel companies toggle <id>")
		if err != nil {
			return err
		}
		blocked, err := c.companies.ToggleBlock(ctx, id)
		if err != nil {
			return err
		}
		if blocked {
			c.io.Printf("Company %s is blocked\n", id)
		} else {
			c.io.Printf("Company %s is unblocked\n", id)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown companies command %q", ErrUsage, sub)
	}
}
