package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/adpanel/internal/client/ads"
)

func (c *Cli) runDraft(ctx context.Context, args []string) error {
	sub, rest := subcommand(args)
	switch sub {
	case "list":
		drafts, err := c.ads.ListDrafts(ctx)
		if err != nil {
			return fmt.Errorf("failed to list drafts: %w", err)
		}
		return c.render("drafts", drafts)
	case "new":
		var form ads.Form
		c.io.Println("=== New Ad Draft ===")
		c.io.Println()
		if err := c.askAdForm(&form, true); err != nil {
			return err
		}
		draft, err := c.ads.NewDraft(ctx, form)
		if err != nil {
			return err
		}
		c.io.Printf("Draft saved: %s\n", draft.ID)
		return nil
	case "edit":
		adID, err := arg(rest, 0, "adpanel draft edit <adId>")
		if err != nil {
			return err
		}
		var draftID string
		err = c.withSession(ctx, func() error {
			draft, err := c.ads.EditDraft(ctx, adID)
			if err != nil {
				return err
			}
			draftID = draft.ID
			return nil
		})
		if err != nil {
			return err
		}
		c.io.Printf("Draft saved: %s\n", draftID)
		return nil
	case "show":
		id, err := arg(rest, 0, "adpanel draft show <id>")
		if err != nil {
			return err
		}
		draft, err := c.ads.GetDraft(ctx, id)
		if err != nil {
			return err
		}
		return c.render("draft", draft)
	case "update":
		id, err := arg(rest, 0, "adpanel draft update <id>")
		if err != nil {
			return err
		}
		draft, err := c.ads.GetDraft(ctx, id)
		if err != nil {
			return err
		}
		form := ads.Form{Link: draft.Link, IsVertical: draft.IsVertical}
		if err := c.askAdForm(&form, draft.Banner == ""); err != nil {
			return err
		}
		if _, err := c.ads.UpdateDraft(ctx, id, form); err != nil {
			return err
		}
		c.io.Printf("Draft updated: %s\n", id)
		return nil
	case "preview":
		id, err := arg(rest, 0, "adpanel draft preview <id> [file]")
		if err != nil {
			return err
		}
		if len(rest) > 1 {
			if err := c.ads.WritePreview(ctx, id, rest[1]); err != nil {
				return err
			}
			c.io.Printf("Preview written to %s\n", rest[1])
			return nil
		}
		html, err := c.ads.PreviewDraft(ctx, id)
		if err != nil {
			return err
		}
		_, err = c.io.Write([]byte(html))
		return err
	case "submit":
		id, err := arg(rest, 0, "adpanel draft submit <id>")
		if err != nil {
			return err
		}
		return c.withSession(ctx, func() error { return c.ads.SubmitDraft(ctx, id) })
	case "delete":
		id, err := arg(rest, 0, "adpanel draft delete <id>")
		if err != nil {
			return err
		}
		if err := c.ads.DeleteDraft(ctx, id); err != nil {
			return err
		}
		c.io.Printf("Draft deleted: %s\n", id)
		return nil
	default:
		return fmt.Errorf("%w: unknown draft command %q", ErrUsage, sub)
	}
}
