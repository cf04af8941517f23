package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/adpanel/internal/client/ads"
	"github.com/iudanet/adpanel/internal/client/api"
	"github.com/iudanet/adpanel/internal/validation"
	pkgapi "github.com/iudanet/adpanel/pkg/api"
)

type adsView struct {
	SavedAt time.Time
	Title   string
	Ads     []pkgapi.Ad
	Own     bool
	Cached  bool
}

func (c *Cli) runAds(ctx context.Context, args []string) error {
	sub, rest := subcommand(args)
	switch sub {
	case "list":
		return c.runAdsList(ctx)
	case "get":
		id, err := arg(rest, 0, "adpanel ads get <id>")
		if err != nil {
			return err
		}
		ad, err := c.ads.Get(ctx, id)
		if err != nil {
			return err
		}
		return c.render("ad", ad)
	case "submit":
		id := ""
		if len(rest) > 0 {
			id = rest[0]
		}
		return c.runAdSubmit(ctx, id)
	case "toggle":
		id, err := arg(rest, 0, "adpanel ads toggle <id>")
		if err != nil {
			return err
		}
		shown, err := c.ads.ToggleShown(ctx, id)
		if err != nil {
			return err
		}
		if shown {
			c.io.Printf("Ad %s is now shown\n", id)
		} else {
			c.io.Printf("Ad %s is now hidden\n", id)
		}
		return nil
	case "delete":
		id, err := arg(rest, 0, "adpanel ads delete <id>")
		if err != nil {
			return err
		}
		ok, err := c.confirm(fmt.Sprintf("Delete ad %s?", id))
		if err != nil || !ok {
			return err
		}
		return c.ads.Delete(ctx, id)
	case "reset":
		return c.ads.Reset(ctx)
	case "company":
		companyID, err := arg(rest, 0, "adpanel ads company <companyId>")
		if err != nil {
			return err
		}
		list, err := c.ads.ListByCompany(ctx, companyID)
		if err != nil {
			return err
		}
		return c.render("ads", adsView{Title: "Ads of company " + companyID, Ads: list})
	default:
		return fmt.Errorf("%w: unknown ads command %q", ErrUsage, sub)
	}
}

// runAdsList при недоступном сервере показывает последний загруженный список
func (c *Cli) runAdsList(ctx context.Context) error {
	list, err := c.ads.List(ctx)
	if err == nil {
		return c.render("ads", adsView{Title: "Your Ads", Ads: list, Own: true})
	}
	if errors.Is(err, api.ErrSessionExpired) {
		return err
	}

	cached, savedAt, cacheErr := c.ads.Cached(ctx)
	if cacheErr != nil {
		return err
	}
	return c.render("ads", adsView{Title: "Your Ads", Ads: cached, Own: true, Cached: true, SavedAt: savedAt})
}

// runAdSubmit создает баннер или редактирует существующий
func (c *Cli) runAdSubmit(ctx context.Context, id string) error {
	form := ads.Form{ID: id}
	if id != "" {
		ad, err := c.ads.Get(ctx, id)
		if err != nil {
			return err
		}
		form.Link = ad.Link
		form.IsVertical = ad.IsVertical
		c.io.Println("=== Edit Ad ===")
	} else {
		c.io.Println("=== New Ad ===")
	}
	c.io.Println()

	if err := c.askAdForm(&form, id == ""); err != nil {
		return err
	}
	return c.ads.Submit(ctx, form)
}

// askAdForm запрашивает поля баннера
func (c *Cli) askAdForm(form *ads.Form, isNew bool) error {
	link, err := c.askField(validation.FieldLink, form.Link)
	if err != nil {
		return err
	}
	form.Link = link

	label := validation.FieldBanner.Label() + " file"
	if !isNew {
		label += " (empty keeps current)"
	}
	path, err := c.ask(label, "")
	if err != nil {
		return err
	}
	form.BannerPath = path

	isVertical, err := c.askOrientation(form.IsVertical)
	if err != nil {
		return err
	}
	form.IsVertical = isVertical
	return nil
}
