// Package ads управляет баннерами компании: список, редактирование,
// видимость и локальные черновики с превью.
package ads

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/adpanel/internal/client/api"
	"github.com/iudanet/adpanel/internal/client/reconcile"
	"github.com/iudanet/adpanel/internal/client/storage"
	"github.com/iudanet/adpanel/internal/client/submit"
	"github.com/iudanet/adpanel/internal/validation"
	pkgapi "github.com/iudanet/adpanel/pkg/api"
)

// Сообщения об успешных операциях
const (
	MsgSubmitted    = "Successfully submitted!"
	MsgDeleted      = "Successfully deleted!"
	MsgToggleFailed = "Unable to update status due to server error!"
)

// Form данные формы баннера
type Form struct {
	IsVertical *bool
	ID         string // пусто для нового баннера
	Link       string
	BannerPath string // пусто - баннер не меняется
}

// Service управляет баннерами компании
type Service struct {
	client api.ClientAPI
	cache  storage.CacheStorage
	drafts storage.DraftStorage
	flow   *submit.Orchestrator
	list   *reconcile.List[pkgapi.Ad]
	now    func() time.Time
	// companyID компании, чьи баннеры загружены; пусто - свои баннеры
	companyID string
	loaded    bool
}

// NewService создает сервис баннеров
func NewService(
	client api.ClientAPI,
	cache storage.CacheStorage,
	drafts storage.DraftStorage,
	flow *submit.Orchestrator,
) *Service {
	return &Service{
		client: client,
		cache:  cache,
		drafts: drafts,
		flow:   flow,
		list:   reconcile.NewList[pkgapi.Ad](nil),
		now:    time.Now,
	}
}

// List загружает баннеры текущей компании и обновляет кеш
func (s *Service) List(ctx context.Context) ([]pkgapi.Ad, error) {
	ads, err := s.client.ListAds(ctx)
	if err != nil {
		s.flow.Fail("list ads", err)
		return nil, err
	}

	s.companyID = ""
	s.loaded = true
	s.list.Replace(ads)
	s.saveCache(ctx)
	return s.list.Items(), nil
}

// Cached возвращает баннеры из кеша без запроса к серверу
func (s *Service) Cached(ctx context.Context) ([]pkgapi.Ad, time.Time, error) {
	var ads []pkgapi.Ad
	savedAt, err := s.cache.LoadCollection(ctx, storage.CollectionAds, &ads)
	if err != nil {
		return nil, time.Time{}, err
	}
	return ads, savedAt, nil
}

// ListByCompany загружает баннеры указанной компании (администратор)
func (s *Service) ListByCompany(ctx context.Context, companyID string) ([]pkgapi.Ad, error) {
	ads, err := s.client.CompanyAds(ctx, companyID)
	if err != nil {
		s.flow.Fail("company ads", err)
		return nil, err
	}

	s.companyID = companyID
	s.loaded = true
	s.list.Replace(ads)
	return s.list.Items(), nil
}

// Items возвращает текущую локальную копию списка
func (s *Service) Items() []pkgapi.Ad {
	return s.list.Items()
}

// Get загружает баннер для редактирования
func (s *Service) Get(ctx context.Context, id string) (*pkgapi.Ad, error) {
	ad, err := s.client.GetAd(ctx, id)
	if err != nil {
		s.flow.Fail("get ad", err)
		return nil, err
	}
	return ad, nil
}

// Submit проверяет форму и сохраняет баннер
func (s *Service) Submit(ctx context.Context, form Form) error {
	var banner *pkgapi.BannerUpload
	if form.BannerPath != "" {
		b, err := LoadBanner(form.BannerPath)
		if err != nil {
			return err
		}
		banner = b
	}
	return s.submit(ctx, form.ID, form.Link, form.IsVertical, banner)
}

func (s *Service) submit(ctx context.Context, id, link string, isVertical *bool, banner *pkgapi.BannerUpload) error {
	bannerType := ""
	if banner != nil {
		bannerType = banner.Type
	}

	req := pkgapi.AdSubmitRequest{
		ID:         id,
		Link:       link,
		IsVertical: isVertical,
		Banner:     banner,
	}

	return s.flow.Run(ctx, submit.Submission{
		Name: "submit ad",
		Form: validation.Form{
			validation.FieldLink:   link,
			validation.FieldBanner: bannerType,
		},
		Validate: func() validation.Errors {
			var errs validation.Errors
			errs.Add(validation.FieldBannerOrientation, validation.ValidateOrientation(isVertical))
			return errs
		},
		Call: func(ctx context.Context) (string, error) {
			_, err := s.client.SubmitAd(ctx, req)
			return "", err
		},
		OnSuccess: func() {
			if id == "" || !s.ensureLoaded(ctx) {
				return
			}
			s.list.PatchByID(id, func(ad *pkgapi.Ad) {
				ad.Link = link
				ad.IsVertical = isVertical
				if banner != nil {
					ad.Banner = banner.Base64
				}
			})
			s.saveCache(ctx)
		},
		SuccessMessage: MsgSubmitted,
		SuccessRoute:   submit.RouteDashboard,
	})
}

// Delete удаляет баннер и убирает его из списка
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.flow.Run(ctx, submit.Submission{
		Name: "delete ad",
		Call: func(ctx context.Context) (string, error) {
			_, err := s.client.DeleteAd(ctx, id)
			return "", err
		},
		OnSuccess: func() {
			if !s.ensureLoaded(ctx) {
				return
			}
			s.list.RemoveByID(id)
			s.saveCache(ctx)
		},
		SuccessMessage: MsgDeleted,
	})
}

// ToggleShown переключает видимость баннера сразу, не дожидаясь сервера.
// При ошибке прежнее значение восстанавливается.
// Новое значение вычисляется по свежему списку с сервера, а не по кешу.
func (s *Service) ToggleShown(ctx context.Context, id string) (bool, error) {
	if !s.loaded {
		if _, err := s.List(ctx); err != nil {
			return false, err
		}
	}
	if _, ok := s.list.Get(id); !ok {
		return false, fmt.Errorf("ad %q: %w", id, reconcile.ErrNotFound)
	}

	var shown bool
	err := s.flow.Optimistic(ctx, submit.Tentative{
		Name: "toggle ad",
		Begin: func() (submit.Transition, error) {
			p, err := s.list.Begin(id, func(ad *pkgapi.Ad) {
				ad.IsShown = !ad.IsShown
				shown = ad.IsShown
			})
			if err != nil {
				return nil, err
			}
			return p, nil
		},
		Call: func(ctx context.Context) error {
			_, err := s.client.SubmitAd(ctx, pkgapi.AdSubmitRequest{ID: id, IsShown: &shown})
			return err
		},
		FailureMessage: MsgToggleFailed,
	})
	if err != nil {
		current, _ := s.list.Get(id)
		return current.IsShown, err
	}

	s.saveCache(ctx)
	return shown, nil
}

// Reset сбрасывает дневные счетчики показов
func (s *Service) Reset(ctx context.Context) error {
	return s.flow.Run(ctx, submit.Submission{
		Name: "reset ads",
		Call: func(ctx context.Context) (string, error) {
			resp, err := s.client.ResetAds(ctx)
			if err != nil {
				return "", err
			}
			return resp.Message, nil
		},
		OnSuccess: func() {
			if !s.ensureLoaded(ctx) {
				return
			}
			s.list.PatchAll(func(ad *pkgapi.Ad) { ad.Views.TodayViews = 0 })
			s.saveCache(ctx)
		},
	})
}

// ensureLoaded подгружает список из кеша, если он еще не загружен
func (s *Service) ensureLoaded(ctx context.Context) bool {
	if s.loaded {
		return true
	}
	ads, _, err := s.Cached(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrCacheMiss) {
			slog.Warn("failed to load ads cache", "error", err)
		}
		return false
	}
	s.list.Replace(ads)
	s.loaded = true
	return true
}

// saveCache сохраняет свои баннеры; список другой компании не кешируется
func (s *Service) saveCache(ctx context.Context) {
	if s.companyID != "" {
		return
	}
	if err := s.cache.SaveCollection(ctx, storage.CollectionAds, s.list.Items()); err != nil {
		slog.Warn("failed to save ads cache", "error", err)
	}
}
