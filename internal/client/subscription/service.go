// Package subscription управляет тарифными планами компании: список,
// редактирование администратором, отмена и оформление.
package subscription

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/iudanet/adpanel/internal/client/api"
	"github.com/iudanet/adpanel/internal/client/reconcile"
	"github.com/iudanet/adpanel/internal/client/storage"
	"github.com/iudanet/adpanel/internal/client/submit"
	"github.com/iudanet/adpanel/internal/validation"
	pkgapi "github.com/iudanet/adpanel/pkg/api"
)

// Сообщения пользователю
const (
	MsgCancelled     = "Successfully cancelled"
	MsgPurchased     = "Successfully purchased!"
	MsgAlreadyInPlan = "You are already in the plan!"
)

var (
	// ErrNotAdmin редактировать планы может только администратор
	ErrNotAdmin = errors.New("only administrators can edit plans")
	// ErrAlreadyInPlan компания уже подписана на выбранный план
	ErrAlreadyInPlan = errors.New("already subscribed to this plan")
)

// AdminChecker сообщает роль текущей компании
type AdminChecker interface {
	IsAdmin(ctx context.Context) bool
}

// Service управляет планами подписки
type Service struct {
	client    api.ClientAPI
	cache     storage.CacheStorage
	flow      *submit.Orchestrator
	notifier  submit.Notifier
	navigator submit.Navigator
	admin     AdminChecker
	list      *reconcile.List[pkgapi.Plan]
	loaded    bool
}

// NewService создает сервис планов
func NewService(
	client api.ClientAPI,
	cache storage.CacheStorage,
	flow *submit.Orchestrator,
	notifier submit.Notifier,
	navigator submit.Navigator,
	admin AdminChecker,
) *Service {
	return &Service{
		client:    client,
		cache:     cache,
		flow:      flow,
		notifier:  notifier,
		navigator: navigator,
		admin:     admin,
		list:      reconcile.NewList[pkgapi.Plan](nil),
	}
}

// Plans загружает планы
func (s *Service) Plans(ctx context.Context) ([]pkgapi.Plan, error) {
	plans, err := s.client.ListPlans(ctx)
	if err != nil {
		s.flow.Fail("list plans", err)
		return nil, err
	}

	s.list.Replace(plans)
	s.loaded = true
	s.saveCache(ctx)
	return s.list.Items(), nil
}

// Cached возвращает планы из кеша
func (s *Service) Cached(ctx context.Context) ([]pkgapi.Plan, time.Time, error) {
	var plans []pkgapi.Plan
	savedAt, err := s.cache.LoadCollection(ctx, storage.CollectionPlans, &plans)
	if err != nil {
		return nil, time.Time{}, err
	}
	return plans, savedAt, nil
}

// Items возвращает текущую локальную копию списка
func (s *Service) Items() []pkgapi.Plan {
	return s.list.Items()
}

// EditPlan изменяет название, цену и описание плана
func (s *Service) EditPlan(ctx context.Context, id string, req pkgapi.ProductUpdateRequest) error {
	if !s.admin.IsAdmin(ctx) {
		return ErrNotAdmin
	}
	if err := validation.ValidateStruct(req); err != nil {
		return err
	}

	return s.flow.Run(ctx, submit.Submission{
		Name: "edit plan",
		Call: func(ctx context.Context) (string, error) {
			resp, err := s.client.UpdateProduct(ctx, id, req)
			if err != nil {
				return "", err
			}
			return resp.Message, nil
		},
		OnSuccess: func() {
			if !s.ensureLoaded(ctx) {
				return
			}
			s.list.PatchByID(id, func(p *pkgapi.Plan) {
				p.Title = req.Title
				p.Price = pkgapi.FlexString(req.Price)
				p.Description = req.Description
			})
			s.saveCache(ctx)
		},
	})
}

// Cancel отменяет подписку компании
func (s *Service) Cancel(ctx context.Context) error {
	return s.flow.Run(ctx, submit.Submission{
		Name: "cancel subscription",
		Call: func(ctx context.Context) (string, error) {
			_, err := s.client.CancelSubscription(ctx)
			return "", err
		},
		OnSuccess: func() {
			if !s.ensureLoaded(ctx) {
				return
			}
			s.list.PatchAll(func(p *pkgapi.Plan) {
				p.IsYourPlan = false
				p.NextPaymentDate = nil
				p.EndDate = nil
				p.IsPending = nil
			})
			s.saveCache(ctx)
		},
		SuccessMessage: MsgCancelled,
	})
}

func (s *Service) ensureLoaded(ctx context.Context) bool {
	if s.loaded {
		return true
	}
	plans, _, err := s.Cached(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrCacheMiss) {
			slog.Warn("failed to load plans cache", "error", err)
		}
		return false
	}
	s.list.Replace(plans)
	s.loaded = true
	return true
}

func (s *Service) saveCache(ctx context.Context) {
	if err := s.cache.SaveCollection(ctx, storage.CollectionPlans, s.list.Items()); err != nil {
		slog.Warn("failed to save plans cache", "error", err)
	}
}
