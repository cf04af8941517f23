// Package company содержит административные операции над компаниями.
package company

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
	pkgapi "github.com/iudanet/adpanel/pkg/api"
)

// Service управляет списком компаний (только для администратора)
type Service struct {
	client api.ClientAPI
	cache  storage.CacheStorage
	flow   *submit.Orchestrator
	list   *reconcile.List[pkgapi.Company]
	loaded bool
}

// NewService создает сервис компаний
func NewService(client api.ClientAPI, cache storage.CacheStorage, flow *submit.Orchestrator) *Service {
	return &Service{
		client: client,
		cache:  cache,
		flow:   flow,
		list:   reconcile.NewList[pkgapi.Company](nil),
	}
}

// List загружает список компаний
func (s *Service) List(ctx context.Context) ([]pkgapi.Company, error) {
	companies, err := s.client.ListCompanies(ctx)
	if err != nil {
		s.flow.Fail("list companies", err)
		return nil, err
	}

	s.list.Replace(companies)
	s.loaded = true
	s.saveCache(ctx)
	return s.list.Items(), nil
}

// Cached возвращает список из кеша
func (s *Service) Cached(ctx context.Context) ([]pkgapi.Company, time.Time, error) {
	var companies []pkgapi.Company
	savedAt, err := s.cache.LoadCollection(ctx, storage.CollectionCompanies, &companies)
	if err != nil {
		return nil, time.Time{}, err
	}
	return companies, savedAt, nil
}

// Items возвращает текущую локальную копию списка
func (s *Service) Items() []pkgapi.Company {
	return s.list.Items()
}

// Remove удаляет компанию одним запросом DELETE и убирает ее из списка
func (s *Service) Remove(ctx context.Context, id string) error {
	return s.flow.Run(ctx, submit.Submission{
		Name: "remove company",
		Call: func(ctx context.Context) (string, error) {
			resp, err := s.client.RemoveCompany(ctx, id)
			if err != nil {
				return "", err
			}
			return resp.Message, nil
		},
		OnSuccess: func() {
			if !s.ensureLoaded(ctx) {
				return
			}
			s.list.RemoveByID(id)
			s.saveCache(ctx)
		},
	})
}

// SetBlocked блокирует или разблокирует компанию явным запросом.
// Текущее локальное состояние не учитывается.
func (s *Service) SetBlocked(ctx context.Context, id string, blocked bool) error {
	call, name := s.client.UnblockCompany, "unblock company"
	if blocked {
		call, name = s.client.BlockCompany, "block company"
	}

	return s.flow.Run(ctx, submit.Submission{
		Name: name,
		Call: func(ctx context.Context) (string, error) {
			resp, err := call(ctx, id)
			if err != nil {
				return "", err
			}
			return resp.Message, nil
		},
		OnSuccess: func() {
			if !s.ensureLoaded(ctx) {
				return
			}
			s.list.PatchByID(id, func(c *pkgapi.Company) { c.Blocked = blocked })
			s.saveCache(ctx)
		},
	})
}

// ToggleBlock блокирует или разблокирует компанию в зависимости от текущего состояния.
// Состояние берется из свежего списка с сервера, кеш для этого не годится.
// Возвращает новое состояние блокировки.
func (s *Service) ToggleBlock(ctx context.Context, id string) (bool, error) {
	if !s.loaded {
		if _, err := s.List(ctx); err != nil {
			return false, err
		}
	}
	current, ok := s.list.Get(id)
	if !ok {
		return false, fmt.Errorf("company %q: %w", id, reconcile.ErrNotFound)
	}

	if err := s.SetBlocked(ctx, id, !current.Blocked); err != nil {
		return current.Blocked, err
	}
	return !current.Blocked, nil
}

func (s *Service) ensureLoaded(ctx context.Context) bool {
	if s.loaded {
		return true
	}
	companies, _, err := s.Cached(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrCacheMiss) {
			slog.Warn("failed to load companies cache", "error", err)
		}
		return false
	}
	s.list.Replace(companies)
	s.loaded = true
	return true
}

func (s *Service) saveCache(ctx context.Context) {
	if err := s.cache.SaveCollection(ctx, storage.CollectionCompanies, s.list.Items()); err != nil {
		slog.Warn("failed to save companies cache", "error", err)
	}
}
