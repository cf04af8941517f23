package ads

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/iudanet/adpanel/internal/client/preview"
	"github.com/iudanet/adpanel/internal/client/storage"
	pkgapi "github.com/iudanet/adpanel/pkg/api"
)

// NewDraft создает локальный черновик из формы.
// Черновик не проверяется: его можно дополнить позже.
func (s *Service) NewDraft(ctx context.Context, form Form) (*storage.AdDraft, error) {
	now := s.now().UTC()
	draft := &storage.AdDraft{
		ID:         uuid.NewString(),
		AdID:       form.ID,
		Link:       form.Link,
		IsVertical: form.IsVertical,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if form.BannerPath != "" {
		banner, err := LoadBanner(form.BannerPath)
		if err != nil {
			return nil, err
		}
		draft.Banner = banner.Base64
		draft.BannerType = banner.Type
	}

	if err := s.drafts.SaveDraft(ctx, draft); err != nil {
		return nil, fmt.Errorf("failed to save draft: %w", err)
	}
	return draft, nil
}

// EditDraft создает черновик из баннера на сервере
func (s *Service) EditDraft(ctx context.Context, adID string) (*storage.AdDraft, error) {
	ad, err := s.Get(ctx, adID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	draft := &storage.AdDraft{
		ID:         uuid.NewString(),
		AdID:       ad.ID,
		Link:       ad.Link,
		IsVertical: ad.IsVertical,
		Banner:     ad.Banner,
		BannerType: ad.BannerType,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.drafts.SaveDraft(ctx, draft); err != nil {
		return nil, fmt.Errorf("failed to save draft: %w", err)
	}
	return draft, nil
}

// UpdateDraft применяет к черновику непустые поля формы
func (s *Service) UpdateDraft(ctx context.Context, id string, form Form) (*storage.AdDraft, error) {
	draft, err := s.drafts.GetDraft(ctx, id)
	if err != nil {
		return nil, err
	}

	if form.Link != "" {
		draft.Link = form.Link
	}
	if form.IsVertical != nil {
		draft.IsVertical = form.IsVertical
	}
	if form.BannerPath != "" {
		banner, err := LoadBanner(form.BannerPath)
		if err != nil {
			return nil, err
		}
		draft.Banner = banner.Base64
		draft.BannerType = banner.Type
	}
	draft.UpdatedAt = s.now().UTC()

	if err := s.drafts.SaveDraft(ctx, draft); err != nil {
		return nil, fmt.Errorf("failed to save draft: %w", err)
	}
	return draft, nil
}

// GetDraft возвращает черновик
func (s *Service) GetDraft(ctx context.Context, id string) (*storage.AdDraft, error) {
	return s.drafts.GetDraft(ctx, id)
}

// ListDrafts возвращает черновики в порядке создания
func (s *Service) ListDrafts(ctx context.Context) ([]*storage.AdDraft, error) {
	return s.drafts.ListDrafts(ctx)
}

// DeleteDraft удаляет черновик
func (s *Service) DeleteDraft(ctx context.Context, id string) error {
	return s.drafts.DeleteDraft(ctx, id)
}

// PreviewDraft строит HTML превью черновика
func (s *Service) PreviewDraft(ctx context.Context, id string) (string, error) {
	draft, err := s.drafts.GetDraft(ctx, id)
	if err != nil {
		return "", err
	}
	return preview.Render(previewOf(draft))
}

// WritePreview сохраняет превью черновика в файл
func (s *Service) WritePreview(ctx context.Context, id, path string) error {
	draft, err := s.drafts.GetDraft(ctx, id)
	if err != nil {
		return err
	}
	return preview.WriteFile(path, previewOf(draft))
}

// SubmitDraft отправляет черновик и удаляет его после успешного сохранения
func (s *Service) SubmitDraft(ctx context.Context, id string) error {
	draft, err := s.drafts.GetDraft(ctx, id)
	if err != nil {
		return err
	}

	// Баннер с сервера уже сохранен, отправляем только новый
	var banner *pkgapi.BannerUpload
	if isDataURL(draft.Banner) {
		banner = &pkgapi.BannerUpload{Base64: draft.Banner, Type: draft.BannerType}
	}

	if err := s.submit(ctx, draft.AdID, draft.Link, draft.IsVertical, banner); err != nil {
		return err
	}
	return s.drafts.DeleteDraft(ctx, id)
}

func previewOf(d *storage.AdDraft) preview.Draft {
	return preview.Draft{
		BannerSrc:  d.Banner,
		Link:       d.Link,
		IsVertical: d.IsVertical,
	}
}
