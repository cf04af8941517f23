package storage

import (
	"context"
	"time"
)

// AdDraft локальный черновик баннера.
// Черновик можно просмотреть в превью до отправки на сервер.
type AdDraft struct {
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	IsVertical *bool     `json:"is_vertical"`
	ID         string    `json:"id"`
	AdID       string    `json:"ad_id,omitempty"` // ID баннера на сервере при редактировании
	Link       string    `json:"link"`
	Banner     string    `json:"banner,omitempty"` // data URL или URL изображения
	BannerType string    `json:"banner_type,omitempty"`
}

//go:generate moq -out drafts_mock.go . DraftStorage

// DraftStorage defines interface for storing ad drafts on client
type DraftStorage interface {
	// SaveDraft stores or updates a draft
	SaveDraft(ctx context.Context, draft *AdDraft) error

	// GetDraft retrieves a draft by ID
	// Returns ErrDraftNotFound if draft doesn't exist
	GetDraft(ctx context.Context, id string) (*AdDraft, error)

	// ListDrafts returns all drafts ordered by creation time
	ListDrafts(ctx context.Context) ([]*AdDraft, error)

	// DeleteDraft removes a draft
	// Returns ErrDraftNotFound if draft doesn't exist
	DeleteDraft(ctx context.Context, id string) error
}
