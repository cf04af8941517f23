package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"go.etcd.io/bbolt"

	"github.com/iudanet/adpanel/internal/client/storage"
)

// SaveDraft stores or updates a draft
func (s *Storage) SaveDraft(ctx context.Context, draft *storage.AdDraft) error {
	if draft == nil || draft.ID == "" {
		return fmt.Errorf("draft id is empty")
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDrafts)
		if bucket == nil {
			return fmt.Errorf("drafts bucket not found")
		}

		// Сериализуем черновик в JSON
		data, err := json.Marshal(draft)
		if err != nil {
			return fmt.Errorf("failed to marshal draft: %w", err)
		}

		// Сохраняем по ID
		if err := bucket.Put([]byte(draft.ID), data); err != nil {
			return fmt.Errorf("failed to save draft: %w", err)
		}

		return nil
	})
}

// GetDraft retrieves a draft by ID
func (s *Storage) GetDraft(ctx context.Context, id string) (*storage.AdDraft, error) {
	var draft *storage.AdDraft

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDrafts)
		if bucket == nil {
			return fmt.Errorf("drafts bucket not found")
		}

		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrDraftNotFound
		}

		draft = &storage.AdDraft{}
		if err := json.Unmarshal(data, draft); err != nil {
			return fmt.Errorf("failed to unmarshal draft: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return draft, nil
}

// ListDrafts returns all drafts ordered by creation time
func (s *Storage) ListDrafts(ctx context.Context) ([]*storage.AdDraft, error) {
	var drafts []*storage.AdDraft

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDrafts)
		if bucket == nil {
			return fmt.Errorf("drafts bucket not found")
		}

		// Итерируемся по всем черновикам
		return bucket.ForEach(func(k, v []byte) error {
			var draft storage.AdDraft
			if err := json.Unmarshal(v, &draft); err != nil {
				return fmt.Errorf("failed to unmarshal draft %s: %w", k, err)
			}
			drafts = append(drafts, &draft)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(drafts, func(i, j int) bool {
		return drafts[i].CreatedAt.Before(drafts[j].CreatedAt)
	})

	return drafts, nil
}

// DeleteDraft removes a draft
func (s *Storage) DeleteDraft(ctx context.Context, id string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketDrafts)
		if bucket == nil {
			return fmt.Errorf("drafts bucket not found")
		}

		if bucket.Get([]byte(id)) == nil {
			return storage.ErrDraftNotFound
		}

		if err := bucket.Delete([]byte(id)); err != nil {
			return fmt.Errorf("failed to delete draft: %w", err)
		}

		return nil
	})
}
