package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/adpanel/internal/client/storage"
)

// cacheEntry запись коллекции в bucket cache
type cacheEntry struct {
	SavedAt time.Time       `json:"saved_at"`
	Items   json.RawMessage `json:"items"`
}

// SaveCollection сохраняет коллекцию целиком
func (s *Storage) SaveCollection(ctx context.Context, name storage.Collection, items any) error {
	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", name, err)
	}

	data, err := json.Marshal(cacheEntry{SavedAt: time.Now().UTC(), Items: itemsJSON})
	if err != nil {
		return fmt.Errorf("failed to marshal cache entry: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCache)
		if bucket == nil {
			return fmt.Errorf("cache bucket not found")
		}
		if err := bucket.Put([]byte(name), data); err != nil {
			return fmt.Errorf("failed to save %s: %w", name, err)
		}
		return nil
	})
}

// LoadCollection загружает коллекцию и возвращает время сохранения
func (s *Storage) LoadCollection(ctx context.Context, name storage.Collection, out any) (time.Time, error) {
	var entry cacheEntry

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCache)
		if bucket == nil {
			return fmt.Errorf("cache bucket not found")
		}

		data := bucket.Get([]byte(name))
		if data == nil {
			return storage.ErrCacheMiss
		}

		// data валиден только внутри транзакции, Unmarshal копирует значения
		if err := json.Unmarshal(data, &entry); err != nil {
			return fmt.Errorf("failed to unmarshal cache entry: %w", err)
		}
		return nil
	})
	if err != nil {
		return time.Time{}, err
	}

	if err := json.Unmarshal(entry.Items, out); err != nil {
		return time.Time{}, fmt.Errorf("failed to unmarshal %s: %w", name, err)
	}

	return entry.SavedAt, nil
}

// ClearCache удаляет все закешированные коллекции
func (s *Storage) ClearCache(ctx context.Context) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket(bucketCache); err != nil && err != bbolt.ErrBucketNotFound {
			return fmt.Errorf("failed to delete cache bucket: %w", err)
		}
		if _, err := tx.CreateBucket(bucketCache); err != nil {
			return fmt.Errorf("failed to create cache bucket: %w", err)
		}
		return nil
	})
}
