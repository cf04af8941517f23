package storage

import (
	"context"
	"time"
)

// Collection имя закешированной коллекции
type Collection string

const (
	CollectionAds       Collection = "ads"
	CollectionCompanies Collection = "companies"
	CollectionPlans     Collection = "plans"
)

//go:generate moq -out cache_mock.go . CacheStorage

// CacheStorage хранит последнюю полученную с сервера копию коллекций.
// Копия заменяется целиком при каждом запросе списка и патчится при изменениях.
type CacheStorage interface {
	// SaveCollection сохраняет коллекцию целиком
	SaveCollection(ctx context.Context, name Collection, items any) error

	// LoadCollection загружает коллекцию в out и возвращает время сохранения
	// Returns ErrCacheMiss if the collection was never saved
	LoadCollection(ctx context.Context, name Collection, out any) (time.Time, error)

	// ClearCache удаляет все коллекции (при logout)
	ClearCache(ctx context.Context) error
}
