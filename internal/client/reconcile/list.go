// Package reconcile хранит полученные с сервера коллекции и применяет
// к ним локальные изменения без повторного запроса списка.
package reconcile

import (
	"errors"
	"sync"
)

// ErrNotFound элемент с указанным ID отсутствует в списке
var ErrNotFound = errors.New("item not found")

// Identifiable элемент коллекции с идентификатором сервера
type Identifiable interface {
	GetID() string
}

// List упорядоченная коллекция элементов.
// Изменение одного элемента не меняет порядок остальных.
type List[T Identifiable] struct {
	items []T
	mu    sync.RWMutex
}

// NewList создает список из полученных элементов
func NewList[T Identifiable](items []T) *List[T] {
	l := &List[T]{}
	l.Replace(items)
	return l
}

// Replace заменяет содержимое списка целиком
func (l *List[T]) Replace(items []T) {
	cp := make([]T, len(items))
	copy(cp, items)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = cp
}

// Items возвращает копию элементов
func (l *List[T]) Items() []T {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// Len возвращает количество элементов
func (l *List[T]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.items)
}

// Get возвращает элемент по ID
func (l *List[T]) Get(id string) (T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if i := l.indexOf(id); i >= 0 {
		return l.items[i], true
	}
	var zero T
	return zero, false
}

// RemoveByID удаляет элемент и возвращает его
func (l *List[T]) RemoveByID(id string) (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.indexOf(id)
	if i < 0 {
		var zero T
		return zero, false
	}
	removed := l.items[i]
	l.items = append(l.items[:i:i], l.items[i+1:]...)
	return removed, true
}

// PatchByID изменяет элемент на месте.
// Возвращает false, если элемента нет.
func (l *List[T]) PatchByID(id string, patch func(*T)) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.indexOf(id)
	if i < 0 {
		return false
	}
	patch(&l.items[i])
	return true
}

// PatchAll изменяет все элементы
func (l *List[T]) PatchAll(patch func(*T)) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.items {
		patch(&l.items[i])
	}
}

// indexOf вызывается под блокировкой
func (l *List[T]) indexOf(id string) int {
	for i := range l.items {
		if l.items[i].GetID() == id {
			return i
		}
	}
	return -1
}
