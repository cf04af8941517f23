package reconcile

import "fmt"

// Pending изменение элемента, примененное до ответа сервера.
// Завершается ровно одним вызовом Commit или Revert, повторные вызовы игнорируются.
type Pending[T Identifiable] struct {
	list  *List[T]
	prior T
	id    string
	done  bool
}

// Begin применяет patch к элементу сразу и запоминает прежнее значение
func (l *List[T]) Begin(id string, patch func(*T)) (*Pending[T], error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.indexOf(id)
	if i < 0 {
		return nil, fmt.Errorf("begin update of %q: %w", id, ErrNotFound)
	}

	p := &Pending[T]{list: l, id: id, prior: l.items[i]}
	patch(&l.items[i])
	return p, nil
}

// Commit оставляет примененное значение
func (p *Pending[T]) Commit() {
	p.done = true
}

// Revert возвращает прежнее значение только этого элемента.
// Если элемент уже удален из списка, ничего не делает.
func (p *Pending[T]) Revert() {
	if p.done {
		return
	}
	p.done = true

	p.list.mu.Lock()
	defer p.list.mu.Unlock()

	if i := p.list.indexOf(p.id); i >= 0 {
		p.list.items[i] = p.prior
	}
}
