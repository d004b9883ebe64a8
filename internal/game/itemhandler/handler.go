// Package itemhandler маршрутизирует UseItem к обработчику конкретного
// предмета. Предметы без зарегистрированного обработчика идут по default
// use-пути вызывающей стороны.
package itemhandler

import (
	"context"
	"sync"

	"github.com/udisondev/la2forge/internal/model"
)

// Handler обрабатывает использование предмета на цели (target может быть nil).
// true — использование перехвачено, default поведение не выполняется.
type Handler interface {
	UseItem(ctx context.Context, player *model.Player, item, target *model.Item) bool
}

// HandlerFunc адаптирует функцию к Handler.
type HandlerFunc func(ctx context.Context, player *model.Player, item, target *model.Item) bool

func (f HandlerFunc) UseItem(ctx context.Context, player *model.Player, item, target *model.Item) bool {
	return f(ctx, player, item, target)
}

// Registry — template ID → Handler. Регистрация выполняется при старте,
// после чего Use безопасен для конкурентных вызовов.
type Registry struct {
	mu       sync.RWMutex
	handlers map[int32]Handler
}

// NewRegistry создаёт пустой registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[int32]Handler)}
}

// Register привязывает обработчик к template ID. Повторная регистрация
// заменяет предыдущий обработчик.
func (r *Registry) Register(itemID int32, h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if h == nil {
		delete(r.handlers, itemID)
		return
	}
	r.handlers[itemID] = h
}

// Use диспетчеризует использование item. false — обработчика нет либо
// item nil, вызывающая сторона выполняет default use-путь.
func (r *Registry) Use(ctx context.Context, player *model.Player, item, target *model.Item) bool {
	if item == nil {
		return false
	}

	r.mu.RLock()
	h := r.handlers[item.ItemID()]
	r.mu.RUnlock()
	if h == nil {
		return false
	}
	return h.UseItem(ctx, player, item, target)
}
