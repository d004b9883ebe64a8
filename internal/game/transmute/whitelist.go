package transmute

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// WhitelistSourceRow — строка whitelist от внешнего источника (БД),
// вместе с флагами применимости.
type WhitelistSourceRow struct {
	WhitelistRow
	Weapon bool // can_apply_to_weapon
	Armor  bool // can_apply_to_armor
}

// WhitelistSource — внешний источник whitelist строк (обычно таблица в БД,
// редактируемая оператором без перезапуска сервера).
type WhitelistSource interface {
	// LoadRows возвращает все включённые строки whitelist.
	LoadRows(ctx context.Context) ([]WhitelistSourceRow, error)
}

// Whitelist — process-wide кэш whitelist строк, разделённый на weapon и
// armor пулы. Загрузка из источника выполняется не более одного раза за
// lifetime процесса (attempted-load-once), пока не вызван явный Reload.
// Пустой пул — валидное состояние: рулетка просто не находит кандидатов.
type Whitelist struct {
	source WhitelistSource
	log    *slog.Logger

	mu        sync.RWMutex
	attempted bool
	loaded    bool
	weapon    []WhitelistRow
	armor     []WhitelistRow
}

// NewWhitelist создаёт кэш над источником. log может быть nil.
func NewWhitelist(source WhitelistSource, log *slog.Logger) *Whitelist {
	if log == nil {
		log = slog.Default()
	}
	return &Whitelist{source: source, log: log}
}

// EnsureLoaded выполняет первую загрузку, если она ещё не была попытана.
// Ошибка источника логируется, кэш остаётся пустым — повторной попытки
// не будет до явного Reload.
func (w *Whitelist) EnsureLoaded(ctx context.Context) {
	w.mu.RLock()
	attempted := w.attempted
	w.mu.RUnlock()
	if attempted {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.attempted {
		return
	}
	w.attempted = true
	if err := w.reloadLocked(ctx); err != nil {
		w.log.Error("transmute whitelist load failed", "err", err)
	}
}

// Reload принудительно перечитывает whitelist из источника.
// При ошибке прежнее содержимое кэша сохраняется.
func (w *Whitelist) Reload(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.attempted = true
	return w.reloadLocked(ctx)
}

func (w *Whitelist) reloadLocked(ctx context.Context) error {
	if w.source == nil {
		return fmt.Errorf("no whitelist source configured")
	}

	rows, err := w.source.LoadRows(ctx)
	if err != nil {
		return fmt.Errorf("loading whitelist rows: %w", err)
	}

	weapon := make([]WhitelistRow, 0, len(rows))
	armor := make([]WhitelistRow, 0, len(rows))
	for _, row := range rows {
		if row.Weapon {
			weapon = append(weapon, row.WhitelistRow)
		}
		if row.Armor {
			armor = append(armor, row.WhitelistRow)
		}
	}

	w.weapon = weapon
	w.armor = armor
	w.loaded = true
	w.log.Info("transmute whitelist loaded", "weapon_rows", len(weapon), "armor_rows", len(armor))
	return nil
}

// Loaded возвращает true после успешной загрузки.
func (w *Whitelist) Loaded() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.loaded
}

// Pool возвращает пул строк для типа цели. Срез read-only:
// вызывающая сторона не должна его менять.
func (w *Whitelist) Pool(isWeapon bool) []WhitelistRow {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if isWeapon {
		return w.weapon
	}
	return w.armor
}
