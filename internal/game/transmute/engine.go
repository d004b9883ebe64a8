// Package transmute implements the Chaos Stone item-transmutation system.
//
// Activation flow:
//  1. Player uses a Chaos Stone (catalyst) → client targets a piece of gear
//  2. Engine validates the target (equippable gear, own inventory, no random suffix)
//  3. Upgrade roll → same-class higher-level replacement, or fall through
//  4. Downgrade roll → same-type lower-level replacement, or fall through
//  5. Empower: 1..3 whitelisted bonus enchants, clear-then-apply on bonus slots
//
// Ровно один исход на активацию; катализатор расходуется только при успехе.
package transmute

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/udisondev/la2forge/internal/config"
	"github.com/udisondev/la2forge/internal/data"
	"github.com/udisondev/la2forge/internal/model"
)

// Actor — возможности acting entity, нужные оркестратору: инвентарные
// примитивы с typed result codes, live-эффекты и обратная связь.
// Реализуется model.Player; в тестах — scripted double.
type Actor interface {
	EffectSink

	CharacterID() int64
	Notify(format string, args ...any)

	CanEquipNew(slot int32, itemID int32, swap bool) model.StoreResult
	EquipNew(slot int32, itemID int32) (*model.Item, error)
	CanStoreNew(slot int32, itemID int32) model.StoreResult
	StoreNew(slot int32, itemID int32) (*model.Item, error)
	DestroyItem(item *model.Item) bool
	ConsumeItem(itemID int32, count int32) bool
}

// Engine — оркестратор transmute активаций.
type Engine struct {
	cfg       config.Transmute
	catalog   *data.Catalog
	whitelist *Whitelist
	roller    Roller
	log       *slog.Logger
}

// NewEngine собирает движок. roller обязателен (детерминируется в тестах),
// log может быть nil.
func NewEngine(cfg config.Transmute, catalog *data.Catalog, whitelist *Whitelist, roller Roller, log *slog.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid transmute config: %w", err)
	}
	if catalog == nil {
		return nil, fmt.Errorf("catalog is nil")
	}
	if whitelist == nil {
		return nil, fmt.Errorf("whitelist is nil")
	}
	if roller == nil {
		return nil, fmt.Errorf("roller is nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &Engine{cfg: cfg, catalog: catalog, whitelist: whitelist, roller: roller, log: log}, nil
}

// stageResult — исход одной стадии pipeline.
type stageResult int32

const (
	// stageDefer — стадия не дала исход, управление следующей стадии.
	stageDefer stageResult = iota
	// stageDone — исход реализован, катализатор потреблён.
	stageDone
	// stageRejected — активация завершена отказом, катализатор цел.
	stageRejected
)

// activation — контекст одной активации.
type activation struct {
	ctx      context.Context
	actor    Actor
	catalyst *model.Item
	target   *model.Item
	tmpl     *model.ItemTemplate
}

// Activate обрабатывает использование катализатора на target.
//
// Возвращает true как только активация принята к обработке: вызывающая
// сторона не должна выполнять default item-use поведение. Отказ по
// precondition тоже "handled" — игрок получает уведомление, катализатор
// не расходуется.
func (e *Engine) Activate(ctx context.Context, actor Actor, catalyst, target *model.Item) bool {
	if actor == nil || catalyst == nil {
		return false
	}

	e.log.Debug("transmute activation",
		"character", actor.CharacterID(),
		"catalyst", catalyst.ItemID(),
		"target", targetID(target))

	if !e.validateTarget(actor, target) {
		activationsTotal.WithLabelValues(outcomeRejected).Inc()
		return true
	}

	act := &activation{
		ctx:      ctx,
		actor:    actor,
		catalyst: catalyst,
		target:   target,
		tmpl:     target.Template(),
	}

	// Упорядоченный pipeline: первая стадия, реализовавшая исход, завершает
	// активацию; stageDefer передаёт управление дальше.
	stages := []func(*activation) stageResult{
		e.upgradeStage,
		e.downgradeStage,
		e.empowerStage,
	}
	for _, stage := range stages {
		switch stage(act) {
		case stageDone:
			return true
		case stageRejected:
			return true
		}
	}

	// Недостижимо: empower всегда завершает (done или rejected).
	return true
}

func targetID(target *model.Item) int32 {
	if target == nil {
		return 0
	}
	return target.ItemID()
}

// validateTarget проверяет preconditions. false — отказ (уже с уведомлением).
func (e *Engine) validateTarget(actor Actor, target *model.Item) bool {
	if target == nil || target.Template() == nil || !target.Template().IsEquippableGear() {
		e.log.Info("transmute rejected target",
			"character", actor.CharacterID(),
			"target", targetID(target),
			"reason", "not equippable gear")
		actor.Notify("The stone finds no valid target.")
		return false
	}

	if target.OwnerID() != actor.CharacterID() {
		e.log.Info("transmute rejected target",
			"character", actor.CharacterID(),
			"target", target.ItemID(),
			"reason", "foreign owner",
			"owner", target.OwnerID())
		actor.Notify("The stone finds no valid target.")
		return false
	}

	// Предметы с random suffix используют bonus-регион для другой цели.
	if target.RandomPropertyID() != 0 {
		e.log.Info("transmute rejected target",
			"character", actor.CharacterID(),
			"target", target.ItemID(),
			"reason", "random property item")
		actor.Notify("The stone cannot empower items with random properties.")
		return false
	}

	return true
}

// upgradeStage — шанс превратить target в предмет того же класса с item level
// в [текущий, текущий+delta]. Нет кандидатов или провал замены — defer.
func (e *Engine) upgradeStage(act *activation) stageResult {
	if int32(roll1toN(e.roller, 100)) > e.cfg.UpgradePercent {
		return stageDefer
	}

	candidates := e.catalog.UpgradeCandidates(act.tmpl, e.cfg.UpgradeMaxLevelDelta)
	e.log.Debug("transmute upgrade roll",
		"character", act.actor.CharacterID(),
		"target", act.tmpl.ItemID,
		"item_level", act.tmpl.ItemLevel,
		"candidates", len(candidates))
	if len(candidates) == 0 {
		return stageDefer
	}

	newItemID := candidates[e.roller.IntN(len(candidates))]
	ok, res := replaceInPlace(act.actor, act.target, newItemID)
	if !ok {
		e.log.Info("transmute upgrade replace failed",
			"character", act.actor.CharacterID(),
			"new_item", newItemID,
			"reason", res.String())
		replacementFailures.WithLabelValues(res.String()).Inc()
		return stageDefer
	}

	act.actor.ConsumeItem(act.catalyst.ItemID(), 1)
	act.actor.Notify("Your %s transforms into %s!", act.tmpl.Name, e.templateName(newItemID))
	activationsTotal.WithLabelValues(outcomeUpgrade).Inc()
	return stageDone
}

// downgradeStage — шанс превратить target в предмет того же точного типа
// со строго меньшим item level.
func (e *Engine) downgradeStage(act *activation) stageResult {
	if int32(roll1toN(e.roller, 100)) > e.cfg.DowngradePercent {
		return stageDefer
	}

	candidates := e.catalog.DowngradeCandidates(act.tmpl)
	e.log.Debug("transmute downgrade roll",
		"character", act.actor.CharacterID(),
		"target", act.tmpl.ItemID,
		"item_level", act.tmpl.ItemLevel,
		"candidates", len(candidates))
	if len(candidates) == 0 {
		return stageDefer
	}

	newItemID := candidates[e.roller.IntN(len(candidates))]
	ok, res := replaceInPlace(act.actor, act.target, newItemID)
	if !ok {
		e.log.Info("transmute downgrade replace failed",
			"character", act.actor.CharacterID(),
			"new_item", newItemID,
			"reason", res.String())
		replacementFailures.WithLabelValues(res.String()).Inc()
		return stageDefer
	}

	act.actor.ConsumeItem(act.catalyst.ItemID(), 1)
	act.actor.Notify("Your %s crumbles into %s...", act.tmpl.Name, e.templateName(newItemID))
	activationsTotal.WithLabelValues(outcomeDowngrade).Inc()
	return stageDone
}

// empowerStage — финальная стадия: 1..MaxModifiers бонусов из whitelist.
// Пустой пул или ноль eligible групп — отказ без расхода катализатора.
func (e *Engine) empowerStage(act *activation) stageResult {
	e.whitelist.EnsureLoaded(act.ctx)

	isWeapon := act.tmpl.IsWeapon()
	pool := e.whitelist.Pool(isWeapon)
	if len(pool) == 0 {
		e.log.Warn("transmute whitelist pool empty",
			"weapon", isWeapon,
			"loaded", e.whitelist.Loaded())
		act.actor.Notify("The stone has no power over this item.")
		activationsTotal.WithLabelValues(outcomeExhausted).Inc()
		return stageRejected
	}

	itemLevel := act.tmpl.ItemLevel
	requested := roll1toN(e.roller, e.cfg.MaxModifiers)
	if len(EligibleGroupWeights(pool, itemLevel, nil)) == 0 {
		requested = 0
	}
	if requested == 0 {
		e.log.Warn("transmute no eligible enchant groups",
			"target", act.tmpl.ItemID,
			"item_level", itemLevel,
			"weapon", isWeapon)
		act.actor.Notify("The stone has no power over this item.")
		activationsTotal.WithLabelValues(outcomeExhausted).Inc()
		return stageRejected
	}

	// Без повторов: выбранная группа исключается из последующих бросков,
	// два бонуса одной группы на одном предмете невозможны.
	exclude := make(map[string]struct{}, requested)
	rolled := make([]int32, 0, requested)
	for len(rolled) < requested {
		groupKey, ok := PickWeightedGroup(pool, itemLevel, exclude, e.roller)
		if !ok {
			break
		}
		enchantID, ok := PickRankInGroup(pool, itemLevel, groupKey, e.roller)
		if !ok {
			break
		}
		rolled = append(rolled, enchantID)
		exclude[groupKey] = struct{}{}
	}

	if len(rolled) == 0 {
		e.log.Warn("transmute rolled no enchants",
			"target", act.tmpl.ItemID,
			"item_level", itemLevel,
			"weapon", isWeapon)
		act.actor.Notify("The stone has no power over this item.")
		activationsTotal.WithLabelValues(outcomeExhausted).Inc()
		return stageRejected
	}

	// Clear → Apply: единственная последовательность перезаписи bonus-региона.
	ClearBonuses(act.actor, act.target, e.cfg.MarkerEnchantID)
	ApplyBonuses(act.actor, act.target, e.cfg.MarkerEnchantID, rolled)

	act.actor.ConsumeItem(act.catalyst.ItemID(), 1)
	act.actor.Notify("Your %s is empowered with %d bonus(es)!", act.tmpl.Name, len(rolled))
	e.log.Info("transmute empowered item",
		"character", act.actor.CharacterID(),
		"target", act.tmpl.ItemID,
		"modifiers", len(rolled))
	activationsTotal.WithLabelValues(outcomeEmpower).Inc()
	modifiersRolled.Observe(float64(len(rolled)))
	return stageDone
}

// templateName возвращает имя шаблона для уведомлений.
func (e *Engine) templateName(itemID int32) string {
	if tmpl := e.catalog.Lookup(itemID); tmpl != nil {
		return tmpl.Name
	}
	return "a different item"
}
