package model

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// TemplateResolver возвращает ItemTemplate по template ID (nil если нет).
// Позволяет Player создавать новые предметы, не завися от reference-пакета.
type TemplateResolver func(itemID int32) *ItemTemplate

// Player — acting entity для item-операций: владеет инвентарём, получает
// уведомления, применяет live-эффекты enchant-слотов.
//
// Live-эффекты здесь — учёт (registry активных слотов + счётчики пересчётов),
// сам пересчёт характеристик выполняет host server.
type Player struct {
	characterID int64
	name        string
	inventory   *Inventory
	resolve     TemplateResolver

	nextObjectID atomic.Uint32

	mu sync.Mutex
	// activeEnchants — (item objectID, slot) → enchant ID активных live-эффектов.
	activeEnchants map[enchantKey]int32
	// weaponUpdates — счётчик запросов пересчёта weapon damage по типу атаки.
	weaponUpdates map[AttackKind]int
	// visibleRefreshes — счётчик запросов обновления видимой экипировки.
	visibleRefreshes int
	// messages — последние уведомления (для диагностики и тестов).
	messages []string
}

type enchantKey struct {
	objectID uint32
	slot     EnchantSlot
}

// NewPlayer создаёт игрока с пустым инвентарём.
func NewPlayer(characterID int64, name string, resolve TemplateResolver) *Player {
	p := &Player{
		characterID:    characterID,
		name:           name,
		inventory:      NewInventory(characterID, DefaultBagCapacity),
		resolve:        resolve,
		activeEnchants: make(map[enchantKey]int32),
		weaponUpdates:  make(map[AttackKind]int),
	}
	p.nextObjectID.Store(1)
	return p
}

// CharacterID возвращает character ID.
func (p *Player) CharacterID() int64 {
	return p.characterID
}

// Name возвращает имя персонажа.
func (p *Player) Name() string {
	return p.name
}

// Inventory возвращает инвентарь игрока.
func (p *Player) Inventory() *Inventory {
	return p.inventory
}

// NewItem создаёт новый Item с уникальным objectID (ещё не размещённый).
func (p *Player) NewItem(itemID int32, count int32) (*Item, error) {
	tmpl := p.resolve(itemID)
	if tmpl == nil {
		return nil, fmt.Errorf("unknown item template %d", itemID)
	}
	return NewItem(p.nextObjectID.Add(1), itemID, p.characterID, count, tmpl)
}

// CanEquipNew проверяет возможность надеть новый предмет itemID в slot.
func (p *Player) CanEquipNew(slot int32, itemID int32, swap bool) StoreResult {
	tmpl := p.resolve(itemID)
	if tmpl == nil {
		return StoreItemNotFound
	}
	return p.inventory.CanEquipNew(slot, tmpl, swap)
}

// EquipNew создаёт новый предмет и надевает его в slot.
func (p *Player) EquipNew(slot int32, itemID int32) (*Item, error) {
	item, err := p.NewItem(itemID, 1)
	if err != nil {
		return nil, err
	}
	if err := p.inventory.Equip(item, slot); err != nil {
		return nil, fmt.Errorf("equipping item %d: %w", itemID, err)
	}
	return item, nil
}

// CanStoreNew проверяет возможность положить новый предмет в bag slot.
// slot == AnySlot — любой свободный.
func (p *Player) CanStoreNew(slot int32, itemID int32) StoreResult {
	if p.resolve(itemID) == nil {
		return StoreItemNotFound
	}
	return p.inventory.CanStoreNew(slot)
}

// StoreNew создаёт новый предмет и кладёт его в bag slot.
func (p *Player) StoreNew(slot int32, itemID int32) (*Item, error) {
	item, err := p.NewItem(itemID, 1)
	if err != nil {
		return nil, err
	}
	if res := p.inventory.Store(item, slot); res != StoreOK {
		return nil, fmt.Errorf("storing item %d: %s", itemID, res)
	}
	return item, nil
}

// DestroyItem уничтожает предмет из инвентаря игрока.
func (p *Player) DestroyItem(item *Item) bool {
	if item == nil {
		return false
	}
	return p.inventory.Destroy(item.ObjectID())
}

// ConsumeItem уменьшает stack предмета itemID на count,
// уничтожая предмет при нуле. Возвращает false если предмета нет.
func (p *Player) ConsumeItem(itemID int32, count int32) bool {
	item := p.inventory.FindByItemID(itemID)
	if item == nil || item.Count() < count {
		return false
	}
	remaining := item.Count() - count
	if remaining == 0 {
		return p.inventory.Destroy(item.ObjectID())
	}
	return item.SetCount(remaining) == nil
}

// ApplyEnchantEffect активирует или снимает live-эффект enchant-слота предмета.
func (p *Player) ApplyEnchantEffect(item *Item, slot EnchantSlot, active bool) {
	if item == nil {
		return
	}
	key := enchantKey{objectID: item.ObjectID(), slot: slot}

	p.mu.Lock()
	defer p.mu.Unlock()
	if active {
		if id := item.EnchantID(slot); id != 0 {
			p.activeEnchants[key] = id
		}
		return
	}
	delete(p.activeEnchants, key)
}

// ActiveEnchant возвращает enchant ID активного live-эффекта слота (0 = нет).
func (p *Player) ActiveEnchant(item *Item, slot EnchantSlot) int32 {
	if item == nil {
		return 0
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.activeEnchants[enchantKey{objectID: item.ObjectID(), slot: slot}]
}

// UpdateWeaponDamage запрашивает пересчёт weapon damage для типа атаки.
func (p *Player) UpdateWeaponDamage(kind AttackKind) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.weaponUpdates[kind]++
}

// WeaponUpdateCount возвращает число запрошенных пересчётов для типа атаки.
func (p *Player) WeaponUpdateCount(kind AttackKind) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.weaponUpdates[kind]
}

// RefreshVisibleSlot запрашивает обновление видимой экипировки.
func (p *Player) RefreshVisibleSlot(item *Item) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.visibleRefreshes++
}

// VisibleRefreshCount возвращает число запрошенных visual-обновлений.
func (p *Player) VisibleRefreshCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.visibleRefreshes
}

// Notify отправляет игроку информационное сообщение.
func (p *Player) Notify(format string, args ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, fmt.Sprintf(format, args...))
}

// LastMessage возвращает последнее уведомление ("" если не было).
func (p *Player) LastMessage() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.messages) == 0 {
		return ""
	}
	return p.messages[len(p.messages)-1]
}
