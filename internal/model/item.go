package model

import (
	"fmt"
	"sync"
)

// Item — конкретный экземпляр предмета (weapon, armor, consumable, etc.).
// Может быть в инвентаре, на персонаже (equipped) или уничтожен (void).
type Item struct {
	objectID uint32 // Unique ID в world
	itemID   int32  // Template ID (ссылка на ItemTemplate)
	ownerID  int64  // Character ID владельца
	location ItemLocation
	slot     int32 // Paperdoll slot или inventory slot (-1 если не размещён)
	count    int32 // Stack count (1 для weapons/armor)

	// randomPropertyID — ненулевое значение означает, что enchant-слоты предмета
	// заняты random-suffix системой. Такие предметы transmute не трогает.
	randomPropertyID int32

	// enchants — permanent слот + четыре bonus слота (marker + до 3 модификаторов).
	enchants [EnchantSlotCount]int32

	changed bool // dirty flag для persistence

	template *ItemTemplate

	mu sync.RWMutex
}

// ItemLocation определяет где хранится предмет.
type ItemLocation int32

const (
	ItemLocationInventory ItemLocation = iota
	ItemLocationPaperdoll               // Equipped
	ItemLocationVoid                    // Deleted/destroyed
)

// String returns human-readable item location name.
func (il ItemLocation) String() string {
	switch il {
	case ItemLocationInventory:
		return "Inventory"
	case ItemLocationPaperdoll:
		return "Paperdoll"
	case ItemLocationVoid:
		return "Void"
	default:
		return "Unknown"
	}
}

// NewItem создаёт новый предмет с валидацией.
func NewItem(objectID uint32, itemID int32, ownerID int64, count int32, template *ItemTemplate) (*Item, error) {
	if template == nil {
		return nil, fmt.Errorf("template cannot be nil")
	}
	if count <= 0 {
		return nil, fmt.Errorf("count must be > 0, got %d", count)
	}

	return &Item{
		objectID: objectID,
		itemID:   itemID,
		ownerID:  ownerID,
		location: ItemLocationInventory,
		slot:     -1,
		count:    count,
		template: template,
	}, nil
}

// ObjectID возвращает unique ID в world.
func (i *Item) ObjectID() uint32 {
	return i.objectID
}

// ItemID возвращает template ID.
func (i *Item) ItemID() int32 {
	return i.itemID
}

// OwnerID возвращает character ID владельца.
func (i *Item) OwnerID() int64 {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.ownerID
}

// Location возвращает текущее местоположение предмета.
func (i *Item) Location() ItemLocation {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.location
}

// Slot возвращает slot внутри location (-1 если не размещён).
func (i *Item) Slot() int32 {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.slot
}

// SetLocation устанавливает местоположение и slot предмета.
func (i *Item) SetLocation(location ItemLocation, slot int32) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.location = location
	i.slot = slot
}

// Count возвращает stack count.
func (i *Item) Count() int32 {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.count
}

// SetCount устанавливает stack count с валидацией.
func (i *Item) SetCount(count int32) error {
	if count < 0 {
		return fmt.Errorf("count cannot be negative, got %d", count)
	}

	i.mu.Lock()
	defer i.mu.Unlock()
	i.count = count
	return nil
}

// RandomPropertyID возвращает random-suffix marker (0 = нет).
func (i *Item) RandomPropertyID() int32 {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.randomPropertyID
}

// SetRandomPropertyID устанавливает random-suffix marker.
func (i *Item) SetRandomPropertyID(id int32) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.randomPropertyID = id
}

// EnchantID возвращает enchant ID в указанном слоте (0 = пусто).
func (i *Item) EnchantID(slot EnchantSlot) int32 {
	if slot < 0 || slot >= EnchantSlotCount {
		return 0
	}
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.enchants[slot]
}

// SetEnchant записывает enchant ID в указанный слот.
func (i *Item) SetEnchant(slot EnchantSlot, enchantID int32) {
	if slot < 0 || slot >= EnchantSlotCount {
		return
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	i.enchants[slot] = enchantID
}

// ClearEnchant очищает указанный слот.
func (i *Item) ClearEnchant(slot EnchantSlot) {
	i.SetEnchant(slot, 0)
}

// MarkChanged помечает предмет как изменённый (требует persist).
func (i *Item) MarkChanged() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.changed = true
}

// IsChanged возвращает dirty flag.
func (i *Item) IsChanged() bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.changed
}

// Template возвращает ItemTemplate (immutable).
func (i *Item) Template() *ItemTemplate {
	return i.template
}

// IsEquipped возвращает true если предмет надет (paperdoll).
func (i *Item) IsEquipped() bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.slot >= 0 && i.location == ItemLocationPaperdoll
}

// IsWeapon возвращает true если это оружие.
func (i *Item) IsWeapon() bool {
	return i.template.IsWeapon()
}

// IsArmor возвращает true если это броня.
func (i *Item) IsArmor() bool {
	return i.template.IsArmor()
}

// Name возвращает название предмета из template.
func (i *Item) Name() string {
	return i.template.Name
}
