package model

import (
	"fmt"
	"sync"
)

// Inventory — хранилище предметов персонажа (bag slots + paperdoll).
//
// Bag — плоский массив слотов фиксированной ёмкости; paperdoll — 17 слотов
// экипировки. Каждый предмет находится либо в bag слоте, либо в paperdoll.
type Inventory struct {
	ownerID int64

	items     map[uint32]*Item // objectID → Item (все items)
	bag       []*Item          // inventory slot → Item (nil = пусто)
	paperdoll [PaperdollTotalSlots]*Item

	mu sync.RWMutex
}

// Paperdoll slots.
const (
	PaperdollUnder      = 0  // Underwear
	PaperdollLEar       = 1  // Left Ear
	PaperdollREar       = 2  // Right Ear
	PaperdollNeck       = 3  // Necklace
	PaperdollLFinger    = 4  // Left Ring
	PaperdollRFinger    = 5  // Right Ring
	PaperdollHead       = 6  // Helmet
	PaperdollRHand      = 7  // Right Hand (weapon)
	PaperdollLHand      = 8  // Left Hand (shield/dual weapon)
	PaperdollGloves     = 9  // Gloves
	PaperdollChest      = 10 // Chest Armor
	PaperdollLegs       = 11 // Legs Armor
	PaperdollFeet       = 12 // Boots
	PaperdollCloak      = 13 // Cloak
	PaperdollFace       = 14 // Face accessory
	PaperdollHair       = 15 // Hair accessory
	PaperdollHair2      = 16 // Hair accessory 2
	PaperdollTotalSlots = 17
)

// DefaultBagCapacity — стандартная ёмкость инвентаря персонажа.
const DefaultBagCapacity = 80

// AnySlot — запрос "любой свободный слот" в Can*/Store* операциях.
const AnySlot int32 = -1

// StoreResult — typed result code для inventory операций.
// Rejection — это значение, не error: вызывающая сторона решает, что делать.
type StoreResult int32

const (
	StoreOK StoreResult = iota
	StoreFull
	StoreSlotOccupied
	StoreInvalidSlot
	StoreCannotEquip
	StoreItemNotFound
)

// String returns human-readable store result name.
func (r StoreResult) String() string {
	switch r {
	case StoreOK:
		return "OK"
	case StoreFull:
		return "InventoryFull"
	case StoreSlotOccupied:
		return "SlotOccupied"
	case StoreInvalidSlot:
		return "InvalidSlot"
	case StoreCannotEquip:
		return "CannotEquip"
	case StoreItemNotFound:
		return "ItemNotFound"
	default:
		return "Unknown"
	}
}

// NewInventory создаёт новый инвентарь для персонажа.
func NewInventory(ownerID int64, capacity int) *Inventory {
	if capacity <= 0 {
		capacity = DefaultBagCapacity
	}
	return &Inventory{
		ownerID: ownerID,
		items:   make(map[uint32]*Item),
		bag:     make([]*Item, capacity),
	}
}

// OwnerID возвращает character ID владельца.
func (inv *Inventory) OwnerID() int64 {
	return inv.ownerID
}

// Capacity возвращает ёмкость bag.
func (inv *Inventory) Capacity() int {
	return len(inv.bag)
}

// Count возвращает общее количество предметов (bag + paperdoll).
func (inv *Inventory) Count() int {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return len(inv.items)
}

// GetItem возвращает предмет по objectID (nil если нет).
func (inv *Inventory) GetItem(objectID uint32) *Item {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return inv.items[objectID]
}

// GetBagItem возвращает предмет в bag слоте (nil если слот пуст или невалиден).
func (inv *Inventory) GetBagItem(slot int32) *Item {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	if slot < 0 || int(slot) >= len(inv.bag) {
		return nil
	}
	return inv.bag[slot]
}

// GetPaperdollItem возвращает equipped item для указанного slot (может быть nil).
func (inv *Inventory) GetPaperdollItem(slot int32) *Item {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	if slot < 0 || slot >= PaperdollTotalSlots {
		return nil
	}
	return inv.paperdoll[slot]
}

// FindByItemID возвращает первый предмет с указанным template ID (nil если нет).
func (inv *Inventory) FindByItemID(itemID int32) *Item {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	for _, it := range inv.bag {
		if it != nil && it.ItemID() == itemID {
			return it
		}
	}
	return nil
}

// CanStoreNew проверяет, можно ли разместить новый предмет в bag.
//
// slot == AnySlot — достаточно любого свободного слота.
// Конкретный slot — он должен существовать и быть пустым.
func (inv *Inventory) CanStoreNew(slot int32) StoreResult {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return inv.canStoreLocked(slot)
}

func (inv *Inventory) canStoreLocked(slot int32) StoreResult {
	if slot == AnySlot {
		for _, it := range inv.bag {
			if it == nil {
				return StoreOK
			}
		}
		return StoreFull
	}
	if slot < 0 || int(slot) >= len(inv.bag) {
		return StoreInvalidSlot
	}
	if inv.bag[slot] != nil {
		return StoreSlotOccupied
	}
	return StoreOK
}

// Store размещает предмет в bag.
//
// slot == AnySlot — первый свободный слот. Возвращает StoreResult;
// предмет добавляется только при StoreOK.
func (inv *Inventory) Store(item *Item, slot int32) StoreResult {
	if item == nil {
		return StoreItemNotFound
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	if res := inv.canStoreLocked(slot); res != StoreOK {
		return res
	}

	if slot == AnySlot {
		for s, it := range inv.bag {
			if it == nil {
				slot = int32(s)
				break
			}
		}
	}

	inv.bag[slot] = item
	inv.items[item.ObjectID()] = item
	item.SetLocation(ItemLocationInventory, slot)
	return StoreOK
}

// CanEquipNew проверяет, можно ли надеть предмет с данным template в slot.
//
// swap == true разрешает занятый слот (проверка для замены предмета,
// который ещё физически находится в слоте).
func (inv *Inventory) CanEquipNew(slot int32, tmpl *ItemTemplate, swap bool) StoreResult {
	if tmpl == nil {
		return StoreItemNotFound
	}
	if slot < 0 || slot >= PaperdollTotalSlots {
		return StoreInvalidSlot
	}
	if tmpl.PaperdollSlot() != slot {
		return StoreCannotEquip
	}

	inv.mu.RLock()
	defer inv.mu.RUnlock()
	if inv.paperdoll[slot] != nil && !swap {
		return StoreSlotOccupied
	}
	return StoreOK
}

// Equip надевает предмет в указанный paperdoll slot.
// Слот должен быть свободен (замена идёт через Destroy + Equip).
func (inv *Inventory) Equip(item *Item, slot int32) error {
	if item == nil {
		return fmt.Errorf("item cannot be nil")
	}
	if slot < 0 || slot >= PaperdollTotalSlots {
		return fmt.Errorf("invalid paperdoll slot: %d", slot)
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	if inv.paperdoll[slot] != nil {
		return fmt.Errorf("paperdoll slot %d occupied", slot)
	}

	// Если предмет лежал в bag — освобождаем слот.
	if prev := item.Slot(); prev >= 0 && item.Location() == ItemLocationInventory && int(prev) < len(inv.bag) && inv.bag[prev] == item {
		inv.bag[prev] = nil
	}

	inv.paperdoll[slot] = item
	inv.items[item.ObjectID()] = item
	item.SetLocation(ItemLocationPaperdoll, slot)
	return nil
}

// Destroy удаляет предмет из инвентаря и помечает его как void.
// Возвращает false если предмет не найден.
func (inv *Inventory) Destroy(objectID uint32) bool {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	item, ok := inv.items[objectID]
	if !ok {
		return false
	}

	switch item.Location() {
	case ItemLocationInventory:
		if s := item.Slot(); s >= 0 && int(s) < len(inv.bag) && inv.bag[s] == item {
			inv.bag[s] = nil
		}
	case ItemLocationPaperdoll:
		if s := item.Slot(); s >= 0 && s < PaperdollTotalSlots && inv.paperdoll[s] == item {
			inv.paperdoll[s] = nil
		}
	}

	delete(inv.items, objectID)
	item.SetLocation(ItemLocationVoid, -1)
	return true
}
