package transmute

import "github.com/udisondev/la2forge/internal/model"

// replaceInPlace заменяет target новым предметом newItemID, сохраняя позицию.
//
// Протокол verify-before-destroy: старый предмет уничтожается только после
// того, как размещение нового доказано возможным. Атомарной multi-step
// inventory транзакции у движка нет, поэтому проверка обязана предшествовать
// уничтожению — иначе провал размещения означал бы невосполнимую потерю
// предмета.
//
// Equipped позиция: проверка CanEquipNew в режиме swap (старый предмет ещё
// занимает слот), затем destroy + equip. Bag позиция: сначала проверяется
// размещение хоть куда-нибудь, после destroy — попытка вернуть в тот же слот,
// при конкурентном изменении — fallback на уже доказанное "куда-нибудь".
func replaceInPlace(actor Actor, target *model.Item, newItemID int32) (bool, model.StoreResult) {
	if target == nil || newItemID == 0 {
		return false, model.StoreItemNotFound
	}

	slot := target.Slot()

	switch target.Location() {
	case model.ItemLocationPaperdoll:
		if res := actor.CanEquipNew(slot, newItemID, true); res != model.StoreOK {
			return false, res
		}
		actor.DestroyItem(target)
		if _, err := actor.EquipNew(slot, newItemID); err != nil {
			return false, model.StoreCannotEquip
		}
		return true, model.StoreOK

	case model.ItemLocationInventory:
		if res := actor.CanStoreNew(model.AnySlot, newItemID); res != model.StoreOK {
			return false, res
		}
		actor.DestroyItem(target)

		if actor.CanStoreNew(slot, newItemID) == model.StoreOK {
			if _, err := actor.StoreNew(slot, newItemID); err == nil {
				return true, model.StoreOK
			}
		}
		// Точный слот уже недоступен — кладём туда, куда доказали выше.
		if _, err := actor.StoreNew(model.AnySlot, newItemID); err != nil {
			return false, model.StoreFull
		}
		return true, model.StoreOK
	}

	return false, model.StoreInvalidSlot
}
