package transmute

import "github.com/udisondev/la2forge/internal/model"

// EffectSink — возможности acting entity, нужные state machine бонус-слотов:
// активация/снятие live-эффектов, пересчёт weapon damage, обновление видимой
// экипировки. Реализуется model.Player и test doubles.
type EffectSink interface {
	ApplyEnchantEffect(item *model.Item, slot model.EnchantSlot, active bool)
	UpdateWeaponDamage(kind model.AttackKind)
	RefreshVisibleSlot(item *model.Item)
}

// weaponAttackKind возвращает тип атаки для weapon-bearing позиции предмета.
// false — позиция не влияет на weapon damage.
func weaponAttackKind(item *model.Item) (model.AttackKind, bool) {
	if !item.IsEquipped() {
		return 0, false
	}
	switch item.Slot() {
	case model.PaperdollRHand:
		// Лук стреляет с правой руки, но пересчитывается как ranged.
		if item.Template().SubType == "BOW" {
			return model.RangedAttack, true
		}
		return model.BaseAttack, true
	case model.PaperdollLHand:
		return model.OffAttack, true
	default:
		return 0, false
	}
}

// ClearBonuses переводит bonus-регион предмета в состояние Clean.
//
// Если предмет надет — сначала снимаются live-эффекты всех четырёх bonus
// слотов и запрашивается пересчёт weapon damage. Затем слоты зануляются;
// permanent слот очищается только если в нём стоит marker движка.
// Повторный вызов на чистом предмете — no-op (идемпотентность).
func ClearBonuses(sink EffectSink, item *model.Item, markerID int32) {
	if item == nil {
		return
	}

	if item.IsEquipped() {
		for _, slot := range model.BonusSlots {
			sink.ApplyEnchantEffect(item, slot, false)
		}
		if item.EnchantID(model.SlotPermanent) == markerID {
			sink.ApplyEnchantEffect(item, model.SlotPermanent, false)
		}
		if kind, ok := weaponAttackKind(item); ok {
			sink.UpdateWeaponDamage(kind)
		}
	}

	for _, slot := range model.BonusSlots {
		item.ClearEnchant(slot)
	}
	if item.EnchantID(model.SlotPermanent) == markerID {
		item.ClearEnchant(model.SlotPermanent)
	}
	item.MarkChanged()

	if item.IsEquipped() {
		sink.RefreshVisibleSlot(item)
	}
}

// ApplyBonuses записывает marker и модификаторы в bonus-регион.
//
// Marker предпочитает permanent слот (лучше виден в item link), при занятом
// permanent уходит в первый bonus слот. Модификаторы (до трёх) занимают
// выделенные слоты по порядку. Если предмет надет — live-эффекты активируются
// в порядке marker → модификаторы, затем пересчитывается weapon damage.
//
// Вызывается только сразу после ClearBonuses: частичные состояния не должны
// пересекать границу транзакции.
func ApplyBonuses(sink EffectSink, item *model.Item, markerID int32, modifiers []int32) {
	if item == nil {
		return
	}

	markerSlot := model.SlotBonus0
	if item.EnchantID(model.SlotPermanent) == 0 {
		markerSlot = model.SlotPermanent
	}
	item.SetEnchant(markerSlot, markerID)

	for i, id := range modifiers {
		if i >= len(model.ModifierSlots) {
			break
		}
		item.SetEnchant(model.ModifierSlots[i], id)
	}
	item.MarkChanged()

	if item.IsEquipped() {
		sink.ApplyEnchantEffect(item, markerSlot, true)
		for i := range modifiers {
			if i >= len(model.ModifierSlots) {
				break
			}
			sink.ApplyEnchantEffect(item, model.ModifierSlots[i], true)
		}
		if kind, ok := weaponAttackKind(item); ok {
			sink.UpdateWeaponDamage(kind)
		}
		sink.RefreshVisibleSlot(item)
	}
}
