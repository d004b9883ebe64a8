package model

// EnchantSlot — позиция в enchant-регионе предмета.
//
// SlotPermanent — общий слот (обычные перманентные зачарования, видны в link).
// SlotBonus0..SlotBonus3 — регион transmute-движка: marker + до трёх модификаторов.
// Предметы с RandomPropertyID != 0 используют bonus-регион для random suffix,
// поэтому исключаются из transmute.
type EnchantSlot int32

const (
	SlotPermanent EnchantSlot = iota
	SlotBonus0
	SlotBonus1
	SlotBonus2
	SlotBonus3
	EnchantSlotCount
)

// String returns human-readable enchant slot name.
func (s EnchantSlot) String() string {
	switch s {
	case SlotPermanent:
		return "Permanent"
	case SlotBonus0:
		return "Bonus0"
	case SlotBonus1:
		return "Bonus1"
	case SlotBonus2:
		return "Bonus2"
	case SlotBonus3:
		return "Bonus3"
	default:
		return "Unknown"
	}
}

// BonusSlots — все четыре слота bonus-региона в порядке очистки.
var BonusSlots = [4]EnchantSlot{SlotBonus0, SlotBonus1, SlotBonus2, SlotBonus3}

// ModifierSlots — слоты модификаторов в порядке применения.
var ModifierSlots = [3]EnchantSlot{SlotBonus1, SlotBonus2, SlotBonus3}

// AttackKind — тип атаки для пересчёта weapon damage.
type AttackKind int32

const (
	BaseAttack AttackKind = iota
	OffAttack
	RangedAttack
)

// String returns human-readable attack kind name.
func (k AttackKind) String() string {
	switch k {
	case BaseAttack:
		return "Base"
	case OffAttack:
		return "Off"
	case RangedAttack:
		return "Ranged"
	default:
		return "Unknown"
	}
}
