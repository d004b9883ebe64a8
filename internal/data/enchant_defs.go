package data

import (
	"sort"
	"sync"

	"github.com/udisondev/la2forge/internal/model"
)

// EnchantEffectType — тип эффекта внутри enchant definition.
type EnchantEffectType int32

const (
	EnchantEffectNone EnchantEffectType = iota
	// EnchantEffectCombatSpell — прок заклинания в бою (Arg = spell ID).
	EnchantEffectCombatSpell
	// EnchantEffectDamage — прибавка к weapon damage (только для оружия).
	EnchantEffectDamage
	// EnchantEffectEquipSpell — заклинание при надевании (Arg = spell ID).
	EnchantEffectEquipSpell
	// EnchantEffectResistance — сопротивление стихии (Arg = element).
	EnchantEffectResistance
	// EnchantEffectStat — прямая прибавка к характеристике (Arg = stat, Amount = value).
	EnchantEffectStat
	// EnchantEffectTotem — totem-эффект оружия (только для оружия).
	EnchantEffectTotem
)

// EnchantEffect — один из трёх эффектов enchant definition.
type EnchantEffect struct {
	Type   EnchantEffectType
	Arg    int32 // смысл зависит от Type: spell ID, stat, element
	Amount int32
}

// EnchantDef — bonus-property definition (reference, read-only).
type EnchantDef struct {
	ID      int32
	Name    string
	Effects [3]EnchantEffect
}

// EnchantDefs — хранилище enchant definitions с lazy-классификацией
// weapon/armor кандидатов.
type EnchantDefs struct {
	defs    map[int32]*EnchantDef
	ordered []*EnchantDef // стабильный порядок сканирования (по ID)
	spells  *SpellDefs

	onceCandidates sync.Once
	weaponIDs      []int32
	armorIDs       []int32
	markerID       int32
}

// NewEnchantDefs строит хранилище. spells нужен для проверки равнозначности
// spell-эффектов; markerID зарезервирован и исключается из кандидатов.
func NewEnchantDefs(defs []EnchantDef, spells *SpellDefs, markerID int32) *EnchantDefs {
	d := &EnchantDefs{
		defs:     make(map[int32]*EnchantDef, len(defs)),
		ordered:  make([]*EnchantDef, 0, len(defs)),
		spells:   spells,
		markerID: markerID,
	}
	for i := range defs {
		def := defs[i]
		d.defs[def.ID] = &def
		d.ordered = append(d.ordered, &def)
	}
	sort.Slice(d.ordered, func(i, j int) bool { return d.ordered[i].ID < d.ordered[j].ID })
	return d
}

// Lookup возвращает definition по ID (nil если нет).
func (d *EnchantDefs) Lookup(id int32) *EnchantDef {
	return d.defs[id]
}

// All возвращает definitions в порядке возрастания ID.
func (d *EnchantDefs) All() []*EnchantDef {
	return d.ordered
}

// Spells возвращает связанное хранилище заклинаний.
func (d *EnchantDefs) Spells() *SpellDefs {
	return d.spells
}

// UsableOn возвращает true если definition даёт хотя бы один рабочий эффект
// для данного типа цели. Damage и totem эффекты применимы только к оружию;
// spell-эффекты должны ссылаться на существующее заклинание.
func (d *EnchantDefs) UsableOn(def *EnchantDef, isWeapon bool) bool {
	if def == nil {
		return false
	}

	for _, eff := range def.Effects {
		switch eff.Type {
		case EnchantEffectStat, EnchantEffectResistance:
			return true
		case EnchantEffectDamage, EnchantEffectTotem:
			if isWeapon {
				return true
			}
		case EnchantEffectEquipSpell, EnchantEffectCombatSpell:
			if eff.Arg != 0 && d.spells != nil && d.spells.Lookup(eff.Arg) != nil {
				return true
			}
		}
	}
	return false
}

// CandidatesFor возвращает ID всех definitions, применимых к weapon либо
// к non-weapon цели. Marker исключён. Списки строятся один раз.
func (d *EnchantDefs) CandidatesFor(isWeapon bool) []int32 {
	d.onceCandidates.Do(func() {
		for _, def := range d.ordered {
			if def.ID == d.markerID {
				continue
			}
			if d.UsableOn(def, true) {
				d.weaponIDs = append(d.weaponIDs, def.ID)
			}
			if d.UsableOn(def, false) {
				d.armorIDs = append(d.armorIDs, def.ID)
			}
		}
	})
	if isWeapon {
		return d.weaponIDs
	}
	return d.armorIDs
}

// StatFromArg преобразует Arg stat-эффекта в model.BonusStat.
func StatFromArg(arg int32) model.BonusStat {
	if arg <= int32(model.BonusStatNone) || arg > int32(model.BonusStatMEN) {
		return model.BonusStatNone
	}
	return model.BonusStat(arg)
}
