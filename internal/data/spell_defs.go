package data

import "github.com/udisondev/la2forge/internal/model"

// AuraType — тип постоянного эффекта заклинания.
type AuraType int32

const (
	AuraNone AuraType = iota
	// AuraModStat — модификатор характеристики (Stat, Value).
	AuraModStat
	// AuraModResistance — модификатор сопротивления.
	AuraModResistance
)

// SpellEffect — один эффект заклинания.
type SpellEffect struct {
	Aura  AuraType
	Stat  model.BonusStat // для AuraModStat
	Value int32
}

// SpellDef — spell definition (reference, read-only).
// Equip-spell зачарования ссылаются сюда через EnchantEffect.Arg.
type SpellDef struct {
	ID      int32
	Name    string
	Effects []SpellEffect
}

// SpellDefs — хранилище spell definitions.
type SpellDefs struct {
	defs map[int32]*SpellDef
}

// NewSpellDefs строит хранилище из списка definitions.
func NewSpellDefs(defs []SpellDef) *SpellDefs {
	d := &SpellDefs{defs: make(map[int32]*SpellDef, len(defs))}
	for i := range defs {
		def := defs[i]
		d.defs[def.ID] = &def
	}
	return d
}

// Lookup возвращает definition по spell ID (nil если нет).
func (d *SpellDefs) Lookup(id int32) *SpellDef {
	return d.defs[id]
}

// Size возвращает количество заклинаний.
func (d *SpellDefs) Size() int {
	return len(d.defs)
}
