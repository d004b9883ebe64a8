package transmute

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/udisondev/la2forge/internal/data"
	"github.com/udisondev/la2forge/internal/model"
)

// StatEnchantCandidate — (enchant ID, magnitude) пара из batch-поиска.
type StatEnchantCandidate struct {
	EnchantID int32
	Value     int32
}

// spellCacheSize ограничивает кэш разрешённых spell stat-эффектов.
// Типичный reference набор — сотни equip-spell зачарований.
const spellCacheSize = 1024

// Matcher находит enchant definitions по желаемому stat-эффекту.
//
// Stat-зачарования кодируются двумя способами: прямой stat-эффект
// (EnchantEffectStat) либо equip-spell, применяющий AuraModStat. Matcher
// поддерживает оба; разрешение spell → stat-эффекты мемоизируется в LRU,
// чтобы batch-сканы не перечитывали одни и те же заклинания.
type Matcher struct {
	defs   *data.EnchantDefs
	spells *data.SpellDefs

	spellCache *lru.Cache[int32, []statEffect]
}

type statEffect struct {
	stat  model.BonusStat
	value int32
}

// NewMatcher создаёт Matcher над reference хранилищами.
func NewMatcher(defs *data.EnchantDefs, spells *data.SpellDefs) *Matcher {
	cache, _ := lru.New[int32, []statEffect](spellCacheSize)
	return &Matcher{defs: defs, spells: spells, spellCache: cache}
}

// resolveSpellStatEffects возвращает stat-эффекты заклинания (может быть пусто).
func (m *Matcher) resolveSpellStatEffects(spellID int32) []statEffect {
	if spellID == 0 {
		return nil
	}
	if cached, ok := m.spellCache.Get(spellID); ok {
		return cached
	}

	var out []statEffect
	if spell := m.spells.Lookup(spellID); spell != nil {
		for _, eff := range spell.Effects {
			if eff.Aura != data.AuraModStat || eff.Stat == model.BonusStatNone {
				continue
			}
			out = append(out, statEffect{stat: eff.Stat, value: eff.Value})
		}
	}
	m.spellCache.Add(spellID, out)
	return out
}

// FindStatEnchantID возвращает ID первого definition, дающего ровно
// value к stat. 0 — не найдено или value <= 0.
func (m *Matcher) FindStatEnchantID(stat model.BonusStat, value int32) int32 {
	if value <= 0 || stat == model.BonusStatNone {
		return 0
	}

	for _, def := range m.defs.All() {
		for _, eff := range def.Effects {
			switch eff.Type {
			case data.EnchantEffectStat:
				if data.StatFromArg(eff.Arg) == stat && eff.Amount == value {
					return def.ID
				}
			case data.EnchantEffectEquipSpell:
				for _, se := range m.resolveSpellStatEffects(eff.Arg) {
					if se.stat == stat && se.value == value {
						return def.ID
					}
				}
			}
		}
	}
	return 0
}

// CollectStatEnchantCandidates возвращает все (enchant ID, magnitude) пары
// для stat с magnitude в [minValue, maxValue] включительно.
// minValue > maxValue — пустой результат.
func (m *Matcher) CollectStatEnchantCandidates(stat model.BonusStat, minValue, maxValue int32) []StatEnchantCandidate {
	if minValue > maxValue || stat == model.BonusStatNone {
		return nil
	}

	var out []StatEnchantCandidate
	for _, def := range m.defs.All() {
		for _, eff := range def.Effects {
			switch eff.Type {
			case data.EnchantEffectStat:
				if data.StatFromArg(eff.Arg) != stat {
					continue
				}
				if eff.Amount >= minValue && eff.Amount <= maxValue {
					out = append(out, StatEnchantCandidate{EnchantID: def.ID, Value: eff.Amount})
				}
			case data.EnchantEffectEquipSpell:
				for _, se := range m.resolveSpellStatEffects(eff.Arg) {
					if se.stat != stat {
						continue
					}
					if se.value >= minValue && se.value <= maxValue {
						out = append(out, StatEnchantCandidate{EnchantID: def.ID, Value: se.value})
						break
					}
				}
			}
		}
	}
	return out
}
