// Package data holds the read-only reference stores the transmute engine
// queries: the item catalog with its tier indexes, enchant (bonus-property)
// definitions and spell definitions.
//
// Stores are plain constructed service objects. Indexes are built lazily on
// first use and cached for the process lifetime: the underlying reference data
// never changes, so a one-time build гарантированно корректен для всех
// последующих чтений.
package data

import (
	"sort"
	"sync"

	"github.com/udisondev/la2forge/internal/model"
)

// TypeKey — точный тип предмета: (class, subclass, equip slot).
type TypeKey struct {
	Class    model.ItemType
	SubType  string
	BodyPart string
}

// TierRef — (item level, template ID) пара внутри индекса.
type TierRef struct {
	Level  int32
	ItemID int32
}

// Catalog — каталог item templates с lazy tier-индексами.
type Catalog struct {
	templates map[int32]*model.ItemTemplate

	onceByType  sync.Once
	byType      map[TypeKey][]TierRef
	onceByClass sync.Once
	byClass     map[model.ItemType][]TierRef
}

// NewCatalog строит каталог из списка шаблонов.
func NewCatalog(templates []*model.ItemTemplate) *Catalog {
	c := &Catalog{
		templates: make(map[int32]*model.ItemTemplate, len(templates)),
	}
	for _, t := range templates {
		if t != nil {
			c.templates[t.ItemID] = t
		}
	}
	return c
}

// Lookup возвращает шаблон по template ID (nil если нет).
func (c *Catalog) Lookup(itemID int32) *model.ItemTemplate {
	return c.templates[itemID]
}

// Size возвращает количество шаблонов в каталоге.
func (c *Catalog) Size() int {
	return len(c.templates)
}

// IndexByTypeKey возвращает индекс (class, subclass, equip slot) →
// отсортированный по item level список TierRef. Только equippable gear.
// Строится один раз, безопасен для конкурентного чтения после построения.
func (c *Catalog) IndexByTypeKey() map[TypeKey][]TierRef {
	c.onceByType.Do(func() {
		idx := make(map[TypeKey][]TierRef)
		for _, t := range c.templates {
			if !t.IsEquippableGear() {
				continue
			}
			key := TypeKey{Class: t.Type, SubType: t.SubType, BodyPart: t.BodyPart}
			idx[key] = append(idx[key], TierRef{Level: t.ItemLevel, ItemID: t.ItemID})
		}
		for key := range idx {
			refs := idx[key]
			sort.Slice(refs, func(i, j int) bool { return refs[i].Level < refs[j].Level })
		}
		c.byType = idx
	})
	return c.byType
}

// IndexByClass возвращает индекс class → отсортированный по item level список
// TierRef. Только equippable gear. Строится один раз.
func (c *Catalog) IndexByClass() map[model.ItemType][]TierRef {
	c.onceByClass.Do(func() {
		idx := make(map[model.ItemType][]TierRef)
		for _, t := range c.templates {
			if !t.IsEquippableGear() {
				continue
			}
			idx[t.Type] = append(idx[t.Type], TierRef{Level: t.ItemLevel, ItemID: t.ItemID})
		}
		for cls := range idx {
			refs := idx[cls]
			sort.Slice(refs, func(i, j int) bool { return refs[i].Level < refs[j].Level })
		}
		c.byClass = idx
	})
	return c.byClass
}

// UpgradeCandidates возвращает template ID того же class с item level в
// [tmpl.ItemLevel, tmpl.ItemLevel+maxDelta], исключая сам tmpl.
// Пустой срез — нет кандидатов (не ошибка).
func (c *Catalog) UpgradeCandidates(tmpl *model.ItemTemplate, maxDelta int32) []int32 {
	if tmpl == nil {
		return nil
	}

	refs := c.IndexByClass()[tmpl.Type]
	maxLevel := tmpl.ItemLevel + maxDelta

	var out []int32
	for _, ref := range refs {
		if ref.Level < tmpl.ItemLevel {
			continue
		}
		if ref.Level > maxLevel {
			break
		}
		if ref.ItemID == tmpl.ItemID {
			continue
		}
		out = append(out, ref.ItemID)
	}
	return out
}

// DowngradeCandidates возвращает template ID того же точного типа
// (class, subclass, equip slot) со строго меньшим item level, исключая tmpl.
func (c *Catalog) DowngradeCandidates(tmpl *model.ItemTemplate) []int32 {
	if tmpl == nil || tmpl.ItemLevel == 0 {
		return nil
	}

	key := TypeKey{Class: tmpl.Type, SubType: tmpl.SubType, BodyPart: tmpl.BodyPart}
	refs := c.IndexByTypeKey()[key]

	var out []int32
	for _, ref := range refs {
		if ref.Level >= tmpl.ItemLevel {
			break
		}
		if ref.ItemID == tmpl.ItemID {
			continue
		}
		out = append(out, ref.ItemID)
	}
	return out
}
