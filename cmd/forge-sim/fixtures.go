package main

import (
	"context"
	"fmt"

	"github.com/udisondev/la2forge/internal/data"
	"github.com/udisondev/la2forge/internal/game/transmute"
	"github.com/udisondev/la2forge/internal/model"
)

// Demo reference data для прогонов без реального каталога сервера.
// ID и уровни подобраны так, чтобы у upgrade/downgrade всегда были кандидаты
// в середине диапазона и не было — на краях.

const catalystItemID int32 = 8763

func fixtureTemplates() []*model.ItemTemplate {
	templates := []*model.ItemTemplate{
		{ItemID: catalystItemID, Name: "Chaos Stone", Type: model.ItemTypeEtcItem},
	}

	weapon := func(id int32, name, subType string, level int32) *model.ItemTemplate {
		return &model.ItemTemplate{
			ItemID: id, Name: name, Type: model.ItemTypeWeapon,
			SubType: subType, BodyPart: "rhand", ItemLevel: level,
		}
	}
	armor := func(id int32, name, subType, bodyPart string, level int32) *model.ItemTemplate {
		return &model.ItemTemplate{
			ItemID: id, Name: name, Type: model.ItemTypeArmor,
			SubType: subType, BodyPart: bodyPart, ItemLevel: level,
		}
	}

	for i := int32(0); i < 12; i++ {
		level := 5 + i*5
		templates = append(templates,
			weapon(100+i, fmt.Sprintf("Sword Mk%d", i+1), "SWORD", level),
			weapon(200+i, fmt.Sprintf("Mace Mk%d", i+1), "BLUNT", level),
			weapon(300+i, fmt.Sprintf("Bow Mk%d", i+1), "BOW", level),
			armor(400+i, fmt.Sprintf("Leather Tunic Mk%d", i+1), "LIGHT", "chest", level),
			armor(500+i, fmt.Sprintf("Plate Greaves Mk%d", i+1), "HEAVY", "legs", level),
			armor(600+i, fmt.Sprintf("Helm Mk%d", i+1), "HEAVY", "head", level),
		)
	}

	// Не-gear шум: индексы обязаны его игнорировать.
	templates = append(templates,
		&model.ItemTemplate{ItemID: 900, Name: "Adventurer's Backpack", Type: model.ItemTypeArmor, BodyPart: "bag"},
		&model.ItemTemplate{ItemID: 901, Name: "Healing Potion", Type: model.ItemTypeConsumable},
	)
	return templates
}

func fixtureSpellDefs() []data.SpellDef {
	return []data.SpellDef{
		{ID: 5001, Name: "Flame Strike"},
		{ID: 6001, Name: "Blessing of Insight", Effects: []data.SpellEffect{
			{Aura: data.AuraModStat, Stat: model.BonusStatWIT, Value: 1},
		}},
	}
}

func fixtureEnchantDefs(markerID int32) []data.EnchantDef {
	stat := func(id int32, name string, s model.BonusStat, amount int32) data.EnchantDef {
		return data.EnchantDef{ID: id, Name: name, Effects: [3]data.EnchantEffect{
			{Type: data.EnchantEffectStat, Arg: int32(s), Amount: amount},
		}}
	}
	return []data.EnchantDef{
		{ID: markerID, Name: "Transmuted"},
		stat(11001, "+1 STR", model.BonusStatSTR, 1),
		stat(11002, "+2 STR", model.BonusStatSTR, 2),
		stat(11003, "+3 STR", model.BonusStatSTR, 3),
		stat(11011, "+1 CON", model.BonusStatCON, 1),
		stat(11012, "+2 CON", model.BonusStatCON, 2),
		stat(11021, "+1 DEX", model.BonusStatDEX, 1),
		stat(11022, "+2 DEX", model.BonusStatDEX, 2),
		{ID: 11031, Name: "+1 WIT", Effects: [3]data.EnchantEffect{
			{Type: data.EnchantEffectEquipSpell, Arg: 6001},
		}},
		{ID: 12001, Name: "Focus I", Effects: [3]data.EnchantEffect{
			{Type: data.EnchantEffectDamage, Amount: 2},
		}},
		{ID: 12002, Name: "Focus II", Effects: [3]data.EnchantEffect{
			{Type: data.EnchantEffectDamage, Amount: 4},
		}},
		{ID: 13001, Name: "Flame Proc", Effects: [3]data.EnchantEffect{
			{Type: data.EnchantEffectCombatSpell, Arg: 5001},
		}},
	}
}

// staticWhitelist — in-memory источник, зеркало seed-миграции.
type staticWhitelist struct{}

func (staticWhitelist) LoadRows(_ context.Context) ([]transmute.WhitelistSourceRow, error) {
	row := func(id int32, group string, rank int16, minLevel, weight int32, weapon, armor bool) transmute.WhitelistSourceRow {
		return transmute.WhitelistSourceRow{
			WhitelistRow: transmute.WhitelistRow{
				EnchantID: id, GroupKey: group, Rank: rank,
				MinItemLevel: minLevel, Weight: weight,
			},
			Weapon: weapon, Armor: armor,
		}
	}
	return []transmute.WhitelistSourceRow{
		row(11001, "str", 1, 0, 70, true, true),
		row(11002, "str", 2, 20, 70, true, true),
		row(11003, "str", 3, 40, 70, true, true),
		row(11011, "con", 1, 0, 70, false, true),
		row(11012, "con", 2, 20, 70, false, true),
		row(11021, "dex", 1, 0, 60, true, true),
		row(11022, "dex", 2, 20, 60, true, true),
		row(11031, "wit", 1, 0, 40, false, true),
		row(12001, "focus", 1, 10, 30, true, false),
		row(12002, "focus", 2, 30, 30, true, false),
		row(13001, "", 0, 0, 15, true, false),
	}, nil
}
