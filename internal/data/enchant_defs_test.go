package data

import (
	"testing"

	"github.com/udisondev/la2forge/internal/model"
)

const markerID int32 = 900000

func testEnchantDefs() *EnchantDefs {
	spells := NewSpellDefs([]SpellDef{
		{ID: 6001, Name: "Insight", Effects: []SpellEffect{{Aura: AuraModStat, Stat: model.BonusStatWIT, Value: 1}}},
	})
	defs := []EnchantDef{
		{ID: markerID, Name: "Transmuted"},
		{ID: 11001, Name: "Strength", Effects: [3]EnchantEffect{{Type: EnchantEffectStat, Arg: int32(model.BonusStatSTR), Amount: 1}}},
		{ID: 12001, Name: "Warding", Effects: [3]EnchantEffect{{Type: EnchantEffectResistance, Arg: 2, Amount: 5}}},
		{ID: 13001, Name: "Focus", Effects: [3]EnchantEffect{{Type: EnchantEffectDamage, Amount: 3}}},
		{ID: 13002, Name: "Beast Spirit", Effects: [3]EnchantEffect{{Type: EnchantEffectTotem, Arg: 1}}},
		{ID: 14001, Name: "Insight", Effects: [3]EnchantEffect{{Type: EnchantEffectEquipSpell, Arg: 6001}}},
		{ID: 14002, Name: "Broken Link", Effects: [3]EnchantEffect{{Type: EnchantEffectCombatSpell, Arg: 7777}}},
	}
	return NewEnchantDefs(defs, spells, markerID)
}

func TestUsableOn(t *testing.T) {
	t.Parallel()

	d := testEnchantDefs()

	tests := []struct {
		name       string
		id         int32
		wantWeapon bool
		wantArmor  bool
	}{
		{name: "stat works everywhere", id: 11001, wantWeapon: true, wantArmor: true},
		{name: "resistance works everywhere", id: 12001, wantWeapon: true, wantArmor: true},
		{name: "damage is weapon-only", id: 13001, wantWeapon: true, wantArmor: false},
		{name: "totem is weapon-only", id: 13002, wantWeapon: true, wantArmor: false},
		{name: "equip spell resolves", id: 14001, wantWeapon: true, wantArmor: true},
		{name: "dangling spell ref unusable", id: 14002, wantWeapon: false, wantArmor: false},
		{name: "marker has no effects", id: markerID, wantWeapon: false, wantArmor: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			def := d.Lookup(tt.id)
			if def == nil {
				t.Fatalf("no definition %d", tt.id)
			}
			if got := d.UsableOn(def, true); got != tt.wantWeapon {
				t.Errorf("UsableOn(weapon) = %v, want %v", got, tt.wantWeapon)
			}
			if got := d.UsableOn(def, false); got != tt.wantArmor {
				t.Errorf("UsableOn(armor) = %v, want %v", got, tt.wantArmor)
			}
		})
	}
}

func TestCandidatesForExcludesMarker(t *testing.T) {
	t.Parallel()

	d := testEnchantDefs()

	weapon := d.CandidatesFor(true)
	wantWeapon := []int32{11001, 12001, 13001, 13002, 14001}
	if len(weapon) != len(wantWeapon) {
		t.Fatalf("weapon candidates = %v, want %v", weapon, wantWeapon)
	}
	for i, id := range wantWeapon {
		if weapon[i] != id {
			t.Fatalf("weapon candidates = %v, want %v (ascending by ID)", weapon, wantWeapon)
		}
	}

	armor := d.CandidatesFor(false)
	wantArmor := []int32{11001, 12001, 14001}
	if len(armor) != len(wantArmor) {
		t.Fatalf("armor candidates = %v, want %v", armor, wantArmor)
	}
	for i, id := range wantArmor {
		if armor[i] != id {
			t.Fatalf("armor candidates = %v, want %v (ascending by ID)", armor, wantArmor)
		}
	}
}

func TestStatFromArg(t *testing.T) {
	t.Parallel()

	tests := []struct {
		arg  int32
		want model.BonusStat
	}{
		{arg: int32(model.BonusStatSTR), want: model.BonusStatSTR},
		{arg: int32(model.BonusStatMEN), want: model.BonusStatMEN},
		{arg: 0, want: model.BonusStatNone},
		{arg: -1, want: model.BonusStatNone},
		{arg: int32(model.BonusStatMEN) + 1, want: model.BonusStatNone},
	}
	for _, tt := range tests {
		if got := StatFromArg(tt.arg); got != tt.want {
			t.Errorf("StatFromArg(%d) = %v, want %v", tt.arg, got, tt.want)
		}
	}
}
