package transmute

import (
	"testing"

	"github.com/udisondev/la2forge/internal/data"
	"github.com/udisondev/la2forge/internal/model"
)

func testMatcher(t *testing.T) *Matcher {
	t.Helper()

	spells := data.NewSpellDefs([]data.SpellDef{
		{ID: 6001, Name: "Insight", Effects: []data.SpellEffect{
			{Aura: data.AuraModStat, Stat: model.BonusStatWIT, Value: 1},
		}},
		{ID: 6002, Name: "Might", Effects: []data.SpellEffect{
			{Aura: data.AuraModStat, Stat: model.BonusStatSTR, Value: 3},
		}},
		{ID: 5001, Name: "Flame Strike"}, // без stat-эффектов
	})

	stat := func(id int32, s model.BonusStat, amount int32) data.EnchantDef {
		return data.EnchantDef{ID: id, Effects: [3]data.EnchantEffect{
			{Type: data.EnchantEffectStat, Arg: int32(s), Amount: amount},
		}}
	}
	defs := data.NewEnchantDefs([]data.EnchantDef{
		stat(11001, model.BonusStatSTR, 1),
		stat(11002, model.BonusStatSTR, 2),
		{ID: 11031, Effects: [3]data.EnchantEffect{
			{Type: data.EnchantEffectEquipSpell, Arg: 6001},
		}},
		{ID: 11041, Effects: [3]data.EnchantEffect{
			{Type: data.EnchantEffectEquipSpell, Arg: 6002},
		}},
		{ID: 13001, Effects: [3]data.EnchantEffect{
			{Type: data.EnchantEffectCombatSpell, Arg: 5001},
		}},
	}, spells, 900000)

	return NewMatcher(defs, spells)
}

func TestFindStatEnchantIDDirect(t *testing.T) {
	t.Parallel()
	m := testMatcher(t)

	if got := m.FindStatEnchantID(model.BonusStatSTR, 2); got != 11002 {
		t.Errorf("FindStatEnchantID(STR, 2) = %d, want 11002", got)
	}
}

func TestFindStatEnchantIDViaEquipSpell(t *testing.T) {
	t.Parallel()
	m := testMatcher(t)

	if got := m.FindStatEnchantID(model.BonusStatWIT, 1); got != 11031 {
		t.Errorf("FindStatEnchantID(WIT, 1) = %d, want 11031", got)
	}
	if got := m.FindStatEnchantID(model.BonusStatSTR, 3); got != 11041 {
		t.Errorf("FindStatEnchantID(STR, 3) = %d, want 11041 (spell-encoded)", got)
	}
}

func TestFindStatEnchantIDNotFound(t *testing.T) {
	t.Parallel()
	m := testMatcher(t)

	tests := []struct {
		name  string
		stat  model.BonusStat
		value int32
	}{
		{"zero value", model.BonusStatSTR, 0},
		{"negative value", model.BonusStatSTR, -5},
		{"no such magnitude", model.BonusStatSTR, 99},
		{"no such stat", model.BonusStatMEN, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.FindStatEnchantID(tt.stat, tt.value); got != 0 {
				t.Errorf("FindStatEnchantID(%s, %d) = %d, want 0", tt.stat, tt.value, got)
			}
		})
	}
}

func TestCollectStatEnchantCandidates(t *testing.T) {
	t.Parallel()
	m := testMatcher(t)

	got := m.CollectStatEnchantCandidates(model.BonusStatSTR, 1, 3)
	want := map[int32]int32{11001: 1, 11002: 2, 11041: 3}
	if len(got) != len(want) {
		t.Fatalf("candidates = %v, want %d entries", got, len(want))
	}
	for _, c := range got {
		if want[c.EnchantID] != c.Value {
			t.Errorf("candidate %d value = %d, want %d", c.EnchantID, c.Value, want[c.EnchantID])
		}
	}
}

func TestCollectStatEnchantCandidatesRange(t *testing.T) {
	t.Parallel()
	m := testMatcher(t)

	if got := m.CollectStatEnchantCandidates(model.BonusStatSTR, 2, 2); len(got) != 1 || got[0].EnchantID != 11002 {
		t.Errorf("candidates in [2,2] = %v, want only 11002", got)
	}

	// min > max — пустой результат, не ошибка.
	if got := m.CollectStatEnchantCandidates(model.BonusStatSTR, 3, 1); got != nil {
		t.Errorf("candidates with min>max = %v, want nil", got)
	}
}

func TestCollectStatEnchantCandidatesCachesSpells(t *testing.T) {
	t.Parallel()
	m := testMatcher(t)

	// Повторные batch-сканы обязаны давать тот же результат (кэш прозрачен).
	first := m.CollectStatEnchantCandidates(model.BonusStatWIT, 1, 1)
	second := m.CollectStatEnchantCandidates(model.BonusStatWIT, 1, 1)
	if len(first) != 1 || len(second) != 1 || first[0] != second[0] {
		t.Errorf("cached scan differs: %v vs %v", first, second)
	}
}
