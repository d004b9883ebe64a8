package data

import (
	"testing"

	"github.com/udisondev/la2forge/internal/model"
)

func catalogTemplates() []*model.ItemTemplate {
	return []*model.ItemTemplate{
		{ItemID: 100, Name: "Worn Sword", Type: model.ItemTypeWeapon, SubType: "SWORD", BodyPart: "rhand", ItemLevel: 10},
		{ItemID: 101, Name: "Short Sword", Type: model.ItemTypeWeapon, SubType: "SWORD", BodyPart: "rhand", ItemLevel: 20},
		{ItemID: 102, Name: "Long Sword", Type: model.ItemTypeWeapon, SubType: "SWORD", BodyPart: "rhand", ItemLevel: 25},
		{ItemID: 103, Name: "Claymore", Type: model.ItemTypeWeapon, SubType: "SWORD", BodyPart: "rhand", ItemLevel: 40},
		{ItemID: 201, Name: "Hunting Bow", Type: model.ItemTypeWeapon, SubType: "BOW", BodyPart: "rhand", ItemLevel: 22},
		{ItemID: 401, Name: "Tunic", Type: model.ItemTypeArmor, SubType: "LIGHT", BodyPart: "chest", ItemLevel: 20},
		// Не gear: контейнер и расходник в индексы не попадают.
		{ItemID: 900, Name: "Bag", Type: model.ItemTypeEtcItem, SubType: "NONE", BodyPart: "bag"},
		{ItemID: 901, Name: "Potion", Type: model.ItemTypeConsumable, SubType: "NONE", BodyPart: "none"},
	}
}

func TestIndexesSortedAndGearOnly(t *testing.T) {
	t.Parallel()

	c := NewCatalog(catalogTemplates())

	byClass := c.IndexByClass()
	if _, ok := byClass[model.ItemTypeEtcItem]; ok {
		t.Error("non-gear class present in class index")
	}
	weapons := byClass[model.ItemTypeWeapon]
	if len(weapons) != 5 {
		t.Fatalf("weapon refs = %d, want 5", len(weapons))
	}
	for i := 1; i < len(weapons); i++ {
		if weapons[i-1].Level > weapons[i].Level {
			t.Fatalf("class index not sorted: %v", weapons)
		}
	}

	byType := c.IndexByTypeKey()
	swords := byType[TypeKey{Class: model.ItemTypeWeapon, SubType: "SWORD", BodyPart: "rhand"}]
	if len(swords) != 4 {
		t.Fatalf("sword refs = %d, want 4", len(swords))
	}
	for i := 1; i < len(swords); i++ {
		if swords[i-1].Level > swords[i].Level {
			t.Fatalf("type index not sorted: %v", swords)
		}
	}
}

func TestUpgradeCandidates(t *testing.T) {
	t.Parallel()

	c := NewCatalog(catalogTemplates())
	tmpl := c.Lookup(101) // Short Sword, level 20

	tests := []struct {
		name     string
		maxDelta int32
		want     []int32
	}{
		{name: "window covers two", maxDelta: 5, want: []int32{201, 102}},
		{name: "window covers all higher", maxDelta: 30, want: []int32{201, 102, 103}},
		{name: "zero delta excludes self", maxDelta: 0, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := c.UpgradeCandidates(tmpl, tt.maxDelta)
			assertIDSet(t, got, tt.want)
		})
	}
}

func TestUpgradeCandidatesSameClassOnly(t *testing.T) {
	t.Parallel()

	c := NewCatalog(catalogTemplates())

	// Tunic level 20, армор-класс без кандидатов выше.
	got := c.UpgradeCandidates(c.Lookup(401), 30)
	if len(got) != 0 {
		t.Errorf("armor upgrade candidates = %v, want none", got)
	}

	if got := c.UpgradeCandidates(nil, 5); got != nil {
		t.Errorf("nil template candidates = %v, want nil", got)
	}
}

func TestDowngradeCandidates(t *testing.T) {
	t.Parallel()

	c := NewCatalog(catalogTemplates())

	// Long Sword level 25: строго ниже того же точного типа — 10 и 20.
	// Лук level 22 не считается: другой subclass.
	got := c.DowngradeCandidates(c.Lookup(102))
	assertIDSet(t, got, []int32{100, 101})

	// Самый низкий ранг: даунгрейдить некуда.
	if got := c.DowngradeCandidates(c.Lookup(100)); len(got) != 0 {
		t.Errorf("lowest tier downgrade candidates = %v, want none", got)
	}

	// Level 0 — вне tier-системы.
	zero := &model.ItemTemplate{ItemID: 999, Type: model.ItemTypeWeapon, SubType: "SWORD", BodyPart: "rhand"}
	if got := c.DowngradeCandidates(zero); got != nil {
		t.Errorf("level-0 downgrade candidates = %v, want nil", got)
	}
}

// assertIDSet сверяет кандидатов без учёта порядка: равные item level
// сортируются недетерминированно.
func assertIDSet(t *testing.T, got, want []int32) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("candidates = %v, want %v", got, want)
	}
	set := make(map[int32]bool, len(got))
	for _, id := range got {
		set[id] = true
	}
	for _, id := range want {
		if !set[id] {
			t.Fatalf("candidates = %v, want %v", got, want)
		}
	}
}
