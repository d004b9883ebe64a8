package model

import "testing"

func swordTemplate() *ItemTemplate {
	return &ItemTemplate{
		ItemID:    101,
		Name:      "Short Sword",
		Type:      ItemTypeWeapon,
		SubType:   "SWORD",
		BodyPart:  "rhand",
		ItemLevel: 20,
	}
}

func TestNewItemValidation(t *testing.T) {
	t.Parallel()

	if _, err := NewItem(1, 101, 7, 1, nil); err == nil {
		t.Error("NewItem accepted nil template")
	}
	if _, err := NewItem(1, 101, 7, 0, swordTemplate()); err == nil {
		t.Error("NewItem accepted zero count")
	}

	item, err := NewItem(1, 101, 7, 1, swordTemplate())
	if err != nil {
		t.Fatalf("NewItem: %v", err)
	}
	if item.Location() != ItemLocationInventory || item.Slot() != -1 {
		t.Errorf("new item placed at %s/%d, want unplaced inventory", item.Location(), item.Slot())
	}
	if item.IsEquipped() {
		t.Error("unplaced item reports equipped")
	}
}

func TestItemEnchantSlots(t *testing.T) {
	t.Parallel()

	item, err := NewItem(1, 101, 7, 1, swordTemplate())
	if err != nil {
		t.Fatalf("NewItem: %v", err)
	}

	item.SetEnchant(SlotPermanent, 500)
	item.SetEnchant(SlotBonus2, 11002)
	if got := item.EnchantID(SlotPermanent); got != 500 {
		t.Errorf("permanent = %d, want 500", got)
	}
	if got := item.EnchantID(SlotBonus2); got != 11002 {
		t.Errorf("bonus2 = %d, want 11002", got)
	}
	if got := item.EnchantID(SlotBonus1); got != 0 {
		t.Errorf("untouched slot = %d, want 0", got)
	}

	item.ClearEnchant(SlotBonus2)
	if got := item.EnchantID(SlotBonus2); got != 0 {
		t.Errorf("cleared slot = %d, want 0", got)
	}

	// Вне диапазона — молчаливый no-op.
	item.SetEnchant(EnchantSlotCount, 1)
	item.SetEnchant(-1, 1)
	if got := item.EnchantID(EnchantSlotCount); got != 0 {
		t.Errorf("out-of-range read = %d, want 0", got)
	}
}

func TestItemSetCount(t *testing.T) {
	t.Parallel()

	item, err := NewItem(1, 101, 7, 3, swordTemplate())
	if err != nil {
		t.Fatalf("NewItem: %v", err)
	}

	if err := item.SetCount(-1); err == nil {
		t.Error("SetCount accepted negative value")
	}
	if err := item.SetCount(0); err != nil {
		t.Errorf("SetCount(0) = %v, want nil (empty stack before destroy)", err)
	}
}

func TestItemIsEquippedRequiresPaperdoll(t *testing.T) {
	t.Parallel()

	item, err := NewItem(1, 101, 7, 1, swordTemplate())
	if err != nil {
		t.Fatalf("NewItem: %v", err)
	}

	item.SetLocation(ItemLocationInventory, 3)
	if item.IsEquipped() {
		t.Error("bag item reports equipped")
	}

	item.SetLocation(ItemLocationPaperdoll, PaperdollRHand)
	if !item.IsEquipped() {
		t.Error("paperdoll item not equipped")
	}

	item.SetLocation(ItemLocationVoid, -1)
	if item.IsEquipped() {
		t.Error("void item reports equipped")
	}
}
