package model

// ItemTemplate — шаблон предмета из reference catalog.
// Содержит статичные характеристики для создания конкретных Item.
// Каталог read-only: движок индексирует шаблоны, но никогда их не меняет.
type ItemTemplate struct {
	ItemID int32  // Template ID (unique)
	Name   string // Item name (e.g., "Short Sword", "Leather Shirt")
	Type   ItemType

	// SubType уточняет класс: weapon type ("SWORD","BLUNT","BOW","DAGGER",...)
	// или armor type ("HEAVY","LIGHT","MAGIC","NONE").
	SubType string

	// BodyPart — слот экипировки ("rhand","lhand","chest","legs","head","feet",
	// "gloves","neck","rear","lear","rfinger","lfinger","under","back").
	// Пустая строка или "none" — предмет нельзя надеть; "bag" — контейнер.
	BodyPart string

	// ItemLevel — ранг предмета. Управляет eligibility в whitelist
	// и выбором upgrade/downgrade кандидатов.
	ItemLevel int32
}

// ItemType определяет категорию предмета.
type ItemType int32

const (
	ItemTypeWeapon ItemType = iota
	ItemTypeArmor
	ItemTypeConsumable
	ItemTypeQuestItem
	ItemTypeEtcItem
)

// String returns human-readable item type name.
func (it ItemType) String() string {
	switch it {
	case ItemTypeWeapon:
		return "Weapon"
	case ItemTypeArmor:
		return "Armor"
	case ItemTypeConsumable:
		return "Consumable"
	case ItemTypeQuestItem:
		return "QuestItem"
	case ItemTypeEtcItem:
		return "EtcItem"
	default:
		return "Unknown"
	}
}

// IsWeapon returns true if this template is a weapon.
func (t *ItemTemplate) IsWeapon() bool {
	return t.Type == ItemTypeWeapon
}

// IsArmor returns true if this template is armor.
func (t *ItemTemplate) IsArmor() bool {
	return t.Type == ItemTypeArmor
}

// IsEquippableGear returns true if the template describes gear that can occupy
// an equipment slot. Containers and non-equippable items are excluded.
func (t *ItemTemplate) IsEquippableGear() bool {
	switch t.BodyPart {
	case "", "none", "bag":
		return false
	}
	return t.Type == ItemTypeWeapon || t.Type == ItemTypeArmor
}

// PaperdollSlot returns the paperdoll slot index for this template's body part,
// or -1 if the template is not equippable.
func (t *ItemTemplate) PaperdollSlot() int32 {
	switch t.BodyPart {
	case "rhand", "lrhand":
		return PaperdollRHand
	case "lhand":
		return PaperdollLHand
	case "chest", "onepiece":
		return PaperdollChest
	case "legs":
		return PaperdollLegs
	case "head":
		return PaperdollHead
	case "feet":
		return PaperdollFeet
	case "gloves":
		return PaperdollGloves
	case "neck":
		return PaperdollNeck
	case "rear":
		return PaperdollREar
	case "lear":
		return PaperdollLEar
	case "rfinger":
		return PaperdollRFinger
	case "lfinger":
		return PaperdollLFinger
	case "under":
		return PaperdollUnder
	case "back":
		return PaperdollCloak
	default:
		return -1
	}
}
