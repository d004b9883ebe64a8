package model

// BonusStat — базовая характеристика персонажа, которую может повышать enchant.
type BonusStat int32

const (
	BonusStatNone BonusStat = iota
	BonusStatSTR
	BonusStatDEX
	BonusStatCON
	BonusStatINT
	BonusStatWIT
	BonusStatMEN
)

// String returns human-readable stat name.
func (s BonusStat) String() string {
	switch s {
	case BonusStatSTR:
		return "STR"
	case BonusStatDEX:
		return "DEX"
	case BonusStatCON:
		return "CON"
	case BonusStatINT:
		return "INT"
	case BonusStatWIT:
		return "WIT"
	case BonusStatMEN:
		return "MEN"
	default:
		return "None"
	}
}
