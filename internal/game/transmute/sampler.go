package transmute

import (
	"math/rand/v2"
	"sort"
	"strconv"
)

// Roller — источник случайности движка. Интерфейс позволяет подменить RNG
// детерминированной последовательностью в тестах.
type Roller interface {
	// IntN возвращает равномерное число в [0, n). n должен быть > 0.
	IntN(n int) int
}

type pcgRoller struct {
	rng *rand.Rand
}

func (r *pcgRoller) IntN(n int) int {
	return r.rng.IntN(n)
}

// NewSeededRoller возвращает детерминированный Roller на базе PCG.
func NewSeededRoller(seed uint64) Roller {
	return &pcgRoller{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// roll1toN возвращает равномерное число в [1, n].
func roll1toN(r Roller, n int) int {
	return r.IntN(n) + 1
}

// WhitelistRow — operator-curated запись whitelist: включённый enchant
// с метаданными группы, ранга, минимального item level и веса.
type WhitelistRow struct {
	EnchantID    int32
	GroupKey     string
	Rank         int16
	MinItemLevel int32
	Weight       int32
}

// EffectiveGroupKey возвращает ключ группы; пустой group_key означает,
// что enchant — singleton-группа сам по себе.
func (r WhitelistRow) EffectiveGroupKey() string {
	if r.GroupKey != "" {
		return r.GroupKey
	}
	return strconv.FormatInt(int64(r.EnchantID), 10)
}

// eligible возвращает true если строка участвует в roll для данного item level.
func (r WhitelistRow) eligible(itemLevel int32) bool {
	return r.Weight > 0 && r.MinItemLevel <= itemLevel
}

// EligibleGroupWeights собирает веса групп, доступных для данного item level.
// Вес группы — максимум весов её строк: несколько рангов одной группы
// не должны умножать её шансы. Группы из exclude пропускаются.
func EligibleGroupWeights(pool []WhitelistRow, itemLevel int32, exclude map[string]struct{}) map[string]int32 {
	weights := make(map[string]int32)
	for _, row := range pool {
		if !row.eligible(itemLevel) {
			continue
		}
		key := row.EffectiveGroupKey()
		if _, skip := exclude[key]; skip {
			continue
		}
		if w, ok := weights[key]; !ok || row.Weight > w {
			weights[key] = row.Weight
		}
	}
	return weights
}

// PickWeightedGroup выбирает группу из pool взвешенным броском.
//
// Бросок — равномерное число в [1, totalWeight]; группы обходятся в порядке
// возрастания ключа (стабильный детерминированный порядок), выбирается первая,
// чей накопленный вес >= броска. Возвращает ("", false) если ни одна группа
// не eligible.
func PickWeightedGroup(pool []WhitelistRow, itemLevel int32, exclude map[string]struct{}, r Roller) (string, bool) {
	weights := EligibleGroupWeights(pool, itemLevel, exclude)
	if len(weights) == 0 {
		return "", false
	}

	keys := make([]string, 0, len(weights))
	var total int32
	for key, w := range weights {
		keys = append(keys, key)
		total += w
	}
	if total <= 0 {
		return "", false
	}
	sort.Strings(keys)

	draw := int32(roll1toN(r, int(total)))
	var running int32
	for _, key := range keys {
		running += weights[key]
		if draw <= running {
			return key, true
		}
	}
	// Недостижимо: draw <= total == сумма всех весов.
	return keys[len(keys)-1], true
}

// PickRankInGroup выбирает enchant ID внутри группы: равномерно по числу
// eligible строк (по индексу, не по весу — "1 шанс на каждый ранг").
// Возвращает (0, false) если eligible строк нет.
func PickRankInGroup(pool []WhitelistRow, itemLevel int32, groupKey string, r Roller) (int32, bool) {
	var eligible []int32
	for _, row := range pool {
		if !row.eligible(itemLevel) {
			continue
		}
		if row.EffectiveGroupKey() != groupKey {
			continue
		}
		eligible = append(eligible, row.EnchantID)
	}
	if len(eligible) == 0 {
		return 0, false
	}
	return eligible[r.IntN(len(eligible))], true
}
