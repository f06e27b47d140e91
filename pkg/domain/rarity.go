package domain

import "strings"

// RarityTier orders entities by scarcity. The zero value is the most
// plentiful tier; higher values are scarcer.
type RarityTier int

// Rarity tiers in increasing scarcity order.
const (
	Plentiful RarityTier = iota
	Common
	Uncommon
	Limited
	Rare
)

// Valid reports whether the tier is one of the five defined values.
func (t RarityTier) Valid() bool {
	return t >= Plentiful && t <= Rare
}

func (t RarityTier) String() string {
	switch t {
	case Plentiful:
		return "Plentiful"
	case Common:
		return "Common"
	case Uncommon:
		return "Uncommon"
	case Limited:
		return "Limited"
	case Rare:
		return "Rare"
	default:
		return "Unknown"
	}
}

// ParseRarityTier resolves a tier from its case-insensitive name.
func ParseRarityTier(name string) (RarityTier, bool) {
	for t := Plentiful; t <= Rare; t++ {
		if strings.EqualFold(t.String(), name) {
			return t, true
		}
	}
	return 0, false
}

// rarityOutcomes stores the outcome table for its triangular half only:
// entries exist for pairs where the first tier is no scarcer than the second.
// Lookups for the reversed ordering reverse a copy of the stored pair; the
// table itself is shared read-only state.
var rarityOutcomes = map[[2]RarityTier][2]float64{
	{Plentiful, Plentiful}: {0.50, 0.50},
	{Plentiful, Common}:    {0.70, 0.30},
	{Plentiful, Uncommon}:  {0.85, 0.15},
	{Plentiful, Limited}:   {0.96, 0.04},
	{Plentiful, Rare}:      {0.99, 0.01},
	{Common, Common}:       {0.50, 0.50},
	{Common, Uncommon}:     {0.75, 0.25},
	{Common, Limited}:      {0.90, 0.10},
	{Common, Rare}:         {0.97, 0.03},
	{Uncommon, Uncommon}:   {0.50, 0.50},
	{Uncommon, Limited}:    {0.85, 0.15},
	{Uncommon, Rare}:       {0.94, 0.06},
	{Limited, Limited}:     {0.50, 0.50},
	{Limited, Rare}:        {0.85, 0.15},
	{Rare, Rare}:           {0.50, 0.50},
}

// RarityOutcomeProbabilities returns the probability that an entity of tier a
// is selected over one of tier b, and vice versa. The two components are
// non-negative and sum to 1. The second return is false only when either
// tier lies outside the five-value enumeration.
//
// Symmetry law: RarityOutcomeProbabilities(a, b) equals the reversal of
// RarityOutcomeProbabilities(b, a).
func RarityOutcomeProbabilities(a, b RarityTier) ([2]float64, bool) {
	if !a.Valid() || !b.Valid() {
		return [2]float64{}, false
	}
	if pair, ok := rarityOutcomes[[2]RarityTier{a, b}]; ok {
		return pair, true
	}
	pair, ok := rarityOutcomes[[2]RarityTier{b, a}]
	if !ok {
		return [2]float64{}, false
	}
	return [2]float64{pair[1], pair[0]}, true
}

// RarityBearer is satisfied by any entity carrying a rarity tier. Breed and
// Gene both qualify, which lets outcome comparisons apply to either.
type RarityBearer interface {
	RarityTier() RarityTier
}

// OutcomeProbability returns the probability that the candidate at position
// target is the selected outcome when the candidates at positions one and two
// are compared. The result is 0 when target matches neither compared
// position and 1 for the degenerate self-comparison (one == two == target).
// The second return is false when either compared position is out of bounds
// or a referenced candidate carries an invalid tier.
func OutcomeProbability[T RarityBearer](candidates []T, one, two, target int) (float64, bool) {
	if one < 0 || one >= len(candidates) || two < 0 || two >= len(candidates) {
		return 0, false
	}
	if target != one && target != two {
		return 0, true
	}
	if one == two {
		return 1, true
	}
	pair, ok := RarityOutcomeProbabilities(candidates[one].RarityTier(), candidates[two].RarityTier())
	if !ok {
		return 0, false
	}
	if target == one {
		return pair[0], true
	}
	return pair[1], true
}
