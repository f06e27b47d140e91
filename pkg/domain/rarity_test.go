package domain

import "testing"

func TestRarityOutcomeSymmetry(t *testing.T) {
	tiers := []RarityTier{Plentiful, Common, Uncommon, Limited, Rare}
	for _, a := range tiers {
		for _, b := range tiers {
			fwd, ok := RarityOutcomeProbabilities(a, b)
			if !ok {
				t.Fatalf("RarityOutcomeProbabilities(%v,%v) absent", a, b)
			}
			rev, ok := RarityOutcomeProbabilities(b, a)
			if !ok {
				t.Fatalf("RarityOutcomeProbabilities(%v,%v) absent", b, a)
			}
			if fwd[0] != rev[1] || fwd[1] != rev[0] {
				t.Errorf("symmetry broken for (%v,%v): %v vs %v", a, b, fwd, rev)
			}
			if sum := fwd[0] + fwd[1]; sum < 0.999999 || sum > 1.000001 {
				t.Errorf("probabilities for (%v,%v) sum to %v", a, b, sum)
			}
			if fwd[0] < 0 || fwd[1] < 0 {
				t.Errorf("negative probability for (%v,%v): %v", a, b, fwd)
			}
		}
	}
}

func TestRarityOutcomePinnedValues(t *testing.T) {
	got, ok := RarityOutcomeProbabilities(Plentiful, Rare)
	if !ok || got != [2]float64{0.99, 0.01} {
		t.Fatalf("RarityOutcomeProbabilities(Plentiful, Rare) = %v, %v; want (0.99, 0.01)", got, ok)
	}
	got, ok = RarityOutcomeProbabilities(Rare, Plentiful)
	if !ok || got != [2]float64{0.01, 0.99} {
		t.Fatalf("RarityOutcomeProbabilities(Rare, Plentiful) = %v, %v; want (0.01, 0.99)", got, ok)
	}
}

// The reversed lookup must operate on a copy: a reversed query must never
// flip the stored triangular entry for later callers.
func TestRarityOutcomeTableNotMutated(t *testing.T) {
	if _, ok := RarityOutcomeProbabilities(Rare, Plentiful); !ok {
		t.Fatal("reversed lookup absent")
	}
	got, ok := RarityOutcomeProbabilities(Plentiful, Rare)
	if !ok || got != [2]float64{0.99, 0.01} {
		t.Fatalf("stored entry changed after reversed lookup: %v, %v", got, ok)
	}
}

func TestRarityOutcomeInvalidTier(t *testing.T) {
	if _, ok := RarityOutcomeProbabilities(RarityTier(9), Common); ok {
		t.Error("expected absent result for out-of-range first tier")
	}
	if _, ok := RarityOutcomeProbabilities(Common, RarityTier(-1)); ok {
		t.Error("expected absent result for out-of-range second tier")
	}
}

func TestOutcomeProbabilityDegenerate(t *testing.T) {
	candidates := []Breed{{Name: "Fae", Kind: KindModern, Rarity: Common}}
	got, ok := OutcomeProbability(candidates, 0, 0, 0)
	if !ok || got != 1 {
		t.Fatalf("OutcomeProbability(self, self, self) = %v, %v; want 1", got, ok)
	}
}

func TestOutcomeProbabilityTargetElsewhere(t *testing.T) {
	candidates := []Breed{
		{Name: "Fae", Kind: KindModern, Rarity: Plentiful},
		{Name: "Imperial", Kind: KindModern, Rarity: Rare},
		{Name: "Tundra", Kind: KindModern, Rarity: Plentiful},
	}
	got, ok := OutcomeProbability(candidates, 0, 1, 2)
	if !ok || got != 0 {
		t.Fatalf("target outside comparison should yield 0, got %v, %v", got, ok)
	}
}

func TestOutcomeProbabilitySelectsComponent(t *testing.T) {
	candidates := []Breed{
		{Name: "Fae", Kind: KindModern, Rarity: Plentiful},
		{Name: "Imperial", Kind: KindModern, Rarity: Rare},
	}
	first, ok := OutcomeProbability(candidates, 0, 1, 0)
	if !ok || first != 0.99 {
		t.Fatalf("probability for plentiful side = %v, %v; want 0.99", first, ok)
	}
	second, ok := OutcomeProbability(candidates, 0, 1, 1)
	if !ok || second != 0.01 {
		t.Fatalf("probability for rare side = %v, %v; want 0.01", second, ok)
	}
	// Same comparison with the positions swapped selects the mirrored component.
	swapped, ok := OutcomeProbability(candidates, 1, 0, 0)
	if !ok || swapped != 0.99 {
		t.Fatalf("swapped comparison = %v, %v; want 0.99", swapped, ok)
	}
}

func TestOutcomeProbabilityBounds(t *testing.T) {
	candidates := []Gene{
		{Name: "Basic", Rarity: Plentiful},
		{Name: "Crystal", Rarity: Rare},
	}
	if _, ok := OutcomeProbability(candidates, -1, 1, 1); ok {
		t.Error("negative index should be absent")
	}
	if _, ok := OutcomeProbability(candidates, 0, 2, 0); ok {
		t.Error("index past end should be absent")
	}
}

// Genes carry rarity too, so the same comparison applies to them unchanged.
func TestOutcomeProbabilityOverGenes(t *testing.T) {
	candidates := []Gene{
		{Name: "Basic", Rarity: Plentiful},
		{Name: "Crystal", Rarity: Rare},
	}
	got, ok := OutcomeProbability(candidates, 0, 1, 1)
	if !ok || got != 0.01 {
		t.Fatalf("gene comparison = %v, %v; want 0.01", got, ok)
	}
}

func TestOutcomeProbabilityInvalidRarity(t *testing.T) {
	candidates := []Breed{
		{Name: "Fae", Kind: KindModern, Rarity: Plentiful},
		{Name: "Broken", Kind: KindModern, Rarity: RarityTier(42)},
	}
	if _, ok := OutcomeProbability(candidates, 0, 1, 0); ok {
		t.Error("candidate with invalid tier should be absent")
	}
}
