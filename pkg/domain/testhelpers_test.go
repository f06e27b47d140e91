package domain

import "testing"

// testDataset builds a small but fully valid dataset: two ancient breeds,
// three modern breeds, an eight-colour wheel, and a handful of genes per
// slot. Ancient context keys reference breed positions in the alphabetical
// order below (Aberration=0, Aether=1).
func testDataset() Dataset {
	return Dataset{
		Breeds: []Breed{
			{Name: "Aberration", OnSiteID: 22, Kind: KindAncient, Rarity: Common},
			{Name: "Aether", OnSiteID: 23, Kind: KindAncient, Rarity: Uncommon},
			{Name: "Fae", OnSiteID: 1, Kind: KindModern, Rarity: Plentiful},
			{Name: "Guardian", OnSiteID: 2, Kind: KindModern, Rarity: Plentiful},
			{Name: "Imperial", OnSiteID: 8, Kind: KindModern, Rarity: Rare},
		},
		Genes: map[GeneSlot][]Gene{
			SlotPrimary: {
				{Name: "Basic", Rarity: Plentiful, SiteIDs: map[BreedContext]int{ContextModern: 0, 0: 0, 1: 0}},
				{Name: "Iridescent", Rarity: Common, SiteIDs: map[BreedContext]int{ContextModern: 21}},
				{Name: "Starmap", Rarity: Rare, SiteIDs: map[BreedContext]int{ContextModern: 89, 1: 212}},
			},
			SlotSecondary: {
				{Name: "Basic", Rarity: Plentiful, SiteIDs: map[BreedContext]int{ContextModern: 0, 0: 0, 1: 0}},
				{Name: "Constellation", Rarity: Rare, SiteIDs: map[BreedContext]int{ContextModern: 92, 1: 213}},
				{Name: "Shimmer", Rarity: Common, SiteIDs: map[BreedContext]int{ContextModern: 22}},
			},
			SlotTertiary: {
				{Name: "Basic", Rarity: Plentiful, SiteIDs: map[BreedContext]int{ContextModern: 0, 0: 0, 1: 0}},
				{Name: "Ghost", Rarity: Uncommon, SiteIDs: map[BreedContext]int{ContextModern: 24, 0: 199}},
				{Name: "Underbelly", Rarity: Common, SiteIDs: map[BreedContext]int{ContextModern: 23}},
			},
		},
		Colours: []Colour{
			{Name: "White", OnSiteID: 2, Hex: "ffffff"},
			{Name: "Ice", OnSiteID: 3, Hex: "ebefff"},
			{Name: "Silver", OnSiteID: 5, Hex: "bbbabf"},
			{Name: "Grey", OnSiteID: 6, Hex: "808080"},
			{Name: "Charcoal", OnSiteID: 8, Hex: "45434b"},
			{Name: "Black", OnSiteID: 10, Hex: "252525"},
			{Name: "Obsidian", OnSiteID: 11, Hex: "1e1130"},
			{Name: "Midnight", OnSiteID: 14, Hex: "2b168c"},
		},
		Eyes: []EyeType{
			{Name: "Common", OnSiteID: 0, Probability: 0.458},
			{Name: "Rare", OnSiteID: 3, Probability: 0.091},
			{Name: "Swirl", OnSiteID: 11, Probability: 0},
		},
		SameBreedNest: []NestSize{
			{Eggs: 1, Probability: 0.1},
			{Eggs: 2, Probability: 0.3},
			{Eggs: 3, Probability: 0.4},
			{Eggs: 4, Probability: 0.2},
		},
		MixedNest: []NestSize{
			{Eggs: 1, Probability: 0.2},
			{Eggs: 2, Probability: 0.4},
			{Eggs: 3, Probability: 0.3},
			{Eggs: 4, Probability: 0.1},
		},
	}
}

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	reg, err := NewRegistry(testDataset())
	if err != nil {
		t.Fatalf("build registry: %v", err)
	}
	return reg
}
