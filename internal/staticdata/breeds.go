package staticdata

import "broodcore/pkg/domain"

// breeds lists every breed in alphabetical order. Position in this slice is
// the breed's identity everywhere in the core; the on-site ID only matters
// for URL translation.
var breeds = []domain.Breed{
	{Name: "Aberration", OnSiteID: 20, Kind: domain.KindAncient, Rarity: domain.Common},
	{Name: "Aether", OnSiteID: 22, Kind: domain.KindAncient, Rarity: domain.Uncommon},
	{Name: "Auraboa", OnSiteID: 24, Kind: domain.KindAncient, Rarity: domain.Common},
	{Name: "Banescale", OnSiteID: 18, Kind: domain.KindAncient, Rarity: domain.Uncommon},
	{Name: "Bogsneak", OnSiteID: 14, Kind: domain.KindModern, Rarity: domain.Uncommon},
	{Name: "Coatl", OnSiteID: 12, Kind: domain.KindModern, Rarity: domain.Rare},
	{Name: "Dusthide", OnSiteID: 25, Kind: domain.KindAncient, Rarity: domain.Limited},
	{Name: "Everlux", OnSiteID: 26, Kind: domain.KindAncient, Rarity: domain.Rare},
	{Name: "Fae", OnSiteID: 1, Kind: domain.KindModern, Rarity: domain.Plentiful},
	{Name: "Fathom", OnSiteID: 15, Kind: domain.KindModern, Rarity: domain.Uncommon},
	{Name: "Gaoler", OnSiteID: 17, Kind: domain.KindAncient, Rarity: domain.Limited},
	{Name: "Guardian", OnSiteID: 2, Kind: domain.KindModern, Rarity: domain.Plentiful},
	{Name: "Imperial", OnSiteID: 8, Kind: domain.KindModern, Rarity: domain.Rare},
	{Name: "Mirror", OnSiteID: 3, Kind: domain.KindModern, Rarity: domain.Plentiful},
	{Name: "Nocturne", OnSiteID: 11, Kind: domain.KindModern, Rarity: domain.Limited},
	{Name: "Obelisk", OnSiteID: 16, Kind: domain.KindModern, Rarity: domain.Rare},
	{Name: "Pearlcatcher", OnSiteID: 4, Kind: domain.KindModern, Rarity: domain.Common},
	{Name: "Ridgeback", OnSiteID: 5, Kind: domain.KindModern, Rarity: domain.Common},
	{Name: "Sandsurge", OnSiteID: 23, Kind: domain.KindAncient, Rarity: domain.Common},
	{Name: "Skydancer", OnSiteID: 13, Kind: domain.KindModern, Rarity: domain.Uncommon},
	{Name: "Snapper", OnSiteID: 9, Kind: domain.KindModern, Rarity: domain.Common},
	{Name: "Spiral", OnSiteID: 7, Kind: domain.KindModern, Rarity: domain.Common},
	{Name: "Tundra", OnSiteID: 6, Kind: domain.KindModern, Rarity: domain.Plentiful},
	{Name: "Undertide", OnSiteID: 21, Kind: domain.KindAncient, Rarity: domain.Limited},
	{Name: "Veilspun", OnSiteID: 19, Kind: domain.KindAncient, Rarity: domain.Rare},
	{Name: "Wildclaw", OnSiteID: 10, Kind: domain.KindModern, Rarity: domain.Rare},
}
