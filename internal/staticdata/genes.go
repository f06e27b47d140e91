package staticdata

import (
	"fmt"

	"broodcore/pkg/domain"
)

// geneSpec is the source-of-truth row for a gene. Ancient availability is
// written against breed names and resolved to registry positions when the
// dataset is built, so reordering the breed list cannot silently corrupt the
// context keys.
type geneSpec struct {
	name     string
	rarity   domain.RarityTier
	modern   int // modern-context site ID; -1 when the gene never appears on moderns
	ancients map[string]int
}

// Every slot opens with the synthetic Basic gene: site ID 0 in the modern
// context and in every ancient context.
var basicSpec = geneSpec{name: "Basic", rarity: domain.Plentiful, modern: 0, ancients: allAncientsZero()}

func allAncientsZero() map[string]int {
	out := make(map[string]int)
	for _, b := range breeds {
		if b.Kind == domain.KindAncient {
			out[b.Name] = 0
		}
	}
	return out
}

var primarySpecs = []geneSpec{
	basicSpec,
	{name: "Cherub", rarity: domain.Uncommon, modern: 72, ancients: map[string]int{"Banescale": 268}},
	{name: "Clown", rarity: domain.Common, modern: 3, ancients: map[string]int{"Gaoler": 295, "Sandsurge": 412}},
	{name: "Crystal", rarity: domain.Rare, modern: 7, ancients: map[string]int{"Aberration": 301, "Everlux": 501}},
	{name: "Fade", rarity: domain.Common, modern: 41, ancients: map[string]int{"Aberration": 302, "Banescale": 269, "Gaoler": 296, "Undertide": 371}},
	{name: "Giraffe", rarity: domain.Uncommon, modern: 12, ancients: map[string]int{"Dusthide": 452}},
	{name: "Iridescent", rarity: domain.Common, modern: 21},
	{name: "Jaguar", rarity: domain.Uncommon, modern: 147, ancients: map[string]int{"Auraboa": 431, "Sandsurge": 413}},
	{name: "Jupiter", rarity: domain.Uncommon, modern: 91, ancients: map[string]int{"Aether": 391}},
	{name: "Metallic", rarity: domain.Rare, modern: 17, ancients: map[string]int{"Banescale": 270}},
	{name: "Mosaic", rarity: domain.Uncommon, modern: 58, ancients: map[string]int{"Aether": 392, "Sandsurge": 414}},
	{name: "Petals", rarity: domain.Rare, modern: 92, ancients: map[string]int{"Auraboa": 432}},
	{name: "Piebald", rarity: domain.Common, modern: 53, ancients: map[string]int{"Gaoler": 297}},
	{name: "Pinstripe", rarity: domain.Limited, modern: 86, ancients: map[string]int{"Undertide": 372}},
	{name: "Poison", rarity: domain.Limited, modern: 38, ancients: map[string]int{"Veilspun": 341}},
	{name: "Python", rarity: domain.Limited, modern: 23, ancients: map[string]int{"Aberration": 303}},
	{name: "Ragged", rarity: domain.Uncommon, modern: 97, ancients: map[string]int{"Banescale": 271}},
	{name: "Ripple", rarity: domain.Uncommon, modern: 22, ancients: map[string]int{"Undertide": 373}},
	{name: "Skink", rarity: domain.Limited, modern: 69, ancients: map[string]int{"Veilspun": 342}},
	{name: "Speckle", rarity: domain.Common, modern: 142, ancients: map[string]int{"Everlux": 502}},
	{name: "Starmap", rarity: domain.Rare, modern: 89, ancients: map[string]int{"Aether": 393}},
	{name: "Tapir", rarity: domain.Common, modern: 70, ancients: map[string]int{"Gaoler": 298}},
	{name: "Tiger", rarity: domain.Common, modern: 1, ancients: map[string]int{"Banescale": 272}},
	{name: "Vipera", rarity: domain.Plentiful, modern: 13, ancients: map[string]int{"Veilspun": 343}},
	{name: "Wasp", rarity: domain.Rare, modern: 20, ancients: map[string]int{"Aberration": 304, "Auraboa": 433}},
}

var secondarySpecs = []geneSpec{
	basicSpec,
	{name: "Bee", rarity: domain.Rare, modern: 93, ancients: map[string]int{"Aberration": 311, "Auraboa": 441}},
	{name: "Butterfly", rarity: domain.Rare, modern: 73, ancients: map[string]int{"Veilspun": 351}},
	{name: "Clouded", rarity: domain.Common, modern: 4, ancients: map[string]int{"Gaoler": 305, "Sandsurge": 421}},
	{name: "Constellation", rarity: domain.Rare, modern: 90, ancients: map[string]int{"Aether": 401}},
	{name: "Current", rarity: domain.Uncommon, modern: 24, ancients: map[string]int{"Undertide": 381}},
	{name: "Daub", rarity: domain.Uncommon, modern: 59, ancients: map[string]int{"Aberration": 312}},
	{name: "Edged", rarity: domain.Common, modern: 143, ancients: map[string]int{"Everlux": 511}},
	{name: "Eye Spots", rarity: domain.Common, modern: 5, ancients: map[string]int{"Gaoler": 306}},
	{name: "Facet", rarity: domain.Rare, modern: 8, ancients: map[string]int{"Everlux": 512}},
	{name: "Flair", rarity: domain.Uncommon, modern: 148, ancients: map[string]int{"Auraboa": 442}},
	{name: "Freckle", rarity: domain.Common, modern: 54, ancients: map[string]int{"Banescale": 281}},
	{name: "Hex", rarity: domain.Uncommon, modern: 42, ancients: map[string]int{"Aberration": 313, "Veilspun": 352}},
	{name: "Hypnotic", rarity: domain.Uncommon, modern: 14, ancients: map[string]int{"Dusthide": 461}},
	{name: "Jester", rarity: domain.Rare, modern: 94, ancients: map[string]int{"Banescale": 282}},
	{name: "Noxtide", rarity: domain.Uncommon, modern: 98, ancients: map[string]int{"Undertide": 382}},
	{name: "Paint", rarity: domain.Common, modern: 55, ancients: map[string]int{"Gaoler": 307}},
	{name: "Peregrine", rarity: domain.Common, modern: 71, ancients: map[string]int{"Banescale": 283}},
	{name: "Rosette", rarity: domain.Uncommon, modern: 149, ancients: map[string]int{"Auraboa": 443, "Sandsurge": 422}},
	{name: "Safari", rarity: domain.Uncommon, modern: 150, ancients: map[string]int{"Auraboa": 444}},
	{name: "Saturn", rarity: domain.Uncommon, modern: 92, ancients: map[string]int{"Aether": 402}},
	{name: "Seraph", rarity: domain.Rare, modern: 159, ancients: map[string]int{"Banescale": 284}},
	{name: "Shimmer", rarity: domain.Common, modern: 22},
	{name: "Stripes", rarity: domain.Common, modern: 2, ancients: map[string]int{"Gaoler": 308}},
	{name: "Toxin", rarity: domain.Limited, modern: 39, ancients: map[string]int{"Veilspun": 353}},
	{name: "Trail", rarity: domain.Limited, modern: 87, ancients: map[string]int{"Gaoler": 309, "Undertide": 383}},
}

var tertiarySpecs = []geneSpec{
	basicSpec,
	{name: "Capsule", rarity: domain.Limited, modern: 63, ancients: map[string]int{"Undertide": 391}},
	{name: "Circuit", rarity: domain.Rare, modern: 46, ancients: map[string]int{"Aether": 411}},
	{name: "Contour", rarity: domain.Common, modern: 77, ancients: map[string]int{"Aberration": 321}},
	{name: "Crackle", rarity: domain.Uncommon, modern: 95, ancients: map[string]int{"Veilspun": 361}},
	{name: "Filigree", rarity: domain.Rare, modern: 74, ancients: map[string]int{"Banescale": 291}},
	{name: "Firefly", rarity: domain.Limited, modern: 61, ancients: map[string]int{"Aberration": 322, "Everlux": 521}},
	{name: "Gembond", rarity: domain.Uncommon, modern: 16, ancients: map[string]int{"Everlux": 522}},
	{name: "Ghost", rarity: domain.Uncommon, modern: 24, ancients: map[string]int{"Aberration": 323, "Gaoler": 315}},
	{name: "Glimmer", rarity: domain.Rare, modern: 26, ancients: map[string]int{"Everlux": 523}},
	{name: "Koi", rarity: domain.Rare, modern: 100, ancients: map[string]int{"Auraboa": 451}},
	{name: "Lace", rarity: domain.Uncommon, modern: 44, ancients: map[string]int{"Banescale": 292}},
	{name: "Okapi", rarity: domain.Uncommon, modern: 103, ancients: map[string]int{"Auraboa": 452, "Sandsurge": 431}},
	{name: "Opal", rarity: domain.Rare, modern: 64, ancients: map[string]int{"Gaoler": 316}},
	{name: "Points", rarity: domain.Common, modern: 107, ancients: map[string]int{"Aether": 412}},
	{name: "Ringlets", rarity: domain.Uncommon, modern: 40, ancients: map[string]int{"Banescale": 293}},
	{name: "Runes", rarity: domain.Uncommon, modern: 60, ancients: map[string]int{"Veilspun": 362}},
	{name: "Scales", rarity: domain.Uncommon, modern: 15, ancients: map[string]int{"Aberration": 324}},
	{name: "Smirch", rarity: domain.Limited, modern: 110, ancients: map[string]int{"Dusthide": 471}},
	{name: "Smoke", rarity: domain.Uncommon, modern: 11, ancients: map[string]int{"Gaoler": 317}},
	{name: "Spines", rarity: domain.Common, modern: 18, ancients: map[string]int{"Sandsurge": 432}},
	{name: "Stained", rarity: domain.Rare, modern: 69, ancients: map[string]int{"Dusthide": 472}},
	{name: "Thylacine", rarity: domain.Common, modern: 112, ancients: map[string]int{"Gaoler": 318, "Sandsurge": 433}},
	{name: "Underbelly", rarity: domain.Common, modern: 23, ancients: map[string]int{"Banescale": 294, "Undertide": 392}},
	{name: "Veined", rarity: domain.Common, modern: 56, ancients: map[string]int{"Aberration": 325}},
}

// buildGenes resolves spec rows into gene records keyed by registry position.
func buildGenes(specs []geneSpec) ([]domain.Gene, error) {
	positions := make(map[string]int, len(breeds))
	for i, b := range breeds {
		positions[b.Name] = i
	}
	out := make([]domain.Gene, 0, len(specs))
	for _, spec := range specs {
		ids := make(map[domain.BreedContext]int, len(spec.ancients)+1)
		if spec.modern >= 0 {
			ids[domain.ContextModern] = spec.modern
		}
		for name, sid := range spec.ancients {
			pos, ok := positions[name]
			if !ok {
				return nil, fmt.Errorf("gene %s references unknown breed %s", spec.name, name)
			}
			if breeds[pos].Kind != domain.KindAncient {
				return nil, fmt.Errorf("gene %s references non-ancient breed %s by name", spec.name, name)
			}
			ids[domain.BreedContext(pos)] = sid
		}
		out = append(out, domain.Gene{Name: spec.name, Rarity: spec.rarity, SiteIDs: ids})
	}
	return out, nil
}
