// Package domain defines the immutable reference entities and pure query
// primitives of the breeding core: breeds, genes, colours, eye types, rarity
// outcome lookups, and circular colour-wheel arithmetic.
package domain

// BreedKind partitions breeds into the two pairing families recognised on site.
type BreedKind string

// Breed kinds. Modern breeds interbreed freely; Ancient breeds only pair
// within their own breed.
const (
	// KindModern identifies a modern breed.
	KindModern BreedKind = "modern"
	// KindAncient identifies an ancient breed.
	KindAncient BreedKind = "ancient"
)

// GeneSlot identifies one of the three independent gene collections.
type GeneSlot string

// Gene slots. The three collections are disjoint; a gene name may recur
// across slots but each record belongs to exactly one.
const (
	SlotPrimary   GeneSlot = "primary"
	SlotSecondary GeneSlot = "secondary"
	SlotTertiary  GeneSlot = "tertiary"
)

// Slots lists the gene slots in canonical order.
func Slots() []GeneSlot {
	return []GeneSlot{SlotPrimary, SlotSecondary, SlotTertiary}
}

// Breed is an immutable breed record. Breeds are identified by their position
// in the registry's breed sequence; the on-site ID exists only for
// translating to and from site URLs.
type Breed struct {
	Name     string     `json:"name"`
	OnSiteID int        `json:"on_site_id"`
	Kind     BreedKind  `json:"kind"`
	Rarity   RarityTier `json:"rarity"`
}

// RarityTier implements RarityBearer.
func (b Breed) RarityTier() RarityTier { return b.Rarity }

// BreedContext keys a gene's site-ID mapping. Ancient breeds are keyed by
// their own registry position; all modern breeds share the single
// ContextModern marker.
type BreedContext int

// ContextModern is the shared site-ID context for every modern breed.
const ContextModern BreedContext = -1

// Gene is an immutable gene record. Availability on a breed is defined by
// presence of that breed's context key in the site-ID mapping.
type Gene struct {
	Name    string               `json:"name"`
	Rarity  RarityTier           `json:"rarity"`
	SiteIDs map[BreedContext]int `json:"site_ids"`
}

// RarityTier implements RarityBearer.
func (g Gene) RarityTier() RarityTier { return g.Rarity }

// AvailableOn reports whether the gene can appear on the breed at position
// breed within breeds. Modern breeds check the shared modern marker; ancient
// breeds check their own position key.
func (g Gene) AvailableOn(breeds []Breed, breed int) bool {
	_, ok := g.SiteIDFor(breeds, breed)
	return ok
}

// SiteIDFor resolves the gene's on-site ID in the context of the breed at
// position breed. The second return is false when the breed position is out
// of range or the gene is unavailable on that breed.
func (g Gene) SiteIDFor(breeds []Breed, breed int) (int, bool) {
	if breed < 0 || breed >= len(breeds) {
		return 0, false
	}
	key := BreedContext(breed)
	if breeds[breed].Kind == KindModern {
		key = ContextModern
	}
	id, ok := g.SiteIDs[key]
	return id, ok
}

// Colour is an immutable colour-wheel entry. The hex value carries no "#"
// prefix. Position within the wheel is the identity; the stored order IS the
// on-site adjacency and must never be resorted.
type Colour struct {
	Name     string `json:"name"`
	OnSiteID int    `json:"on_site_id"`
	Hex      string `json:"hex"`
}

// EyeType is an immutable eye-type record. A probability of zero marks a type
// that cannot be produced through breeding.
type EyeType struct {
	Name        string  `json:"name"`
	OnSiteID    int     `json:"on_site_id"`
	Probability float64 `json:"probability"`
}

// NestSize pairs an egg count with its probability within a nest-size
// distribution.
type NestSize struct {
	Eggs        int     `json:"eggs"`
	Probability float64 `json:"probability"`
}
