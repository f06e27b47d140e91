package catalog

import "broodcore/pkg/domain"

// Aliases re-export the reference-data types so adapters can depend on the
// catalog package alone.
type (
	Breed        = domain.Breed
	BreedKind    = domain.BreedKind
	BreedContext = domain.BreedContext
	Gene         = domain.Gene
	GeneSlot     = domain.GeneSlot
	Colour       = domain.Colour
	Wheel        = domain.Wheel
	EyeType      = domain.EyeType
	NestSize     = domain.NestSize
	RarityTier   = domain.RarityTier
	Dataset      = domain.Dataset
	Registry     = domain.Registry
)

const (
	KindModern  = domain.KindModern
	KindAncient = domain.KindAncient

	SlotPrimary   = domain.SlotPrimary
	SlotSecondary = domain.SlotSecondary
	SlotTertiary  = domain.SlotTertiary

	Plentiful = domain.Plentiful
	Common    = domain.Common
	Uncommon  = domain.Uncommon
	Limited   = domain.Limited
	Rare      = domain.Rare
)

// ParseRarityTier resolves a tier from its case-insensitive name.
func ParseRarityTier(name string) (RarityTier, bool) {
	return domain.ParseRarityTier(name)
}
