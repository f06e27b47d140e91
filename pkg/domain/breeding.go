package domain

// AreCompatible reports whether the breeds at the two positions can produce a
// nest together: both modern, or both references denoting the same ancient
// breed. The second return is false when either position is out of range.
func (r *Registry) AreCompatible(one, two int) (bool, bool) {
	a, ok := r.Breed(one)
	if !ok {
		return false, false
	}
	b, ok := r.Breed(two)
	if !ok {
		return false, false
	}
	if a.Kind == KindModern && b.Kind == KindModern {
		return true, true
	}
	return a.Kind == KindAncient && one == two, true
}

// NestSizes returns the nest-size distribution for a pairing of the two
// breeds. Only an identical modern pair uses the same-breed distribution; a
// different-breed modern pair and an identical ancient pair both use the
// mixed distribution. This asymmetry mirrors the on-site rules and is
// deliberate. Absent when the pairing is incompatible or a position is
// invalid.
func (r *Registry) NestSizes(one, two int) ([]NestSize, bool) {
	compatible, ok := r.AreCompatible(one, two)
	if !ok || !compatible {
		return nil, false
	}
	if one == two && r.breeds[one].Kind == KindModern {
		return append([]NestSize(nil), r.sameNest...), true
	}
	return append([]NestSize(nil), r.mixedNest...), true
}

// BreedOutcomeProbability returns the probability that a hatchling inherits
// the breed at position target when the breeds at the first two positions
// pair. Absent when any position is out of range.
func (r *Registry) BreedOutcomeProbability(one, two, target int) (float64, bool) {
	return OutcomeProbability(r.breeds, one, two, target)
}

// GeneOutcomeProbability is BreedOutcomeProbability over the genes of a slot.
// Absent for an unknown slot or an out-of-range position.
func (r *Registry) GeneOutcomeProbability(slot GeneSlot, one, two, target int) (float64, bool) {
	genes, ok := r.genes[slot]
	if !ok {
		return 0, false
	}
	return OutcomeProbability(genes, one, two, target)
}

// AvailableGenes returns the positions of genes in slot that the breed at
// position breed can carry, in stored (alphabetical) order. An unknown slot
// yields an empty sequence. A breed position that does not resolve yields
// every gene position in the slot, unfiltered.
func (r *Registry) AvailableGenes(slot GeneSlot, breed int) []int {
	genes, ok := r.genes[slot]
	if !ok {
		return nil
	}
	out := make([]int, 0, len(genes))
	if breed < 0 || breed >= len(r.breeds) {
		for i := range genes {
			out = append(out, i)
		}
		return out
	}
	for i, g := range genes {
		if g.AvailableOn(r.breeds, breed) {
			out = append(out, i)
		}
	}
	return out
}
