// Package staticdata carries the compiled-in reference dataset and builds
// the process-wide frozen registry from it. The collections here are inert
// data; every invariant over them is enforced by domain.NewRegistry and
// covered by tests.
package staticdata

import (
	"fmt"
	"sync"

	"broodcore/pkg/domain"
)

// Dataset assembles the raw collections. It resolves gene specs against the
// breed list, so it can fail if a spec row names an unknown breed.
func Dataset() (domain.Dataset, error) {
	genes := make(map[domain.GeneSlot][]domain.Gene, 3)
	for slot, specs := range map[domain.GeneSlot][]geneSpec{
		domain.SlotPrimary:   primarySpecs,
		domain.SlotSecondary: secondarySpecs,
		domain.SlotTertiary:  tertiarySpecs,
	} {
		built, err := buildGenes(specs)
		if err != nil {
			return domain.Dataset{}, fmt.Errorf("%s slot: %w", slot, err)
		}
		genes[slot] = built
	}
	return domain.Dataset{
		Breeds:        breeds,
		Genes:         genes,
		Colours:       colours,
		Eyes:          eyes,
		SameBreedNest: sameBreedNest,
		MixedNest:     mixedNest,
	}, nil
}

var (
	defaultOnce     sync.Once
	defaultRegistry *domain.Registry
	defaultErr      error
)

// Default returns the process-wide registry built from the compiled-in
// dataset. The registry is immutable, so sharing one instance across
// goroutines is safe.
func Default() (*domain.Registry, error) {
	defaultOnce.Do(func() {
		ds, err := Dataset()
		if err != nil {
			defaultErr = err
			return
		}
		defaultRegistry, defaultErr = domain.NewRegistry(ds)
	})
	return defaultRegistry, defaultErr
}

// MustDefault is Default for contexts where a malformed compiled-in dataset
// is unrecoverable (main functions, tests).
func MustDefault() *domain.Registry {
	reg, err := Default()
	if err != nil {
		panic(fmt.Sprintf("staticdata: %v", err))
	}
	return reg
}
