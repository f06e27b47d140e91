package staticdata

import (
	"testing"

	"broodcore/pkg/domain"
)

func TestDefaultRegistryBuilds(t *testing.T) {
	reg, err := Default()
	if err != nil {
		t.Fatalf("compiled-in dataset rejected: %v", err)
	}
	if reg == nil {
		t.Fatal("nil registry")
	}
	// Default is memoised; a second call must return the same instance.
	again, err := Default()
	if err != nil || again != reg {
		t.Fatalf("Default not memoised: %p vs %p (%v)", reg, again, err)
	}
}

func TestColourWheelShape(t *testing.T) {
	reg := MustDefault()
	wheel := reg.Wheel()
	if len(wheel) != 181 {
		t.Fatalf("colour count = %d, want 181", len(wheel))
	}
	peridot, ok := reg.FindColour("Peridot")
	if !ok {
		t.Fatal("Peridot missing from wheel")
	}
	seafoam, ok := reg.FindColour("Seafoam")
	if !ok {
		t.Fatal("Seafoam missing from wheel")
	}
	length, ok := wheel.RangeLength(peridot, seafoam)
	if !ok || length != 23 {
		t.Fatalf("RangeLength(Peridot, Seafoam) = %d, %v; want 23", length, ok)
	}
	// Wheel ends are adjacent.
	length, ok = wheel.RangeLength(0, len(wheel)-1)
	if !ok || length != 2 {
		t.Fatalf("RangeLength(first, last) = %d, %v; want 2", length, ok)
	}
}

func TestDocumentedBreedPairings(t *testing.T) {
	reg := MustDefault()
	fae, ok := reg.FindBreed("Fae")
	if !ok {
		t.Fatal("Fae missing")
	}
	guardian, ok := reg.FindBreed("Guardian")
	if !ok {
		t.Fatal("Guardian missing")
	}
	aberration, ok := reg.FindBreed("Aberration")
	if !ok {
		t.Fatal("Aberration missing")
	}
	aether, ok := reg.FindBreed("Aether")
	if !ok {
		t.Fatal("Aether missing")
	}
	if got, ok := reg.AreCompatible(fae, guardian); !ok || !got {
		t.Errorf("Fae x Guardian should be compatible, got %v, %v", got, ok)
	}
	if got, ok := reg.AreCompatible(aberration, aether); !ok || got {
		t.Errorf("Aberration x Aether should be incompatible, got %v, %v", got, ok)
	}
}

func TestBasicGeneAvailableEverywhere(t *testing.T) {
	reg := MustDefault()
	breeds := reg.Breeds()
	for _, slot := range domain.Slots() {
		basic, ok := reg.FindGene(slot, "Basic")
		if !ok {
			t.Fatalf("slot %s missing Basic", slot)
		}
		for b := range breeds {
			id, ok := reg.GeneSiteID(slot, basic, b)
			if !ok || id != 0 {
				t.Errorf("Basic (%s) on %s: site ID %d, %v; want 0", slot, breeds[b].Name, id, ok)
			}
		}
	}
}

// Every ancient breed should carry at least one gene beyond Basic in at
// least one slot, otherwise the spec rows above drifted out of date.
func TestAncientBreedsHaveGenes(t *testing.T) {
	reg := MustDefault()
	breeds := reg.Breeds()
	for b, breed := range breeds {
		if breed.Kind != domain.KindAncient {
			continue
		}
		total := 0
		for _, slot := range domain.Slots() {
			total += len(reg.AvailableGenes(slot, b))
		}
		if total <= 3 {
			t.Errorf("ancient breed %s only carries Basic genes", breed.Name)
		}
	}
}

func TestEyeProbabilitiesPlausible(t *testing.T) {
	reg := MustDefault()
	var sum float64
	zeros := 0
	for _, e := range reg.Eyes() {
		sum += e.Probability
		if e.Probability == 0 {
			zeros++
		}
	}
	if sum < 0.999999 || sum > 1.000001 {
		t.Errorf("eye probabilities sum to %v", sum)
	}
	if zeros == 0 {
		t.Error("expected at least one unobtainable eye type")
	}
}
