package domain

import "testing"

func TestAreCompatible(t *testing.T) {
	reg := newTestRegistry(t)
	fae, _ := reg.FindBreed("Fae")
	guardian, _ := reg.FindBreed("Guardian")
	aberration, _ := reg.FindBreed("Aberration")
	aether, _ := reg.FindBreed("Aether")

	cases := []struct {
		name     string
		one, two int
		want     bool
	}{
		{"modern pair", fae, guardian, true},
		{"modern self", fae, fae, true},
		{"different ancients", aberration, aether, false},
		{"ancient self", aberration, aberration, true},
		{"modern with ancient", fae, aberration, false},
	}
	for _, tc := range cases {
		got, ok := reg.AreCompatible(tc.one, tc.two)
		if !ok {
			t.Errorf("%s: absent result", tc.name)
			continue
		}
		if got != tc.want {
			t.Errorf("%s: AreCompatible(%d,%d) = %v, want %v", tc.name, tc.one, tc.two, got, tc.want)
		}
		// Compatibility never depends on argument order.
		rev, ok := reg.AreCompatible(tc.two, tc.one)
		if !ok || rev != got {
			t.Errorf("%s: asymmetric compatibility: %v vs %v", tc.name, got, rev)
		}
	}
}

func TestAreCompatibleInvalid(t *testing.T) {
	reg := newTestRegistry(t)
	if _, ok := reg.AreCompatible(-1, 0); ok {
		t.Error("negative breed position should be absent")
	}
	if _, ok := reg.AreCompatible(0, len(reg.Breeds())); ok {
		t.Error("breed position past end should be absent")
	}
}

func TestNestSizes(t *testing.T) {
	reg := newTestRegistry(t)
	fae, _ := reg.FindBreed("Fae")
	guardian, _ := reg.FindBreed("Guardian")
	aberration, _ := reg.FindBreed("Aberration")
	aether, _ := reg.FindBreed("Aether")

	same, ok := reg.NestSizes(fae, fae)
	if !ok {
		t.Fatal("identical modern pair should resolve")
	}
	if same[0].Probability != 0.1 {
		t.Fatalf("identical modern pair should use the same-breed distribution, got %v", same)
	}

	mixed, ok := reg.NestSizes(fae, guardian)
	if !ok {
		t.Fatal("different modern pair should resolve")
	}
	if mixed[0].Probability != 0.2 {
		t.Fatalf("different modern pair should use the mixed distribution, got %v", mixed)
	}

	// An ancient breed paired with itself still uses the mixed distribution;
	// only an identical modern pairing selects the same-breed table.
	ancientSelf, ok := reg.NestSizes(aberration, aberration)
	if !ok {
		t.Fatal("identical ancient pair should resolve")
	}
	if ancientSelf[0].Probability != 0.2 {
		t.Fatalf("identical ancient pair should use the mixed distribution, got %v", ancientSelf)
	}

	if _, ok := reg.NestSizes(aberration, aether); ok {
		t.Error("incompatible pairing should be absent")
	}
	if _, ok := reg.NestSizes(fae, -1); ok {
		t.Error("invalid position should be absent")
	}
}

func TestNestSizesReturnsCopy(t *testing.T) {
	reg := newTestRegistry(t)
	fae, _ := reg.FindBreed("Fae")
	dist, ok := reg.NestSizes(fae, fae)
	if !ok {
		t.Fatal("expected distribution")
	}
	dist[0].Probability = 99
	again, _ := reg.NestSizes(fae, fae)
	if again[0].Probability == 99 {
		t.Fatal("registry distribution mutated through returned slice")
	}
}

func TestAvailableGenesBasicEverywhere(t *testing.T) {
	reg := newTestRegistry(t)
	breeds := reg.Breeds()
	for _, slot := range Slots() {
		basic, ok := reg.FindGene(slot, "Basic")
		if !ok {
			t.Fatalf("slot %s is missing Basic", slot)
		}
		if !containsPosition(reg.AvailableGenes(slot, -1), basic) {
			t.Errorf("unfiltered %s sequence should include Basic", slot)
		}
		for b := range breeds {
			if !containsPosition(reg.AvailableGenes(slot, b), basic) {
				t.Errorf("Basic (%s) should be available on breed %s", slot, breeds[b].Name)
			}
		}
	}
}

func TestAvailableGenesFiltering(t *testing.T) {
	reg := newTestRegistry(t)
	fae, _ := reg.FindBreed("Fae")
	aberration, _ := reg.FindBreed("Aberration")
	aether, _ := reg.FindBreed("Aether")

	iridescent, _ := reg.FindGene(SlotPrimary, "Iridescent")
	starmap, _ := reg.FindGene(SlotPrimary, "Starmap")

	modern := reg.AvailableGenes(SlotPrimary, fae)
	if !containsPosition(modern, iridescent) || !containsPosition(modern, starmap) {
		t.Errorf("modern breed should carry all modern-context genes, got %v", modern)
	}

	// Aberration has no Starmap or Iridescent context key; only Basic remains.
	got := reg.AvailableGenes(SlotPrimary, aberration)
	if len(got) != 1 {
		t.Fatalf("aberration primaries = %v, want only Basic", got)
	}

	// Aether carries Starmap through its own position key.
	aetherGenes := reg.AvailableGenes(SlotPrimary, aether)
	if !containsPosition(aetherGenes, starmap) {
		t.Errorf("aether should carry Starmap, got %v", aetherGenes)
	}
	if containsPosition(aetherGenes, iridescent) {
		t.Errorf("aether should not carry Iridescent, got %v", aetherGenes)
	}
}

func TestAvailableGenesOrderAndFallback(t *testing.T) {
	reg := newTestRegistry(t)
	all := reg.AvailableGenes(SlotSecondary, 999)
	if len(all) != len(reg.Genes(SlotSecondary)) {
		t.Fatalf("unresolvable breed should yield every position, got %v", all)
	}
	for i := 1; i < len(all); i++ {
		if all[i] <= all[i-1] {
			t.Fatalf("positions not in stored order: %v", all)
		}
	}
	if got := reg.AvailableGenes(GeneSlot("quaternary"), 0); len(got) != 0 {
		t.Fatalf("unknown slot should yield an empty sequence, got %v", got)
	}
}

func containsPosition(positions []int, want int) bool {
	for _, p := range positions {
		if p == want {
			return true
		}
	}
	return false
}
