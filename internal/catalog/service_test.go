package catalog

import (
	"context"
	"testing"
	"time"

	"broodcore/internal/staticdata"
)

func newTestService(t *testing.T, opts ...Option) *Service {
	t.Helper()
	svc, err := NewService(staticdata.MustDefault(), opts...)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestNewServiceRejectsNilRegistry(t *testing.T) {
	if _, err := NewService(nil); err == nil {
		t.Fatal("expected error for nil registry")
	}
}

func TestServiceDelegatesQueries(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	reg := svc.Registry()

	fae, _ := svc.FindBreed("Fae")
	guardian, _ := svc.FindBreed("Guardian")
	if got, ok := svc.AreCompatible(ctx, fae, guardian); !ok || !got {
		t.Errorf("AreCompatible(Fae, Guardian) = %v, %v", got, ok)
	}
	if sizes, ok := svc.NestSizes(ctx, fae, guardian); !ok || len(sizes) == 0 {
		t.Errorf("NestSizes(Fae, Guardian) = %v, %v", sizes, ok)
	}
	wantLen, _ := reg.Wheel().RangeLength(3, 40)
	if got, ok := svc.RangeLength(ctx, 3, 40); !ok || got != wantLen {
		t.Errorf("RangeLength(3, 40) = %d, %v; want %d", got, ok, wantLen)
	}
	if seq, ok := svc.RangeSequence(ctx, 3, 5); !ok || len(seq) != 3 {
		t.Errorf("RangeSequence(3, 5) = %v, %v", seq, ok)
	}
	if in, ok := svc.InRange(ctx, 3, 5, 4); !ok || !in {
		t.Errorf("InRange(3, 5, 4) = %v, %v", in, ok)
	}
	if in, ok := svc.SubrangeInRange(ctx, 3, 10, 4, 9); !ok || !in {
		t.Errorf("SubrangeInRange(3, 10, 4, 9) = %v, %v", in, ok)
	}
	if genes := svc.AvailableGenes(ctx, SlotPrimary, fae); len(genes) == 0 {
		t.Error("AvailableGenes(primary, Fae) empty")
	}

	// Outcome probabilities line up with the breed rarities.
	imperial, _ := svc.FindBreed("Imperial")
	p, ok := svc.BreedOutcomeProbability(ctx, fae, imperial, imperial)
	if !ok || p != 0.01 {
		t.Errorf("BreedOutcomeProbability(Plentiful x Rare, Rare) = %v, %v; want 0.01", p, ok)
	}
	probs, ok := svc.RarityOutcome(ctx, Plentiful, Rare)
	if !ok || probs != [2]float64{0.99, 0.01} {
		t.Errorf("RarityOutcome(Plentiful, Rare) = %v, %v", probs, ok)
	}

	basic, _ := svc.FindGene(SlotPrimary, "Basic")
	if id, ok := svc.GeneSiteID(ctx, SlotPrimary, basic, fae); !ok || id != 0 {
		t.Errorf("GeneSiteID(primary Basic, Fae) = %d, %v; want 0", id, ok)
	}
	if p, ok := svc.GeneOutcomeProbability(ctx, SlotPrimary, basic, basic, basic); !ok || p != 1 {
		t.Errorf("GeneOutcomeProbability(Basic, Basic, Basic) = %v, %v; want 1", p, ok)
	}
}

func TestServiceRecordsMetricsPerOperation(t *testing.T) {
	rec := NewExpvarMetricsRecorder("")
	now := time.Unix(0, 0)
	clock := func() time.Time {
		now = now.Add(2 * time.Millisecond)
		return now
	}
	svc := newTestService(t, WithMetrics(rec), WithClock(clock))
	ctx := context.Background()

	if _, ok := svc.AreCompatible(ctx, 0, 0); !ok {
		t.Fatal("self pairing should resolve")
	}
	if _, ok := svc.AreCompatible(ctx, -1, 0); ok {
		t.Fatal("negative position should be absent")
	}

	snap := rec.Snapshot()
	results := snap.Results["catalog.are_compatible"]
	if results["success"] != 1 || results["error"] != 1 {
		t.Errorf("result counters = %v, want one success and one error", results)
	}
	if snap.DurationsMS["catalog.are_compatible"] <= 0 {
		t.Errorf("durations = %v, want positive total", snap.DurationsMS)
	}
}

func TestServiceTracesAbsentResults(t *testing.T) {
	tracer := NewJSONTracer(nil)
	svc := newTestService(t, WithTracer(tracer))
	ctx := context.Background()

	if _, ok := svc.RangeLength(ctx, 0, 9999); ok {
		t.Fatal("out-of-range colour should be absent")
	}
	if _, ok := svc.RangeLength(ctx, 0, 1); !ok {
		t.Fatal("adjacent colours should resolve")
	}

	entries := tracer.Entries()
	if len(entries) != 2 {
		t.Fatalf("span count = %d, want 2", len(entries))
	}
	if entries[0].Status != "error" || entries[0].Error == "" {
		t.Errorf("absent span = %+v, want error status", entries[0])
	}
	if entries[1].Status != "success" || entries[1].Error != "" {
		t.Errorf("present span = %+v, want success status", entries[1])
	}
	for _, e := range entries {
		if e.Operation != "catalog.range_length" {
			t.Errorf("span operation = %q", e.Operation)
		}
	}
}

func TestServiceCollectionsAreCopies(t *testing.T) {
	svc := newTestService(t)
	breeds := svc.Breeds()
	name := breeds[0].Name
	breeds[0].Name = "Mutated"
	if svc.Breeds()[0].Name != name {
		t.Error("Breeds() shares backing storage with callers")
	}
}
