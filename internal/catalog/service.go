// Package catalog exposes the reference-data registry behind an instrumented
// service. The registry is immutable; the service layers per-operation
// metrics and tracing on top and is what adapters and commands consume.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"broodcore/pkg/domain"
)

// ErrAbsent marks a query that referenced an entry outside the dataset.
// Absent references are not failures of the service; the sentinel exists so
// tracing can distinguish them from present results.
var ErrAbsent = errors.New("catalog: referenced entry absent from dataset")

// Service wraps a frozen registry with observability hooks. The zero value
// is not usable; construct with NewService.
type Service struct {
	registry *domain.Registry
	metrics  MetricsRecorder
	tracer   Tracer
	clock    func() time.Time
}

// Option customises service construction.
type Option func(*Service)

// WithMetrics attaches a metrics recorder invoked once per query.
func WithMetrics(rec MetricsRecorder) Option {
	return func(s *Service) { s.metrics = rec }
}

// WithTracer attaches a tracer spanning each query.
func WithTracer(tr Tracer) Option {
	return func(s *Service) { s.tracer = tr }
}

// WithClock overrides the time source used for durations. Intended for tests.
func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// NewService wraps the supplied registry.
func NewService(reg *domain.Registry, opts ...Option) (*Service, error) {
	if reg == nil {
		return nil, fmt.Errorf("catalog: registry must not be nil")
	}
	svc := &Service{
		registry: reg,
		clock:    time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// Registry exposes the underlying registry for callers that need raw access,
// such as exporters walking whole collections.
func (s *Service) Registry() *domain.Registry {
	return s.registry
}

// instrument opens a span and returns the completion callback. Present
// results count as success; an absent reference ends the span with ErrAbsent.
func (s *Service) instrument(ctx context.Context, operation string) (context.Context, func(present bool)) {
	start := s.clock()
	var span TraceSpan
	if s.tracer != nil {
		ctx, span = s.tracer.Start(ctx, operation)
	}
	return ctx, func(present bool) {
		if s.metrics != nil {
			s.metrics.Observe(ctx, operation, present, s.clock().Sub(start))
		}
		if span != nil {
			var err error
			if !present {
				err = ErrAbsent
			}
			span.End(err)
		}
	}
}

// Breeds returns a copy of the breed collection.
func (s *Service) Breeds() []Breed { return s.registry.Breeds() }

// Genes returns a copy of the gene collection for a slot.
func (s *Service) Genes(slot GeneSlot) []Gene { return s.registry.Genes(slot) }

// Colours returns a copy of the colour wheel collection.
func (s *Service) Colours() []Colour { return s.registry.Colours() }

// Eyes returns a copy of the eye type collection.
func (s *Service) Eyes() []EyeType { return s.registry.Eyes() }

// FindBreed resolves a breed position by case-insensitive name.
func (s *Service) FindBreed(name string) (int, bool) { return s.registry.FindBreed(name) }

// FindColour resolves a colour position by case-insensitive name.
func (s *Service) FindColour(name string) (int, bool) { return s.registry.FindColour(name) }

// FindGene resolves a gene position by slot and case-insensitive name.
func (s *Service) FindGene(slot GeneSlot, name string) (int, bool) {
	return s.registry.FindGene(slot, name)
}

// AreCompatible reports whether two breeds can pair.
func (s *Service) AreCompatible(ctx context.Context, one, two int) (bool, bool) {
	_, done := s.instrument(ctx, "catalog.are_compatible")
	compatible, ok := s.registry.AreCompatible(one, two)
	done(ok)
	return compatible, ok
}

// NestSizes returns the nest-size distribution for a breed pairing.
func (s *Service) NestSizes(ctx context.Context, one, two int) ([]NestSize, bool) {
	_, done := s.instrument(ctx, "catalog.nest_sizes")
	sizes, ok := s.registry.NestSizes(one, two)
	done(ok)
	return sizes, ok
}

// AvailableGenes lists gene positions available to a breed within a slot.
func (s *Service) AvailableGenes(ctx context.Context, slot GeneSlot, breed int) []int {
	_, done := s.instrument(ctx, "catalog.available_genes")
	genes := s.registry.AvailableGenes(slot, breed)
	done(genes != nil)
	return genes
}

// GeneSiteID translates a gene position to its on-site identifier for a breed.
func (s *Service) GeneSiteID(ctx context.Context, slot GeneSlot, gene, breed int) (int, bool) {
	_, done := s.instrument(ctx, "catalog.gene_site_id")
	id, ok := s.registry.GeneSiteID(slot, gene, breed)
	done(ok)
	return id, ok
}

// RarityOutcome returns the pass-down probabilities for a rarity pairing,
// ordered to match the argument order.
func (s *Service) RarityOutcome(ctx context.Context, a, b RarityTier) ([2]float64, bool) {
	_, done := s.instrument(ctx, "catalog.rarity_outcome")
	probs, ok := domain.RarityOutcomeProbabilities(a, b)
	done(ok)
	return probs, ok
}

// BreedOutcomeProbability returns the probability that the target breed is
// passed down when the two given breeds pair.
func (s *Service) BreedOutcomeProbability(ctx context.Context, one, two, target int) (float64, bool) {
	_, done := s.instrument(ctx, "catalog.breed_outcome")
	p, ok := s.registry.BreedOutcomeProbability(one, two, target)
	done(ok)
	return p, ok
}

// GeneOutcomeProbability returns the probability that the target gene within
// a slot is passed down when the two given genes pair.
func (s *Service) GeneOutcomeProbability(ctx context.Context, slot GeneSlot, one, two, target int) (float64, bool) {
	_, done := s.instrument(ctx, "catalog.gene_outcome")
	p, ok := s.registry.GeneOutcomeProbability(slot, one, two, target)
	done(ok)
	return p, ok
}

// RangeLength returns the inclusive length of the shortest arc between two
// colour positions.
func (s *Service) RangeLength(ctx context.Context, one, two int) (int, bool) {
	_, done := s.instrument(ctx, "catalog.range_length")
	length, ok := s.registry.Wheel().RangeLength(one, two)
	done(ok)
	return length, ok
}

// InRange reports whether the target colour lies on the shortest arc between
// the two endpoints.
func (s *Service) InRange(ctx context.Context, one, two, target int) (bool, bool) {
	_, done := s.instrument(ctx, "catalog.in_range")
	in, ok := s.registry.Wheel().InRange(one, two, target)
	done(ok)
	return in, ok
}

// SubrangeInRange reports whether the inner colour range lies entirely within
// the outer one.
func (s *Service) SubrangeInRange(ctx context.Context, outerOne, outerTwo, innerOne, innerTwo int) (bool, bool) {
	_, done := s.instrument(ctx, "catalog.subrange_in_range")
	in, ok := s.registry.Wheel().SubrangeInRange(outerOne, outerTwo, innerOne, innerTwo)
	done(ok)
	return in, ok
}

// RangeSequence returns the colour positions along the shortest arc between
// two endpoints, in arc order.
func (s *Service) RangeSequence(ctx context.Context, one, two int) ([]int, bool) {
	_, done := s.instrument(ctx, "catalog.range_sequence")
	seq, ok := s.registry.Wheel().RangeSequence(one, two)
	done(ok)
	return seq, ok
}
