package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Dataset carries the raw collections a Registry is built from. Callers hand
// it to NewRegistry once; the registry clones everything it keeps.
type Dataset struct {
	Breeds        []Breed
	Genes         map[GeneSlot][]Gene
	Colours       []Colour
	Eyes          []EyeType
	SameBreedNest []NestSize
	MixedNest     []NestSize
}

// Registry is the frozen reference dataset. It is constructed once at load
// time and never mutated afterwards, so concurrent readers need no locking.
// Entities are identified by position within their collection.
type Registry struct {
	breeds    []Breed
	genes     map[GeneSlot][]Gene
	colours   Wheel
	eyes      []EyeType
	sameNest  []NestSize
	mixedNest []NestSize
}

// NewRegistry validates the dataset and returns a frozen registry. A
// malformed dataset is a programmer error, so unlike the query methods this
// constructor reports failures as errors.
func NewRegistry(ds Dataset) (*Registry, error) {
	if err := validateDataset(ds); err != nil {
		return nil, err
	}
	r := &Registry{
		breeds:    append([]Breed(nil), ds.Breeds...),
		genes:     make(map[GeneSlot][]Gene, len(ds.Genes)),
		colours:   append(Wheel(nil), ds.Colours...),
		eyes:      append([]EyeType(nil), ds.Eyes...),
		sameNest:  append([]NestSize(nil), ds.SameBreedNest...),
		mixedNest: append([]NestSize(nil), ds.MixedNest...),
	}
	for slot, genes := range ds.Genes {
		cloned := make([]Gene, len(genes))
		for i, g := range genes {
			cloned[i] = g
			cloned[i].SiteIDs = make(map[BreedContext]int, len(g.SiteIDs))
			for ctx, id := range g.SiteIDs {
				cloned[i].SiteIDs[ctx] = id
			}
		}
		r.genes[slot] = cloned
	}
	return r, nil
}

// Breeds returns a copy of the breed collection in stored (alphabetical) order.
func (r *Registry) Breeds() []Breed {
	return append([]Breed(nil), r.breeds...)
}

// Genes returns a copy of the gene collection for slot, or nil for an
// unknown slot.
func (r *Registry) Genes(slot GeneSlot) []Gene {
	genes, ok := r.genes[slot]
	if !ok {
		return nil
	}
	return append([]Gene(nil), genes...)
}

// Colours returns the colour wheel. The returned wheel is a copy; order is
// the on-site adjacency.
func (r *Registry) Colours() Wheel {
	return append(Wheel(nil), r.colours...)
}

// Wheel returns the colour wheel without copying, for query use. Callers
// must not mutate it.
func (r *Registry) Wheel() Wheel {
	return r.colours
}

// Eyes returns a copy of the eye-type collection.
func (r *Registry) Eyes() []EyeType {
	return append([]EyeType(nil), r.eyes...)
}

// Breed returns the breed at position i.
func (r *Registry) Breed(i int) (Breed, bool) {
	if i < 0 || i >= len(r.breeds) {
		return Breed{}, false
	}
	return r.breeds[i], true
}

// Gene returns the gene at position i within slot.
func (r *Registry) Gene(slot GeneSlot, i int) (Gene, bool) {
	genes, ok := r.genes[slot]
	if !ok || i < 0 || i >= len(genes) {
		return Gene{}, false
	}
	return genes[i], true
}

// Colour returns the colour at position i.
func (r *Registry) Colour(i int) (Colour, bool) {
	if i < 0 || i >= len(r.colours) {
		return Colour{}, false
	}
	return r.colours[i], true
}

// FindBreed resolves a breed position by case-insensitive name match.
func (r *Registry) FindBreed(name string) (int, bool) {
	for i, b := range r.breeds {
		if strings.EqualFold(b.Name, name) {
			return i, true
		}
	}
	return 0, false
}

// FindColour resolves a colour position by case-insensitive name match.
func (r *Registry) FindColour(name string) (int, bool) {
	for i, c := range r.colours {
		if strings.EqualFold(c.Name, name) {
			return i, true
		}
	}
	return 0, false
}

// FindGene resolves a gene position within slot by case-insensitive name match.
func (r *Registry) FindGene(slot GeneSlot, name string) (int, bool) {
	for i, g := range r.genes[slot] {
		if strings.EqualFold(g.Name, name) {
			return i, true
		}
	}
	return 0, false
}

// BreedByOnSiteID resolves a breed position from its on-site numeric ID.
func (r *Registry) BreedByOnSiteID(id int) (int, bool) {
	for i, b := range r.breeds {
		if b.OnSiteID == id {
			return i, true
		}
	}
	return 0, false
}

// ColourByOnSiteID resolves a colour position from its on-site numeric ID.
func (r *Registry) ColourByOnSiteID(id int) (int, bool) {
	for i, c := range r.colours {
		if c.OnSiteID == id {
			return i, true
		}
	}
	return 0, false
}

// GeneSiteID resolves the on-site ID of the gene at position gene within
// slot, in the context of the breed at position breed. Absent when the slot,
// gene, or breed reference is invalid or the gene is unavailable on the breed.
func (r *Registry) GeneSiteID(slot GeneSlot, gene, breed int) (int, bool) {
	g, ok := r.Gene(slot, gene)
	if !ok {
		return 0, false
	}
	return g.SiteIDFor(r.breeds, breed)
}

const basicGeneName = "Basic"

func validateDataset(ds Dataset) error {
	if len(ds.Breeds) == 0 {
		return fmt.Errorf("dataset: no breeds")
	}
	if len(ds.Colours) == 0 {
		return fmt.Errorf("dataset: no colours")
	}
	if err := uniqueNames("breed", breedNames(ds.Breeds)); err != nil {
		return err
	}
	if err := uniqueNames("colour", colourNames(ds.Colours)); err != nil {
		return err
	}
	if err := uniqueNames("eye type", eyeNames(ds.Eyes)); err != nil {
		return err
	}
	if !sort.SliceIsSorted(ds.Breeds, func(i, j int) bool {
		return ds.Breeds[i].Name < ds.Breeds[j].Name
	}) {
		return fmt.Errorf("dataset: breeds not in alphabetical order")
	}
	for _, b := range ds.Breeds {
		if b.Kind != KindModern && b.Kind != KindAncient {
			return fmt.Errorf("dataset: breed %s has unknown kind %q", b.Name, b.Kind)
		}
		if !b.Rarity.Valid() {
			return fmt.Errorf("dataset: breed %s has invalid rarity", b.Name)
		}
	}
	for _, c := range ds.Colours {
		if err := validateHex(c.Hex); err != nil {
			return fmt.Errorf("dataset: colour %s: %w", c.Name, err)
		}
	}
	for _, e := range ds.Eyes {
		if e.Probability < 0 || e.Probability > 1 {
			return fmt.Errorf("dataset: eye type %s has probability outside [0,1]", e.Name)
		}
	}
	for _, slot := range Slots() {
		genes, ok := ds.Genes[slot]
		if !ok || len(genes) == 0 {
			return fmt.Errorf("dataset: slot %s has no genes", slot)
		}
		if err := uniqueNames(string(slot)+" gene", geneNames(genes)); err != nil {
			return err
		}
		if !sort.SliceIsSorted(genes, func(i, j int) bool { return genes[i].Name < genes[j].Name }) {
			return fmt.Errorf("dataset: slot %s genes not in alphabetical order", slot)
		}
		for _, g := range genes {
			if !g.Rarity.Valid() {
				return fmt.Errorf("dataset: gene %s (%s) has invalid rarity", g.Name, slot)
			}
		}
		if err := validateBasicGene(slot, genes, ds.Breeds); err != nil {
			return err
		}
	}
	if err := validateNest("same-breed", ds.SameBreedNest); err != nil {
		return err
	}
	return validateNest("mixed", ds.MixedNest)
}

// validateBasicGene enforces the invariant that the synthetic Basic gene is
// available on every breed with site ID 0 in all contexts.
func validateBasicGene(slot GeneSlot, genes []Gene, breeds []Breed) error {
	for _, g := range genes {
		if g.Name != basicGeneName {
			continue
		}
		for i := range breeds {
			id, ok := g.SiteIDFor(breeds, i)
			if !ok {
				return fmt.Errorf("dataset: Basic gene (%s) unavailable on breed %s", slot, breeds[i].Name)
			}
			if id != 0 {
				return fmt.Errorf("dataset: Basic gene (%s) has non-zero site ID for breed %s", slot, breeds[i].Name)
			}
		}
		return nil
	}
	return fmt.Errorf("dataset: slot %s is missing the Basic gene", slot)
}

func validateNest(label string, dist []NestSize) error {
	if len(dist) == 0 {
		return fmt.Errorf("dataset: %s nest distribution empty", label)
	}
	var sum float64
	for _, n := range dist {
		if n.Eggs < 1 {
			return fmt.Errorf("dataset: %s nest distribution has size below 1", label)
		}
		if n.Probability < 0 {
			return fmt.Errorf("dataset: %s nest distribution has negative probability", label)
		}
		sum += n.Probability
	}
	if sum < 0.999999 || sum > 1.000001 {
		return fmt.Errorf("dataset: %s nest distribution sums to %v, want 1", label, sum)
	}
	return nil
}

func validateHex(hex string) error {
	if len(hex) != 6 {
		return fmt.Errorf("hex %q is not 6 digits", hex)
	}
	for _, r := range hex {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return fmt.Errorf("hex %q contains non-hex digit", hex)
		}
	}
	return nil
}

func uniqueNames(label string, names []string) error {
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		key := strings.ToLower(name)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("dataset: duplicate %s name %q", label, name)
		}
		seen[key] = struct{}{}
	}
	return nil
}

func breedNames(breeds []Breed) []string {
	out := make([]string, len(breeds))
	for i, b := range breeds {
		out[i] = b.Name
	}
	return out
}

func colourNames(colours []Colour) []string {
	out := make([]string, len(colours))
	for i, c := range colours {
		out[i] = c.Name
	}
	return out
}

func eyeNames(eyes []EyeType) []string {
	out := make([]string, len(eyes))
	for i, e := range eyes {
		out[i] = e.Name
	}
	return out
}

func geneNames(genes []Gene) []string {
	out := make([]string, len(genes))
	for i, g := range genes {
		out[i] = g.Name
	}
	return out
}
