package lair

import (
	"fmt"
	"time"

	"broodcore/internal/catalog"
)

// Exportable collections. Gene slots export separately because positions are
// only meaningful within a slot.
const (
	collectionBreeds         = "breeds"
	collectionPrimaryGenes   = "primary-genes"
	collectionSecondaryGenes = "secondary-genes"
	collectionTertiaryGenes  = "tertiary-genes"
	collectionColours        = "colours"
	collectionEyes           = "eyes"
	collectionNests          = "nests"
)

func knownCollection(name string) bool {
	switch name {
	case collectionBreeds, collectionPrimaryGenes, collectionSecondaryGenes,
		collectionTertiaryGenes, collectionColours, collectionEyes, collectionNests:
		return true
	}
	return false
}

func supportsFormat(collection string, format Format) bool {
	switch format {
	case FormatJSON, FormatCSV:
		return true
	case FormatPNG:
		return collection == collectionColours
	}
	return false
}

func geneSlotFor(collection string) (catalog.GeneSlot, bool) {
	switch collection {
	case collectionPrimaryGenes:
		return catalog.SlotPrimary, true
	case collectionSecondaryGenes:
		return catalog.SlotSecondary, true
	case collectionTertiaryGenes:
		return catalog.SlotTertiary, true
	}
	return "", false
}

// collectionRows flattens a collection into ordered columns and rows keyed by
// column name. Positions are included so exported rows can be correlated with
// query arguments.
func collectionRows(svc *catalog.Service, collection string) ([]string, []map[string]any, error) {
	switch collection {
	case collectionBreeds:
		breeds := svc.Breeds()
		rows := make([]map[string]any, len(breeds))
		for i, b := range breeds {
			rows[i] = map[string]any{
				"position":   i,
				"name":       b.Name,
				"on_site_id": b.OnSiteID,
				"kind":       string(b.Kind),
				"rarity":     b.Rarity.String(),
			}
		}
		return []string{"position", "name", "on_site_id", "kind", "rarity"}, rows, nil
	case collectionPrimaryGenes, collectionSecondaryGenes, collectionTertiaryGenes:
		slot, _ := geneSlotFor(collection)
		genes := svc.Genes(slot)
		breeds := svc.Breeds()
		rows := make([]map[string]any, len(genes))
		for i, g := range genes {
			available := 0
			for b := range breeds {
				if g.AvailableOn(breeds, b) {
					available++
				}
			}
			rows[i] = map[string]any{
				"position":         i,
				"name":             g.Name,
				"rarity":           g.Rarity.String(),
				"available_breeds": available,
			}
		}
		return []string{"position", "name", "rarity", "available_breeds"}, rows, nil
	case collectionColours:
		colours := svc.Colours()
		rows := make([]map[string]any, len(colours))
		for i, c := range colours {
			rows[i] = map[string]any{
				"position":   i,
				"name":       c.Name,
				"on_site_id": c.OnSiteID,
				"hex":        c.Hex,
			}
		}
		return []string{"position", "name", "on_site_id", "hex"}, rows, nil
	case collectionEyes:
		eyes := svc.Eyes()
		rows := make([]map[string]any, len(eyes))
		for i, e := range eyes {
			rows[i] = map[string]any{
				"position":    i,
				"name":        e.Name,
				"on_site_id":  e.OnSiteID,
				"probability": e.Probability,
			}
		}
		return []string{"position", "name", "on_site_id", "probability"}, rows, nil
	case collectionNests:
		reg := svc.Registry()
		var rows []map[string]any
		appendDist := func(label string, sizes []catalog.NestSize) {
			for _, n := range sizes {
				rows = append(rows, map[string]any{
					"distribution": label,
					"eggs":         n.Eggs,
					"probability":  n.Probability,
				})
			}
		}
		// The same-breed distribution only applies to identical modern
		// pairs; everything else compatible draws from mixed.
		same, mixed := nestDistributions(reg)
		appendDist("same_breed", same)
		appendDist("mixed", mixed)
		return []string{"distribution", "eggs", "probability"}, rows, nil
	default:
		return nil, nil, fmt.Errorf("unknown collection %s", collection)
	}
}

// nestDistributions recovers both distributions through the public pairing
// query, using the first identical modern pair and the first distinct modern
// pair.
func nestDistributions(reg *catalog.Registry) (same, mixed []catalog.NestSize) {
	breeds := reg.Breeds()
	var moderns []int
	for i, b := range breeds {
		if b.Kind == catalog.KindModern {
			moderns = append(moderns, i)
		}
	}
	if len(moderns) > 0 {
		same, _ = reg.NestSizes(moderns[0], moderns[0])
	}
	if len(moderns) > 1 {
		mixed, _ = reg.NestSizes(moderns[0], moderns[1])
	}
	return same, mixed
}

func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case time.Time:
		return v.UTC().Format(time.RFC3339)
	case fmt.Stringer:
		return v.String()
	case float32:
		return fmt.Sprintf("%g", v)
	case float64:
		return fmt.Sprintf("%g", v)
	case int:
		return fmt.Sprintf("%d", v)
	case int64:
		return fmt.Sprintf("%d", v)
	default:
		return fmt.Sprint(v)
	}
}
