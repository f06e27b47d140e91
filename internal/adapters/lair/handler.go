// Package lair serves the reference dataset over HTTP and renders
// asynchronous collection exports. Entities are addressed by name in the
// API; the handler resolves names to wheel and collection positions before
// delegating to the catalog service.
package lair

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"broodcore/internal/catalog"
)

const apiPrefix = "/api/v1/lair"

// Handler provides HTTP access to the dataset collections and queries.
type Handler struct {
	Service *catalog.Service
	Exports ExportScheduler
}

// NewHandler constructs a lair HTTP handler.
func NewHandler(svc *catalog.Service) *Handler {
	return &Handler{Service: svc}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.Service == nil {
		writeError(w, http.StatusInternalServerError, "catalog service not configured")
		return
	}

	path := strings.TrimSuffix(r.URL.Path, "/")
	switch {
	case strings.HasPrefix(path, apiPrefix+"/exports"):
		h.handleExports(w, r, path)
	case path == apiPrefix+"/breeds":
		h.requireGet(w, r, func() { h.handleCollection(w, r, collectionBreeds) })
	case path == apiPrefix+"/colours":
		h.requireGet(w, r, func() { h.handleCollection(w, r, collectionColours) })
	case path == apiPrefix+"/eyes":
		h.requireGet(w, r, func() { h.handleCollection(w, r, collectionEyes) })
	case path == apiPrefix+"/nests":
		h.requireGet(w, r, func() { h.handleCollection(w, r, collectionNests) })
	case path == apiPrefix+"/pairings/compatibility":
		h.requireGet(w, r, func() { h.handleCompatibility(w, r) })
	case path == apiPrefix+"/pairings/nest-sizes":
		h.requireGet(w, r, func() { h.handleNestSizes(w, r) })
	case path == apiPrefix+"/pairings/breed-outcome":
		h.requireGet(w, r, func() { h.handleBreedOutcome(w, r) })
	case path == apiPrefix+"/pairings/rarity-outcome":
		h.requireGet(w, r, func() { h.handleRarityOutcome(w, r) })
	case path == apiPrefix+"/colours/range":
		h.requireGet(w, r, func() { h.handleColourRange(w, r) })
	case path == apiPrefix+"/colours/in-range":
		h.requireGet(w, r, func() { h.handleColourInRange(w, r) })
	case path == apiPrefix+"/colours/subrange":
		h.requireGet(w, r, func() { h.handleColourSubrange(w, r) })
	case strings.HasPrefix(path, apiPrefix+"/genes/"):
		h.handleGenes(w, r, strings.TrimPrefix(path, apiPrefix+"/genes/"))
	default:
		http.NotFound(w, r)
	}
}

func (h *Handler) requireGet(w http.ResponseWriter, r *http.Request, serve func()) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	serve()
}

func (h *Handler) handleCollection(w http.ResponseWriter, r *http.Request, collection string) {
	columns, rows, err := collectionRows(h.Service, collection)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if strings.EqualFold(r.URL.Query().Get("format"), "csv") {
		streamCSV(w, collection, columns, rows)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"collection": collection,
		"columns":    columns,
		"rows":       rows,
	})
}

func (h *Handler) handleGenes(w http.ResponseWriter, r *http.Request, remainder string) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	segments := strings.Split(remainder, "/")
	slot := catalog.GeneSlot(segments[0])
	switch slot {
	case catalog.SlotPrimary, catalog.SlotSecondary, catalog.SlotTertiary:
	default:
		writeError(w, http.StatusNotFound, "unknown gene slot")
		return
	}

	if len(segments) == 1 {
		h.handleCollection(w, r, string(slot)+"-genes")
		return
	}
	if len(segments) != 2 {
		http.NotFound(w, r)
		return
	}
	switch segments[1] {
	case "available":
		h.handleAvailableGenes(w, r, slot)
	case "outcome":
		h.handleGeneOutcome(w, r, slot)
	case "site-id":
		h.handleGeneSiteID(w, r, slot)
	default:
		http.NotFound(w, r)
	}
}

func (h *Handler) resolveBreed(w http.ResponseWriter, name string) (int, bool) {
	pos, ok := h.Service.FindBreed(name)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("breed %q not found", name))
		return 0, false
	}
	return pos, true
}

func (h *Handler) resolveColour(w http.ResponseWriter, name string) (int, bool) {
	pos, ok := h.Service.FindColour(name)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("colour %q not found", name))
		return 0, false
	}
	return pos, true
}

func (h *Handler) resolveGene(w http.ResponseWriter, slot catalog.GeneSlot, name string) (int, bool) {
	pos, ok := h.Service.FindGene(slot, name)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("gene %q not found in %s slot", name, slot))
		return 0, false
	}
	return pos, true
}

func (h *Handler) handleCompatibility(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	one, ok := h.resolveBreed(w, q.Get("one"))
	if !ok {
		return
	}
	two, ok := h.resolveBreed(w, q.Get("two"))
	if !ok {
		return
	}
	compatible, ok := h.Service.AreCompatible(r.Context(), one, two)
	if !ok {
		writeError(w, http.StatusNotFound, "breed pairing not resolvable")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"one":        q.Get("one"),
		"two":        q.Get("two"),
		"compatible": compatible,
	})
}

func (h *Handler) handleNestSizes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	one, ok := h.resolveBreed(w, q.Get("one"))
	if !ok {
		return
	}
	two, ok := h.resolveBreed(w, q.Get("two"))
	if !ok {
		return
	}
	sizes, ok := h.Service.NestSizes(r.Context(), one, two)
	if !ok {
		writeError(w, http.StatusNotFound, "breeds cannot pair")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"nest_sizes": sizes})
}

func (h *Handler) handleBreedOutcome(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	one, ok := h.resolveBreed(w, q.Get("one"))
	if !ok {
		return
	}
	two, ok := h.resolveBreed(w, q.Get("two"))
	if !ok {
		return
	}
	target, ok := h.resolveBreed(w, q.Get("target"))
	if !ok {
		return
	}
	p, ok := h.Service.BreedOutcomeProbability(r.Context(), one, two, target)
	if !ok {
		writeError(w, http.StatusNotFound, "breed outcome not resolvable")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"probability": p})
}

func (h *Handler) handleRarityOutcome(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	a, okA := catalog.ParseRarityTier(q.Get("one"))
	b, okB := catalog.ParseRarityTier(q.Get("two"))
	if !okA || !okB {
		writeError(w, http.StatusBadRequest, "unknown rarity tier")
		return
	}
	probs, ok := h.Service.RarityOutcome(r.Context(), a, b)
	if !ok {
		writeError(w, http.StatusNotFound, "rarity pairing not resolvable")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"one":           map[string]any{"tier": a.String(), "probability": probs[0]},
		"two":           map[string]any{"tier": b.String(), "probability": probs[1]},
		"probabilities": probs,
	})
}

func (h *Handler) handleAvailableGenes(w http.ResponseWriter, r *http.Request, slot catalog.GeneSlot) {
	breed, ok := h.resolveBreed(w, r.URL.Query().Get("breed"))
	if !ok {
		return
	}
	positions := h.Service.AvailableGenes(r.Context(), slot, breed)
	genes := h.Service.Genes(slot)
	names := make([]string, len(positions))
	for i, pos := range positions {
		names[i] = genes[pos].Name
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"slot":      slot,
		"positions": positions,
		"genes":     names,
	})
}

func (h *Handler) handleGeneOutcome(w http.ResponseWriter, r *http.Request, slot catalog.GeneSlot) {
	q := r.URL.Query()
	one, ok := h.resolveGene(w, slot, q.Get("one"))
	if !ok {
		return
	}
	two, ok := h.resolveGene(w, slot, q.Get("two"))
	if !ok {
		return
	}
	target, ok := h.resolveGene(w, slot, q.Get("target"))
	if !ok {
		return
	}
	p, ok := h.Service.GeneOutcomeProbability(r.Context(), slot, one, two, target)
	if !ok {
		writeError(w, http.StatusNotFound, "gene outcome not resolvable")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"probability": p})
}

func (h *Handler) handleGeneSiteID(w http.ResponseWriter, r *http.Request, slot catalog.GeneSlot) {
	q := r.URL.Query()
	gene, ok := h.resolveGene(w, slot, q.Get("gene"))
	if !ok {
		return
	}
	breed, ok := h.resolveBreed(w, q.Get("breed"))
	if !ok {
		return
	}
	id, ok := h.Service.GeneSiteID(r.Context(), slot, gene, breed)
	if !ok {
		writeError(w, http.StatusNotFound, "gene unavailable on breed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"site_id": id})
}

func (h *Handler) handleColourRange(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	one, ok := h.resolveColour(w, q.Get("one"))
	if !ok {
		return
	}
	two, ok := h.resolveColour(w, q.Get("two"))
	if !ok {
		return
	}
	length, ok := h.Service.RangeLength(r.Context(), one, two)
	if !ok {
		writeError(w, http.StatusNotFound, "colour range not resolvable")
		return
	}
	sequence, _ := h.Service.RangeSequence(r.Context(), one, two)
	colours := h.Service.Colours()
	names := make([]string, len(sequence))
	for i, pos := range sequence {
		names[i] = colours[pos].Name
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"length":   length,
		"sequence": names,
	})
}

func (h *Handler) handleColourInRange(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	one, ok := h.resolveColour(w, q.Get("one"))
	if !ok {
		return
	}
	two, ok := h.resolveColour(w, q.Get("two"))
	if !ok {
		return
	}
	target, ok := h.resolveColour(w, q.Get("target"))
	if !ok {
		return
	}
	in, ok := h.Service.InRange(r.Context(), one, two, target)
	if !ok {
		writeError(w, http.StatusNotFound, "colour range not resolvable")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"in_range": in})
}

func (h *Handler) handleColourSubrange(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	outerOne, ok := h.resolveColour(w, q.Get("outer_one"))
	if !ok {
		return
	}
	outerTwo, ok := h.resolveColour(w, q.Get("outer_two"))
	if !ok {
		return
	}
	innerOne, ok := h.resolveColour(w, q.Get("inner_one"))
	if !ok {
		return
	}
	innerTwo, ok := h.resolveColour(w, q.Get("inner_two"))
	if !ok {
		return
	}
	within, ok := h.Service.SubrangeInRange(r.Context(), outerOne, outerTwo, innerOne, innerTwo)
	if !ok {
		writeError(w, http.StatusNotFound, "colour range not resolvable")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"within": within})
}

type exportRequest struct {
	Collection  string   `json:"collection"`
	Formats     []string `json:"formats"`
	RequestedBy string   `json:"requested_by"`
	Reason      string   `json:"reason"`
}

func (h *Handler) handleExports(w http.ResponseWriter, r *http.Request, path string) {
	if h.Exports == nil {
		http.NotFound(w, r)
		return
	}
	if path == apiPrefix+"/exports" {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		h.handleExportCreate(w, r)
		return
	}
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	id := strings.TrimPrefix(path, apiPrefix+"/exports/")
	if id == "" || strings.Contains(id, "/") {
		http.NotFound(w, r)
		return
	}
	record, ok := h.Exports.GetExport(id)
	if !ok {
		writeError(w, http.StatusNotFound, "export not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"export": record})
}

func (h *Handler) handleExportCreate(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err.Error() != "EOF" {
		writeError(w, http.StatusBadRequest, "invalid export request payload")
		return
	}
	formats := make([]Format, 0, len(req.Formats))
	for _, f := range req.Formats {
		switch strings.ToLower(strings.TrimSpace(f)) {
		case "json":
			formats = append(formats, FormatJSON)
		case "csv":
			formats = append(formats, FormatCSV)
		case "png":
			formats = append(formats, FormatPNG)
		default:
			writeError(w, http.StatusBadRequest, "unsupported export format")
			return
		}
	}
	record, err := h.Exports.EnqueueExport(r.Context(), ExportInput{
		Collection:  req.Collection,
		Formats:     formats,
		RequestedBy: req.RequestedBy,
		Reason:      req.Reason,
	})
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]any{"export": record})
}

func streamCSV(w http.ResponseWriter, collection string, columns []string, rows []map[string]any) {
	filename := fmt.Sprintf("%s-%s.csv", collection, time.Now().UTC().Format("20060102T150405Z"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	writer := csv.NewWriter(w)
	defer writer.Flush()
	if err := writer.Write(columns); err != nil {
		return
	}
	for _, row := range rows {
		record := make([]string, len(columns))
		for i, column := range columns {
			record[i] = formatValue(row[column])
		}
		if err := writer.Write(record); err != nil {
			return
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"error": message})
}
