// Command dataset-check validates the compiled-in reference dataset and
// prints a summary report. With -persist it also seeds the configured
// snapshot store so a deployment can pin the dataset it shipped with.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"broodcore/internal/catalog"
	"broodcore/internal/staticdata"
	"broodcore/pkg/domain"
)

var exitFunc = os.Exit

func main() {
	exitFunc(cli(os.Args[1:], os.Stdout, os.Stderr))
}

type report struct {
	Breeds     int            `json:"breeds"`
	Genes      map[string]int `json:"genes"`
	Colours    int            `json:"colours"`
	Eyes       int            `json:"eyes"`
	Violations []string       `json:"violations,omitempty"`
}

func cli(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("dataset-check", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		format  string
		persist bool
	)
	fs.StringVar(&format, "format", "text", "report format: text|json")
	fs.BoolVar(&persist, "persist", false, "seed the configured snapshot store with the validated dataset")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if format != "text" && format != "json" {
		fmt.Fprintf(stderr, "unknown format %q\n", format)
		return 2
	}

	rep := buildReport()

	switch format {
	case "json":
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			fmt.Fprintf(stderr, "encode report: %v\n", err)
			return 1
		}
	default:
		printText(stdout, rep)
	}

	if len(rep.Violations) > 0 {
		return 1
	}

	if persist {
		if err := seedSnapshot(context.Background()); err != nil {
			fmt.Fprintf(stderr, "persist snapshot: %v\n", err)
			return 1
		}
		fmt.Fprintln(stdout, "snapshot store seeded")
	}
	return 0
}

func buildReport() report {
	rep := report{Genes: make(map[string]int)}

	reg, err := staticdata.Default()
	if err != nil {
		rep.Violations = append(rep.Violations, err.Error())
		return rep
	}

	breeds := reg.Breeds()
	rep.Breeds = len(breeds)
	rep.Colours = len(reg.Colours())
	rep.Eyes = len(reg.Eyes())
	for _, slot := range domain.Slots() {
		rep.Genes[string(slot)] = len(reg.Genes(slot))
	}

	// The registry constructor enforces the structural invariants; the
	// checks below catch dataset drift that is legal but implausible.
	var eyeSum float64
	for _, e := range reg.Eyes() {
		eyeSum += e.Probability
	}
	if eyeSum < 0.999999 || eyeSum > 1.000001 {
		rep.Violations = append(rep.Violations, fmt.Sprintf("eye probabilities sum to %v, want 1", eyeSum))
	}

	for b, breed := range breeds {
		if breed.Kind != domain.KindAncient {
			continue
		}
		total := 0
		for _, slot := range domain.Slots() {
			total += len(reg.AvailableGenes(slot, b))
		}
		if total <= len(domain.Slots()) {
			rep.Violations = append(rep.Violations,
				fmt.Sprintf("ancient breed %s carries no genes beyond Basic", breed.Name))
		}
	}

	for _, slot := range domain.Slots() {
		if _, ok := reg.FindGene(slot, "Basic"); !ok {
			rep.Violations = append(rep.Violations, fmt.Sprintf("slot %s is missing the Basic gene", slot))
		}
	}

	for a := domain.Plentiful; a <= domain.Rare; a++ {
		for b := domain.Plentiful; b <= domain.Rare; b++ {
			fwd, okF := domain.RarityOutcomeProbabilities(a, b)
			rev, okR := domain.RarityOutcomeProbabilities(b, a)
			if !okF || !okR || fwd[0] != rev[1] || fwd[1] != rev[0] {
				rep.Violations = append(rep.Violations,
					fmt.Sprintf("rarity outcome table asymmetric for %s x %s", a, b))
			}
		}
	}

	return rep
}

func printText(w io.Writer, rep report) {
	fmt.Fprintf(w, "breeds:  %d\n", rep.Breeds)
	for _, slot := range domain.Slots() {
		fmt.Fprintf(w, "%s genes: %d\n", slot, rep.Genes[string(slot)])
	}
	fmt.Fprintf(w, "colours: %d\n", rep.Colours)
	fmt.Fprintf(w, "eyes:    %d\n", rep.Eyes)
	if len(rep.Violations) == 0 {
		fmt.Fprintln(w, "dataset ok")
		return
	}
	for _, v := range rep.Violations {
		fmt.Fprintf(w, "violation: %s\n", v)
	}
}

func seedSnapshot(ctx context.Context) error {
	store, err := catalog.OpenSnapshotStore(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()
	ds, err := staticdata.Dataset()
	if err != nil {
		return err
	}
	_, err = catalog.LoadOrSeed(ctx, store, ds)
	return err
}
