// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"
)

// FormatTable writes one row per pair with the token count of each
// feature field.
func FormatTable(results []PairFeatures, w io.Writer) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No pairs.")
		return
	}

	fmt.Fprintf(w, "%-12s  %-12s  %5s  %5s  %5s  %7s  %7s  %7s  %8s  %5s  %8s\n",
		"Source", "Target", "mf", "bp", "cc", "ulca_mf", "ulca_bp", "ulca_cc", "interpro", "pfam", "keywords")
	fmt.Fprintln(w, strings.Repeat("-", 110))

	for _, pf := range results {
		if pf.Record == nil {
			fmt.Fprintf(w, "%-12s  %-12s  (skipped)\n", pf.Interaction.Source, pf.Interaction.Target)
			continue
		}
		r := pf.Record
		fmt.Fprintf(w, "%-12s  %-12s  %5d  %5d  %5d  %7d  %7d  %7d  %8d  %5d  %8d\n",
			pf.Interaction.Source, pf.Interaction.Target,
			len(r.GOMF), len(r.GOBP), len(r.GOCC),
			len(r.ULCAGOMF), len(r.ULCAGOBP), len(r.ULCAGOCC),
			len(r.InterPro), len(r.Pfam), len(r.Keywords))
	}
	fmt.Fprintf(w, "\n%d pairs\n", len(results))
}

// FormatJSON writes the full records as indented JSON.
func FormatJSON(results []PairFeatures, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

// FormatYAML writes the full records as YAML.
func FormatYAML(results []PairFeatures, w io.Writer) error {
	data, err := yaml.Marshal(results)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
