// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/ppi-engine/internal/ontology"
	"github.com/pdiddy/ppi-engine/pkg/types"
)

var ontologyCmd = &cobra.Command{
	Use:   "ontology",
	Short: "Inspect a Gene Ontology snapshot",
	Long: `Ontology loads a GO OBO file into the term store and reports on it.
Use subcommands to print snapshot statistics or look up individual terms,
including by alternate or replaced accession.`,
}

// --- stats subcommand ---

var ontologyStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print term counts for an ontology snapshot",
	RunE:  runOntologyStats,
}

func runOntologyStats(cmd *cobra.Command, args []string) error {
	store, err := loadTermStore(cmd)
	if err != nil {
		return err
	}

	fmt.Printf("data-version:       %s\n", store.DataVersion())
	fmt.Printf("terms:              %d\n", store.Len())
	counts := store.NamespaceCounts()
	for _, ns := range ontology.Namespaces() {
		fmt.Printf("  %-18s %d\n", string(ns)+":", counts[ns])
	}
	fmt.Printf("obsolete retained:  %d\n", store.ObsoleteCount())
	return nil
}

// --- term subcommand ---

var ontologyTermCmd = &cobra.Command{
	Use:   "term <accession>",
	Short: "Look up a term by accession",
	Long: `Term resolves an accession (canonical, alternate, or replaced) and
prints the canonical term with its parents and ancestor count.`,
	Args: cobra.ExactArgs(1),
	RunE: runOntologyTerm,
}

func runOntologyTerm(cmd *cobra.Command, args []string) error {
	store, err := loadTermStore(cmd)
	if err != nil {
		return err
	}

	term, err := store.Term(args[0])
	if err != nil {
		return err
	}
	ancestors, err := store.Ancestors(term.ID)
	if err != nil {
		return err
	}

	fmt.Printf("id:        %s\n", term.ID)
	fmt.Printf("name:      %s\n", term.Name)
	fmt.Printf("namespace: %s\n", term.Namespace)
	if len(term.AltIDs) > 0 {
		fmt.Printf("alt ids:   %s\n", strings.Join(term.AltIDs, ", "))
	}
	if term.IsObsolete {
		fmt.Println("obsolete:  true")
	}
	fmt.Printf("parents:   %s\n", strings.Join(term.Parents, ", "))
	fmt.Printf("ancestors: %d (including the term)\n", len(ancestors))
	return nil
}

// ontologyConfig builds the store configuration from the --obo flag,
// falling back to the ontology.obo_path config key.
func ontologyConfig(cmd *cobra.Command) (types.OntologyConfig, error) {
	cfg := types.OntologyConfig{
		OBOPath: viper.GetString("ontology.obo_path"),
	}
	if path, _ := cmd.Flags().GetString("obo"); path != "" {
		cfg.OBOPath = path
	}
	if cfg.OBOPath == "" {
		return cfg, fmt.Errorf("no ontology configured: pass --obo or set ontology.obo_path")
	}
	return cfg, nil
}

func loadTermStore(cmd *cobra.Command) (*ontology.Store, error) {
	cfg, err := ontologyConfig(cmd)
	if err != nil {
		return nil, err
	}
	return ontology.LoadStore(cfg)
}

func init() {
	ontologyCmd.PersistentFlags().String("obo", "", "path to the GO OBO file")

	ontologyCmd.AddCommand(ontologyStatsCmd)
	ontologyCmd.AddCommand(ontologyTermCmd)

	rootCmd.AddCommand(ontologyCmd)
}
