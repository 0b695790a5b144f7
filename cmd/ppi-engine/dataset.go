// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/ppi-engine/internal/interactions"
	"github.com/pdiddy/ppi-engine/pkg/types"
)

var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Manage the protein/interaction dataset",
	Long: `Dataset maintains the SQLite database of protein annotation records and
curated interaction pairs that batch feature extraction reads from.`,
}

// --- import subcommand ---

var datasetImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Import proteins and interactions from TSV files",
	Long: `Import reads tab-separated files into the dataset. The protein file
carries accession, go_mf, go_bp, go_cc, interpro, pfam, and keywords
columns; the interaction file carries source, target, and optional labels.
Existing rows are updated in place.`,
	RunE: runDatasetImport,
}

func runDatasetImport(cmd *cobra.Command, args []string) error {
	proteinsPath, _ := cmd.Flags().GetString("proteins")
	pairsPath, _ := cmd.Flags().GetString("interactions")
	if proteinsPath == "" && pairsPath == "" {
		return fmt.Errorf("nothing to import: pass --proteins and/or --interactions")
	}

	store, err := openDataset(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	if proteinsPath != "" {
		f, err := os.Open(proteinsPath)
		if err != nil {
			return err
		}
		_, err = store.ImportProteins(ctx, f, os.Stdout)
		f.Close()
		if err != nil {
			return err
		}
	}
	if pairsPath != "" {
		f, err := os.Open(pairsPath)
		if err != nil {
			return err
		}
		_, err = store.ImportInteractions(ctx, f, os.Stdout)
		f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

// --- stats subcommand ---

var datasetStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print dataset row counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openDataset(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		proteins, pairs, err := store.Counts(context.Background())
		if err != nil {
			return err
		}
		fmt.Printf("proteins:     %d\n", proteins)
		fmt.Printf("interactions: %d\n", pairs)
		return nil
	},
}

// datasetConfig builds the dataset configuration from the --db flag,
// falling back to the dataset.path config key.
func datasetConfig(cmd *cobra.Command) (types.DatasetConfig, error) {
	cfg := types.DatasetConfig{
		Path: viper.GetString("dataset.path"),
	}
	if path, _ := cmd.Flags().GetString("db"); path != "" {
		cfg.Path = path
	}
	if cfg.Path == "" {
		return cfg, fmt.Errorf("no dataset configured: pass --db or set dataset.path")
	}
	return cfg, nil
}

func openDataset(cmd *cobra.Command) (*interactions.Store, error) {
	cfg, err := datasetConfig(cmd)
	if err != nil {
		return nil, err
	}
	return interactions.Open(cfg)
}

func init() {
	datasetCmd.PersistentFlags().String("db", "", "path to the dataset SQLite file")

	datasetImportCmd.Flags().String("proteins", "", "TSV file of protein annotation records")
	datasetImportCmd.Flags().String("interactions", "", "TSV file of interaction pairs")

	datasetCmd.AddCommand(datasetImportCmd)
	datasetCmd.AddCommand(datasetStatsCmd)

	rootCmd.AddCommand(datasetCmd)
}
