// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/ppi-engine/internal/extract"
	"github.com/pdiddy/ppi-engine/internal/interactions"
	"github.com/pdiddy/ppi-engine/internal/ontology"
	"github.com/pdiddy/ppi-engine/pkg/types"
)

var featuresCmd = &cobra.Command{
	Use:   "features",
	Short: "Compute annotation features for protein pairs",
	Long: `Features computes the feature record for a single pair (--source and
--target) or for every interaction in the dataset (--all). Pairs with a
protein missing from the dataset are skipped; an annotation referencing a
GO accession absent from the loaded ontology snapshot aborts the run.`,
	RunE: runFeatures,
}

func runFeatures(cmd *cobra.Command, args []string) error {
	sourceAcc, _ := cmd.Flags().GetString("source")
	targetAcc, _ := cmd.Flags().GetString("target")
	all, _ := cmd.Flags().GetBool("all")

	single := sourceAcc != "" || targetAcc != ""
	if single == all {
		return fmt.Errorf("choose one mode: --source/--target for a single pair, or --all")
	}
	if single && (sourceAcc == "" || targetAcc == "") {
		return fmt.Errorf("a single pair needs both --source and --target")
	}

	cfg, err := pipelineConfig(cmd)
	if err != nil {
		return err
	}

	store, err := ontology.LoadStore(cfg.Ontology)
	if err != nil {
		return err
	}
	ontology.SetActive(store)

	dataset, err := interactions.Open(cfg.Dataset)
	if err != nil {
		return err
	}
	defer dataset.Close()

	ctx := context.Background()

	var pairs []types.Interaction
	if single {
		pairs = []types.Interaction{{Source: sourceAcc, Target: targetAcc}}
	} else {
		pairs, err = dataset.Interactions(ctx)
		if err != nil {
			return err
		}
	}

	extractor := extract.New(cfg.Extract, store, dataset, dataset)

	results, summary, err := extractor.Transform(ctx, pairs, os.Stderr)
	if err != nil {
		return err
	}

	if single && results[0].Record == nil {
		return fmt.Errorf("pair %s-%s is not computable: protein missing from the dataset", sourceAcc, targetAcc)
	}

	format := "table"
	switch {
	case flagBool(cmd, "json"):
		format = "json"
	case flagBool(cmd, "yaml"):
		format = "yaml"
	}
	return writeResults(results, summary, format, single, os.Stdout, os.Stderr)
}

// pipelineConfig assembles the full run configuration from the features
// command's flags and the config file.
func pipelineConfig(cmd *cobra.Command) (types.PipelineConfig, error) {
	ontoCfg, err := ontologyConfig(cmd)
	if err != nil {
		return types.PipelineConfig{}, err
	}
	dsCfg, err := datasetConfig(cmd)
	if err != nil {
		return types.PipelineConfig{}, err
	}
	return types.PipelineConfig{
		Ontology: ontoCfg,
		Dataset:  dsCfg,
		Extract:  extractConfig(cmd),
	}, nil
}

// extractConfig merges the --workers and --cache flags over the
// extract.workers and extract.use_cache config keys.
func extractConfig(cmd *cobra.Command) types.ExtractConfig {
	cfg := types.ExtractConfig{
		Workers:  viper.GetInt("extract.workers"),
		UseCache: viper.GetBool("extract.use_cache"),
	}
	if workers, _ := cmd.Flags().GetInt("workers"); workers > 0 {
		cfg.Workers = workers
	}
	if cmd.Flags().Changed("cache") {
		cfg.UseCache, _ = cmd.Flags().GetBool("cache")
	}
	return cfg
}

// writeResults renders the batch in the requested format. The skipped
// warning goes to stderr whatever the format.
func writeResults(results []extract.PairFeatures, summary extract.Summary, format string, single bool, stdout, stderr io.Writer) error {
	if summary.Skipped > 0 {
		fmt.Fprintf(stderr, "warning: %d pair(s) skipped\n", summary.Skipped)
	}
	switch format {
	case "json":
		if single {
			enc := json.NewEncoder(stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(results[0].Record)
		}
		return extract.FormatJSON(results, stdout)
	case "yaml":
		return extract.FormatYAML(results, stdout)
	default:
		extract.FormatTable(results, stdout)
		return nil
	}
}

func flagBool(cmd *cobra.Command, name string) bool {
	v, _ := cmd.Flags().GetBool(name)
	return v
}

func init() {
	featuresCmd.Flags().String("source", "", "source protein accession")
	featuresCmd.Flags().String("target", "", "target protein accession")
	featuresCmd.Flags().Bool("all", false, "compute features for every interaction in the dataset")
	featuresCmd.Flags().String("obo", "", "path to the GO OBO file")
	featuresCmd.Flags().String("db", "", "path to the dataset SQLite file")
	featuresCmd.Flags().Int("workers", 0, "worker pool size (0 = config or default)")
	featuresCmd.Flags().Bool("cache", false, "reuse and populate the dataset feature cache")
	featuresCmd.Flags().Bool("json", false, "output records as JSON")
	featuresCmd.Flags().Bool("yaml", false, "output records as YAML")

	rootCmd.AddCommand(featuresCmd)
}
