// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the ppi-engine CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the ppi-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "ppi-engine",
	Short: "Annotation feature engine for protein-protein interactions",
	Long: `ppi-engine computes annotation-based feature sets for protein pairs:
raw Gene Ontology, InterPro, Pfam, and keyword unions plus GO terms induced
up to the least common ancestors of the two proteins' annotation sets.

Load an ontology snapshot and a protein dataset, then compute features for
single pairs or whole interaction networks. Downstream classification
pipelines consume the emitted feature records.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./ppi-engine.yaml or ~/.config/ppi-engine/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("ppi-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "ppi-engine"))
		}
	}

	viper.SetEnvPrefix("PPI_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
