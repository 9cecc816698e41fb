package commands

import (
	"fmt"
	"os"

	"github.com/marshallshelly/northwind-samples/cmd/northwind/output"
	"github.com/marshallshelly/northwind-samples/pkg/config"
	"github.com/marshallshelly/northwind-samples/pkg/dataset"
	"github.com/marshallshelly/northwind-samples/pkg/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	// Registers every sample with the global registry.
	_ "github.com/marshallshelly/northwind-samples/pkg/samples"
)

var (
	// Global flags
	datasetPath string
	verbose     bool
	jsonOutput  bool
	noColor     bool

	cfg *config.Config
	log zerolog.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "northwind",
	Short: "Query exercises over the Northwind dataset",
	Long: `northwind runs a collection of query exercises over a small, fixed
Customers / Orders / Suppliers / Products dataset.

Features:
  - Every exercise addressable by a stable name (Q1, Q2_V1 ... Q10) or its alias
  - Exact decimal money arithmetic
  - Text and JSON lines output
  - Interactive sample browser
  - Alternate YAML datasets`,
	Version:       "1.0.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		output.Error("%v", err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&datasetPath, "dataset", "", "YAML dataset file or directory (default: embedded snapshot)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

// setup loads the configuration and applies flag overrides.
func setup(cmd *cobra.Command) error {
	loaded, err := config.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("dataset") {
		loaded.Dataset.Path = datasetPath
	}
	if verbose {
		loaded.Log.Level = "debug"
	}
	if jsonOutput {
		loaded.Output.Format = "json"
	}
	if noColor {
		loaded.Output.Color = false
	}

	if !loaded.Output.Color {
		output.DisableColor()
	}

	cfg = loaded
	log = logger.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	log.Debug().
		Str("output", cfg.Output.Format).
		Str("dataset", datasetName()).
		Msg("configuration loaded")

	return nil
}

// loadDataset returns the configured dataset.
func loadDataset() (*dataset.Dataset, error) {
	if cfg.Dataset.Path == "" {
		return dataset.Default()
	}

	ds, err := dataset.LoadFromPath(cfg.Dataset.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}
	return ds, nil
}

func datasetName() string {
	if cfg.Dataset.Path == "" {
		return "embedded"
	}
	return cfg.Dataset.Path
}
