package commands

import (
	"fmt"
	"os"

	"github.com/marshallshelly/northwind-samples/cmd/northwind/output"
	"github.com/marshallshelly/northwind-samples/pkg/registry"
	"github.com/marshallshelly/northwind-samples/pkg/runtime"
	"github.com/spf13/cobra"
)

var (
	// Run flags
	runAll bool
)

// runCmd runs samples
var runCmd = &cobra.Command{
	Use:   "run [NAME...]",
	Short: "Run samples",
	Long: `Run one or more samples against the current dataset. Names are matched
case-insensitively against sample names and aliases.

Examples:
  northwind run Q1                    # Run a single sample
  northwind run Linq5 Q6              # Run by alias or name
  northwind run --all                 # Run every sample in order
  northwind run Q9 --json             # Output JSON lines`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if runAll && len(args) > 0 {
			return fmt.Errorf("--all cannot be combined with sample names")
		}
		if !runAll && len(args) == 0 {
			return fmt.Errorf("at least one sample name or --all is required")
		}
		return runSamples(args)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVar(&runAll, "all", false, "Run every sample")
}

func runSamples(names []string) error {
	var samples []registry.Sample
	if runAll {
		samples = registry.All()
	} else {
		for _, name := range names {
			s, err := registry.Get(name)
			if err != nil {
				return err
			}
			samples = append(samples, s)
		}
	}

	ds, err := loadDataset()
	if err != nil {
		return err
	}

	jsonWriter := output.NewJSONWriter(os.Stdout)
	var presenter runtime.Presenter = output.NewDumper(os.Stdout)
	if cfg.Output.Format == "json" {
		presenter = jsonWriter
	}
	runner := runtime.NewRunner(presenter, log)

	for _, s := range samples {
		if cfg.Output.Format == "json" {
			jsonWriter.SetSample(s.Name)
		} else if len(samples) > 1 {
			output.Section(fmt.Sprintf("%s - %s", s.Name, s.Title))
		}

		summary, err := runner.Run(s.Name, s.Stream(ds))
		if err != nil {
			return err
		}
		log.Info().
			Str("sample", summary.Sample).
			Int("records", summary.Records).
			Int("lines", summary.Lines).
			Msg("sample complete")
	}

	return nil
}
