package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/marshallshelly/northwind-samples/cmd/northwind/output"
	"github.com/spf13/cobra"
)

// datasetCmd describes the current dataset
var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Show and validate the current dataset",
	Long: `Load the current dataset, validate every entity and print entity counts.

Examples:
  northwind dataset                          # Embedded snapshot
  northwind dataset --dataset ./fixtures     # Alternate YAML files
  northwind dataset --json                   # Output in JSON format`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDataset()
	},
}

func init() {
	rootCmd.AddCommand(datasetCmd)
}

func runDataset() error {
	ds, err := loadDataset()
	if err != nil {
		return err
	}
	stats := ds.Stats()

	if cfg.Output.Format == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Source string `json:"source"`
			Valid  bool   `json:"valid"`
			Stats  any    `json:"stats"`
		}{
			Source: datasetName(),
			Valid:  true,
			Stats:  stats,
		})
	}

	output.Section("Dataset")
	output.Info("Source: %s", datasetName())

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ENTITY\tCOUNT")
	_, _ = fmt.Fprintf(w, "customers\t%d\n", stats.Customers)
	_, _ = fmt.Fprintf(w, "orders\t%d\n", stats.Orders)
	_, _ = fmt.Fprintf(w, "suppliers\t%d\n", stats.Suppliers)
	_, _ = fmt.Fprintf(w, "products\t%d\n", stats.Products)
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	output.Success("Dataset is valid")
	return nil
}
