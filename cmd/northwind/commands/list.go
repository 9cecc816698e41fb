package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/marshallshelly/northwind-samples/cmd/northwind/output"
	"github.com/marshallshelly/northwind-samples/pkg/registry"
	"github.com/spf13/cobra"
)

// listCmd prints the registered samples
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available samples",
	Long: `List every sample in registration order with its aliases and title.

Examples:
  northwind list                # Table of samples
  northwind list --json         # Output in JSON format`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

type sampleInfo struct {
	Name        string   `json:"name"`
	Aliases     []string `json:"aliases"`
	Title       string   `json:"title"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
}

func runList() error {
	samples := registry.All()

	if cfg.Output.Format == "json" {
		infos := make([]sampleInfo, len(samples))
		for i, s := range samples {
			infos[i] = sampleInfo{
				Name:        s.Name,
				Aliases:     s.Aliases,
				Title:       s.Title,
				Category:    s.Category,
				Description: s.Description,
			}
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}

	output.Section("Samples")

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tALIASES\tTITLE")
	for _, s := range samples {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", s.Name, strings.Join(s.Aliases, ", "), s.Title)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	output.Muted("%d samples", len(samples))
	return nil
}
