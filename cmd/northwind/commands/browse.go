package commands

import (
	"github.com/marshallshelly/northwind-samples/cmd/northwind/tui"
	"github.com/marshallshelly/northwind-samples/pkg/registry"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// browseCmd starts the interactive sample browser
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse and run samples interactively",
	Long: `Open an interactive list of samples. Selecting a sample runs it and
shows the rendered output in a scrollable pane.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBrowse()
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse() error {
	ds, err := loadDataset()
	if err != nil {
		return err
	}

	// Logging to the terminal would corrupt the alternate screen.
	return tui.RunBrowseUI(registry.All(), ds, zerolog.Nop())
}
