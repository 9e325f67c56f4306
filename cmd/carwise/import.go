package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/carwise/carwise/internal/cli"
	"github.com/carwise/carwise/internal/importer"
)

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.json>",
		Short: "Import vehicle listings from a JSON export",
		Long: `Import vehicle listings into your garage from a JSON file containing an
array of listings. Listings without an ID get a generated one; invalid
listings are skipped with a warning.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			imp := importer.New(store, os.Stderr)
			result, err := imp.ImportFile(ctx, args[0])
			if err != nil {
				return fmt.Errorf("import failed: %w", err)
			}

			summary := fmt.Sprintf("%s Imported %d listings", cli.SuccessIcon, result.Imported)
			if result.Skipped > 0 {
				summary += fmt.Sprintf(" (%d skipped)", result.Skipped)
			}
			fmt.Println(cli.SuccessStyle.Render(summary))
			return nil
		},
	}
}
