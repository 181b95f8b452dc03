package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ayomide-cmd/folio/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog [file]",
	Short: "Validate and list the portfolio projects",
	Long:  "Validates the embedded portfolio document, or the given JSON file, and lists its projects by tier.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			portfolio *catalog.Portfolio
			err       error
		)
		if len(args) == 1 {
			raw, readErr := os.ReadFile(args[0])
			if readErr != nil {
				return fmt.Errorf("read %s: %w", args[0], readErr)
			}
			portfolio, err = catalog.Decode(raw)
		} else {
			portfolio, err = catalog.Load()
		}
		if err != nil {
			return err
		}

		printCatalog(cmd.OutOrStdout(), portfolio.Catalog())
		return nil
	},
}

func printCatalog(w io.Writer, c *catalog.Catalog) {
	for _, tier := range []catalog.Tier{catalog.TierPrimary, catalog.TierSecondary} {
		projects := c.ByTier(tier)
		fmt.Fprintf(w, "%s (%d)\n", tier.Label(), len(projects))
		for _, p := range projects {
			fmt.Fprintf(w, "  %02d  %-16s %s\n", c.Index(p.ID())+1, p.Title, p.Live)
		}
	}
	fmt.Fprintf(w, "%d projects\n", c.Len())
}
