package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/folio/pkg/ui"
)

var cleanSite bool

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove generated files from the vault",
	Long: `Remove generated chart pages and scratch images from the cache.

With --site the exported static site is removed as well.

Examples:
  folio clean
  folio clean --site`,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVar(&cleanSite, "site", false, "Also remove the exported site")
}

func runClean(cmd *cobra.Command, args []string) error {
	if !appVault.Exists() {
		fmt.Println(ui.FormatMuted("Nothing to clean"))
		return nil
	}

	fmt.Print(ui.StyleWarning.Render("Cleaning cache... "))

	if err := appVault.CleanCache(); err != nil {
		fmt.Println(ui.FormatError("Failed"))
		return err
	}
	fmt.Println(ui.FormatSuccess("Done"))

	if cleanSite {
		site := appVault.ExportPath(appConfig.ExportDir)
		fmt.Print(ui.StyleWarning.Render("Removing site " + site + "... "))
		if err := os.RemoveAll(site); err != nil {
			fmt.Println(ui.FormatError("Failed"))
			return err
		}
		fmt.Println(ui.FormatSuccess("Done"))
	}

	return nil
}
