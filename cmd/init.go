package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/folio/internal/adapters/repository"
	"github.com/kamal-hamza/folio/pkg/config"
	"github.com/kamal-hamza/folio/pkg/ui"
	"github.com/kamal-hamza/folio/pkg/vault"
)

var initNoSamples bool

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the folio vault",
	Long: `Initialize the folio vault directory structure.

This creates the managed vault at ~/.local/share/folio/ with the following structure:
  - images/      : Uploaded artwork images
  - cache/       : Generated charts and scratch files
  - site/        : Default target of 'folio export'
  - catalog.yaml : The artwork catalog

The configuration file is written to ~/.config/folio/config.yaml.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initNoSamples, "empty", false, "Start with an empty catalog instead of the sample artworks")
}

func runInit(cmd *cobra.Command, args []string) error {
	v, err := vault.New()
	if err != nil {
		fmt.Println(ui.FormatError("Failed to determine vault location"))
		return err
	}
	return initializeVault(v, !initNoSamples)
}

func initializeVault(v *vault.Vault, withSamples bool) error {
	if v.Exists() {
		fmt.Println(ui.FormatWarning("Vault already initialized"))
		fmt.Println(ui.FormatMuted("Location: " + v.RootPath))
		return nil
	}

	fmt.Println(ui.FormatRocket("Initializing folio vault..."))
	fmt.Println()

	if err := v.Initialize(); err != nil {
		fmt.Println(ui.FormatError("Failed to initialize vault"))
		return err
	}

	// Config is optional; keep going without it
	if err := createDefaultConfig(v); err != nil {
		fmt.Println(ui.FormatWarning("Failed to create default config: " + err.Error()))
	}

	seed := repository.SampleArtworks()
	if !withSamples {
		seed = nil
	}
	if err := repository.SaveCatalog(v.CatalogPath(), seed); err != nil {
		fmt.Println(ui.FormatError("Failed to create catalog"))
		return err
	}
	fmt.Println(ui.FormatSuccess(fmt.Sprintf("Catalog created with %d artworks", len(seed))))

	fmt.Println(ui.FormatSuccess("Vault initialized successfully!"))
	fmt.Println()
	fmt.Println(ui.RenderKeyValue("Location", v.RootPath))
	fmt.Println(ui.RenderKeyValue("Config", v.ConfigPath))
	fmt.Println()
	fmt.Println(ui.FormatInfo("Next steps:"))
	fmt.Println(ui.FormatMuted("  1. Browse the gallery: folio gallery"))
	fmt.Println(ui.FormatMuted("  2. Add an artwork: folio add ./painting.png --medium \"Oil on Canvas\""))
	fmt.Println(ui.FormatMuted("  3. Publish a static page: folio export"))

	return nil
}

func createDefaultConfig(v *vault.Vault) error {
	if _, err := os.Stat(v.ConfigPath); err == nil {
		return nil
	}
	return config.DefaultConfig().Save(v.ConfigPath)
}
