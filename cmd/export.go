package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/folio/internal/adapters/site"
	"github.com/kamal-hamza/folio/internal/core/services"
	"github.com/kamal-hamza/folio/pkg/ui"
)

var (
	exportDir   string
	exportTitle string
	exportOpen  bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Publish the gallery as a static website",
	Long: `Render the catalog to a static site: an index page with the featured
works above the full grid, and one detail page per artwork.

Local images are copied next to the pages so the output directory can be
served or uploaded as-is.

Examples:
  folio export
  folio export --dir ./public --title "Jane Doe - Paintings"
  folio export --open`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportDir, "dir", "d", "", "Output directory (defaults to export_dir, then the vault's site/)")
	exportCmd.Flags().StringVar(&exportTitle, "title", "Creative Works", "Page heading")
	exportCmd.Flags().BoolVarP(&exportOpen, "open", "o", false, "Open the index page when done")
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	resp, err := listService.Execute(ctx, services.ListRequest{})
	if err != nil {
		fmt.Println(ui.FormatError("Failed to load artworks"))
		return err
	}

	dir := exportDir
	if dir == "" {
		dir = appConfig.ExportDir
	}
	dir = appVault.ExportPath(dir)

	opts := []site.Option{
		site.WithTitle(exportTitle),
		site.WithDateLayout(appConfig.DisplayDateFormat),
		site.WithLogger(appLogger),
	}
	if memoryImages != nil {
		opts = append(opts, site.WithBlobSource(memoryImages.Get))
	}

	fmt.Println(ui.FormatRocket(fmt.Sprintf("Exporting %d artworks...", resp.Total)))

	res, err := site.NewRenderer(dir, opts...).Render(ctx, resp.Artworks)
	if err != nil {
		fmt.Println(ui.FormatError("Export failed"))
		return err
	}

	fmt.Println(ui.FormatSuccess("Site written"))
	fmt.Println(ui.RenderKeyValue("Index", res.IndexPath))
	fmt.Println(ui.RenderKeyValue("Pages", fmt.Sprintf("%d", res.Pages)))
	fmt.Println(ui.RenderKeyValue("Images", fmt.Sprintf("%d", res.Images)))
	if len(res.Skipped) > 0 {
		fmt.Println(ui.FormatWarning(fmt.Sprintf("%d images could not be copied; their pages link the original reference", len(res.Skipped))))
	}

	if exportOpen {
		return fileOpener.Open(ctx, res.IndexPath)
	}
	return nil
}
