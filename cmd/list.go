package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/folio/internal/core/domain"
	"github.com/kamal-hamza/folio/internal/core/services"
	"github.com/kamal-hamza/folio/pkg/ui"
)

var (
	listCategory string
	listMedium   string
	listYear     int
	listLimit    int
	listFeatured bool
	listSearch   string
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List artworks in the catalog",
	Aliases: []string{"ls"},
	Long: `List artworks in a table, newest first.

Examples:
  folio list
  folio list --category landscape
  folio list --medium oil --year 2023
  folio list --featured
  folio list --search "urban"`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listCategory, "category", "", "Filter by category (case-insensitive)")
	listCmd.Flags().StringVar(&listMedium, "medium", "", "Filter by medium (substring match)")
	listCmd.Flags().IntVar(&listYear, "year", 0, "Filter by year")
	listCmd.Flags().IntVarP(&listLimit, "limit", "n", 0, "Maximum number of rows")
	listCmd.Flags().BoolVarP(&listFeatured, "featured", "f", false, "Only show the featured works")
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Fuzzy search by title, medium or category")
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	var (
		artworks []domain.Artwork
		total    int
		heading  string
	)

	if listSearch != "" {
		resp, err := listService.Search(ctx, services.SearchRequest{Query: listSearch})
		if err != nil {
			fmt.Println(ui.FormatError("Failed to search artworks"))
			return err
		}
		artworks, total = resp.Artworks, resp.Total
		heading = fmt.Sprintf("Artworks matching %q", listSearch)
	} else {
		resp, err := listService.Execute(ctx, services.ListRequest{
			Category: listCategory,
			Medium:   listMedium,
			Year:     listYear,
			Limit:    listLimit,
		})
		if err != nil {
			fmt.Println(ui.FormatError("Failed to list artworks"))
			return err
		}
		artworks, total = resp.Artworks, resp.Total
		heading = "Artworks" + describeFilters()
		if listFeatured {
			artworks, total = resp.Featured, len(resp.Featured)
			heading = "Featured Works" + describeFilters()
		}
	}

	if total == 0 {
		if hasListFilters() {
			fmt.Println(ui.FormatWarning("No artworks match the given filters"))
		} else {
			fmt.Println(ui.FormatWarning("No artworks found"))
			fmt.Println(ui.FormatInfo("Add your first piece with: folio add ./painting.png"))
		}
		return nil
	}

	fmt.Println(ui.FormatTitle(heading))
	fmt.Println()
	fmt.Print(renderArtworkTable(artworks, appConfig.DisplayDateFormat, listSearch == ""))
	fmt.Println()

	if len(artworks) < total {
		fmt.Println(ui.FormatMuted(fmt.Sprintf("Showing %d of %d artworks", len(artworks), total)))
	} else {
		fmt.Println(ui.FormatMuted(fmt.Sprintf("Total: %d artworks", total)))
	}
	return nil
}

// renderArtworkTable prints artworks as a table. With markFeatured the
// leading rows are starred; search results are ranked, so they are not.
func renderArtworkTable(artworks []domain.Artwork, dateLayout string, markFeatured bool) string {
	table := ui.NewTable([]ui.TableColumn{
		{Header: "#", Align: "right"},
		{Header: "Title", MaxWidth: 36, Align: "left"},
		{Header: "Medium", MaxWidth: 24, Align: "left"},
		{Header: "Year", Align: "right"},
		{Header: "Category", MaxWidth: 16, Align: "left"},
		{Header: "Added", Align: "left"},
		{Header: "ID", MaxWidth: 12, Align: "left"},
	})

	for i, a := range artworks {
		marker := fmt.Sprintf("%d", i+1)
		if markFeatured && i < domain.FeaturedCount {
			marker = ui.IconFeatured + " " + marker
		}
		category := a.Category
		if !a.HasCategory() {
			category = "-"
		}
		table.AddRow([]string{
			marker,
			a.Title,
			a.Medium,
			fmt.Sprintf("%d", a.Year),
			category,
			a.GetDisplayDate(dateLayout),
			a.ID,
		})
	}
	return table.Render()
}

func hasListFilters() bool {
	return listCategory != "" || listMedium != "" || listYear != 0 || listSearch != ""
}

func describeFilters() string {
	var parts []string
	if listCategory != "" {
		parts = append(parts, "category: "+listCategory)
	}
	if listMedium != "" {
		parts = append(parts, "medium: "+listMedium)
	}
	if listYear != 0 {
		parts = append(parts, fmt.Sprintf("year: %d", listYear))
	}
	if len(parts) == 0 {
		return ""
	}
	return " (" + strings.Join(parts, ", ") + ")"
}
