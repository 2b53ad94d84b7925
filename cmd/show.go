package cmd

import (
	"errors"
	"fmt"
	"strings"

	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/kamal-hamza/folio/internal/core/domain"
	"github.com/kamal-hamza/folio/internal/core/services"
	"github.com/kamal-hamza/folio/pkg/ui"
)

var (
	showCopy bool
	showOpen bool
)

var showCmd = &cobra.Command{
	Use:   "show [query]",
	Short: "Show the details of one artwork",
	Long: `Show the full record of an artwork.

Without a query an interactive fuzzy finder lists every artwork.
With a query the best match is shown; an exact ID always wins.`,
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVarP(&showCopy, "copy", "c", false, "Copy the image URL to the clipboard")
	showCmd.Flags().BoolVarP(&showOpen, "open", "o", false, "Open the image in the viewer")
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	var selected *domain.Artwork

	if len(args) == 0 {
		resp, err := listService.Execute(ctx, services.ListRequest{})
		if err != nil {
			return err
		}
		if resp.Total == 0 {
			fmt.Println(ui.FormatWarning("No artworks found."))
			return nil
		}

		artworks := resp.Artworks
		idx, err := fuzzyfinder.Find(
			artworks,
			func(i int) string { return fmt.Sprintf("%s (%d)", artworks[i].Title, artworks[i].Year) },
			fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
				if i == -1 {
					return ""
				}
				return previewArtwork(artworks[i], w/2-4)
			}),
		)
		if err != nil {
			if errors.Is(err, fuzzyfinder.ErrAbort) {
				return nil
			}
			return err
		}
		selected = &artworks[idx]
	} else {
		query := strings.Join(args, " ")

		if a, err := listService.FindByID(ctx, query); err == nil {
			selected = a
		} else {
			resp, err := listService.Search(ctx, services.SearchRequest{Query: query})
			if err != nil {
				return err
			}
			if resp.Total == 0 {
				fmt.Println(ui.FormatWarning("No artworks found matching: " + query))
				return nil
			}
			selected = &resp.Artworks[0]
		}
	}

	printArtwork(*selected)

	if showCopy {
		if err := clipboard.WriteAll(selected.ImageURL); err != nil {
			fmt.Println(ui.FormatError("Failed to copy image URL"))
			return err
		}
		fmt.Println(ui.FormatSuccess("Copied image URL"))
	}

	if showOpen {
		target, err := resolveImageTarget(*selected)
		if err != nil {
			fmt.Println(ui.FormatWarning(err.Error()))
			return err
		}
		if err := fileOpener.Open(ctx, target); err != nil {
			fmt.Println(ui.FormatError("Failed to open image"))
			return err
		}
		fmt.Println(ui.FormatSuccess("Opened image"))
	}

	return nil
}

func printArtwork(a domain.Artwork) {
	fmt.Println(ui.FormatTitle(a.Title))
	fmt.Println()
	fmt.Println(ui.RenderKeyValue("ID", a.ID))
	fmt.Println(ui.RenderKeyValue("Medium", a.Medium))
	fmt.Println(ui.RenderKeyValue("Year", fmt.Sprintf("%d", a.Year)))
	if a.HasCategory() {
		fmt.Println(ui.RenderKeyValue("Category", a.Category))
	}
	fmt.Println(ui.RenderKeyValue("Added", a.GetDisplayDate(appConfig.DisplayDateFormat)))
	fmt.Println(ui.RenderKeyValue("Image", a.ImageURL))
	if a.HasDescription() {
		fmt.Println()
		fmt.Println(strings.Join(ui.WrapWords(a.Description, 72), "\n"))
	}
}

func previewArtwork(a domain.Artwork, width int) string {
	if width < 20 {
		width = 20
	}

	var s strings.Builder
	fmt.Fprintf(&s, "%s\n\n", a.Title)
	fmt.Fprintf(&s, "Medium:   %s\n", a.Medium)
	fmt.Fprintf(&s, "Year:     %d\n", a.Year)
	if a.HasCategory() {
		fmt.Fprintf(&s, "Category: %s\n", a.Category)
	}
	fmt.Fprintf(&s, "ID:       %s\n", a.ID)
	if a.HasDescription() {
		s.WriteString("\n")
		s.WriteString(strings.Join(ui.WrapWords(a.Description, width), "\n"))
	}
	return s.String()
}
