package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/folio/internal/adapters/imagestore"
	"github.com/kamal-hamza/folio/internal/core/services"
	"github.com/kamal-hamza/folio/pkg/ui"
)

var (
	addTitle       string
	addDescription string
	addMedium      string
	addYear        int
	addCategory    string
	addForce       bool
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:     "add <image>",
	Aliases: []string{"upload"},
	Short:   "Add an artwork to the catalog (alias: upload)",
	Long: `Upload an image and create a catalog record for it.

The title defaults to one derived from the file name, and the year
defaults to the current year.

Examples:
  folio add ./urban-dreams.png --medium "Oil on Canvas"
  folio add ./sketch.jpg --title "Morning Sketch" --medium Charcoal --category Studies
  folio add ./scan.tiff --medium Ink --year 2019 --description "From the old notebook"`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&addTitle, "title", "t", "", "Artwork title (defaults to the file name)")
	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "Short description")
	addCmd.Flags().StringVarP(&addMedium, "medium", "m", "", "Medium, e.g. \"Oil on Canvas\"")
	addCmd.Flags().IntVarP(&addYear, "year", "y", 0, "Year the work was made (defaults to this year)")
	addCmd.Flags().StringVarP(&addCategory, "category", "c", "", "Category")
	addCmd.Flags().BoolVar(&addForce, "force", false, "Upload even if the file does not look like an image")
	addCmd.MarkFlagRequired("medium")
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := getContext()
	path := args[0]

	if !addForce {
		ok, err := looksLikeImage(path)
		if err != nil {
			fmt.Println(ui.FormatError("Cannot read image: " + err.Error()))
			return err
		}
		if !ok {
			fmt.Println(ui.FormatWarning("File does not look like an image"))
			fmt.Println(ui.FormatMuted("Use --force to upload it anyway"))
			return fmt.Errorf("not an image: %s", path)
		}
	}

	year := addYear
	if !cmd.Flags().Changed("year") {
		year = time.Now().Year()
	}

	fmt.Println(ui.StyleInfo.Render(ui.IconUpload + " Uploading " + path + "..."))

	resp, err := uploadService.Execute(ctx, services.UploadRequest{
		ImagePath:   path,
		Title:       addTitle,
		Description: addDescription,
		Medium:      addMedium,
		Year:        year,
		Category:    addCategory,
	})
	if err != nil {
		fmt.Println(ui.FormatError("Failed to add artwork"))
		return err
	}

	a := resp.Artwork
	appLogger.Info("artwork added", "id", a.ID, "title", a.Title, "bytes", resp.Bytes)

	fmt.Println(ui.FormatSuccess("Added: " + a.Title))
	fmt.Println(ui.RenderKeyValue("ID", a.ID))
	fmt.Println(ui.RenderKeyValue("Medium", a.Medium))
	fmt.Println(ui.RenderKeyValue("Year", fmt.Sprintf("%d", a.Year)))
	if a.HasCategory() {
		fmt.Println(ui.RenderKeyValue("Category", a.Category))
	}
	fmt.Println(ui.RenderKeyValue("Image", a.ImageURL))
	return nil
}

// looksLikeImage sniffs the head of the file
func looksLikeImage(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	head := make([]byte, 3072)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return false, err
	}
	return imagestore.IsImage(head[:n]), nil
}
