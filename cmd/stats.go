package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/spf13/cobra"

	"github.com/kamal-hamza/folio/internal/core/services"
	"github.com/kamal-hamza/folio/pkg/ui"
)

var (
	statsChart  bool
	statsNoOpen bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show catalog statistics",
	Long: `Summarize the catalog.

Includes:
  - Totals and the featured count
  - Works per year
  - Top mediums and categories
  - Newest and oldest entries

Use --chart to render the breakdowns as an HTML page of bar charts.`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&statsChart, "chart", false, "Write an HTML chart page and open it")
	statsCmd.Flags().BoolVar(&statsNoOpen, "no-open", false, "With --chart, only print the file path")
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	fmt.Println(ui.FormatRocket("Analyzing catalog..."))

	stats, err := statsService.Execute(ctx)
	if err != nil {
		fmt.Println(ui.FormatError("Failed to load artworks"))
		return err
	}

	fmt.Println()
	fmt.Println(ui.RenderKeyValue("Artworks", fmt.Sprintf("%d", stats.Total)))
	fmt.Println(ui.RenderKeyValue("Featured", fmt.Sprintf("%d", stats.Featured)))
	if stats.Newest != nil {
		fmt.Println(ui.RenderKeyValue("Newest", fmt.Sprintf("%s (%s)",
			stats.Newest.Title, stats.Newest.GetDisplayDate(appConfig.DisplayDateFormat))))
	}
	if stats.Oldest != nil {
		fmt.Println(ui.RenderKeyValue("Oldest", fmt.Sprintf("%s (%s)",
			stats.Oldest.Title, stats.Oldest.GetDisplayDate(appConfig.DisplayDateFormat))))
	}

	if stats.Total == 0 {
		return nil
	}

	printBuckets("Works per Year", stats.ByYear, 0)
	printBuckets("Top Mediums", stats.ByMedium, 5)
	printBuckets("Categories", stats.ByCategory, 5)

	if !statsChart {
		return nil
	}

	path := appVault.GetCachePath("stats.html")
	if !appVault.Exists() {
		path = filepath.Join(os.TempDir(), "folio-stats.html")
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	if err := renderStatsCharts(f, stats); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(ui.FormatSuccess("Charts written to " + path))
	if statsNoOpen {
		return nil
	}
	return fileOpener.Open(ctx, path)
}

// printBuckets renders a labelled histogram; limit 0 prints every bucket
func printBuckets(title string, buckets []services.Bucket, limit int) {
	fmt.Println()
	fmt.Println(ui.StyleHeader.Render(title))

	if limit > 0 && len(buckets) > limit {
		buckets = buckets[:limit]
	}

	maxCount, labelWidth := 0, 0
	for _, b := range buckets {
		maxCount = max(maxCount, b.Count)
		labelWidth = max(labelWidth, len(b.Label))
	}

	for _, b := range buckets {
		bar := strings.Repeat("█", barLength(b.Count, maxCount, 30))
		fmt.Printf("  %-*s %s %d\n", labelWidth, b.Label, ui.StyleAccent.Render(bar), b.Count)
	}
}

func barLength(count, maxCount, width int) int {
	if maxCount == 0 || count == 0 {
		return 0
	}
	n := count * width / maxCount
	if n < 1 {
		return 1
	}
	return n
}

func renderStatsCharts(w io.Writer, stats *services.Stats) error {
	page := components.NewPage()
	page.PageTitle = "folio statistics"
	page.AddCharts(
		bucketChart("Works per Year", stats.ByYear),
		bucketChart("Mediums", stats.ByMedium),
		bucketChart("Categories", stats.ByCategory),
	)
	if err := page.Render(w); err != nil {
		return fmt.Errorf("failed to render charts: %w", err)
	}
	return nil
}

func bucketChart(title string, buckets []services.Bucket) *charts.Bar {
	labels := make([]string, 0, len(buckets))
	data := make([]opts.BarData, 0, len(buckets))
	for _, b := range buckets {
		labels = append(labels, b.Label)
		data = append(data, opts.BarData{Value: b.Count})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Trigger: "axis"}),
	)
	bar.SetXAxis(labels).AddSeries("Artworks", data)
	return bar
}
