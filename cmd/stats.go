package cmd

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/skillsheet/internal/adapters/report"
	"github.com/kamal-hamza/skillsheet/internal/core/services"
	"github.com/kamal-hamza/skillsheet/pkg/ui"
)

var (
	statsHTML   bool
	statsOutput string
	statsOpen   bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show roster statistics",
	Long: `Count moves and images across the roster.

Includes:
  - Totals and averages
  - Moves per character
  - Move type distribution

With --html an interactive chart page is written to the export directory
(or --output) and can be opened with --open.`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&statsHTML, "html", false, "Write an HTML chart report")
	statsCmd.Flags().StringVarP(&statsOutput, "output", "o", "", "Report path (implies --html)")
	statsCmd.Flags().BoolVar(&statsOpen, "open", false, "Open the HTML report after writing it")
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := getContext()
	stats, err := statsService.Execute(ctx)
	if err != nil {
		fmt.Println(ui.FormatError("Failed to compute stats"))
		return err
	}

	if statsHTML || statsOutput != "" {
		return writeStatsReport(stats)
	}

	fmt.Println()
	fmt.Println(ui.FormatTitle("Roster Analytics"))
	fmt.Println()

	total := len(stats.Characters)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 4, ' ', 0)
	fmt.Fprintf(w, "%s\t%d\n", ui.StyleBold.Render("Characters:"), total)
	fmt.Fprintf(w, "%s\t%d\n", ui.StyleBold.Render("Moves:"), stats.TotalSkills)
	fmt.Fprintf(w, "%s\t%d\n", ui.StyleBold.Render("Images:"), stats.TotalImages)

	avg := 0.0
	if total > 0 {
		avg = float64(stats.TotalSkills) / float64(total)
	}
	fmt.Fprintf(w, "%s\t%.1f moves/character\n", ui.StyleBold.Render("Average:"), avg)
	if stats.Skipped > 0 {
		fmt.Fprintf(w, "%s\t%d\n", ui.StyleBold.Render("Skipped records:"), stats.Skipped)
	}
	w.Flush()
	fmt.Println()

	if total == 0 {
		return nil
	}

	table := ui.NewTable([]ui.TableColumn{
		{Header: "Name", Width: 12, Align: "left"},
		{Header: "Moves", Width: 5, Align: "right"},
		{Header: "Images", Width: 6, Align: "right"},
	})
	table.MaxWidth = appConfig.TableWidth
	for _, c := range stats.Characters {
		table.AddRow([]string{c.Name, strconv.Itoa(c.Skills), strconv.Itoa(c.Images)})
	}
	fmt.Print(table.Render())
	fmt.Println()

	renderTypeBars(stats.Types)
	return nil
}

// renderTypeBars displays a horizontal bar chart of the most common move types
func renderTypeBars(types []services.TypeCount) {
	if len(types) == 0 {
		return
	}

	fmt.Println(ui.StyleHeader.Render("Move Types"))

	limit := min(5, len(types))
	maxCount := types[0].Count
	barWidth := 20

	for _, t := range types[:limit] {
		length := int(math.Ceil(float64(t.Count) / float64(maxCount) * float64(barWidth)))
		fmt.Printf("%s %s %s\n",
			ui.StyleAccent.Render(padRight(strings.Repeat("█", length), barWidth)),
			padRight(t.Type, 12),
			ui.StyleMuted.Render(strconv.Itoa(t.Count)),
		)
	}
}

func writeStatsReport(stats *services.StatsResponse) error {
	path := statsOutput
	if path == "" {
		path = appWorkspace.GetExportPath("stats.html")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report: %w", err)
	}
	defer f.Close()

	if err := report.RenderStats(f, stats); err != nil {
		return err
	}

	fmt.Println(ui.FormatSuccess("Report written: " + path))
	if statsOpen {
		return OpenFile(path)
	}
	return nil
}
