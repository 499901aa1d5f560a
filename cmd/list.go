package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/skillsheet/internal/core/services"
	"github.com/kamal-hamza/skillsheet/pkg/ui"
)

var (
	listName   string
	listReveal int
	listAll    bool
	listJSON   bool
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List the character roster",
	Aliases: []string{"ls"},
	Long: `List characters in pinyin order, one page at a time.

The first page shows page_size characters (6 by default). Each --reveal
shows one more page, the way scrolling reveals more cards on the site.

Examples:
  skillsheet list
  skillsheet list --reveal 1
  skillsheet list --name 草薙京
  skillsheet list --all --json`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listName, "name", "n", "", "Show only characters with this exact name (aliases allowed)")
	listCmd.Flags().IntVarP(&listReveal, "reveal", "r", 0, "Reveal this many extra pages")
	listCmd.Flags().BoolVarP(&listAll, "all", "a", false, "Show every character")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Print the visible characters as JSON")
}

func runList(cmd *cobra.Command, args []string) error {
	req := services.BrowseRequest{
		Name:    characterName([]string{listName}),
		Reveals: listReveal,
		All:     listAll,
	}

	ctx := getContext()
	resp, err := browseService.Execute(ctx, req)
	if err != nil {
		fmt.Println(ui.FormatError("Failed to list characters"))
		return err
	}

	if listJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(resp.Characters)
	}

	// Handle empty results
	if resp.Total == 0 {
		if req.Name != "" {
			fmt.Println(ui.FormatWarning("No character named: " + req.Name))
			fmt.Println(ui.FormatMuted("Known: " + strings.Join(resp.Names, " ")))
		} else {
			fmt.Println(ui.FormatWarning("No characters found"))
			fmt.Println(ui.FormatInfo("Check the roster with: skillsheet doctor"))
		}
		return nil
	}

	fmt.Println(ui.FormatTitle("KOF97 角色"))
	fmt.Println()

	table := ui.NewTable([]ui.TableColumn{
		{Header: "Name", Width: 12, Align: "left"},
		{Header: "Moves", Width: 5, Align: "right"},
		{Header: "Images", Width: 6, Align: "right"},
		{Header: "Avatar", Width: 11, Align: "left"},
	})
	table.MaxWidth = appConfig.TableWidth

	for _, c := range resp.Characters {
		table.AddRow([]string{
			c.Name,
			strconv.Itoa(c.SkillCount()),
			strconv.Itoa(c.ImageCount()),
			c.Avatar.Kind(),
		})
	}

	fmt.Print(table.Render())
	fmt.Println()

	summary := fmt.Sprintf("Showing %d of %d characters", resp.Visible, resp.Total)
	fmt.Println(ui.FormatMuted(summary))
	if resp.HasMore {
		fmt.Println(ui.FormatMuted(fmt.Sprintf("Load more: skillsheet list --reveal %d", listReveal+1)))
	}

	return nil
}
