package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/skillsheet/internal/core/domain"
	"github.com/kamal-hamza/skillsheet/internal/core/services"
	"github.com/kamal-hamza/skillsheet/pkg/ui"
)

var (
	showReveal int
	showAll    bool
	showURLs   bool
	showRaw    bool
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show a character's move list",
	Long: `Show one character's moves, skills_page_size at a time (3 by default).

With no name, or a name that is not in the roster, the first character is
shown, matching the character page's fallback.

Examples:
  skillsheet show 八神庵
  skillsheet show kyo --all
  skillsheet show 草薙京 --urls
  skillsheet show 八神庵 --raw`,
	RunE: runShow,
}

func init() {
	showCmd.Flags().IntVarP(&showReveal, "reveal", "r", 0, "Reveal this many extra pages of moves")
	showCmd.Flags().BoolVarP(&showAll, "all", "a", false, "Show every move")
	showCmd.Flags().BoolVar(&showURLs, "urls", false, "Print resolved image URLs")
	showCmd.Flags().BoolVar(&showRaw, "raw", false, "Print the highlighted JSON record")
}

func runShow(cmd *cobra.Command, args []string) error {
	req := services.CharacterRequest{
		Name:    characterName(args),
		Reveals: showReveal,
		All:     showAll,
	}

	ctx := getContext()
	resp, err := browseService.Character(ctx, req)
	if err != nil {
		fmt.Println(ui.FormatError("Failed to load character"))
		return err
	}

	if req.Name != "" && !resp.Found {
		fmt.Println(ui.FormatWarning(fmt.Sprintf("No character named %q, showing %s", req.Name, resp.Character.Name)))
		fmt.Println()
	}

	c := resp.Character
	if showRaw {
		data, err := json.MarshalIndent(c, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", c.Name, err)
		}
		fmt.Println(highlightJSON(string(data)))
		return nil
	}

	fmt.Println(ui.FormatTitle(ui.IconFighter + " " + c.Name))
	fmt.Println(ui.FormatMuted(fmt.Sprintf("共 %d 招", c.SkillCount())))
	fmt.Println()
	fmt.Println(ui.RenderKeyValue("Avatar", c.Avatar.Kind()))
	if showURLs {
		fmt.Println(ui.RenderKeyValue("Avatar URL", avatarURL(c)))
	}
	fmt.Println()

	for _, sk := range resp.Skills {
		printSkill(c, sk)
	}

	fmt.Println(ui.FormatMuted(fmt.Sprintf("Showing %d of %d moves", resp.Visible, resp.Total)))
	if resp.HasMore {
		fmt.Println(ui.FormatMuted(fmt.Sprintf("Load more: skillsheet show %s --reveal %d", c.Name, showReveal+1)))
	}

	return nil
}

func printSkill(c domain.Character, sk domain.Skill) {
	header := ui.StyleBold.Render(sk.Name)
	if sk.Type != "" {
		header += " " + ui.FormatMuted("["+sk.Type+"]")
	}
	fmt.Println(ui.IconMove + " " + header)
	fmt.Println("   " + ui.FormatCommand(sk.Command))

	if sk.Description != "" {
		fmt.Println("   " + ui.StyleSubtle.Render(sk.Description))
	}

	if sk.HasImages() {
		if showURLs {
			for _, u := range skillImageURLs(c, sk) {
				fmt.Println("   " + ui.FormatMuted(ui.IconImage+" "+u))
			}
		} else {
			fmt.Println("   " + ui.FormatMuted(fmt.Sprintf("%s %d image(s): %s", ui.IconImage, len(sk.Images), strings.Join(sk.Images, ", "))))
		}
	}
	fmt.Println()
}
