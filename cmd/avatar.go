package cmd

import (
	"fmt"
	"html"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kamal-hamza/skillsheet/internal/core/domain"
	"github.com/kamal-hamza/skillsheet/internal/core/services"
	"github.com/kamal-hamza/skillsheet/pkg/sprite"
	"github.com/kamal-hamza/skillsheet/pkg/ui"
)

// characterPageScale is the natural-mode scale of the avatar on the
// character page.
const characterPageScale = 0.3

var (
	avatarMode  string
	avatarSize  float64
	avatarScale float64
	avatarHTML  string
)

// avatarCmd represents the avatar command
var avatarCmd = &cobra.Command{
	Use:   "avatar [name]",
	Short: "Render a character's sprite avatar",
	Long: `Compute the display box for a character's avatar on the shared sprite sheet.

Modes:
  fit      size x size box, scaled by size / sprite width (default)
  natural  the sprite's own size times --scale, rounded, at least 1px
  percent  percentage background offsets instead of a transform

Characters without a sprite print their standalone image or the placeholder.

Examples:
  skillsheet avatar 八神庵
  skillsheet avatar kyo --mode natural --scale 0.3
  skillsheet avatar 草薙京 --html avatar.html`,
	RunE: runAvatar,
}

func init() {
	avatarCmd.Flags().StringVarP(&avatarMode, "mode", "m", "fit", "Render mode: fit, natural or percent")
	avatarCmd.Flags().Float64VarP(&avatarSize, "size", "s", sprite.DefaultAvatarSize, "Box size for fit and percent modes")
	avatarCmd.Flags().Float64Var(&avatarScale, "scale", characterPageScale, "Scale for natural mode")
	avatarCmd.Flags().StringVar(&avatarHTML, "html", "", "Write an HTML preview to this file")
}

func runAvatar(cmd *cobra.Command, args []string) error {
	ctx := getContext()
	resp, err := browseService.Character(ctx, services.CharacterRequest{Name: characterName(args)})
	if err != nil {
		fmt.Println(ui.FormatError("Failed to load character"))
		return err
	}
	c := resp.Character

	fmt.Println(ui.FormatTitle(c.Name))
	fmt.Println()

	if !c.Avatar.HasSprite() {
		fmt.Println(ui.RenderKeyValue("Avatar", c.Avatar.Kind()))
		fmt.Println(ui.RenderKeyValue("URL", avatarURL(c)))
		if avatarHTML != "" {
			markup := fmt.Sprintf(`<img src="%s" alt="%s" width="%s" height="%s">`,
				html.EscapeString(avatarURL(c)), html.EscapeString(c.Name), formatPx(avatarSize), formatPx(avatarSize))
			return writeAvatarHTML(c, markup)
		}
		return nil
	}

	pos := *c.Avatar.Sprite
	sheet := resolvedSheet()
	if err := sheet.Validate(pos); err != nil {
		appLogger.Warn("sprite rectangle outside the sheet", zap.String("character", c.Name), zap.Error(err))
		fmt.Println(ui.FormatWarning("Sprite rectangle is outside the sheet: " + err.Error()))
	}

	fmt.Println(ui.RenderKeyValue("Sprite", fmt.Sprintf("x=%s y=%s %sx%s", formatPx(pos.X), formatPx(pos.Y), formatPx(pos.Width), formatPx(pos.Height))))
	fmt.Println(ui.RenderKeyValue("Sheet", sheet.Image))

	var markup string
	switch avatarMode {
	case "fit", "natural":
		var box sprite.Box
		if avatarMode == "fit" {
			box = sheet.FitToSize(pos, avatarSize)
		} else {
			box = sheet.Natural(pos, avatarScale)
		}
		fmt.Println(ui.RenderKeyValue("Box", fmt.Sprintf("%sx%s", formatPx(box.Width), formatPx(box.Height))))
		fmt.Println(ui.RenderKeyValue("Scale", formatPx(box.Scale)))
		fmt.Println(ui.RenderKeyValue("Offset", fmt.Sprintf("%s %s", formatPx(box.OffsetX), formatPx(box.OffsetY))))
		fmt.Println()
		fmt.Println(ui.FormatMuted("outer: " + box.OuterStyle()))
		fmt.Println(ui.FormatMuted("inner: " + box.InnerStyle()))
		markup = fmt.Sprintf(`<div style="%s"><div style="%s"></div></div>`,
			html.EscapeString(box.OuterStyle()), html.EscapeString(box.InnerStyle()))

	case "percent":
		pb := sheet.Percent(pos, avatarSize)
		fmt.Println(ui.RenderKeyValue("Box", fmt.Sprintf("%sx%s", formatPx(pb.Size), formatPx(pb.Size))))
		fmt.Println()
		fmt.Println(ui.FormatMuted("style: " + pb.Style()))
		markup = fmt.Sprintf(`<div style="%s"></div>`, html.EscapeString(pb.Style()))

	default:
		return fmt.Errorf("unknown mode %q (use fit, natural or percent)", avatarMode)
	}

	if avatarHTML != "" {
		return writeAvatarHTML(c, markup)
	}
	return nil
}

func writeAvatarHTML(c domain.Character, markup string) error {
	page := fmt.Sprintf("<!doctype html>\n<html><head><meta charset=\"utf-8\"><title>%s</title></head>\n<body>\n%s\n</body></html>\n",
		html.EscapeString(c.Name), markup)

	if err := os.WriteFile(avatarHTML, []byte(page), 0644); err != nil {
		return fmt.Errorf("failed to write preview: %w", err)
	}
	fmt.Println()
	fmt.Println(ui.FormatSuccess("Preview written to " + avatarHTML))
	return nil
}

func formatPx(v float64) string {
	if v == 0 {
		return "0"
	}
	return fmt.Sprintf("%g", v)
}
