package cmd

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/kamal-hamza/skillsheet/internal/core/domain"
	"github.com/kamal-hamza/skillsheet/pkg/ui"
)

var (
	pickMoves bool
	pickCopy  bool
)

// pickCmd represents the pick command
var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Fuzzy-find a character or move",
	Long: `Pick a character with a fuzzy finder and print its move list.

With --moves the finder lists every move of every character and prints the
chosen move's command and resolved image URLs. --copy puts the move command
(or the character name) on the clipboard.

Examples:
  skillsheet pick
  skillsheet pick --moves --copy`,
	RunE: runPick,
}

func init() {
	pickCmd.Flags().BoolVarP(&pickMoves, "moves", "m", false, "Pick from every move instead of characters")
	pickCmd.Flags().BoolVarP(&pickCopy, "copy", "c", false, "Copy the selection to the clipboard")
}

// pickEntry is one line in the move finder
type pickEntry struct {
	character domain.Character
	skill     domain.Skill
}

func runPick(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	roster, err := loadRoster(ctx)
	if err != nil {
		return err
	}
	if roster.Total == 0 {
		fmt.Println(ui.FormatWarning("No characters found"))
		return nil
	}

	if pickMoves {
		return pickMove(roster.Characters)
	}
	return pickCharacter(roster.Characters)
}

func pickCharacter(chars []domain.Character) error {
	idx, err := fuzzyfinder.Find(
		chars,
		func(i int) string {
			return chars[i].Name
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			return characterPreview(chars[i])
		}),
	)
	if err != nil {
		// User cancelled (Ctrl+C or ESC)
		fmt.Println(ui.FormatInfo("Operation cancelled."))
		return nil
	}

	c := chars[idx]
	fmt.Println(ui.FormatTitle(ui.IconFighter + " " + c.Name))
	fmt.Println()
	for _, sk := range c.Skills {
		printSkill(c, sk)
	}

	if pickCopy {
		copyToClipboard(c.Name)
	}
	return nil
}

func pickMove(chars []domain.Character) error {
	var entries []pickEntry
	for _, c := range chars {
		for _, sk := range c.Skills {
			entries = append(entries, pickEntry{character: c, skill: sk})
		}
	}
	if len(entries) == 0 {
		fmt.Println(ui.FormatWarning("No moves found"))
		return nil
	}

	idx, err := fuzzyfinder.Find(
		entries,
		func(i int) string {
			e := entries[i]
			return fmt.Sprintf("%s  %s  %s  %s", e.character.Name, e.skill.Name, e.skill.Type, e.skill.Command)
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			return movePreview(entries[i])
		}),
	)
	if err != nil {
		fmt.Println(ui.FormatInfo("Operation cancelled."))
		return nil
	}

	e := entries[idx]
	fmt.Println(ui.FormatTitle(e.character.Name))
	fmt.Println()
	showURLs = true
	printSkill(e.character, e.skill)

	if pickCopy {
		copyToClipboard(e.skill.Command)
	}
	return nil
}

func characterPreview(c domain.Character) string {
	var s strings.Builder
	s.WriteString(fmt.Sprintf("Name:   %s\n", c.Name))
	s.WriteString(fmt.Sprintf("Moves:  %d\n", c.SkillCount()))
	s.WriteString(fmt.Sprintf("Avatar: %s\n", c.Avatar.Kind()))
	if types := c.SkillTypes(); len(types) > 0 {
		s.WriteString(fmt.Sprintf("Types:  %s\n", strings.Join(types, ", ")))
	}
	s.WriteString("\n")
	for _, sk := range c.Skills {
		s.WriteString(fmt.Sprintf("%s  %s\n", sk.Name, sk.Command))
	}
	return s.String()
}

func movePreview(e pickEntry) string {
	var s strings.Builder
	s.WriteString(fmt.Sprintf("%s / %s\n", e.character.Name, e.skill.Name))
	if e.skill.Type != "" {
		s.WriteString(fmt.Sprintf("Type:    %s\n", e.skill.Type))
	}
	s.WriteString(fmt.Sprintf("Command: %s\n", e.skill.Command))
	if e.skill.Description != "" {
		s.WriteString("\n" + e.skill.Description + "\n")
	}
	if e.skill.HasImages() {
		s.WriteString("\nImages:\n")
		for _, u := range skillImageURLs(e.character, e.skill) {
			s.WriteString("  " + u + "\n")
		}
	}
	return s.String()
}

func copyToClipboard(text string) {
	if err := clipboard.WriteAll(text); err != nil {
		fmt.Println(ui.FormatWarning("Could not copy to clipboard: " + err.Error()))
		return
	}
	fmt.Println(ui.FormatSuccess("Copied to clipboard: " + text))
}
