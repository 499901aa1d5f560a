package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/skillsheet/internal/core/domain"
	"github.com/kamal-hamza/skillsheet/pkg/assets"
	"github.com/kamal-hamza/skillsheet/pkg/sprite"
	"github.com/kamal-hamza/skillsheet/pkg/ui"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the health of your skillsheet setup",
	Long: `Diagnose issues with your skillsheet setup.

Checks for:
  - Configuration file and warnings
  - Deployment base path detection
  - Roster records that fail to load
  - Duplicate character names and bad sprite positions
  - Local manifest drift`,
	Run: runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) {
	fmt.Println(ui.FormatTitle("🏥 skillsheet Doctor"))
	fmt.Println()

	// 1. Configuration
	checkStep("Configuration File", func() error {
		if _, err := os.Stat(appConfigPath); os.IsNotExist(err) {
			return fmt.Errorf("missing at %s (defaults in use)", appConfigPath)
		}
		return nil
	})

	checkStep("Configuration Values", func() error {
		if warnings := appConfig.Validate(); len(warnings) > 0 {
			return errors.New(strings.Join(warnings, "\n    "))
		}
		return nil
	})

	checkStep("Base Path", func() error {
		base := appBase.Base()
		detected, ok := appBase.(*assets.ScriptTagBase)
		if !ok {
			fmt.Println(ui.FormatMuted("    " + base))
			return nil
		}
		if detected.Err() != nil {
			return fmt.Errorf("index_html unreadable, using %s: %w", base, detected.Err())
		}
		if !detected.Detected() {
			return fmt.Errorf("no script tag in %s, using %s", appConfig.IndexHTML, base)
		}
		fmt.Println(ui.FormatMuted("    detected " + base))
		return nil
	})

	checkStep("CDN", func() error {
		if strings.TrimSpace(appConfig.CDN.BaseURL) == "" {
			fmt.Println(ui.FormatMuted("    disabled, assets are served from the base path"))
			return nil
		}
		fmt.Println(ui.FormatMuted("    " + appConfig.CDN.BaseURL))
		return nil
	})

	checkStep("EDITOR Variable", func() error {
		if appConfig.Editor == "" && os.Getenv("EDITOR") == "" {
			return fmt.Errorf("not set (using fallback 'vi')")
		}
		return nil
	})

	// 2. Roster
	fmt.Println()
	fmt.Println(ui.FormatInfo("Checking roster (" + sourceLabel + ")..."))

	roster, err := loadRoster(getContext())
	checkStep("Roster Loads", func() error {
		if err != nil {
			return err
		}
		if roster.Total == 0 {
			return fmt.Errorf("no characters found")
		}
		fmt.Println(ui.FormatMuted(fmt.Sprintf("    %d characters", roster.Total)))
		return nil
	})
	if err != nil {
		return
	}

	checkStep("Record Format", func() error {
		if len(roster.Skipped) > 0 {
			return fmt.Errorf("%d record(s) skipped: %s", len(roster.Skipped), strings.Join(roster.Skipped, ", "))
		}
		return nil
	})

	checkStep("Unique Names", func() error {
		if dups := duplicateNames(roster.Characters); len(dups) > 0 {
			return fmt.Errorf("duplicated: %s (only the first is reachable by name)", strings.Join(dups, ", "))
		}
		return nil
	})

	checkStep("Sprite Positions", func() error {
		if problems := spriteProblems(roster.Characters, appSheet); len(problems) > 0 {
			return errors.New(strings.Join(problems, "\n    "))
		}
		return nil
	})

	if sourceLabel == appWorkspace.ManifestPath() {
		checkStep("Local Manifest", func() error {
			problems, err := checkManifest(sourceLabel)
			if err != nil {
				return err
			}
			if len(problems) > 0 {
				return fmt.Errorf("%s (run 'skillsheet manifest generate')", strings.Join(problems, "; "))
			}
			return nil
		})
	}
}

// checkStep runs a check function and prints the result nicely
func checkStep(name string, check func() error) {
	err := check()
	if err == nil {
		fmt.Printf("%s %s\n", ui.FormatSuccess("✔"), name)
	} else {
		fmt.Printf("%s %s\n", ui.FormatError("✘"), name)
		fmt.Printf("    %s\n", ui.StyleMuted.Render(err.Error()))
	}
}

// duplicateNames returns names that occur more than once, in roster order
func duplicateNames(chars []domain.Character) []string {
	counts := make(map[string]int, len(chars))
	var dups []string
	for _, c := range chars {
		counts[c.Name]++
		if counts[c.Name] == 2 {
			dups = append(dups, c.Name)
		}
	}
	return dups
}

// spriteProblems lists sprite avatars that fall outside the sheet
func spriteProblems(chars []domain.Character, sheet sprite.Sheet) []string {
	var problems []string
	for _, c := range chars {
		if !c.Avatar.HasSprite() {
			continue
		}
		if err := sheet.Validate(*c.Avatar.Sprite); err != nil {
			msg := strings.ReplaceAll(err.Error(), "\n", "; ")
			problems = append(problems, c.Name+": "+msg)
		}
	}
	return problems
}
