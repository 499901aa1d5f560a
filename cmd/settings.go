package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/skillsheet/pkg/settings"
	"github.com/kamal-hamza/skillsheet/pkg/ui"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change display settings",
	Long: `Display settings control the color scheme and primary color of the
terminal output, plus the layout preferences shared with the site.

Examples:
  skillsheet settings
  skillsheet settings get primary_color
  skillsheet settings set color_scheme dark
  skillsheet settings reset`,
	RunE: runSettingsShow,
}

var settingsGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one setting",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsGet,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runSettingsSet,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsReset,
}

func init() {
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsResetCmd)
}

func runSettingsShow(cmd *cobra.Command, args []string) error {
	current := appSettings.Get()

	fmt.Println(ui.FormatTitle("Settings"))
	fmt.Println()
	for _, k := range settings.Keys() {
		v, err := current.Get(k)
		if err != nil {
			return err
		}
		allowed, _ := settings.Allowed(k)
		fmt.Printf("%s  %s\n", ui.RenderKeyValue(k, v), ui.FormatMuted("("+strings.Join(allowed, "|")+")"))
	}
	fmt.Println()
	fmt.Println(ui.FormatMuted("Stored in " + settingsRepo.Path()))
	return nil
}

func runSettingsGet(cmd *cobra.Command, args []string) error {
	v, err := appSettings.Get().Get(args[0])
	if err != nil {
		return settingsKeyError(err)
	}
	fmt.Println(v)
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	err := appSettings.Update(getContext(), func(s *settings.Settings) error {
		return s.SetField(key, value)
	})
	if err != nil {
		return settingsKeyError(err)
	}

	fmt.Println(ui.FormatSuccess(fmt.Sprintf("%s = %s", key, value)))
	return nil
}

func runSettingsReset(cmd *cobra.Command, args []string) error {
	if err := appSettings.Reset(getContext()); err != nil {
		return fmt.Errorf("failed to reset settings: %w", err)
	}
	fmt.Println(ui.FormatSuccess("Settings restored to defaults"))
	return nil
}

// settingsKeyError adds the list of valid keys to unknown-key errors
func settingsKeyError(err error) error {
	if strings.Contains(err.Error(), settings.ErrUnknownKey.Error()) {
		return fmt.Errorf("%w (valid keys: %s)", err, strings.Join(settings.Keys(), ", "))
	}
	return err
}
