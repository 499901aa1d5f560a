package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kamal-hamza/skillsheet/pkg/ui"
)

var (
	configShow     bool
	configValidate bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Edit the skillsheet configuration file",
	Long: `Open the configuration file in your editor.

The file is created with defaults if it does not exist. Use --show to print
the effective configuration (after .env and SKILLSHEET_* overrides) and
--validate to report settings that load but likely misbehave.`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&configShow, "show", false, "Print the effective configuration")
	configCmd.Flags().BoolVar(&configValidate, "validate", false, "Report configuration warnings")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if configShow {
		data, err := yaml.Marshal(appConfig)
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		fmt.Println(ui.FormatMuted("# " + appConfigPath))
		fmt.Print(string(data))
		return nil
	}

	if configValidate {
		warnings := appConfig.Validate()
		if len(warnings) == 0 {
			fmt.Println(ui.FormatSuccess("Configuration looks good"))
			return nil
		}
		for _, w := range warnings {
			fmt.Println(ui.FormatWarning(w))
		}
		return fmt.Errorf("%d configuration warning(s)", len(warnings))
	}

	path := appConfigPath

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := appConfig.Save(path); err != nil {
			return err
		}
		fmt.Println(ui.FormatInfo("Created config with defaults"))
	}

	fmt.Println(ui.FormatInfo("Opening config: " + path))

	c := exec.Command(GetPreferredEditor(), path)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	return c.Run()
}
