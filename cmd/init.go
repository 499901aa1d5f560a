package cmd

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/kamal-hamza/skillsheet/internal/data"
	"github.com/kamal-hamza/skillsheet/pkg/config"
	"github.com/kamal-hamza/skillsheet/pkg/ui"
	"github.com/kamal-hamza/skillsheet/pkg/workspace"
)

var initForce bool

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a local, editable roster",
	Long: `Initialize the skillsheet workspace.

This copies the bundled roster to ~/.local/share/skillsheet/ so records can
be edited and new characters added:
  - kof97/      : Character records and manifest.yaml
  - exports/    : HTML reports
  - config.yaml : Global configuration (in the config directory)

Once initialized, the local roster is used instead of the bundled one.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite existing records with the bundled ones")
}

func runInit(cmd *cobra.Command, args []string) error {
	ws, err := workspace.New()
	if err != nil {
		fmt.Println(ui.FormatError("Failed to determine workspace location"))
		return err
	}

	if ws.HasRoster() && !initForce {
		fmt.Println(ui.FormatWarning("Workspace already initialized"))
		fmt.Println(ui.FormatMuted("Location: " + ws.RootPath))
		fmt.Println(ui.FormatMuted("Use --force to restore the bundled records"))
		return nil
	}

	fmt.Println(ui.FormatRocket("Initializing skillsheet workspace..."))
	fmt.Println()

	if err := ws.Initialize(); err != nil {
		fmt.Println(ui.FormatError("Failed to initialize workspace"))
		return err
	}

	path := ws.ConfigPath
	if configFile != "" {
		path = configFile
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := config.DefaultConfig().Save(path); err != nil {
			// Config is optional
			fmt.Println(ui.FormatWarning("Failed to create default config: " + err.Error()))
		} else {
			fmt.Println(ui.FormatSuccess("Default config created"))
		}
	}

	n, err := copyBundledRoster(data.FS, "kof97", ws.DataPath)
	if err != nil {
		fmt.Println(ui.FormatError("Failed to copy roster"))
		return err
	}
	fmt.Println(ui.FormatSuccess(fmt.Sprintf("Copied %d roster file(s)", n)))

	fmt.Println()
	fmt.Println(ui.FormatSuccess("Workspace initialized successfully!"))
	fmt.Println()
	fmt.Println(ui.RenderKeyValue("Location", ws.RootPath))
	fmt.Println(ui.RenderKeyValue("Config", path))
	fmt.Println()
	fmt.Println(ui.FormatInfo("Next steps:"))
	fmt.Println(ui.FormatMuted("  1. List the roster: skillsheet list"))
	fmt.Println(ui.FormatMuted("  2. Add a record to " + ws.DataPath))
	fmt.Println(ui.FormatMuted("  3. Keep the manifest current: skillsheet watch"))

	return nil
}

// copyBundledRoster copies every file below root in fsys into dest and
// returns how many were written.
func copyBundledRoster(fsys fs.FS, root, dest string) (int, error) {
	count := 0
	err := fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(root, filepath.FromSlash(p))
		if err != nil {
			return err
		}
		target := filepath.Join(dest, rel)

		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}

		content, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		if err := os.WriteFile(target, content, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", target, err)
		}
		count++
		return nil
	})
	if err != nil {
		return count, fmt.Errorf("failed to copy roster: %w", err)
	}
	return count, nil
}
