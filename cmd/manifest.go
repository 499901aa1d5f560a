package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kamal-hamza/skillsheet/pkg/manifest"
	"github.com/kamal-hamza/skillsheet/pkg/ui"
)

var (
	manifestOutput string
	manifestStdout bool
)

var manifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "Generate or check a roster manifest",
	Long: `A manifest lists the character records of a roster. Records are loaded
from the files it names, relative to the manifest's directory.

Examples:
  skillsheet manifest generate ./kof97
  skillsheet manifest generate --stdout
  skillsheet manifest check ./kof97/manifest.yaml`,
}

var manifestGenerateCmd = &cobra.Command{
	Use:   "generate [dir]",
	Short: "Write a manifest listing every JSON record in a directory",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runManifestGenerate,
}

var manifestCheckCmd = &cobra.Command{
	Use:   "check [manifest]",
	Short: "Check that a manifest matches the records beside it",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runManifestCheck,
}

func init() {
	manifestGenerateCmd.Flags().StringVarP(&manifestOutput, "output", "o", "", "Manifest path (default <dir>/manifest.yaml)")
	manifestGenerateCmd.Flags().BoolVar(&manifestStdout, "stdout", false, "Print the manifest instead of writing it")

	manifestCmd.AddCommand(manifestGenerateCmd)
	manifestCmd.AddCommand(manifestCheckCmd)
}

func runManifestGenerate(cmd *cobra.Command, args []string) error {
	dir := rosterDir()
	if len(args) > 0 {
		dir = args[0]
	}

	if manifestStdout {
		m, err := manifest.Generate(os.DirFS(dir), ".")
		if err != nil {
			return err
		}
		data, err := yaml.Marshal(m)
		if err != nil {
			return fmt.Errorf("failed to marshal manifest: %w", err)
		}
		fmt.Print(string(data))
		return nil
	}

	out := manifestOutput
	if out == "" {
		out = filepath.Join(dir, manifest.FileName)
	}

	m, err := writeManifest(dir, out)
	if err != nil {
		fmt.Println(ui.FormatError("Failed to generate manifest"))
		return err
	}

	fmt.Println(ui.FormatSuccess(fmt.Sprintf("Wrote %s (%d records)", out, len(m.Files))))
	return nil
}

func runManifestCheck(cmd *cobra.Command, args []string) error {
	path := filepath.Join(rosterDir(), manifest.FileName)
	if appConfig.Data.Manifest != "" {
		path = appConfig.Data.Manifest
	}
	if len(args) > 0 {
		path = args[0]
	}

	problems, err := checkManifest(path)
	if err != nil {
		fmt.Println(ui.FormatError("Failed to read manifest"))
		return err
	}

	if len(problems) == 0 {
		fmt.Println(ui.FormatSuccess("Manifest is up to date: " + path))
		return nil
	}

	for _, p := range problems {
		fmt.Println(ui.FormatWarning(p))
	}
	fmt.Println()
	fmt.Println(ui.FormatInfo("Regenerate with: skillsheet manifest generate " + filepath.Dir(path)))
	return fmt.Errorf("manifest has %d problem(s)", len(problems))
}

// writeManifest scans dir for records and saves the manifest to out
func writeManifest(dir, out string) (*manifest.Manifest, error) {
	m, err := manifest.Generate(os.DirFS(dir), ".")
	if err != nil {
		return nil, err
	}
	if err := m.Save(out); err != nil {
		return nil, err
	}
	return m, nil
}

// checkManifest compares a manifest against the records in its directory.
// Only a manifest that can't be read is an error; mismatches are problems.
func checkManifest(path string) ([]string, error) {
	dir := filepath.Dir(path)
	fsys := os.DirFS(dir)

	m, err := manifest.Load(fsys, filepath.Base(path))
	if err != nil {
		return nil, err
	}

	// Load has already cleaned and validated every entry
	var problems []string
	listed := make(map[string]bool, len(m.Files))
	for _, f := range m.Files {
		listed[f] = true
		if _, err := fs.Stat(fsys, f); errors.Is(err, fs.ErrNotExist) {
			problems = append(problems, "listed but missing: "+f)
		}
	}

	actual, err := manifest.Generate(fsys, ".")
	if err != nil {
		return nil, err
	}
	for _, f := range actual.Files {
		if !listed[f] {
			problems = append(problems, "not listed: "+f)
		}
	}

	return problems, nil
}

// rosterDir is the directory of records the manifest and watch commands
// work on by default.
func rosterDir() string {
	switch {
	case appConfig.Data.Dir != "":
		return appConfig.Data.Dir
	case appConfig.Data.Manifest != "":
		return filepath.Dir(appConfig.Data.Manifest)
	default:
		return appWorkspace.DataPath
	}
}
