package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/kamal-hamza/skillsheet/pkg/ui"
)

var aliasForce bool

var aliasCmd = &cobra.Command{
	Use:   "alias",
	Short: "Manage character name aliases",
	Long: `Manage short names for characters.

An alias can be used anywhere a character name is expected, e.g.
'skillsheet show kyo'. Alias names are case-insensitive.

Examples:
  skillsheet alias list
  skillsheet alias add kyo 草薙京
  skillsheet alias remove kyo`,
}

var aliasListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all defined aliases",
	RunE:  runAliasList,
}

var aliasAddCmd = &cobra.Command{
	Use:   "add <alias> <character>",
	Short: "Add a new alias",
	Long: `Add a character alias to your configuration.

The alias should be a single ASCII word: letters, digits, '-' or '_'.
It may not be the name of a character in the roster.

Examples:
  skillsheet alias add kyo 草薙京
  skillsheet alias add iori 八神庵`,
	Args: cobra.ExactArgs(2),
	RunE: runAliasAdd,
}

var aliasRemoveCmd = &cobra.Command{
	Use:     "remove <alias>",
	Aliases: []string{"rm", "delete", "del"},
	Short:   "Remove an alias",
	Args:    cobra.ExactArgs(1),
	RunE:    runAliasRemove,
}

func init() {
	aliasAddCmd.Flags().BoolVarP(&aliasForce, "force", "f", false, "Overwrite an existing alias without asking")

	aliasCmd.AddCommand(aliasListCmd)
	aliasCmd.AddCommand(aliasAddCmd)
	aliasCmd.AddCommand(aliasRemoveCmd)
}

func runAliasList(cmd *cobra.Command, args []string) error {
	cfg := appConfig

	if len(cfg.Aliases) == 0 {
		fmt.Println(ui.FormatInfo("No aliases defined"))
		fmt.Println(ui.FormatMuted("\nTo add an alias, use:"))
		fmt.Println(ui.FormatMuted("  skillsheet alias add <alias> <character>"))
		return nil
	}

	names := make([]string, 0, len(cfg.Aliases))
	for name := range cfg.Aliases {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println(ui.StyleTitle.Render("Character Aliases"))
	fmt.Println()

	maxNameLen := 0
	for _, name := range names {
		maxNameLen = max(maxNameLen, lipgloss.Width(name))
	}

	for _, name := range names {
		padding := strings.Repeat(" ", maxNameLen-lipgloss.Width(name))
		fmt.Printf("  %s%s  →  %s\n",
			ui.StyleSuccess.Render(name),
			padding,
			cfg.Aliases[name])
	}

	fmt.Println()
	fmt.Println(ui.FormatInfo(fmt.Sprintf("Total: %d alias(es)", len(cfg.Aliases))))

	return nil
}

func runAliasAdd(cmd *cobra.Command, args []string) error {
	name := strings.ToLower(args[0])
	target := strings.TrimSpace(args[1])

	if err := validateAliasName(name); err != nil {
		return err
	}
	if target == "" {
		return fmt.Errorf("character name cannot be empty")
	}

	roster, err := loadRoster(getContext())
	if err != nil {
		return err
	}
	known := make([]string, 0, roster.Total)
	for _, c := range roster.Characters {
		known = append(known, c.Name)
	}
	if isReservedName(name, known) {
		return fmt.Errorf("cannot create alias '%s': it is already a character name", name)
	}
	if !containsName(known, target) {
		fmt.Println(ui.FormatWarning(fmt.Sprintf("%s is not in the current roster", target)))
	}

	cfg := appConfig

	if existing, ok := cfg.Aliases[name]; ok && existing != target && !aliasForce {
		fmt.Println(ui.FormatWarning(fmt.Sprintf("Alias '%s' already exists: %s", name, existing)))
		fmt.Print("Overwrite? (y/N): ")
		var response string
		fmt.Scanln(&response)
		if strings.ToLower(response) != "y" {
			fmt.Println(ui.FormatInfo("Cancelled"))
			return nil
		}
	}

	cfg.Aliases[name] = target

	if err := cfg.Save(appConfigPath); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println(ui.FormatSuccess(fmt.Sprintf("Created alias: %s → %s", name, target)))
	return nil
}

func runAliasRemove(cmd *cobra.Command, args []string) error {
	name := strings.ToLower(args[0])

	cfg := appConfig

	target, ok := cfg.Aliases[name]
	if !ok {
		return fmt.Errorf("alias '%s' not found", name)
	}

	delete(cfg.Aliases, name)

	if err := cfg.Save(appConfigPath); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println(ui.FormatSuccess(fmt.Sprintf("Removed alias: %s → %s", name, target)))

	return nil
}

// validateAliasName checks if an alias name is valid
func validateAliasName(name string) error {
	if name == "" {
		return fmt.Errorf("alias name cannot be empty")
	}

	if strings.Contains(name, " ") {
		return fmt.Errorf("alias name cannot contain spaces")
	}

	if strings.HasPrefix(name, "-") {
		return fmt.Errorf("alias name cannot start with '-'")
	}

	for _, ch := range name {
		if !isValidAliasChar(ch) {
			return fmt.Errorf("alias name contains invalid character: %c", ch)
		}
	}

	return nil
}

// isValidAliasChar checks if a character is valid for an alias name
func isValidAliasChar(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') ||
		(ch >= 'A' && ch <= 'Z') ||
		(ch >= '0' && ch <= '9') ||
		ch == '-' || ch == '_'
}

// isReservedName reports whether an alias would shadow a real character
func isReservedName(name string, characters []string) bool {
	for _, c := range characters {
		if strings.EqualFold(c, name) {
			return true
		}
	}
	return false
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
