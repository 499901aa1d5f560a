package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/kamal-hamza/skillsheet/pkg/assets"
	"github.com/kamal-hamza/skillsheet/pkg/ui"
)

var (
	resolveExplain bool
	resolveCopy    bool
)

// resolveCmd represents the resolve command
var resolveCmd = &cobra.Command{
	Use:   "resolve <path>...",
	Short: "Resolve asset paths to URLs",
	Long: `Resolve logical asset paths the way the site does.

A path goes to the CDN when cdn.base_url is set, it matches an include
pattern (or the include list is empty) and no exclude entry vetoes it. The
CDN URL drops the first "assets/" segment. Every other path is served from
the deployment base path.

Examples:
  skillsheet resolve /assets/kof97/草薙京/1.jpg
  skillsheet resolve assets/other/logo.png --explain
  SKILLSHEET_CDN_BASE_URL=https://cdn.example.com skillsheet resolve /assets/kof97/a.png --copy`,
	Args: cobra.MinimumNArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().BoolVarP(&resolveExplain, "explain", "e", false, "Show how each path was routed")
	resolveCmd.Flags().BoolVarP(&resolveCopy, "copy", "c", false, "Copy the resolved URLs to the clipboard")
}

func runResolve(cmd *cobra.Command, args []string) error {
	urls := make([]string, 0, len(args))

	for _, p := range args {
		d := appResolver.Explain(p)
		urls = append(urls, d.URL)

		if resolveExplain {
			printDecision(d)
			continue
		}
		fmt.Println(d.URL)
	}

	if resolveCopy {
		if err := clipboard.WriteAll(strings.Join(urls, "\n")); err != nil {
			fmt.Println(ui.FormatWarning("Could not copy to clipboard: " + err.Error()))
			return nil
		}
		fmt.Println(ui.FormatSuccess(fmt.Sprintf("Copied %d URL(s) to clipboard", len(urls))))
	}

	return nil
}

func printDecision(d assets.Decision) {
	fmt.Println(ui.StyleBold.Render(d.Input))
	fmt.Println("  " + ui.RenderKeyValue("normalized", d.Normalized))
	fmt.Println("  " + ui.RenderKeyValue("include", strconv.FormatBool(d.MatchesInclude)))
	fmt.Println("  " + ui.RenderKeyValue("exclude", strconv.FormatBool(d.MatchesExclude)))
	if d.UseCDN {
		fmt.Println("  " + ui.RenderKeyValue("route", "cdn"))
	} else {
		fmt.Println("  " + ui.RenderKeyValue("route", "local (base "+d.Base+")"))
	}
	fmt.Println("  " + ui.RenderKeyValue("url", ui.StyleSuccess.Render(d.URL)))
	fmt.Println()
}
