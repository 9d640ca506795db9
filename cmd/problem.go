package cmd

import (
	"fmt"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"
	"github.com/zielmicha/satori-cli/ui"
)

var openPDF bool

var problemCmd = &cobra.Command{
	Use:   "problem <contest> <problem>",
	Short: "Open a problem statement",
	Long: `Open a problem statement in your browser.

The problem is matched by code, case-insensitively. A trailing '*'
makes the part before it a prefix match, so 'satori problem algo AB*'
picks the first code starting with AB. With --pdf (or when the problem
has no HTML page) the statement PDF is downloaded to the cache
directory and opened instead.

Example:
  satori problem algo A
  satori problem 101 AB* --pdf`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}

		ref, err := e.resolver.ResolveProblem(args[0], args[1])
		if err != nil {
			return err
		}

		if !openPDF && ref.URL != "" {
			return browser.OpenURL(e.cfg.BaseURL + ref.URL)
		}

		if !openPDF {
			fmt.Println(ui.Hint("No HTML statement for this problem, opening the PDF"))
		}
		path, err := e.client.DownloadPDF(ref, e.cfg.CacheDir)
		if err != nil {
			return err
		}
		fmt.Println(ui.Hint("Saved statement to " + path))
		return browser.OpenFile(path)
	},
}

func init() {
	rootCmd.AddCommand(problemCmd)
	problemCmd.Flags().BoolVar(&openPDF, "pdf", false, "open the PDF instead of the problem page")
}
