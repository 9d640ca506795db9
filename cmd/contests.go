package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zielmicha/satori-cli/ui"
)

var showOther bool

var contestsCmd = &cobra.Command{
	Use:   "contests",
	Short: "List contests",
	Long: `List the contests you participate in.

With --show-other, every contest on the platform is listed, including
the ones you haven't joined.

Example:
  satori contests
  satori contests --show-other`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}

		contests, err := e.client.Contests(showOther)
		if err != nil {
			return err
		}
		fmt.Print(ui.Contests(contests))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(contestsCmd)
	contestsCmd.Flags().BoolVar(&showOther, "show-other", false, "include contests you haven't joined")
}
