package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zielmicha/satori-cli/ui"
)

var submittable bool

var problemsCmd = &cobra.Command{
	Use:   "problems <contest>",
	Short: "List problems of a contest",
	Long: `List the problems of a contest.

The contest can be given as a numeric id or as any case-insensitive
fragment of its name. With --submit, the submittable problems are
listed instead (their ids are the ones the submit form uses).

Example:
  satori problems 101
  satori problems algo
  satori problems algo --submit`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}

		contestID, err := e.resolver.ResolveContest(args[0])
		if err != nil {
			return err
		}

		if submittable {
			rows, err := e.client.SubmitProblems(contestID)
			if err != nil {
				return err
			}
			fmt.Print(ui.SubmitProblems(rows))
			return nil
		}

		rows, err := e.client.Problems(contestID)
		if err != nil {
			return err
		}
		fmt.Print(ui.Problems(rows))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(problemsCmd)
	problemsCmd.Flags().BoolVar(&submittable, "submit", false, "show submittable problems")
}
