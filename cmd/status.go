package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/zielmicha/satori-cli/client"
	"github.com/zielmicha/satori-cli/ui"
)

var (
	statusLimit int
	statusWatch bool
)

var statusCmd = &cobra.Command{
	Use:   "status <contest> [submission]",
	Short: "Show grading results",
	Long: `Show recent submission results of a contest.

With a submission id, only that submission is shown; add --watch to
keep polling until it is graded.

Example:
  satori status algo
  satori status algo 4521 --watch`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}

		contestID, err := e.resolver.ResolveContest(args[0])
		if err != nil {
			return err
		}

		if len(args) == 1 {
			results, err := e.client.Results(contestID, statusLimit)
			if err != nil {
				return err
			}
			fmt.Print(ui.Results(results))
			return nil
		}

		submissionID, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("submission must be a numeric id, got %q", args[1])
		}

		var result client.Result
		if statusWatch {
			fmt.Println(ui.Hint(fmt.Sprintf("Waiting for submission %d...", submissionID)))
			result, err = e.client.WaitForResult(contestID, submissionID, e.cfg.PollInterval)
		} else {
			result, err = e.client.Result(contestID, submissionID)
		}
		if err != nil {
			return err
		}
		fmt.Print(ui.Results([]client.Result{result}))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().IntVar(&statusLimit, "limit", 20, "how many recent results to show")
	statusCmd.Flags().BoolVar(&statusWatch, "watch", false, "poll until the submission is graded")
}
