package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/zielmicha/satori-cli/internal/spawn"
	"github.com/zielmicha/satori-cli/ui"
)

var noWatch bool

var submitCmd = &cobra.Command{
	Use:   "submit <contest> <problem> <file>",
	Short: "Submit a solution",
	Long: `Upload a solution file for grading.

After a successful submit a detached watcher process keeps polling the
grading result and appends it to the results log, so you can keep
working; disable that with --no-watch. Check progress any time with
'satori status'.

Example:
  satori submit algo A sol.cpp`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}

		contestID, err := e.resolver.ResolveContest(args[0])
		if err != nil {
			return err
		}
		ref, err := e.resolver.ResolveSubmitProblem(args[0], args[1])
		if err != nil {
			return err
		}

		if err := e.client.Submit(contestID, ref.ID, args[2], e.cfg.CacheDir); err != nil {
			return err
		}

		label := ref.Code
		if label == "" {
			label = strconv.Itoa(ref.ID)
		}
		fmt.Println(ui.Success(fmt.Sprintf("Submitted %s to %s", args[2], label)))

		// the newest results row is the submission we just made
		results, err := e.client.Results(contestID, 1)
		if err != nil || len(results) == 0 {
			fmt.Println(ui.Hint("Could not determine the submission id; check 'satori status' yourself"))
			return nil
		}
		submissionID := results[0].ID
		fmt.Println(ui.Hint(fmt.Sprintf("Submission %d queued", submissionID)))

		if noWatch {
			return nil
		}
		err = spawn.Detached("watch", strconv.Itoa(contestID), strconv.Itoa(submissionID))
		if err != nil {
			fmt.Println(ui.Hint("Could not start the background watcher: " + err.Error()))
			return nil
		}
		fmt.Println(ui.Hint("Watching in the background; the verdict lands in " + e.cfg.ResultsLogPath()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(submitCmd)
	submitCmd.Flags().BoolVar(&noWatch, "no-watch", false, "don't spawn the background result watcher")
}
