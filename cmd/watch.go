package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/zielmicha/satori-cli/client"
)

// watchCmd is the detached watcher spawned after a submit. It shares no
// state with the parent process; its only output is one appended line in
// the results log.
var watchCmd = &cobra.Command{
	Use:    "watch <contest-id> <submission-id>",
	Short:  "Poll one submission and append the verdict to the results log",
	Hidden: true,
	Args:   cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}

		contestID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("contest-id must be numeric, got %q", args[0])
		}
		submissionID, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("submission-id must be numeric, got %q", args[1])
		}

		result, err := e.client.WaitForResult(contestID, submissionID, e.cfg.PollInterval)
		if err != nil {
			return err
		}
		return appendResultLog(e.cfg.ResultsLogPath(), contestID, result)
	},
}

func appendResultLog(path string, contestID int, r client.Result) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	_, err = fmt.Fprintf(f, "%s contest %d submission %d %s: %s\n",
		time.Now().Format(time.RFC3339), contestID, r.ID, r.Code, r.Status)
	return err
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
