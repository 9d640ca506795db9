package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/zielmicha/satori-cli/client"
	"github.com/zielmicha/satori-cli/internal/config"
	"github.com/zielmicha/satori-cli/internal/session"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "satori",
	Short: "Work with the Satori contest judge from your terminal",
	Long: `satori - command-line client for the Satori judging platform

List contests and problems, read statements, submit solutions and watch
grading results without leaving the shell.

Quick Start:
  1. Authenticate:      satori login
  2. Pick a contest:    satori contests
  3. Browse problems:   satori problems <contest>
  4. Submit solution:   satori submit <contest> <problem> sol.cpp`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every request")
}

// env is the client stack shared by every command: config, the session
// record, the request engine and the resolver over it.
type env struct {
	cfg      *config.Config
	sess     *session.Session
	client   *client.Client
	resolver *client.Resolver
}

func newEnv() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	sess, err := session.Load(cfg.SessionPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	c := client.New(cfg.BaseURL, sess)
	c.SetVerbose(verbose)
	return &env{
		cfg:      cfg,
		sess:     sess,
		client:   c,
		resolver: client.NewResolver(c, cfg.CachePath),
	}, nil
}
