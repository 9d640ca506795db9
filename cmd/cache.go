package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zielmicha/satori-cli/ui"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage resolution caches",
}

// Cached resolutions are never invalidated on their own; this is the
// escape hatch when a contest is renamed or a listing changed.
var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Drop all cached resolutions",
	Long: `Drop every cached contest and problem resolution.

Example:
  satori cache clear`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}
		if err := e.resolver.ClearCaches(); err != nil {
			return fmt.Errorf("failed to clear caches: %w", err)
		}
		fmt.Println(ui.Success("Caches cleared"))
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}
