package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zielmicha/satori-cli/internal/config"
	"github.com/zielmicha/satori-cli/ui"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear stored credentials and caches",
	Long: `Clear your stored credentials, session token and caches.

You'll need to run 'satori login' again to authenticate.

Example:
  satori logout`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := cfg.ClearSession(); err != nil {
			return fmt.Errorf("failed to clear credentials: %w", err)
		}
		if err := cfg.ClearCaches(); err != nil {
			return fmt.Errorf("failed to clear caches: %w", err)
		}

		fmt.Println(ui.Success("Logged out successfully!"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
