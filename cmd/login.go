package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/zielmicha/satori-cli/ui"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store Satori credentials and authenticate",
	Long: `Authenticate with your Satori account.

Your username and password are stored locally, readable only by you.
The password is kept recoverable (not hashed) because the platform
replays it on every login. Your contest list is printed as confirmation.

Example:
  satori login`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}

		fmt.Print("Username: ")
		username, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read username: %w", err)
		}

		fmt.Print("Password: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}

		e.sess.SetCredentials(strings.TrimSpace(username), string(password))
		// a successful login persists the whole record, credentials included
		if err := e.client.Login(); err != nil {
			fmt.Println(ui.Failure("Failed to login: " + err.Error()))
			return err
		}

		fmt.Println(ui.Success("Logged in successfully!"))
		fmt.Println(ui.Hint("Your contests:"))

		contests, err := e.client.Contests(false)
		if err != nil {
			return err
		}
		fmt.Print(ui.Contests(contests))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
}
