package cmd

import (
	"bufio"
	"errors"
	"fmt"

	"github.com/nfrund/userdesk/internal/terminal"
	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store an access token for gated actions",
	Long: `Store an access token in the token directory. Gated actions send it as a
bearer credential. The token is read without echo from a terminal, or as one
line from piped input.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		token := tokenFlag
		if token == "" {
			var err error
			token, err = terminal.ReadToken(bufio.NewReader(cmd.InOrStdin()), inputFd(cmd), cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("failed to read token: %w", err)
			}
		}
		if token == "" {
			return errors.New("token must not be empty")
		}

		store := tokenStore()
		if err := store.Store(token); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Token stored in %s\n", store.Path())
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored access token",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := tokenStore().Clear(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Token removed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd, logoutCmd)
}
