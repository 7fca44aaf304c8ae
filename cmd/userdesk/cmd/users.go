package cmd

import (
	"fmt"

	"github.com/nfrund/userdesk/internal/terminal"
	"github.com/spf13/cobra"
)

var (
	userUsername string
	userEmail    string
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List and change users on the endpoint",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the full users collection",
	Long: `Fetch the whole collection and print it.

Output formats:
  table - Human-readable table format (default)
  json  - The collection as {"users": [...], "count": n}`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.app.Close()

		reloadErr := s.ctrl.Refresh(cmd.Context())
		st := s.app.Router.Synchronizer().State()
		switch outputFormat {
		case "json":
			if err := terminal.PrintViewJSON(cmd.OutOrStdout(), st); err != nil {
				return err
			}
		case "table":
			terminal.PrintView(cmd.OutOrStdout(), st)
		default:
			return fmt.Errorf("unsupported output format %q, use table or json", outputFormat)
		}
		return reloadErr
	},
}

var usersGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Print one user's raw record",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		var id string
		if len(args) > 0 {
			id = args[0]
		}
		return s.finish(s.ctrl.ReadOne(cmd.Context(), id))
	},
}

var usersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		return s.finish(s.ctrl.Create(cmd.Context(), userUsername, userEmail))
	},
}

var usersUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Replace a user's username and email",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		return s.finish(s.ctrl.Update(cmd.Context(), args[0], userUsername, userEmail))
	},
}

var usersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a user after confirmation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		return s.finish(s.ctrl.Delete(cmd.Context(), args[0]))
	},
}

func init() {
	usersListCmd.Flags().StringVarP(&outputFormat, "format", "f", "table", "output format (table, json)")

	for _, c := range []*cobra.Command{usersCreateCmd, usersUpdateCmd} {
		c.Flags().StringVar(&userUsername, "username", "", "username")
		c.Flags().StringVar(&userEmail, "email", "", "email address")
	}

	usersCmd.AddCommand(usersListCmd, usersGetCmd, usersCreateCmd, usersUpdateCmd, usersDeleteCmd)
	rootCmd.AddCommand(usersCmd)
}
