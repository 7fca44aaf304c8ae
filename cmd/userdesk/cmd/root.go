package cmd

import (
	"os"

	"github.com/nfrund/userdesk/internal/config"
	"github.com/nfrund/userdesk/internal/logging"
	"github.com/spf13/cobra"
)

var (
	endpointFlag string
	tokenFlag    string
	assumeYes    bool
	outputFormat string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "userdesk",
	Short: "Operator console for a remote users endpoint",
	Long: `userdesk keeps a view of a remote users collection in sync and runs
create, read, update and delete actions against it.

Available surfaces:
  serve    Web console with a live table, overlays and notifications
  users    Terminal commands for the same actions

Use "userdesk [command] --help" for more information about a command.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.New()
		if err != nil {
			return err
		}
		if endpointFlag != "" {
			c.EndpointURL = endpointFlag
		}
		logging.NewWithWriter(c.GetLogFormat(), cmd.ErrOrStderr())
		cfg = c
		return nil
	},
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&endpointFlag, "endpoint", "", "users endpoint base URL (overrides USERDESK_ENDPOINT_URL)")
	rootCmd.PersistentFlags().StringVar(&tokenFlag, "token", "", "access token to use instead of the stored one")
	rootCmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "answer yes to confirmation prompts")
}
