package cmd

import (
	"github.com/spf13/cobra"
)

var probeCmd = &cobra.Command{
	Use:   "probe <path>",
	Short: "GET an arbitrary endpoint path and print the payload",
	Example: `  userdesk probe /health
  userdesk probe /test`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		return s.finish(s.ctrl.Probe(cmd.Context(), args[0]))
	},
}

func init() {
	rootCmd.AddCommand(probeCmd)
}
