package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/nfrund/userdesk/internal/app"
	"github.com/nfrund/userdesk/internal/credential"
	"github.com/nfrund/userdesk/internal/server"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web console",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := cfg.GetAddr()
		if serveAddr != "" {
			addr = serveAddr
		}

		// The web surface reads the token from each request's session.
		a, err := app.New(cfg, credential.ContextProvider{})
		if err != nil {
			return err
		}

		s := server.New(a)
		s.RegisterRoutes()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return s.Start(ctx, addr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides USERDESK_ADDR)")
	rootCmd.AddCommand(serveCmd)
}
