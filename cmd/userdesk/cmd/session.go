package cmd

import (
	"fmt"
	"os"

	"github.com/nfrund/userdesk/internal/app"
	"github.com/nfrund/userdesk/internal/console"
	"github.com/nfrund/userdesk/internal/credential"
	"github.com/nfrund/userdesk/internal/terminal"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// tokenFs is where the stored token lives. Tests swap in a memory fs.
var tokenFs = afero.NewOsFs()

func tokenStore() *credential.FileProvider {
	return credential.NewFileProvider(tokenFs, cfg.GetTokenDir(), cfg.GetTokenKey())
}

func credentials() credential.Provider {
	if tokenFlag != "" {
		return credential.StaticProvider{Token: tokenFlag}
	}
	return tokenStore()
}

// session is one terminal run of the console.
type session struct {
	app  *app.App
	ctrl *console.Controller
	cmd  *cobra.Command
}

func openSession(cmd *cobra.Command) (*session, error) {
	a, err := app.New(cfg, credentials())
	if err != nil {
		return nil, err
	}
	surface := terminal.NewSurface(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(),
		terminal.WithAssumeYes(assumeYes),
		terminal.WithInputFd(inputFd(cmd)),
	)
	return &session{app: a, ctrl: console.NewController(a.Router, surface), cmd: cmd}, nil
}

// finish prints the notifications raised during the run and turns a failed
// outcome into a command error. A declined confirmation is not a failure.
func (s *session) finish(out console.Outcome) error {
	terminal.PrintNotifications(s.cmd.ErrOrStderr(), s.app.Center.Active())
	_ = s.app.Close()
	if out.Err == nil || out.Declined() {
		return nil
	}
	return fmt.Errorf("%s failed: %w", out.Action, out.Err)
}

// inputFd is the descriptor behind the command's input, or -1 when the input
// is not a file.
func inputFd(cmd *cobra.Command) int {
	if f, ok := cmd.InOrStdin().(*os.File); ok {
		return int(f.Fd())
	}
	return -1
}
