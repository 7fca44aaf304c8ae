// Package terminal is the command-line surface of the console: prompts on
// stdin, diagnostics on stdout and notices on stderr. It shows no table.
package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/nfrund/userdesk/internal/console"
	"golang.org/x/term"
)

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

// Surface implements console.Surface for a terminal session.
type Surface struct {
	in        *bufio.Reader
	inFd      int
	out       io.Writer
	errOut    io.Writer
	assumeYes bool
}

// Option customises a Surface.
type Option func(*Surface)

// WithAssumeYes answers every confirmation with yes.
func WithAssumeYes(yes bool) Option {
	return func(s *Surface) {
		s.assumeYes = yes
	}
}

// WithInputFd sets the descriptor checked for interactivity.
func WithInputFd(fd int) Option {
	return func(s *Surface) {
		s.inFd = fd
	}
}

// NewSurface creates a Surface reading answers from in.
func NewSurface(in io.Reader, out, errOut io.Writer, opts ...Option) *Surface {
	s := &Surface{
		in:     bufio.NewReader(in),
		inFd:   int(os.Stdin.Fd()),
		out:    out,
		errOut: errOut,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ console.Surface = (*Surface)(nil)

func (s *Surface) HasTable() bool { return false }

// Confirm asks a yes/no question. Without a terminal on stdin the answer is
// no unless the surface assumes yes.
func (s *Surface) Confirm(_ context.Context, prompt string) bool {
	if s.assumeYes {
		return true
	}
	if !isTerminal(s.inFd) {
		fmt.Fprintf(s.errOut, "%s (declined: stdin is not a terminal, use --yes)\n", prompt)
		return false
	}
	answer, err := GetSimpleText(s.in, prompt+" [y/N]", s.out)
	if err != nil {
		return false
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

func (s *Surface) NotifyBlocking(_ context.Context, message string) {
	fmt.Fprintln(s.errOut, message)
}

// RedirectAfter tells the operator where to log in; a terminal cannot
// navigate.
func (s *Surface) RedirectAfter(_ context.Context, path string, _ time.Duration) {
	fmt.Fprintf(s.errOut, "Run \"userdesk login\" to store a token (web login page: %s)\n", path)
}

// Apply prints diagnostics. Overlay and form effects have no terminal
// counterpart.
func (s *Surface) Apply(_ context.Context, e console.Effect) {
	if d, ok := e.(console.ShowDiagnostic); ok {
		fmt.Fprintln(s.out, d.Text)
	}
}
