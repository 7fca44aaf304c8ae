package credential

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// FileProvider keeps the token in a file named after the session key inside
// a token directory. It is the terminal counterpart of browser storage.
type FileProvider struct {
	fs   afero.Fs
	path string
}

// NewFileProvider creates a FileProvider storing the token at dir/name.
func NewFileProvider(fs afero.Fs, dir, name string) *FileProvider {
	return &FileProvider{fs: fs, path: filepath.Join(dir, name)}
}

// Path returns the token file location.
func (p *FileProvider) Path() string {
	return p.path
}

func (p *FileProvider) HasSession(ctx context.Context) bool {
	_, ok := p.CurrentCredential(ctx)
	return ok
}

// CurrentCredential reads the token file on every call, so a login from
// another terminal is picked up without a restart.
func (p *FileProvider) CurrentCredential(ctx context.Context) (string, bool) {
	data, err := afero.ReadFile(p.fs, p.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			slog.WarnContext(ctx, "Failed to read token file", "path", p.path, "error", err)
		}
		return "", false
	}
	token := strings.TrimSpace(string(data))
	return token, token != ""
}

// Store writes the token, replacing any previous one.
func (p *FileProvider) Store(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("token must not be empty")
	}
	if err := p.fs.MkdirAll(filepath.Dir(p.path), 0o700); err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}
	if err := afero.WriteFile(p.fs, p.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("write token: %w", err)
	}
	return nil
}

// Clear removes the token. Clearing an absent token is not an error.
func (p *FileProvider) Clear() error {
	if err := p.fs.Remove(p.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove token: %w", err)
	}
	return nil
}
