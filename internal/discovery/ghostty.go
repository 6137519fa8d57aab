// Package discovery locates the host's Ghostty installation and extracts
// its configuration schema, default keybindings, action vocabulary, fonts
// and themes through the ghostty CLI.
package discovery

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ErrGhosttyNotFound indicates no usable ghostty binary on this host.
var ErrGhosttyNotFound = errors.New("ghostty binary not found")

// wellKnownPaths are checked before falling back to PATH lookup.
var wellKnownPaths = []string{
	"/Applications/Ghostty.app/Contents/MacOS/ghostty",
	"/usr/local/bin/ghostty",
	"/usr/bin/ghostty",
}

// FindGhostty returns the path of the ghostty binary, preferring well-known
// install locations over PATH.
func FindGhostty() (string, error) {
	for _, p := range wellKnownPaths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	if p, err := exec.LookPath("ghostty"); err == nil {
		return p, nil
	}
	return "", fmt.Errorf("%w: is Ghostty installed?", ErrGhosttyNotFound)
}

// Runner executes ghostty CLI subcommands. Abstracted so tests can feed
// canned output without a Ghostty install.
type Runner interface {
	Run(ctx context.Context, args ...string) (string, error)
}

// CLIRunner runs the real ghostty binary.
type CLIRunner struct {
	Path string
}

// Run invokes ghostty with args and returns its output. Some ghostty
// subcommands write to stderr even on success, so stderr is used as a
// fallback when stdout is empty.
func (r CLIRunner) Run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, r.Path, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	out := stdout.String()
	errOut := stderr.String()

	if err != nil && out == "" {
		if errOut != "" {
			return errOut, nil
		}
		return "", fmt.Errorf("ghostty %s: %w", strings.Join(args, " "), err)
	}
	if out == "" && errOut != "" {
		return errOut, nil
	}
	return out, nil
}

// ShowConfig returns the raw `+show-config --default --docs` output, the
// schema registry's source.
func ShowConfig(ctx context.Context, r Runner) (string, error) {
	return r.Run(ctx, "+show-config", "--default", "--docs")
}

// ValidateConfig runs `ghostty +validate-config` on the installed config
// and returns Ghostty's own verdict.
func ValidateConfig(ctx context.Context, r Runner) (string, error) {
	out, err := r.Run(ctx, "+validate-config")
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(out) == "" {
		return "Configuration is valid!", nil
	}
	return out, nil
}
