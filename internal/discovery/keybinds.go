package discovery

import (
	"context"
	"strings"

	"github.com/bnema/ghostconf/internal/keybind"
)

// LoadKeybinds returns Ghostty's default keybindings from `+list-keybinds`.
// Lines are `keybind = trigger=action`; malformed lines are skipped.
func LoadKeybinds(ctx context.Context, r Runner) ([]keybind.Binding, error) {
	out, err := r.Run(ctx, "+list-keybinds")
	if err != nil {
		return nil, err
	}
	return ParseKeybindList(out), nil
}

// ParseKeybindList parses +list-keybinds output.
func ParseKeybindList(out string) []keybind.Binding {
	var bindings []keybind.Binding
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		content := strings.TrimPrefix(line, "keybind")
		content = strings.TrimSpace(content)
		content = strings.TrimPrefix(content, "=")
		content = strings.TrimSpace(content)

		b, err := keybind.Parse(content)
		if err != nil {
			continue
		}
		bindings = append(bindings, b)
	}
	return bindings
}

// LoadActions returns the action vocabulary from `+list-actions`, one
// action name per line.
func LoadActions(ctx context.Context, r Runner) ([]string, error) {
	out, err := r.Run(ctx, "+list-actions")
	if err != nil {
		return nil, err
	}
	return ParseActionList(out), nil
}

// ParseActionList parses +list-actions output.
func ParseActionList(out string) []string {
	var actions []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		actions = append(actions, line)
	}
	return actions
}
