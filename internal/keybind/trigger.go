package keybind

import (
	"fmt"
	"strings"
)

// Trigger is a normalized modifier set plus one physical key. Two triggers
// written in different modifier orders compare equal after normalization.
type Trigger struct {
	Mods Modifier
	Key  string
}

// ParseTrigger parses a trigger like "ctrl+shift+a". The final token is the
// physical key; every preceding token must be a modifier. Keys are
// lowercased, so "Ctrl+A" and "ctrl+a" are the same trigger.
func ParseTrigger(raw string) (Trigger, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Trigger{}, fmt.Errorf("empty trigger")
	}

	tokens := strings.Split(raw, "+")
	// A trailing "+" means the key itself is "+" (e.g. "ctrl++").
	if len(tokens) >= 2 && tokens[len(tokens)-1] == "" {
		tokens = tokens[:len(tokens)-1]
		tokens[len(tokens)-1] = "+"
	}

	key := strings.ToLower(strings.TrimSpace(tokens[len(tokens)-1]))
	if key == "" {
		return Trigger{}, fmt.Errorf("trigger %q has no key", raw)
	}

	var mods Modifier
	for _, tok := range tokens[:len(tokens)-1] {
		mod := ModifierFromName(strings.TrimSpace(tok))
		if mod == ModNone {
			return Trigger{}, fmt.Errorf("trigger %q: unknown modifier %q", raw, tok)
		}
		mods = mods.With(mod)
	}

	return Trigger{Mods: mods, Key: key}, nil
}

// String renders the trigger canonically: modifiers in ctrl, alt, shift,
// super order, then the key.
func (t Trigger) String() string {
	if t.Mods.IsEmpty() {
		return t.Key
	}
	return t.Mods.String() + "+" + t.Key
}
