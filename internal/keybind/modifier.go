// Package keybind models Ghostty keybindings: a trigger (modifiers plus one
// physical key) bound to an action. Triggers normalize to a canonical
// modifier order so textually different but equivalent bindings compare
// equal.
package keybind

import "strings"

// Modifier is a bitmask of keyboard modifiers.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModCtrl indicates the Control key.
	ModCtrl Modifier = 1 << iota

	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt

	// ModShift indicates the Shift key.
	ModShift

	// ModSuper indicates the Super key (Cmd on macOS, Win key elsewhere).
	ModSuper
)

// Has returns true if m contains the specified modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// With returns a new Modifier with the specified modifier added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// IsEmpty returns true if no modifiers are set.
func (m Modifier) IsEmpty() bool {
	return m == ModNone
}

// String renders modifiers in the canonical order ctrl, alt, shift, super.
func (m Modifier) String() string {
	if m == ModNone {
		return ""
	}
	var parts []string
	if m.Has(ModCtrl) {
		parts = append(parts, "ctrl")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "alt")
	}
	if m.Has(ModShift) {
		parts = append(parts, "shift")
	}
	if m.Has(ModSuper) {
		parts = append(parts, "super")
	}
	return strings.Join(parts, "+")
}

// modifierNames maps modifier tokens (lowercase) to Modifier values.
// Ghostty accepts several synonyms for the same physical key.
var modifierNames = map[string]Modifier{
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"alt":     ModAlt,
	"opt":     ModAlt,
	"option":  ModAlt,
	"shift":   ModShift,
	"super":   ModSuper,
	"cmd":     ModSuper,
	"command": ModSuper,
	"meta":    ModSuper,
	"win":     ModSuper,
}

// ModifierFromName returns the Modifier for a token (case-insensitive), or
// ModNone when the token is not a modifier.
func ModifierFromName(name string) Modifier {
	return modifierNames[strings.ToLower(name)]
}
