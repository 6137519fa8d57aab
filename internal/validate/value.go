package validate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/ghostconf/internal/keybind"
	"github.com/bnema/ghostconf/internal/schema"
)

var hexColorRe = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

// TypedValue parses a raw string under the option's value type and returns
// the typed projection. The raw text is never the source of truth lost: the
// document always keeps it; this is the lazily computed view.
func TypedValue(opt schema.OptionSpec, raw string) (any, error) {
	switch opt.Type {
	case schema.TypeBoolean:
		switch raw {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
		return nil, fmt.Errorf("%q is not a boolean (expected true or false)", raw)

	case schema.TypeInteger:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", raw)
		}
		return n, nil

	case schema.TypeFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", raw)
		}
		return f, nil

	case schema.TypeColor:
		return parseColor(raw)

	case schema.TypeEnum:
		for _, v := range opt.EnumValues {
			if raw == v {
				return raw, nil
			}
		}
		return nil, fmt.Errorf("%q is not one of: %s", raw, strings.Join(opt.EnumValues, ", "))

	case schema.TypeDuration:
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("%q is not a duration (e.g. 250ms, 1s)", raw)
		}
		return d, nil

	case schema.TypeKeybind:
		b, err := keybind.Parse(raw)
		if err != nil {
			return nil, err
		}
		return b, nil

	case schema.TypePalette:
		return parsePaletteEntry(raw)

	case schema.TypeList:
		parts := strings.Split(raw, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			out = append(out, strings.TrimSpace(p))
		}
		return out, nil

	default:
		// Text, font and path values are accepted opaquely: whether a font
		// family or path exists on the host is not this engine's concern.
		return raw, nil
	}
}

// parseColor accepts #rrggbb hex (the # is optional in Ghostty) or a named
// color, which is passed through opaquely.
func parseColor(raw string) (string, error) {
	if raw == "" {
		return "", fmt.Errorf("empty color value")
	}
	if strings.HasPrefix(raw, "#") || isHexLike(raw) {
		if !hexColorRe.MatchString(raw) {
			return "", fmt.Errorf("%q is not a hex color (expected #rrggbb)", raw)
		}
	}
	return raw, nil
}

func isHexLike(raw string) bool {
	if len(raw) != 6 {
		return false
	}
	digits := 0
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	// Six characters that are mostly digits is far more likely a bare hex
	// value than a color name.
	return digits >= 4
}

// PaletteEntry is the typed form of a `palette` value: `index=#color`.
type PaletteEntry struct {
	Index int
	Color string
}

func parsePaletteEntry(raw string) (PaletteEntry, error) {
	idxStr, color, ok := strings.Cut(raw, "=")
	if !ok {
		return PaletteEntry{}, fmt.Errorf("palette %q: expected index=color", raw)
	}
	idx, err := strconv.Atoi(strings.TrimSpace(idxStr))
	if err != nil || idx < 0 || idx > 255 {
		return PaletteEntry{}, fmt.Errorf("palette %q: index must be 0-255", raw)
	}
	color = strings.TrimSpace(color)
	if _, err := parseColor(color); err != nil {
		return PaletteEntry{}, fmt.Errorf("palette %q: %v", raw, err)
	}
	return PaletteEntry{Index: idx, Color: color}, nil
}
