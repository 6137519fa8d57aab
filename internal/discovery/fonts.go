package discovery

import (
	"context"
	"sort"
	"strings"
)

// FontFamily is one installed font family and its styles.
type FontFamily struct {
	Name   string   `json:"name"`
	Styles []string `json:"styles"`
}

// LoadFonts returns the installed font families from `+list-fonts`.
func LoadFonts(ctx context.Context, r Runner) ([]FontFamily, error) {
	out, err := r.Run(ctx, "+list-fonts")
	if err != nil {
		return nil, err
	}
	return ParseFontList(out), nil
}

// ParseFontList parses +list-fonts output: a family name on its own line
// followed by indented style lines, blocks separated by blank lines.
func ParseFontList(out string) []FontFamily {
	var (
		fonts   []FontFamily
		current *FontFamily
	)

	flush := func() {
		if current != nil {
			fonts = append(fonts, *current)
			current = nil
		}
	}

	for _, line := range strings.Split(out, "\n") {
		switch {
		case strings.TrimSpace(line) == "":
			flush()
		case strings.HasPrefix(line, "  ") || strings.HasPrefix(line, "\t"):
			if current != nil {
				current.Styles = append(current.Styles, strings.TrimSpace(line))
			}
		default:
			flush()
			current = &FontFamily{Name: strings.TrimSpace(line)}
		}
	}
	flush()

	sort.Slice(fonts, func(i, j int) bool {
		return strings.ToLower(fonts[i].Name) < strings.ToLower(fonts[j].Name)
	})
	return fonts
}
