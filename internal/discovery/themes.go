package discovery

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// ThemeInfo summarizes one installed theme for the picker UI.
type ThemeInfo struct {
	Name                string   `json:"name"`
	Background          string   `json:"background"`
	Foreground          string   `json:"foreground"`
	Palette             []string `json:"palette"`
	IsDark              bool     `json:"is_dark"`
	CursorColor         string   `json:"cursor_color,omitempty"`
	SelectionBackground string   `json:"selection_background,omitempty"`
}

// themeDirs are checked in order for the installed theme collection.
var themeDirs = []string{
	"/Applications/Ghostty.app/Contents/Resources/ghostty/themes",
	"/usr/share/ghostty/themes",
	"/usr/local/share/ghostty/themes",
}

// ThemeDir locates the installed themes directory, falling back to
// XDG_DATA_DIRS. Returns "" when none exists.
func ThemeDir() string {
	for _, dir := range themeDirs {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	for _, dataDir := range strings.Split(os.Getenv("XDG_DATA_DIRS"), ":") {
		if dataDir == "" {
			continue
		}
		dir := filepath.Join(dataDir, "ghostty", "themes")
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir
		}
	}
	return ""
}

// LoadThemes reads every theme file in dir and extracts its colors. A
// missing directory yields an empty catalog, not an error: the editor
// works without the theme picker.
func LoadThemes(dir string) ([]ThemeInfo, error) {
	if dir == "" {
		return nil, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var themes []ThemeInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}
		themes = append(themes, ParseTheme(entry.Name(), string(data)))
	}

	sort.Slice(themes, func(i, j int) bool {
		return strings.ToLower(themes[i].Name) < strings.ToLower(themes[j].Name)
	})
	return themes, nil
}

// ParseTheme extracts the display colors from one theme file, itself in the
// same `key = value` dialect as the config.
func ParseTheme(name, content string) ThemeInfo {
	theme := ThemeInfo{
		Name:       name,
		Background: "#000000",
		Foreground: "#ffffff",
		Palette:    make([]string, 16),
	}

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "background":
			theme.Background = value
		case "foreground":
			theme.Foreground = value
		case "cursor-color":
			theme.CursorColor = value
		case "selection-background":
			theme.SelectionBackground = value
		case "palette":
			idxStr, color, ok := strings.Cut(value, "=")
			if !ok {
				continue
			}
			idx, err := strconv.Atoi(strings.TrimSpace(idxStr))
			if err == nil && idx >= 0 && idx < 16 {
				theme.Palette[idx] = strings.TrimSpace(color)
			}
		}
	}

	theme.IsDark = IsDarkColor(theme.Background)
	return theme
}

// IsDarkColor reports whether a hex color is dark by relative luminance.
// Malformed colors count as dark.
func IsDarkColor(hex string) bool {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) < 6 {
		return true
	}

	r := hexByte(hex[0:2])
	g := hexByte(hex[2:4])
	b := hexByte(hex[4:6])

	luminance := 0.299*r + 0.587*g + 0.114*b
	return luminance < 128
}

func hexByte(s string) float64 {
	n, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0
	}
	return float64(n)
}
