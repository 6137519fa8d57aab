package schema

import "strings"

// Categorize assigns a UI category to a config key based on its name.
// Exact matches win over prefix matches; unknown keys land in Advanced.
func Categorize(key string) Category {
	switch key {
	case "theme":
		return CategoryAppearance
	case "keybind":
		return CategoryKeybindings
	case "palette":
		return CategoryColors
	case "config-file":
		return CategoryAdvanced
	case "term", "enquiry-response":
		return CategoryTerminal
	case "title":
		return CategoryWindow
	case "class", "x11-instance-name":
		return CategoryGTKLinux
	case "scrollback-limit":
		return CategoryScrollback
	case "link", "link-url":
		return CategoryMouse
	}

	switch {
	case strings.HasPrefix(key, "font-"):
		return CategoryFonts
	case strings.HasPrefix(key, "cursor-"):
		return CategoryCursor
	case strings.HasPrefix(key, "mouse-"), strings.HasPrefix(key, "click-"):
		return CategoryMouse
	case strings.HasPrefix(key, "clipboard-"), strings.HasPrefix(key, "copy-on-select"):
		return CategoryClipboard
	case strings.HasPrefix(key, "shell-"),
		key == "command", key == "wait-after-command", key == "initial-command":
		return CategoryShell
	case strings.HasPrefix(key, "window-"),
		strings.HasPrefix(key, "resize-"),
		strings.HasPrefix(key, "fullscreen"),
		key == "confirm-close-surface":
		return CategoryWindow
	case strings.HasPrefix(key, "background"):
		return CategoryBackground
	case strings.HasPrefix(key, "foreground"),
		strings.HasPrefix(key, "selection-"),
		strings.Contains(key, "color"),
		key == "bold-is-bright", key == "minimum-contrast",
		key == "invert-selection-fg-bg", key == "faint-opacity":
		return CategoryColors
	case strings.HasPrefix(key, "macos-"),
		strings.HasPrefix(key, "auto-update"),
		strings.HasPrefix(key, "quick-terminal"):
		return CategoryMacOS
	case strings.HasPrefix(key, "gtk-"),
		strings.HasPrefix(key, "adw-"),
		strings.HasPrefix(key, "linux-"):
		return CategoryGTKLinux
	case strings.HasPrefix(key, "scrollback"), strings.HasPrefix(key, "scroll-"):
		return CategoryScrollback
	case strings.HasPrefix(key, "input-"),
		key == "vt-kam-allowed",
		strings.HasPrefix(key, "desktop-notifications"):
		return CategoryInput
	case strings.HasPrefix(key, "adjust-"):
		// Font metric adjustments (baseline, underline, cell size, ...).
		return CategoryFonts
	case strings.HasPrefix(key, "unfocused-split"), key == "unfocused-split-fill":
		return CategoryAppearance
	case key == "abnormal-command-exit-runtime",
		key == "image-storage-limit",
		strings.HasPrefix(key, "custom-shader"),
		strings.HasPrefix(key, "grapheme-"),
		strings.HasPrefix(key, "freetype-"),
		key == "async-backend":
		return CategoryAdvanced
	case strings.HasPrefix(key, "cell-"),
		strings.HasPrefix(key, "focus-"),
		strings.HasPrefix(key, "unfocused-"):
		return CategoryAppearance
	}

	return CategoryAdvanced
}
