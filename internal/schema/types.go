// Package schema holds the discovered catalog of Ghostty configuration
// options: their value types, categories, defaults and repeatability.
package schema

import "fmt"

// ValueType describes what kind of value a config option accepts.
type ValueType string

const (
	TypeBoolean  ValueType = "boolean"
	TypeInteger  ValueType = "integer"
	TypeFloat    ValueType = "float"
	TypeColor    ValueType = "color"
	TypeEnum     ValueType = "enum"
	TypeText     ValueType = "text"
	TypeFont     ValueType = "font"
	TypePath     ValueType = "path"
	TypeDuration ValueType = "duration"
	TypeKeybind  ValueType = "keybind"
	TypePalette  ValueType = "palette"
	TypeList     ValueType = "comma-separated"
)

// OptionSpec is one schema entry for a single config key.
type OptionSpec struct {
	Key           string    `json:"key"`
	Default       string    `json:"default"`
	Documentation string    `json:"documentation"`
	Type          ValueType `json:"type"`
	// EnumValues is populated only for TypeEnum.
	EnumValues []string `json:"enum_values,omitempty"`
	Category   Category `json:"category"`
	// Repeatable keys may appear multiple times, each occurrence cumulative.
	Repeatable bool `json:"repeatable"`
}

// Category groups options for UI presentation.
type Category string

const (
	CategoryFonts       Category = "fonts"
	CategoryColors      Category = "colors"
	CategoryWindow      Category = "window"
	CategoryCursor      Category = "cursor"
	CategoryMouse       Category = "mouse"
	CategoryClipboard   Category = "clipboard"
	CategoryKeybindings Category = "keybindings"
	CategoryShell       Category = "shell"
	CategoryAppearance  Category = "appearance"
	CategoryBackground  Category = "background"
	CategoryMacOS       Category = "macos"
	CategoryGTKLinux    Category = "gtk-linux"
	CategoryScrollback  Category = "scrollback"
	CategoryInput       Category = "input"
	CategoryTerminal    Category = "terminal"
	CategoryAdvanced    Category = "advanced"
)

// Categories returns all categories in their stable presentation order.
func Categories() []Category {
	return []Category{
		CategoryFonts,
		CategoryColors,
		CategoryWindow,
		CategoryCursor,
		CategoryMouse,
		CategoryClipboard,
		CategoryKeybindings,
		CategoryShell,
		CategoryAppearance,
		CategoryBackground,
		CategoryMacOS,
		CategoryGTKLinux,
		CategoryScrollback,
		CategoryInput,
		CategoryTerminal,
		CategoryAdvanced,
	}
}

// DisplayName returns the human-readable name for a category.
func (c Category) DisplayName() string {
	switch c {
	case CategoryFonts:
		return "Fonts"
	case CategoryColors:
		return "Colors"
	case CategoryWindow:
		return "Window"
	case CategoryCursor:
		return "Cursor"
	case CategoryMouse:
		return "Mouse"
	case CategoryClipboard:
		return "Clipboard"
	case CategoryKeybindings:
		return "Keybindings"
	case CategoryShell:
		return "Shell"
	case CategoryAppearance:
		return "Appearance"
	case CategoryBackground:
		return "Background"
	case CategoryMacOS:
		return "macOS"
	case CategoryGTKLinux:
		return "GTK / Linux"
	case CategoryScrollback:
		return "Scrollback"
	case CategoryInput:
		return "Input"
	case CategoryTerminal:
		return "Terminal"
	case CategoryAdvanced:
		return "Advanced"
	default:
		return string(c)
	}
}

func (t ValueType) String() string { return string(t) }

func (c Category) String() string { return string(c) }

// GoString aids test failure output.
func (o OptionSpec) GoString() string {
	return fmt.Sprintf("OptionSpec{Key:%q, Type:%s, Category:%s, Repeatable:%t}",
		o.Key, o.Type, o.Category, o.Repeatable)
}
