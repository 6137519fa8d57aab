package schema

import (
	"regexp"
	"strconv"
	"strings"
)

// enumBulletRe matches documentation bullet lines like "  * `block` - ...".
var enumBulletRe = regexp.MustCompile("^\\s+\\*\\s+`([^`]+)`")

// InferType determines the value type of an option from its key, default
// value and documentation text. Manual overrides cover keys whose defaults
// would otherwise mislead the heuristics (e.g. font-size = 13 is a float).
func InferType(key, def, docs string) (ValueType, []string) {
	if t, ok := manualOverride(key); ok {
		return t, nil
	}

	switch key {
	case "keybind":
		return TypeKeybind, nil
	case "palette":
		return TypePalette, nil
	case "font-family", "font-family-bold", "font-family-italic", "font-family-bold-italic":
		return TypeFont, nil
	case "config-file", "working-directory":
		return TypePath, nil
	case "font-synthetic-style", "font-feature":
		return TypeList, nil
	}
	if strings.HasPrefix(key, "custom-shader") {
		return TypePath, nil
	}

	if def == "true" || def == "false" {
		return TypeBoolean, nil
	}

	if looksLikeColorKey(key) && (def == "" || strings.HasPrefix(def, "#")) {
		return TypeColor, nil
	}

	if strings.HasSuffix(key, "-duration") || strings.HasSuffix(key, "-timeout") {
		return TypeDuration, nil
	}

	if values := extractEnumValues(docs); len(values) >= 2 {
		return TypeEnum, values
	}

	if strings.Contains(def, ".") {
		if _, err := strconv.ParseFloat(def, 64); err == nil {
			return TypeFloat, nil
		}
	}
	if def != "" {
		if _, err := strconv.ParseInt(def, 10, 64); err == nil {
			return TypeInteger, nil
		}
	}

	return TypeText, nil
}

func looksLikeColorKey(key string) bool {
	return strings.Contains(key, "color") ||
		key == "background" ||
		key == "foreground" ||
		key == "cursor-text" ||
		key == "bold-color" ||
		strings.HasPrefix(key, "selection-") ||
		strings.HasPrefix(key, "split-")
}

// extractEnumValues pulls candidate enum members out of documentation bullet
// lists. Bullets containing spaces, '=' or example markers are skipped.
func extractEnumValues(docs string) []string {
	var values []string
	for _, line := range strings.Split(docs, "\n") {
		m := enumBulletRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		val := m[1]
		if strings.Contains(val, " ") || strings.Contains(val, "=") || strings.HasPrefix(val, "e.g") {
			continue
		}
		values = append(values, val)
	}
	return values
}

// IsRepeatable reports whether a key may legitimately appear multiple times,
// each occurrence contributing independently.
func IsRepeatable(key string) bool {
	switch key {
	case "keybind",
		"palette",
		"font-family",
		"font-family-bold",
		"font-family-italic",
		"font-family-bold-italic",
		"font-feature",
		"font-variation",
		"font-variation-bold",
		"font-variation-italic",
		"font-variation-bold-italic",
		"font-codepoint-map",
		"config-file",
		"custom-shader":
		return true
	}
	return false
}

func manualOverride(key string) (ValueType, bool) {
	switch key {
	case "font-size", "faint-opacity":
		return TypeFloat, true
	case "scrollback-limit", "image-storage-limit", "font-thicken-strength":
		return TypeInteger, true
	case "window-padding-balance":
		return TypeBoolean, true
	case "adjust-cell-width", "adjust-cell-height",
		"adjust-font-baseline",
		"adjust-underline-position", "adjust-underline-thickness",
		"adjust-strikethrough-position", "adjust-strikethrough-thickness",
		"adjust-overline-position", "adjust-overline-thickness",
		"adjust-cursor-thickness", "adjust-cursor-height",
		"adjust-box-thickness",
		"window-padding-x", "window-padding-y":
		// Accept both absolute and percentage forms, so plain text.
		return TypeText, true
	}
	return "", false
}
