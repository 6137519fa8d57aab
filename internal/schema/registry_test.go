package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSource = `# The font families to use.
#
# You can generate the list of valid values using the CLI:
#
#     ghostty +list-fonts
font-family =

# Font size in points.
font-size = 13

# The style of the cursor.
#
# Valid values:
#
#   * ` + "`block`" + `
#   * ` + "`bar`" + `
#   * ` + "`underline`" + `
cursor-style = block

# Background color for the window.
background = #282c34

# Enable or disable the mouse cursor hiding.
mouse-hide-while-typing = false

# Keybindings.
keybind =

font-family =
`

func loadSample(t *testing.T) *Registry {
	t.Helper()
	reg, err := Load(sampleSource)
	require.NoError(t, err)
	return reg
}

func TestLoadBuildsSpecs(t *testing.T) {
	reg := loadSample(t)
	assert.Equal(t, 6, reg.Len())

	ff, ok := reg.Lookup("font-family")
	require.True(t, ok)
	assert.Equal(t, TypeFont, ff.Type)
	assert.True(t, ff.Repeatable)
	assert.Contains(t, ff.Documentation, "ghostty +list-fonts")

	fs, ok := reg.Lookup("font-size")
	require.True(t, ok)
	assert.Equal(t, TypeFloat, fs.Type)
	assert.Equal(t, "13", fs.Default)
	assert.False(t, fs.Repeatable)
}

func TestLoadDuplicateKeepsDocumented(t *testing.T) {
	reg := loadSample(t)

	// font-family appears twice in the source; the bare repeat at the end
	// must not shadow the documented block.
	ff, ok := reg.Lookup("font-family")
	require.True(t, ok)
	assert.NotEmpty(t, ff.Documentation)
}

func TestLoadEnumFromDocs(t *testing.T) {
	reg := loadSample(t)

	cs, ok := reg.Lookup("cursor-style")
	require.True(t, ok)
	assert.Equal(t, TypeEnum, cs.Type)
	assert.Equal(t, []string{"block", "bar", "underline"}, cs.EnumValues)
}

func TestLoadEmptySource(t *testing.T) {
	_, err := Load("")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRegistryLoad)

	_, err = Load("# only comments\n# no keys\n")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRegistryLoad)
}

func TestLookupUnknown(t *testing.T) {
	reg := loadSample(t)
	_, ok := reg.Lookup("definitely-not-a-key")
	assert.False(t, ok)
}

func TestListByCategory(t *testing.T) {
	reg := loadSample(t)
	groups := reg.ListByCategory()

	require.NotEmpty(t, groups)
	// Category order follows the presentation order, fonts first here.
	assert.Equal(t, CategoryFonts, groups[0].Category)
	assert.Equal(t, "Fonts", groups[0].Display)

	total := 0
	for _, g := range groups {
		require.NotEmpty(t, g.Options, "empty categories must be omitted")
		total += len(g.Options)
	}
	assert.Equal(t, reg.Len(), total)
}

func TestInferType(t *testing.T) {
	cases := []struct {
		key  string
		def  string
		docs string
		want ValueType
	}{
		{"window-decoration", "true", "", TypeBoolean},
		{"cursor-color", "", "", TypeColor},
		{"background", "#282c34", "", TypeColor},
		{"scrollback-limit", "10000000", "", TypeInteger},
		{"font-size", "13", "", TypeFloat},
		{"background-opacity", "1.0", "", TypeFloat},
		{"resize-overlay-duration", "750ms", "", TypeDuration},
		{"keybind", "", "", TypeKeybind},
		{"palette", "", "", TypePalette},
		{"font-family", "", "", TypeFont},
		{"working-directory", "", "", TypePath},
		{"custom-shader", "", "", TypePath},
		{"font-feature", "", "", TypeList},
		{"window-padding-x", "2", "", TypeText},
		{"title", "", "", TypeText},
	}
	for _, tc := range cases {
		got, _ := InferType(tc.key, tc.def, tc.docs)
		assert.Equal(t, tc.want, got, tc.key)
	}
}

func TestIsRepeatable(t *testing.T) {
	assert.True(t, IsRepeatable("keybind"))
	assert.True(t, IsRepeatable("palette"))
	assert.True(t, IsRepeatable("font-family-bold"))
	assert.False(t, IsRepeatable("font-size"))
	assert.False(t, IsRepeatable("theme"))
}

func TestCategorize(t *testing.T) {
	cases := map[string]Category{
		"font-family":              CategoryFonts,
		"palette":                  CategoryColors,
		"window-width":             CategoryWindow,
		"cursor-style":             CategoryCursor,
		"mouse-hide-while-typing":  CategoryMouse,
		"clipboard-read":           CategoryClipboard,
		"keybind":                  CategoryKeybindings,
		"shell-integration":        CategoryShell,
		"theme":                    CategoryAppearance,
		"background-opacity":       CategoryBackground,
		"macos-titlebar-style":     CategoryMacOS,
		"gtk-single-instance":      CategoryGTKLinux,
		"scrollback-limit":         CategoryScrollback,
		"term":                     CategoryTerminal,
		"some-unheard-of-key":      CategoryAdvanced,
	}
	for key, want := range cases {
		assert.Equal(t, want, Categorize(key), key)
	}
}
