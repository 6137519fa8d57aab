package document

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `# Ghostty config
# tuned for daily use

font-family = JetBrains Mono
font-size = 13

theme = catppuccin-mocha
background-opacity = 0.95

# bindings
keybind = ctrl+shift+t=new_tab
keybind = ctrl+shift+w=close_surface
`

func TestParseRoundTrip(t *testing.T) {
	doc := Parse([]byte(sampleConfig))
	assert.Equal(t, sampleConfig, string(Serialize(doc)))
}

func TestParseRoundTripNoTrailingNewline(t *testing.T) {
	in := "font-size = 13\n# trailing comment"
	doc := Parse([]byte(in))
	// Serialization always ends in exactly one newline.
	assert.Equal(t, in+"\n", string(Serialize(doc)))
}

func TestParseRoundTripWeirdLines(t *testing.T) {
	in := "   \nnot a config line\nkey-without-value =\n = orphan value\n\t\n"
	doc := Parse([]byte(in))
	assert.Equal(t, in, string(Serialize(doc)))

	// The junk lines survive as opaque, not as entries.
	assert.Equal(t, KindBlank, doc.Lines[0].Kind)
	assert.Equal(t, KindOpaque, doc.Lines[1].Kind)
	assert.Equal(t, KindEntry, doc.Lines[2].Kind)
	assert.Equal(t, "", doc.Lines[2].Value)
	assert.Equal(t, KindOpaque, doc.Lines[3].Kind)
	assert.Equal(t, KindBlank, doc.Lines[4].Kind)
}

func TestParseEmpty(t *testing.T) {
	doc := Parse(nil)
	assert.Empty(t, doc.Lines)
	assert.Equal(t, "", string(Serialize(doc)))
}

func TestParseKeepsSpacingVerbatim(t *testing.T) {
	in := "font-size=13\nfont-family   =   Fira Code\n"
	doc := Parse([]byte(in))

	v, ok := doc.Get("font-size")
	require.True(t, ok)
	assert.Equal(t, "13", v)

	v, ok = doc.Get("font-family")
	require.True(t, ok)
	assert.Equal(t, "Fira Code", v)

	// Untouched lines serialize with their original spacing.
	assert.Equal(t, in, string(Serialize(doc)))
}

func TestGetLastWins(t *testing.T) {
	doc := Parse([]byte("font-size = 12\nfont-size = 14\n"))
	v, ok := doc.Get("font-size")
	require.True(t, ok)
	assert.Equal(t, "14", v)
	assert.Equal(t, []string{"12", "14"}, doc.GetAll("font-size"))
}

func TestSetUpdatesInPlace(t *testing.T) {
	doc := Parse([]byte("# size\nfont-size = 12\ntheme = dark\n"))
	doc.Set("font-size", "16")

	assert.Equal(t, "# size\nfont-size = 16\ntheme = dark\n", string(Serialize(doc)))
}

func TestSetAppendsWhenMissing(t *testing.T) {
	doc := Parse([]byte("theme = dark\n"))
	doc.Set("font-size", "16")

	assert.Equal(t, "theme = dark\nfont-size = 16\n", string(Serialize(doc)))
}

func TestSetSameValueKeepsRaw(t *testing.T) {
	doc := Parse([]byte("font-size=13\n"))
	doc.Set("font-size", "13")
	// A no-op set must not reformat the line.
	assert.Equal(t, "font-size=13\n", string(Serialize(doc)))
}

func TestAddAccumulates(t *testing.T) {
	doc := Parse([]byte("keybind = ctrl+a=select_all\n"))
	doc.Add("keybind", "ctrl+b=new_window")

	assert.Equal(t, []string{"ctrl+a=select_all", "ctrl+b=new_window"}, doc.GetAll("keybind"))
}

func TestRemoveAllOccurrences(t *testing.T) {
	doc := Parse([]byte("# palette\npalette = 0=#000000\npalette = 1=#ff0000\ntheme = dark\n"))
	doc.Remove("palette")

	assert.Equal(t, "# palette\ntheme = dark\n", string(Serialize(doc)))
}

func TestRemoveValueRemovesLastMatch(t *testing.T) {
	doc := Parse([]byte("font-family = A\nfont-family = B\nfont-family = A\n"))
	doc.RemoveValue("font-family", "A")

	assert.Equal(t, []string{"A", "B"}, doc.GetAll("font-family"))
}

func TestCloneIsIndependent(t *testing.T) {
	doc := Parse([]byte("font-size = 12\n"))
	cp := doc.Clone()
	cp.Set("font-size", "20")

	v, _ := doc.Get("font-size")
	assert.Equal(t, "12", v)
}

func TestKeysFirstOccurrenceOrder(t *testing.T) {
	doc := Parse([]byte(sampleConfig))
	assert.Equal(t, []string{"font-family", "font-size", "theme", "background-opacity", "keybind"}, doc.Keys())
}

func TestCommentFor(t *testing.T) {
	doc := Parse([]byte("# first\n# second\nfont-size = 12\n\ntheme = dark\n"))

	assert.Equal(t, "# first\n# second", doc.CommentFor(2))
	// A blank line breaks the block.
	assert.Equal(t, "", doc.CommentFor(4))
}

func TestReadFileMissing(t *testing.T) {
	doc, err := ReadFile(filepath.Join(t.TempDir(), "nope", "config"))
	require.NoError(t, err)
	assert.Empty(t, doc.Lines)
}

func TestWriteFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ghostty", "config")

	doc := Parse([]byte(sampleConfig))
	doc.Set("font-size", "15")
	require.NoError(t, WriteFile(path, doc))

	got, err := ReadFile(path)
	require.NoError(t, err)
	v, _ := got.Get("font-size")
	assert.Equal(t, "15", v)
	assert.Equal(t, string(Serialize(doc)), string(Serialize(got)))
}

func TestWriteFileLeavesNoTempOnSuccess(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config")
	require.NoError(t, WriteFile(path, Parse([]byte("theme = dark\n"))))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "config", entries[0].Name())
}

func TestWriteFileFailureKeepsOriginal(t *testing.T) {
	dir := t.TempDir()
	// Target path's parent is a file, so the temp file cannot be created.
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	err := WriteFile(filepath.Join(blocker, "config"), Parse([]byte("theme = dark\n")))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIO)

	data, rerr := os.ReadFile(blocker)
	require.NoError(t, rerr)
	assert.Equal(t, "x", string(data))
}
