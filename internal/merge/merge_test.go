package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/ghostconf/internal/document"
	"github.com/bnema/ghostconf/internal/schema"
)

const mergeSchema = `# Font size in points.
font-size = 13

# Theme.
theme =

# Window width.
window-width = 0

# Keybindings.
keybind =

# Color palette.
palette =
`

func mergeRegistry(t *testing.T) *schema.Registry {
	t.Helper()
	reg, err := schema.Load(mergeSchema)
	require.NoError(t, err)
	return reg
}

func doc(t *testing.T, text string) *document.Document {
	t.Helper()
	return document.Parse([]byte(text))
}

func TestDiffSetRemoveAdd(t *testing.T) {
	reg := mergeRegistry(t)
	baseline := doc(t, "font-size = 12\ntheme = dark\nkeybind = ctrl+a=select_all\n")
	edited := doc(t, "font-size = 14\nkeybind = ctrl+a=select_all\nkeybind = ctrl+b=new_window\n")

	ops := Diff(baseline, edited, reg)
	assert.ElementsMatch(t, []Op{
		{Kind: OpSet, Key: "font-size", Value: "14"},
		{Kind: OpRemove, Key: "theme"},
		{Kind: OpAdd, Key: "keybind", Value: "ctrl+b=new_window"},
	}, ops)
}

func TestDiffNoChanges(t *testing.T) {
	reg := mergeRegistry(t)
	baseline := doc(t, "font-size = 12\nkeybind = ctrl+a=select_all\n")
	assert.Empty(t, Diff(baseline, baseline.Clone(), reg))
}

func TestDiffNonRepeatableComparesEffectiveValue(t *testing.T) {
	reg := mergeRegistry(t)
	// Duplicate in baseline: the effective value is the last one.
	baseline := doc(t, "font-size = 12\nfont-size = 14\n")
	edited := doc(t, "font-size = 14\n")

	assert.Empty(t, Diff(baseline, edited, reg))
}

func TestDiffRepeatableMultiset(t *testing.T) {
	reg := mergeRegistry(t)
	baseline := doc(t, "palette = 0=#000000\npalette = 1=#ff0000\n")
	edited := doc(t, "palette = 1=#ff0000\npalette = 2=#00ff00\n")

	ops := Diff(baseline, edited, reg)
	assert.ElementsMatch(t, []Op{
		{Kind: OpRemove, Key: "palette", Value: "0=#000000"},
		{Kind: OpAdd, Key: "palette", Value: "2=#00ff00"},
	}, ops)
}

func TestReconcileCleanApply(t *testing.T) {
	reg := mergeRegistry(t)
	baseline := doc(t, "# sizes\nfont-size = 12\ntheme = dark\n")
	edited := baseline.Clone()
	edited.Set("font-size", "14")

	// Live gained an unrelated key while the session was open.
	live := doc(t, "# sizes\nfont-size = 12\ntheme = dark\nwindow-width = 120\n")

	out, report := Reconcile(baseline, edited, live, reg)
	require.Nil(t, report)
	require.NotNil(t, out)

	v, _ := out.Get("font-size")
	assert.Equal(t, "14", v)
	v, _ = out.Get("window-width")
	assert.Equal(t, "120", v, "external addition must survive")
	assert.Equal(t, "# sizes\nfont-size = 14\ntheme = dark\nwindow-width = 120\n", string(document.Serialize(out)))
}

func TestReconcileConflict(t *testing.T) {
	reg := mergeRegistry(t)
	baseline := doc(t, "font-size = 1\n")
	edited := doc(t, "font-size = 2\n")
	live := doc(t, "font-size = 3\n")

	out, report := Reconcile(baseline, edited, live, reg)
	assert.Nil(t, out)
	require.Len(t, report, 1)

	c := report[0]
	assert.Equal(t, "font-size", c.Key)
	assert.Equal(t, []string{"1"}, c.Base)
	assert.Equal(t, []string{"2"}, c.Edited)
	assert.Equal(t, []string{"3"}, c.Live)
}

func TestReconcileLiveMatchesEditNoConflict(t *testing.T) {
	reg := mergeRegistry(t)
	baseline := doc(t, "font-size = 1\n")
	edited := doc(t, "font-size = 2\n")
	// Someone already made the same change on disk.
	live := doc(t, "font-size = 2\n")

	out, report := Reconcile(baseline, edited, live, reg)
	require.Nil(t, report)
	v, _ := out.Get("font-size")
	assert.Equal(t, "2", v)
}

func TestReconcileUntouchedKeysNeverConflict(t *testing.T) {
	reg := mergeRegistry(t)
	baseline := doc(t, "font-size = 12\ntheme = dark\n")
	edited := doc(t, "font-size = 14\ntheme = dark\n")
	// theme changed externally, but the user did not touch it.
	live := doc(t, "font-size = 12\ntheme = light\n")

	out, report := Reconcile(baseline, edited, live, reg)
	require.Nil(t, report)

	v, _ := out.Get("theme")
	assert.Equal(t, "light", v)
}

func TestReconcileDeterministic(t *testing.T) {
	reg := mergeRegistry(t)
	baseline := doc(t, "font-size = 12\nkeybind = ctrl+a=select_all\n")
	edited := doc(t, "font-size = 14\nkeybind = ctrl+b=new_window\n")
	live := doc(t, "font-size = 12\nkeybind = ctrl+a=select_all\nwindow-width = 80\n")

	first, report := Reconcile(baseline, edited, live, reg)
	require.Nil(t, report)
	second, report := Reconcile(baseline, edited, live, reg)
	require.Nil(t, report)

	assert.Equal(t, string(document.Serialize(first)), string(document.Serialize(second)))
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	reg := mergeRegistry(t)
	live := doc(t, "font-size = 12\n")
	out := Apply(live, []Op{{Kind: OpSet, Key: "font-size", Value: "99"}}, reg)

	v, _ := live.Get("font-size")
	assert.Equal(t, "12", v)
	v, _ = out.Get("font-size")
	assert.Equal(t, "99", v)
}

func TestApplyRemoveRepeatableOccurrence(t *testing.T) {
	reg := mergeRegistry(t)
	live := doc(t, "keybind = ctrl+a=select_all\nkeybind = ctrl+b=new_window\n")
	out := Apply(live, []Op{{Kind: OpRemove, Key: "keybind", Value: "ctrl+a=select_all"}}, reg)

	assert.Equal(t, []string{"ctrl+b=new_window"}, out.GetAll("keybind"))
}
