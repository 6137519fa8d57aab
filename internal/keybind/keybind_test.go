package keybind

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTriggerCanonicalOrder(t *testing.T) {
	a, err := ParseTrigger("shift+ctrl+a")
	require.NoError(t, err)
	b, err := ParseTrigger("ctrl+shift+a")
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, "ctrl+shift+a", a.String())
}

func TestParseTriggerSynonyms(t *testing.T) {
	cases := map[string]string{
		"cmd+q":          "super+q",
		"command+q":      "super+q",
		"opt+left":       "alt+left",
		"option+left":    "alt+left",
		"control+c":      "ctrl+c",
		"win+l":          "super+l",
		"meta+shift+tab": "shift+super+tab",
	}
	for in, want := range cases {
		trig, err := ParseTrigger(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, trig.String(), in)
	}
}

func TestParseTriggerCaseInsensitive(t *testing.T) {
	a, err := ParseTrigger("Ctrl+Shift+A")
	require.NoError(t, err)
	assert.Equal(t, "ctrl+shift+a", a.String())
}

func TestParseTriggerBareKey(t *testing.T) {
	trig, err := ParseTrigger("f11")
	require.NoError(t, err)
	assert.True(t, trig.Mods.IsEmpty())
	assert.Equal(t, "f11", trig.String())
}

func TestParseTriggerPlusKey(t *testing.T) {
	trig, err := ParseTrigger("ctrl++")
	require.NoError(t, err)
	assert.Equal(t, "+", trig.Key)
	assert.Equal(t, "ctrl++", trig.String())
}

func TestParseTriggerErrors(t *testing.T) {
	for _, in := range []string{"", "bogus+a+x", "ctrl+bogus+a"} {
		_, err := ParseTrigger(in)
		assert.Error(t, err, in)
	}
}

func TestParseBinding(t *testing.T) {
	b, err := Parse("ctrl+shift+t=new_tab")
	require.NoError(t, err)
	assert.Equal(t, "new_tab", b.Action)
	assert.Equal(t, "ctrl+shift+t=new_tab", b.String())
}

func TestParseBindingActionParams(t *testing.T) {
	b, err := Parse("ctrl+1=goto_tab:1")
	require.NoError(t, err)
	assert.Equal(t, "goto_tab:1", b.Action)
	assert.Equal(t, "goto_tab", b.ActionName())
}

func TestParseBindingErrors(t *testing.T) {
	_, err := Parse("ctrl+t")
	assert.Error(t, err)

	_, err = Parse("ctrl+t=")
	assert.Error(t, err)
}

func TestDetectConflicts(t *testing.T) {
	bindings := []Binding{
		mustParse(t, "ctrl+shift+t=new_tab"),
		mustParse(t, "shift+ctrl+t=close_surface"),
		mustParse(t, "ctrl+q=quit"),
	}

	conflicts := DetectConflicts(bindings)
	require.Len(t, conflicts, 1)
	assert.Equal(t, "ctrl+shift+t", conflicts[0].Trigger.String())
	assert.Equal(t, []string{"new_tab", "close_surface"}, conflicts[0].Actions)
}

func TestDetectConflictsSameActionRepeated(t *testing.T) {
	bindings := []Binding{
		mustParse(t, "ctrl+q=quit"),
		mustParse(t, "ctrl+q=quit"),
	}
	assert.Empty(t, DetectConflicts(bindings))
}

func mustParse(t *testing.T, value string) Binding {
	t.Helper()
	b, err := Parse(value)
	require.NoError(t, err)
	return b
}
