package keybind

import (
	"fmt"
	"strings"
)

// Binding is one keybinding: a trigger mapped to an action. Actions may
// carry parameters after a colon (e.g. "goto_tab:1").
type Binding struct {
	Trigger Trigger `json:"trigger"`
	Action  string  `json:"action"`
}

// Parse parses the value of a `keybind` entry: `trigger=action`.
func Parse(value string) (Binding, error) {
	value = strings.TrimSpace(value)
	eq := strings.Index(value, "=")
	if eq < 0 {
		return Binding{}, fmt.Errorf("keybind %q: missing '=' between trigger and action", value)
	}

	trigger, err := ParseTrigger(value[:eq])
	if err != nil {
		return Binding{}, err
	}

	action := strings.TrimSpace(value[eq+1:])
	if action == "" {
		return Binding{}, fmt.Errorf("keybind %q: empty action", value)
	}

	return Binding{Trigger: trigger, Action: action}, nil
}

// String renders the binding in the `trigger=action` config form with the
// trigger in canonical modifier order.
func (b Binding) String() string {
	return b.Trigger.String() + "=" + b.Action
}

// ActionName returns the action without its parameters.
func (b Binding) ActionName() string {
	if i := strings.Index(b.Action, ":"); i >= 0 {
		return b.Action[:i]
	}
	return b.Action
}

// Conflict reports a trigger bound to more than one action within a scope.
type Conflict struct {
	Trigger Trigger  `json:"trigger"`
	Actions []string `json:"actions"`
}

// DetectConflicts finds triggers shared by multiple bindings. A trigger
// repeated with the identical action is not a conflict.
func DetectConflicts(bindings []Binding) []Conflict {
	byTrigger := make(map[Trigger][]string)
	var order []Trigger
	for _, b := range bindings {
		if _, seen := byTrigger[b.Trigger]; !seen {
			order = append(order, b.Trigger)
		}
		byTrigger[b.Trigger] = append(byTrigger[b.Trigger], b.Action)
	}

	var conflicts []Conflict
	for _, trig := range order {
		actions := byTrigger[trig]
		if len(actions) < 2 {
			continue
		}
		distinct := dedupe(actions)
		if len(distinct) < 2 {
			continue
		}
		conflicts = append(conflicts, Conflict{Trigger: trig, Actions: distinct})
	}
	return conflicts
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	var out []string
	for _, s := range in {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
