package validate

import (
	"fmt"

	"github.com/bnema/ghostconf/internal/document"
	"github.com/bnema/ghostconf/internal/keybind"
	"github.com/bnema/ghostconf/internal/schema"
)

// Check validates every entry of a document against the registry. It always
// terminates, never mutates the document, and never fails: malformed values
// become issues, not errors.
func Check(doc *document.Document, reg *schema.Registry) []Issue {
	var issues []Issue

	seen := make(map[string][]int) // key -> line indexes
	bindings := make(map[keybind.Trigger][]bindingAt)
	var triggerOrder []keybind.Trigger

	for i, ln := range doc.Lines {
		if ln.Kind != document.KindEntry {
			continue
		}

		opt, known := reg.Lookup(ln.Key)
		if !known {
			issues = append(issues, Issue{
				Line:     i,
				Key:      ln.Key,
				Value:    ln.Value,
				Severity: SeverityWarning,
				Kind:     KindUnknownKey,
				Message:  fmt.Sprintf("unknown option %q (schema may predate your Ghostty version)", ln.Key),
			})
			continue
		}

		seen[ln.Key] = append(seen[ln.Key], i)

		typed, err := TypedValue(opt, ln.Value)
		if err != nil {
			issues = append(issues, Issue{
				Line:     i,
				Key:      ln.Key,
				Value:    ln.Value,
				Severity: SeverityError,
				Kind:     KindTypeMismatch,
				Message:  err.Error(),
			})
			continue
		}

		if b, ok := typed.(keybind.Binding); ok {
			if _, dup := bindings[b.Trigger]; !dup {
				triggerOrder = append(triggerOrder, b.Trigger)
			}
			bindings[b.Trigger] = append(bindings[b.Trigger], bindingAt{line: i, action: b.Action})
		}

		if !opt.Repeatable && len(seen[ln.Key]) == 2 {
			// Report once per key, against the later occurrence. Last wins
			// as the effective value; the issue surfaces the cleanup.
			lines := seen[ln.Key]
			issues = append(issues, Issue{
				Line:     lines[len(lines)-1],
				Key:      ln.Key,
				Value:    ln.Value,
				Severity: SeverityError,
				Kind:     KindDuplicateKey,
				Message:  fmt.Sprintf("%q set more than once; the last value wins", ln.Key),
				Related:  lines[:len(lines)-1],
			})
		}
	}

	issues = append(issues, bindingConflicts(triggerOrder, bindings)...)
	return issues
}

type bindingAt struct {
	line   int
	action string
}

func bindingConflicts(order []keybind.Trigger, bindings map[keybind.Trigger][]bindingAt) []Issue {
	var issues []Issue
	for _, trig := range order {
		bound := bindings[trig]
		distinct := make(map[string]bool)
		for _, b := range bound {
			distinct[b.action] = true
		}
		if len(distinct) < 2 {
			continue
		}

		last := bound[len(bound)-1]
		related := make([]int, 0, len(bound)-1)
		for _, b := range bound[:len(bound)-1] {
			related = append(related, b.line)
		}
		issues = append(issues, Issue{
			Line:     last.line,
			Key:      "keybind",
			Value:    trig.String() + "=" + last.action,
			Severity: SeverityError,
			Kind:     KindConflictingBinding,
			Message:  fmt.Sprintf("trigger %q is bound to %d different actions", trig, len(distinct)),
			Related:  related,
		})
	}
	return issues
}
