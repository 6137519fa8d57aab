// Package validate checks a config document against the schema registry and
// reports per-entry issues. It is pure: no I/O, no document mutation.
package validate

// Severity classifies an issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Kind identifies the class of validation issue.
type Kind string

const (
	// KindTypeMismatch means the raw value does not parse under the
	// option's declared value type or domain.
	KindTypeMismatch Kind = "type_mismatch"
	// KindUnknownKey means the key is not in the registry. A warning only:
	// the installed Ghostty may be newer than the discovered schema.
	KindUnknownKey Kind = "unknown_key"
	// KindDuplicateKey means a non-repeatable key appears more than once.
	// The last occurrence stays effective; the issue surfaces the cleanup.
	KindDuplicateKey Kind = "duplicate_key"
	// KindConflictingBinding means one trigger maps to multiple actions.
	KindConflictingBinding Kind = "conflicting_binding"
)

// Issue is one validation finding tied to a document entry.
type Issue struct {
	// Line is the source line index of the offending entry. For issues
	// spanning several entries (duplicates, binding conflicts) it points at
	// the later occurrence and Related lists the others.
	Line     int      `json:"line"`
	Key      string   `json:"key"`
	Value    string   `json:"value"`
	Severity Severity `json:"severity"`
	Kind     Kind     `json:"kind"`
	Message  string   `json:"message"`
	Related  []int    `json:"related,omitempty"`
}

// HasErrors reports whether any issue in the list is an error. Callers use
// this to gate saves: warnings may proceed, errors must not.
func HasErrors(issues []Issue) bool {
	for _, is := range issues {
		if is.Severity == SeverityError {
			return true
		}
	}
	return false
}
