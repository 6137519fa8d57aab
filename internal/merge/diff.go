// Package merge computes the key-level delta between a session's baseline
// document and the user's edits, and replays that delta onto a freshly
// re-read on-disk document. External changes to keys the user also touched
// surface as conflicts; the engine never picks a winner.
package merge

import (
	"github.com/bnema/ghostconf/internal/document"
	"github.com/bnema/ghostconf/internal/schema"
)

// OpKind is the kind of edit operation in a diff.
type OpKind string

const (
	// OpSet sets the effective value of a non-repeatable key.
	OpSet OpKind = "set"
	// OpRemove removes a key entirely; for repeatable keys Value selects
	// the single occurrence to drop.
	OpRemove OpKind = "remove"
	// OpAdd appends one occurrence of a repeatable key.
	OpAdd OpKind = "add"
)

// Op is one intended edit derived from comparing baseline to edited.
type Op struct {
	Kind  OpKind `json:"kind"`
	Key   string `json:"key"`
	Value string `json:"value,omitempty"`
}

// Diff computes the user's intended changes as an operation list. For
// non-repeatable keys it compares effective (last-wins) values; for
// repeatable keys it compares value multisets, emitting an add or remove
// per occurrence difference.
func Diff(baseline, edited *document.Document, reg *schema.Registry) []Op {
	var ops []Op

	keys := unionKeys(baseline, edited)
	for _, key := range keys {
		if isRepeatable(key, reg) {
			ops = append(ops, diffRepeatable(key, baseline, edited)...)
			continue
		}

		baseVal, inBase := baseline.Get(key)
		editVal, inEdit := edited.Get(key)
		switch {
		case inBase && !inEdit:
			ops = append(ops, Op{Kind: OpRemove, Key: key})
		case inEdit && (!inBase || baseVal != editVal):
			ops = append(ops, Op{Kind: OpSet, Key: key, Value: editVal})
		}
	}
	return ops
}

func diffRepeatable(key string, baseline, edited *document.Document) []Op {
	baseVals := baseline.GetAll(key)
	editVals := edited.GetAll(key)

	baseCount := counts(baseVals)
	editCount := counts(editVals)

	var ops []Op
	for _, v := range baseVals {
		if editCount[v] < baseCount[v] {
			baseCount[v]--
			ops = append(ops, Op{Kind: OpRemove, Key: key, Value: v})
		}
	}
	for _, v := range editVals {
		if baseCount[v] < editCount[v] {
			editCount[v]--
			ops = append(ops, Op{Kind: OpAdd, Key: key, Value: v})
		}
	}
	return ops
}

func counts(vals []string) map[string]int {
	m := make(map[string]int, len(vals))
	for _, v := range vals {
		m[v]++
	}
	return m
}

// isRepeatable treats keys missing from the registry as non-repeatable,
// which matches last-wins semantics for arbitrary unknown keys.
func isRepeatable(key string, reg *schema.Registry) bool {
	if reg == nil {
		return false
	}
	opt, ok := reg.Lookup(key)
	return ok && opt.Repeatable
}

func unionKeys(a, b *document.Document) []string {
	seen := make(map[string]bool)
	var out []string
	for _, key := range a.Keys() {
		if !seen[key] {
			seen[key] = true
			out = append(out, key)
		}
	}
	for _, key := range b.Keys() {
		if !seen[key] {
			seen[key] = true
			out = append(out, key)
		}
	}
	return out
}
