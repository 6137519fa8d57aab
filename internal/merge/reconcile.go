package merge

import (
	"slices"

	"github.com/bnema/ghostconf/internal/document"
	"github.com/bnema/ghostconf/internal/schema"
)

// Conflict records a key that the user edited while the on-disk file also
// changed it to something else. The caller decides which side wins.
type Conflict struct {
	Key string `json:"key"`
	// Base is the value the session started from, Edited what the user
	// wants, Live what is on disk now. Repeatable keys carry every
	// occurrence, others a single element (empty slice means unset).
	Base   []string `json:"base"`
	Edited []string `json:"edited"`
	Live   []string `json:"live"`
}

// ConflictReport lists every conflicting key of one reconcile attempt.
type ConflictReport []Conflict

// Reconcile replays the user's intended edits (the baseline->edited diff)
// onto the live on-disk document. If any edited key was also changed
// externally to a value differing from both the baseline and the edit, the
// report is returned and no document is produced: this engine never
// auto-resolves. With no conflicts the result is a new document ready for
// serialization; the inputs are never mutated. Reconcile is deterministic,
// so replaying the same inputs always yields the same document.
func Reconcile(baseline, edited, live *document.Document, reg *schema.Registry) (*document.Document, ConflictReport) {
	ops := Diff(baseline, edited, reg)

	var report ConflictReport
	checked := make(map[string]bool)
	for _, op := range ops {
		if checked[op.Key] {
			continue
		}
		checked[op.Key] = true

		baseVals := valuesOf(baseline, op.Key)
		editVals := valuesOf(edited, op.Key)
		liveVals := valuesOf(live, op.Key)

		if slices.Equal(liveVals, baseVals) || slices.Equal(liveVals, editVals) {
			continue
		}
		report = append(report, Conflict{
			Key:    op.Key,
			Base:   baseVals,
			Edited: editVals,
			Live:   liveVals,
		})
	}
	if len(report) > 0 {
		return nil, report
	}

	return Apply(live, ops, reg), nil
}

// Apply replays an operation list onto a document, returning a new document
// and leaving the input untouched.
func Apply(doc *document.Document, ops []Op, reg *schema.Registry) *document.Document {
	out := doc.Clone()
	for _, op := range ops {
		switch op.Kind {
		case OpSet:
			out.Set(op.Key, op.Value)
		case OpAdd:
			out.Add(op.Key, op.Value)
		case OpRemove:
			if isRepeatable(op.Key, reg) {
				out.RemoveValue(op.Key, op.Value)
			} else {
				out.Remove(op.Key)
			}
		}
	}
	return out
}

func valuesOf(doc *document.Document, key string) []string {
	return doc.GetAll(key)
}
