package document

import "strings"

// Serialize renders the document back to config bytes. Unedited lines are
// emitted verbatim from their raw text; lines created or modified through
// the API render as `key = value`. The output always ends with exactly one
// newline — the single normalization applied to otherwise byte-identical
// round trips.
func Serialize(doc *Document) []byte {
	if len(doc.Lines) == 0 {
		return nil
	}

	var b strings.Builder
	for _, ln := range doc.Lines {
		b.WriteString(renderLine(ln))
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

func renderLine(ln Line) string {
	if ln.Kind == KindEntry && ln.Raw == "" {
		return ln.Key + " = " + ln.Value
	}
	return ln.Raw
}
