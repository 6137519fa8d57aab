// Package document models a Ghostty config file as an ordered sequence of
// lines. Parsing is lossless: every input line keeps its verbatim text, so
// serializing an unedited document reproduces the original bytes (modulo a
// single trailing-newline normalization).
package document

import "strings"

// LineKind discriminates the parsed shape of one physical line.
type LineKind int

const (
	// KindEntry is a recognized `key = value` line.
	KindEntry LineKind = iota
	// KindComment is a `#`-prefixed line.
	KindComment
	// KindBlank is an empty or whitespace-only line.
	KindBlank
	// KindOpaque is a line the parser could not interpret. It is preserved
	// verbatim and never validated, so re-serialization loses nothing.
	KindOpaque
)

// Line is one physical config line. Key and Value are populated only for
// KindEntry. Raw holds the original text for lines read from disk; lines
// created or modified through the API have Raw == "" and are rendered in
// the canonical `key = value` form.
type Line struct {
	Kind  LineKind
	Key   string
	Value string
	Raw   string
}

// Document is the ordered line model of one config file. Line index is the
// source order: it is strictly increasing and repeated occurrences of a
// repeatable key stay as independent lines.
type Document struct {
	Lines []Line
}

// New returns an empty document.
func New() *Document {
	return &Document{}
}

// Clone returns a deep copy.
func (d *Document) Clone() *Document {
	out := &Document{Lines: make([]Line, len(d.Lines))}
	copy(out.Lines, d.Lines)
	return out
}

// Get returns the effective value for a key. For keys appearing multiple
// times the last occurrence wins, matching Ghostty's own semantics.
func (d *Document) Get(key string) (string, bool) {
	for i := len(d.Lines) - 1; i >= 0; i-- {
		if d.Lines[i].Kind == KindEntry && d.Lines[i].Key == key {
			return d.Lines[i].Value, true
		}
	}
	return "", false
}

// GetAll returns every value for a key in source order.
func (d *Document) GetAll(key string) []string {
	var out []string
	for _, ln := range d.Lines {
		if ln.Kind == KindEntry && ln.Key == key {
			out = append(out, ln.Value)
		}
	}
	return out
}

// Set updates the first occurrence of key in place, or appends a new entry
// line. The touched line loses its raw text and re-serializes canonically.
func (d *Document) Set(key, value string) {
	for i := range d.Lines {
		if d.Lines[i].Kind == KindEntry && d.Lines[i].Key == key {
			if d.Lines[i].Value == value {
				return
			}
			d.Lines[i].Value = value
			d.Lines[i].Raw = ""
			return
		}
	}
	d.Lines = append(d.Lines, Line{Kind: KindEntry, Key: key, Value: value})
}

// Add appends an entry line unconditionally. Used for repeatable keys where
// each occurrence is cumulative.
func (d *Document) Add(key, value string) {
	d.Lines = append(d.Lines, Line{Kind: KindEntry, Key: key, Value: value})
}

// Remove deletes every entry line for key. Comments and blank lines around
// the removed entries are left in place.
func (d *Document) Remove(key string) {
	kept := d.Lines[:0]
	for _, ln := range d.Lines {
		if ln.Kind == KindEntry && ln.Key == key {
			continue
		}
		kept = append(kept, ln)
	}
	d.Lines = kept
}

// RemoveValue deletes the last entry line matching both key and value. One
// call removes one occurrence of a repeatable key.
func (d *Document) RemoveValue(key, value string) {
	for i := len(d.Lines) - 1; i >= 0; i-- {
		ln := d.Lines[i]
		if ln.Kind == KindEntry && ln.Key == key && ln.Value == value {
			d.Lines = append(d.Lines[:i], d.Lines[i+1:]...)
			return
		}
	}
}

// Entries returns all key/value lines in source order.
func (d *Document) Entries() []Line {
	var out []Line
	for _, ln := range d.Lines {
		if ln.Kind == KindEntry {
			out = append(out, ln)
		}
	}
	return out
}

// Keys returns the distinct entry keys in first-occurrence order.
func (d *Document) Keys() []string {
	seen := make(map[string]bool)
	var out []string
	for _, ln := range d.Lines {
		if ln.Kind != KindEntry || seen[ln.Key] {
			continue
		}
		seen[ln.Key] = true
		out = append(out, ln.Key)
	}
	return out
}

// CommentFor returns the comment text attached to the entry at line index i:
// the contiguous block of comment lines immediately preceding it, joined
// with newlines. Returns "" when there is none.
func (d *Document) CommentFor(i int) string {
	if i < 0 || i >= len(d.Lines) {
		return ""
	}
	var block []string
	for j := i - 1; j >= 0 && d.Lines[j].Kind == KindComment; j-- {
		text := d.Lines[j].Raw
		if text == "" {
			text = "#"
		}
		block = append([]string{text}, block...)
	}
	return strings.Join(block, "\n")
}
