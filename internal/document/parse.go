package document

import "strings"

// Parse builds a Document from raw config bytes. It is permissive: anything
// that is not a blank line, a comment or a `key = value` pair is preserved
// as an opaque line rather than rejected, so user data the schema does not
// recognize survives a round trip untouched.
func Parse(data []byte) *Document {
	doc := New()
	if len(data) == 0 {
		return doc
	}

	text := strings.TrimSuffix(string(data), "\n")
	for _, raw := range strings.Split(text, "\n") {
		doc.Lines = append(doc.Lines, parseLine(raw))
	}
	return doc
}

func parseLine(raw string) Line {
	trimmed := strings.TrimSpace(raw)

	switch {
	case trimmed == "":
		return Line{Kind: KindBlank, Raw: raw}
	case strings.HasPrefix(trimmed, "#"):
		return Line{Kind: KindComment, Raw: raw}
	}

	eq := strings.Index(raw, "=")
	if eq < 0 {
		return Line{Kind: KindOpaque, Raw: raw}
	}

	key := strings.TrimSpace(raw[:eq])
	if key == "" {
		return Line{Kind: KindOpaque, Raw: raw}
	}

	return Line{
		Kind:  KindEntry,
		Key:   key,
		Value: strings.TrimSpace(raw[eq+1:]),
		Raw:   raw,
	}
}
