package schema

import (
	"errors"
	"fmt"
	"strings"
)

// ErrRegistryLoad indicates the schema source was missing or malformed.
// Without a registry no editing session can proceed.
var ErrRegistryLoad = errors.New("schema registry load failed")

// Registry is the immutable catalog of option specs for one installation.
// It is built once at startup and safe for concurrent readers.
type Registry struct {
	options []OptionSpec
	byKey   map[string]int
}

// Load parses the output of `ghostty +show-config --default --docs` into a
// Registry. The format is blocks of `# doc` lines followed by `key = value`,
// separated by blank lines. A key appearing twice keeps the documented
// occurrence (font-family repeats once with docs, then bare).
func Load(source string) (*Registry, error) {
	if strings.TrimSpace(source) == "" {
		return nil, fmt.Errorf("%w: empty schema source", ErrRegistryLoad)
	}

	var (
		options  []OptionSpec
		docLines []string
	)
	byKey := make(map[string]int)

	for _, line := range strings.Split(source, "\n") {
		switch {
		case strings.HasPrefix(line, "#"):
			doc := strings.TrimPrefix(line, "#")
			doc = strings.TrimPrefix(doc, " ")
			docLines = append(docLines, doc)

		case strings.TrimSpace(line) == "":
			// Blank separator inside a doc block is kept; leading blanks
			// before any docs are ignored.
			if len(docLines) > 0 {
				docLines = append(docLines, "")
			}

		default:
			eq := strings.Index(line, "=")
			if eq < 0 {
				docLines = docLines[:0]
				continue
			}
			key := strings.TrimSpace(line[:eq])
			def := strings.TrimSpace(line[eq+1:])

			for len(docLines) > 0 && docLines[len(docLines)-1] == "" {
				docLines = docLines[:len(docLines)-1]
			}
			docs := strings.Join(docLines, "\n")
			docLines = docLines[:0]

			if idx, seen := byKey[key]; seen {
				// Keep the documented occurrence.
				if docs == "" {
					continue
				}
				options = append(options[:idx], options[idx+1:]...)
				delete(byKey, key)
				for k, i := range byKey {
					if i > idx {
						byKey[k] = i - 1
					}
				}
			}

			vt, enumValues := InferType(key, def, docs)
			byKey[key] = len(options)
			options = append(options, OptionSpec{
				Key:           key,
				Default:       def,
				Documentation: docs,
				Type:          vt,
				EnumValues:    enumValues,
				Category:      Categorize(key),
				Repeatable:    IsRepeatable(key),
			})
		}
	}

	if len(options) == 0 {
		return nil, fmt.Errorf("%w: no options found in schema source", ErrRegistryLoad)
	}

	return &Registry{options: options, byKey: byKey}, nil
}

// Lookup returns the spec for a key, or false if the key is unknown.
func (r *Registry) Lookup(key string) (OptionSpec, bool) {
	idx, ok := r.byKey[key]
	if !ok {
		return OptionSpec{}, false
	}
	return r.options[idx], true
}

// Options returns all specs in declaration order.
func (r *Registry) Options() []OptionSpec {
	out := make([]OptionSpec, len(r.options))
	copy(out, r.options)
	return out
}

// Len returns the number of registered options.
func (r *Registry) Len() int { return len(r.options) }

// CategoryGroup pairs a category with its options in declaration order.
type CategoryGroup struct {
	Category Category     `json:"category"`
	Display  string       `json:"display"`
	Options  []OptionSpec `json:"options"`
}

// ListByCategory groups all options by category. Ordering is deterministic:
// categories in presentation order, options in schema declaration order.
// Empty categories are omitted.
func (r *Registry) ListByCategory() []CategoryGroup {
	grouped := make(map[Category][]OptionSpec)
	for _, opt := range r.options {
		grouped[opt.Category] = append(grouped[opt.Category], opt)
	}

	var out []CategoryGroup
	for _, cat := range Categories() {
		opts, ok := grouped[cat]
		if !ok {
			continue
		}
		out = append(out, CategoryGroup{
			Category: cat,
			Display:  cat.DisplayName(),
			Options:  opts,
		})
	}
	return out
}
