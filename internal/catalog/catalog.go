// Package catalog holds the descriptor catalogs: static lookup tables that
// map enumerated option codes (copy type, rhetorical framework, objective,
// style, emotional focus) to long-form instruction paragraphs.
//
// Lookups are case-insensitive and trim surrounding whitespace. A code that
// is not in a catalog is returned unchanged: users can type free-text values
// and those flow straight into the compiled prompt.
package catalog

import (
	"sort"
	"strings"
)

// normalize lowercases and trims a code before lookup.
func normalize(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

// lookup returns the catalog text for code, or the code itself when absent.
func lookup(table map[string]string, code string) string {
	if text, ok := table[normalize(code)]; ok {
		return text
	}
	return code
}

// keys returns the sorted option codes of a catalog.
func keys(table map[string]string) []string {
	out := make([]string, 0, len(table))
	for k := range table {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// CopyType returns the instruction paragraph for a copy-type code.
func CopyType(code string) string { return lookup(copyTypes, code) }

// Framework returns the instruction paragraph for a rhetorical-framework code.
func Framework(code string) string { return lookup(frameworks, code) }

// Objective returns the instruction paragraph for an objective code.
func Objective(code string) string { return lookup(objectives, code) }

// Style returns the instruction paragraph for a style tag.
func Style(code string) string { return lookup(styles, code) }

// EmotionalFocus returns the instruction paragraph for an emotional-focus code.
func EmotionalFocus(code string) string { return lookup(emotionalFocuses, code) }

// CopyTypeKeys returns the known copy-type codes.
func CopyTypeKeys() []string { return keys(copyTypes) }

// FrameworkKeys returns the known framework codes.
func FrameworkKeys() []string { return keys(frameworks) }

// ObjectiveKeys returns the known objective codes.
func ObjectiveKeys() []string { return keys(objectives) }

// StyleKeys returns the known style tags.
func StyleKeys() []string { return keys(styles) }

// EmotionalFocusKeys returns the known emotional-focus codes.
func EmotionalFocusKeys() []string { return keys(emotionalFocuses) }

// Names lists the catalog names served by the API.
func Names() []string {
	return []string{"copy_types", "frameworks", "objectives", "styles", "emotional_focuses"}
}

// ByName returns a copy of the named catalog, or nil if unknown.
func ByName(name string) map[string]string {
	var src map[string]string
	switch name {
	case "copy_types":
		src = copyTypes
	case "frameworks":
		src = frameworks
	case "objectives":
		src = objectives
	case "styles":
		src = styles
	case "emotional_focuses":
		src = emotionalFocuses
	default:
		return nil
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
