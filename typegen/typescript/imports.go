package typescript

import (
	"strings"

	"github.com/teranos/gentypes/typegen/util"
)

// Quote characters for import specifiers
const (
	SingleQuote = "'"
	DoubleQuote = `"`
)

// QuoteFor returns the quote character for the singleQuote flag
func QuoteFor(singleQuote bool) string {
	if singleQuote {
		return SingleQuote
	}
	return DoubleQuote
}

// ImportLine renders `import { Model } from './model';`
func ImportLine(model, quote string) string {
	return "import { " + model + " } from " + quote + "./" + util.ToCamelCase(model) + quote + ";"
}

// ImportLines renders one import line per name, skipping self
func ImportLines(names []string, self, quote string) []string {
	lines := make([]string, 0, len(names))
	for _, name := range names {
		if name == self {
			continue
		}
		lines = append(lines, ImportLine(name, quote))
	}
	return lines
}

// RenderModelFile renders a multi-file module: import lines, a blank line, then the body
func RenderModelFile(iface *Interface, quote string) string {
	return strings.Join(ImportLines(iface.Imports, iface.Name, quote), "\n") + "\n\n" + iface.Body
}

// RenderBuiltinFile renders a built-in module; its imports sit directly above the body
func RenderBuiltinFile(b Builtin, quote string) string {
	var sb strings.Builder
	for _, line := range ImportLines(b.Imports, b.Name, quote) {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	sb.WriteString(b.Body)
	return sb.String()
}

// ImportSet collects referenced names across interfaces in first-seen order
type ImportSet struct {
	order []string
	seen  map[string]bool
}

// NewImportSet creates an empty set
func NewImportSet() *ImportSet {
	return &ImportSet{seen: make(map[string]bool)}
}

// Add records names not yet seen
func (s *ImportSet) Add(names ...string) {
	for _, name := range names {
		if !s.seen[name] {
			s.seen[name] = true
			s.order = append(s.order, name)
		}
	}
}

// Unresolved returns names that are neither declared nor built-in
func (s *ImportSet) Unresolved(declared map[string]bool) []string {
	var out []string
	for _, name := range s.order {
		if declared[name] || BuiltinNames[name] {
			continue
		}
		out = append(out, name)
	}
	return out
}
