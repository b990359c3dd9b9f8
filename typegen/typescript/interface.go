package typescript

import (
	"strings"

	"github.com/teranos/gentypes/filter"
	"github.com/teranos/gentypes/schema"
	"github.com/teranos/gentypes/typegen/util"
)

// contentTypeMeta prefixes every content type interface
const contentTypeMeta = `
  id?: number;
  documentId?: string;
  createdAt?: Date | string;
  updatedAt?: Date | string;
  publishedAt?: Date | string;
  locale?: string | null;
`

// componentMeta prefixes every component interface
const componentMeta = "\n  id?: number;\n"

// Field is one rendered interface member
type Field struct {
	Name     string
	Optional bool
	Type     string
}

// Interface is the generated declaration for one model
type Interface struct {
	// Name is the declared interface name
	Name string
	// Fields in schema declaration order, metadata prefix excluded
	Fields []Field
	// Imports are referenced interface names, deduplicated, never Name itself
	Imports []string
	// Body is the rendered `export interface ... };` block with a trailing newline
	Body string
}

// Build renders the interface for one schema file under modelName.
// modelName is cased to PascalCase for the declared name.
func Build(modelName string, file *schema.File, spec filter.Spec) *Interface {
	iface := &Interface{Name: util.ToPascalCase(modelName)}

	var body strings.Builder
	body.WriteString("export interface ")
	body.WriteString(iface.Name)
	body.WriteString(" {")
	if file.IsComponent {
		body.WriteString(componentMeta)
	} else {
		body.WriteString(contentTypeMeta)
	}

	seen := map[string]bool{iface.Name: true}
	for _, attr := range file.Attributes {
		field := Field{
			Name:     attr.Name,
			Optional: !attr.Required,
			Type:     TypeFor(attr.Attribute, spec),
		}
		iface.Fields = append(iface.Fields, field)
		body.WriteString(field.String())

		if name, ok := resolveReference(attr.Attribute, spec); ok && !seen[name] {
			seen[name] = true
			iface.Imports = append(iface.Imports, name)
		}
	}

	body.WriteString("};\n")
	iface.Body = body.String()
	return iface
}

// String renders the field as an indented member line
func (f Field) String() string {
	marker := ""
	if f.Optional {
		marker = "?"
	}
	return "  " + f.Name + marker + ": " + f.Type + ";\n"
}
