// Package schema discovers and parses content-model schema documents.
//
// Two roots are scanned: content types (one schema.json per model directory)
// and components (one <name>.json per category directory). Documents are
// JSON; only the ordered `attributes` mapping is interpreted.
package schema

// Attribute kinds as they appear in schema documents
const (
	KindString      = "string"
	KindText        = "text"
	KindEmail       = "email"
	KindPassword    = "password"
	KindRichText    = "richtext"
	KindUID         = "uid"
	KindNumber      = "number"
	KindInteger     = "integer"
	KindBigInteger  = "biginteger"
	KindFloat       = "float"
	KindDecimal     = "decimal"
	KindBoolean     = "boolean"
	KindDate        = "date"
	KindDateTime    = "datetime"
	KindTime        = "time"
	KindJSON        = "json"
	KindEnumeration = "enumeration"
	KindMedia       = "media"
	KindComponent   = "component"
	KindRelation    = "relation"
)

// Relation kinds
const (
	OneToOne   = "oneToOne"
	OneToMany  = "oneToMany"
	ManyToOne  = "manyToOne"
	ManyToMany = "manyToMany"
)

// Attribute is one field definition inside a schema document.
// Keys not modelled here (pluginOptions, min, max, ...) are ignored.
type Attribute struct {
	Type       string      `json:"type"`
	Required   bool        `json:"required,omitempty"`
	Default    interface{} `json:"default,omitempty"`
	Enum       []string    `json:"enum,omitempty"`
	Multiple   bool        `json:"multiple,omitempty"`
	Repeatable bool        `json:"repeatable,omitempty"`
	Relation   string      `json:"relation,omitempty"`
	Target     string      `json:"target,omitempty"`
	MappedBy   string      `json:"mappedBy,omitempty"`
	InversedBy string      `json:"inversedBy,omitempty"`
	Component  string      `json:"component,omitempty"`
}

// IsCollection reports whether a relation holds many targets
func (a Attribute) IsCollection() bool {
	return a.Relation == OneToMany || a.Relation == ManyToMany
}

// NamedAttribute pairs an attribute with its field name
type NamedAttribute struct {
	Name string
	Attribute
}

// File is a located, parsed schema document
type File struct {
	// Path is absolute
	Path string
	// Attributes in declaration order
	Attributes []NamedAttribute
	// IsComponent is true when the file came from the components root
	IsComponent bool
}

// Identity returns the identity derived from the file's location
func (f *File) Identity() Identity {
	if f.IsComponent {
		return ComponentIdentity(f.Path)
	}
	return ContentTypeIdentity(f.Path)
}
