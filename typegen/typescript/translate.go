package typescript

import (
	"strings"

	"github.com/teranos/gentypes/filter"
	"github.com/teranos/gentypes/schema"
)

// Type expressions that do not depend on schema content
const (
	TypeAny      = "any"
	TypeString   = "string"
	TypeNumber   = "number"
	TypeBoolean  = "boolean"
	TypeTemporal = "Date | string"
	TypeJSON     = "Record<string, any>"
	MediaName    = "Media"
)

// TypeFor maps one attribute to a TypeScript type expression.
// References to filtered-out models degrade to any.
func TypeFor(attr schema.Attribute, spec filter.Spec) string {
	switch attr.Type {
	case schema.KindString, schema.KindText, schema.KindEmail,
		schema.KindPassword, schema.KindRichText, schema.KindUID:
		return TypeString
	case schema.KindNumber, schema.KindInteger, schema.KindBigInteger,
		schema.KindFloat, schema.KindDecimal:
		return TypeNumber
	case schema.KindBoolean:
		return TypeBoolean
	case schema.KindDate, schema.KindDateTime, schema.KindTime:
		return TypeTemporal
	case schema.KindJSON:
		return TypeJSON
	case schema.KindEnumeration:
		return enumType(attr.Enum)
	case schema.KindMedia:
		return nullable(MediaName, attr.Multiple)
	case schema.KindComponent, schema.KindRelation:
		name, ok := resolveReference(attr, spec)
		if !ok {
			return TypeAny
		}
		collection := attr.Repeatable
		if attr.Type == schema.KindRelation {
			collection = attr.IsCollection()
		}
		return nullable(name, collection)
	default:
		return TypeAny
	}
}

// resolveReference returns the interface name an attribute points at and
// whether the reference survives filtering. Both field types and import
// lists go through here so they cannot disagree.
func resolveReference(attr schema.Attribute, spec filter.Spec) (string, bool) {
	switch attr.Type {
	case schema.KindRelation:
		if attr.Target == "" || !spec.Allows(attr.Target) {
			return "", false
		}
		return schema.DisplayNameFromTarget(attr.Target), true
	case schema.KindComponent:
		if attr.Component == "" || !spec.Allows(schema.ComponentID(attr.Component)) {
			return "", false
		}
		return schema.ComponentDisplayName(attr.Component), true
	case schema.KindMedia:
		return MediaName, true
	default:
		return "", false
	}
}

func enumType(values []string) string {
	if len(values) == 0 {
		return TypeString
	}
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = `"` + v + `"`
	}
	return strings.Join(quoted, " | ")
}

func nullable(name string, collection bool) string {
	if collection {
		return name + "[] | null"
	}
	return name + " | null"
}
