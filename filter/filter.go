// Package filter decides which model identifiers take part in generation.
//
// Patterns are shell-style globs matched against whole identifiers such as
// api::vehicle.vehicle or component::fleet.service-record.
package filter

import (
	"strings"

	"github.com/bmatcuk/doublestar"
	"github.com/teranos/gentypes/schema"
)

// Spec holds include and exclude glob patterns
type Spec struct {
	Include []string `json:"include"`
	Exclude []string `json:"exclude"`
}

// coreIdentifiers are always visible to include filters
var coreIdentifiers = map[string]bool{
	schema.CoreUserID: true,
	schema.CoreRoleID: true,
}

// IsCore reports whether id belongs to the built-in core set
func IsCore(id string) bool {
	return coreIdentifiers[id]
}

// Normalize turns a config value into a pattern list.
// Accepts nil, a string, []string or []interface{}; blank entries are dropped.
func Normalize(value interface{}) []string {
	var raw []string
	switch v := value.(type) {
	case nil:
		return []string{}
	case string:
		raw = []string{v}
	case []string:
		raw = v
	case []interface{}:
		for _, item := range v {
			if s, ok := item.(string); ok {
				raw = append(raw, s)
			}
		}
	default:
		return []string{}
	}

	patterns := make([]string, 0, len(raw))
	for _, p := range raw {
		if p = strings.TrimSpace(p); p != "" {
			patterns = append(patterns, p)
		}
	}
	return patterns
}

// IsEmpty reports whether no pattern is set, so everything passes
func (s Spec) IsEmpty() bool {
	return len(s.Include) == 0 && len(s.Exclude) == 0
}

// Allows reports whether id passes the include and exclude patterns
func (s Spec) Allows(id string) bool {
	return Matches(id, s.Include, s.Exclude)
}

// Matches evaluates include and exclude patterns against id.
// Core identifiers ignore include patterns but still honour exclude patterns.
func Matches(id string, include, exclude []string) bool {
	if IsCore(id) {
		return !matchesAny(id, exclude)
	}
	if len(include) > 0 && !matchesAny(id, include) {
		return false
	}
	return !matchesAny(id, exclude)
}

func matchesAny(id string, patterns []string) bool {
	for _, pattern := range patterns {
		if match(pattern, id) {
			return true
		}
	}
	return false
}

// match never reports a malformed pattern as a match
func match(pattern, id string) bool {
	ok, err := doublestar.Match(pattern, id)
	return err == nil && ok
}
