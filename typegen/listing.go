package typegen

import (
	"bytes"
	"encoding/json"

	"github.com/teranos/gentypes/filter"
	"github.com/teranos/gentypes/schema"
	"github.com/teranos/gentypes/typegen/typescript"
)

// InterfaceMap maps interface names to declaration bodies, keeping insertion order.
// Setting an existing key replaces its body in place.
type InterfaceMap struct {
	keys   []string
	values map[string]string
}

// NewInterfaceMap creates an empty map
func NewInterfaceMap() *InterfaceMap {
	return &InterfaceMap{values: make(map[string]string)}
}

// Set stores body under name
func (m *InterfaceMap) Set(name, body string) {
	if _, ok := m.values[name]; !ok {
		m.keys = append(m.keys, name)
	}
	m.values[name] = body
}

// Get returns the body stored under name
func (m *InterfaceMap) Get(name string) (string, bool) {
	body, ok := m.values[name]
	return body, ok
}

// Keys returns names in insertion order
func (m *InterfaceMap) Keys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Len returns the number of entries
func (m *InterfaceMap) Len() int {
	return len(m.keys)
}

// MarshalJSON renders a JSON object in insertion order
func (m *InterfaceMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(m.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// InterfaceStrings builds every interface without writing anything.
// Components are keyed by category, so several components in one category
// collapse to the last one read. Content types follow, then the built-ins.
func (g *Generator) InterfaceStrings(spec filter.Spec) (*InterfaceMap, error) {
	components, err := g.buildModels(g.componentsDir, true, spec, true)
	if err != nil {
		return nil, err
	}
	contentTypes, err := g.buildModels(g.apiDir, false, spec, true)
	if err != nil {
		return nil, err
	}

	out := NewInterfaceMap()
	for _, m := range append(components, contentTypes...) {
		out.Set(m.iface.Name, m.iface.Body)
	}
	for _, b := range typescript.Builtins(typescript.Extensions{}) {
		out.Set(b.ListingName, b.Body)
	}
	return out, nil
}

// Counts are model totals after filtering
type Counts struct {
	API       int `json:"apiTypes"`
	Component int `json:"componentTypes"`
	Total     int `json:"totalTypes"`
}

// Count tallies models that pass spec. Only discovery and identity are used; schemas are not parsed.
func (g *Generator) Count(spec filter.Spec) (Counts, error) {
	var counts Counts

	apiPaths, err := schema.Discover(g.apiDir)
	if err != nil {
		return counts, err
	}
	for _, path := range apiPaths {
		if spec.Allows(schema.ContentTypeIdentity(path).ID) {
			counts.API++
		}
	}

	componentPaths, err := schema.Discover(g.componentsDir)
	if err != nil {
		return counts, err
	}
	for _, path := range componentPaths {
		if spec.Allows(schema.ComponentIdentity(path).ID) {
			counts.Component++
		}
	}

	counts.Total = counts.API + counts.Component
	return counts, nil
}
