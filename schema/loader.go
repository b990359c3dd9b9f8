package schema

import (
	"bytes"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/buger/jsonparser"
	"github.com/teranos/gentypes/errors"
)

// Discover returns every .json file below root as an absolute path, in lexical walk order.
// A missing root is not an error: it yields an empty list.
func Discover(root string) ([]string, error) {
	if root == "" {
		return nil, nil
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve schema root %s", root)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to stat schema root %s", absRoot)
	}
	if !info.IsDir() {
		return nil, errors.Newf("schema root %s is not a directory", absRoot)
	}

	var paths []string
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), ".json") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to walk schema root %s", absRoot)
	}

	return paths, nil
}

// Parse reads one schema document.
// Attributes keep their declared order; a repeated attribute name keeps its first
// position and takes the last value, as a JSON object decode would.
func Parse(path string, isComponent bool) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read schema %s", path)
	}

	file, err := parseDocument(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse schema %s", path)
	}

	file.Path = path
	file.IsComponent = isComponent
	return file, nil
}

func parseDocument(data []byte) (*File, error) {
	file := &File{}

	// Empty document
	if len(bytes.TrimSpace(data)) == 0 {
		return file, nil
	}

	// Full decode validates the document and requires an object at the top level
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, err
	}

	raw, ok := top["attributes"]
	if !ok {
		return file, nil
	}

	attrs, dataType, _, err := jsonparser.Get(raw)
	if err != nil {
		return nil, errors.Wrap(err, "attributes")
	}
	switch dataType {
	case jsonparser.Null:
		return file, nil
	case jsonparser.Object:
	default:
		return nil, errors.Newf("attributes must be an object, got %s", dataType)
	}

	index := make(map[string]int)
	err = jsonparser.ObjectEach(attrs, func(key, value []byte, valueType jsonparser.ValueType, _ int) error {
		name, err := jsonparser.ParseString(key)
		if err != nil {
			return errors.Wrapf(err, "attribute name %s", key)
		}
		if valueType != jsonparser.Object {
			return errors.Newf("attribute %q must be an object, got %s", name, valueType)
		}

		var attr Attribute
		if err := json.Unmarshal(value, &attr); err != nil {
			return errors.Wrapf(err, "attribute %q", name)
		}

		if i, seen := index[name]; seen {
			file.Attributes[i].Attribute = attr
			return nil
		}
		index[name] = len(file.Attributes)
		file.Attributes = append(file.Attributes, NamedAttribute{Name: name, Attribute: attr})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return file, nil
}

// LoadAll discovers and parses every schema under root.
// Parsing stops at the first malformed document.
func LoadAll(root string, isComponent bool) ([]*File, error) {
	paths, err := Discover(root)
	if err != nil {
		return nil, err
	}

	files := make([]*File, 0, len(paths))
	for _, path := range paths {
		file, err := Parse(path, isComponent)
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}
	return files, nil
}
