package resume

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrBadPath indicates an update path whose intermediate components do not
// resolve to existing objects. Apply never creates missing containers.
var ErrBadPath = errors.New("update path does not resolve")

// ErrBadValue indicates a replacement value that does not fit the field it
// targets.
var ErrBadValue = errors.New("update value does not fit target field")

// Apply returns a copy of doc with the value at path replaced. The input
// document is never mutated; every ancestor container along the path is
// rebuilt. Paths address scalar fields ("fullName"), nested fields
// ("contact", "email") and whole-array replacements ("skills"). Array
// elements are edited by replacing the full array, matching the form
// contract.
func Apply(doc Document, path []string, value any) (Document, error) {
	if len(path) == 0 {
		return Document{}, fmt.Errorf("%w: empty path", ErrBadPath)
	}

	// The skills editor submits a comma-separated line; accept it as the
	// whole-array form.
	if len(path) == 1 && path[0] == "skills" {
		if raw, ok := value.(string); ok {
			value = SplitSkills(raw)
		}
	}

	tree, err := toTree(doc)
	if err != nil {
		return Document{}, err
	}

	node := tree
	for _, field := range path[:len(path)-1] {
		child, ok := node[field]
		if !ok {
			return Document{}, fmt.Errorf("%w: missing %q in %s", ErrBadPath, field, strings.Join(path, "."))
		}
		obj, ok := child.(map[string]any)
		if !ok {
			return Document{}, fmt.Errorf("%w: %q is not an object in %s", ErrBadPath, field, strings.Join(path, "."))
		}
		node = obj
	}
	node[path[len(path)-1]] = value

	return fromTree(tree)
}

func toTree(doc Document) (map[string]any, error) {
	raw, err := json.Marshal(doc.Normalized())
	if err != nil {
		return nil, err
	}
	var tree map[string]any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil, err
	}
	return tree, nil
}

func fromTree(tree map[string]any) (Document, error) {
	raw, err := json.Marshal(tree)
	if err != nil {
		return Document{}, err
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrBadValue, err)
	}
	return doc.Normalized(), nil
}
