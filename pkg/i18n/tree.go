package i18n

import (
	"maps"
	"strings"
)

// Tree is a nested translation tree. Leaves are strings; every intermediate
// node is a further mapping. Hierarchical keys like "navbar.title" address
// leaves through dot-separated traversal.
type Tree map[string]any

// Catalog maps a language to its translation tree. The global catalog and the
// page catalog are both of this shape.
type Catalog map[Language]Tree

// Lookup resolves a dot-delimited key against the tree. Nested traversal is
// tried first: one segment at a time, failing as soon as an intermediate
// node is absent, nil, or not a map holding the next segment. When no nested
// path yields a leaf, a flat entry stored under the literal dotted key wins
// instead, so documents mixing "navbar.title" flat keys with nested trees
// resolve both. The nested interpretation takes precedence when both exist.
//
// Only a non-empty string leaf counts as found: an empty-string translation
// at a valid path is indistinguishable from a missing one and falls through
// to the caller's next fallback. That quirk is intentional and load-bearing;
// do not "fix" it.
func (t Tree) Lookup(key string) (string, bool) {
	if t == nil || key == "" {
		return "", false
	}

	if leaf, ok := t.lookupNested(key); ok {
		return leaf, true
	}

	if leaf, ok := t[key].(string); ok && leaf != "" {
		return leaf, true
	}
	return "", false
}

func (t Tree) lookupNested(key string) (string, bool) {
	node := t
	segments := strings.Split(key, ".")
	for i, segment := range segments {
		value, ok := node[segment]
		if !ok || value == nil {
			return "", false
		}

		if i == len(segments)-1 {
			leaf, ok := value.(string)
			if !ok || leaf == "" {
				return "", false
			}
			return leaf, true
		}

		next, ok := asTree(value)
		if !ok {
			return "", false
		}
		node = next
	}

	return "", false
}

// Set stores value at the dot-delimited key, creating intermediate nodes as
// needed. An existing non-tree node on the path is replaced by a fresh
// subtree.
func (t Tree) Set(key, value string) {
	if t == nil || key == "" {
		return
	}

	node := t
	segments := strings.Split(key, ".")
	for _, segment := range segments[:len(segments)-1] {
		next, ok := asTree(node[segment])
		if !ok {
			next = make(Tree)
			node[segment] = next
		}
		node[segment] = next
		node = next
	}
	node[segments[len(segments)-1]] = value
}

// Lookup resolves key against the tree for lang. A nil catalog or missing
// language entry yields not-found.
func (c Catalog) Lookup(lang Language, key string) (string, bool) {
	if c == nil {
		return "", false
	}
	return c[lang].Lookup(key)
}

// withLanguage returns a copy of the catalog with the entry for lang replaced
// by tree. All other languages' entries are preserved untouched.
func (c Catalog) withLanguage(lang Language, tree Tree) Catalog {
	next := make(Catalog, len(c)+1)
	maps.Copy(next, c)
	next[lang] = tree
	return next
}

// asTree normalizes the map shapes decoders produce into a Tree. YAML
// decoders historically emit map[any]any for nested documents.
func asTree(v any) (Tree, bool) {
	switch m := v.(type) {
	case Tree:
		return m, true
	case map[string]any:
		return Tree(m), true
	case map[any]any:
		out := make(Tree, len(m))
		for k, val := range m {
			if ks, ok := k.(string); ok {
				out[ks] = val
			}
		}
		return out, true
	}
	return nil, false
}
