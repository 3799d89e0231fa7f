// Package outline parses YAML outline documents into trees.
package outline

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/junior176/animated-tree-view/pkg/tree"
)

// Entry is one node of a YAML outline. A missing key is generated; meta is
// passed through to the node untouched.
type Entry struct {
	Key      string         `yaml:"key,omitempty"`
	Meta     map[string]any `yaml:"meta,omitempty"`
	Children []Entry        `yaml:"children,omitempty"`
}

// Parse builds a tree from YAML outline data. The document's top entry
// becomes the root: with no key it carries the reserved root key,
// otherwise it is a parentless node under the given key.
func Parse(data []byte) (*tree.IndexedNode, error) {
	var top Entry
	if err := yaml.Unmarshal(data, &top); err != nil {
		return nil, fmt.Errorf("failed to parse outline: %w", err)
	}

	root := tree.NewRoot()
	if top.Key != "" {
		named, err := tree.New(top.Key)
		if err != nil {
			return nil, err
		}
		root = named
	}
	if len(top.Meta) > 0 {
		root.SetMeta(top.Meta)
	}
	if err := attach(root, top.Children); err != nil {
		return nil, err
	}
	return root, nil
}

func attach(parent *tree.IndexedNode, entries []Entry) error {
	for _, entry := range entries {
		child, err := tree.New(entry.Key)
		if err != nil {
			return err
		}
		if len(entry.Meta) > 0 {
			child.SetMeta(entry.Meta)
		}
		if err := attach(child, entry.Children); err != nil {
			return err
		}
		parent.Add(child)
	}
	return nil
}

// Count returns the number of nodes in the subtree rooted at n, including
// n itself.
func Count(n *tree.IndexedNode) int {
	total := 1
	for _, child := range n.Children() {
		total += Count(child)
	}
	return total
}
