package tree

import (
	"slices"
	"strings"

	"github.com/nats-io/nuid"
)

const (
	// RootKey is the reserved key identifying the root of a tree.
	RootKey = "/"
	// PathSeparator joins node keys into a path. User-supplied keys must
	// not contain it.
	PathSeparator = "."
)

// Node is the capability set every tree node supports, independent of how
// its children are stored.
type Node interface {
	// Key returns the node identifier, unique among its siblings and
	// immutable after construction.
	Key() string
	// Parent returns the node that owns this one, or nil for a root.
	Parent() Node
	// SetParent rewires the parent back-reference. The attach operations
	// call it; callers rarely need to.
	SetParent(Node)
	// Root returns the ascendant with no parent. A node with no parent is
	// its own root.
	Root() Node
	// Path returns the separator-joined keys from the root down to this
	// node. A parentless ancestor's key is omitted, so a path resolves
	// from the root with ElementAt as-is.
	Path() string
	// IsRoot reports whether the node has no parent.
	IsRoot() bool
	// Meta returns caller-attached data. The tree never reads or writes
	// entries in it.
	Meta() map[string]any
	// SetMeta replaces the caller-attached data.
	SetMeta(map[string]any)
}

// NodeBase implements the Node contract and is embedded by concrete node
// types. The self reference lets shared methods return the outermost type,
// so embedding types must set it at construction.
type NodeBase struct {
	key    string
	parent Node
	meta   map[string]any
	self   Node
}

// newNodeBase validates key and builds the shared node state. An empty key
// is replaced with a generated identifier that is unique for the lifetime
// of the process, so nodes stay unambiguous even after reparenting.
func newNodeBase(key string) (NodeBase, error) {
	if key == "" {
		key = nuid.Next()
	} else if strings.Contains(key, PathSeparator) {
		return NodeBase{}, &ValidationError{Key: key}
	}
	return NodeBase{key: key}, nil
}

func (n *NodeBase) setSelf(self Node) {
	n.self = self
}

// Key returns the node identifier.
func (n *NodeBase) Key() string {
	return n.key
}

// Parent returns the owning parent, or nil for a root.
func (n *NodeBase) Parent() Node {
	return n.parent
}

// SetParent rewires the parent back-reference.
func (n *NodeBase) SetParent(parent Node) {
	n.parent = parent
}

// IsRoot reports whether the node has no parent.
func (n *NodeBase) IsRoot() bool {
	return n.parent == nil
}

// Root walks parent references upward until a parentless node is found.
func (n *NodeBase) Root() Node {
	node := n.self
	for node.Parent() != nil {
		node = node.Parent()
	}
	return node
}

// Path returns the separator-joined keys from the root down to this node.
// The parentless ancestor contributes no segment; a root's own path is
// just its key.
func (n *NodeBase) Path() string {
	if n.parent == nil {
		return n.key
	}
	segments := []string{n.key}
	for p := n.parent; p != nil && p.Parent() != nil; p = p.Parent() {
		segments = append(segments, p.Key())
	}
	slices.Reverse(segments)
	return JoinPath(segments...)
}

// Meta returns the caller-attached data, or nil if none was set.
func (n *NodeBase) Meta() map[string]any {
	return n.meta
}

// SetMeta replaces the caller-attached data.
func (n *NodeBase) SetMeta(meta map[string]any) {
	n.meta = meta
}
