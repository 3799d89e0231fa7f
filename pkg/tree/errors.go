package tree

import "fmt"

// ValidationError reports a node key rejected at construction because it
// contains the reserved path separator.
type ValidationError struct {
	// Key is the rejected key.
	Key string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid node key %q: must not contain %q", e.Key, PathSeparator)
}

// NodeNotFoundError reports a keyed lookup that matched none of a node's
// direct children.
type NodeNotFoundError struct {
	// Op is the operation that failed (e.g., "tree.Remove").
	Op string
	// Key is the searched key. Empty for predicate lookups.
	Key string
	// Path is the full path being resolved, when the lookup came from
	// path resolution.
	Path string
	// Parent is the key of the node whose children were searched.
	Parent string
}

func (e *NodeNotFoundError) Error() string {
	switch {
	case e.Path != "":
		return fmt.Sprintf("%s: no node with key %q in path %q", e.Op, e.Key, e.Path)
	case e.Key == "":
		return fmt.Sprintf("%s: no matching child under %q", e.Op, e.Parent)
	default:
		return fmt.Sprintf("%s: no child with key %q under %q", e.Op, e.Key, e.Parent)
	}
}

// ChildrenNotFoundError reports a positional accessor used on a node whose
// children sequence is empty.
type ChildrenNotFoundError struct {
	// Op is the operation that failed (e.g., "tree.First").
	Op string
	// Key is the key of the childless node.
	Key string
}

func (e *ChildrenNotFoundError) Error() string {
	return fmt.Sprintf("%s: node %q has no children", e.Op, e.Key)
}

// OutOfRangeError reports a positional operation whose index falls outside
// the valid bounds of the children sequence.
type OutOfRangeError struct {
	// Op is the operation that failed (e.g., "tree.At").
	Op string
	// Index is the offending index.
	Index int
	// Len is the length of the children sequence at the time of the call.
	Len int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s: index %d out of range (len %d)", e.Op, e.Index, e.Len)
}
