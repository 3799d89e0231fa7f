package tree

import "slices"

// IndexedNode is a tree node whose children are stored as an ordered
// sequence. Insertion order is the authoritative traversal order; nothing
// ever reorders children implicitly.
type IndexedNode struct {
	NodeBase
	children []*IndexedNode
}

// New constructs a standalone node with no parent and no children. An
// empty key is replaced with a generated process-unique identifier; a key
// containing PathSeparator fails with *ValidationError.
func New(key string) (*IndexedNode, error) {
	base, err := newNodeBase(key)
	if err != nil {
		return nil, err
	}
	n := &IndexedNode{NodeBase: base}
	n.setSelf(n)
	return n, nil
}

// NewRoot constructs a node carrying the reserved root key and no parent.
func NewRoot() *IndexedNode {
	n := &IndexedNode{NodeBase: NodeBase{key: RootKey}}
	n.setSelf(n)
	return n
}

// Len returns the number of direct children.
func (n *IndexedNode) Len() int {
	return len(n.children)
}

// Children returns a copy of the ordered children sequence. The children
// themselves are shared; the slice is not, so callers cannot mutate the
// node's storage through it.
func (n *IndexedNode) Children() []*IndexedNode {
	return slices.Clone(n.children)
}

// At returns the child at index.
func (n *IndexedNode) At(index int) (*IndexedNode, error) {
	if index < 0 || index >= len(n.children) {
		return nil, &OutOfRangeError{Op: "tree.At", Index: index, Len: len(n.children)}
	}
	return n.children[index], nil
}

// First returns the child at position 0, or *ChildrenNotFoundError when
// the node has no children.
func (n *IndexedNode) First() (*IndexedNode, error) {
	if len(n.children) == 0 {
		return nil, &ChildrenNotFoundError{Op: "tree.First", Key: n.key}
	}
	return n.children[0], nil
}

// SetFirst replaces the child at position 0 and rewires the replacement's
// parent reference. There is no position to replace on an empty sequence,
// so it fails with *ChildrenNotFoundError.
func (n *IndexedNode) SetFirst(child *IndexedNode) error {
	if len(n.children) == 0 {
		return &ChildrenNotFoundError{Op: "tree.SetFirst", Key: n.key}
	}
	child.SetParent(n.self)
	n.children[0] = child
	return nil
}

// Last returns the child at the final position, or *ChildrenNotFoundError
// when the node has no children.
func (n *IndexedNode) Last() (*IndexedNode, error) {
	if len(n.children) == 0 {
		return nil, &ChildrenNotFoundError{Op: "tree.Last", Key: n.key}
	}
	return n.children[len(n.children)-1], nil
}

// SetLast replaces the child at the final position and rewires the
// replacement's parent reference. Fails with *ChildrenNotFoundError on an
// empty sequence.
func (n *IndexedNode) SetLast(child *IndexedNode) error {
	if len(n.children) == 0 {
		return &ChildrenNotFoundError{Op: "tree.SetLast", Key: n.key}
	}
	child.SetParent(n.self)
	n.children[len(n.children)-1] = child
	return nil
}

// FirstWhere returns the first direct child matching pred. If none
// matches, orElse supplies the result; with a nil orElse the lookup fails
// with *NodeNotFoundError. Only direct children are scanned, not the
// whole subtree.
func (n *IndexedNode) FirstWhere(pred func(*IndexedNode) bool, orElse func() *IndexedNode) (*IndexedNode, error) {
	if i := n.IndexWhere(pred, 0); i >= 0 {
		return n.children[i], nil
	}
	if orElse != nil {
		return orElse(), nil
	}
	return nil, &NodeNotFoundError{Op: "tree.FirstWhere", Parent: n.key}
}

// LastWhere is FirstWhere scanning from the end of the sequence.
func (n *IndexedNode) LastWhere(pred func(*IndexedNode) bool, orElse func() *IndexedNode) (*IndexedNode, error) {
	for i := len(n.children) - 1; i >= 0; i-- {
		if pred(n.children[i]) {
			return n.children[i], nil
		}
	}
	if orElse != nil {
		return orElse(), nil
	}
	return nil, &NodeNotFoundError{Op: "tree.LastWhere", Parent: n.key}
}

// IndexWhere returns the index of the first child at or after start
// matching pred, or -1 if none matches. A negative start scans from 0.
func (n *IndexedNode) IndexWhere(pred func(*IndexedNode) bool, start int) int {
	if start < 0 {
		start = 0
	}
	for i := start; i < len(n.children); i++ {
		if pred(n.children[i]) {
			return i
		}
	}
	return -1
}

// IndexOf returns the position of the first direct child whose key equals
// child's key, or -1. Key equality, not identity, is the match criterion;
// if siblings ever share a key the first match wins.
func (n *IndexedNode) IndexOf(child Node) int {
	key := child.Key()
	return n.IndexWhere(func(c *IndexedNode) bool { return c.key == key }, 0)
}

// Add appends child and rewires its parent reference.
//
// Add does not check for a duplicate key among siblings and does not
// detach child from a previous parent; a node added while still attached
// elsewhere leaves the old parent's children stale until the caller
// removes it there.
func (n *IndexedNode) Add(child *IndexedNode) {
	child.SetParent(n.self)
	n.children = append(n.children, child)
}

// AddAll appends every child in order, rewiring each parent reference.
func (n *IndexedNode) AddAll(children ...*IndexedNode) {
	for _, child := range children {
		child.SetParent(n.self)
	}
	n.children = append(n.children, children...)
}

// Insert places child at index, shifting later siblings right. Index
// Len() appends; anything outside [0, Len()] fails with *OutOfRangeError.
func (n *IndexedNode) Insert(index int, child *IndexedNode) error {
	if index < 0 || index > len(n.children) {
		return &OutOfRangeError{Op: "tree.Insert", Index: index, Len: len(n.children)}
	}
	child.SetParent(n.self)
	n.children = slices.Insert(n.children, index, child)
	return nil
}

// InsertAfter places child directly after the sibling whose key equals
// after's key and returns the index child ended up at. Fails with
// *NodeNotFoundError when no sibling matches.
func (n *IndexedNode) InsertAfter(after Node, child *IndexedNode) (int, error) {
	i := n.IndexOf(after)
	if i < 0 {
		return -1, &NodeNotFoundError{Op: "tree.InsertAfter", Key: after.Key(), Parent: n.key}
	}
	if err := n.Insert(i+1, child); err != nil {
		return -1, err
	}
	return i + 1, nil
}

// InsertBefore places child directly before the sibling whose key equals
// before's key and returns the index child ended up at. Fails with
// *NodeNotFoundError when no sibling matches.
func (n *IndexedNode) InsertBefore(before Node, child *IndexedNode) (int, error) {
	i := n.IndexOf(before)
	if i < 0 {
		return -1, &NodeNotFoundError{Op: "tree.InsertBefore", Key: before.Key(), Parent: n.key}
	}
	if err := n.Insert(i, child); err != nil {
		return -1, err
	}
	return i, nil
}

// InsertAll places children contiguously starting at index, preserving
// their relative order.
func (n *IndexedNode) InsertAll(index int, children ...*IndexedNode) error {
	if index < 0 || index > len(n.children) {
		return &OutOfRangeError{Op: "tree.InsertAll", Index: index, Len: len(n.children)}
	}
	for _, child := range children {
		child.SetParent(n.self)
	}
	n.children = slices.Insert(n.children, index, children...)
	return nil
}

// Delete detaches n from its parent's children. A root has no parent to
// leave, so it empties its own children instead.
func (n *IndexedNode) Delete() error {
	if parent, ok := n.parent.(interface{ Remove(Node) error }); ok {
		return parent.Remove(n.self)
	}
	n.Clear()
	return nil
}

// Remove detaches the direct child whose key equals child's key.
//
// Only the owning side of the link is cleared: the removed node keeps its
// parent reference until it is reattached elsewhere. This is the
// deliberate asymmetry with Add.
func (n *IndexedNode) Remove(child Node) error {
	i := n.IndexOf(child)
	if i < 0 {
		return &NodeNotFoundError{Op: "tree.Remove", Key: child.Key(), Parent: n.key}
	}
	n.children = slices.Delete(n.children, i, i+1)
	return nil
}

// RemoveAt removes and returns the child at index.
func (n *IndexedNode) RemoveAt(index int) (*IndexedNode, error) {
	if index < 0 || index >= len(n.children) {
		return nil, &OutOfRangeError{Op: "tree.RemoveAt", Index: index, Len: len(n.children)}
	}
	child := n.children[index]
	n.children = slices.Delete(n.children, index, index+1)
	return child, nil
}

// RemoveAll removes each given node in turn. It is not transactional: the
// first node not found stops the batch with *NodeNotFoundError, prior
// removals stay applied, and the returned count says how many succeeded.
func (n *IndexedNode) RemoveAll(children ...*IndexedNode) (int, error) {
	for i, child := range children {
		if err := n.Remove(child); err != nil {
			return i, err
		}
	}
	return len(children), nil
}

// RemoveWhere removes every direct child matching pred in a single pass
// and returns the number removed. Zero matches is a valid outcome, not an
// error.
func (n *IndexedNode) RemoveWhere(pred func(*IndexedNode) bool) int {
	kept := n.children[:0]
	removed := 0
	for _, child := range n.children {
		if pred(child) {
			removed++
			continue
		}
		kept = append(kept, child)
	}
	// Release the tail so removed nodes are not pinned by the backing array.
	for i := len(kept); i < len(n.children); i++ {
		n.children[i] = nil
	}
	n.children = kept
	return removed
}

// Clear empties the children sequence. The removed nodes keep their
// parent references, as with Remove.
func (n *IndexedNode) Clear() {
	n.children = nil
}

// ElementAt resolves a separator-joined key path starting at n, walking
// one keyed lookup per token. A token equal to the current node's own key
// is a no-op, so paths may redundantly restate the start node's key,
// including the reserved root key. A token matching no child fails with
// *NodeNotFoundError carrying the offending key and the full path.
func (n *IndexedNode) ElementAt(path string) (*IndexedNode, error) {
	current := n
	for _, token := range SplitPath(path) {
		if token == current.key {
			continue
		}
		i := current.IndexWhere(func(c *IndexedNode) bool { return c.key == token }, 0)
		if i < 0 {
			return nil, &NodeNotFoundError{Op: "tree.ElementAt", Key: token, Path: path, Parent: current.key}
		}
		current = current.children[i]
	}
	return current, nil
}

// MustElementAt is ElementAt for paths the caller knows are present; a
// failed lookup panics. It is the indexing shorthand over ElementAt.
func (n *IndexedNode) MustElementAt(path string) *IndexedNode {
	node, err := n.ElementAt(path)
	if err != nil {
		panic(err)
	}
	return node
}
