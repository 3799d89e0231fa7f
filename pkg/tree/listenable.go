package tree

// EventKind identifies the structural mutation a listener is notified
// about.
type EventKind int

const (
	// EventAdd reports children appended with Add or AddAll.
	EventAdd EventKind = iota
	// EventInsert reports children placed at a position.
	EventInsert
	// EventRemove reports children detached from the sequence.
	EventRemove
	// EventClear reports the children sequence being emptied at once.
	EventClear
)

func (k EventKind) String() string {
	switch k {
	case EventAdd:
		return "add"
	case EventInsert:
		return "insert"
	case EventRemove:
		return "remove"
	case EventClear:
		return "clear"
	default:
		return "unknown"
	}
}

// Event describes a committed structural mutation on a ListenableNode.
type Event struct {
	// Kind categorizes the mutation.
	Kind EventKind
	// Nodes are the children the mutation added, inserted, or removed.
	Nodes []*IndexedNode
	// Index is the position of the first affected child, or -1 when the
	// mutation was not positional (Add, AddAll, Clear).
	Index int
}

// ListenableNode is an IndexedNode that notifies registered listeners
// after each structural mutation commits. Failed mutations emit nothing,
// and only mutations invoked on this node are observed; mutations on
// descendants are their own concern.
//
// Replacement accessors (SetFirst, SetLast) emit a remove event for the
// displaced child followed by an insert event for its replacement.
type ListenableNode struct {
	IndexedNode
	listeners      map[int]func(Event)
	nextListenerID int
}

// NewListenable constructs a standalone listenable node. Key handling
// matches New.
func NewListenable(key string) (*ListenableNode, error) {
	base, err := newNodeBase(key)
	if err != nil {
		return nil, err
	}
	n := &ListenableNode{
		IndexedNode: IndexedNode{NodeBase: base},
		listeners:   make(map[int]func(Event)),
	}
	n.setSelf(n)
	return n, nil
}

// NewListenableRoot constructs a listenable node carrying the reserved
// root key and no parent.
func NewListenableRoot() *ListenableNode {
	n := &ListenableNode{
		IndexedNode: IndexedNode{NodeBase: NodeBase{key: RootKey}},
		listeners:   make(map[int]func(Event)),
	}
	n.setSelf(n)
	return n
}

// AddListener registers fn to receive mutation events and returns an
// unsubscribe function.
func (n *ListenableNode) AddListener(fn func(Event)) func() {
	id := n.nextListenerID
	n.nextListenerID++
	n.listeners[id] = fn
	return func() {
		delete(n.listeners, id)
	}
}

func (n *ListenableNode) notify(ev Event) {
	for _, fn := range n.listeners {
		fn(ev)
	}
}

// Add appends child and notifies listeners.
func (n *ListenableNode) Add(child *IndexedNode) {
	n.IndexedNode.Add(child)
	n.notify(Event{Kind: EventAdd, Nodes: []*IndexedNode{child}, Index: -1})
}

// AddAll appends every child in order and notifies listeners once.
func (n *ListenableNode) AddAll(children ...*IndexedNode) {
	n.IndexedNode.AddAll(children...)
	if len(children) > 0 {
		n.notify(Event{Kind: EventAdd, Nodes: children, Index: -1})
	}
}

// Insert places child at index and notifies listeners.
func (n *ListenableNode) Insert(index int, child *IndexedNode) error {
	if err := n.IndexedNode.Insert(index, child); err != nil {
		return err
	}
	n.notify(Event{Kind: EventInsert, Nodes: []*IndexedNode{child}, Index: index})
	return nil
}

// InsertAfter places child after the sibling matching after's key,
// notifying listeners through Insert.
func (n *ListenableNode) InsertAfter(after Node, child *IndexedNode) (int, error) {
	i := n.IndexOf(after)
	if i < 0 {
		return -1, &NodeNotFoundError{Op: "tree.InsertAfter", Key: after.Key(), Parent: n.Key()}
	}
	if err := n.Insert(i+1, child); err != nil {
		return -1, err
	}
	return i + 1, nil
}

// InsertBefore places child before the sibling matching before's key,
// notifying listeners through Insert.
func (n *ListenableNode) InsertBefore(before Node, child *IndexedNode) (int, error) {
	i := n.IndexOf(before)
	if i < 0 {
		return -1, &NodeNotFoundError{Op: "tree.InsertBefore", Key: before.Key(), Parent: n.Key()}
	}
	if err := n.Insert(i, child); err != nil {
		return -1, err
	}
	return i, nil
}

// InsertAll places children contiguously starting at index and notifies
// listeners once.
func (n *ListenableNode) InsertAll(index int, children ...*IndexedNode) error {
	if err := n.IndexedNode.InsertAll(index, children...); err != nil {
		return err
	}
	if len(children) > 0 {
		n.notify(Event{Kind: EventInsert, Nodes: children, Index: index})
	}
	return nil
}

// SetFirst replaces the child at position 0, emitting a remove event for
// the displaced child and an insert event for the replacement.
func (n *ListenableNode) SetFirst(child *IndexedNode) error {
	return n.replaceAt(0, child, "tree.SetFirst")
}

// SetLast replaces the child at the final position, emitting a remove
// event for the displaced child and an insert event for the replacement.
func (n *ListenableNode) SetLast(child *IndexedNode) error {
	return n.replaceAt(len(n.children)-1, child, "tree.SetLast")
}

func (n *ListenableNode) replaceAt(index int, child *IndexedNode, op string) error {
	if len(n.children) == 0 {
		return &ChildrenNotFoundError{Op: op, Key: n.Key()}
	}
	displaced := n.children[index]
	child.SetParent(n.self)
	n.children[index] = child
	n.notify(Event{Kind: EventRemove, Nodes: []*IndexedNode{displaced}, Index: index})
	n.notify(Event{Kind: EventInsert, Nodes: []*IndexedNode{child}, Index: index})
	return nil
}

// Delete detaches n from its parent, or clears a root in place. The clear
// path notifies this node's listeners; the detach path is the parent's
// mutation and notifies the parent's listeners, if any.
func (n *ListenableNode) Delete() error {
	if n.Parent() == nil {
		n.Clear()
		return nil
	}
	return n.IndexedNode.Delete()
}

// Remove detaches the direct child whose key equals child's key and
// notifies listeners.
func (n *ListenableNode) Remove(child Node) error {
	i := n.IndexOf(child)
	if i < 0 {
		return &NodeNotFoundError{Op: "tree.Remove", Key: child.Key(), Parent: n.Key()}
	}
	_, err := n.RemoveAt(i)
	return err
}

// RemoveAt removes and returns the child at index, notifying listeners.
func (n *ListenableNode) RemoveAt(index int) (*IndexedNode, error) {
	child, err := n.IndexedNode.RemoveAt(index)
	if err != nil {
		return nil, err
	}
	n.notify(Event{Kind: EventRemove, Nodes: []*IndexedNode{child}, Index: index})
	return child, nil
}

// RemoveAll removes each given node in turn with the same
// non-transactional contract as IndexedNode.RemoveAll, notifying listeners
// per removal.
func (n *ListenableNode) RemoveAll(children ...*IndexedNode) (int, error) {
	for i, child := range children {
		if err := n.Remove(child); err != nil {
			return i, err
		}
	}
	return len(children), nil
}

// RemoveWhere removes every direct child matching pred and notifies
// listeners once with all removed nodes. No event is emitted when nothing
// matched.
func (n *ListenableNode) RemoveWhere(pred func(*IndexedNode) bool) int {
	var removed []*IndexedNode
	kept := n.children[:0]
	for _, child := range n.children {
		if pred(child) {
			removed = append(removed, child)
			continue
		}
		kept = append(kept, child)
	}
	for i := len(kept); i < len(n.children); i++ {
		n.children[i] = nil
	}
	n.children = kept
	if len(removed) > 0 {
		n.notify(Event{Kind: EventRemove, Nodes: removed, Index: -1})
	}
	return len(removed)
}

// Clear empties the children sequence and notifies listeners with the
// removed nodes. An already-empty node emits nothing.
func (n *ListenableNode) Clear() {
	if len(n.children) == 0 {
		return
	}
	removed := n.children
	n.children = nil
	n.notify(Event{Kind: EventClear, Nodes: removed, Index: -1})
}
