// Package tree provides the mutable, ordered, keyed tree that backs a
// tree-view UI.
//
// Every node carries a key unique among its siblings and a back-reference
// to its parent. A node's address is its path: the keys from the root down
// to the node, joined by PathSeparator. Rendering, animation, and event
// handling live in collaborator layers; this package is only the
// structural data model they observe and mutate.
//
// # Node Types
//
// IndexedNode stores its children as an ordered sequence and adds
// positional operations (At, First, Last, Insert, RemoveAt) on top of the
// keyed ones (Add, Remove, InsertAfter, ElementAt).
//
// ListenableNode wraps the same operations and notifies registered
// listeners after each structural mutation commits, for collaborators that
// re-render on change:
//
//	root := tree.NewListenableRoot()
//	unsub := root.AddListener(func(ev tree.Event) {
//	    // schedule a re-render
//	})
//	defer unsub()
//
// # Ownership
//
// A parent exclusively owns its children sequence; a child's parent
// reference is a non-owning back-reference maintained by the mutation
// methods. Attach operations do not detach a node from a previous parent,
// and detach operations do not clear the removed node's parent reference.
// Both edges are documented on the methods and are the caller's concern
// when nodes move between trees.
//
// # Concurrency
//
// The tree is not synchronized. All operations are synchronous and
// complete before returning; concurrent mutation must be serialized by the
// caller.
package tree
