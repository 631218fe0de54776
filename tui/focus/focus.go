// Package focus tracks which node in a component tree has keyboard focus
// and the active index within each node's ordered children. Movement wraps
// at both ends; every transition lands on a valid node or is a no-op.
package focus

import "github.com/lemterm/lemterm/tui/reactive"

// Direction of a selection move within the focused node's children.
type Direction int

const (
	Next Direction = iota
	Previous
)

// Node is one focusable container. Children are ordered; the active child
// index lives in a reactive cell so dependents can observe selection moves.
type Node struct {
	id       string
	parent   *Node
	children []*Node
	sel      *reactive.Cell[int]
}

// NewNode creates a node with the given children attached in order.
func NewNode(id string, children ...*Node) *Node {
	n := &Node{id: id, sel: reactive.New(0)}
	for _, c := range children {
		n.Append(c)
	}
	return n
}

// ID returns the node's identifier.
func (n *Node) ID() string { return n.id }

// Append attaches a child at the end of the ordered list.
func (n *Node) Append(c *Node) {
	c.parent = n
	n.children = append(n.children, c)
}

// SetChildren replaces the child list wholesale and resets the selection
// to the first item. Used when a container's contents are rebuilt, e.g.
// after a new search installs a fresh post list.
func (n *Node) SetChildren(children ...*Node) {
	for _, c := range children {
		c.parent = n
	}
	n.children = children
	n.sel.Set(0)
}

// Len returns the number of children.
func (n *Node) Len() int { return len(n.children) }

// Selection returns the active child index. Meaningless when Len() == 0.
func (n *Node) Selection() int { return n.sel.Get() }

// OnSelectionChange registers an observer on the selection index.
func (n *Node) OnSelectionChange(fn reactive.Observer[int]) {
	n.sel.OnChange(fn)
}

// ActiveChild returns the child at the selection index, or nil when empty.
func (n *Node) ActiveChild() *Node {
	if len(n.children) == 0 {
		return nil
	}
	i := n.sel.Get()
	if i < 0 || i >= len(n.children) {
		i = 0
	}
	return n.children[i]
}

// Tree holds the single focused node. At most one path from root to a leaf
// is focused at any time.
type Tree struct {
	root    *Node
	focused *Node
}

// NewTree creates a tree focused on root.
func NewTree(root *Node) *Tree {
	return &Tree{root: root, focused: root}
}

// Focused returns the node currently holding focus.
func (t *Tree) Focused() *Node { return t.focused }

// Focus moves focus directly to n. No-op if n is nil.
func (t *Tree) Focus(n *Node) {
	if n == nil {
		return
	}
	t.focused = n
}

// Move shifts the focused node's selection by one, wrapping at both ends.
// No-op when the focused node has no children. Reports whether the index
// moved (a single-item list wraps onto itself, which counts as no move).
func (t *Tree) Move(d Direction) bool {
	n := t.focused
	count := len(n.children)
	if count == 0 {
		return false
	}
	delta := 1
	if d == Previous {
		delta = -1
	}
	next := ((n.sel.Get()+delta)%count + count) % count
	return n.sel.Set(next)
}

// Descend moves focus to the focused node's active child, if any.
func (t *Tree) Descend() bool {
	c := t.focused.ActiveChild()
	if c == nil {
		return false
	}
	t.focused = c
	return true
}

// Ascend moves focus to the parent. No-op at the root.
func (t *Tree) Ascend() bool {
	if t.focused.parent == nil {
		return false
	}
	t.focused = t.focused.parent
	return true
}

// Path returns the node IDs from the root to the focused node.
func (t *Tree) Path() []string {
	var rev []string
	for n := t.focused; n != nil; n = n.parent {
		rev = append(rev, n.id)
	}
	out := make([]string, 0, len(rev))
	for i := len(rev) - 1; i >= 0; i-- {
		out = append(out, rev[i])
	}
	return out
}
