package beacon

import "github.com/google/uuid"

// NodeID uniquely identifies a node within an outline. IDs are generated at
// construction and are independent of the node's display text, so editing a
// node's text never changes its identity.
type NodeID string

// Node is a single outline entry: a text label plus an ordered list of
// children. Child order is display order and determines before/after
// placement semantics.
type Node struct {
	ID   NodeID
	Text string

	parent   *Node
	children []*Node
}

// NewNode creates a node with a generated unique ID.
func NewNode(text string) *Node {
	return &Node{ID: NodeID(uuid.NewString()), Text: text}
}

// NewNodeWithID creates a node with a caller-supplied ID. The caller is
// responsible for keeping IDs unique within one outline; with duplicate IDs,
// which node an operation matches is undefined.
func NewNodeWithID(id NodeID, text string) *Node {
	return &Node{ID: id, Text: text}
}

// Add appends the given nodes as the last children of n and returns n, so
// outlines can be built as nested expressions.
func (n *Node) Add(children ...*Node) *Node {
	for _, c := range children {
		c.parent = n
		n.children = append(n.children, c)
	}
	return n
}

// Parent returns the node's parent, or nil for a root-level node.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the child list. The returned slice must not be mutated by
// the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// count returns the number of nodes in the subtree rooted at n.
func (n *Node) count() int {
	total := 1
	for _, c := range n.children {
		total += c.count()
	}
	return total
}

// Outline is an ordered forest of nodes and the exclusive owner of its tree
// structure. All structural changes go through Detach, Insert, and Relocate;
// every operation is total and leaves the outline valid.
type Outline struct {
	roots []*Node
}

// NewOutline creates an outline with the given root-level nodes in display
// order.
func NewOutline(roots ...*Node) *Outline {
	return &Outline{roots: roots}
}

// Roots returns the root-level nodes in display order. The returned slice
// must not be mutated by the caller.
func (o *Outline) Roots() []*Node {
	return o.roots
}

// Len returns the total number of nodes in the outline.
func (o *Outline) Len() int {
	total := 0
	for _, n := range o.roots {
		total += n.count()
	}
	return total
}

// Walk calls fn for every node in depth-first display order, passing each
// node's depth (0 for roots). Views use this to lay out rows.
func (o *Outline) Walk(fn func(n *Node, depth int)) {
	var walk func(nodes []*Node, depth int)
	walk = func(nodes []*Node, depth int) {
		for _, n := range nodes {
			fn(n, depth)
			walk(n.children, depth+1)
		}
	}
	walk(o.roots, 0)
}

// Find returns the node with the given ID, or nil if no node matches.
// Search is depth-first: root order first, then child order.
func (o *Outline) Find(id NodeID) *Node {
	return findIn(o.roots, id)
}

func findIn(nodes []*Node, id NodeID) *Node {
	for _, n := range nodes {
		if n.ID == id {
			return n
		}
		if found := findIn(n.children, id); found != nil {
			return found
		}
	}
	return nil
}

// Detach removes the node with the given ID together with its entire
// subtree and returns it. Descendants move with the node; children are
// never promoted. Returns nil and leaves the outline unchanged when no
// node matches.
func (o *Outline) Detach(id NodeID) *Node {
	n := o.Find(id)
	if n == nil {
		return nil
	}
	o.detach(n)
	return n
}

// detach unlinks n from the child list that holds it: its parent's
// children, or the root list for a top-level node.
func (o *Outline) detach(n *Node) {
	list := o.siblings(n)
	i := indexIn(*list, n)
	if i < 0 {
		return
	}
	s := *list
	copy(s[i:], s[i+1:])
	s[len(s)-1] = nil
	*list = s[:len(s)-1]
	n.parent = nil
}

// Insert places sub at the given slot. The anchor is located depth-first
// across the whole outline; the first match wins and exactly one insertion
// is performed. Reports false and leaves the outline unchanged when the
// anchor is absent.
func (o *Outline) Insert(slot Slot, sub *Node) bool {
	return insertIn(&o.roots, nil, slot, sub)
}

func insertIn(list *[]*Node, parent *Node, slot Slot, sub *Node) bool {
	for _, n := range *list {
		if n.ID == slot.Ref {
			return placeAt(list, parent, n, slot.Kind, sub)
		}
		if insertIn(&n.children, n, slot, sub) {
			return true
		}
	}
	return false
}

// placeAt performs the single insertion next to or inside anchor. list is
// the child list containing anchor and parent is that list's owner (nil for
// the root list).
func placeAt(list *[]*Node, parent, anchor *Node, kind SlotKind, sub *Node) bool {
	i := indexIn(*list, anchor)
	switch kind {
	case SlotBefore:
		insertAt(list, i, sub)
		sub.parent = parent
	case SlotAfter:
		insertAt(list, i+1, sub)
		sub.parent = parent
	case SlotPrependIn:
		insertAt(&anchor.children, 0, sub)
		sub.parent = anchor
	case SlotAppendIn:
		anchor.children = append(anchor.children, sub)
		sub.parent = anchor
	default:
		return false
	}
	return true
}

// Relocate moves the node with the given ID to slot and reports whether the
// outline changed. It is a defined no-op when the slot's anchor is the node
// itself (a dragged node's own beacons can be reported as the nearest
// candidate) or when the node is absent. When the anchor cannot be found
// after removal — it was inside the detached subtree — the node is restored
// to its original parent and index, so a failed relocation never drops a
// node. Relocate runs on every move event and preserves the outline's total
// node count.
func (o *Outline) Relocate(id NodeID, slot Slot) bool {
	if slot.Ref == id {
		return false
	}
	n := o.Find(id)
	if n == nil {
		return false
	}

	// Remember where n came from so a failed insert can put it back.
	origParent := n.parent
	origIndex := indexIn(*o.siblings(n), n)

	o.detach(n)
	if o.Insert(slot, n) {
		return true
	}

	if origParent != nil {
		insertAt(&origParent.children, origIndex, n)
		n.parent = origParent
	} else {
		insertAt(&o.roots, origIndex, n)
	}
	return false
}

// siblings returns a pointer to the child list holding n.
func (o *Outline) siblings(n *Node) *[]*Node {
	if n.parent != nil {
		return &n.parent.children
	}
	return &o.roots
}

// indexIn returns n's position within list, or -1.
func indexIn(list []*Node, n *Node) int {
	for i, c := range list {
		if c == n {
			return i
		}
	}
	return -1
}

// insertAt places n at index i, shifting later entries right.
func insertAt(list *[]*Node, i int, n *Node) {
	s := append(*list, nil)
	copy(s[i+1:], s[i:])
	s[i] = n
	*list = s
}
