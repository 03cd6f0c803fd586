package signal

// Kind discriminates the two node variants of the signal tree.
type Kind int

const (
	// KindInfo is a leaf node carrying a single stringified signal value.
	KindInfo Kind = iota

	// KindCategory is a grouping node carrying an ordered list of children.
	KindCategory
)

// String returns the symbolic name of the kind.
func (k Kind) String() string {
	switch k {
	case KindInfo:
		return "info"
	case KindCategory:
		return "category"
	default:
		return "unknown"
	}
}

// Item is a single node of the signal tree. Exactly one variant is populated:
// an Info leaf holds a raw value, a Category holds children. Items are
// immutable after construction; children are owned values, so the structure
// is a strict tree with no shared or back references.
//
// The zero Item is an Info leaf with an empty label and empty value; use the
// Info and Category constructors instead.
type Item struct {
	label    string
	kind     Kind
	value    string
	children []Item
}

// Info creates a leaf node carrying an already-stringified signal value.
// An empty value is a valid signal value, not an absent one.
func Info(label, value string) Item {
	return Item{label: label, kind: KindInfo, value: value}
}

// Category creates a grouping node. Children keep the order they are passed
// in; that order is part of the node's identity for fingerprinting.
func Category(label string, children ...Item) Item {
	owned := make([]Item, len(children))
	copy(owned, children)
	return Item{label: label, kind: KindCategory, children: owned}
}

// Label returns the node's human-readable name, unique among siblings.
func (i Item) Label() string {
	return i.label
}

// Kind returns which variant this node is.
func (i Item) Kind() Kind {
	return i.kind
}

// Value returns the raw signal value of an Info leaf.
// The boolean is false for Category nodes.
func (i Item) Value() (string, bool) {
	if i.kind != KindInfo {
		return "", false
	}
	return i.value, true
}

// Children returns a copy of a Category node's ordered children.
// The boolean is false for Info leaves.
func (i Item) Children() ([]Item, bool) {
	if i.kind != KindCategory {
		return nil, false
	}
	out := make([]Item, len(i.children))
	copy(out, i.children)
	return out, true
}

// Len returns the number of direct children. Info leaves have none.
func (i Item) Len() int {
	return len(i.children)
}

// Walk visits the node and every descendant in depth-first, declaration
// order, calling fn with each node and its depth (root is depth 0). Walking
// stops early if fn returns false.
func (i Item) Walk(fn func(item Item, depth int) bool) {
	i.walk(fn, 0)
}

func (i Item) walk(fn func(item Item, depth int) bool, depth int) bool {
	if !fn(i, depth) {
		return false
	}
	for _, child := range i.children {
		if !child.walk(fn, depth+1) {
			return false
		}
	}
	return true
}
