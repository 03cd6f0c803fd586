package fingerprint

import (
	"fmt"
	"strings"

	"github.com/signalprint/sdk/signal"
)

// Tree mirrors a signal tree node-for-node, adding the computed digest at
// every node. Leaves keep their raw value; categories keep their ordered
// children. The root's Fingerprint is the device fingerprint.
type Tree struct {
	// Label is copied from the signal tree node.
	Label string `json:"label"`

	// Fingerprint is the digest of this node and everything beneath it.
	Fingerprint string `json:"fingerprint"`

	// Value is the original raw value for leaf nodes, empty for categories.
	Value string `json:"value,omitempty"`

	// Children are the fingerprinted children of a category node, in the
	// same order as in the signal tree. Nil for leaves.
	Children []Tree `json:"children,omitempty"`
}

// Calculate walks the signal tree in post order and produces the parallel
// fingerprint tree. A leaf's fingerprint is hasher applied to the UTF-8
// bytes of its raw value; a category's fingerprint is hasher applied to its
// children's fingerprint strings concatenated in declared order.
//
// Calculate is total over well-formed trees: the only failures it can return
// originate from the hasher, and those propagate wrapped with the label of
// the node being digested. There is no partial result on failure.
func Calculate(item signal.Item, hasher Hasher) (Tree, error) {
	switch item.Kind() {
	case signal.KindInfo:
		value, _ := item.Value()
		digest, err := hasher.Hash([]byte(value))
		if err != nil {
			return Tree{}, fmt.Errorf("fingerprint: hashing signal %q: %w", item.Label(), err)
		}
		return Tree{Label: item.Label(), Fingerprint: digest, Value: value}, nil

	case signal.KindCategory:
		children, _ := item.Children()
		nodes := make([]Tree, 0, len(children))
		var combined strings.Builder
		for _, child := range children {
			node, err := Calculate(child, hasher)
			if err != nil {
				return Tree{}, err
			}
			nodes = append(nodes, node)
			combined.WriteString(node.Fingerprint)
		}
		digest, err := hasher.Hash([]byte(combined.String()))
		if err != nil {
			return Tree{}, fmt.Errorf("fingerprint: hashing category %q: %w", item.Label(), err)
		}
		return Tree{Label: item.Label(), Fingerprint: digest, Children: nodes}, nil

	default:
		return Tree{}, fmt.Errorf("fingerprint: node %q has unknown kind %d", item.Label(), item.Kind())
	}
}

// Find returns the first node with the given label in a depth-first walk of
// the fingerprint tree, or false if no node carries that label.
func (t Tree) Find(label string) (Tree, bool) {
	if t.Label == label {
		return t, true
	}
	for _, child := range t.Children {
		if found, ok := child.Find(label); ok {
			return found, true
		}
	}
	return Tree{}, false
}
