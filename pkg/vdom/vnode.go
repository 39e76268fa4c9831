package vdom

import (
	"fmt"
	"strings"
)

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement VKind = iota // <div>, <button>, etc.
	KindText                 // Plain text node
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	default:
		return "Unknown"
	}
}

// ChildrenKey is the reserved props key that holds children in the wire shape.
const ChildrenKey = "children"

// VNode is the virtual tree node. Nodes are never mutated after construction.
type VNode struct {
	Kind     VKind    // Node type
	Tag      string   // Element tag name (e.g., "div")
	Props    Props    // Attributes and event handlers, never holds "children"
	Children []*VNode // Child nodes, empty (not nil) for elements
	Text     string   // For KindText
}

// Props holds attributes and event handlers.
type Props map[string]any

// IsText reports whether v is a text leaf.
func (v *VNode) IsText() bool {
	return v != nil && v.Kind == KindText
}

// IsElement reports whether v is an element.
func (v *VNode) IsElement() bool {
	return v != nil && v.Kind == KindElement
}

// String returns a compact, HTML-like rendering for debugging.
func (v *VNode) String() string {
	var b strings.Builder
	v.writeDebug(&b)
	return b.String()
}

func (v *VNode) writeDebug(b *strings.Builder) {
	switch {
	case v == nil:
		b.WriteString("<nil>")
	case v.Kind == KindText:
		fmt.Fprintf(b, "%q", v.Text)
	default:
		b.WriteString("<")
		b.WriteString(v.Tag)
		for _, key := range v.Props.sortedKeys() {
			if IsEventHandler(key, v.Props[key]) {
				continue
			}
			fmt.Fprintf(b, " %s=%q", key, PropToString(v.Props[key]))
		}
		b.WriteString(">")
		for _, child := range v.Children {
			child.writeDebug(b)
		}
		b.WriteString("</")
		b.WriteString(v.Tag)
		b.WriteString(">")
	}
}

// Count returns the number of nodes in the tree rooted at v.
func (v *VNode) Count() int {
	if v == nil {
		return 0
	}
	n := 1
	for _, child := range v.Children {
		n += child.Count()
	}
	return n
}

// Equal reports whether two trees are structurally identical.
// Event handlers compare equal when both sides have one under the same key.
func Equal(a, b *VNode) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind {
		return false
	}
	if a.Kind == KindText {
		return a.Text == b.Text
	}
	if a.Tag != b.Tag || len(a.Children) != len(b.Children) || len(a.Props) != len(b.Props) {
		return false
	}
	for key, av := range a.Props {
		bv, ok := b.Props[key]
		if !ok {
			return false
		}
		if IsEventHandler(key, av) {
			if !IsEventHandler(key, bv) {
				return false
			}
			continue
		}
		if !propsEqual(av, bv) {
			return false
		}
	}
	for i := range a.Children {
		if !Equal(a.Children[i], b.Children[i]) {
			return false
		}
	}
	return true
}
