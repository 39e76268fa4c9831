package host

import (
	"sort"
	"strings"

	"github.com/vango-dev/vdiff/internal/errors"
)

// NodeType distinguishes element nodes from text nodes.
type NodeType uint8

const (
	ElementNode NodeType = iota + 1
	TextNode
)

func (t NodeType) String() string {
	switch t {
	case ElementNode:
		return "element"
	case TextNode:
		return "text"
	default:
		return "unknown"
	}
}

// Node is a mutable host tree node. Elements carry a tag, attributes,
// listeners and an ordered child list; text nodes carry only Data.
//
// Nodes are not safe for concurrent use.
type Node struct {
	Type NodeType
	Tag  string
	Data string

	parent    *Node
	children  []*Node
	attrs     map[string]string
	listeners map[string][]Listener
}

// NewElement creates a detached element.
func NewElement(tag string) *Node {
	return &Node{Type: ElementNode, Tag: tag}
}

// NewText creates a detached text node.
func NewText(data string) *Node {
	return &Node{Type: TextNode, Data: data}
}

// IsText reports whether n is a text node.
func (n *Node) IsText() bool { return n.Type == TextNode }

// IsElement reports whether n is an element.
func (n *Node) IsElement() bool { return n.Type == ElementNode }

// Parent returns the node's parent, or nil when detached.
func (n *Node) Parent() *Node { return n.parent }

// ChildCount returns the number of children.
func (n *Node) ChildCount() int { return len(n.children) }

// Children returns a copy of the child list.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// ChildAt returns the child at index.
func (n *Node) ChildAt(index int) (*Node, error) {
	if err := n.checkIndex(index); err != nil {
		return nil, err
	}
	return n.children[index], nil
}

// FirstChild returns the first child, or nil.
func (n *Node) FirstChild() *Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[0]
}

// AppendChild appends child to n, detaching it from any previous parent.
func (n *Node) AppendChild(child *Node) error {
	if n.IsText() {
		return errors.New("E202").WithDetailf("append <%s> to text %q", child.label(), n.Data)
	}
	child.Remove()
	child.parent = n
	n.children = append(n.children, child)
	return nil
}

// ReplaceChildAt swaps the child at index for child and returns the old one,
// now detached.
func (n *Node) ReplaceChildAt(index int, child *Node) (*Node, error) {
	if err := n.checkIndex(index); err != nil {
		return nil, err
	}
	old := n.children[index]
	if old == child {
		return old, nil
	}
	child.Remove()
	// Removing child may have shifted the list when it was our own child.
	index = n.indexOf(old)
	old.parent = nil
	child.parent = n
	n.children[index] = child
	return old, nil
}

// RemoveChildAt detaches and returns the child at index.
func (n *Node) RemoveChildAt(index int) (*Node, error) {
	if err := n.checkIndex(index); err != nil {
		return nil, err
	}
	old := n.children[index]
	n.children = append(n.children[:index], n.children[index+1:]...)
	old.parent = nil
	return old, nil
}

// Remove detaches n from its parent. It is a no-op on detached nodes.
func (n *Node) Remove() {
	if n.parent == nil {
		return
	}
	if i := n.parent.indexOf(n); i >= 0 {
		n.parent.RemoveChildAt(i)
	}
	n.parent = nil
}

// ReplaceWith puts replacement where n sits in its parent.
func (n *Node) ReplaceWith(replacement *Node) error {
	if n.parent == nil {
		return errors.New("E203").WithDetailf("<%s> has no parent", n.label())
	}
	_, err := n.parent.ReplaceChildAt(n.parent.indexOf(n), replacement)
	return err
}

// Index returns the position of n within its parent, or -1 when detached.
func (n *Node) Index() int {
	if n.parent == nil {
		return -1
	}
	return n.parent.indexOf(n)
}

func (n *Node) indexOf(child *Node) int {
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}

func (n *Node) checkIndex(index int) error {
	if n.IsText() {
		return errors.New("E202").WithDetailf("child %d of text %q", index, n.Data)
	}
	if index < 0 || index >= len(n.children) {
		return errors.New("E201").WithDetailf("child %d of <%s> with %d children", index, n.Tag, len(n.children))
	}
	return nil
}

// TextContent returns the concatenated text of n and its descendants.
func (n *Node) TextContent() string {
	if n.IsText() {
		return n.Data
	}
	var b strings.Builder
	n.collectText(&b)
	return b.String()
}

func (n *Node) collectText(b *strings.Builder) {
	for _, c := range n.children {
		if c.IsText() {
			b.WriteString(c.Data)
		} else {
			c.collectText(b)
		}
	}
}

// SetText replaces the text content of n. On a text node it sets Data. On an
// element whose only child is a text node that node is updated in place;
// otherwise the children are replaced by a single text node, or by nothing
// when text is empty.
func (n *Node) SetText(text string) {
	if n.IsText() {
		n.Data = text
		return
	}
	if len(n.children) == 1 && n.children[0].IsText() {
		n.children[0].Data = text
		return
	}
	for _, c := range n.children {
		c.parent = nil
	}
	n.children = nil
	if text != "" {
		n.AppendChild(NewText(text))
	}
}

// SetAttribute sets an attribute value. An empty value on a boolean
// attribute serializes as the bare name.
func (n *Node) SetAttribute(name, value string) {
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	n.attrs[name] = value
}

// Attribute returns an attribute value and whether it is set.
func (n *Node) Attribute(name string) (string, bool) {
	v, ok := n.attrs[name]
	return v, ok
}

// RemoveAttribute removes an attribute.
func (n *Node) RemoveAttribute(name string) {
	delete(n.attrs, name)
}

// AttributeNames returns the attribute names in sorted order.
func (n *Node) AttributeNames() []string {
	names := make([]string, 0, len(n.attrs))
	for name := range n.attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Path returns the child indexes leading from the topmost ancestor to n.
func (n *Node) Path() []int {
	var path []int
	for cur := n; cur.parent != nil; cur = cur.parent {
		path = append(path, cur.Index())
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// PathFrom returns the child indexes leading from ancestor to n. It reports
// false when ancestor is not an ancestor of n (or n itself).
func (n *Node) PathFrom(ancestor *Node) ([]int, bool) {
	var path []int
	cur := n
	for cur != ancestor {
		if cur.parent == nil {
			return nil, false
		}
		path = append(path, cur.Index())
		cur = cur.parent
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}

// Find follows path down from n.
func (n *Node) Find(path []int) (*Node, error) {
	cur := n
	for _, index := range path {
		next, err := cur.ChildAt(index)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// Walk visits n and its descendants depth first. Returning false from fn
// skips the node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(fn)
	}
}

func (n *Node) label() string {
	if n.IsText() {
		return "#text"
	}
	return n.Tag
}
