package vdom

import "fmt"

// H constructs an element node.
//
// props may be nil. The reserved key "children" is never kept: the positional
// children always win. Each child may be a *VNode, a string (a text leaf), a
// []*VNode or []any (spread one level), or any other value, which becomes a
// text leaf of its formatted form so 0, false and "" are all kept. An untyped
// nil argument carries no value and is skipped.
func H(tag string, props Props, children ...any) *VNode {
	node := &VNode{
		Kind:     KindElement,
		Tag:      tag,
		Props:    make(Props, len(props)),
		Children: make([]*VNode, 0, len(children)),
	}
	for key, value := range props {
		if key == ChildrenKey {
			continue
		}
		node.Props[key] = value
	}
	for _, child := range children {
		node.Children = appendChild(node.Children, child, true)
	}
	return node
}

// appendChild converts one positional argument into nodes. Slices are spread
// only at the top level.
func appendChild(dst []*VNode, child any, spread bool) []*VNode {
	switch v := child.(type) {
	case nil:
		return dst
	case *VNode:
		if v == nil {
			return dst
		}
		return append(dst, v)
	case string:
		return append(dst, Text(v))
	case []*VNode:
		if !spread {
			return append(dst, Text(fmt.Sprint(v)))
		}
		for _, c := range v {
			dst = appendChild(dst, c, false)
		}
		return dst
	case []any:
		if !spread {
			return append(dst, Text(fmt.Sprint(v...)))
		}
		for _, c := range v {
			dst = appendChild(dst, c, false)
		}
		return dst
	default:
		return append(dst, Text(PropToString(v)))
	}
}

// Text creates a text node.
func Text(content string) *VNode {
	return &VNode{
		Kind: KindText,
		Text: content,
	}
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *VNode {
	return Text(fmt.Sprintf(format, args...))
}
