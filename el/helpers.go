package el

import "github.com/vango-dev/vdiff/pkg/vdom"

// Text creates a text node.
func Text(content string) *VNode {
	return vdom.Text(content)
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *VNode {
	return vdom.Textf(format, args...)
}

// If returns the node if condition is true, nil otherwise.
// A nil child is skipped by every element helper.
func If(condition bool, node *VNode) *VNode {
	if condition {
		return node
	}
	return nil
}

// IfElse returns the first node if condition is true, the second otherwise.
func IfElse(condition bool, ifTrue, ifFalse *VNode) *VNode {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// Range maps items to nodes, for use as a spread child list.
func Range[T any](items []T, fn func(i int, item T) *VNode) []*VNode {
	out := make([]*VNode, 0, len(items))
	for i, item := range items {
		out = append(out, fn(i, item))
	}
	return out
}

// Merge combines props left to right; later keys win.
func Merge(props ...Props) Props {
	out := make(Props)
	for _, p := range props {
		for k, v := range p {
			out[k] = v
		}
	}
	return out
}
