package host

import (
	"bytes"
	"fmt"
	"io"
)

// OuterHTML serializes n including its own tag.
func (n *Node) OuterHTML() string {
	var buf bytes.Buffer
	n.WriteHTML(&buf)
	return buf.String()
}

// InnerHTML serializes the children of n.
func (n *Node) InnerHTML() string {
	var buf bytes.Buffer
	for _, c := range n.children {
		c.WriteHTML(&buf)
	}
	return buf.String()
}

// WriteHTML streams the serialization of n to w. Attributes are written in
// sorted order so output is deterministic.
func (n *Node) WriteHTML(w io.Writer) error {
	if n.IsText() {
		_, err := io.WriteString(w, escapeText(n.Data))
		return err
	}

	if _, err := fmt.Fprintf(w, "<%s", n.Tag); err != nil {
		return err
	}
	for _, name := range n.AttributeNames() {
		value := n.attrs[name]
		if value == "" && isBooleanAttr(name) {
			if _, err := fmt.Fprintf(w, " %s", name); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, ` %s="%s"`, name, escapeAttr(value)); err != nil {
			return err
		}
	}
	if _, err := w.Write([]byte{'>'}); err != nil {
		return err
	}

	// Void elements have no closing tag
	if isVoidElement(n.Tag) {
		return nil
	}

	for _, c := range n.children {
		if err := c.WriteHTML(w); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "</%s>", n.Tag)
	return err
}
