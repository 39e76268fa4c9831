package vtest

import (
	"strings"
	"testing"

	"github.com/vango-dev/vdiff/pkg/host"
	"github.com/vango-dev/vdiff/pkg/patch"
	"github.com/vango-dev/vdiff/pkg/vdom"
)

// RenderToString realizes node in a host tree and serializes it. The nil
// tree renders as "".
//
// Example:
//
//	html := vtest.RenderToString(counter.View(0, nil))
func RenderToString(node *vdom.VNode) string {
	if node == nil {
		return ""
	}
	return patch.Create(node).OuterHTML()
}

// ExpectContains asserts that rendered output contains expected.
//
// Example:
//
//	vtest.ExpectContains(t, counter.View(3, nil), "Counter: 3")
func ExpectContains(t testing.TB, node *vdom.VNode, expected string) {
	t.Helper()
	html := RenderToString(node)
	if !strings.Contains(html, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that rendered output does not contain unexpected.
func ExpectNotContains(t testing.TB, node *vdom.VNode, unexpected string) {
	t.Helper()
	html := RenderToString(node)
	if strings.Contains(html, unexpected) {
		t.Errorf("expected rendered output to NOT contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

// ExpectElement asserts that the tree contains an element with tag.
func ExpectElement(t testing.TB, node *vdom.VNode, tag string) {
	t.Helper()
	found := false
	if node != nil {
		patch.Create(node).Walk(func(n *host.Node) bool {
			if n.IsElement() && n.Tag == tag {
				found = true
			}
			return !found
		})
	}
	if !found {
		t.Errorf("expected a <%s> element, got:\n%s", tag, truncate(RenderToString(node), 500))
	}
}

// ExpectAttribute asserts that some element carries attr="value".
//
// Example:
//
//	vtest.ExpectAttribute(t, view, "class", "btn-primary")
func ExpectAttribute(t testing.TB, node *vdom.VNode, attr, value string) {
	t.Helper()
	found := false
	if node != nil {
		patch.Create(node).Walk(func(n *host.Node) bool {
			if v, ok := n.Attribute(attr); ok && v == value {
				found = true
			}
			return !found
		})
	}
	if !found {
		t.Errorf("expected attribute %s=%q not found, got:\n%s", attr, value, truncate(RenderToString(node), 500))
	}
}

// ExpectPatched asserts that applying Diff(old, next) to a realization of
// old serializes exactly like a fresh realization of next. It returns the
// script so callers can inspect it further.
//
// Example:
//
//	script := vtest.ExpectPatched(t, counter.View(0, nil), counter.View(1, nil))
func ExpectPatched(t testing.TB, old, next *vdom.VNode) vdom.Script {
	t.Helper()
	script := vdom.Diff(old, next)

	container := host.NewElement("div")
	if old != nil {
		container.AppendChild(patch.Create(old))
	}
	if target := container.FirstChild(); target != nil {
		patch.Apply(target, script)
	} else if next != nil {
		// Diff(nil, next) is a single ADD against the container.
		patch.Apply(container, script)
	}

	want := RenderToString(next)
	if got := container.InnerHTML(); got != want {
		t.Errorf("patched output differs from a fresh render\nscript: %s\npatched: %s\nfresh:   %s",
			script, truncate(got, 500), truncate(want, 500))
	}
	return script
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
