package vdom

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var scriptOpts = []cmp.Option{
	cmpopts.EquateEmpty(),
	cmp.Comparer(func(a, b *VNode) bool { return Equal(a, b) }),
}

func assertScript(t *testing.T, got, want Script) {
	t.Helper()
	if diff := cmp.Diff(want, got, scriptOpts...); diff != "" {
		t.Errorf("script mismatch (-want +got):\n%s", diff)
	}
}

func TestDiffAddChild(t *testing.T) {
	prev := H("div", nil, H("p", nil, "Hello"))
	next := H("div", nil, H("p", nil, "Hello"), H("span", nil, "New Child"))

	assertScript(t, Diff(prev, next), Script{
		At(1, Add(H("span", nil, "New Child"))),
	})
}

func TestDiffNestedText(t *testing.T) {
	prev := H("div", nil, H("span", nil, "Old"))
	next := H("div", nil, H("span", nil, "New"))

	assertScript(t, Diff(prev, next), Script{
		At(0, SetText("New")),
	})
}

func TestDiffDifferentRoots(t *testing.T) {
	prev := H("div", nil, H("p", nil, "Hello"))
	next := H("span", nil, "Goodbye")

	got := Diff(prev, next)
	assertScript(t, got, Script{Replace(next)})
	if got[0].Node != next {
		t.Error("REPLACE should carry the new node itself")
	}
}

func TestDiffTypeChangeWithoutChildren(t *testing.T) {
	prev := H("div", nil)
	next := H("span", nil)
	assertScript(t, Diff(prev, next), Script{Replace(next)})
}

func TestDiffKindChange(t *testing.T) {
	assertScript(t, Diff(Text("a"), H("b", nil)), Script{Replace(H("b", nil))})
	assertScript(t, Diff(H("b", nil), Text("a")), Script{Replace(Text("a"))})
}

func TestDiffTextAmongSiblings(t *testing.T) {
	prev := H("p", nil, "Hello ", H("b", nil, "you"), "!")
	next := H("p", nil, "Bye ", H("b", nil, "you"), "?")

	assertScript(t, Diff(prev, next), Script{
		At(0, SetText("Bye ")),
		At(2, SetText("?")),
	})
}

func TestDiffSoleTextBecomesElement(t *testing.T) {
	prev := H("p", nil, "plain")
	next := H("p", nil, H("em", nil, "plain"))

	assertScript(t, Diff(prev, next), Script{
		At(0, Replace(H("em", nil, "plain"))),
	})
}

func TestDiffTextLeaves(t *testing.T) {
	assertScript(t, Diff(Text("a"), Text("b")), Script{SetText("b")})
	assertScript(t, Diff(Text("a"), Text("a")), nil)
}

func TestDiffRemoveTrailingChildren(t *testing.T) {
	prev := H("ul", nil, H("li", nil, "a"), H("li", nil, "b"), H("li", nil, "c"))
	next := H("ul", nil, H("li", nil, "a"))

	assertScript(t, Diff(prev, next), Script{
		At(1, Remove()),
		At(2, Remove()),
	})
}

func TestDiffMixedChanges(t *testing.T) {
	prev := H("div", nil,
		H("h1", nil, "Title"),
		H("p", nil, "one"),
		H("p", nil, "two"),
	)
	next := H("div", nil,
		H("h1", nil, "Title"),
		H("section", nil, "one"),
		H("p", nil, "2"),
		H("footer", nil),
	)

	assertScript(t, Diff(prev, next), Script{
		At(1, Replace(H("section", nil, "one"))),
		At(2, SetText("2")),
		At(3, Add(H("footer", nil))),
	})
}

func TestDiffIgnoresProps(t *testing.T) {
	prev := H("div", Props{"id": "a"}, "x")
	next := H("div", Props{"id": "b", "class": "c"}, "x")
	assertScript(t, Diff(prev, next), nil)
}

func TestDiffNilSides(t *testing.T) {
	node := H("p", nil)
	assertScript(t, Diff(nil, nil), nil)
	assertScript(t, Diff(nil, node), Script{Add(node)})
	assertScript(t, Diff(node, nil), Script{Remove()})
}

func TestDiffIdempotence(t *testing.T) {
	trees := []*VNode{
		Text("leaf"),
		H("div", nil),
		H("div", Props{"id": "x"}, H("p", nil, "Hello"), "tail"),
		deepTree(8),
		wideTree(1000),
	}
	for i, tree := range trees {
		if got := Diff(tree, tree); len(got) != 0 {
			t.Errorf("tree %d: Diff(x, x) = %s, want empty", i, got)
		}
		if got := Diff(tree, clone(tree)); len(got) != 0 {
			t.Errorf("tree %d: Diff(x, clone(x)) = %s, want empty", i, got)
		}
	}
}

func TestDiffReplacementTotality(t *testing.T) {
	prev := H("div", nil, deepTree(3), H("p", nil, "same"))
	next := H("section", nil, deepTree(3), H("p", nil, "same"))
	assertScript(t, Diff(prev, next), Script{Replace(next)})
}

func TestDiffIndexStability(t *testing.T) {
	for k := 0; k < 6; k++ {
		t.Run(fmt.Sprintf("k=%d", k), func(t *testing.T) {
			prev := wideTree(k)
			next := clone(prev)
			next.Children = append(next.Children, H("p", nil, "extra"))

			got := Diff(prev, next)
			assertScript(t, got, Script{At(k, Add(H("p", nil, "extra")))})
		})
	}
}

func TestDiffDeepChange(t *testing.T) {
	prev := deepTree(5)
	next := deepTree(5)
	// deepTree nests one div per level with a text leaf at the bottom; the
	// innermost div is four levels below the root.
	leaf := next
	for len(leaf.Children) > 0 && leaf.Children[0].IsElement() {
		leaf = leaf.Children[0]
	}
	leaf.Children[0] = Text("changed")

	got := Diff(prev, next)
	if got.Len() != 1 {
		t.Fatalf("Len() = %d, want 1: %s", got.Len(), got)
	}

	var paths [][]int
	got.Walk(func(path []int, p Patch) {
		if p.Type != PatchText || p.Text != "changed" {
			t.Errorf("unexpected leaf %s", p)
		}
		paths = append(paths, path)
	})
	if want := [][]int{{0, 0, 0, 0}}; !cmp.Equal(paths, want) {
		t.Errorf("paths = %v, want %v", paths, want)
	}
}

func TestScriptLenAndString(t *testing.T) {
	s := Script{
		At(0, At(0, SetText("x"))),
		At(2, Remove()),
		At(3, Add(Text("y"))),
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
	want := `[0:[0:[TEXT("x")]] 2:[REMOVE] 3:[ADD("y")]]`
	if s.String() != want {
		t.Errorf("String() = %s, want %s", s.String(), want)
	}
	if !Script(nil).Empty() || s.Empty() {
		t.Error("Empty() is wrong")
	}
}

// deepTree returns depth nested divs around a text leaf.
func deepTree(depth int) *VNode {
	node := Text("bottom")
	for i := 0; i < depth; i++ {
		node = H("div", Props{"data-level": i}, node)
	}
	return node
}

// wideTree returns a div with n paragraph children.
func wideTree(n int) *VNode {
	children := make([]*VNode, n)
	for i := range children {
		children[i] = H("p", nil, fmt.Sprintf("Paragraph %d", i))
	}
	return H("div", nil, children)
}

func clone(v *VNode) *VNode {
	if v == nil {
		return nil
	}
	if v.IsText() {
		return Text(v.Text)
	}
	children := make([]*VNode, len(v.Children))
	for i, c := range v.Children {
		children[i] = clone(c)
	}
	return H(v.Tag, v.Props, children)
}

func BenchmarkDiffIdentical1000(b *testing.B) {
	prev, next := wideTree(1000), wideTree(1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Diff(prev, next)
	}
}

func BenchmarkDiffTextChange1000(b *testing.B) {
	prev := wideTree(1000)
	next := clone(prev)
	next.Children[500] = H("p", nil, "changed")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Diff(prev, next)
	}
}
