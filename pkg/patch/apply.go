package patch

import (
	"sort"

	"github.com/vango-dev/vdiff/pkg/host"
	"github.com/vango-dev/vdiff/pkg/vdom"
)

// Apply mutates target, the host node realized from the old tree, to match
// the new tree script was diffed against. It returns the node standing in
// target's place afterwards: a new node after a top-level REPLACE, nil after
// a top-level REMOVE, and target otherwise.
//
// Bare patches act on target itself. Index-addressed patches act on its
// children; removals in one child list run last, from the highest index down.
//
// Apply panics with a coded *errors.VdiffError when the host tree does not
// mirror the old tree.
func Apply(target *host.Node, script vdom.Script) *host.Node {
	current := target
	var nested vdom.Script

	for _, p := range script {
		switch p.Type {
		case vdom.PatchNested:
			nested = append(nested, p)
		case vdom.PatchReplace:
			repl := Create(p.Node)
			must(current.ReplaceWith(repl))
			current = repl
		case vdom.PatchText:
			current.SetText(p.Text)
		case vdom.PatchAdd:
			must(current.AppendChild(Create(p.Node)))
		case vdom.PatchRemove:
			current.Remove()
			return nil
		}
	}

	if len(nested) > 0 {
		applyChildren(current, nested)
	}
	return current
}

// applyChildren applies index-addressed entries to parent's children.
func applyChildren(parent *host.Node, entries vdom.Script) {
	var removals []int

	for _, entry := range entries {
		var nested vdom.Script
		for _, p := range entry.Patches {
			switch p.Type {
			case vdom.PatchNested:
				nested = append(nested, p)
			case vdom.PatchReplace:
				_, err := parent.ReplaceChildAt(entry.Index, Create(p.Node))
				must(err)
			case vdom.PatchText:
				child, err := parent.ChildAt(entry.Index)
				must(err)
				child.SetText(p.Text)
			case vdom.PatchAdd:
				must(parent.AppendChild(Create(p.Node)))
			case vdom.PatchRemove:
				removals = append(removals, entry.Index)
			}
		}
		if len(nested) > 0 {
			child, err := parent.ChildAt(entry.Index)
			must(err)
			applyChildren(child, nested)
		}
	}

	sort.Sort(sort.Reverse(sort.IntSlice(removals)))
	for _, index := range removals {
		_, err := parent.RemoveChildAt(index)
		must(err)
	}
}

// must panics on host desynchronization.
func must(err error) {
	if err != nil {
		panic(err)
	}
}
