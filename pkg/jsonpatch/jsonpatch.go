// Package jsonpatch renders patch scripts as RFC 6902 JSON Patch documents
// over the JSON wire form of a tree, so tools that only speak JSON Patch can
// follow a render.
package jsonpatch

import (
	"encoding/json"
	"sort"
	"strconv"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/vango-dev/vdiff/internal/errors"
	"github.com/vango-dev/vdiff/pkg/vdom"
)

// Operation is one RFC 6902 operation.
type Operation struct {
	Op    string `json:"op"`
	Path  string `json:"path"`
	Value any    `json:"value"`
}

// MarshalJSON omits the value of remove operations.
func (o Operation) MarshalJSON() ([]byte, error) {
	if o.Op == "remove" {
		return json.Marshal(struct {
			Op   string `json:"op"`
			Path string `json:"path"`
		}{o.Op, o.Path})
	}
	type plain Operation
	return json.Marshal(plain(o))
}

const childrenPath = "/props/" + vdom.ChildrenKey

// FromScript translates script, computed by vdom.Diff(old, next), into
// operations that turn the JSON form of old into the JSON form of next.
// A whole-document change uses the empty path. Removals from one child list
// come after the other operations on that list, highest index first.
func FromScript(old *vdom.VNode, script vdom.Script) ([]Operation, error) {
	var ops []Operation
	if err := translate(&ops, old, "", script); err != nil {
		return nil, err
	}
	return ops, nil
}

func translate(ops *[]Operation, node *vdom.VNode, path string, script vdom.Script) error {
	var nested vdom.Script

	for _, p := range script {
		switch p.Type {
		case vdom.PatchNested:
			nested = append(nested, p)
		case vdom.PatchReplace:
			*ops = append(*ops, Operation{Op: "replace", Path: path, Value: p.Node})
			node = p.Node
		case vdom.PatchText:
			textPath := path
			if node != nil && node.IsElement() {
				// TEXT on an element rewrites its sole text child.
				textPath += childrenPath + "/0"
			}
			*ops = append(*ops, Operation{Op: "replace", Path: textPath, Value: p.Text})
		case vdom.PatchAdd:
			if node == nil {
				*ops = append(*ops, Operation{Op: "replace", Path: path, Value: p.Node})
				continue
			}
			*ops = append(*ops, Operation{Op: "add", Path: path + childrenPath + "/-", Value: p.Node})
		case vdom.PatchRemove:
			if path == "" {
				*ops = append(*ops, Operation{Op: "replace", Path: path, Value: nil})
				continue
			}
			*ops = append(*ops, Operation{Op: "remove", Path: path})
		}
	}

	if len(nested) == 0 {
		return nil
	}
	if node == nil || !node.IsElement() {
		return errors.New("E202").WithDetailf("indexed patch at %q below a text node", path)
	}

	var removals []int
	for _, entry := range nested {
		if entry.Index < 0 || entry.Index >= len(node.Children) {
			if onlyAdds(entry.Patches) {
				if err := translate(ops, node, path, entry.Patches); err != nil {
					return err
				}
				continue
			}
			return errors.New("E201").WithDetailf("child %d of %q with %d children", entry.Index, path, len(node.Children))
		}
		childPath := path + childrenPath + "/" + strconv.Itoa(entry.Index)
		var rest vdom.Script
		for _, p := range entry.Patches {
			switch p.Type {
			case vdom.PatchRemove:
				removals = append(removals, entry.Index)
			case vdom.PatchAdd:
				*ops = append(*ops, Operation{Op: "add", Path: path + childrenPath + "/-", Value: p.Node})
			default:
				rest = append(rest, p)
			}
		}
		if err := translate(ops, node.Children[entry.Index], childPath, rest); err != nil {
			return err
		}
	}

	sort.Sort(sort.Reverse(sort.IntSlice(removals)))
	for _, index := range removals {
		*ops = append(*ops, Operation{Op: "remove", Path: path + childrenPath + "/" + strconv.Itoa(index)})
	}
	return nil
}

func onlyAdds(script vdom.Script) bool {
	for _, p := range script {
		if p.Type != vdom.PatchAdd {
			return false
		}
	}
	return true
}

// Marshal returns the RFC 6902 document for ops.
func Marshal(ops []Operation) ([]byte, error) {
	if ops == nil {
		ops = []Operation{}
	}
	return json.Marshal(ops)
}

// Apply applies ops to the JSON document doc. A leading whole-document
// replace is resolved here; the remaining operations go through
// evanphx/json-patch.
func Apply(doc []byte, ops []Operation) ([]byte, error) {
	for len(ops) > 0 && ops[0].Path == "" && ops[0].Op == "replace" {
		value, err := json.Marshal(ops[0].Value)
		if err != nil {
			return nil, err
		}
		doc, ops = value, ops[1:]
	}
	if len(ops) == 0 {
		return doc, nil
	}

	raw, err := Marshal(ops)
	if err != nil {
		return nil, err
	}
	patch, err := jsonpatch.DecodePatch(raw)
	if err != nil {
		return nil, errors.New("E401").WithDetail("json patch").Wrap(err)
	}
	out, err := patch.Apply(doc)
	if err != nil {
		return nil, errors.New("E201").WithDetail("json patch does not fit the document").Wrap(err)
	}
	return out, nil
}
