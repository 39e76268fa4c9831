package vdom

import (
	"fmt"
	"strings"
)

// PatchType is the type of patch operation.
type PatchType uint8

const (
	PatchNested  PatchType = iota // {index, patches} container
	PatchReplace                  // Replace node entirely
	PatchText                     // Update text content in place
	PatchAdd                      // Append a new sibling
	PatchRemove                   // Remove the node at this position
)

// String returns the wire name of the PatchType.
func (t PatchType) String() string {
	switch t {
	case PatchNested:
		return "NESTED"
	case PatchReplace:
		return "REPLACE"
	case PatchText:
		return "TEXT"
	case PatchAdd:
		return "ADD"
	case PatchRemove:
		return "REMOVE"
	default:
		return "UNKNOWN"
	}
}

// ParsePatchType maps a wire name back to a PatchType.
func ParsePatchType(s string) (PatchType, bool) {
	switch s {
	case "REPLACE":
		return PatchReplace, true
	case "TEXT":
		return PatchText, true
	case "ADD":
		return PatchAdd, true
	case "REMOVE":
		return PatchRemove, true
	}
	return 0, false
}

// Patch is one mutation. Only the fields its Type needs are set:
//
//	REPLACE, ADD: Node
//	TEXT:         Text
//	NESTED:       Index, Patches
type Patch struct {
	Type    PatchType
	Node    *VNode  // For Replace/Add
	Text    string  // For Text
	Index   int     // For Nested
	Patches []Patch // For Nested
}

// Script is the ordered patch list produced by one Diff call.
type Script []Patch

// Replace creates a REPLACE patch.
func Replace(node *VNode) Patch {
	return Patch{Type: PatchReplace, Node: node}
}

// SetText creates a TEXT patch.
func SetText(text string) Patch {
	return Patch{Type: PatchText, Text: text}
}

// Add creates an ADD patch.
func Add(node *VNode) Patch {
	return Patch{Type: PatchAdd, Node: node}
}

// Remove creates a REMOVE patch.
func Remove() Patch {
	return Patch{Type: PatchRemove}
}

// At wraps patches for the child at index.
func At(index int, patches ...Patch) Patch {
	return Patch{Type: PatchNested, Index: index, Patches: patches}
}

// Empty reports whether the script contains no patches.
func (s Script) Empty() bool {
	return len(s) == 0
}

// Len returns the number of leaf operations in the script, not counting
// NESTED containers.
func (s Script) Len() int {
	n := 0
	for i := range s {
		if s[i].Type == PatchNested {
			n += Script(s[i].Patches).Len()
			continue
		}
		n++
	}
	return n
}

// Walk calls fn for every leaf operation with the index path that leads to it.
func (s Script) Walk(fn func(path []int, p Patch)) {
	s.walk(nil, fn)
}

func (s Script) walk(path []int, fn func(path []int, p Patch)) {
	for i := range s {
		p := s[i]
		if p.Type == PatchNested {
			next := make([]int, len(path)+1)
			copy(next, path)
			next[len(path)] = p.Index
			Script(p.Patches).walk(next, fn)
			continue
		}
		fn(path, p)
	}
}

// String returns a compact rendering for logs and test failures.
func (s Script) String() string {
	var b strings.Builder
	b.WriteString("[")
	for i := range s {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(s[i].String())
	}
	b.WriteString("]")
	return b.String()
}

// String returns a compact rendering of the patch.
func (p Patch) String() string {
	switch p.Type {
	case PatchNested:
		return fmt.Sprintf("%d:%s", p.Index, Script(p.Patches).String())
	case PatchReplace, PatchAdd:
		return fmt.Sprintf("%s(%s)", p.Type, p.Node)
	case PatchText:
		return fmt.Sprintf("TEXT(%q)", p.Text)
	default:
		return p.Type.String()
	}
}
