package vdom

import (
	"encoding/json"
	"fmt"

	"github.com/vango-dev/vdiff/internal/errors"
)

// elementWire is the JSON shape of an element node.
type elementWire struct {
	Type  string         `json:"type"`
	Props map[string]any `json:"props"`
}

// MarshalJSON encodes the node in its wire shape. Text nodes are bare strings;
// elements carry their children under props.children. Event handlers are not
// serialized.
func (v *VNode) MarshalJSON() ([]byte, error) {
	if v == nil {
		return []byte("null"), nil
	}
	if v.Kind == KindText {
		return json.Marshal(v.Text)
	}
	props := make(map[string]any, len(v.Props)+1)
	for key, value := range v.Props {
		if IsEventHandler(key, value) {
			continue
		}
		props[key] = value
	}
	children := v.Children
	if children == nil {
		children = []*VNode{}
	}
	props[ChildrenKey] = children
	return json.Marshal(elementWire{Type: v.Tag, Props: props})
}

// UnmarshalJSON decodes a node from its wire shape.
func (v *VNode) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.New("E301").Wrap(err)
	}
	node, err := FromValue(raw)
	if err != nil {
		return err
	}
	if node == nil {
		*v = VNode{}
		return nil
	}
	*v = *node
	return nil
}

// FromValue builds a tree from the generic form produced by JSON or YAML
// decoders: strings become text leaves and mappings with a "type" become
// elements whose children sit under props.children. A top-level "children"
// key is accepted when props carries none.
func FromValue(value any) (*VNode, error) {
	return fromValue(value, "$")
}

func fromValue(value any, path string) (*VNode, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case string:
		return Text(v), nil
	case bool, float64, float32, int, int64, uint64, json.Number:
		return Text(PropToString(v)), nil
	}

	m, ok := toStringMap(value)
	if !ok {
		return nil, errors.New("E301").WithDetailf("%s: expected a string or a mapping, got %T", path, value)
	}

	tag, ok := m["type"].(string)
	if !ok && m["type"] != nil {
		return nil, errors.New("E301").WithDetailf("%s.type: expected a string, got %T", path, m["type"])
	}

	var props map[string]any
	if rawProps, present := m["props"]; present && rawProps != nil {
		props, ok = toStringMap(rawProps)
		if !ok {
			return nil, errors.New("E301").WithDetailf("%s.props: expected a mapping, got %T", path, rawProps)
		}
	}

	rawChildren, present := props[ChildrenKey]
	if !present {
		rawChildren = m[ChildrenKey]
	}

	var children []any
	if rawChildren != nil {
		list, ok := rawChildren.([]any)
		if !ok {
			return nil, errors.New("E301").WithDetailf("%s.props.children: expected a list, got %T", path, rawChildren)
		}
		children = make([]any, 0, len(list))
		for i, rc := range list {
			child, err := fromValue(rc, fmt.Sprintf("%s.props.children[%d]", path, i))
			if err != nil {
				return nil, err
			}
			if child != nil {
				children = append(children, child)
			}
		}
	}

	return H(tag, Props(props), children...), nil
}

// toStringMap normalizes decoder mappings to map[string]any.
func toStringMap(value any) (map[string]any, bool) {
	switch m := value.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, v := range m {
			out[fmt.Sprint(k)] = v
		}
		return out, true
	}
	return nil, false
}

// patchWire is the JSON shape shared by all patch variants.
type patchWire struct {
	Type     string          `json:"type,omitempty"`
	NewVNode json.RawMessage `json:"newVNode,omitempty"`
	NewText  *string         `json:"newText,omitempty"`
	Index    *int            `json:"index,omitempty"`
	Patches  Script          `json:"patches,omitempty"`
}

// MarshalJSON encodes the patch in its wire shape:
//
//	REPLACE := {"type":"REPLACE","newVNode":Node}
//	TEXT    := {"type":"TEXT","newText":string}
//	ADD     := {"type":"ADD","newVNode":Node}
//	REMOVE  := {"type":"REMOVE"}
//	NESTED  := {"index":int,"patches":[Patch...]}
func (p Patch) MarshalJSON() ([]byte, error) {
	switch p.Type {
	case PatchNested:
		patches := p.Patches
		if patches == nil {
			patches = []Patch{}
		}
		return json.Marshal(struct {
			Index   int    `json:"index"`
			Patches Script `json:"patches"`
		}{p.Index, patches})
	case PatchReplace, PatchAdd:
		return json.Marshal(struct {
			Type     string `json:"type"`
			NewVNode *VNode `json:"newVNode"`
		}{p.Type.String(), p.Node})
	case PatchText:
		return json.Marshal(struct {
			Type    string `json:"type"`
			NewText string `json:"newText"`
		}{p.Type.String(), p.Text})
	case PatchRemove:
		return json.Marshal(struct {
			Type string `json:"type"`
		}{p.Type.String()})
	}
	return nil, errors.New("E402").WithDetailf("patch type %d", p.Type)
}

// UnmarshalJSON decodes a patch from its wire shape.
func (p *Patch) UnmarshalJSON(data []byte) error {
	var w patchWire
	if err := json.Unmarshal(data, &w); err != nil {
		return errors.New("E401").Wrap(err)
	}

	if w.Type == "" {
		if w.Index == nil {
			return errors.New("E402").WithDetail("patch has neither type nor index")
		}
		*p = At(*w.Index, w.Patches...)
		return nil
	}

	typ, ok := ParsePatchType(w.Type)
	if !ok {
		return errors.New("E402").WithDetailf("patch type %q", w.Type)
	}

	*p = Patch{Type: typ}
	switch typ {
	case PatchReplace, PatchAdd:
		if len(w.NewVNode) == 0 {
			return errors.New("E401").WithDetailf("%s patch without newVNode", typ)
		}
		node := new(VNode)
		if err := json.Unmarshal(w.NewVNode, node); err != nil {
			return err
		}
		p.Node = node
	case PatchText:
		if w.NewText != nil {
			p.Text = *w.NewText
		}
	}
	return nil
}

// MarshalJSON encodes a nil script as an empty list.
func (s Script) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Patch(s))
}
