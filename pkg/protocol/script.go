package protocol

import (
	"fmt"

	"github.com/vango-dev/vdiff/pkg/vdom"
)

// EncodeScript appends script to e.
//
//	Script:  count:uvarint patch*
//	Patch:   type:byte body
//	NESTED:  index:uvarint Script
//	REPLACE: Node
//	ADD:     Node
//	TEXT:    text:string
//	REMOVE:  (empty)
func EncodeScript(e *Encoder, script vdom.Script) {
	e.WriteUvarint(uint64(len(script)))
	for _, p := range script {
		e.WriteByte(byte(p.Type))
		switch p.Type {
		case vdom.PatchNested:
			e.WriteUvarint(uint64(p.Index))
			EncodeScript(e, p.Patches)
		case vdom.PatchReplace, vdom.PatchAdd:
			EncodeNode(e, p.Node)
		case vdom.PatchText:
			e.WriteString(p.Text)
		}
	}
}

// DecodeScript reads a script written by EncodeScript.
func DecodeScript(d *Decoder) (vdom.Script, error) {
	return decodeScript(d, 0)
}

func decodeScript(d *Decoder, depth int) (vdom.Script, error) {
	if err := checkDepth(depth, MaxPatchDepth); err != nil {
		return nil, err
	}

	count, err := d.ReadCollectionCount()
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, nil
	}

	script := make(vdom.Script, 0, count)
	for i := 0; i < count; i++ {
		typ, err := d.ReadByte()
		if err != nil {
			return nil, err
		}

		switch vdom.PatchType(typ) {
		case vdom.PatchNested:
			index, err := d.ReadUvarint()
			if err != nil {
				return nil, err
			}
			if index > MaxCollectionCount {
				return nil, ErrCollectionTooLarge
			}
			sub, err := decodeScript(d, depth+1)
			if err != nil {
				return nil, err
			}
			script = append(script, vdom.At(int(index), sub...))
		case vdom.PatchReplace, vdom.PatchAdd:
			node, err := DecodeNode(d)
			if err != nil {
				return nil, err
			}
			if node == nil {
				return nil, fmt.Errorf("protocol: %s patch without a node", vdom.PatchType(typ))
			}
			script = append(script, vdom.Patch{Type: vdom.PatchType(typ), Node: node})
		case vdom.PatchText:
			text, err := d.ReadString()
			if err != nil {
				return nil, err
			}
			script = append(script, vdom.SetText(text))
		case vdom.PatchRemove:
			script = append(script, vdom.Remove())
		default:
			return nil, fmt.Errorf("protocol: invalid patch type 0x%02x", typ)
		}
	}
	return script, nil
}
