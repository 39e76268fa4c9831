package protocol

import (
	"fmt"
	"math"

	"github.com/vango-dev/vdiff/pkg/vdom"
)

// Node kind markers.
const (
	nodeNull    byte = 0x00
	nodeElement byte = 0x01
	nodeText    byte = 0x02
)

// Prop value tags.
const (
	propString byte = 0x00
	propBool   byte = 0x01
	propInt    byte = 0x02
	propFloat  byte = 0x03
)

// EncodeNode appends node to e. Event handlers and nil props are not
// encoded; other prop values keep strings, bools, integers and floats
// distinct and fall back to their string form.
//
//	Element: 0x01 tag:string propCount:uvarint (key:string tag:byte value)* childCount:uvarint child*
//	Text:    0x02 text:string
//	nil:     0x00
func EncodeNode(e *Encoder, node *vdom.VNode) {
	if node == nil {
		e.WriteByte(nodeNull)
		return
	}
	if node.IsText() {
		e.WriteByte(nodeText)
		e.WriteString(node.Text)
		return
	}

	e.WriteByte(nodeElement)
	e.WriteString(node.Tag)

	keys := make([]string, 0, len(node.Props))
	for _, key := range node.Props.Keys() {
		value := node.Props[key]
		if value == nil || vdom.IsEventHandler(key, value) {
			continue
		}
		keys = append(keys, key)
	}
	e.WriteUvarint(uint64(len(keys)))
	for _, key := range keys {
		e.WriteString(key)
		encodeProp(e, node.Props[key])
	}

	e.WriteUvarint(uint64(len(node.Children)))
	for _, child := range node.Children {
		EncodeNode(e, child)
	}
}

func encodeProp(e *Encoder, value any) {
	switch v := value.(type) {
	case bool:
		e.WriteByte(propBool)
		e.WriteBool(v)
	case int:
		e.WriteByte(propInt)
		e.WriteSvarint(int64(v))
	case int64:
		e.WriteByte(propInt)
		e.WriteSvarint(v)
	case float64:
		if v == math.Trunc(v) && math.Abs(v) < 1<<53 {
			e.WriteByte(propInt)
			e.WriteSvarint(int64(v))
			return
		}
		e.WriteByte(propFloat)
		e.WriteFloat64(v)
	default:
		e.WriteByte(propString)
		e.WriteString(vdom.PropToString(v))
	}
}

// DecodeNode reads a node written by EncodeNode.
func DecodeNode(d *Decoder) (*vdom.VNode, error) {
	return decodeNode(d, 0)
}

func decodeNode(d *Decoder, depth int) (*vdom.VNode, error) {
	if err := checkDepth(depth, MaxNodeDepth); err != nil {
		return nil, err
	}

	kind, err := d.ReadByte()
	if err != nil {
		return nil, err
	}

	switch kind {
	case nodeNull:
		return nil, nil
	case nodeText:
		text, err := d.ReadString()
		if err != nil {
			return nil, err
		}
		return vdom.Text(text), nil
	case nodeElement:
	default:
		return nil, fmt.Errorf("protocol: invalid node kind 0x%02x", kind)
	}

	tag, err := d.ReadString()
	if err != nil {
		return nil, err
	}

	propCount, err := d.ReadCollectionCount()
	if err != nil {
		return nil, err
	}
	var props vdom.Props
	if propCount > 0 {
		props = make(vdom.Props, propCount)
	}
	for i := 0; i < propCount; i++ {
		key, err := d.ReadString()
		if err != nil {
			return nil, err
		}
		value, err := decodeProp(d)
		if err != nil {
			return nil, err
		}
		props[key] = value
	}

	childCount, err := d.ReadCollectionCount()
	if err != nil {
		return nil, err
	}
	children := make([]*vdom.VNode, 0, childCount)
	for i := 0; i < childCount; i++ {
		child, err := decodeNode(d, depth+1)
		if err != nil {
			return nil, err
		}
		if child != nil {
			children = append(children, child)
		}
	}

	return &vdom.VNode{Kind: vdom.KindElement, Tag: tag, Props: props, Children: children}, nil
}

func decodeProp(d *Decoder) (any, error) {
	tag, err := d.ReadByte()
	if err != nil {
		return nil, err
	}
	switch tag {
	case propString:
		return d.ReadString()
	case propBool:
		return d.ReadBool()
	case propInt:
		v, err := d.ReadSvarint()
		return int(v), err
	case propFloat:
		return d.ReadFloat64()
	}
	return nil, fmt.Errorf("protocol: invalid prop tag 0x%02x", tag)
}
