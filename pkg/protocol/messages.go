package protocol

import (
	"github.com/vango-dev/vdiff/internal/errors"
	"github.com/vango-dev/vdiff/pkg/vdom"
)

// Mount is the initial tree sent when a session starts.
type Mount struct {
	Seq  uint64
	Node *vdom.VNode
}

// Patches is a script produced by one render.
type Patches struct {
	Seq    uint64
	Script vdom.Script
}

// ErrorMessage reports a failure to the peer.
type ErrorMessage struct {
	Code    string
	Message string
}

// NewMountFrame encodes a Mount frame.
func NewMountFrame(seq uint64, node *vdom.VNode) *Frame {
	e := NewEncoder()
	e.WriteUvarint(seq)
	EncodeNode(e, node)
	return NewFrame(FrameMount, e.Bytes())
}

// NewPatchesFrame encodes a Patches frame.
func NewPatchesFrame(seq uint64, script vdom.Script) *Frame {
	e := NewEncoder()
	e.WriteUvarint(seq)
	EncodeScript(e, script)
	return NewFrame(FramePatches, e.Bytes())
}

// NewEventFrame encodes an Event frame.
func NewEventFrame(ev *Event) *Frame {
	e := NewEncoder()
	EncodeEvent(e, ev)
	return NewFrame(FrameEvent, e.Bytes())
}

// NewErrorFrame encodes an Error frame.
func NewErrorFrame(code, message string) *Frame {
	e := NewEncoder()
	e.WriteString(code)
	e.WriteString(message)
	return NewFrame(FrameError, e.Bytes())
}

// DecodeMount decodes the payload of a Mount frame.
func DecodeMount(payload []byte) (*Mount, error) {
	d := NewDecoder(payload)
	seq, err := d.ReadUvarint()
	if err != nil {
		return nil, malformed(FrameMount, err)
	}
	node, err := DecodeNode(d)
	if err != nil {
		return nil, malformed(FrameMount, err)
	}
	return &Mount{Seq: seq, Node: node}, nil
}

// DecodePatches decodes the payload of a Patches frame.
func DecodePatches(payload []byte) (*Patches, error) {
	d := NewDecoder(payload)
	seq, err := d.ReadUvarint()
	if err != nil {
		return nil, malformed(FramePatches, err)
	}
	script, err := DecodeScript(d)
	if err != nil {
		return nil, malformed(FramePatches, err)
	}
	return &Patches{Seq: seq, Script: script}, nil
}

// DecodeEventFrame decodes the payload of an Event frame.
func DecodeEventFrame(payload []byte) (*Event, error) {
	ev, err := DecodeEvent(NewDecoder(payload))
	if err != nil {
		return nil, malformed(FrameEvent, err)
	}
	return ev, nil
}

// DecodeError decodes the payload of an Error frame.
func DecodeError(payload []byte) (*ErrorMessage, error) {
	d := NewDecoder(payload)
	code, err := d.ReadString()
	if err != nil {
		return nil, malformed(FrameError, err)
	}
	message, err := d.ReadString()
	if err != nil {
		return nil, malformed(FrameError, err)
	}
	return &ErrorMessage{Code: code, Message: message}, nil
}

func malformed(ft FrameType, err error) error {
	return errors.New("E401").WithDetailf("%s frame", ft).Wrap(err)
}
