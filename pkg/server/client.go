package server

import (
	"context"
	"fmt"

	"github.com/gorilla/websocket"

	"github.com/vango-dev/vdiff/internal/errors"
	"github.com/vango-dev/vdiff/pkg/host"
	"github.com/vango-dev/vdiff/pkg/patch"
	"github.com/vango-dev/vdiff/pkg/protocol"
)

// Client is the far end of a session: it mirrors the session's tree in its
// own host tree by realizing mount frames and applying patch frames.
type Client struct {
	conn *websocket.Conn
	root *host.Node
	node *host.Node
	seq  uint64
}

// Dial connects to a session endpoint (ws://host/ws) and waits for the
// initial mount.
func Dial(ctx context.Context, url string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, err
	}
	c := &Client{conn: conn, root: host.NewElement("div")}
	ft, err := c.Next()
	if err != nil {
		conn.Close()
		return nil, err
	}
	if ft != protocol.FrameMount {
		conn.Close()
		return nil, errors.New("E401").WithDetailf("expected mount, got %s", ft)
	}
	return c, nil
}

// Next reads one frame and applies it to the mirror. Error frames are
// returned as *errors.VdiffError.
func (c *Client) Next() (protocol.FrameType, error) {
	_, msg, err := c.conn.ReadMessage()
	if err != nil {
		return 0, err
	}
	frame, err := protocol.DecodeFrame(msg)
	if err != nil {
		return 0, err
	}

	switch frame.Type {
	case protocol.FrameMount:
		m, err := protocol.DecodeMount(frame.Payload)
		if err != nil {
			return frame.Type, err
		}
		if c.node != nil {
			c.node.Remove()
			c.node = nil
		}
		if m.Node != nil {
			c.node = patch.Create(m.Node)
			c.root.AppendChild(c.node)
		}
		c.seq = m.Seq
	case protocol.FramePatches:
		p, err := protocol.DecodePatches(frame.Payload)
		if err != nil {
			return frame.Type, err
		}
		if err := c.apply(p); err != nil {
			return frame.Type, err
		}
	case protocol.FrameError:
		m, err := protocol.DecodeError(frame.Payload)
		if err != nil {
			return frame.Type, err
		}
		return frame.Type, &errors.VdiffError{
			Code:     m.Code,
			Category: errors.CategoryProtocol,
			Message:  m.Message,
		}
	default:
		return frame.Type, errors.New("E401").WithDetailf("unexpected %s frame from server", frame.Type)
	}
	return frame.Type, nil
}

func (c *Client) apply(p *protocol.Patches) (err error) {
	if p.Seq != c.seq+1 {
		return errors.New("E401").WithDetailf("patches %d after %d", p.Seq, c.seq)
	}
	defer func() {
		if r := recover(); r != nil {
			if rerr, ok := r.(error); ok {
				err = rerr
				return
			}
			err = fmt.Errorf("apply: %v", r)
		}
	}()
	if c.node == nil {
		return errors.New("E203").WithDetail("patches before mount")
	}
	c.node = patch.Apply(c.node, p.Script)
	c.seq = p.Seq
	return nil
}

// Send sends an event for the node at path.
func (c *Client) Send(path []int, name, value string) error {
	f := protocol.NewEventFrame(&protocol.Event{Path: path, Name: name, Value: value})
	return c.conn.WriteMessage(websocket.BinaryMessage, f.Encode())
}

// Node returns the mirrored tree, or nil when nothing is mounted.
func (c *Client) Node() *host.Node { return c.node }

// HTML serializes the mirrored tree.
func (c *Client) HTML() string { return c.root.InnerHTML() }

// Seq returns the sequence number of the last frame applied.
func (c *Client) Seq() uint64 { return c.seq }

// Close closes the connection.
func (c *Client) Close() error {
	c.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	return c.conn.Close()
}
