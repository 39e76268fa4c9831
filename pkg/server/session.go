package server

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/vango-dev/vdiff/internal/errors"
	"github.com/vango-dev/vdiff/pkg/host"
	"github.com/vango-dev/vdiff/pkg/protocol"
	"github.com/vango-dev/vdiff/pkg/render"
)

// Session is one websocket connection. It owns a host root, a Renderer and
// an App; everything but writes runs on the connection's read goroutine.
type Session struct {
	id     string
	server *Server
	conn   *websocket.Conn
	app    App
	logger *slog.Logger

	root     *host.Node
	renderer *render.Renderer
	seq      uint64
	dirty    bool

	writeMu   sync.Mutex
	closeOnce sync.Once
}

func newSession(s *Server, conn *websocket.Conn, app App) *Session {
	id := fmt.Sprintf("s%d", s.nextID.Add(1))
	logger := s.logger.With("session", id)
	return &Session{
		id:     id,
		server: s,
		conn:   conn,
		app:    app,
		logger: logger,
		root:   host.NewElement("div"),
		renderer: render.New(
			render.WithLogger(logger),
			render.WithMetrics(s.metrics),
			render.WithTracer(s.tracer),
		),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// run mounts the app and serves client frames until the connection fails.
func (s *Session) run(ctx context.Context) {
	defer s.Close()

	s.conn.SetReadLimit(s.server.config.MaxMessageSize)
	if err := s.flush(ctx); err != nil {
		s.logger.Error("initial render failed", "error", err)
		return
	}

	for {
		if d := s.server.config.ReadTimeout; d > 0 {
			s.conn.SetReadDeadline(time.Now().Add(d))
		}
		mt, msg, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				s.logger.Error("read error", "error", err)
				s.server.metrics.WebSocketError("read")
			}
			return
		}
		if mt != websocket.BinaryMessage {
			s.sendError(errors.New("E401").WithDetail("text message on a binary protocol"))
			continue
		}

		frame, err := protocol.DecodeFrame(msg)
		if err != nil {
			s.logger.Warn("frame decode error", "error", err)
			s.server.metrics.WebSocketError("decode")
			s.sendError(errors.FromError(err, "E401"))
			continue
		}

		switch frame.Type {
		case protocol.FrameEvent:
			s.handleEvent(ctx, frame.Payload)
		default:
			s.sendError(errors.New("E401").WithDetailf("unexpected %s frame from client", frame.Type))
		}
	}
}

// rerender marks the session for a render after the current event.
func (s *Session) rerender() {
	s.dirty = true
}

// handleEvent dispatches a client event to the node at its path and sends
// the patches of the render it caused, if any.
func (s *Session) handleEvent(ctx context.Context, payload []byte) {
	ev, err := protocol.DecodeEventFrame(payload)
	if err != nil {
		s.server.metrics.ObserveEvent("unknown", "malformed")
		s.sendError(errors.FromError(err, "E401"))
		return
	}

	ctx, span := s.server.tracer.Start(ctx, "vdiff.event")
	span.SetAttributes(
		attribute.String("vdiff.session", s.id),
		attribute.String("vdiff.event", ev.Name),
		attribute.IntSlice("vdiff.path", ev.Path),
	)
	defer span.End()

	var target *host.Node
	if mounted := s.renderer.Mounted(s.root); mounted != nil {
		target, err = mounted.Find(ev.Path)
	}
	if target == nil {
		verr := errors.New("E403").WithDetailf("%s at path %v", ev.Name, ev.Path)
		if err != nil {
			verr = verr.Wrap(err)
		}
		span.SetStatus(codes.Error, verr.Error())
		s.server.metrics.ObserveEvent(ev.Name, "not_found")
		s.sendError(verr)
		return
	}

	if err := s.dispatch(ctx, target, ev); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.server.metrics.ObserveEvent(ev.Name, "error")
		s.sendError(errors.FromError(err, "E404"))
	}
}

func (s *Session) dispatch(ctx context.Context, target *host.Node, ev *protocol.Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("event panic", "event", ev.Name, "panic", r, "stack", string(debug.Stack()))
			if rerr, ok := r.(error); ok && errors.Code(rerr) != "" {
				err = rerr
				return
			}
			err = errors.New("E404").WithDetailf("%v", r)
		}
	}()

	called := target.Dispatch(&host.Event{Type: ev.Name, Value: ev.Value})
	status := "ok"
	if called == 0 {
		status = "unhandled"
	}
	s.server.metrics.ObserveEvent(ev.Name, status)
	s.logger.Debug("event dispatched", "event", ev.Name, "path", ev.Path, "listeners", called)

	if !s.dirty {
		return nil
	}
	return s.flush(ctx)
}

// flush renders the app and sends the result: a mount frame the first time
// the tree appears, a patches frame when something changed.
func (s *Session) flush(ctx context.Context) error {
	s.dirty = false
	tree := s.app.View(s.rerender)
	result := s.renderer.RenderContext(ctx, tree, s.root)

	switch {
	case result.Mounted:
		s.seq++
		return s.send(protocol.NewMountFrame(s.seq, tree))
	case len(result.Patches) > 0:
		s.seq++
		return s.send(protocol.NewPatchesFrame(s.seq, result.Patches))
	case s.seq == 0:
		// Nothing to show yet; the client still needs its initial frame.
		s.seq++
		return s.send(protocol.NewMountFrame(s.seq, nil))
	}
	return nil
}

func (s *Session) send(f *protocol.Frame) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.conn.SetWriteDeadline(time.Now().Add(s.server.config.WriteTimeout))
	if err := s.conn.WriteMessage(websocket.BinaryMessage, f.Encode()); err != nil {
		s.server.metrics.WebSocketError("write")
		return err
	}
	s.server.metrics.ObserveFrame(f.Type.String())
	return nil
}

func (s *Session) sendError(err *errors.VdiffError) {
	s.logger.Warn("session error", "code", err.Code, "error", err)
	if werr := s.send(protocol.NewErrorFrame(err.Code, err.Error())); werr != nil {
		s.logger.Error("error frame write failed", "error", werr)
	}
}

// Close sends a going-away close message and closes the connection.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		deadline := time.Now().Add(time.Second)
		s.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, ""), deadline)
		s.conn.Close()
	})
}
