package vtest

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/vango-dev/vdiff/pkg/protocol"
	"github.com/vango-dev/vdiff/pkg/server"
)

// TestSession runs an app behind a real preview server and talks to it
// through a server.Client.
type TestSession struct {
	tb     testing.TB
	server *server.Server
	http   *httptest.Server
	client *server.Client
}

// NewTestSession serves factory's apps on an httptest server and connects
// one client. Everything is closed when the test ends.
//
// Example:
//
//	s := vtest.NewTestSession(t, func() server.App { return counter.New() })
//	s.Click(1)
//	s.ExpectHTML("<div><h1>Counter: 1</h1><button>Increment</button></div>")
func NewTestSession(tb testing.TB, factory server.AppFactory, opts ...server.Option) *TestSession {
	tb.Helper()
	s := server.New(server.Config{}, factory, opts...)
	ts := httptest.NewServer(s.Handler())
	tb.Cleanup(ts.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	c, err := server.Dial(ctx, "ws"+strings.TrimPrefix(ts.URL, "http")+"/ws")
	if err != nil {
		tb.Fatalf("dial session: %v", err)
	}
	tb.Cleanup(func() { c.Close() })

	return &TestSession{tb: tb, server: s, http: ts, client: c}
}

// Click sends a click at path and waits for the resulting frame.
func (s *TestSession) Click(path ...int) protocol.FrameType {
	s.tb.Helper()
	return s.Send(path, "click", "")
}

// Send sends an event and waits for the resulting frame. An error frame
// fails the test.
func (s *TestSession) Send(path []int, name, value string) protocol.FrameType {
	s.tb.Helper()
	if err := s.client.Send(path, name, value); err != nil {
		s.tb.Fatalf("send %s at %v: %v", name, path, err)
	}
	ft, err := s.client.Next()
	if err != nil {
		s.tb.Fatalf("after %s at %v: %v", name, path, err)
	}
	return ft
}

// HTML returns the client's mirrored markup.
func (s *TestSession) HTML() string {
	return s.client.HTML()
}

// ExpectHTML asserts the client's mirrored markup.
func (s *TestSession) ExpectHTML(want string) {
	s.tb.Helper()
	if got := s.client.HTML(); got != want {
		s.tb.Errorf("session HTML = %q, want %q", got, want)
	}
}

// Client returns the connected client.
func (s *TestSession) Client() *server.Client { return s.client }

// Server returns the preview server.
func (s *TestSession) Server() *server.Server { return s.server }

// URL returns the base URL of the HTTP server.
func (s *TestSession) URL() string { return s.http.URL }
