// Package server is a live preview server for vdiff applications.
//
// Each websocket connection gets a Session with its own host tree, Renderer
// and App instance. The session mounts the app, then reads event frames,
// dispatches each event to the host node at the event's index path and, if a
// handler asked for a rerender, diffs the app's new tree against the last one
// and sends the resulting patch script:
//
//	s := server.New(server.Config{Address: ":8080"}, func() server.App {
//	    return counter.New()
//	})
//	s.Run(ctx)
//
// Client is the matching Go client. It mirrors the session's tree by applying
// each frame to its own host tree, which makes it useful for tests and tools.
//
// Failures are reported to the client as error frames carrying the code of an
// *errors.VdiffError: E401 for malformed frames, E403 for an event path that
// does not resolve, E404 for a panicking handler.
package server
