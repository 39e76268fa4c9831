// Package vtest provides testing helpers for vdiff views and applications.
//
// # Render Assertions
//
// Assert on the HTML a tree realizes to:
//
//	vtest.ExpectContains(t, view, "Welcome")
//	vtest.ExpectNotContains(t, view, "Error")
//	vtest.ExpectElement(t, view, "button")
//	vtest.ExpectAttribute(t, view, "class", "btn-primary")
//
// # Patch Assertions
//
// ExpectPatched checks the central property of the differ and applier: a
// host tree patched from old to next serializes exactly like next rendered
// from scratch.
//
//	vtest.ExpectPatched(t, before, after)
//
// # Sessions
//
// NewTestSession serves an application on an httptest server and connects a
// client that mirrors the session's tree:
//
//	s := vtest.NewTestSession(t, func() server.App { return counter.New() })
//	s.Click(1)
//	s.ExpectHTML("<div><h1>Counter: 1</h1><button>Increment</button></div>")
package vtest
