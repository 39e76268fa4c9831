// Package vdom provides the virtual tree used by vdiff.
//
// A VNode is an immutable description of one UI element or text leaf. Trees
// are built fresh on every render with H (or the helpers in package el) and
// compared with Diff, which returns a Script: the ordered, index-addressed
// patches that turn the previously rendered tree into the new one.
//
// # Building trees
//
//	tree := vdom.H("div", vdom.Props{"id": "app"},
//	    vdom.H("h1", nil, "Counter: 0"),
//	    vdom.H("button", vdom.Props{"onclick": increment}, "Increment"),
//	)
//
// # Diffing
//
// Children are compared purely by position. A change of kind or tag replaces
// the whole node; a changed text leaf yields a TEXT patch; extra children yield
// ADD patches and missing children yield REMOVE patches. There is no keyed
// reconciliation and no move detection.
//
// # Wire shape
//
// Nodes and patches marshal to the JSON shape other tooling observes:
//
//	{"type":"div","props":{"id":"app","children":["Hello"]}}
//	[{"index":0,"patches":[{"type":"TEXT","newText":"New"}]}]
package vdom
