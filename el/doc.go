// Package el provides tag helpers for building vdiff trees.
//
// Each helper forwards to vdom.H with its tag name:
//
//	import . "github.com/vango-dev/vdiff/el"
//
//	Div(Props{"id": "app"},
//	    H1(nil, "Counter: 0"),
//	    Button(Props{"onclick": increment}, "Increment"),
//	)
package el
