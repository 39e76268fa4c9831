package server

import "github.com/vango-dev/vdiff/pkg/vdom"

// App is an application served to one session. View returns the current
// tree; event handlers inside it call rerender after changing state, and the
// session re-renders once the event has been dispatched.
type App interface {
	View(rerender func()) *vdom.VNode
}

// AppFactory creates the App for a new session or page load.
type AppFactory func() App

// AppFunc adapts a plain view function to App.
type AppFunc func(rerender func()) *vdom.VNode

// View calls f.
func (f AppFunc) View(rerender func()) *vdom.VNode { return f(rerender) }
