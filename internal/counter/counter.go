// Package counter is the sample application: a heading showing a count and
// a button that increments it.
package counter

import (
	"fmt"

	"github.com/vango-dev/vdiff/el"
	"github.com/vango-dev/vdiff/pkg/vdom"
)

// View renders the counter for count. onIncrement runs on click.
func View(count int, onIncrement func()) *vdom.VNode {
	return el.Div(nil,
		el.H1(nil, fmt.Sprintf("Counter: %d", count)),
		el.Button(el.Props{"onclick": onIncrement}, "Increment"),
	)
}

// App holds a counter's state between renders.
type App struct {
	count int
}

// New returns an App starting at zero.
func New() *App {
	return &App{}
}

// Count returns the current count.
func (a *App) Count() int { return a.count }

// Increment adds one.
func (a *App) Increment() { a.count++ }

// View renders the current state. Clicking the button increments the count
// and calls rerender.
func (a *App) View(rerender func()) *vdom.VNode {
	return View(a.count, func() {
		a.Increment()
		rerender()
	})
}
