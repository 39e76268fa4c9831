package patch

import (
	"reflect"
	"strings"

	"github.com/vango-dev/vdiff/pkg/host"
	"github.com/vango-dev/vdiff/pkg/vdom"
)

// Create realizes v as a detached host subtree. Non-handler props become
// attributes and handler props become event listeners.
func Create(v *vdom.VNode) *host.Node {
	if v == nil {
		return nil
	}
	if v.IsText() {
		return host.NewText(v.Text)
	}

	n := host.NewElement(v.Tag)
	for _, key := range v.Props.Keys() {
		value := v.Props[key]
		if vdom.IsEventHandler(key, value) {
			if l, ok := listener(value); ok {
				n.AddEventListener(vdom.EventName(key), l)
			}
			continue
		}
		setAttribute(n, key, value)
	}
	for _, child := range v.Children {
		n.AppendChild(Create(child))
	}
	return n
}

// setAttribute writes one prop as an attribute.
func setAttribute(n *host.Node, key string, value any) {
	// Internal props are not rendered
	if key == "key" || strings.HasPrefix(key, "_") {
		return
	}

	switch key {
	case "className":
		key = "class"
	case "htmlFor":
		key = "for"
	}

	switch v := value.(type) {
	case nil:
		return
	case bool:
		if v {
			n.SetAttribute(key, "")
		}
		return
	}
	n.SetAttribute(key, vdom.PropToString(value))
}

// listener adapts a handler prop to a host listener. Handlers may take no
// arguments or the *host.Event.
func listener(value any) (host.Listener, bool) {
	switch fn := value.(type) {
	case func():
		return func(*host.Event) { fn() }, true
	case func(*host.Event):
		return fn, true
	case host.Listener:
		return fn, true
	}

	// Named function types with a supported signature
	rv := reflect.ValueOf(value)
	rt := rv.Type()
	if rt.Kind() != reflect.Func || rt.NumOut() != 0 {
		return nil, false
	}
	switch {
	case rt.NumIn() == 0:
		return func(*host.Event) { rv.Call(nil) }, true
	case rt.NumIn() == 1 && rt.In(0) == reflect.TypeOf((*host.Event)(nil)):
		return func(e *host.Event) { rv.Call([]reflect.Value{reflect.ValueOf(e)}) }, true
	}
	return nil, false
}
