package host

// Listener handles an event dispatched to a node.
type Listener func(*Event)

// Event is a host event. Type is the lowercase event name, e.g. "click".
type Event struct {
	Type   string
	Target *Node
	// CurrentTarget is the node whose listeners are running.
	CurrentTarget *Node
	Value         string

	stopped bool
}

// StopPropagation keeps the event from reaching further ancestors.
func (e *Event) StopPropagation() { e.stopped = true }

// AddEventListener registers l for events of the given type.
func (n *Node) AddEventListener(event string, l Listener) {
	if n.listeners == nil {
		n.listeners = make(map[string][]Listener)
	}
	n.listeners[event] = append(n.listeners[event], l)
}

// ListenerCount returns the number of listeners registered for event.
func (n *Node) ListenerCount(event string) int {
	return len(n.listeners[event])
}

// Dispatch delivers ev to n and then to its ancestors until a listener stops
// propagation. It returns the number of listeners invoked.
func (n *Node) Dispatch(ev *Event) int {
	if ev.Target == nil {
		ev.Target = n
	}
	called := 0
	for cur := n; cur != nil && !ev.stopped; cur = cur.parent {
		listeners := cur.listeners[ev.Type]
		if len(listeners) == 0 {
			continue
		}
		ev.CurrentTarget = cur
		for _, l := range listeners {
			l(ev)
			called++
		}
	}
	ev.CurrentTarget = nil
	return called
}
