package protocol

// Event is a client event addressed by the child index path from the
// session's host root to the target node.
type Event struct {
	Path  []int
	Name  string
	Value string
}

// EncodeEvent appends ev to e.
//
//	Event: pathLen:uvarint index:uvarint* name:string value:string
func EncodeEvent(e *Encoder, ev *Event) {
	e.WriteUvarint(uint64(len(ev.Path)))
	for _, index := range ev.Path {
		e.WriteUvarint(uint64(index))
	}
	e.WriteString(ev.Name)
	e.WriteString(ev.Value)
}

// DecodeEvent reads an event written by EncodeEvent.
func DecodeEvent(d *Decoder) (*Event, error) {
	n, err := d.ReadCollectionCount()
	if err != nil {
		return nil, err
	}
	if err := checkDepth(n, MaxNodeDepth); err != nil {
		return nil, err
	}

	ev := &Event{Path: make([]int, n)}
	for i := range ev.Path {
		index, err := d.ReadUvarint()
		if err != nil {
			return nil, err
		}
		if index > MaxCollectionCount {
			return nil, ErrCollectionTooLarge
		}
		ev.Path[i] = int(index)
	}
	if ev.Name, err = d.ReadString(); err != nil {
		return nil, err
	}
	if ev.Value, err = d.ReadString(); err != nil {
		return nil, err
	}
	return ev, nil
}
