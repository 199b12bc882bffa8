package dom

import "golang.org/x/net/html"

// Event types dispatched by the board.
const (
	EventSubmit    = "submit"
	EventDragStart = "dragstart"
	EventDragEnd   = "dragend"
	EventDragOver  = "dragover"
	EventDragLeave = "dragleave"
	EventDrop      = "drop"
)

// Event is dispatched at a target element and bubbles up through its ancestors.
type Event struct {
	Type         string
	Target       *html.Node
	DataTransfer *DataTransfer

	// CurrentTarget is the element whose listener is running.
	CurrentTarget *html.Node

	defaultPrevented bool
	stopped          bool
}

func NewEvent(typ string) *Event { return &Event{Type: typ} }

// NewDragEvent returns an event carrying dt (a fresh DataTransfer when dt is nil).
func NewDragEvent(typ string, dt *DataTransfer) *Event {
	if dt == nil {
		dt = NewDataTransfer()
	}
	return &Event{Type: typ, DataTransfer: dt}
}

func (e *Event) PreventDefault()        { e.defaultPrevented = true }
func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }
func (e *Event) StopPropagation()       { e.stopped = true }

// DataTransfer is the payload carried by a drag: typed string entries in insertion
// order plus the allowed effect.
type DataTransfer struct {
	EffectAllowed string
	DropEffect    string

	types []string
	data  map[string]string
}

func NewDataTransfer() *DataTransfer {
	return &DataTransfer{EffectAllowed: "uninitialized", DropEffect: "none", data: map[string]string{}}
}

func (dt *DataTransfer) SetData(typ, val string) {
	if _, ok := dt.data[typ]; !ok {
		dt.types = append(dt.types, typ)
	}
	dt.data[typ] = val
}

// GetData returns the value stored for typ, or "".
func (dt *DataTransfer) GetData(typ string) string { return dt.data[typ] }

func (dt *DataTransfer) Types() []string {
	out := make([]string, len(dt.types))
	copy(out, dt.types)
	return out
}

// Handler handles one event; the receiver it needs is captured by the closure at
// registration time.
type Handler func(ev *Event)

type listener struct {
	typ string
	fn  Handler
}

func (d *Document) AddEventListener(n *html.Node, typ string, fn Handler) {
	if n == nil || fn == nil {
		return
	}
	d.listeners[n] = append(d.listeners[n], listener{typ: typ, fn: fn})
}

// Dispatch runs ev at target then at each ancestor, listeners in registration order,
// until a listener calls StopPropagation. It reports whether the default was prevented.
func (d *Document) Dispatch(target *html.Node, ev *Event) bool {
	ev.Target = target
	for n := target; n != nil && !ev.stopped; n = n.Parent {
		ls := d.listeners[n]
		if len(ls) == 0 {
			continue
		}
		ev.CurrentTarget = n
		// Copy: a listener may register or clear listeners while running.
		snapshot := append([]listener(nil), ls...)
		for _, l := range snapshot {
			if l.typ == ev.Type {
				l.fn(ev)
			}
		}
	}
	ev.CurrentTarget = nil
	return ev.defaultPrevented
}
