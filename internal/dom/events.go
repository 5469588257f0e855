package dom

import (
	"sync"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Event is delivered to click handlers. Target is the node that was clicked;
// Current is the node the handler was registered on.
type Event struct {
	Target  *html.Node
	Current *html.Node
}

// Within reports whether the event target is inside any node of sel.
func (e Event) Within(sel *goquery.Selection) bool {
	for _, n := range sel.Nodes {
		if Contains(n, e.Target) {
			return true
		}
	}
	return false
}

// Handler reacts to a click.
type Handler func(Event)

// Dispatcher records click handlers per node and replays clicks with
// bubbling, the way a browser does.
type Dispatcher struct {
	mu       sync.Mutex
	handlers map[*html.Node][]Handler
}

// NewDispatcher returns an empty Dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[*html.Node][]Handler)}
}

// On registers h for clicks on every node in sel.
func (d *Dispatcher) On(sel *goquery.Selection, h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, n := range sel.Nodes {
		d.handlers[n] = append(d.handlers[n], h)
	}
}

// Click delivers a click on the first node of target, bubbling from the
// target up to the document root.
func (d *Dispatcher) Click(target *goquery.Selection) {
	if target.Length() == 0 {
		return
	}
	node := target.Get(0)

	type call struct {
		current *html.Node
		h       Handler
	}
	var calls []call
	d.mu.Lock()
	for n := node; n != nil; n = n.Parent {
		for _, h := range d.handlers[n] {
			calls = append(calls, call{current: n, h: h})
		}
	}
	d.mu.Unlock()

	for _, c := range calls {
		c.h(Event{Target: node, Current: c.current})
	}
}

// Bound reports whether any handler is registered on the first node of sel.
func (d *Dispatcher) Bound(sel *goquery.Selection) bool {
	if sel.Length() == 0 {
		return false
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.handlers[sel.Get(0)]) > 0
}
