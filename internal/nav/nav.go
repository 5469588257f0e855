// Package nav switches between the top-level sections of the page. Exactly
// one section is visible at a time.
package nav

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ziadkadry99/orgsite/internal/dom"
)

// SectionSelector matches the top-level sections.
const SectionSelector = "body > div.page"

var (
	ErrUnknownControl = errors.New("unknown navigation control")
	ErrUnknownSection = errors.New("unknown section")
)

// Control ties a button id to the section it reveals.
type Control struct {
	ID     string
	Target string
	Label  string
}

// Text returns the button label, derived from the target when unset.
func (c Control) Text() string {
	if c.Label != "" {
		return c.Label
	}
	return Label(c.Target)
}

// Label turns a section id such as "projects-done" into "Projects Done".
func Label(id string) string {
	words := strings.Fields(strings.NewReplacer("-", " ", "_", " ").Replace(id))
	return cases.Title(language.English).String(strings.Join(words, " "))
}

// Controller tracks the active section.
type Controller struct {
	sections *goquery.Selection
	buttons  map[string]*goquery.Selection
	controls map[string]Control
	active   string
}

// New resolves every control's button and target in doc and binds the
// buttons' clicks. No section is activated yet.
func New(doc *goquery.Selection, controls []Control, events *dom.Dispatcher) (*Controller, error) {
	c := &Controller{
		sections: doc.Find(SectionSelector),
		buttons:  make(map[string]*goquery.Selection, len(controls)),
		controls: make(map[string]Control, len(controls)),
	}
	for _, ctl := range controls {
		btn, err := dom.Require(doc, "#"+ctl.ID)
		if err != nil {
			return nil, fmt.Errorf("nav control %s: %w", ctl.ID, err)
		}
		if c.section(ctl.Target).Length() == 0 {
			return nil, fmt.Errorf("nav control %s: %w: %s", ctl.ID, ErrUnknownSection, ctl.Target)
		}
		btn.SetAttr("data-nav-target", ctl.Target)
		btn.AddClass("clickable")

		id := ctl.ID
		events.On(btn, func(dom.Event) { _ = c.Activate(id) })
		c.buttons[ctl.ID] = btn
		c.controls[ctl.ID] = ctl
	}
	return c, nil
}

func (c *Controller) section(id string) *goquery.Selection {
	return c.sections.FilterFunction(func(_ int, s *goquery.Selection) bool {
		v, _ := s.Attr("id")
		return v == id
	})
}

// Activate shows the section behind control id and hides every other one.
func (c *Controller) Activate(id string) error {
	ctl, ok := c.controls[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownControl, id)
	}
	return c.Show(ctl.Target)
}

// Show makes section the only visible one.
func (c *Controller) Show(section string) error {
	if c.section(section).Length() == 0 {
		return fmt.Errorf("%w: %s", ErrUnknownSection, section)
	}
	c.sections.Each(func(_ int, s *goquery.Selection) {
		v, _ := s.Attr("id")
		dom.SetHidden(s, v != section)
	})
	for id, btn := range c.buttons {
		if c.controls[id].Target == section {
			btn.AddClass("active")
		} else {
			btn.RemoveClass("active")
		}
	}
	c.active = section
	return nil
}

// Active returns the visible section id, or "" before the first Show.
func (c *Controller) Active() string {
	return c.active
}

// Visible lists the ids of sections without the hidden attribute.
func (c *Controller) Visible() []string {
	var ids []string
	c.sections.Each(func(_ int, s *goquery.Selection) {
		if !dom.IsHidden(s) {
			v, _ := s.Attr("id")
			ids = append(ids, v)
		}
	})
	return ids
}
