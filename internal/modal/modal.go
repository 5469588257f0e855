// Package modal drives the single shared overlay dialog that cards open
// when clicked.
package modal

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/PuerkitoBio/goquery"

	"github.com/ziadkadry99/orgsite/internal/content"
	"github.com/ziadkadry99/orgsite/internal/dom"
)

// Fallback texts shown when a card leaves a field empty.
const (
	DefaultTitle       = "No title"
	DefaultSubtitle    = "N/A"
	DefaultDescription = "No description"
	DefaultLinkText    = "More details"
)

// Selectors of the modal markup. The first four must exist; the others are
// filled only when the layout provides them.
const (
	RootSelector        = "#modal"
	titleSelector       = ".modal-header .modal-title"
	closeSelector       = ".modal-header .modal-close"
	subtitleSelector    = ".modal-content .modal-subtitle"
	descriptionSelector = ".modal-content .modal-description"
	imageSelector       = ".modal-img"
	linkSelector        = ".modal-link"
	socialsSelector     = ".modal-socials"
	badgeSelector       = ".modal-badge"
)

// Content is what the modal shows.
type Content struct {
	Title       string
	Subtitle    string
	Description string
	ImgPath     string
	URL         string
	URLText     string
	Email       string
	Socials     []content.Social
	IsDev       bool
}

// withDefaults fills the fallback texts.
func (c Content) withDefaults() Content {
	if c.Title == "" {
		c.Title = DefaultTitle
	}
	if c.Subtitle == "" {
		c.Subtitle = DefaultSubtitle
	}
	if c.Description == "" {
		c.Description = DefaultDescription
	}
	if c.URL != "" && c.URLText == "" {
		c.URLText = DefaultLinkText
	}
	return c
}

// Controller owns the overlay. It is either hidden or showing exactly one
// Content; opening it again replaces what is shown.
type Controller struct {
	events *dom.Dispatcher

	root        *goquery.Selection
	title       *goquery.Selection
	subtitle    *goquery.Selection
	description *goquery.Selection
	image       *goquery.Selection
	link        *goquery.Selection
	socials     *goquery.Selection
	badge       *goquery.Selection

	current *Content
}

// New finds the modal in doc, hides it and registers its close handlers.
func New(doc *goquery.Selection, events *dom.Dispatcher) (*Controller, error) {
	root, err := dom.Require(doc, RootSelector)
	if err != nil {
		return nil, fmt.Errorf("modal: %w", err)
	}
	c := &Controller{
		events:  events,
		root:    root,
		image:   root.Find(imageSelector).First(),
		link:    root.Find(linkSelector).First(),
		socials: root.Find(socialsSelector).First(),
		badge:   root.Find(badgeSelector).First(),
	}
	required := []struct {
		selector string
		dst      **goquery.Selection
	}{
		{titleSelector, &c.title},
		{subtitleSelector, &c.subtitle},
		{descriptionSelector, &c.description},
	}
	for _, r := range required {
		found, err := dom.Require(root, r.selector)
		if err != nil {
			return nil, fmt.Errorf("modal: %w", err)
		}
		*r.dst = found
	}
	closeBtn, err := dom.Require(root, closeSelector)
	if err != nil {
		return nil, fmt.Errorf("modal: %w", err)
	}

	closeBtn.AddClass("clickable")
	events.On(closeBtn, func(dom.Event) { c.Close() })

	// only a click on the backdrop itself closes; clicks inside the dialog
	// bubble up here too
	rootNode := root.Get(0)
	events.On(root, func(e dom.Event) {
		if e.Target == rootNode {
			c.Close()
		}
	})

	c.clear()
	dom.SetHidden(c.root, true)
	return c, nil
}

// Open shows ct, replacing whatever was shown before.
func (c *Controller) Open(ct Content) {
	c.clear()
	ct = ct.withDefaults()

	c.title.SetText(ct.Title)
	c.subtitle.SetText(ct.Subtitle)
	c.description.SetText(ct.Description)

	if ct.ImgPath != "" && c.image.Length() > 0 {
		dom.Append(c.image, dom.Element("img", dom.Attr("src", ct.ImgPath), dom.Attr("alt", ct.Title)))
	}
	if ct.URL != "" && c.link.Length() > 0 {
		dom.Append(c.link, dom.TextElement("a", ct.URLText,
			dom.Attr("href", ct.URL), dom.Attr("target", "_blank"), dom.Attr("rel", "noopener")))
	}
	if c.socials.Length() > 0 {
		if ct.Email != "" {
			li := dom.Append(c.socials, dom.Element("li"))
			dom.Append(li, dom.TextElement("a", ct.Email, dom.Attr("href", "mailto:"+ct.Email)))
		}
		for _, s := range ct.Socials {
			li := dom.Append(c.socials, dom.Element("li"))
			dom.Append(li, dom.TextElement("a", s.Name,
				dom.Attr("href", s.URL), dom.Attr("target", "_blank"), dom.Attr("rel", "noopener")))
		}
	}
	dom.SetHidden(c.badge, !ct.IsDev)

	dom.SetHidden(c.root, false)
	c.current = &ct
}

// Close hides the overlay and clears everything Open filled in.
func (c *Controller) Close() {
	dom.SetHidden(c.root, true)
	c.clear()
	c.current = nil
}

// Visible reports whether the overlay is showing.
func (c *Controller) Visible() bool {
	return c.current != nil
}

// Current returns the shown content with fallbacks applied.
func (c *Controller) Current() (Content, bool) {
	if c.current == nil {
		return Content{}, false
	}
	return *c.current, true
}

// Bind makes a click on el open the modal with ct. Clicks on links inside
// el are left alone so the link can be followed. The content is also
// written to data-modal-* attributes for the browser script.
func (c *Controller) Bind(el *goquery.Selection, ct Content) {
	links := el.Find("a")
	c.events.On(el, func(e dom.Event) {
		if e.Within(links) {
			return
		}
		c.Open(ct)
	})
	el.AddClass("clickable")

	ct = ct.withDefaults()
	el.SetAttr("data-modal-title", ct.Title)
	el.SetAttr("data-modal-subtitle", ct.Subtitle)
	el.SetAttr("data-modal-description", ct.Description)
	setOptional(el, "data-modal-img", ct.ImgPath)
	setOptional(el, "data-modal-url", ct.URL)
	setOptional(el, "data-modal-url-text", ct.URLText)
	setOptional(el, "data-modal-email", ct.Email)
	if len(ct.Socials) > 0 {
		if raw, err := json.Marshal(ct.Socials); err == nil {
			el.SetAttr("data-modal-socials", string(raw))
		}
	}
	if ct.IsDev {
		el.SetAttr("data-modal-dev", strconv.FormatBool(true))
	}
}

func (c *Controller) clear() {
	c.title.SetText("")
	c.subtitle.SetText("")
	c.description.SetText("")
	c.image.Empty()
	c.link.Empty()
	c.socials.Empty()
	dom.SetHidden(c.badge, true)
}

func setOptional(el *goquery.Selection, attr, val string) {
	if val != "" {
		el.SetAttr(attr, val)
	}
}
