// Package carousel implements the featured-content slideshow: a 1-based
// slide index with wrap-around navigation, dot indicators and an optional
// auto-advance loop.
package carousel

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/ziadkadry99/orgsite/internal/content"
	"github.com/ziadkadry99/orgsite/internal/dom"
)

// Selectors of the carousel markup, relative to its root element.
const (
	TemplateSelector = ".slide.template"
	slidesSelector   = ".slides"
	prevSelector     = ".carousel-prev"
	nextSelector     = ".carousel-next"
	dotsSelector     = ".carousel-dots"
)

// Carousel shows one slide at a time. Index is 0 only while there are no
// slides; otherwise it stays within [1, Len()]. Methods are safe for
// concurrent use so Run can advance slides while clicks are delivered.
type Carousel struct {
	mu       sync.Mutex
	slides   []*goquery.Selection
	dots     []*goquery.Selection
	index    int
	interval time.Duration
}

// Build fills root with one slide per item, cloned from tmpl, and wires the
// previous/next arrows and dots to events. The first slide is shown.
func Build(root, tmpl *goquery.Selection, items []content.Featured, interval time.Duration, events *dom.Dispatcher) (*Carousel, error) {
	slides, err := dom.Require(root, slidesSelector)
	if err != nil {
		return nil, fmt.Errorf("carousel: %w", err)
	}
	dots, err := dom.Require(root, dotsSelector)
	if err != nil {
		return nil, fmt.Errorf("carousel: %w", err)
	}

	c := &Carousel{interval: interval}
	root.SetAttr("data-interval", strconv.FormatInt(interval.Milliseconds(), 10))

	for i, item := range items {
		slide, err := fill(tmpl, item)
		if err != nil {
			return nil, err
		}
		slides.AppendSelection(slide)
		c.slides = append(c.slides, slide)

		k := i + 1
		dot := dom.Append(dots, dom.Element("span",
			dom.Attr("class", "dot"),
			dom.Attr("data-slide", strconv.Itoa(k)),
			dom.Attr("aria-label", "Slide "+strconv.Itoa(k))))
		events.On(dot, func(dom.Event) { c.Jump(k) })
		c.dots = append(c.dots, dot)
	}

	if prev := root.Find(prevSelector); prev.Length() > 0 {
		prev.AddClass("clickable")
		events.On(prev, func(dom.Event) { c.Prev() })
	}
	if next := root.Find(nextSelector); next.Length() > 0 {
		next.AddClass("clickable")
		events.On(next, func(dom.Event) { c.Next() })
	}

	if len(c.slides) > 0 {
		c.mu.Lock()
		c.show(1)
		c.mu.Unlock()
	}
	return c, nil
}

func fill(tmpl *goquery.Selection, item content.Featured) (*goquery.Selection, error) {
	if tmpl.Length() == 0 {
		return nil, fmt.Errorf("carousel: slide template: %w", dom.ErrNodeNotFound)
	}
	slide := tmpl.First().Clone()
	slide.RemoveClass("template")

	if item.ImgPath != "" {
		holder, err := dom.Require(slide, ".slide-img")
		if err != nil {
			return nil, fmt.Errorf("carousel: %w", err)
		}
		img := dom.Element("img", dom.Attr("src", item.ImgPath), dom.Attr("alt", item.Title))
		if item.URL != "" {
			a := dom.Append(holder, dom.Element("a", dom.Attr("href", item.URL)))
			dom.Append(a, img)
		} else {
			dom.Append(holder, img)
		}
	}
	slide.Find(".slide-title").SetText(item.Title)
	slide.Find(".slide-text").SetText(item.Caption)
	return slide, nil
}

// Len returns the number of slides.
func (c *Carousel) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.slides)
}

// Index returns the 1-based index of the visible slide, or 0 when empty.
func (c *Carousel) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

// Next advances one slide, wrapping from the last to the first.
func (c *Carousel) Next() { c.step(1) }

// Prev goes back one slide, wrapping from the first to the last.
func (c *Carousel) Prev() { c.step(-1) }

// Jump shows slide k. Values outside [1, Len()] wrap around.
func (c *Carousel) Jump(k int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.slides) == 0 {
		return
	}
	c.show(k)
}

func (c *Carousel) step(delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.slides) == 0 {
		return
	}
	c.show(c.index + delta)
}

// show must be called with mu held and at least one slide.
func (c *Carousel) show(k int) {
	n := len(c.slides)
	k = ((k-1)%n+n)%n + 1
	for i, s := range c.slides {
		dom.SetHidden(s, i+1 != k)
	}
	for i, d := range c.dots {
		if i+1 == k {
			d.AddClass("active")
		} else {
			d.RemoveClass("active")
		}
	}
	c.index = k
}

// Run advances the carousel every interval until ctx is done. It returns
// immediately when there is nothing to rotate.
func (c *Carousel) Run(ctx context.Context) error {
	if c.Len() < 2 || c.interval <= 0 {
		return nil
	}
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			c.Next()
		}
	}
}
