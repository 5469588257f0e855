// Package officers lays the roster out as a sequence of grids. A policy of
// breakpoints decides, as the running officer count reaches each
// threshold, whether a section header goes in and how many columns the next
// grid has.
package officers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/PuerkitoBio/goquery"

	"github.com/ziadkadry99/orgsite/internal/card"
	"github.com/ziadkadry99/orgsite/internal/content"
	"github.com/ziadkadry99/orgsite/internal/dom"
	"github.com/ziadkadry99/orgsite/internal/modal"
)

// ErrInvalidPolicy is returned for breakpoint lists that cannot lay out a
// roster.
var ErrInvalidPolicy = errors.New("invalid officer layout policy")

// Breakpoint starts a new grid once AfterCount officers have been placed.
type Breakpoint struct {
	AfterCount int
	Header     string
	Columns    int
}

// Policy is an ordered breakpoint list. The first breakpoint is at 0 and
// thresholds strictly increase.
type Policy []Breakpoint

// DefaultPolicy is the layout the organization's page has always used.
func DefaultPolicy() Policy {
	return Policy{
		{AfterCount: 0, Columns: 3},
		{AfterCount: 3, Columns: 4},
		{AfterCount: 11, Header: "Finance", Columns: 3},
		{AfterCount: 14, Header: "Events & Logistics", Columns: 4},
		{AfterCount: 18, Header: "Creatives", Columns: 4},
		{AfterCount: 22, Header: "Web Development", Columns: 4},
		{AfterCount: 26, Columns: 4},
	}
}

// Validate checks the policy's ordering rules.
func (p Policy) Validate() error {
	if len(p) == 0 {
		return fmt.Errorf("%w: no breakpoints", ErrInvalidPolicy)
	}
	if p[0].AfterCount != 0 {
		return fmt.Errorf("%w: first breakpoint must be at 0, got %d", ErrInvalidPolicy, p[0].AfterCount)
	}
	for i, bp := range p {
		if bp.Columns <= 0 {
			return fmt.Errorf("%w: breakpoint %d has %d columns", ErrInvalidPolicy, bp.AfterCount, bp.Columns)
		}
		if i > 0 && bp.AfterCount <= p[i-1].AfterCount {
			return fmt.Errorf("%w: breakpoint %d does not follow %d", ErrInvalidPolicy, bp.AfterCount, p[i-1].AfterCount)
		}
	}
	return nil
}

// Batch is one grid of consecutive officers.
type Batch struct {
	Header   string
	Columns  int
	Start    int
	Officers []content.Officer
}

// Partition walks the roster in order and starts a new batch each time the
// running count hits a breakpoint. Breakpoints the roster never reaches
// produce nothing. An invalid policy yields no batches.
func Partition(p Policy, roster []content.Officer) []Batch {
	if p.Validate() != nil {
		return nil
	}
	var batches []Batch
	next := 0
	for i, o := range roster {
		if next < len(p) && p[next].AfterCount == i {
			batches = append(batches, Batch{Header: p[next].Header, Columns: p[next].Columns, Start: i})
			next++
		}
		last := &batches[len(batches)-1]
		last.Officers = append(last.Officers, o)
	}
	return batches
}

// Render appends the batches to container: an optional header followed by a
// grid of small cards, each opening the modal with the officer's details.
// It returns the rendered card ids in roster order.
func Render(container *goquery.Selection, batches []Batch, r *card.Renderer) ([]string, error) {
	var ids []string
	for _, b := range batches {
		if b.Header != "" {
			dom.Append(container, dom.TextElement("h2", b.Header, dom.Attr("class", "officer-header")))
		}
		grid := dom.Append(container, dom.Element("div",
			dom.Attr("class", "officer-grid grid-cols-"+strconv.Itoa(b.Columns)),
			dom.Attr("data-start", strconv.Itoa(b.Start))))
		for _, o := range b.Officers {
			c, err := r.Render(Fields(o))
			if err != nil {
				return nil, fmt.Errorf("officer %q: %w", o.Name, err)
			}
			if o.IsDev {
				c.AddClass("dev")
			}
			grid.AppendSelection(c)
			id, _ := c.Attr("id")
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// Fields maps an officer onto a small modal card.
func Fields(o content.Officer) card.Fields {
	return card.Fields{
		Layout:      card.Small,
		Modal:       true,
		ImgPath:     o.ImgPath,
		Title:       o.Name,
		Subtitle:    o.Position,
		Description: o.Description,
		Extra: modal.Content{
			Email:   o.Email,
			Socials: o.Socials,
			IsDev:   o.IsDev,
		},
	}
}
