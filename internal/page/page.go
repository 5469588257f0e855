// Package page runs the binding pass over a parsed page shell: it fills
// every section from the content collections and wires the interactive
// components together.
package page

import (
	"context"
	"fmt"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/ziadkadry99/orgsite/internal/card"
	"github.com/ziadkadry99/orgsite/internal/carousel"
	"github.com/ziadkadry99/orgsite/internal/content"
	"github.com/ziadkadry99/orgsite/internal/dom"
	"github.com/ziadkadry99/orgsite/internal/logging"
	"github.com/ziadkadry99/orgsite/internal/modal"
	"github.com/ziadkadry99/orgsite/internal/nav"
	"github.com/ziadkadry99/orgsite/internal/officers"
)

const (
	contentSelector  = ".section-content"
	noDataSelector   = ".nodata"
	featuredSelector = "#featured"
	carouselSelector = "#featured .carousel"
	officersSection  = "officers"
)

// Options tune the binding pass.
type Options struct {
	CarouselInterval time.Duration
	OfficerPolicy    officers.Policy
	Navigation       []nav.Control
	// Initial is the section shown first. Empty means the first control's
	// target.
	Initial string
}

// Entry describes one rendered card.
type Entry struct {
	Section     string
	CardID      string
	Title       string
	Subtitle    string
	Description string
}

// Page is a bound document together with its live components.
type Page struct {
	Doc      *goquery.Document
	Events   *dom.Dispatcher
	Modal    *modal.Controller
	Carousel *carousel.Carousel
	Nav      *nav.Controller
	Entries  []Entry
	Officers int
}

type binding struct {
	section string
	fields  func(content.Collections) []card.Fields
}

// bindings lists the card sections in document order.
var bindings = []binding{
	{"home-news", func(c content.Collections) []card.Fields { return newsCards(c.HomeNews, card.Horizontal) }},
	{"home-gallery", func(c content.Collections) []card.Fields { return galleryCards(c.HomeGallery, card.Horizontal) }},
	{"home-projects", func(c content.Collections) []card.Fields { return projectCards(c.HomeProjects, card.Horizontal) }},
	{"news", func(c content.Collections) []card.Fields { return newsCards(c.News, card.Vertical) }},
	{"gallery", func(c content.Collections) []card.Fields { return galleryCards(c.Gallery, card.Vertical) }},
	{"projects-done", func(c content.Collections) []card.Fields { return projectCards(c.ProjectsDone, card.Vertical) }},
}

// Bind populates doc from c. A section node that the data needs but the
// shell lacks aborts the pass with an error wrapping dom.ErrNodeNotFound.
func Bind(ctx context.Context, doc *goquery.Document, c content.Collections, opts Options) (*Page, error) {
	log := logging.FromContext(ctx)
	p := &Page{Doc: doc, Events: dom.NewDispatcher()}

	var err error
	if p.Modal, err = modal.New(doc.Selection, p.Events); err != nil {
		return nil, err
	}
	renderer, err := card.NewRenderer(doc.Selection, p.Modal)
	if err != nil {
		return nil, err
	}

	for _, b := range bindings {
		fields := b.fields(c)
		if len(fields) == 0 {
			continue
		}
		box, err := sectionContent(doc, b.section)
		if err != nil {
			return nil, err
		}
		box.Find(noDataSelector).Remove()
		for _, f := range fields {
			el, err := renderer.Render(f)
			if err != nil {
				return nil, fmt.Errorf("section %s: %w", b.section, err)
			}
			box.AppendSelection(el)
			id, _ := el.Attr("id")
			p.Entries = append(p.Entries, Entry{
				Section:     b.section,
				CardID:      id,
				Title:       f.Title,
				Subtitle:    f.Subtitle,
				Description: f.Description,
			})
		}
		log.Debug("bound section", "section", b.section, "cards", len(fields))
	}

	if err := p.bindCarousel(doc, c.Featured, opts.CarouselInterval); err != nil {
		return nil, err
	}
	if err := p.bindOfficers(doc, renderer, c.Officers, opts.OfficerPolicy); err != nil {
		return nil, err
	}

	if p.Nav, err = nav.New(doc.Selection, opts.Navigation, p.Events); err != nil {
		return nil, err
	}
	initial := opts.Initial
	if initial == "" && len(opts.Navigation) > 0 {
		initial = opts.Navigation[0].Target
	}
	if initial != "" {
		if err := p.Nav.Show(initial); err != nil {
			return nil, err
		}
	}

	doc.Find(card.TemplatesSelector).Remove()
	return p, nil
}

func (p *Page) bindCarousel(doc *goquery.Document, items []content.Featured, interval time.Duration) error {
	root := doc.Find(carouselSelector).First()
	if root.Length() == 0 {
		if len(items) == 0 {
			return nil
		}
		return fmt.Errorf("featured: %q: %w", carouselSelector, dom.ErrNodeNotFound)
	}
	tmpl := doc.Find(card.TemplatesSelector + " " + carousel.TemplateSelector)
	car, err := carousel.Build(root, tmpl, items, interval, p.Events)
	if err != nil {
		return err
	}
	if len(items) > 0 {
		doc.Find(featuredSelector + " " + noDataSelector).Remove()
	}
	p.Carousel = car
	return nil
}

func (p *Page) bindOfficers(doc *goquery.Document, r *card.Renderer, roster []content.Officer, policy officers.Policy) error {
	if len(roster) == 0 {
		return nil
	}
	if len(policy) == 0 {
		policy = officers.DefaultPolicy()
	}
	if err := policy.Validate(); err != nil {
		return err
	}
	box, err := sectionContent(doc, officersSection)
	if err != nil {
		return err
	}
	box.Find(noDataSelector).Remove()
	ids, err := officers.Render(box, officers.Partition(policy, roster), r)
	if err != nil {
		return err
	}
	for i, o := range roster {
		p.Entries = append(p.Entries, Entry{
			Section:     officersSection,
			CardID:      ids[i],
			Title:       o.Name,
			Subtitle:    o.Position,
			Description: o.Description,
		})
	}
	p.Officers = len(roster)
	return nil
}

func sectionContent(doc *goquery.Document, section string) (*goquery.Selection, error) {
	box, err := dom.Require(doc.Selection, "#"+section+" "+contentSelector)
	if err != nil {
		return nil, fmt.Errorf("section %s: %w", section, err)
	}
	return box, nil
}

func newsCards(items []content.NewsItem, layout card.Layout) []card.Fields {
	out := make([]card.Fields, 0, len(items))
	for _, n := range items {
		out = append(out, card.Fields{
			Layout:          layout,
			Modal:           true,
			ImgPath:         n.ImgPath,
			Title:           n.Title,
			Subtitle:        n.Date,
			Description:     n.Content,
			ShowDescription: true,
			URL:             n.URL,
			URLText:         n.URLText,
		})
	}
	return out
}

func galleryCards(items []content.GalleryItem, layout card.Layout) []card.Fields {
	out := make([]card.Fields, 0, len(items))
	for _, g := range items {
		out = append(out, card.Fields{
			Layout:      layout,
			Modal:       true,
			ImgPath:     g.ImgPath,
			Title:       g.Title,
			Subtitle:    g.DateShown,
			Description: g.Description,
			URL:         g.URL,
		})
	}
	return out
}

func projectCards(items []content.Project, layout card.Layout) []card.Fields {
	out := make([]card.Fields, 0, len(items))
	for _, pr := range items {
		text := pr.URLText
		if text == "" {
			text = "Project link"
		}
		out = append(out, card.Fields{
			Layout:          layout,
			Modal:           true,
			ImgPath:         pr.ImgPath,
			Title:           pr.Name,
			Subtitle:        pr.Subtitle(),
			Description:     pr.Description,
			ShowDescription: true,
			URL:             pr.URL,
			URLText:         text,
		})
	}
	return out
}
