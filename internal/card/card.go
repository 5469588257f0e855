// Package card clones the card templates of a page and fills them with
// record data.
package card

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"

	"github.com/ziadkadry99/orgsite/internal/dom"
	"github.com/ziadkadry99/orgsite/internal/modal"
)

// Layout names a card template. The value is also the CSS class prefix of
// the template's parts (".card-h-img", ".card-h-content" and so on).
type Layout string

const (
	Horizontal Layout = "card-h"
	Vertical   Layout = "card-v"
	Small      Layout = "card-sm"
)

const (
	// TemplatesSelector is the container holding every template.
	TemplatesSelector = "#templates"

	DefaultURLText = "More details"
	DefaultAlt     = "No description provided."
)

// ErrNoModal is returned when a card asks for a modal but the renderer has
// no modal controller.
var ErrNoModal = errors.New("card: no modal controller")

// idSpace namespaces the deterministic card ids.
var idSpace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("orgsite/card"))

// Fields is what a single card shows.
type Fields struct {
	Layout          Layout
	Modal           bool
	ImgPath         string
	Title           string
	Subtitle        string
	Description     string
	ShowDescription bool
	URL             string
	URLText         string

	// Extra carries modal-only data such as an officer's contacts. Its
	// text fields are overwritten with the card's own.
	Extra modal.Content
}

// Renderer clones templates out of one document. It is not safe for
// concurrent use.
type Renderer struct {
	templates *goquery.Selection
	modal     *modal.Controller
	seen      map[string]int
}

// NewRenderer locates the template container in doc. m may be nil when no
// card will ask for a modal.
func NewRenderer(doc *goquery.Selection, m *modal.Controller) (*Renderer, error) {
	templates, err := dom.Require(doc, TemplatesSelector)
	if err != nil {
		return nil, fmt.Errorf("card: %w", err)
	}
	return &Renderer{templates: templates, modal: m, seen: make(map[string]int)}, nil
}

// Render clones the template for f.Layout and fills it. The returned card is
// detached; the caller appends it where it belongs.
func (r *Renderer) Render(f Fields) (*goquery.Selection, error) {
	layout := f.Layout
	if layout == "" {
		layout = Horizontal
	}
	prefix := "." + string(layout)

	tmpl, err := dom.Require(r.templates, ".card"+prefix+".template")
	if err != nil {
		return nil, fmt.Errorf("card %s: %w", layout, err)
	}
	clone := tmpl.Clone()

	if f.ImgPath != "" {
		holder, err := dom.Require(clone, prefix+"-img")
		if err != nil {
			return nil, fmt.Errorf("card %s: %w", layout, err)
		}
		alt := f.Title
		if alt == "" {
			alt = DefaultAlt
		}
		dom.Append(holder, dom.Element("img", dom.Attr("src", f.ImgPath), dom.Attr("alt", alt)))
	}

	if f.Title != "" {
		if err := setText(clone, prefix+"-content "+prefix+"-title", f.Title); err != nil {
			return nil, fmt.Errorf("card %s: %w", layout, err)
		}
	}
	if f.Subtitle != "" {
		if err := setText(clone, prefix+"-content "+prefix+"-subtitle", f.Subtitle); err != nil {
			return nil, fmt.Errorf("card %s: %w", layout, err)
		}
	}

	descSel := prefix + "-content " + prefix + "-description"
	if f.Description != "" && f.ShowDescription {
		if err := setText(clone, descSel, f.Description); err != nil {
			return nil, fmt.Errorf("card %s: %w", layout, err)
		}
	} else {
		clone.Find(descSel).First().Remove()
	}

	if f.URL != "" {
		body, err := dom.Require(clone, prefix+"-content")
		if err != nil {
			return nil, fmt.Errorf("card %s: %w", layout, err)
		}
		text := f.URLText
		if text == "" {
			text = DefaultURLText
		}
		dom.Append(body, dom.TextElement("a", text, dom.Attr("href", f.URL)))
	}

	clone.RemoveClass("template")
	clone.SetAttr("id", r.id(layout, f))

	if f.Modal {
		if r.modal == nil {
			return nil, ErrNoModal
		}
		ct := f.Extra
		ct.Title = f.Title
		ct.Subtitle = f.Subtitle
		ct.Description = f.Description
		if ct.ImgPath == "" {
			ct.ImgPath = f.ImgPath
		}
		if ct.URL == "" {
			ct.URL, ct.URLText = f.URL, f.URLText
		}
		r.modal.Bind(clone, ct)
	}
	return clone, nil
}

// id derives a stable element id from the card's identity. Repeats of the
// same card get a numeric suffix.
func (r *Renderer) id(layout Layout, f Fields) string {
	key := string(layout) + "\x00" + f.Title + "\x00" + f.Subtitle + "\x00" + f.ImgPath
	id := "card-" + uuid.NewSHA1(idSpace, []byte(key)).String()[:13]
	r.seen[id]++
	if n := r.seen[id]; n > 1 {
		id += "-" + strconv.Itoa(n)
	}
	return id
}

func setText(root *goquery.Selection, selector, text string) error {
	el, err := dom.Require(root, selector)
	if err != nil {
		return err
	}
	el.SetText(text)
	return nil
}
