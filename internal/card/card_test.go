package card

import (
	"errors"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/ziadkadry99/orgsite/internal/dom"
	"github.com/ziadkadry99/orgsite/internal/modal"
)

func templatePart(layout string) string {
	return `<div class="card ` + layout + ` template">
  <div class="` + layout + `-img"></div>
  <div class="` + layout + `-content">
    <h3 class="` + layout + `-title"></h3>
    <h4 class="` + layout + `-subtitle"></h4>
    <p class="` + layout + `-description"></p>
  </div>
</div>`
}

var fixture = `<!DOCTYPE html><html><body>
<div id="list"></div>
<div id="modal"><div class="modal-header"><h2 class="modal-title"></h2><span class="modal-close">x</span></div>
<div class="modal-content"><h3 class="modal-subtitle"></h3><p class="modal-description"></p></div></div>
<div id="templates">` + templatePart("card-h") + templatePart("card-v") + templatePart("card-sm") + `</div>
</body></html>`

func setup(t *testing.T) (*goquery.Document, *dom.Dispatcher, *modal.Controller, *Renderer) {
	t.Helper()
	doc, err := dom.ParseString(fixture)
	if err != nil {
		t.Fatal(err)
	}
	events := dom.NewDispatcher()
	m, err := modal.New(doc.Selection, events)
	if err != nil {
		t.Fatal(err)
	}
	r, err := NewRenderer(doc.Selection, m)
	if err != nil {
		t.Fatal(err)
	}
	return doc, events, m, r
}

func TestRenderEmptyCard(t *testing.T) {
	_, _, _, r := setup(t)
	c, err := r.Render(Fields{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if !c.HasClass("card-h") {
		t.Error("empty layout should default to card-h")
	}
	if c.HasClass("template") {
		t.Error("template class should be removed")
	}
	if c.HasClass("clickable") {
		t.Error("card without modal should not be clickable")
	}
	if c.Find("img").Length() != 0 {
		t.Error("no image expected")
	}
	if c.Find("a").Length() != 0 {
		t.Error("no link expected")
	}
	if c.Find(".card-h-description").Length() != 0 {
		t.Error("description node should be removed")
	}
	if c.Find(".card-h-title").Length() != 1 {
		t.Error("title node should stay")
	}
}

func TestRenderFull(t *testing.T) {
	_, _, _, r := setup(t)
	c, err := r.Render(Fields{
		Layout:          Vertical,
		ImgPath:         "img/a.png",
		Title:           "Launch",
		Subtitle:        "2024-01-01",
		Description:     "We launched.",
		ShowDescription: true,
		URL:             "https://example.org",
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if alt, _ := c.Find(".card-v-img img").Attr("alt"); alt != "Launch" {
		t.Errorf("alt = %q", alt)
	}
	if got := c.Find(".card-v-title").Text(); got != "Launch" {
		t.Errorf("title = %q", got)
	}
	if got := c.Find(".card-v-subtitle").Text(); got != "2024-01-01" {
		t.Errorf("subtitle = %q", got)
	}
	if got := c.Find(".card-v-description").Text(); got != "We launched." {
		t.Errorf("description = %q", got)
	}
	link := c.Find(".card-v-content > a")
	if link.Text() != DefaultURLText {
		t.Errorf("link text = %q", link.Text())
	}
	if id, _ := c.Attr("id"); !strings.HasPrefix(id, "card-") {
		t.Errorf("id = %q", id)
	}
}

func TestRenderDescriptionRules(t *testing.T) {
	_, _, _, r := setup(t)
	tests := []struct {
		name string
		desc string
		show bool
		want bool
	}{
		{"shown", "text", true, true},
		{"not requested", "text", false, false},
		{"empty", "", true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := r.Render(Fields{Layout: Small, Description: tt.desc, ShowDescription: tt.show})
			if err != nil {
				t.Fatal(err)
			}
			if got := c.Find(".card-sm-description").Length() == 1; got != tt.want {
				t.Errorf("description present = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRenderAltFallback(t *testing.T) {
	_, _, _, r := setup(t)
	c, err := r.Render(Fields{ImgPath: "x.png"})
	if err != nil {
		t.Fatal(err)
	}
	if alt, _ := c.Find("img").Attr("alt"); alt != DefaultAlt {
		t.Errorf("alt = %q, want %q", alt, DefaultAlt)
	}
}

func TestRenderUnknownLayout(t *testing.T) {
	_, _, _, r := setup(t)
	_, err := r.Render(Fields{Layout: "card-xl"})
	if !errors.Is(err, dom.ErrNodeNotFound) {
		t.Errorf("expected ErrNodeNotFound, got %v", err)
	}
}

func TestRenderWithModal(t *testing.T) {
	doc, events, m, r := setup(t)
	c, err := r.Render(Fields{
		Layout:      Vertical,
		Modal:       true,
		Title:       "Project",
		Description: "hidden on the card, shown in the modal",
		URL:         "https://example.org",
	})
	if err != nil {
		t.Fatal(err)
	}
	doc.Find("#list").AppendSelection(c)
	card := doc.Find("#list .card")

	if !card.HasClass("clickable") {
		t.Error("modal card should be clickable")
	}

	events.Click(card.Find("a"))
	if m.Visible() {
		t.Error("link click must not open the modal")
	}

	events.Click(card.Find(".card-v-title"))
	got, ok := m.Current()
	if !ok {
		t.Fatal("modal should be open")
	}
	if got.Description != "hidden on the card, shown in the modal" {
		t.Errorf("modal description = %q", got.Description)
	}
	if got.Subtitle != modal.DefaultSubtitle {
		t.Errorf("modal subtitle = %q", got.Subtitle)
	}
}

func TestRenderModalWithoutController(t *testing.T) {
	doc, _, _, _ := setup(t)
	r, err := NewRenderer(doc.Selection, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r.Render(Fields{Modal: true}); !errors.Is(err, ErrNoModal) {
		t.Errorf("expected ErrNoModal, got %v", err)
	}
}

func TestRenderIDs(t *testing.T) {
	_, _, _, r := setup(t)
	a, _ := r.Render(Fields{Title: "Same"})
	b, _ := r.Render(Fields{Title: "Same"})
	c, _ := r.Render(Fields{Title: "Other"})

	idA, _ := a.Attr("id")
	idB, _ := b.Attr("id")
	idC, _ := c.Attr("id")
	if idB != idA+"-2" {
		t.Errorf("repeat id = %q, want %q", idB, idA+"-2")
	}
	if idC == idA {
		t.Error("different cards should get different ids")
	}

	_, _, _, fresh := setup(t)
	again, _ := fresh.Render(Fields{Title: "Same"})
	if id, _ := again.Attr("id"); id != idA {
		t.Errorf("ids should be stable across documents: %q != %q", id, idA)
	}
}

func TestNewRendererMissingTemplates(t *testing.T) {
	doc, err := dom.ParseString(`<html><body></body></html>`)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewRenderer(doc.Selection, nil); !errors.Is(err, dom.ErrNodeNotFound) {
		t.Errorf("expected ErrNodeNotFound, got %v", err)
	}
}
