// Package dom is a small headless DOM layer over goquery. It lets the page
// components clone template nodes, look up required elements and simulate
// the click events a browser would deliver.
package dom

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrNodeNotFound is returned when a selector that must match does not.
var ErrNodeNotFound = errors.New("node not found")

// Parse reads a complete HTML document.
func Parse(r io.Reader) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	return doc, nil
}

// ParseString is Parse for in-memory markup.
func ParseString(markup string) (*goquery.Document, error) {
	return Parse(strings.NewReader(markup))
}

// Require returns the first element under sel matching selector.
func Require(sel *goquery.Selection, selector string) (*goquery.Selection, error) {
	found := sel.Find(selector).First()
	if found.Length() == 0 {
		return nil, fmt.Errorf("%q: %w", selector, ErrNodeNotFound)
	}
	return found, nil
}

// Element builds a detached element node.
func Element(tag string, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
		Attr:     attrs,
	}
}

// Attr is shorthand for an html.Attribute.
func Attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

// TextElement builds a detached element whose only child is a text node.
func TextElement(tag, text string, attrs ...html.Attribute) *html.Node {
	n := Element(tag, attrs...)
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return n
}

// Append attaches n as the last child of the first node in parent and
// returns a selection wrapping it.
func Append(parent *goquery.Selection, n *html.Node) *goquery.Selection {
	first := parent.First()
	first.AppendNodes(n)
	return first.FindNodes(n)
}

// SetHidden toggles the boolean hidden attribute on every node in sel.
func SetHidden(sel *goquery.Selection, hidden bool) {
	if hidden {
		sel.SetAttr("hidden", "")
		return
	}
	sel.RemoveAttr("hidden")
}

// IsHidden reports whether the first node in sel carries the hidden attribute.
func IsHidden(sel *goquery.Selection) bool {
	_, ok := sel.First().Attr("hidden")
	return ok
}

// Contains reports whether n is ancestor or one of its descendants.
func Contains(ancestor, n *html.Node) bool {
	for ; n != nil; n = n.Parent {
		if n == ancestor {
			return true
		}
	}
	return false
}
