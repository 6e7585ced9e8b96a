// Package parser provides the HTML checklist extraction engine.
package parser

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Element is the minimal view of a parsed HTML node the engine depends on.
type Element interface {
	// Tag returns the lower-case element name ("#document" for the root).
	Tag() string
	// Attr returns the attribute value and whether it is present.
	Attr(name string) (string, bool)
	// Children returns the element children in document order.
	Children() []Element
	// Descendants returns all descendants matching selector, in document order.
	Descendants(selector string) []Element
	// Text returns the concatenated text of the subtree.
	Text() string
	// InnerMarkup returns the serialized children of the node.
	InnerMarkup() string
}

// ParseDocument parses a complete HTML document.
func ParseDocument(r io.Reader) (Element, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return selection{goquery.NewDocumentFromNode(root).Selection}, nil
}

// ParseFragment parses a markup fragment such as the inner HTML of a cell.
// The fragment is parsed in a div context and returned under that div.
func ParseFragment(markup string) (Element, error) {
	container := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(markup), container)
	if err != nil {
		return nil, err
	}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return selection{goquery.NewDocumentFromNode(container).Selection}, nil
}

// selection adapts a single-node goquery selection to Element.
type selection struct {
	s *goquery.Selection
}

func (e selection) Tag() string {
	return goquery.NodeName(e.s)
}

func (e selection) Attr(name string) (string, bool) {
	return e.s.Attr(name)
}

func (e selection) Children() []Element {
	return wrap(e.s.Children())
}

func (e selection) Descendants(selector string) []Element {
	return wrap(e.s.Find(selector))
}

func (e selection) Text() string {
	return e.s.Text()
}

func (e selection) InnerMarkup() string {
	markup, err := e.s.Html()
	if err != nil {
		return ""
	}
	return markup
}

func wrap(s *goquery.Selection) []Element {
	out := make([]Element, 0, s.Length())
	s.Each(func(_ int, item *goquery.Selection) {
		out = append(out, selection{item})
	})
	return out
}

// childrenByTag returns the children of e whose tag is one of tags.
func childrenByTag(e Element, tags ...string) []Element {
	var out []Element
	for _, c := range e.Children() {
		tag := c.Tag()
		for _, t := range tags {
			if tag == t {
				out = append(out, c)
				break
			}
		}
	}
	return out
}
