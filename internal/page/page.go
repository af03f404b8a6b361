// Package page is the read-only view of a rendered deck page that the
// extractor works against. The shipped backend fetches the page over HTTP and
// queries it with goquery; anything that can answer CSS selector queries can
// implement the same interfaces.
package page

import (
	"context"
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Scope is an element of a rendered page and the subtree below it.
type Scope interface {
	// All returns the elements matching selector in document order.
	All(selector string) []Scope
	// First returns the first element matching selector.
	First(selector string) (Scope, bool)
	// Text returns the trimmed text content.
	Text() string
	// Attr returns the attribute value, or "" when it is absent.
	Attr(name string) string
}

// Page is a loaded page. URL is the address the page was finally served
// from, relative links resolve against it.
type Page interface {
	Scope
	URL() string
	Close() error
}

// Renderer loads pages. A renderer is acquired once and closed when the
// caller is done with it.
type Renderer interface {
	Render(ctx context.Context, url string) (Page, error)
	Close() error
}

// Parse builds a page from static HTML.
func Parse(r io.Reader, pageURL string) (Page, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	return &document{selection: selection{doc.Selection}, url: pageURL}, nil
}

type selection struct {
	sel *goquery.Selection
}

func (s selection) All(selector string) []Scope {
	found := s.sel.Find(selector)
	out := make([]Scope, 0, found.Length())
	found.Each(func(_ int, match *goquery.Selection) {
		out = append(out, selection{match})
	})
	return out
}

func (s selection) First(selector string) (Scope, bool) {
	found := s.sel.Find(selector).First()
	if found.Length() == 0 {
		return nil, false
	}
	return selection{found}, true
}

func (s selection) Text() string {
	return strings.TrimSpace(s.sel.Text())
}

func (s selection) Attr(name string) string {
	return s.sel.AttrOr(name, "")
}

type document struct {
	selection
	url string
}

func (d *document) URL() string { return d.url }

func (d *document) Close() error { return nil }

// Resolve makes ref absolute against the page url, the way a browser
// resolves img.src. It returns ref unchanged if either fails to parse.
func Resolve(p Page, ref string) string {
	if ref == "" {
		return ""
	}
	base, err := url.Parse(p.URL())
	if err != nil {
		return ref
	}
	u, err := base.Parse(ref)
	if err != nil {
		return ref
	}
	return u.String()
}
