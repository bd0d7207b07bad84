// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// document is a thin query facade over the parsed HTML tree. The
// extraction heuristics only need first-match text/attribute lookup,
// element iteration and nearest-ancestor search, so they go through this
// type instead of the parser API directly.
type document struct {
	doc *goquery.Document
}

// element is a single matched node.
type element struct {
	sel *goquery.Selection
}

// parseDocument builds a queryable document from raw HTML. goquery
// tolerates malformed markup, so this only fails on reader errors.
func parseDocument(html string) (*document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}
	return &document{doc: doc}, nil
}

// text returns the trimmed text of the first node matching the selector,
// or "" when nothing matches.
func (d *document) text(selector string) string {
	return strings.TrimSpace(d.doc.Find(selector).First().Text())
}

// attr returns the named attribute of the first node matching the
// selector, or "" when the node or attribute is absent.
func (d *document) attr(selector, name string) string {
	v, _ := d.doc.Find(selector).First().Attr(name)
	return strings.TrimSpace(v)
}

// html returns the inner HTML of the first node matching the selector.
func (d *document) html(selector string) string {
	h, err := d.doc.Find(selector).First().Html()
	if err != nil {
		return ""
	}
	return h
}

// each visits every node matching the selector in document order.
func (d *document) each(selector string, fn func(el element)) {
	d.doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
		fn(element{sel: s})
	})
}

// joinedText concatenates the text of all nodes matching the selector,
// separated by single spaces.
func (d *document) joinedText(selector string) string {
	var parts []string
	d.doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
		if t := strings.TrimSpace(s.Text()); t != "" {
			parts = append(parts, t)
		}
	})
	return strings.Join(parts, " ")
}

// attr returns the named attribute of the element, or "".
func (e element) attr(name string) string {
	v, _ := e.sel.Attr(name)
	return strings.TrimSpace(v)
}

// closestText finds the nearest ancestor matching ancestorSel and returns
// the trimmed text of its first descendant matching childSel.
func (e element) closestText(ancestorSel, childSel string) string {
	anc := e.sel.Closest(ancestorSel)
	if anc.Length() == 0 {
		return ""
	}
	return strings.TrimSpace(anc.Find(childSel).First().Text())
}

// siblingText returns the trimmed text of the first matching node inside
// the element's parent, which approximates "the text next to this node".
func (e element) siblingText(selector string) string {
	return strings.TrimSpace(e.sel.Parent().Find(selector).First().Text())
}
