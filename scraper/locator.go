package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Strategy is one ranked way of finding an element or a field value in the
// page markup. Strategies are tried in order; the first one that yields a
// match wins. This keeps markup fragility behind a single interface instead
// of hard-coded selectors scattered through the extractor.
type Strategy struct {
	Name     string
	Selector string
}

// LocatorChain is an ordered list of strategies.
type LocatorChain []Strategy

// FindAll returns the matches of the first strategy that resolves to at
// least one element, along with the winning strategy name. A nil selection
// means no strategy resolved.
func (c LocatorChain) FindAll(doc *goquery.Document) (*goquery.Selection, string) {
	for _, s := range c {
		sel := doc.Find(s.Selector)
		if sel.Length() > 0 {
			return sel, s.Name
		}
	}
	return nil, ""
}

// FirstText returns the trimmed text of the first strategy that yields a
// non-empty value within the given element.
func (c LocatorChain) FirstText(el *goquery.Selection) string {
	for _, s := range c {
		text := strings.TrimSpace(el.Find(s.Selector).First().Text())
		if text != "" {
			return text
		}
	}
	return ""
}

// FirstAttr returns the named attribute of the first strategy that yields a
// non-empty value within the given element.
func (c LocatorChain) FirstAttr(el *goquery.Selection, attr string) string {
	for _, s := range c {
		val, ok := el.Find(s.Selector).First().Attr(attr)
		if ok && strings.TrimSpace(val) != "" {
			return strings.TrimSpace(val)
		}
	}
	return ""
}

// Ranked locator chains for the marketplace page. Semantic test-ids rank
// first, class names next, generic roles last.
var (
	containerChain = LocatorChain{
		{"testid", `[data-testid="marketplace-item"]`},
		{"class", `.marketplace-item`},
		{"role", `[role="article"]`},
		{"item-link", `a[href*="/marketplace/item/"]`},
	}

	titleChain = LocatorChain{
		{"heading-role", `[role="heading"]`},
		{"h3", `h3`},
		{"h4", `h4`},
		{"span", `span`},
	}

	linkChain = LocatorChain{
		{"item-link", `a[href*="/marketplace/item/"]`},
		{"any-link", `a`},
	}
)
