// internal/extract/selectors.go
package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// maxCandidates bounds how many product records one scrape may yield.
const maxCandidates = 10

// productPatterns is the ordered list of container selectors tried during
// product extraction. The first pattern with at least one match is used
// exclusively; later patterns are never merged in.
var productPatterns = []string{
	"[itemtype*='Product']",
	".product",
	".product-item",
	".product-card",
	"[data-product]",
}

// fieldRule resolves one candidate field: a sub-selector plus the attribute
// to read, or text content when attr is empty.
type fieldRule struct {
	sel  string
	attr string
}

// Sub-selector priority per field: structured-data markup wins over generic
// heading/class fallbacks.
var (
	nameRules = []fieldRule{
		{sel: "[itemprop='name']"},
		{sel: "h1, h2, h3, h4"},
		{sel: ".product-name, .product-title, .name, .title"},
	}
	priceRules = []fieldRule{
		{sel: "[itemprop='price']"},
		{sel: "[itemprop='price']", attr: "content"},
		{sel: ".price, .product-price"},
		{sel: "[data-price]", attr: "data-price"},
	}
	imageRules = []fieldRule{
		{sel: "img[itemprop='image']", attr: "src"},
		{sel: "img", attr: "src"},
	}
	linkRules = []fieldRule{
		{sel: "a[itemprop='url']", attr: "href"},
		{sel: "a", attr: "href"},
	}
)

// resolveField evaluates the rules in order and returns the first non-empty
// value. A missing field resolves to the empty string, never an error.
func resolveField(s *goquery.Selection, rules []fieldRule) string {
	for _, r := range rules {
		m := s.Find(r.sel).First()
		if m.Length() == 0 {
			continue
		}
		var value string
		if r.attr != "" {
			value, _ = m.Attr(r.attr)
		} else {
			value = m.Text()
		}
		if value = strings.TrimSpace(value); value != "" {
			return value
		}
	}
	return ""
}
