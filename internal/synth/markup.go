// internal/synth/markup.go
package synth

import (
	"strings"

	"github.com/xkilldash9x/storeforge/api/schemas"
)

// Markup fragments. The {{token}} placeholders are intentionally left
// unresolved: substitution belongs to the downstream renderer, this pipeline
// only produces the artifact.

const markupHead = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{storeName}}</title>
  <link rel="stylesheet" href="styles.css">
</head>
`

const markupHeader = `  <header class="site-header">
    <div class="logo">{{storeName}}</div>
`

const markupNavigation = `    <nav class="main-nav">
      {{#navigation}}
      <a href="{{url}}">{{label}}</a>
      {{/navigation}}
    </nav>
`

const markupSearch = `    <div class="search-bar">
      <input type="search" placeholder="Search {{storeName}}" aria-label="Search">
      <button class="button" type="submit">Search</button>
    </div>
`

const markupCart = `    <a class="cart-widget" href="/cart" aria-label="Cart">Cart ({{cartCount}})</a>
`

const markupHero = `  <section class="hero">
    <h1>{{heroHeadline}}</h1>
    <p>{{heroSubline}}</p>
  </section>
`

const markupProductGrid = `    <section class="product-grid">
      {{#products}}
      <article class="product-card">
        <img src="{{imageUrl}}" alt="{{name}}">
        <h3>{{name}}</h3>
        <span class="price">{{price}}</span>
        <button class="add-to-cart" data-product-id="{{id}}">Add to cart</button>
      </article>
      {{/products}}
    </section>
`

const markupFooter = `  <footer class="site-footer">
    <ul class="footer-links">
      {{#footerLinks}}
      <li><a href="{{url}}">{{label}}</a></li>
      {{/footerLinks}}
    </ul>
    <p>{{storeName}} &middot; {{footerText}}</p>
  </footer>
`

// renderMarkup assembles the HTML skeleton for the chosen base template and
// component list. Component order determines rendering position and is
// preserved exactly.
func renderMarkup(baseID string, components []schemas.TemplateComponent) string {
	var b strings.Builder
	b.WriteString(markupHead)
	b.WriteString(`<body class="template-` + baseID + "\">\n")

	b.WriteString(markupHeader)
	for _, c := range components {
		switch c.Kind {
		case schemas.ComponentNavigation:
			b.WriteString(markupNavigation)
		case schemas.ComponentSearch:
			b.WriteString(markupSearch)
		case schemas.ComponentCart:
			b.WriteString(markupCart)
		}
	}
	b.WriteString("  </header>\n")

	if baseID == TemplateModern {
		b.WriteString(markupHero)
	}

	b.WriteString("  <main>\n")
	for _, c := range components {
		if c.Kind == schemas.ComponentProductGrid {
			b.WriteString(markupProductGrid)
		}
	}
	b.WriteString("  </main>\n")

	b.WriteString(markupFooter)
	b.WriteString("</body>\n</html>\n")
	return b.String()
}
