// internal/extract/extract_test.go
package extract

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xkilldash9x/storeforge/api/schemas"
)

func captureWithHTML(html string) *schemas.Capture {
	return &schemas.Capture{
		URL:  "https://shop.example.com",
		HTML: html,
		Styles: schemas.StyleHarvest{
			Colors:       []string{"rgb(255, 255, 255)", "rgb(0, 0, 0)"},
			Fonts:        []string{"Georgia, serif"},
			HeaderHeight: 64,
			FooterHeight: 120,
		},
	}
}

func TestExtractLayoutAndMeta(t *testing.T) {
	html := `<!DOCTYPE html>
	<html><head>
		<title>  Example Shop  </title>
		<meta name="description" content="Fine ceramics">
		<meta name="keywords" content="mugs, plates">
	</head><body>
		<header>top</header>
		<nav>menu</nav>
		<main>content</main>
		<footer>bottom</footer>
	</body></html>`

	x := New(zap.NewNop())
	signals, products := x.Extract(captureWithHTML(html))

	assert.True(t, signals.Layout.HasHeader)
	assert.True(t, signals.Layout.HasNav)
	assert.True(t, signals.Layout.HasMainContent)
	assert.True(t, signals.Layout.HasFooter)
	assert.Equal(t, 64, signals.Layout.HeaderHeight)
	assert.Equal(t, 120, signals.Layout.FooterHeight)

	assert.Equal(t, "Example Shop", signals.PageTitle)
	assert.Equal(t, "Fine ceramics", signals.MetaDescription)
	assert.Equal(t, "mugs, plates", signals.MetaKeywords)

	// Style signals pass through untouched.
	assert.Equal(t, []string{"rgb(255, 255, 255)", "rgb(0, 0, 0)"}, signals.Colors)
	assert.Equal(t, []string{"Georgia, serif"}, signals.Fonts)

	assert.Empty(t, products)
}

func TestExtractBareDocument(t *testing.T) {
	x := New(zap.NewNop())
	signals, products := x.Extract(captureWithHTML("<html><body><p>hello</p></body></html>"))

	assert.False(t, signals.Layout.HasHeader)
	assert.False(t, signals.Layout.HasFooter)
	assert.Empty(t, signals.PageTitle)
	assert.Empty(t, products)
}

func TestExtractProducts(t *testing.T) {
	html := `<html><body>
	<div class="product" itemscope>
		<span itemprop="name">Stoneware Mug</span>
		<span itemprop="price">$12.00</span>
		<a itemprop="url" href="/p/mug"><img itemprop="image" src="/img/mug.jpg"></a>
	</div>
	<div class="product">
		<h3>Dinner Plate</h3>
		<span class="price">$9.50</span>
		<a href="/p/plate"><img src="/img/plate.jpg"></a>
	</div>
	<div class="product"></div>
	</body></html>`

	x := New(zap.NewNop())
	_, products := x.Extract(captureWithHTML(html))

	require.Len(t, products, 3)

	assert.Equal(t, "Stoneware Mug", products[0].Name)
	assert.Equal(t, "$12.00", products[0].PriceText)
	assert.Equal(t, "/img/mug.jpg", products[0].ImageURL)
	assert.Equal(t, "/p/mug", products[0].LinkURL)

	assert.Equal(t, "Dinner Plate", products[1].Name)
	assert.Equal(t, "$9.50", products[1].PriceText)
	assert.Equal(t, "/img/plate.jpg", products[1].ImageURL)
	assert.Equal(t, "/p/plate", products[1].LinkURL)

	// Empty container still yields a record with empty fields.
	assert.Equal(t, schemas.CandidateProduct{}, products[2])
}

// The first matching container pattern is used exclusively: .product matches
// win and the .product-card containers are never merged in.
func TestExtractProductsPatternExclusive(t *testing.T) {
	html := `<html><body>
	<div class="product"><h3>From First Pattern</h3></div>
	<div class="product-card"><h3>From Later Pattern</h3></div>
	</body></html>`

	x := New(zap.NewNop())
	_, products := x.Extract(captureWithHTML(html))

	require.Len(t, products, 1)
	assert.Equal(t, "From First Pattern", products[0].Name)
}

func TestExtractProductsStructuredMarkupFirst(t *testing.T) {
	// [itemtype*='Product'] precedes .product in the pattern order.
	html := `<html><body>
	<article itemtype="https://schema.org/Product"><span itemprop="name">Structured</span></article>
	<div class="product"><h3>Classed</h3></div>
	</body></html>`

	x := New(zap.NewNop())
	_, products := x.Extract(captureWithHTML(html))

	require.Len(t, products, 1)
	assert.Equal(t, "Structured", products[0].Name)
}

func TestExtractProductsCap(t *testing.T) {
	var b strings.Builder
	b.WriteString("<html><body>")
	for i := 0; i < 25; i++ {
		fmt.Fprintf(&b, `<div class="product"><h3>Item %d</h3></div>`, i)
	}
	b.WriteString("</body></html>")

	x := New(zap.NewNop())
	_, products := x.Extract(captureWithHTML(b.String()))

	require.Len(t, products, maxCandidates)
	assert.Equal(t, "Item 0", products[0].Name)
	assert.Equal(t, "Item 9", products[9].Name)
}

func TestResolveFieldPriceAttrFallback(t *testing.T) {
	html := `<html><body>
	<div class="product">
		<h3>Widget</h3>
		<span data-price="19.99">buy now</span>
	</div>
	</body></html>`

	x := New(zap.NewNop())
	_, products := x.Extract(captureWithHTML(html))

	require.Len(t, products, 1)
	assert.Equal(t, "19.99", products[0].PriceText)
}
