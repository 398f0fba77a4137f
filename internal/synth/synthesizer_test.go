// internal/synth/synthesizer_test.go
package synth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/xkilldash9x/storeforge/api/schemas"
)

func analysisFixture() *schemas.DesignAnalysis {
	return &schemas.DesignAnalysis{
		Colors: schemas.ColorScheme{
			Primary:   "#ffffff",
			Secondary: "#111111",
			Accent:    "#0066cc",
		},
		Typography: schemas.Typography{
			Heading: schemas.FontChoice{Family: "Playfair Display", Category: schemas.FontSerif, Stack: "Georgia, serif"},
			Body:    schemas.FontChoice{Family: "Open Sans", Category: schemas.FontSansSerif, Stack: "Arial, sans-serif"},
		},
		Layout: schemas.LayoutAnalysis{
			Structure: schemas.LayoutStructure{
				HasHeader:   true,
				HasNav:      true,
				HasMain:     true,
				HasFooter:   true,
				Description: "header + nav + main + footer",
			},
		},
		Products: &schemas.ProductSummary{Count: 8, HasImages: true, HasPrices: true},
	}
}

func TestBaseTemplateFor(t *testing.T) {
	testCases := []struct {
		name      string
		structure schemas.LayoutStructure
		expected  string
	}{
		{name: "header and footer", structure: schemas.LayoutStructure{HasHeader: true, HasFooter: true}, expected: TemplateModern},
		{name: "header only", structure: schemas.LayoutStructure{HasHeader: true}, expected: TemplateMinimal},
		{name: "footer only", structure: schemas.LayoutStructure{HasFooter: true}, expected: TemplateMinimal},
		{name: "neither", structure: schemas.LayoutStructure{}, expected: TemplateMinimal},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, BaseTemplateFor(tc.structure))
		})
	}
}

func TestComponentsFor(t *testing.T) {
	t.Run("full analysis yields all four in order", func(t *testing.T) {
		components := ComponentsFor(analysisFixture())
		require.Len(t, components, 4)
		assert.Equal(t, schemas.ComponentProductGrid, components[0].Kind)
		assert.Equal(t, schemas.ComponentNavigation, components[1].Kind)
		assert.Equal(t, schemas.ComponentSearch, components[2].Kind)
		assert.Equal(t, schemas.ComponentCart, components[3].Kind)

		assert.True(t, components[0].Options["hasImages"])
		assert.True(t, components[0].Options["hasPrices"])
	})

	t.Run("no products and no nav leaves search and cart", func(t *testing.T) {
		a := analysisFixture()
		a.Products = nil
		a.Layout.Structure.HasNav = false

		components := ComponentsFor(a)
		require.Len(t, components, 2)
		assert.Equal(t, schemas.ComponentSearch, components[0].Kind)
		assert.Equal(t, schemas.ComponentCart, components[1].Kind)
	})

	t.Run("zero-count summary is treated as no products", func(t *testing.T) {
		a := analysisFixture()
		a.Products = &schemas.ProductSummary{Count: 0}

		components := ComponentsFor(a)
		require.Len(t, components, 3)
		assert.Equal(t, schemas.ComponentNavigation, components[0].Kind)
	})
}

func TestSynthesize(t *testing.T) {
	s := New(zap.NewNop())
	tmpl, err := s.Synthesize(analysisFixture())
	require.NoError(t, err)

	assert.NotEmpty(t, tmpl.ID)
	assert.Equal(t, TemplateModern, tmpl.BaseTemplateID)
	assert.Equal(t, "header + nav + main + footer", tmpl.Customizations.Layout)

	// Palette and stacks substituted into the stylesheet.
	assert.Contains(t, tmpl.CSS, "--color-primary: #ffffff;")
	assert.Contains(t, tmpl.CSS, "--color-secondary: #111111;")
	assert.Contains(t, tmpl.CSS, "--color-accent: #0066cc;")
	assert.Contains(t, tmpl.CSS, "--font-heading: Georgia, serif;")
	assert.Contains(t, tmpl.CSS, "--font-body: Arial, sans-serif;")
	// The %% escape must not leak into the rendered output.
	assert.NotContains(t, tmpl.CSS, "%%")
	assert.Contains(t, tmpl.CSS, "width: 100%;")

	// Placeholders stay unresolved in the markup.
	assert.Contains(t, tmpl.HTML, "{{storeName}}")
	assert.Contains(t, tmpl.HTML, "{{#products}}")
	assert.Contains(t, tmpl.HTML, "{{#navigation}}")
	assert.Contains(t, tmpl.HTML, `class="template-modern"`)
	assert.Contains(t, tmpl.HTML, `class="hero"`)
	assert.Contains(t, tmpl.HTML, `class="product-grid"`)

	// Component order carries into the markup: nav renders inside the header
	// before search and cart.
	navIdx := strings.Index(tmpl.HTML, "main-nav")
	searchIdx := strings.Index(tmpl.HTML, "search-bar")
	cartIdx := strings.Index(tmpl.HTML, "cart-widget")
	assert.Less(t, navIdx, searchIdx)
	assert.Less(t, searchIdx, cartIdx)
}

func TestSynthesizeMinimal(t *testing.T) {
	a := analysisFixture()
	a.Layout.Structure.HasFooter = false
	a.Products = nil

	s := New(zap.NewNop())
	tmpl, err := s.Synthesize(a)
	require.NoError(t, err)

	assert.Equal(t, TemplateMinimal, tmpl.BaseTemplateID)
	assert.NotContains(t, tmpl.HTML, `class="hero"`)
	assert.NotContains(t, tmpl.HTML, "{{#products}}")
	// The footer fragment renders for every template, placeholders included.
	assert.Contains(t, tmpl.HTML, "{{#footerLinks}}")
}

func TestSynthesizeNilAnalysis(t *testing.T) {
	s := New(zap.NewNop())
	_, err := s.Synthesize(nil)

	var synthErr *Error
	require.ErrorAs(t, err, &synthErr)
}

func TestFromCustomizationsValidation(t *testing.T) {
	valid := schemas.TemplateCustomizations{
		Colors: schemas.ColorScheme{Primary: "#111111", Secondary: "#555555", Accent: "#0066cc"},
		Typography: schemas.Typography{
			Heading: schemas.FontChoice{Stack: "Georgia, serif"},
			Body:    schemas.FontChoice{Stack: "Arial, sans-serif"},
		},
	}

	s := New(zap.NewNop())

	t.Run("valid input renders", func(t *testing.T) {
		tmpl, err := s.FromCustomizations(TemplateMinimal, valid)
		require.NoError(t, err)
		assert.Equal(t, TemplateMinimal, tmpl.BaseTemplateID)
		assert.NotEmpty(t, tmpl.CSS)
		assert.NotEmpty(t, tmpl.HTML)
	})

	t.Run("unknown base template", func(t *testing.T) {
		_, err := s.FromCustomizations("brutalist", valid)
		var synthErr *Error
		require.ErrorAs(t, err, &synthErr)
		assert.Contains(t, synthErr.Reason, "brutalist")
	})

	t.Run("missing colors", func(t *testing.T) {
		c := valid
		c.Colors.Accent = ""
		_, err := s.FromCustomizations(TemplateMinimal, c)
		require.Error(t, err)
	})

	t.Run("missing font stacks", func(t *testing.T) {
		c := valid
		c.Typography.Body.Stack = ""
		_, err := s.FromCustomizations(TemplateMinimal, c)
		require.Error(t, err)
	})
}

// Every generated artifact gets a fresh id.
func TestSynthesizeUniqueIDs(t *testing.T) {
	s := New(zap.NewNop())
	first, err := s.Synthesize(analysisFixture())
	require.NoError(t, err)
	second, err := s.Synthesize(analysisFixture())
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}
