// internal/synth/catalog.go
package synth

import "github.com/xkilldash9x/storeforge/api/schemas"

// Base template ids.
const (
	TemplateModern  = "modern"
	TemplateMinimal = "minimal"
)

// Catalog is the fixed, read-only set of base templates. It is built once at
// process start and never mutated; lookups are by id only.
type Catalog struct {
	entries []schemas.TemplateCatalogEntry
	byID    map[string]schemas.TemplateCatalogEntry
}

// NewCatalog builds the fixed template catalog.
func NewCatalog() *Catalog {
	entries := []schemas.TemplateCatalogEntry{
		{
			ID:          TemplateModern,
			Name:        "Modern Storefront",
			Description: "Full-chrome layout with a sticky header, primary navigation, hero banner and structured footer.",
			Features:    []string{"sticky-header", "hero-banner", "product-grid", "newsletter-footer"},
			Defaults: schemas.TemplateCustomizations{
				Colors: schemas.ColorScheme{
					Primary:   "#1f2937",
					Secondary: "#4b5563",
					Accent:    "#2563eb",
				},
				Typography: schemas.Typography{
					Heading: schemas.FontChoice{Family: "Helvetica", Category: schemas.FontSansSerif, Stack: "Arial, sans-serif"},
					Body:    schemas.FontChoice{Family: "Helvetica", Category: schemas.FontSansSerif, Stack: "Arial, sans-serif"},
				},
				Layout: "header + nav + main + footer",
				Components: []schemas.TemplateComponent{
					{Kind: schemas.ComponentProductGrid, Options: map[string]bool{"hasImages": true, "hasPrices": true}},
					{Kind: schemas.ComponentNavigation},
					{Kind: schemas.ComponentSearch},
					{Kind: schemas.ComponentCart},
				},
			},
		},
		{
			ID:          TemplateMinimal,
			Name:        "Minimal Storefront",
			Description: "Lean single-column layout for catalogs that carry little page chrome.",
			Features:    []string{"centered-content", "product-grid", "slim-footer"},
			Defaults: schemas.TemplateCustomizations{
				Colors: schemas.ColorScheme{
					Primary:   "#111111",
					Secondary: "#555555",
					Accent:    "#0066cc",
				},
				Typography: schemas.Typography{
					Heading: schemas.FontChoice{Family: "Georgia", Category: schemas.FontSerif, Stack: "Georgia, serif"},
					Body:    schemas.FontChoice{Family: "Helvetica", Category: schemas.FontSansSerif, Stack: "Arial, sans-serif"},
				},
				Layout: "main",
				Components: []schemas.TemplateComponent{
					{Kind: schemas.ComponentProductGrid, Options: map[string]bool{"hasImages": true, "hasPrices": true}},
					{Kind: schemas.ComponentSearch},
					{Kind: schemas.ComponentCart},
				},
			},
		},
	}

	byID := make(map[string]schemas.TemplateCatalogEntry, len(entries))
	for _, e := range entries {
		byID[e.ID] = e
	}
	return &Catalog{entries: entries, byID: byID}
}

// Lookup returns the catalog entry for the given id.
func (c *Catalog) Lookup(id string) (schemas.TemplateCatalogEntry, bool) {
	e, ok := c.byID[id]
	return e, ok
}

// List returns a copy of the full catalog.
func (c *Catalog) List() []schemas.TemplateCatalogEntry {
	return append([]schemas.TemplateCatalogEntry(nil), c.entries...)
}
