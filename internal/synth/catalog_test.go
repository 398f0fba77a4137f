// internal/synth/catalog_test.go
package synth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCatalogLookup(t *testing.T) {
	catalog := NewCatalog()

	modern, ok := catalog.Lookup(TemplateModern)
	require.True(t, ok)
	assert.Equal(t, "Modern Storefront", modern.Name)

	minimal, ok := catalog.Lookup(TemplateMinimal)
	require.True(t, ok)
	assert.Equal(t, "Minimal Storefront", minimal.Name)

	_, ok = catalog.Lookup("brutalist")
	assert.False(t, ok)
}

func TestCatalogListIsCopy(t *testing.T) {
	catalog := NewCatalog()

	list := catalog.List()
	require.Len(t, list, 2)
	list[0].Name = "mutated"

	fresh := catalog.List()
	assert.NotEqual(t, "mutated", fresh[0].Name)
}

// Each catalog entry's defaults must satisfy the synthesizer's own
// validation, so the template-id path can never fail on a stock entry.
func TestCatalogDefaultsRender(t *testing.T) {
	catalog := NewCatalog()
	s := New(zap.NewNop())

	for _, entry := range catalog.List() {
		tmpl, err := s.FromCustomizations(entry.ID, entry.Defaults)
		require.NoError(t, err, "entry %s", entry.ID)
		assert.Equal(t, entry.ID, tmpl.BaseTemplateID)
		assert.NotEmpty(t, tmpl.CSS)
	}
}
