// internal/synth/synthesizer.go
// The template synthesizer turns a design analysis into a generated template
// artifact: a stylesheet bound to the extracted palette, a markup skeleton
// with unresolved placeholder tokens, and the customization metadata.
package synth

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/xkilldash9x/storeforge/api/schemas"
)

// Error is the typed synthesis failure for malformed input: missing required
// customization fields or an unknown base template. It is fatal to the
// request that triggered it.
type Error struct {
	Reason string
}

func (e *Error) Error() string {
	return "template synthesis failed: " + e.Reason
}

// Synthesizer generates template artifacts.
type Synthesizer struct {
	logger *zap.Logger
}

// New creates a synthesizer.
func New(logger *zap.Logger) *Synthesizer {
	return &Synthesizer{logger: logger.Named("synthesizer")}
}

// BaseTemplateFor applies the base selection heuristic: a page with both
// header and footer structure maps to the modern template, anything else to
// minimal.
func BaseTemplateFor(structure schemas.LayoutStructure) string {
	if structure.HasHeader && structure.HasFooter {
		return TemplateModern
	}
	return TemplateMinimal
}

// ComponentsFor assembles the ordered component list. The product grid is
// appended only when the analysis found products, navigation only when the
// layout reports it, and search and cart are always appended last, in that
// order.
func ComponentsFor(a *schemas.DesignAnalysis) []schemas.TemplateComponent {
	var components []schemas.TemplateComponent
	if a.Products != nil && a.Products.Count > 0 {
		components = append(components, schemas.TemplateComponent{
			Kind: schemas.ComponentProductGrid,
			Options: map[string]bool{
				"hasImages": a.Products.HasImages,
				"hasPrices": a.Products.HasPrices,
			},
		})
	}
	if a.Layout.Structure.HasNav {
		components = append(components, schemas.TemplateComponent{Kind: schemas.ComponentNavigation})
	}
	components = append(components,
		schemas.TemplateComponent{Kind: schemas.ComponentSearch},
		schemas.TemplateComponent{Kind: schemas.ComponentCart},
	)
	return components
}

// Synthesize produces a template artifact from a design analysis.
func (s *Synthesizer) Synthesize(a *schemas.DesignAnalysis) (*schemas.GeneratedTemplate, error) {
	if a == nil {
		return nil, &Error{Reason: "nil analysis"}
	}

	base := BaseTemplateFor(a.Layout.Structure)
	customizations := schemas.TemplateCustomizations{
		Colors:     a.Colors,
		Typography: a.Typography,
		Layout:     a.Layout.Structure.Description,
		Components: ComponentsFor(a),
	}

	tmpl, err := s.FromCustomizations(base, customizations)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Template synthesized.",
		zap.String("template_id", tmpl.ID),
		zap.String("base", base),
		zap.Int("components", len(customizations.Components)))
	return tmpl, nil
}

// FromCustomizations renders the artifact for an explicit customization set,
// used both by Synthesize and by the create-store path that skips analysis.
func (s *Synthesizer) FromCustomizations(baseID string, c schemas.TemplateCustomizations) (*schemas.GeneratedTemplate, error) {
	if baseID != TemplateModern && baseID != TemplateMinimal {
		return nil, &Error{Reason: fmt.Sprintf("unknown base template %q", baseID)}
	}
	if c.Colors.Primary == "" || c.Colors.Secondary == "" || c.Colors.Accent == "" {
		return nil, &Error{Reason: "customizations are missing required colors"}
	}
	if c.Typography.Heading.Stack == "" || c.Typography.Body.Stack == "" {
		return nil, &Error{Reason: "customizations are missing required font stacks"}
	}

	return &schemas.GeneratedTemplate{
		ID:             uuid.NewString(),
		BaseTemplateID: baseID,
		Customizations: c,
		CSS:            renderStylesheet(c),
		HTML:           renderMarkup(baseID, c.Components),
	}, nil
}
