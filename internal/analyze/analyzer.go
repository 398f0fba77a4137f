// internal/analyze/analyzer.go
// The design analyzer classifies raw scrape signals into a structured
// analysis. Every sub-step degrades to fixed defaults instead of propagating
// errors, so Analyze never fails outright. The only non-deterministic field
// of the result is AIRecommendations.
package analyze

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/xkilldash9x/storeforge/api/schemas"
)

// Caps for the signal projection included in the advice prompt.
const (
	promptColorLimit = 5
	promptFontLimit  = 3
	sampleLimit      = 3
)

// layoutRecommendations are fixed responsive-design constants; they are not
// derived from the scraped site.
var layoutRecommendations = []string{
	"Adopt a mobile-first layout strategy",
	"Use a flexbox-based grid for product listings",
	"Add responsive breakpoints at 768px, 1024px and 1440px",
}

// Analyzer derives a DesignAnalysis from a ScrapedSite.
type Analyzer struct {
	advisor *Advisor
	logger  *zap.Logger
}

// New creates an analyzer. The llm client may be nil; recommendations then
// always come from the fallback set.
func New(llm schemas.LLMClient, logger *zap.Logger) *Analyzer {
	return &Analyzer{
		advisor: NewAdvisor(llm, logger),
		logger:  logger.Named("analyzer"),
	}
}

// Analyze classifies the site's signals. Two analyses of the same input DOM
// are identical except for AIRecommendations.
func (a *Analyzer) Analyze(ctx context.Context, site *schemas.ScrapedSite) *schemas.DesignAnalysis {
	colors := buildColorScheme(site.Signals.Colors)
	typography := buildTypography(site.Signals.Fonts)
	layout := buildLayout(site.Signals.Layout)
	products := summarizeProducts(site.Products)

	advice := a.advisor.Advise(ctx, AdviceInput{
		URL:         site.URL,
		Colors:      paletteHexes(colors, promptColorLimit),
		Fonts:       fontFamilies(typography, promptFontLimit),
		HasProducts: products != nil,
	})
	if advice.Fallback {
		a.logger.Debug("Analysis using fallback recommendations.", zap.String("url", site.URL))
	}

	return &schemas.DesignAnalysis{
		Colors:            colors,
		Typography:        typography,
		Layout:            layout,
		Products:          products,
		AIRecommendations: advice.Recommendations,
	}
}

// buildLayout is a structural pass-through of the extracted presence flags
// plus the fixed recommendation constants.
func buildLayout(signals schemas.LayoutSignals) schemas.LayoutAnalysis {
	structure := schemas.LayoutStructure{
		HasHeader: signals.HasHeader,
		HasNav:    signals.HasNav,
		HasMain:   signals.HasMainContent,
		HasFooter: signals.HasFooter,
	}

	var regions []string
	if structure.HasHeader {
		regions = append(regions, "header")
	}
	if structure.HasNav {
		regions = append(regions, "nav")
	}
	if structure.HasMain {
		regions = append(regions, "main")
	}
	if structure.HasFooter {
		regions = append(regions, "footer")
	}
	if len(regions) == 0 {
		structure.Description = "unstructured single column"
	} else {
		structure.Description = strings.Join(regions, " + ")
	}

	return schemas.LayoutAnalysis{
		Structure: structure,
		Dimensions: schemas.LayoutDimensions{
			HeaderHeight: signals.HeaderHeight,
			FooterHeight: signals.FooterHeight,
		},
		Recommendations: append([]string(nil), layoutRecommendations...),
	}
}

// summarizeProducts reports the listing shape, or nil when the page carried
// no product-capable structure. That absence is a valid outcome, not a
// failure.
func summarizeProducts(products []schemas.CandidateProduct) *schemas.ProductSummary {
	if len(products) == 0 {
		return nil
	}

	summary := &schemas.ProductSummary{Count: len(products)}
	for _, p := range products {
		if p.ImageURL != "" {
			summary.HasImages = true
		}
		if p.PriceText != "" {
			summary.HasPrices = true
		}
	}

	parts := []string{"product cards"}
	if summary.HasImages {
		parts = append(parts, "with images")
	}
	if summary.HasPrices {
		parts = append(parts, "with prices")
	}
	summary.Structure = strings.Join(parts, " ")

	limit := sampleLimit
	if len(products) < limit {
		limit = len(products)
	}
	summary.Samples = append([]schemas.CandidateProduct(nil), products[:limit]...)
	return summary
}

func paletteHexes(scheme schemas.ColorScheme, limit int) []string {
	var out []string
	for _, c := range scheme.All {
		if len(out) >= limit {
			break
		}
		out = append(out, c.Hex)
	}
	return out
}

func fontFamilies(t schemas.Typography, limit int) []string {
	var out []string
	for _, f := range t.All {
		if len(out) >= limit {
			break
		}
		out = append(out, f.Family)
	}
	return out
}
