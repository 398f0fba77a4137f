// internal/analyze/recommend.go
// The advisor asks the completion collaborator for improvement
// recommendations and substitutes a fixed fallback set on any failure. The
// degrade-to-default policy is load-bearing: callers never observe the
// underlying failure, they only see which producer the result came from.
package analyze

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/xkilldash9x/storeforge/api/schemas"
	"github.com/xkilldash9x/storeforge/internal/llmutil"
)

const (
	adviceTimeout     = 30 * time.Second
	adviceTemperature = 0.4

	advisorSystemPrompt = `You are a senior e-commerce design consultant. ` +
		`Given the design signals of an existing storefront, respond with a JSON object ` +
		`containing exactly four string-array fields: "improvements" (visual design), ` +
		`"ux" (user experience), "mobile" (mobile experience) and "conversion" ` +
		`(conversion rate). Three concise suggestions per field. JSON only, no prose.`
)

// fallbackRecommendations is the deterministic advice set substituted when
// the completion call fails in any way.
var fallbackRecommendations = schemas.Recommendations{
	Improvements: []string{
		"Increase contrast between text and background colors",
		"Establish a consistent spacing scale across sections",
		"Limit the palette to the primary, secondary and accent colors",
	},
	UX: []string{
		"Keep primary navigation visible while scrolling",
		"Surface search prominently in the header",
		"Show clear feedback after add-to-cart actions",
	},
	Mobile: []string{
		"Use a single-column layout below 768px",
		"Make tap targets at least 44px tall",
		"Collapse navigation into an accessible menu on small screens",
	},
	Conversion: []string{
		"Place a clear call-to-action above the fold",
		"Show prices and availability directly on product cards",
		"Reduce checkout steps and support guest checkout",
	},
}

// FallbackRecommendations returns a copy of the fixed fallback advice set.
func FallbackRecommendations() schemas.Recommendations {
	out := fallbackRecommendations
	out.Improvements = append([]string(nil), fallbackRecommendations.Improvements...)
	out.UX = append([]string(nil), fallbackRecommendations.UX...)
	out.Mobile = append([]string(nil), fallbackRecommendations.Mobile...)
	out.Conversion = append([]string(nil), fallbackRecommendations.Conversion...)
	return out
}

// AdviceInput is the trimmed signal projection sent to the model.
type AdviceInput struct {
	URL         string
	Colors      []string
	Fonts       []string
	HasProducts bool
}

// AdviceResult is a tagged result with two producers: the model, or the
// compile-time fallback set. It is always populated; there is no error case.
type AdviceResult struct {
	Recommendations schemas.Recommendations
	Fallback        bool
}

// Advisor wraps the completion collaborator behind the fallback policy.
type Advisor struct {
	llm    schemas.LLMClient
	logger *zap.Logger
}

// NewAdvisor creates an advisor. A nil client is valid and always yields the
// fallback set.
func NewAdvisor(llm schemas.LLMClient, logger *zap.Logger) *Advisor {
	return &Advisor{llm: llm, logger: logger.Named("advisor")}
}

// Advise requests structured recommendations for the given signals. Network
// errors, timeouts, non-JSON responses and missing categories all resolve to
// the fixed fallback set; the failure is logged, never returned.
func (a *Advisor) Advise(ctx context.Context, in AdviceInput) AdviceResult {
	if a.llm == nil {
		return AdviceResult{Recommendations: FallbackRecommendations(), Fallback: true}
	}

	ctx, cancel := context.WithTimeout(ctx, adviceTimeout)
	defer cancel()

	resp, err := a.llm.GenerateResponse(ctx, schemas.GenerationRequest{
		SystemPrompt: advisorSystemPrompt,
		UserPrompt:   buildAdvicePrompt(in),
		Options: schemas.GenerationOptions{
			Temperature:     adviceTemperature,
			ForceJSONFormat: true,
		},
	})
	if err != nil {
		a.logger.Warn("Recommendation call failed; using fallback set.",
			zap.String("url", in.URL), zap.Error(err))
		return AdviceResult{Recommendations: FallbackRecommendations(), Fallback: true}
	}

	parsed, err := llmutil.ParseJSONResponse[schemas.Recommendations](resp)
	if err != nil {
		a.logger.Warn("Recommendation response unparseable; using fallback set.",
			zap.String("url", in.URL), zap.Error(err))
		return AdviceResult{Recommendations: FallbackRecommendations(), Fallback: true}
	}
	if len(parsed.Improvements) == 0 || len(parsed.UX) == 0 ||
		len(parsed.Mobile) == 0 || len(parsed.Conversion) == 0 {
		a.logger.Warn("Recommendation response incomplete; using fallback set.",
			zap.String("url", in.URL))
		return AdviceResult{Recommendations: FallbackRecommendations(), Fallback: true}
	}

	return AdviceResult{Recommendations: *parsed}
}

func buildAdvicePrompt(in AdviceInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Storefront URL: %s\n", in.URL)
	fmt.Fprintf(&b, "Palette: %s\n", strings.Join(in.Colors, ", "))
	fmt.Fprintf(&b, "Fonts: %s\n", strings.Join(in.Fonts, ", "))
	fmt.Fprintf(&b, "Has product listings: %t\n", in.HasProducts)
	return b.String()
}
