// internal/analyze/fonts.go
package analyze

import (
	"strings"

	"github.com/xkilldash9x/storeforge/api/schemas"
)

// Fixed fallback stacks per typeface category.
const (
	serifStack     = "Georgia, serif"
	monospaceStack = "Courier New, monospace"
	sansSerifStack = "Arial, sans-serif"

	defaultFamily = "Arial"
)

// Keyword membership lists for classification. Matching is a lowercase
// substring check against the primary family name.
var (
	serifKeywords     = []string{"times", "georgia", "garamond", "serif"}
	monospaceKeywords = []string{"courier", "monaco", "consolas", "monospace"}
)

// PrimaryFamily extracts the first font-family token from a raw declaration:
// quotes stripped, split on comma, trimmed.
func PrimaryFamily(declaration string) string {
	first, _, _ := strings.Cut(declaration, ",")
	first = strings.Trim(strings.TrimSpace(first), `"'`)
	return strings.TrimSpace(first)
}

// ClassifyFont buckets a family name into serif, monospace or sans-serif and
// returns the fixed fallback stack for the bucket. The monospace check runs
// first, and any name containing "sans" short-circuits to sans-serif before
// the serif scan; otherwise the generic family "sans-serif" would match the
// "serif" keyword.
func ClassifyFont(family string) (schemas.FontCategory, string) {
	lower := strings.ToLower(family)

	for _, kw := range monospaceKeywords {
		if strings.Contains(lower, kw) {
			return schemas.FontMonospace, monospaceStack
		}
	}
	if strings.Contains(lower, "sans") {
		return schemas.FontSansSerif, sansSerifStack
	}
	for _, kw := range serifKeywords {
		if strings.Contains(lower, kw) {
			return schemas.FontSerif, serifStack
		}
	}
	return schemas.FontSansSerif, sansSerifStack
}

// buildTypography classifies the raw declarations in extraction order and
// assigns the first font to the heading role and the second (or first, when
// only one exists) to body. An empty list defaults both roles to Arial.
func buildTypography(raws []string) schemas.Typography {
	seen := make(map[string]struct{}, len(raws))
	var all []schemas.FontChoice
	for _, raw := range raws {
		family := PrimaryFamily(raw)
		if family == "" {
			continue
		}
		if _, ok := seen[family]; ok {
			continue
		}
		seen[family] = struct{}{}

		category, stack := ClassifyFont(family)
		all = append(all, schemas.FontChoice{Family: family, Category: category, Stack: stack})
	}

	if len(all) == 0 {
		arial := schemas.FontChoice{Family: defaultFamily, Category: schemas.FontSansSerif, Stack: sansSerifStack}
		return schemas.Typography{Heading: arial, Body: arial}
	}

	heading := all[0]
	body := all[0]
	if len(all) > 1 {
		body = all[1]
	}
	return schemas.Typography{Heading: heading, Body: body, All: all}
}
