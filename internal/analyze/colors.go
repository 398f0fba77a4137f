// internal/analyze/colors.go
package analyze

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/xkilldash9x/storeforge/api/schemas"
)

// Default palette used when a scrape yields no usable colors.
const (
	defaultPrimary   = "#000000"
	defaultSecondary = "#666666"
	defaultAccent    = "#0066cc"
)

// rgbPattern matches the three channel groups of rgb()/rgba() declarations.
var rgbPattern = regexp.MustCompile(`(\d{1,3})\D+(\d{1,3})\D+(\d{1,3})`)

// NormalizeColor converts a raw CSS color string to a 6-digit lowercase hex
// string. Strings already in hex form pass through unchanged, which makes
// normalization idempotent. Unparseable input defaults to #000000.
func NormalizeColor(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "#") {
		return raw
	}

	m := rgbPattern.FindStringSubmatch(raw)
	if m == nil {
		return defaultPrimary
	}

	channel := func(s string) int {
		v, _ := strconv.Atoi(s)
		if v > 255 {
			v = 255
		}
		return v
	}
	return fmt.Sprintf("#%02x%02x%02x", channel(m[1]), channel(m[2]), channel(m[3]))
}

// RoleOf classifies a hex color by perceived brightness:
// luma > 200 reads as a background, luma < 50 as text, anything else as an
// accent. The role is reported as metadata only; palette selection is by
// extraction order, not by role.
func RoleOf(hex string) schemas.ColorRole {
	r, g, b := decodeHex(hex)
	luma := 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
	switch {
	case luma > 200:
		return schemas.RoleBackground
	case luma < 50:
		return schemas.RoleText
	default:
		return schemas.RoleAccent
	}
}

// decodeHex reads a #rgb or #rrggbb string; anything else decodes as black.
func decodeHex(hex string) (r, g, b int) {
	hex = strings.TrimPrefix(strings.ToLower(hex), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return 0, 0, 0
	}
	parse := func(s string) int {
		v, err := strconv.ParseInt(s, 16, 32)
		if err != nil {
			return 0
		}
		return int(v)
	}
	return parse(hex[0:2]), parse(hex[2:4]), parse(hex[4:6])
}

// buildColorScheme normalizes and dedupes the raw colors in extraction order
// and assigns the first three to primary/secondary/accent, with fixed
// defaults filling any gaps.
func buildColorScheme(raws []string) schemas.ColorScheme {
	seen := make(map[string]struct{}, len(raws))
	var palette []schemas.PaletteColor
	for _, raw := range raws {
		hex := NormalizeColor(raw)
		if _, ok := seen[hex]; ok {
			continue
		}
		seen[hex] = struct{}{}
		palette = append(palette, schemas.PaletteColor{Hex: hex, Role: RoleOf(hex)})
	}

	pick := func(i int, fallback string) string {
		if i < len(palette) {
			return palette[i].Hex
		}
		return fallback
	}

	return schemas.ColorScheme{
		Primary:   pick(0, defaultPrimary),
		Secondary: pick(1, defaultSecondary),
		Accent:    pick(2, defaultAccent),
		All:       palette,
	}
}
