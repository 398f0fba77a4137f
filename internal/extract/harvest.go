// internal/extract/harvest.go
package extract

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"

	"github.com/xkilldash9x/storeforge/api/schemas"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// HarvestScript runs inside the page and dumps the computed design signals:
// the union of foreground and background colors over a full document walk
// (first-occurrence order, fully transparent backgrounds skipped), every
// distinct computed font-family, and the measured chrome heights.
const HarvestScript = `(() => {
	const colors = [];
	const fonts = [];
	const seenColor = new Set();
	const seenFont = new Set();
	const push = (list, seen, value) => {
		if (value && !seen.has(value)) {
			seen.add(value);
			list.push(value);
		}
	};
	for (const el of document.querySelectorAll('*')) {
		const cs = window.getComputedStyle(el);
		push(colors, seenColor, cs.color);
		const bg = cs.backgroundColor;
		if (bg && bg !== 'transparent' && bg !== 'rgba(0, 0, 0, 0)') {
			push(colors, seenColor, bg);
		}
		push(fonts, seenFont, cs.fontFamily);
	}
	const header = document.querySelector('header');
	const footer = document.querySelector('footer');
	return JSON.stringify({
		colors: colors,
		fonts: fonts,
		headerHeight: header ? header.offsetHeight : 0,
		footerHeight: footer ? footer.offsetHeight : 0
	});
})()`

// DecodeHarvest parses the JSON payload returned by HarvestScript.
func DecodeHarvest(payload string) (schemas.StyleHarvest, error) {
	var harvest schemas.StyleHarvest
	if err := json.UnmarshalFromString(payload, &harvest); err != nil {
		return schemas.StyleHarvest{}, fmt.Errorf("failed to decode style harvest: %w", err)
	}
	return harvest, nil
}
