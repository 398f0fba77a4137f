// internal/extract/extract.go
// The signal extractor turns a raw capture into design signals and candidate
// product records. Missing signals degrade to zero values; extraction never
// fails a pipeline run.
package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"github.com/xkilldash9x/storeforge/api/schemas"
)

// Extractor pulls raw design signals out of a rendered document.
type Extractor struct {
	logger *zap.Logger
}

// New creates a signal extractor.
func New(logger *zap.Logger) *Extractor {
	return &Extractor{logger: logger.Named("extractor")}
}

// Extract reads the capture's document and style harvest and returns the
// design signals plus up to ten candidate products. An unparseable document
// degrades to style-only signals rather than erroring.
func (x *Extractor) Extract(capture *schemas.Capture) (schemas.DesignSignals, []schemas.CandidateProduct) {
	signals := schemas.DesignSignals{
		Colors: capture.Styles.Colors,
		Fonts:  capture.Styles.Fonts,
		Layout: schemas.LayoutSignals{
			HeaderHeight: capture.Styles.HeaderHeight,
			FooterHeight: capture.Styles.FooterHeight,
		},
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(capture.HTML))
	if err != nil {
		x.logger.Warn("Document parse failed; continuing with style signals only.",
			zap.String("url", capture.URL), zap.Error(err))
		return signals, nil
	}

	signals.Layout.HasHeader = doc.Find("header").Length() > 0
	signals.Layout.HasNav = doc.Find("nav").Length() > 0
	signals.Layout.HasMainContent = doc.Find("main").Length() > 0
	signals.Layout.HasFooter = doc.Find("footer").Length() > 0

	signals.PageTitle = strings.TrimSpace(doc.Find("title").First().Text())
	signals.MetaDescription = metaContent(doc, "description")
	signals.MetaKeywords = metaContent(doc, "keywords")

	products := x.extractProducts(doc)

	x.logger.Debug("Signal extraction complete.",
		zap.String("url", capture.URL),
		zap.Int("colors", len(signals.Colors)),
		zap.Int("fonts", len(signals.Fonts)),
		zap.Int("products", len(products)))

	return signals, products
}

// extractProducts is an ordered short-circuiting search over the fixed
// container patterns: the first pattern that matches anything is used
// exclusively, capped at maxCandidates.
func (x *Extractor) extractProducts(doc *goquery.Document) []schemas.CandidateProduct {
	for _, pattern := range productPatterns {
		matches := doc.Find(pattern)
		if matches.Length() == 0 {
			continue
		}

		var products []schemas.CandidateProduct
		matches.EachWithBreak(func(i int, s *goquery.Selection) bool {
			if i >= maxCandidates {
				return false
			}
			products = append(products, schemas.CandidateProduct{
				Name:      resolveField(s, nameRules),
				PriceText: resolveField(s, priceRules),
				ImageURL:  resolveField(s, imageRules),
				LinkURL:   resolveField(s, linkRules),
			})
			return true
		})
		return products
	}
	return nil
}

func metaContent(doc *goquery.Document, name string) string {
	content, _ := doc.Find("meta[name='" + name + "']").First().Attr("content")
	return strings.TrimSpace(content)
}
