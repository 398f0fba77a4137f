// File: internal/orchestrator/orchestrator.go
// Description: Sequences the site-to-store pipeline end to end. Dependencies
// arrive as interfaces so the pipeline stays decoupled and testable.
package orchestrator

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/xkilldash9x/storeforge/api/schemas"
	"github.com/xkilldash9x/storeforge/internal/analyze"
	"github.com/xkilldash9x/storeforge/internal/config"
	"github.com/xkilldash9x/storeforge/internal/extract"
	"github.com/xkilldash9x/storeforge/internal/synth"
)

// rawHTMLPrefixLimit bounds how much page source a ScrapedSite retains, so
// memory stays bounded across concurrent scrapes.
const rawHTMLPrefixLimit = 10000

// Caps for the scraped summary projection returned to callers.
const (
	summaryColorLimit = 5
	summaryFontLimit  = 3
)

var subdomainStrip = regexp.MustCompile(`[^a-z0-9]`)

// Pipeline sequences acquisition, extraction, analysis and synthesis for the
// analyze operation, and synthesis plus persistence for the generate
// operation.
type Pipeline struct {
	cfg         *config.Config
	logger      *zap.Logger
	acquirer    schemas.Acquirer
	extractor   *extract.Extractor
	analyzer    *analyze.Analyzer
	synthesizer *synth.Synthesizer
	catalog     *synth.Catalog
	repo        schemas.StoreRepository

	// writeArtifacts is the best-effort store-file side effect; swappable in
	// tests.
	writeArtifacts func(rec *schemas.StoreRecord, tmpl *schemas.GeneratedTemplate) error
}

// New creates a pipeline. The repository may be nil when persistence is not
// configured; the generate operation then fails fast.
func New(
	cfg *config.Config,
	logger *zap.Logger,
	acquirer schemas.Acquirer,
	extractor *extract.Extractor,
	analyzer *analyze.Analyzer,
	synthesizer *synth.Synthesizer,
	catalog *synth.Catalog,
	repo schemas.StoreRepository,
) (*Pipeline, error) {
	if cfg == nil || logger == nil || acquirer == nil || extractor == nil ||
		analyzer == nil || synthesizer == nil || catalog == nil {
		return nil, fmt.Errorf("cannot initialize pipeline with nil dependencies")
	}
	p := &Pipeline{
		cfg:         cfg,
		logger:      logger.Named("pipeline"),
		acquirer:    acquirer,
		extractor:   extractor,
		analyzer:    analyzer,
		synthesizer: synthesizer,
		catalog:     catalog,
		repo:        repo,
	}
	p.writeArtifacts = p.writeArtifactFiles
	return p, nil
}

// AnalyzeWebsite runs the full pipeline for one URL: acquire, extract,
// analyze, synthesize. Acquisition failures are fatal and surface to the
// caller; extraction and AI failures degrade internally.
func (p *Pipeline) AnalyzeWebsite(ctx context.Context, url string) (*schemas.AnalyzeResult, error) {
	p.logger.Info("Starting website analysis.", zap.String("url", url))

	capture, err := p.acquirer.Acquire(ctx, url)
	if err != nil {
		return nil, err
	}

	signals, products := p.extractor.Extract(capture)

	site := &schemas.ScrapedSite{
		URL:           url,
		RawHTMLPrefix: truncate(capture.HTML, rawHTMLPrefixLimit),
		Signals:       signals,
		Products:      products,
		Screenshots:   capture.Screenshots,
		CapturedAt:    capture.CapturedAt,
	}

	analysis := p.analyzer.Analyze(ctx, site)

	tmpl, err := p.synthesizer.Synthesize(analysis)
	if err != nil {
		return nil, err
	}

	return &schemas.AnalyzeResult{
		SourceURL: url,
		Scraped: schemas.ScrapedSummary{
			Title:        signals.PageTitle,
			Colors:       firstN(signals.Colors, summaryColorLimit),
			Fonts:        firstN(signals.Fonts, summaryFontLimit),
			ProductCount: len(products),
		},
		Analysis: analysis,
		Template: tmpl,
		Preview: schemas.PreviewImages{
			Desktop: base64.StdEncoding.EncodeToString(site.Screenshots.Desktop),
			Mobile:  base64.StdEncoding.EncodeToString(site.Screenshots.Mobile),
		},
	}, nil
}

// GenerateStore creates a draft store record from a chosen catalog template
// or an explicit customization set, persists it, and then triggers the
// best-effort store-file side effect. Acquisition and analysis are skipped
// entirely when a template id is supplied.
func (p *Pipeline) GenerateStore(ctx context.Context, req schemas.GenerateStoreRequest) (*schemas.GenerateStoreResult, error) {
	if strings.TrimSpace(req.Info.Name) == "" {
		return nil, errors.New("store name is required")
	}
	if strings.TrimSpace(req.OwnerID) == "" {
		return nil, errors.New("owner identity is required")
	}
	if p.repo == nil {
		return nil, errors.New("store repository is not configured (hint: check STOREFORGE_DATABASE_URL)")
	}

	baseID, customizations, err := p.resolveCustomizations(req)
	if err != nil {
		return nil, err
	}

	tmpl, err := p.synthesizer.FromCustomizations(baseID, customizations)
	if err != nil {
		return nil, err
	}

	subdomain := strings.TrimSpace(req.Info.Subdomain)
	if subdomain == "" {
		subdomain = DeriveSubdomain(req.Info.Name)
	}

	now := time.Now().UTC()
	rec := &schemas.StoreRecord{
		ID:             uuid.NewString(),
		OwnerID:        req.OwnerID,
		Name:           req.Info.Name,
		Subdomain:      subdomain,
		Status:         schemas.StatusDraft,
		TemplateID:     baseID,
		Customizations: customizations,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	// Persistence failures pass through to the caller unchanged.
	if err := p.repo.UpsertStore(ctx, rec); err != nil {
		return nil, err
	}

	// Fire-and-forget: a failed artifact write never fails the request.
	if err := p.writeArtifacts(rec, tmpl); err != nil {
		p.logger.Warn("Store file generation failed; store record is unaffected.",
			zap.String("store_id", rec.ID), zap.Error(err))
	}

	p.logger.Info("Store created.",
		zap.String("store_id", rec.ID),
		zap.String("subdomain", rec.Subdomain),
		zap.String("template", baseID))

	return &schemas.GenerateStoreResult{
		StoreID: rec.ID,
		URL:     fmt.Sprintf("https://%s.%s", rec.Subdomain, p.cfg.Store.BaseDomain),
		Status:  rec.Status,
	}, nil
}

// Templates returns the read-only base template catalog.
func (p *Pipeline) Templates() []schemas.TemplateCatalogEntry {
	return p.catalog.List()
}

// resolveCustomizations picks the template-defaults path (catalog lookup by
// id) or the ad-hoc path (explicit customizations), merging explicit values
// over defaults so caller choices always win.
func (p *Pipeline) resolveCustomizations(req schemas.GenerateStoreRequest) (string, schemas.TemplateCustomizations, error) {
	if req.TemplateID != "" {
		entry, ok := p.catalog.Lookup(req.TemplateID)
		if !ok {
			return "", schemas.TemplateCustomizations{}, &synth.Error{Reason: fmt.Sprintf("unknown template %q", req.TemplateID)}
		}
		return entry.ID, mergeCustomizations(entry.Defaults, req.Customizations), nil
	}

	if req.Customizations == nil {
		return "", schemas.TemplateCustomizations{}, &synth.Error{Reason: "either a template id or customizations must be provided"}
	}

	c := *req.Customizations
	if len(c.Components) == 0 {
		c.Components = []schemas.TemplateComponent{
			{Kind: schemas.ComponentSearch},
			{Kind: schemas.ComponentCart},
		}
	}
	return synth.TemplateMinimal, c, nil
}

// mergeCustomizations overlays explicit customizations on template defaults.
func mergeCustomizations(defaults schemas.TemplateCustomizations, explicit *schemas.TemplateCustomizations) schemas.TemplateCustomizations {
	if explicit == nil {
		return defaults
	}
	merged := defaults
	if explicit.Colors.Primary != "" {
		merged.Colors = explicit.Colors
	}
	if explicit.Typography.Heading.Stack != "" {
		merged.Typography = explicit.Typography
	}
	if explicit.Layout != "" {
		merged.Layout = explicit.Layout
	}
	if len(explicit.Components) > 0 {
		merged.Components = explicit.Components
	}
	return merged
}

// DeriveSubdomain lowercases the store name and strips every
// non-alphanumeric character.
func DeriveSubdomain(name string) string {
	return subdomainStrip.ReplaceAllString(strings.ToLower(name), "")
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}

func firstN(values []string, n int) []string {
	if len(values) <= n {
		return values
	}
	return values[:n]
}
