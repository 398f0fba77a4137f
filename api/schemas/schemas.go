// -- api/schemas/schemas.go --
// Shared data model for the site-to-store synthesis pipeline. These types are
// the contract between the acquisition, extraction, analysis and synthesis
// stages, and between the pipeline and its external collaborators.
package schemas

import "time"

// Screenshots holds the full-page captures taken during acquisition.
type Screenshots struct {
	Desktop []byte `json:"-"`
	Mobile  []byte `json:"-"`
}

// StyleHarvest is the computed-style dump produced by the in-page harvest
// script. Colors and Fonts preserve first-occurrence order over a document
// walk; fully transparent backgrounds are already filtered out.
type StyleHarvest struct {
	Colors       []string `json:"colors"`
	Fonts        []string `json:"fonts"`
	HeaderHeight int      `json:"headerHeight"`
	FooterHeight int      `json:"footerHeight"`
}

// Capture is the raw output of one acquisition run: the rendered document,
// the style harvest and both viewport screenshots. The full HTML is kept only
// for the duration of the pipeline invocation; ScrapedSite retains a bounded
// prefix.
type Capture struct {
	URL         string
	HTML        string
	Styles      StyleHarvest
	Screenshots Screenshots
	CapturedAt  time.Time
}

// LayoutSignals are the structural presence flags read from the rendered DOM.
type LayoutSignals struct {
	HasHeader      bool `json:"hasHeader"`
	HasNav         bool `json:"hasNav"`
	HasMainContent bool `json:"hasMainContent"`
	HasFooter      bool `json:"hasFooter"`
	HeaderHeight   int  `json:"headerHeight"`
	FooterHeight   int  `json:"footerHeight"`
}

// DesignSignals are the raw design data points pulled from a rendered page.
// Colors and Fonts are ordered by DOM traversal; duplicates are tolerated and
// removed at use time by the analyzer.
type DesignSignals struct {
	Colors          []string      `json:"colors"`
	Fonts           []string      `json:"fonts"`
	Layout          LayoutSignals `json:"layout"`
	PageTitle       string        `json:"pageTitle"`
	MetaDescription string        `json:"metaDescription"`
	MetaKeywords    string        `json:"metaKeywords"`
}

// CandidateProduct is a best-effort product record scraped from the page.
// Every field may be empty; duplicates from overlapping selectors are
// acceptable.
type CandidateProduct struct {
	Name      string `json:"name"`
	PriceText string `json:"priceText"`
	ImageURL  string `json:"imageUrl"`
	LinkURL   string `json:"linkUrl"`
}

// ScrapedSite is the immutable result of one acquisition+extraction pass.
// It is owned exclusively by the pipeline invocation that created it and is
// never persisted as-is.
type ScrapedSite struct {
	URL           string             `json:"url"`
	RawHTMLPrefix string             `json:"rawHtmlPrefix"`
	Signals       DesignSignals      `json:"designSignals"`
	Products      []CandidateProduct `json:"candidateProducts"`
	Screenshots   Screenshots        `json:"-"`
	CapturedAt    time.Time          `json:"capturedAt"`
}

// ColorRole classifies a palette color by perceived brightness. The role is
// informational metadata only; it never reorders palette selection.
type ColorRole string

const (
	RoleBackground ColorRole = "background"
	RoleText       ColorRole = "text"
	RoleAccent     ColorRole = "accent"
)

// PaletteColor is a normalized color with its brightness role.
type PaletteColor struct {
	Hex  string    `json:"hex"`
	Role ColorRole `json:"role"`
}

// ColorScheme is the canonical color assignment derived from a scrape.
type ColorScheme struct {
	Primary   string         `json:"primary"`
	Secondary string         `json:"secondary"`
	Accent    string         `json:"accent"`
	All       []PaletteColor `json:"all"`
}

// FontCategory is the coarse typeface class a family falls into.
type FontCategory string

const (
	FontSerif     FontCategory = "serif"
	FontMonospace FontCategory = "monospace"
	FontSansSerif FontCategory = "sans-serif"
)

// FontChoice is a classified font with its fallback stack.
type FontChoice struct {
	Family   string       `json:"family"`
	Category FontCategory `json:"category"`
	Stack    string       `json:"stack"`
}

// Typography assigns heading and body roles to the classified fonts.
type Typography struct {
	Heading FontChoice   `json:"heading"`
	Body    FontChoice   `json:"body"`
	All     []FontChoice `json:"all"`
}

// LayoutStructure describes which structural regions the page carries.
type LayoutStructure struct {
	HasHeader   bool   `json:"hasHeader"`
	HasNav      bool   `json:"hasNav"`
	HasMain     bool   `json:"hasMain"`
	HasFooter   bool   `json:"hasFooter"`
	Description string `json:"description"`
}

// LayoutDimensions carries the measured chrome heights.
type LayoutDimensions struct {
	HeaderHeight int `json:"headerHeight"`
	FooterHeight int `json:"footerHeight"`
}

// LayoutAnalysis is the structural pass-through plus the fixed responsive
// design recommendations.
type LayoutAnalysis struct {
	Structure       LayoutStructure  `json:"structure"`
	Dimensions      LayoutDimensions `json:"dimensions"`
	Recommendations []string         `json:"recommendations"`
}

// ProductSummary reports the shape of the scraped product listing.
// A nil summary means no product-capable structure was found.
type ProductSummary struct {
	Count     int                `json:"count"`
	HasImages bool               `json:"hasImages"`
	HasPrices bool               `json:"hasPrices"`
	Structure string             `json:"structure"`
	Samples   []CandidateProduct `json:"samples"`
}

// Recommendations is the four-category improvement advice, whether it came
// from the model or from the deterministic fallback set.
type Recommendations struct {
	Improvements []string `json:"improvements"`
	UX           []string `json:"ux"`
	Mobile       []string `json:"mobile"`
	Conversion   []string `json:"conversion"`
}

// DesignAnalysis is the classified form of a ScrapedSite. Everything except
// AIRecommendations is a deterministic function of the input signals.
type DesignAnalysis struct {
	Colors            ColorScheme     `json:"colors"`
	Typography        Typography      `json:"typography"`
	Layout            LayoutAnalysis  `json:"layout"`
	Products          *ProductSummary `json:"products"`
	AIRecommendations Recommendations `json:"aiRecommendations"`
}

// ComponentKind names a storefront building block.
type ComponentKind string

const (
	ComponentProductGrid ComponentKind = "product-grid"
	ComponentNavigation  ComponentKind = "navigation"
	ComponentSearch      ComponentKind = "search"
	ComponentCart        ComponentKind = "cart"
)

// TemplateComponent is one entry of the ordered component list. Order
// determines rendering position downstream.
type TemplateComponent struct {
	Kind    ComponentKind   `json:"kind"`
	Options map[string]bool `json:"options,omitempty"`
}

// TemplateCustomizations binds a template skeleton to site-specific design
// values.
type TemplateCustomizations struct {
	Colors     ColorScheme         `json:"colors"`
	Typography Typography          `json:"typography"`
	Layout     string              `json:"layout"`
	Components []TemplateComponent `json:"components"`
}

// GeneratedTemplate is the synthesized design artifact. HTML carries
// unresolved {{placeholder}} tokens; resolving them is the downstream
// renderer's job.
type GeneratedTemplate struct {
	ID             string                 `json:"id"`
	BaseTemplateID string                 `json:"baseTemplateId"`
	Customizations TemplateCustomizations `json:"customizations"`
	CSS            string                 `json:"css"`
	HTML           string                 `json:"html"`
}

// TemplateCatalogEntry describes one fixed base template. The catalog is
// built once at startup and never mutated.
type TemplateCatalogEntry struct {
	ID          string                 `json:"id"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Features    []string               `json:"features"`
	Defaults    TemplateCustomizations `json:"defaults"`
}

// StoreStatus is the lifecycle state of a store record. The synthesis
// pipeline only ever creates records in StatusDraft; transitions belong to
// the external store-management component.
type StoreStatus string

const (
	StatusDraft       StoreStatus = "draft"
	StatusPublished   StoreStatus = "published"
	StatusMaintenance StoreStatus = "maintenance"
	StatusSuspended   StoreStatus = "suspended"
)

// StoreRecord is the persisted projection of a generated store.
type StoreRecord struct {
	ID             string                 `json:"id"`
	OwnerID        string                 `json:"ownerId"`
	Name           string                 `json:"name"`
	Subdomain      string                 `json:"subdomain"`
	Status         StoreStatus            `json:"status"`
	TemplateID     string                 `json:"templateId"`
	Customizations TemplateCustomizations `json:"customizations"`
	CreatedAt      time.Time              `json:"createdAt"`
	UpdatedAt      time.Time              `json:"updatedAt"`
}

// ScrapedSummary is the trimmed projection of a scrape returned to callers.
type ScrapedSummary struct {
	Title        string   `json:"title"`
	Colors       []string `json:"colors"`
	Fonts        []string `json:"fonts"`
	ProductCount int      `json:"productCount"`
}

// PreviewImages are the base64-encoded screenshot bytes.
type PreviewImages struct {
	Desktop string `json:"desktop"`
	Mobile  string `json:"mobile"`
}

// AnalyzeResult is the envelope returned by the analyze operation.
type AnalyzeResult struct {
	SourceURL string             `json:"sourceUrl"`
	Scraped   ScrapedSummary     `json:"scrapedSummary"`
	Analysis  *DesignAnalysis    `json:"analysis"`
	Template  *GeneratedTemplate `json:"template"`
	Preview   PreviewImages      `json:"preview"`
}

// StoreInfo is the caller-supplied store identity for the generate operation.
type StoreInfo struct {
	Name        string `json:"name"`
	Subdomain   string `json:"subdomain"`
	Description string `json:"description"`
}

// GenerateStoreRequest drives the create-store operation. Either TemplateID
// or Customizations must be supplied.
type GenerateStoreRequest struct {
	TemplateID     string                  `json:"templateId,omitempty"`
	Customizations *TemplateCustomizations `json:"customizations,omitempty"`
	Info           StoreInfo               `json:"storeInfo"`
	OwnerID        string                  `json:"ownerId"`
}

// GenerateStoreResult is the envelope returned by the generate operation.
type GenerateStoreResult struct {
	StoreID string      `json:"storeId"`
	URL     string      `json:"url"`
	Status  StoreStatus `json:"status"`
}

// GenerationOptions tune a single LLM completion call.
type GenerationOptions struct {
	Temperature     float32 `json:"temperature"`
	ForceJSONFormat bool    `json:"force_json_format"`
}

// GenerationRequest is the provider-agnostic completion request.
type GenerationRequest struct {
	SystemPrompt string            `json:"system_prompt"`
	UserPrompt   string            `json:"user_prompt"`
	Options      GenerationOptions `json:"options"`
}
