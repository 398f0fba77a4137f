// File: internal/orchestrator/artifacts.go
// Description: Best-effort store-file generation. Writes the rendered
// template artifact to disk so a preview server can serve the draft store.
package orchestrator

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/xkilldash9x/storeforge/api/schemas"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// storeMetadata is the on-disk metadata file written next to the rendered
// template files.
type storeMetadata struct {
	StoreID     string                      `json:"store_id"`
	Name        string                      `json:"name"`
	Subdomain   string                      `json:"subdomain"`
	Status      schemas.StoreStatus         `json:"status"`
	TemplateID  string                      `json:"template_id"`
	Components  []schemas.TemplateComponent `json:"components"`
	Colors      schemas.ColorScheme         `json:"colors"`
	Typography  schemas.Typography          `json:"typography"`
	GeneratedAt time.Time                   `json:"generated_at"`
}

// writeArtifactFiles writes index.html, styles.css and metadata.json for the
// store under the configured output directory. Errors here are reported but
// never fail the create-store request.
func (p *Pipeline) writeArtifactFiles(rec *schemas.StoreRecord, tmpl *schemas.GeneratedTemplate) error {
	dir := filepath.Join(p.cfg.Store.OutputDir, rec.ID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	meta := storeMetadata{
		StoreID:     rec.ID,
		Name:        rec.Name,
		Subdomain:   rec.Subdomain,
		Status:      rec.Status,
		TemplateID:  rec.TemplateID,
		Components:  rec.Customizations.Components,
		Colors:      rec.Customizations.Colors,
		Typography:  rec.Customizations.Typography,
		GeneratedAt: time.Now().UTC(),
	}
	metaBytes, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode store metadata: %w", err)
	}

	files := map[string][]byte{
		"index.html":    []byte(tmpl.HTML),
		"styles.css":    []byte(tmpl.CSS),
		"metadata.json": metaBytes,
	}
	for name, data := range files {
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
	}

	p.logger.Debug("Store files generated.",
		zap.String("store_id", rec.ID), zap.String("dir", dir))
	return nil
}
