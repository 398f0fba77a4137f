// File: internal/service/components.go
package service

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/xkilldash9x/storeforge/api/schemas"
	"github.com/xkilldash9x/storeforge/internal/browser"
	"github.com/xkilldash9x/storeforge/internal/observability"
	"github.com/xkilldash9x/storeforge/internal/orchestrator"
)

// Components holds the initialized services behind one pipeline run. The
// struct centralizes lifecycle management so commands only build and tear
// down one thing.
type Components struct {
	Pipeline       *orchestrator.Pipeline
	BrowserManager *browser.Manager
	Repository     schemas.StoreRepository
	LLMClient      schemas.LLMClient
	DBPool         *pgxpool.Pool
}

// Shutdown gracefully releases component resources. Safe to call on a
// partially initialized struct.
func (c *Components) Shutdown() {
	logger := observability.GetLogger()
	logger.Debug("Beginning components shutdown sequence.")

	// The browser manager first, while its allocator is still alive. A fresh
	// context keeps shutdown working even when the command context is already
	// canceled.
	if c.BrowserManager != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := c.BrowserManager.Shutdown(shutdownCtx); err != nil {
			logger.Warn("Error during browser manager shutdown.", zap.Error(err))
		} else {
			logger.Debug("Browser manager shut down.")
		}
	}

	if c.DBPool != nil {
		c.DBPool.Close()
		logger.Debug("Database connection pool closed.")
	}

	logger.Info("All components shut down.")
}
