// File: internal/service/factory.go
package service

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/xkilldash9x/storeforge/api/schemas"
	"github.com/xkilldash9x/storeforge/internal/acquire"
	"github.com/xkilldash9x/storeforge/internal/analyze"
	"github.com/xkilldash9x/storeforge/internal/browser"
	"github.com/xkilldash9x/storeforge/internal/config"
	"github.com/xkilldash9x/storeforge/internal/extract"
	"github.com/xkilldash9x/storeforge/internal/llmclient"
	"github.com/xkilldash9x/storeforge/internal/orchestrator"
	"github.com/xkilldash9x/storeforge/internal/store"
	"github.com/xkilldash9x/storeforge/internal/synth"
)

// ComponentFactory creates the set of components a pipeline run needs. The
// abstraction keeps the command layer testable.
type ComponentFactory interface {
	Create(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Components, error)
}

// concreteFactory is the production implementation of the ComponentFactory.
type concreteFactory struct{}

// NewComponentFactory creates a production-ready component factory.
func NewComponentFactory() ComponentFactory {
	return &concreteFactory{}
}

// Create handles the full dependency injection and initialization of the
// pipeline components. Optional collaborators degrade instead of failing:
// no API key means deterministic recommendations only, and no database URL
// means the create-store operation is unavailable.
func (f *concreteFactory) Create(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Components, error) {
	components := &Components{}

	// Ensure cleanup happens if initialization fails midway.
	var initializationErr error
	defer func() {
		if initializationErr != nil {
			logger.Warn("Initialization failed, shutting down partially created components.", zap.Error(initializationErr))
			components.Shutdown()
		}
	}()

	// 1. Database pool, only when persistence is configured.
	var repo schemas.StoreRepository
	if cfg.Database.URL != "" {
		dbPool, err := pgxpool.New(ctx, cfg.Database.URL)
		if err != nil {
			initializationErr = fmt.Errorf("failed to create database connection pool: %w", err)
			return nil, initializationErr
		}
		// Assigned immediately so the deferred Shutdown can close it if later
		// steps fail.
		components.DBPool = dbPool

		dbStore, err := store.New(ctx, dbPool, logger)
		if err != nil {
			initializationErr = fmt.Errorf("failed to initialize store repository: %w", err)
			return nil, initializationErr
		}
		repo = dbStore
		components.Repository = dbStore
		logger.Debug("Store repository initialized.")
	} else {
		logger.Info("No database URL configured; store persistence is unavailable.")
	}

	// 2. LLM client, only when an API key is present.
	var llm schemas.LLMClient
	if cfg.LLM.APIKey != "" {
		client, err := llmclient.NewGoogleClient(cfg.LLM, logger)
		if err != nil {
			initializationErr = fmt.Errorf("failed to initialize LLM client: %w", err)
			return nil, initializationErr
		}
		llm = client
		components.LLMClient = client
		logger.Debug("LLM client initialized.", zap.String("model", cfg.LLM.Model))
	} else {
		logger.Info("No LLM API key configured; recommendations will use the deterministic fallback.")
	}

	// 3. Browser manager. The underlying browser launches lazily on first
	// acquisition.
	browserManager := browser.NewManager(cfg, logger)
	components.BrowserManager = browserManager
	logger.Debug("Browser manager created.")

	// 4. Pipeline stages.
	acquirer := acquire.NewEngine(browserManager, cfg, logger)
	extractor := extract.New(logger)
	analyzer := analyze.New(llm, logger)
	synthesizer := synth.New(logger)
	catalog := synth.NewCatalog()

	pipeline, err := orchestrator.New(cfg, logger, acquirer, extractor, analyzer, synthesizer, catalog, repo)
	if err != nil {
		initializationErr = fmt.Errorf("failed to create pipeline: %w", err)
		return nil, initializationErr
	}
	components.Pipeline = pipeline

	logger.Info("All pipeline components initialized successfully.")
	return components, nil
}
