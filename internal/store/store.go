// internal/store/store.go
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/xkilldash9x/storeforge/api/schemas"
)

// ErrNotFound is returned when no store record exists for the given id.
var ErrNotFound = errors.New("store record not found")

// DBPool abstracts the pgxpool.Pool so the repository can be mocked in tests.
type DBPool interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Store is the PostgreSQL implementation of schemas.StoreRepository. It
// deliberately exposes only upsert-by-id and lookup-by-id; the wider query
// surface belongs to the store-management service.
type Store struct {
	pool DBPool
	log  *zap.Logger
}

var _ schemas.StoreRepository = (*Store)(nil)

// New creates a store repository and verifies the connection.
func New(ctx context.Context, pool DBPool, logger *zap.Logger) (*Store, error) {
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &Store{
		pool: pool,
		log:  logger.Named("store"),
	}, nil
}

const upsertSQL = `
    INSERT INTO stores (id, owner_id, name, subdomain, status, template_id, customizations, created_at, updated_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    ON CONFLICT (id) DO UPDATE SET
        name = EXCLUDED.name,
        subdomain = EXCLUDED.subdomain,
        status = EXCLUDED.status,
        template_id = EXCLUDED.template_id,
        customizations = EXCLUDED.customizations,
        updated_at = EXCLUDED.updated_at;
`

// UpsertStore inserts or replaces a store record keyed by its generated id.
func (s *Store) UpsertStore(ctx context.Context, rec *schemas.StoreRecord) error {
	customizations, err := json.Marshal(rec.Customizations)
	if err != nil {
		return fmt.Errorf("failed to encode customizations: %w", err)
	}

	// Timestamps go in as UTC to avoid zone ambiguity.
	_, err = s.pool.Exec(ctx, upsertSQL,
		rec.ID, rec.OwnerID, rec.Name, rec.Subdomain,
		string(rec.Status), rec.TemplateID, customizations,
		rec.CreatedAt.UTC(), rec.UpdatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert store %s: %w", rec.ID, err)
	}

	s.log.Debug("Store record upserted.", zap.String("store_id", rec.ID))
	return nil
}

const selectSQL = `
    SELECT id, owner_id, name, subdomain, status, template_id, customizations, created_at, updated_at
    FROM stores
    WHERE id = $1;
`

// StoreByID fetches a store record by id, returning ErrNotFound when absent.
func (s *Store) StoreByID(ctx context.Context, id string) (*schemas.StoreRecord, error) {
	var (
		rec            schemas.StoreRecord
		statusStr      string
		customizations []byte
	)

	err := s.pool.QueryRow(ctx, selectSQL, id).Scan(
		&rec.ID, &rec.OwnerID, &rec.Name, &rec.Subdomain,
		&statusStr, &rec.TemplateID, &customizations,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query store %s: %w", id, err)
	}

	rec.Status = schemas.StoreStatus(statusStr)
	if len(customizations) > 0 {
		if err := json.Unmarshal(customizations, &rec.Customizations); err != nil {
			return nil, fmt.Errorf("failed to decode customizations for store %s: %w", id, err)
		}
	}
	return &rec, nil
}
