// -- api/schemas/interfaces.go --
package schemas

import "context"

// Acquirer drives a headless browser to capture a rendered page. A failed
// navigation, timeout or browser crash surfaces as an acquisition error.
type Acquirer interface {
	Acquire(ctx context.Context, url string) (*Capture, error)
}

// LLMClient is the external completion collaborator. Implementations send a
// prompt and return the raw generated text; callers own timeout bounds and
// degradation policy.
type LLMClient interface {
	GenerateResponse(ctx context.Context, req GenerationRequest) (string, error)
}

// StoreRepository is the narrow persistence collaborator the pipeline
// depends on: upsert keyed by id and lookup by id. Query, filter and
// pagination surfaces belong to the external store-management component.
type StoreRepository interface {
	UpsertStore(ctx context.Context, rec *StoreRecord) error
	StoreByID(ctx context.Context, id string) (*StoreRecord, error)
}
