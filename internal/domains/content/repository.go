package content

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for governed content. The
// persisted table carries status, author_owner_id, created_by,
// updated_by, published_at and version columns; everything except
// status and version is nullable.
type Repository interface {
	// Create inserts a fully stamped item.
	Create(ctx context.Context, item *ContentItem) (*ContentItem, error)

	// GetByID retrieves one item.
	// Errors: ErrContentNotFound
	GetByID(ctx context.Context, id uuid.UUID) (*ContentItem, error)

	// List retrieves a filtered page plus the unpaged total.
	List(ctx context.Context, filter ListFilter) ([]ContentItem, int64, error)

	// Update persists item atomically with an optimistic version
	// check: the row is written only where version = currentVersion,
	// and version is incremented in the same statement. The stamp and
	// the status move land in one round trip, never two.
	// Errors: ErrContentNotFound, ErrVersionMismatch
	Update(ctx context.Context, item *ContentItem, currentVersion int) (*ContentItem, error)
}
