package content

import (
	"context"

	"github.com/google/uuid"
)

// Service is the content mutation coordinator. Every operation takes
// the acting user explicitly; nothing in this package reads an ambient
// "current user". Reads go through the cache coordinator; writes
// invalidate it after commit.
type Service interface {
	// Create creates a new governed item on behalf of actor.
	// Business rules:
	// - Anonymous create is rejected (ErrNoActor)
	// - Explicit status must pass CanSetStatus (ErrUnauthorized)
	// - Absent status falls back to DefaultStatus for the role
	// - Audit stamp: created_by/updated_by/author_owner_id, and
	//   published_at when the item starts published
	// Errors: ErrNoActor, ErrUnauthorized, validation errors
	Create(ctx context.Context, actor *Actor, req CreateRequest) (*ContentItem, error)

	// Update mutates an existing item on behalf of actor.
	// Business rules:
	// - CanModify gate first (ownership for moderators)
	// - Requested status (or the current one when absent) must pass
	//   the transition engine given whether content changed
	// - Optimistic locking on req.Version (ErrVersionMismatch)
	// - Audit stamp before persist; cache invalidated after commit
	// Errors: ErrContentNotFound, ErrNoActor, ErrUnauthorized,
	// *TransitionError, ErrVersionMismatch
	Update(ctx context.Context, actor *Actor, id uuid.UUID, req UpdateRequest) (*ContentItem, error)

	// GetByID retrieves one item through the read cache (10 min TTL).
	// Errors: ErrContentNotFound
	GetByID(ctx context.Context, id uuid.UUID) (*ContentItem, error)

	// List retrieves a filtered page through the read cache (5 min
	// TTL, generation-versioned keys).
	List(ctx context.Context, filter ListFilter) ([]ContentItem, *PaginationMeta, error)
}
