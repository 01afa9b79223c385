package content

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Role is a closed enumeration. Anything that is not one of the two
// constants carries no permissions at all; an unknown role must never
// fall through to moderator behaviour.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleModerator Role = "moderator"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleModerator:
		return true
	default:
		return false
	}
}

// Status is the publication state of a content item.
// No other value is ever observable on a persisted item.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPending   Status = "pending"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

// Valid reports whether s is one of the four workflow states.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusPending, StatusPublished, StatusArchived:
		return true
	default:
		return false
	}
}

// Kind discriminates the governed content types sharing one workflow.
type Kind string

const (
	KindArticle Kind = "article"
	KindVideo   Kind = "video"
	KindProduct Kind = "product"
)

func (k Kind) Valid() bool {
	switch k {
	case KindArticle, KindVideo, KindProduct:
		return true
	default:
		return false
	}
}

// Actor is the authenticated user performing a mutation.
// Every core operation takes the actor as an explicit argument;
// a nil *Actor means the request is anonymous.
type Actor struct {
	ID   uuid.UUID `json:"id"`
	Role Role      `json:"role"`
}

// ContentItem is the domain entity for any governed content
// (article, video, product). Kind-specific fields are nullable.
type ContentItem struct {
	ID   uuid.UUID `json:"id" db:"id"`
	Kind Kind      `json:"kind" db:"kind"`

	// Substantive fields. Changing any of these counts as a content
	// edit for the transition rules, as opposed to a status flip.
	Title      string          `json:"title" db:"title"`
	Slug       string          `json:"slug" db:"slug"`
	Body       string          `json:"body" db:"body"`
	Tags       []string        `json:"tags" db:"tags"`
	CategoryID *uuid.UUID      `json:"category_id" db:"category_id"`
	VideoURL   *string         `json:"video_url" db:"video_url"` // kind=video only
	Price      *decimal.Decimal `json:"price" db:"price"`        // kind=product only

	Status Status `json:"status" db:"status"`

	// Audit trail. AuthorOwnerID is the user the content is attributed
	// to and the basis for moderator ownership checks. CreatedBy and
	// UpdatedBy are stamped on every authenticated mutation.
	// PublishedAt is stamped exactly once, on the first transition to
	// published, and never overwritten afterwards.
	AuthorOwnerID uuid.UUID  `json:"author_owner_id" db:"author_owner_id"`
	CreatedBy     *uuid.UUID `json:"created_by" db:"created_by"`
	UpdatedBy     *uuid.UUID `json:"updated_by" db:"updated_by"`
	PublishedAt   *time.Time `json:"published_at" db:"published_at"`

	// Version is the optimistic concurrency token, incremented on each
	// successful update. A stale version is rejected with
	// ErrVersionMismatch instead of silently clobbering the row.
	Version int `json:"version" db:"version"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// ContentChanged reports whether fields would modify the item's
// substantive content. Status is deliberately not a substantive field:
// a bare status flip is the "quick action" path in the transition rules.
func (c *ContentItem) ContentChanged(fields FieldChanges) bool {
	if fields.Title != nil && *fields.Title != c.Title {
		return true
	}
	if fields.Body != nil && *fields.Body != c.Body {
		return true
	}
	if fields.Tags != nil && !equalTags(fields.Tags, c.Tags) {
		return true
	}
	if fields.CategoryID != nil && !equalUUIDPtr(fields.CategoryID, c.CategoryID) {
		return true
	}
	if fields.VideoURL != nil && !equalStringPtr(fields.VideoURL, c.VideoURL) {
		return true
	}
	if fields.Price != nil && !equalPricePtr(fields.Price, c.Price) {
		return true
	}
	return false
}

func equalTags(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalUUIDPtr(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func equalStringPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func equalPricePtr(a, b *decimal.Decimal) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}
