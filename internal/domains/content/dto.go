package content

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FieldChanges is a partial update of substantive content fields.
// nil means "not provided" - only non-nil fields are applied.
type FieldChanges struct {
	Title      *string          `json:"title"`
	Body       *string          `json:"body"`
	Tags       []string         `json:"tags"`
	CategoryID *uuid.UUID       `json:"category_id"`
	VideoURL   *string          `json:"video_url"`
	Price      *decimal.Decimal `json:"price"`
}

// Apply writes the provided fields onto item.
func (f FieldChanges) Apply(item *ContentItem) {
	if f.Title != nil {
		item.Title = *f.Title
	}
	if f.Body != nil {
		item.Body = *f.Body
	}
	if f.Tags != nil {
		item.Tags = f.Tags
	}
	if f.CategoryID != nil {
		item.CategoryID = f.CategoryID
	}
	if f.VideoURL != nil {
		item.VideoURL = f.VideoURL
	}
	if f.Price != nil {
		item.Price = f.Price
	}
}

// CreateRequest creates a new governed content item.
// Status is optional; when absent the policy default for the actor's
// role applies. AuthorOwnerID is optional and only honored for admins
// (moderators always own what they create).
type CreateRequest struct {
	Kind          Kind       `json:"kind"`
	Title         string     `json:"title"`
	Body          string     `json:"body"`
	Tags          []string   `json:"tags"`
	CategoryID    *uuid.UUID `json:"category_id"`
	VideoURL      *string    `json:"video_url"`
	Price         *decimal.Decimal `json:"price"`
	Status        *Status    `json:"status"`
	AuthorOwnerID *uuid.UUID `json:"author_owner_id"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Kind, validation.Required, validation.By(validKind)),
		validation.Field(&r.Title, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Body, validation.Length(0, 100000)),
		validation.Field(&r.Status, validation.By(validStatusPtr)),
	)
}

// UpdateRequest mutates an existing item. Version is the optimistic
// concurrency token the caller read; a stale value is rejected.
// Status nil means "keep the current status".
type UpdateRequest struct {
	Fields  FieldChanges `json:"fields"`
	Status  *Status      `json:"status"`
	Version int          `json:"version"`
}

func (r UpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status, validation.By(validStatusPtr)),
		validation.Field(&r.Version, validation.Min(0)),
	)
}

func validKind(value interface{}) error {
	k, _ := value.(Kind)
	if !k.Valid() {
		return ErrInvalidKind
	}
	return nil
}

// ozzo indirects pointer fields before calling By, but keep both
// shapes accepted in case the rule is reused on a raw pointer.
func validStatusPtr(value interface{}) error {
	switch s := value.(type) {
	case Status:
		if !s.Valid() {
			return ErrInvalidStatus
		}
	case *Status:
		if s != nil && !s.Valid() {
			return ErrInvalidStatus
		}
	}
	return nil
}

// ListFilter selects and pages list queries. The zero value lists
// everything with default paging.
type ListFilter struct {
	Kind          *Kind      `json:"kind" form:"kind"`
	Status        *Status    `json:"status" form:"status"`
	CategoryID    *uuid.UUID `json:"category_id" form:"category_id"`
	AuthorOwnerID *uuid.UUID `json:"author_owner_id" form:"author_owner_id"`
	Tag           string     `json:"tag" form:"tag"`
	Page          int        `json:"page" form:"page"`
	Limit         int        `json:"limit" form:"limit"`
}

// Normalize clamps paging to sane bounds (default 20, max 100).
func (f *ListFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		f.Limit = 100
	}
}

// PaginationMeta describes a page of list results.
type PaginationMeta struct {
	Page      int   `json:"page"`
	PageSize  int   `json:"page_size"`
	Total     int64 `json:"total"`
	TotalPage int64 `json:"total_page"`
}
